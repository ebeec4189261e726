package services_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatra/internal/services"
	"yatra/pkg/utils"
)

// newWeatherUpstream simulates the OpenWeather API. Direct name lookups
// succeed only for allowDirect; geocoding resolves only names present in
// geocodable; coordinate lookups always succeed.
func newWeatherUpstream(t *testing.T, allowDirect string, geocodable map[string][2]float64) *httptest.Server {
	t.Helper()

	currentPayload := map[string]any{
		"name": "Goa",
		"sys":  map[string]any{"country": "IN"},
		"main": map[string]any{"temp": 29.6, "humidity": 74},
		"weather": []map[string]any{
			{"description": "clear sky", "icon": "01d"},
		},
		"wind": map[string]any{"speed": 3.4},
	}

	base := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	list := make([]map[string]any, 0, 40)
	for i := 0; i < 40; i++ {
		ts := base.Add(time.Duration(i) * 3 * time.Hour)
		list = append(list, map[string]any{
			"dt_txt": ts.Format("2006-01-02 15:04:05"),
			"main":   map[string]any{"temp_min": 20.4, "temp_max": 28.6},
			"weather": []map[string]any{
				{"description": "clear sky", "icon": "01d"},
			},
			"pop": 0.37,
		})
	}
	forecastPayload := map[string]any{"list": list}

	directAllowed := func(r *http.Request) bool {
		q := r.URL.Query().Get("q")
		if q == "" {
			// Coordinate lookup.
			return r.URL.Query().Get("lat") != ""
		}
		return q == allowDirect
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/data/2.5/weather", func(w http.ResponseWriter, r *http.Request) {
		if !directAllowed(r) {
			http.Error(w, `{"cod":"404","message":"city not found"}`, http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(currentPayload)
	})
	mux.HandleFunc("/data/2.5/forecast", func(w http.ResponseWriter, r *http.Request) {
		if !directAllowed(r) {
			http.Error(w, `{"cod":"404","message":"city not found"}`, http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(forecastPayload)
	})
	mux.HandleFunc("/geo/1.0/direct", func(w http.ResponseWriter, r *http.Request) {
		coords, ok := geocodable[r.URL.Query().Get("q")]
		if !ok {
			fmt.Fprint(w, "[]")
			return
		}
		fmt.Fprintf(w, `[{"lat":%v,"lon":%v}]`, coords[0], coords[1])
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newWeatherClient(srv *httptest.Server) *services.OpenWeatherClient {
	return services.NewOpenWeatherClientWithConfig(srv.Client(), "test-key", srv.URL)
}

func TestGetCityWeather_DirectLookup(t *testing.T) {
	srv := newWeatherUpstream(t, "Panaji", nil)
	client := newWeatherClient(srv)

	report, err := client.GetCityWeather(context.Background(), "Panaji")
	require.NoError(t, err)

	assert.Equal(t, "Goa", report.City)
	assert.Equal(t, "IN", report.Country)
	assert.Equal(t, 30, report.Current.Temperature)
	assert.Equal(t, 74, report.Current.Humidity)
	assert.Equal(t, "01d", report.Current.Icon)
	require.Len(t, report.Forecast, 5)
}

func TestGetCityWeather_GeocodeFallback(t *testing.T) {
	srv := newWeatherUpstream(t, "", map[string][2]float64{
		"Goa": {15.3, 74.1},
	})
	client := newWeatherClient(srv)

	// Direct lookup fails, full-string geocoding fails, the segment before
	// the separator resolves.
	report, err := client.GetCityWeather(context.Background(), "Goa & Palolem")
	require.NoError(t, err)

	require.Len(t, report.Forecast, 5)
	seen := map[string]bool{}
	prev := ""
	for _, day := range report.Forecast {
		assert.False(t, seen[day.Date], "dates must be distinct")
		seen[day.Date] = true
		assert.Greater(t, day.Date, prev, "dates must ascend")
		prev = day.Date

		assert.GreaterOrEqual(t, day.Precipitation, 0)
		assert.LessOrEqual(t, day.Precipitation, 100)
	}
	assert.Equal(t, "2025-12-01", report.Forecast[0].Date)
	assert.Equal(t, 20, report.Forecast[0].Temperature.Min)
	assert.Equal(t, 29, report.Forecast[0].Temperature.Max)
	assert.Equal(t, 37, report.Forecast[0].Precipitation)
}

func TestGetCityWeather_FullStringGeocode(t *testing.T) {
	srv := newWeatherUpstream(t, "", map[string][2]float64{
		"Alleppey, Kerala": {9.49, 76.33},
	})
	client := newWeatherClient(srv)

	_, err := client.GetCityWeather(context.Background(), "Alleppey, Kerala")
	require.NoError(t, err)
}

func TestGetCityWeather_ResolutionFailure(t *testing.T) {
	srv := newWeatherUpstream(t, "", nil)
	client := newWeatherClient(srv)

	_, err := client.GetCityWeather(context.Background(), "Nowhere")
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrWeatherResolution)
	// Both upstream statuses travel with the error for diagnostics.
	assert.Contains(t, err.Error(), "404/404")
}

func TestNewOpenWeatherClient_MissingKey(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "")

	_, err := services.NewOpenWeatherClient()
	assert.ErrorIs(t, err, utils.ErrMissingWeatherKey)
}
