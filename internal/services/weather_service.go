package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"yatra/internal/models/response_models"
	"yatra/pkg/utils"
)

type WeatherServiceInterface interface {
	GetCityWeather(ctx context.Context, city string) (*response_models.WeatherReport, error)
}

const openWeatherBaseURL = "https://api.openweathermap.org"

// OpenWeatherClient resolves a free-text place name to current conditions and
// a 5-day forecast. Direct name lookup is tried first; on a non-success
// status from either endpoint it falls back to geocoding the input (then the
// segment before the first ',' or '&') and re-issuing both lookups by
// coordinate.
type OpenWeatherClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

func NewOpenWeatherClient() (*OpenWeatherClient, error) {
	apiKey := os.Getenv("OPENWEATHER_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		return nil, utils.ErrMissingWeatherKey
	}
	return NewOpenWeatherClientWithConfig(&http.Client{Timeout: 15 * time.Second}, apiKey, openWeatherBaseURL), nil
}

func NewOpenWeatherClientWithConfig(httpClient *http.Client, apiKey, baseURL string) *OpenWeatherClient {
	return &OpenWeatherClient{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    baseURL,
	}
}

type openWeatherCurrent struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

type openWeatherForecast struct {
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			TempMin float64 `json:"temp_min"`
			TempMax float64 `json:"temp_max"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Pop float64 `json:"pop"`
	} `json:"list"`
}

type geoCoordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c *OpenWeatherClient) GetCityWeather(ctx context.Context, city string) (*response_models.WeatherReport, error) {
	byName := url.Values{"q": {city}}

	curBody, curStatus := c.fetch(ctx, "/data/2.5/weather", byName)
	forBody, forStatus := c.fetch(ctx, "/data/2.5/forecast", byName)

	if curStatus != http.StatusOK || forStatus != http.StatusOK {
		coords := c.geocode(ctx, city)
		if coords == nil {
			if part := firstSegment(city); part != "" && part != city {
				coords = c.geocode(ctx, part)
			}
		}
		if coords == nil {
			log.Printf("OpenWeather direct query failed and geocoding fallback found no coords for %q (statuses %d/%d)", city, curStatus, forStatus)
			return nil, fmt.Errorf("%w: %d/%d", utils.ErrWeatherResolution, curStatus, forStatus)
		}

		byCoords := url.Values{
			"lat": {strconv.FormatFloat(coords.Lat, 'f', -1, 64)},
			"lon": {strconv.FormatFloat(coords.Lon, 'f', -1, 64)},
		}
		curBody, curStatus = c.fetch(ctx, "/data/2.5/weather", byCoords)
		forBody, forStatus = c.fetch(ctx, "/data/2.5/forecast", byCoords)
	}

	if curStatus != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch current weather: %d", curStatus)
	}
	if forStatus != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch forecast: %d", forStatus)
	}

	var current openWeatherCurrent
	if err := json.Unmarshal(curBody, &current); err != nil || len(current.Weather) == 0 {
		return nil, fmt.Errorf("invalid current weather data from upstream")
	}

	var forecast openWeatherForecast
	if err := json.Unmarshal(forBody, &forecast); err != nil || forecast.List == nil {
		return nil, fmt.Errorf("invalid forecast data from upstream")
	}

	return &response_models.WeatherReport{
		City:    current.Name,
		Country: current.Sys.Country,
		Current: response_models.CurrentConditions{
			Temperature: roundInt(current.Main.Temp),
			Description: current.Weather[0].Description,
			Humidity:    current.Main.Humidity,
			WindSpeed:   current.Wind.Speed,
			Icon:        current.Weather[0].Icon,
		},
		Forecast: reduceForecast(forecast),
	}, nil
}

// reduceForecast samples one 3-hour entry per calendar day (every 8th) and
// keeps the first 5 days, rounding temperatures and precipitation.
func reduceForecast(forecast openWeatherForecast) []response_models.ForecastDay {
	days := make([]response_models.ForecastDay, 0, 5)
	for i, item := range forecast.List {
		if i%8 != 0 {
			continue
		}
		if len(days) == 5 {
			break
		}

		day := response_models.ForecastDay{
			Date: strings.SplitN(item.DtTxt, " ", 2)[0],
			Temperature: response_models.TemperatureRange{
				Min: roundInt(item.Main.TempMin),
				Max: roundInt(item.Main.TempMax),
			},
			Precipitation: roundInt(item.Pop * 100),
		}
		if len(item.Weather) > 0 {
			day.Description = item.Weather[0].Description
			day.Icon = item.Weather[0].Icon
		}
		days = append(days, day)
	}
	return days
}

// fetch issues one GET and returns body plus status. Network failures are
// reported as status 0 so they feed the same fallback path as upstream
// rejections.
func (c *OpenWeatherClient) fetch(ctx context.Context, path string, query url.Values) ([]byte, int) {
	q := url.Values{}
	for k, v := range query {
		q[k] = v
	}
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, 0
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("OpenWeather request %s failed: %v", path, err)
		return nil, 0
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0
	}
	return body, resp.StatusCode
}

// geocode resolves a place name to a coordinate, limit 1. Returns nil on any
// failure; the caller decides whether to retry with a shorter query.
func (c *OpenWeatherClient) geocode(ctx context.Context, query string) *geoCoordinate {
	q := url.Values{"q": {query}, "limit": {"1"}, "appid": {c.apiKey}}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/geo/1.0/direct?"+q.Encode(), nil)
	if err != nil {
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var results []geoCoordinate
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil || len(results) == 0 {
		return nil
	}
	return &results[0]
}

// firstSegment returns the part of city before the first ',' or '&', trimmed.
func firstSegment(city string) string {
	if idx := strings.IndexAny(city, ",&"); idx >= 0 {
		return strings.TrimSpace(city[:idx])
	}
	return city
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
