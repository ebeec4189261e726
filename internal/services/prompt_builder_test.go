package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatra/internal/models/request_models"
	"yatra/internal/services"
)

func sampleRequest() request_models.ItineraryRequest {
	return request_models.ItineraryRequest{
		Destination: "Goa",
		StartDate:   "2025-12-01",
		EndDate:     "2025-12-05",
		Budget:      "50k-1l",
		Travelers:   2,
		Interests:   []string{"beaches", "food"},
		Pace:        "relaxed",
	}
}

func TestBuildItineraryPrompt_EmbedsAllFields(t *testing.T) {
	prompt := services.BuildItineraryPrompt(sampleRequest())

	assert.Contains(t, prompt, "Destination: Goa")
	assert.Contains(t, prompt, "Dates: 2025-12-01 to 2025-12-05")
	assert.Contains(t, prompt, "Budget: 50k-1l")
	assert.Contains(t, prompt, "Travelers: 2")
	assert.Contains(t, prompt, "Interests: beaches, food")
	assert.Contains(t, prompt, "Pace: relaxed")
	// Optional fields get their documented defaults.
	assert.Contains(t, prompt, "Mobility: No constraints")
	assert.Contains(t, prompt, "Transport: Any")
	// The parser contract must be stated to the provider.
	assert.Contains(t, prompt, `"content"`)
	assert.Contains(t, prompt, `"reasoning"`)
}

func TestBuildItineraryPrompt_Deterministic(t *testing.T) {
	req := sampleRequest()
	require.Equal(t, services.BuildItineraryPrompt(req), services.BuildItineraryPrompt(req))
}

func TestBuildItineraryPrompt_OptionalFields(t *testing.T) {
	req := sampleRequest()
	req.Mobility = "wheelchair accessible"
	req.Transport = "train"

	prompt := services.BuildItineraryPrompt(req)
	assert.Contains(t, prompt, "Mobility: wheelchair accessible")
	assert.Contains(t, prompt, "Transport: train")
}

func TestBuildRefinementUserPrompt(t *testing.T) {
	prompt := services.BuildRefinementUserPrompt("add a beach day", "Day 1: forts")

	assert.Contains(t, prompt, `"add a beach day"`)
	assert.Contains(t, prompt, "Day 1: forts")
}
