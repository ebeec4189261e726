package utils

import "errors"

var (
	ErrItineraryNotFound = errors.New("itinerary not found")
	ErrInvalidPage       = errors.New("invalid page parameter")
	ErrInvalidPageSize   = errors.New("invalid page size parameter")
	ErrDatabaseError     = errors.New("database error")
	ErrMissingGeminiKey  = errors.New("gemini API key not configured correctly")
	ErrMissingOpenAIKey  = errors.New("openai API key not configured correctly")
	ErrMissingWeatherKey = errors.New("weather API key not configured correctly")
	ErrWeatherResolution = errors.New("failed to resolve city or fetch weather")
)
