package services

import (
	"encoding/json"
	"regexp"
	"strings"
)

const RecoveredReasoning = "Generated based on your preferences (response format recovery applied)"

// ParsedItinerary is the decode-with-fallback result: either a structured
// body/rationale pair, or the raw provider text as the body with Recovered
// set and a placeholder rationale.
type ParsedItinerary struct {
	Content   string
	Reasoning string
	Recovered bool
}

// fenceRegexp matches text entirely wrapped in a single code fence,
// optionally tagged with a language name.
var fenceRegexp = regexp.MustCompile("(?is)^```(?:json)?\\s*(.*?)\\s*```$")

func stripFencesIfAny(text string) string {
	if m := fenceRegexp.FindStringSubmatch(strings.TrimSpace(text)); m != nil {
		return m[1]
	}
	return text
}

// ParseItineraryResponse extracts the body and rationale from raw provider
// output. It never fails: an unparseable response must still yield a usable
// itinerary, so any decode problem falls back to the original raw text.
func ParseItineraryResponse(raw string) ParsedItinerary {
	return parseWithFallback(raw, RecoveredReasoning)
}

// ParseRefinementResponse applies the same rule with the refinement-specific
// placeholder rationale.
func ParseRefinementResponse(raw string) ParsedItinerary {
	return parseWithFallback(raw, "Refined based on your specific request.")
}

func parseWithFallback(raw string, placeholder string) ParsedItinerary {
	cleaned := strings.TrimSpace(stripFencesIfAny(raw))

	var decoded struct {
		Content   *string `json:"content"`
		Reasoning *string `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(cleaned), &decoded); err == nil &&
		strings.HasPrefix(cleaned, "{") &&
		decoded.Content != nil && decoded.Reasoning != nil {
		return ParsedItinerary{
			Content:   *decoded.Content,
			Reasoning: *decoded.Reasoning,
		}
	}

	return ParsedItinerary{
		Content:   raw,
		Reasoning: placeholder,
		Recovered: true,
	}
}
