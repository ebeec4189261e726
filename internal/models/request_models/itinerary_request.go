package request_models

// ItineraryRequest is the trip-preferences form payload. Binding performs the
// whole-schema validation before any provider call; violations surface as a
// single client error with no field detail. End-before-start is not checked.
type ItineraryRequest struct {
	Destination string   `json:"destination" binding:"required"`
	StartDate   string   `json:"startDate" binding:"required"`
	EndDate     string   `json:"endDate" binding:"required"`
	Budget      string   `json:"budget" binding:"required"`
	Travelers   int      `json:"travelers" binding:"required,min=1"`
	Interests   []string `json:"interests" binding:"required,min=1,dive,required"`
	Pace        string   `json:"pace" binding:"required,oneof=relaxed normal packed"`
	Mobility    string   `json:"mobility"`
	Transport   string   `json:"transport"`
}

type RefineItineraryRequest struct {
	ItineraryID    string `json:"itineraryId" binding:"required"`
	Instruction    string `json:"instruction" binding:"required"`
	CurrentContent string `json:"currentContent"`
}
