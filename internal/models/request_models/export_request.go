package request_models

type ExportRequest struct {
	ItineraryID string `json:"itineraryId" binding:"required"`
}
