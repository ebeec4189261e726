package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"yatra/internal/models/request_models"
	"yatra/internal/services"
	"yatra/pkg/sse"
	"yatra/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// StreamItineraryHandler handles POST /api/itinerary/stream. Validation
// failures are plain 400 responses; once the event stream opens, every
// failure becomes a terminal error event and the HTTP status stays 200.
func (ic *ItineraryController) StreamItineraryHandler(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid form data format")
		return
	}

	log.Printf("Processing itinerary request: destination=%s dates=%s..%s travelers=%d",
		req.Destination, req.StartDate, req.EndDate, req.Travelers)

	sse.SetStreamHeaders(c.Writer)
	c.Status(http.StatusOK)

	emitter := sse.NewEmitter(c.Writer)
	defer emitter.Close()

	emitter.Start("Starting itinerary generation...")

	parsed, err := ic.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error generating itinerary: %v", err)
		emitter.Error(err.Error())
		return
	}

	emitter.Content(parsed.Content)
	emitter.Reasoning(parsed.Reasoning)

	itineraryID, err := ic.itineraryService.SaveItinerary(c.Request.Context(), req, parsed)
	if err != nil {
		// The client may already have rendered content from the earlier
		// events; without a persisted record the run still counts as failed.
		log.Printf("Database save failed: %v", err)
		emitter.Error("Failed to save itinerary")
		return
	}

	emitter.Complete(itineraryID.String())
}

// RefineItineraryHandler handles POST /api/itinerary/refine. The record
// lookup happens before the stream opens so an unknown identifier is a plain
// 404 rather than a stream error.
func (ic *ItineraryController) RefineItineraryHandler(c *gin.Context) {
	var req request_models.RefineItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	existing, err := ic.itineraryService.GetItinerary(c.Request.Context(), req.ItineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	currentContent := req.CurrentContent
	if currentContent == "" {
		currentContent = existing.Content
	}

	sse.SetStreamHeaders(c.Writer)
	c.Status(http.StatusOK)

	emitter := sse.NewEmitter(c.Writer)
	defer emitter.Close()

	emitter.Start("Refining itinerary...")

	parsed, err := ic.itineraryService.RefineItinerary(c.Request.Context(), req.Instruction, currentContent)
	if err != nil {
		log.Printf("Error refining itinerary: %v", err)
		emitter.Error("Failed to refine itinerary")
		return
	}

	emitter.Content(parsed.Content)
	emitter.Reasoning(parsed.Reasoning)

	if err := ic.itineraryService.SaveRefinement(c.Request.Context(), req.ItineraryID, parsed); err != nil {
		log.Printf("Database update failed: %v", err)
		emitter.Error("Failed to save itinerary")
		return
	}

	emitter.Complete(req.ItineraryID)
}
