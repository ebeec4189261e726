package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"yatra/internal/models/request_models"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type ExportController struct {
	exportService services.ExportServiceInterface
}

func NewExportController(exportService services.ExportServiceInterface) *ExportController {
	return &ExportController{
		exportService: exportService,
	}
}

// ExportICSHandler handles POST /api/export/ics.
func (ec *ExportController) ExportICSHandler(c *gin.Context) {
	var req request_models.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	filename, body, err := ec.exportService.ExportICS(c.Request.Context(), req.ItineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/calendar", body)
}

// ExportMarkdownHandler handles POST /api/export/markdown.
func (ec *ExportController) ExportMarkdownHandler(c *gin.Context) {
	var req request_models.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	filename, body, err := ec.exportService.ExportMarkdown(c.Request.Context(), req.ItineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/markdown", body)
}
