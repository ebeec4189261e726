package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"yatra/internal/repositories"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type SuggestionController struct {
	suggestionService services.SuggestionServiceInterface
}

func NewSuggestionController(suggestionService services.SuggestionServiceInterface) *SuggestionController {
	return &SuggestionController{
		suggestionService: suggestionService,
	}
}

// ListSuggestionsHandler handles GET /api/suggestions with optional
// page/limit/region/tripType/search query parameters.
func (sc *SuggestionController) ListSuggestionsHandler(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "12"))
	if err != nil {
		limit = 12
	}

	filter := repositories.SuggestionFilter{
		Region:   c.Query("region"),
		TripType: c.Query("tripType"),
		Search:   c.Query("search"),
	}

	result, err := sc.suggestionService.ListSuggestions(c.Request.Context(), filter, page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Suggestions fetched successfully")
}
