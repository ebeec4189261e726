package response_models

type SuggestedTripResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Destination string   `json:"destination"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	BestTime    string   `json:"bestTime"`
	Duration    string   `json:"duration"`
	Budget      string   `json:"budget"`
	TripType    string   `json:"tripType"`
	Region      string   `json:"region"`
	CoverImage  *string  `json:"coverImage"`
	CreatedAt   int64    `json:"createdAt"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type SuggestionListResponse struct {
	Trips      []SuggestedTripResponse `json:"trips"`
	Pagination Pagination              `json:"pagination"`
}
