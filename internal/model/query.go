package model

// SearchQuery represents a natural-language search request.
// Query is a pointer so that an empty string passes the required check.
type SearchQuery struct {
	Query *string `json:"query" binding:"required"`
}

// ExtractedFilters represents structured conditions extracted from a query
type ExtractedFilters struct {
	Bedrooms *int     `json:"bedrooms"`
	MaxPrice *int64   `json:"max_price"`
	Keywords []string `json:"keywords"` // detection order, never nil
}

// SearchResponse represents the natural-language search response
type SearchResponse struct {
	Success bool              `json:"success"`
	Filters *ExtractedFilters `json:"filters"`
}
