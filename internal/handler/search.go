package handler

import (
	"net/http"

	"aiservice/internal/metrics"
	"aiservice/internal/model"
	"aiservice/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles natural-language search requests
type SearchHandler struct {
	parser  *service.IntentParser
	metrics *metrics.Metrics
}

// NewSearchHandler creates a new search handler. m may be nil.
func NewSearchHandler(parser *service.IntentParser, m *metrics.Metrics) *SearchHandler {
	return &SearchHandler{
		parser:  parser,
		metrics: m,
	}
}

// NaturalLanguage handles POST /search/natural-language
func (h *SearchHandler) NaturalLanguage(c *gin.Context) {
	var req model.SearchQuery
	if !bindJSON(c, &req) {
		return
	}

	filters := h.parser.Parse(*req.Query)
	h.record(filters)

	c.JSON(http.StatusOK, model.SearchResponse{
		Success: true,
		Filters: filters,
	})
}

func (h *SearchHandler) record(filters *model.ExtractedFilters) {
	if h.metrics == nil {
		return
	}
	if filters.Bedrooms != nil {
		h.metrics.RecordFilter("bedrooms")
	}
	if filters.MaxPrice != nil {
		h.metrics.RecordFilter("max_price")
	}
	for _, kw := range filters.Keywords {
		h.metrics.RecordFilter("keyword_" + kw)
	}
}
