package handler

import (
	"net/http"
	"strings"

	"aiservice/internal/metrics"
	"aiservice/internal/model"
	"aiservice/internal/service"

	"github.com/gin-gonic/gin"
)

// PriceHandler handles price estimation requests
type PriceHandler struct {
	estimator *service.PriceEstimator
	metrics   *metrics.Metrics
}

// NewPriceHandler creates a new price handler. m may be nil.
func NewPriceHandler(estimator *service.PriceEstimator, m *metrics.Metrics) *PriceHandler {
	return &PriceHandler{
		estimator: estimator,
		metrics:   m,
	}
}

// Predict handles POST /price/predict
func (h *PriceHandler) Predict(c *gin.Context) {
	var req model.PriceRequest
	if !bindJSON(c, &req) {
		return
	}

	price := h.estimator.Estimate(*req.City, *req.Sqft, *req.Bedrooms, *req.Bathrooms)

	if h.metrics != nil {
		_, known := h.estimator.CityMultiplier(*req.City)
		h.metrics.RecordEstimate(strings.ToLower(*req.City), known)
	}

	c.JSON(http.StatusOK, model.PriceEstimate{PredictedPrice: price})
}
