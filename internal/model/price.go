package model

// PriceRequest represents a price estimation request
type PriceRequest struct {
	City      *string  `json:"city" binding:"required"`
	Sqft      *float64 `json:"sqft" binding:"required"`
	Bedrooms  *int     `json:"bedrooms" binding:"required"`
	Bathrooms *int     `json:"bathrooms" binding:"required"`
}

// PriceEstimate represents a price estimation response
type PriceEstimate struct {
	PredictedPrice int64 `json:"predicted_price"`
}
