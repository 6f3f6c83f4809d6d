package service

import (
	"math"
	"strings"
)

// Formula coefficients
const (
	BasePrice       = 4000.0
	PerBedroom      = 3500.0
	PerSqft         = 8.0
	PerBathroom     = 1500.0
	DefaultCityRate = 1.0
)

// cityMultipliers maps a lowercased city name to its price multiplier
var cityMultipliers = map[string]float64{
	"bangalore":  1.8,
	"bengaluru":  1.8,
	"chennai":    1.5,
	"coimbatore": 1.2,
}

// PriceEstimator computes a heuristic property price. No input is rejected:
// negative values flow through and unknown cities use DefaultCityRate.
type PriceEstimator struct{}

// NewPriceEstimator creates a new price estimator
func NewPriceEstimator() *PriceEstimator {
	return &PriceEstimator{}
}

// CityMultiplier returns the multiplier for a city and whether it is a known city
func (e *PriceEstimator) CityMultiplier(city string) (float64, bool) {
	m, ok := cityMultipliers[strings.ToLower(city)]
	if !ok {
		return DefaultCityRate, false
	}
	return m, true
}

// Estimate returns the predicted price truncated toward zero
func (e *PriceEstimator) Estimate(city string, sqft float64, bedrooms, bathrooms int) int64 {
	multiplier, _ := e.CityMultiplier(city)

	// Each product is rounded on its own so the compiler cannot fuse it
	// into the following addition.
	bedroomTerm := float64(float64(bedrooms) * PerBedroom)
	sizeTerm := float64(sqft * PerSqft)
	bathroomTerm := float64(float64(bathrooms) * PerBathroom)

	predicted := (BasePrice + bedroomTerm + sizeTerm + bathroomTerm) * multiplier

	return truncate(predicted)
}

// truncate drops the fractional part, saturating where int64 cannot hold the value
func truncate(v float64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return int64(v)
}
