package services

import (
	"fmt"
	"math"
	"strings"
)

const earthRadiusKM = 6371

// HaversineDistance returns the great-circle distance in kilometres
// between two lat/lon pairs in decimal degrees. Pure function, safe to
// call concurrently.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Pricing holds the quoting constants. The values come from config at
// startup; DefaultPricing matches the published rate card.
type Pricing struct {
	BasePricePerKM float64
	PackingFee     float64
}

func DefaultPricing() Pricing {
	return Pricing{
		BasePricePerKM: 500,
		PackingFee:     200,
	}
}

// homeSizeFactors maps each supported home size to its price multiplier.
// The set is closed: anything else is a validation error, never a default.
var homeSizeFactors = map[string]float64{
	"bedsitter":   1,
	"studio":      1.2,
	"one bedroom": 1.5,
	"two bedroom": 2,
}

func IsValidHomeSize(homeSize string) bool {
	_, ok := homeSizeFactors[strings.ToLower(homeSize)]
	return ok
}

// CalculatePrice quotes a move: distance * base rate * size factor, plus
// the packing fee when the packing service is requested. Home size is
// matched case-insensitively.
func (p Pricing) CalculatePrice(distanceKM float64, homeSize string, packingService bool) (float64, error) {
	factor, ok := homeSizeFactors[strings.ToLower(homeSize)]
	if !ok {
		return 0, fmt.Errorf("unknown home size %q", homeSize)
	}

	price := distanceKM * p.BasePricePerKM * factor
	if packingService {
		price += p.PackingFee
	}
	return price, nil
}
