package pricing

import (
	"math"
	"time"

	"pricewise/models"
)

// Predict computes the optimal price for a product from its base price and
// the four tunable factors. An explicit override skips the formula entirely.
// Confidence grows with seasonality and is capped at 95.
func Predict(productID string, basePrice float64, factors models.PriceFactors, override *float64) models.PricePrediction {
	optimal := basePrice*(1+factors.MarginOptimization)*(1+factors.SeasonalityFactor) - factors.CompetitorInfluence*5
	if override != nil {
		optimal = *override
	}

	confidence := math.Min(95, 75+factors.SeasonalityFactor*10)

	return models.PricePrediction{
		ProductID:    productID,
		BasePrice:    basePrice,
		OptimalPrice: round2(optimal),
		Confidence:   confidence,
		Factors:      factors,
		CreatedAt:    time.Now(),
	}
}

// PredictWithCost runs Predict and then applies the margin floor: whenever a
// positive cost is known, the optimal price never drops below 120% of it.
// The floor is enforced on every path that has a cost, not just on save.
func PredictWithCost(productID string, basePrice, cost float64, factors models.PriceFactors, override *float64) models.PricePrediction {
	prediction := Predict(productID, basePrice, factors, override)
	if cost > 0 {
		prediction.ProductCost = &cost
		if floor := cost * 1.2; prediction.OptimalPrice < floor {
			prediction.OptimalPrice = round2(floor)
		}
	}
	return prediction
}

// Revenue is projected revenue at a price and estimated unit sales.
func Revenue(price, estimatedSales float64) float64 {
	return price * estimatedSales
}

// Profit is projected profit at a price, unit cost and estimated unit sales.
func Profit(price, cost, estimatedSales float64) float64 {
	return (price - cost) * estimatedSales
}

// DefaultCost is the fallback unit cost when a product has none recorded.
func DefaultCost(optimalPrice float64) float64 {
	return 0.5 * optimalPrice
}
