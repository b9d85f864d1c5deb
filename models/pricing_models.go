package models

import "time"

// PriceFactors are the four tunable inputs to the price predictor.
// Each is expected in [0,1]; they are independent of each other.
type PriceFactors struct {
	DemandCoefficient   float64 `json:"demand_coefficient"`
	CompetitorInfluence float64 `json:"competitor_influence"`
	SeasonalityFactor   float64 `json:"seasonality_factor"`
	MarginOptimization  float64 `json:"margin_optimization"`
}

// PricePrediction is the predictor output for one product. At most one
// prediction is kept per product; re-saving overwrites the previous one.
type PricePrediction struct {
	ProductID    string       `json:"product_id"`
	BasePrice    float64      `json:"base_price"`
	OptimalPrice float64      `json:"optimal_price"`
	Confidence   float64      `json:"confidence"`
	Factors      PriceFactors `json:"factors"`
	ProductCost  *float64     `json:"product_cost,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// KNNPrediction is the output of the nearest-neighbour price estimate.
type KNNPrediction struct {
	PredictedPrice float64 `json:"predicted_price"`
	Confidence     float64 `json:"confidence"`
}

// SimulationParams are the inputs to a single discount simulation.
type SimulationParams struct {
	ProductID              string  `json:"product_id"`
	DiscountRate           float64 `json:"discount_rate"`
	StartDate              string  `json:"start_date,omitempty"`
	EndDate                string  `json:"end_date,omitempty"`
	ExpectedDemandIncrease float64 `json:"expected_demand_increase"`
}

// SimulationResult is the pure derived output of a discount simulation.
type SimulationResult struct {
	ProductID       string  `json:"product_id"`
	OriginalPrice   float64 `json:"original_price"`
	DiscountedPrice float64 `json:"discounted_price"`
	ExpectedSales   float64 `json:"expected_sales"`
	ExpectedRevenue float64 `json:"expected_revenue"`
	ExpectedProfit  float64 `json:"expected_profit"`
}

// DiscountStep is one point of the 0-50% discount sweep.
type DiscountStep struct {
	DiscountRate    float64 `json:"discount_rate"`
	DiscountedPrice float64 `json:"discounted_price"`
	ExpectedUnits   float64 `json:"expected_units"`
	ExpectedRevenue float64 `json:"expected_revenue"`
	ExpectedProfit  float64 `json:"expected_profit"`
}

// DiscountSweep is the full sweep plus the profit-maximizing rate.
type DiscountSweep struct {
	ProductID  string         `json:"product_id"`
	Steps      []DiscountStep `json:"steps"`
	BestRate   float64        `json:"best_rate"`
	BestProfit float64        `json:"best_profit"`
}

// FeatureImportance is a normalized weight for one specification field.
type FeatureImportance struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}
