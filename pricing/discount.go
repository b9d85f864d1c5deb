package pricing

import "pricewise/models"

// Elasticity is the fixed price-elasticity constant of the simulation model.
const Elasticity = -1.5

// baselineQuantity is the assumed monthly unit volume at zero discount.
const baselineQuantity = 100.0

// simulationCost picks the unit cost for a product, falling back to half the
// original price when none is recorded.
func simulationCost(product models.Product) float64 {
	if product.Cost > 0 {
		return product.Cost
	}
	return DefaultCost(product.BasePrice)
}

// SimulateDiscount projects volume, revenue and profit for one discount rate
// using the linear elasticity model. Pure: identical params give identical
// results.
func SimulateDiscount(product models.Product, discountRate, expectedDemandIncrease float64) models.SimulationResult {
	cost := simulationCost(product)

	quantityChange := discountRate * -Elasticity * expectedDemandIncrease
	expectedSales := baselineQuantity * (1 + quantityChange)
	discountedPrice := product.BasePrice * (1 - discountRate)

	return models.SimulationResult{
		ProductID:       product.ID,
		OriginalPrice:   product.BasePrice,
		DiscountedPrice: round2(discountedPrice),
		ExpectedSales:   round2(expectedSales),
		ExpectedRevenue: round2(Revenue(discountedPrice, expectedSales)),
		ExpectedProfit:  round2(Profit(discountedPrice, cost, expectedSales)),
	}
}

// OptimizeDiscount sweeps discounts from 0% to 50% in 5% steps with the
// simplified linear volume model (sales increase = 1 + 2*discount) and picks
// the profit-maximizing rate. Ties go to the lowest discount.
func OptimizeDiscount(product models.Product) models.DiscountSweep {
	cost := simulationCost(product)

	sweep := models.DiscountSweep{ProductID: product.ID}
	var bestProfit float64
	for i := 0; i <= 10; i++ {
		discount := float64(i*5) / 100
		salesIncrease := 1 + 2*discount
		units := baselineQuantity * salesIncrease
		price := product.BasePrice * (1 - discount)
		profit := Profit(price, cost, units)

		sweep.Steps = append(sweep.Steps, models.DiscountStep{
			DiscountRate:    discount,
			DiscountedPrice: round2(price),
			ExpectedUnits:   round2(units),
			ExpectedRevenue: round2(Revenue(price, units)),
			ExpectedProfit:  round2(profit),
		})

		if i == 0 || profit > bestProfit {
			bestProfit = profit
			sweep.BestRate = discount
			sweep.BestProfit = round2(profit)
		}
	}

	return sweep
}
