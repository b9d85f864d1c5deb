package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pricewise/models"
	"pricewise/pricing"
)

// HandleSimulateDiscount projects revenue and profit for one discount rate.
func HandleSimulateDiscount(c *fiber.Ctx) error {
	var params models.SimulationParams
	if err := c.BodyParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	if params.DiscountRate < 0 || params.DiscountRate > 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "discount_rate must be between 0 and 1"})
	}
	if params.ExpectedDemandIncrease < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "expected_demand_increase must not be negative"})
	}

	product, ok := dataStore.ProductByID(params.ProductID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
	}

	result := pricing.SimulateDiscount(product, params.DiscountRate, params.ExpectedDemandIncrease)

	return c.JSON(fiber.Map{"status": "success", "data": result})
}

// HandleOptimizeDiscount sweeps discount rates for a product and returns the
// profit-maximizing one. The sweep only depends on catalog data, so the
// response is cached.
func HandleOptimizeDiscount(c *fiber.Ctx) error {
	productID := c.Params("productId")

	cacheKey := "optimize:" + productID
	if cached, found := responseCache.Get(cacheKey); found {
		return c.JSON(fiber.Map{"status": "success", "data": cached})
	}

	product, ok := dataStore.ProductByID(productID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
	}

	sweep := pricing.OptimizeDiscount(product)
	responseCache.SetDefault(cacheKey, sweep)

	return c.JSON(fiber.Map{"status": "success", "data": sweep})
}
