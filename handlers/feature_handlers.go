package handlers

import (
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"

	"pricewise/pricing"
)

// FeatureImportanceRequest lists the spec fields to weigh. Seed fixes the
// placeholder random weights for reproducible output.
type FeatureImportanceRequest struct {
	Features []string `json:"features"`
	Seed     *int64   `json:"seed,omitempty"`
}

// HandleFeatureImportance assigns each feature a placeholder weight,
// normalized to sum to 1 and sorted descending.
func HandleFeatureImportance(c *fiber.Ctx) error {
	var req FeatureImportanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	if len(req.Features) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "features must not be empty"})
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	importances := pricing.NormalizeImportances(req.Features, rng)

	return c.JSON(fiber.Map{"status": "success", "data": importances})
}
