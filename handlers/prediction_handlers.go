package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"pricewise/database"
	"pricewise/models"
	"pricewise/pricing"
)

// PredictRequest defines the input for running the price predictor.
type PredictRequest struct {
	ProductID     string              `json:"product_id"`
	Factors       models.PriceFactors `json:"factors"`
	PriceOverride *float64            `json:"price_override,omitempty"`
}

// KNNRequest defines the spec strings for a nearest-neighbour estimate.
type KNNRequest struct {
	RAM        string `json:"ram"`
	Storage    string `json:"storage"`
	ScreenSize string `json:"screen_size"`
	Battery    string `json:"battery"`
	Camera     string `json:"camera"`
	K          int    `json:"k,omitempty"`
}

func validateFactors(f models.PriceFactors) error {
	check := func(name string, v float64) error {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be between 0 and 1", name)
		}
		return nil
	}
	if err := check("demand_coefficient", f.DemandCoefficient); err != nil {
		return err
	}
	if err := check("competitor_influence", f.CompetitorInfluence); err != nil {
		return err
	}
	if err := check("seasonality_factor", f.SeasonalityFactor); err != nil {
		return err
	}
	return check("margin_optimization", f.MarginOptimization)
}

// HandlePredictPrice runs the predictor for a product without persisting
// anything.
func HandlePredictPrice(c *fiber.Ctx) error {
	var req PredictRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	if err := validateFactors(req.Factors); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	product, ok := dataStore.ProductByID(req.ProductID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
	}

	prediction := pricing.PredictWithCost(product.ID, product.BasePrice, product.Cost, req.Factors, req.PriceOverride)

	return c.JSON(fiber.Map{"status": "success", "data": prediction})
}

// HandleSavePrediction runs the predictor and stores the result, one
// prediction per product. The database row is written first; on failure the
// in-memory state is left untouched and the caller sees the error.
func HandleSavePrediction(c *fiber.Ctx) error {
	var req PredictRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	if err := validateFactors(req.Factors); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	product, ok := dataStore.ProductByID(req.ProductID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
	}

	prediction := pricing.PredictWithCost(product.ID, product.BasePrice, product.Cost, req.Factors, req.PriceOverride)

	if db := database.GetDB(); db != nil {
		query := `
			INSERT INTO predictions (product_id, base_price, optimal_price, confidence,
				demand_coefficient, competitor_influence, seasonality_factor, margin_optimization,
				product_cost, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (product_id) DO UPDATE SET
				base_price = EXCLUDED.base_price,
				optimal_price = EXCLUDED.optimal_price,
				confidence = EXCLUDED.confidence,
				demand_coefficient = EXCLUDED.demand_coefficient,
				competitor_influence = EXCLUDED.competitor_influence,
				seasonality_factor = EXCLUDED.seasonality_factor,
				margin_optimization = EXCLUDED.margin_optimization,
				product_cost = EXCLUDED.product_cost,
				created_at = EXCLUDED.created_at
		`
		if _, err := db.Exec(context.Background(), query,
			prediction.ProductID, prediction.BasePrice, prediction.OptimalPrice, prediction.Confidence,
			prediction.Factors.DemandCoefficient, prediction.Factors.CompetitorInfluence,
			prediction.Factors.SeasonalityFactor, prediction.Factors.MarginOptimization,
			prediction.ProductCost, prediction.CreatedAt,
		); err != nil {
			log.Printf("Error saving prediction for product %s: %v", prediction.ProductID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to save prediction"})
		}
	}

	dataStore.SavePrediction(prediction)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": prediction})
}

// HandleGetPrediction returns the stored prediction for a product.
func HandleGetPrediction(c *fiber.Ctx) error {
	productID := c.Params("productId")

	prediction, ok := dataStore.PredictionByProduct(productID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "No prediction for this product"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": prediction})
}

// HandlePredictWithKNN estimates a price from the spec strings using the
// nearest records of the reference dataset.
func HandlePredictWithKNN(c *fiber.Ctx) error {
	var req KNNRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	query := models.PhoneRecord{
		RAM:        req.RAM,
		Storage:    req.Storage,
		ScreenSize: req.ScreenSize,
		Battery:    req.Battery,
		Camera:     req.Camera,
	}

	prediction, err := pricing.PredictPriceWithKNN(query, dataStore.Phones(), req.K)
	if err != nil {
		log.Printf("KNN prediction failed: %v", err)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "success", "data": prediction})
}
