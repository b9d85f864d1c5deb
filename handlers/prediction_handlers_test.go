package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"pricewise/models"
	"pricewise/store"
)

func newPredictionApp() *fiber.App {
	Setup(store.NewSeeded())
	app := fiber.New()
	app.Post("/api/v1/predictions/run", HandlePredictPrice)
	app.Post("/api/v1/predictions", HandleSavePrediction)
	app.Get("/api/v1/predictions/:productId", HandleGetPrediction)
	app.Post("/api/v1/predictions/knn", HandlePredictWithKNN)
	return app
}

func TestPredictPrice(t *testing.T) {
	app := newPredictionApp()

	var envelope struct {
		Data models.PricePrediction `json:"data"`
	}
	status := doJSON(t, app, "POST", "/api/v1/predictions/run", PredictRequest{
		ProductID: "p-001",
		Factors: models.PriceFactors{
			DemandCoefficient:   0.5,
			CompetitorInfluence: 0.2,
			SeasonalityFactor:   0.1,
			MarginOptimization:  0.3,
		},
	}, &envelope)

	assert.Equal(t, 200, status)
	// 999 * 1.3 * 1.1 - 0.2*5
	assert.Equal(t, 1427.57, envelope.Data.OptimalPrice)
	assert.Equal(t, 76.0, envelope.Data.Confidence)
}

func TestPredictPriceFactorOutOfRange(t *testing.T) {
	app := newPredictionApp()
	status := doJSON(t, app, "POST", "/api/v1/predictions/run", PredictRequest{
		ProductID: "p-001",
		Factors:   models.PriceFactors{DemandCoefficient: 1.2},
	}, nil)
	assert.Equal(t, 400, status)
}

func TestSaveAndGetPrediction(t *testing.T) {
	app := newPredictionApp()

	status := doJSON(t, app, "POST", "/api/v1/predictions", PredictRequest{
		ProductID: "p-002",
		Factors:   models.PriceFactors{SeasonalityFactor: 0.5},
	}, nil)
	assert.Equal(t, 201, status)

	var envelope struct {
		Data models.PricePrediction `json:"data"`
	}
	status = doJSON(t, app, "GET", "/api/v1/predictions/p-002", nil, &envelope)
	assert.Equal(t, 200, status)
	assert.Equal(t, "p-002", envelope.Data.ProductID)
	assert.Equal(t, 80.0, envelope.Data.Confidence)

	status = doJSON(t, app, "GET", "/api/v1/predictions/p-003", nil, nil)
	assert.Equal(t, 404, status)
}

func TestPredictWithKNNEndpoint(t *testing.T) {
	app := newPredictionApp()

	var envelope struct {
		Data models.KNNPrediction `json:"data"`
	}
	status := doJSON(t, app, "POST", "/api/v1/predictions/knn", KNNRequest{
		RAM:        "6GB",
		Storage:    "128GB",
		ScreenSize: "6.1 inches",
		Battery:    "3349mAh",
		Camera:     "48MP",
	}, &envelope)

	assert.Equal(t, 200, status)
	assert.Greater(t, envelope.Data.PredictedPrice, 0.0)
	assert.GreaterOrEqual(t, envelope.Data.Confidence, 0.0)
	assert.LessOrEqual(t, envelope.Data.Confidence, 100.0)
}
