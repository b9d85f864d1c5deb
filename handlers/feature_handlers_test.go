package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"pricewise/models"
	"pricewise/store"
)

func newFeatureApp() *fiber.App {
	Setup(store.NewSeeded())
	app := fiber.New()
	app.Post("/api/v1/features/importance", HandleFeatureImportance)
	return app
}

func TestFeatureImportanceSeeded(t *testing.T) {
	app := newFeatureApp()
	seed := int64(42)
	body := FeatureImportanceRequest{
		Features: []string{"ram", "storage", "battery", "camera"},
		Seed:     &seed,
	}

	var first, second struct {
		Data []models.FeatureImportance `json:"data"`
	}
	status := doJSON(t, app, "POST", "/api/v1/features/importance", body, &first)
	assert.Equal(t, 200, status)
	assert.Len(t, first.Data, 4)

	sum := 0.0
	for i, feature := range first.Data {
		sum += feature.Importance
		if i > 0 {
			assert.LessOrEqual(t, feature.Importance, first.Data[i-1].Importance)
		}
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	status = doJSON(t, app, "POST", "/api/v1/features/importance", body, &second)
	assert.Equal(t, 200, status)
	assert.Equal(t, first.Data, second.Data)
}

func TestFeatureImportanceEmpty(t *testing.T) {
	app := newFeatureApp()
	status := doJSON(t, app, "POST", "/api/v1/features/importance", FeatureImportanceRequest{}, nil)
	assert.Equal(t, 400, status)
}
