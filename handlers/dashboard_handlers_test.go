package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"pricewise/models"
	"pricewise/store"
)

func newDashboardApp() *fiber.App {
	Setup(store.NewSeeded())
	app := fiber.New()
	app.Get("/api/v1/dashboard/summary", HandleGetDashboardSummary)
	app.Get("/api/v1/dashboard/sales-trend", HandleGetSalesTrend)
	app.Get("/api/v1/dashboard/top-sellers", HandleGetTopSellers)
	return app
}

func TestDashboardSummary(t *testing.T) {
	app := newDashboardApp()

	var envelope struct {
		Data models.DashboardSummary `json:"data"`
	}
	status := doJSON(t, app, "GET", "/api/v1/dashboard/summary", nil, &envelope)

	assert.Equal(t, 200, status)
	assert.Greater(t, envelope.Data.TotalSalesRevenue.Value, 0.0)
	assert.Greater(t, envelope.Data.NumberOfTransactions.Value, 0.0)
	assert.InDelta(t,
		envelope.Data.TotalSalesRevenue.Value/envelope.Data.NumberOfTransactions.Value,
		envelope.Data.AverageOrderValue.Value, 1e-6)
	assert.Len(t, envelope.Data.TopSellingProducts, 5)
}

func TestSalesTrendEndpoint(t *testing.T) {
	app := newDashboardApp()

	var envelope struct {
		Data []models.TrendPoint `json:"data"`
	}
	status := doJSON(t, app, "GET", "/api/v1/dashboard/sales-trend", nil, &envelope)
	assert.Equal(t, 200, status)
	assert.NotEmpty(t, envelope.Data)
	for i := 1; i < len(envelope.Data); i++ {
		assert.Less(t, envelope.Data[i-1].Date, envelope.Data[i].Date)
	}

	status = doJSON(t, app, "GET", "/api/v1/dashboard/sales-trend?startDate=yesterday", nil, nil)
	assert.Equal(t, 400, status)

	status = doJSON(t, app, "GET", "/api/v1/dashboard/sales-trend?productId=p-999", nil, nil)
	assert.Equal(t, 404, status)
}

func TestTopSellersEndpoint(t *testing.T) {
	app := newDashboardApp()

	var envelope struct {
		Data []models.ProductSummary `json:"data"`
	}
	status := doJSON(t, app, "GET", "/api/v1/dashboard/top-sellers?limit=3", nil, &envelope)
	assert.Equal(t, 200, status)
	assert.Len(t, envelope.Data, 3)
	for i := 1; i < len(envelope.Data); i++ {
		assert.GreaterOrEqual(t, envelope.Data[i-1].Revenue, envelope.Data[i].Revenue)
	}

	status = doJSON(t, app, "GET", "/api/v1/dashboard/top-sellers?limit=0", nil, nil)
	assert.Equal(t, 400, status)
}
