package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"pricewise/models"
	"pricewise/store"
)

func newProductApp() *fiber.App {
	Setup(store.NewSeeded())
	app := fiber.New()
	app.Get("/api/v1/products", HandleListProducts)
	app.Get("/api/v1/products/:productId", HandleGetProductByID)
	app.Post("/api/v1/products", HandleCreateProduct)
	app.Get("/api/v1/products/:productId/competitor-prices", HandleListCompetitorPrices)
	app.Get("/api/v1/products/:productId/competitor-prices/average", HandleGetAverageCompetitorPrice)
	return app
}

func TestListProductsPaginated(t *testing.T) {
	app := newProductApp()

	var envelope struct {
		Data models.PaginatedProductsResponse `json:"data"`
	}
	status := doJSON(t, app, "GET", "/api/v1/products?page=1&pageSize=4", nil, &envelope)

	assert.Equal(t, 200, status)
	assert.Len(t, envelope.Data.Items, 4)
	assert.Equal(t, 6, envelope.Data.Pagination.TotalItems)
	assert.Equal(t, 2, envelope.Data.Pagination.TotalPages)

	status = doJSON(t, app, "GET", "/api/v1/products?page=2&pageSize=4", nil, &envelope)
	assert.Equal(t, 200, status)
	assert.Len(t, envelope.Data.Items, 2)
}

func TestGetProductByID(t *testing.T) {
	app := newProductApp()

	var envelope struct {
		Data models.Product `json:"data"`
	}
	status := doJSON(t, app, "GET", "/api/v1/products/p-001", nil, &envelope)
	assert.Equal(t, 200, status)
	assert.Equal(t, "Apple iPhone 15", envelope.Data.Name)

	status = doJSON(t, app, "GET", "/api/v1/products/p-999", nil, nil)
	assert.Equal(t, 404, status)
}

func TestCreateProduct(t *testing.T) {
	app := newProductApp()

	var envelope struct {
		Data models.Product `json:"data"`
	}
	status := doJSON(t, app, "POST", "/api/v1/products", models.CreateProductRequest{
		Name:      "Nothing Phone 2",
		BasePrice: 599,
		Category:  "Midrange",
		Inventory: 20,
		Cost:      380,
	}, &envelope)

	assert.Equal(t, 201, status)
	assert.NotEmpty(t, envelope.Data.ID)
	assert.Equal(t, "Nothing Phone 2", envelope.Data.Name)

	var list struct {
		Data models.PaginatedProductsResponse `json:"data"`
	}
	status = doJSON(t, app, "GET", "/api/v1/products?page=1&pageSize=20", nil, &list)
	assert.Equal(t, 200, status)
	assert.Equal(t, 7, list.Data.Pagination.TotalItems)
}

func TestCreateProductValidation(t *testing.T) {
	app := newProductApp()

	status := doJSON(t, app, "POST", "/api/v1/products", models.CreateProductRequest{
		BasePrice: 599,
	}, nil)
	assert.Equal(t, 400, status)

	status = doJSON(t, app, "POST", "/api/v1/products", models.CreateProductRequest{
		Name:      "Broken",
		BasePrice: -1,
	}, nil)
	assert.Equal(t, 400, status)
}

func TestAverageCompetitorPrice(t *testing.T) {
	app := newProductApp()

	var envelope struct {
		Data struct {
			AveragePrice float64 `json:"average_price"`
		} `json:"data"`
	}
	// p-006 is seeded without competitor observations.
	status := doJSON(t, app, "GET", "/api/v1/products/p-006/competitor-prices/average", nil, &envelope)
	assert.Equal(t, 200, status)
	assert.Equal(t, 0.0, envelope.Data.AveragePrice)

	status = doJSON(t, app, "GET", "/api/v1/products/p-999/competitor-prices/average", nil, nil)
	assert.Equal(t, 404, status)
}
