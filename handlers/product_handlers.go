package handlers

import (
	"context"
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pricewise/database"
	"pricewise/models"
	"pricewise/utils"
)

// HandleListProducts returns the product catalog, paginated.
func HandleListProducts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 10)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	products := dataStore.Products()
	total := len(products)

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	response := models.PaginatedProductsResponse{
		Items:      products[start:end],
		Pagination: utils.CreatePagination(total, page, pageSize),
	}

	return c.JSON(fiber.Map{"status": "success", "data": response})
}

// HandleGetProductByID returns a single product.
func HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("productId")

	product, ok := dataStore.ProductByID(productID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": product})
}

// HandleCreateProduct adds a product to the catalog. The database row is
// written first; the in-memory catalog is only updated after the insert
// succeeds, so a failed write changes nothing.
func HandleCreateProduct(c *fiber.Ctx) error {
	var req models.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "name is required"})
	}
	if req.BasePrice <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "base_price must be positive"})
	}
	if req.Inventory < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "inventory must not be negative"})
	}
	if req.Cost < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "cost must not be negative"})
	}

	product := models.Product{
		ID:             uuid.NewString(),
		Name:           req.Name,
		BasePrice:      req.BasePrice,
		Category:       req.Category,
		Inventory:      req.Inventory,
		Cost:           req.Cost,
		Seasonality:    req.Seasonality,
		Specifications: req.Specifications,
	}

	if db := database.GetDB(); db != nil {
		specs, err := json.Marshal(product.Specifications)
		if err != nil {
			specs = []byte("{}")
		}
		query := `
			INSERT INTO products (id, name, base_price, category, inventory, cost, seasonality, specifications)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING created_at
		`
		if err := db.QueryRow(context.Background(), query,
			product.ID, product.Name, product.BasePrice, product.Category,
			product.Inventory, product.Cost, product.Seasonality, specs,
		).Scan(&product.CreatedAt); err != nil {
			log.Printf("Error persisting product %s: %v", product.Name, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create product"})
		}
	}

	product = dataStore.AddProduct(product)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": product})
}

// HandleListCompetitorPrices returns the competitor observations for a product.
func HandleListCompetitorPrices(c *fiber.Ctx) error {
	productID := c.Params("productId")

	if _, ok := dataStore.ProductByID(productID); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
	}

	prices := dataStore.CompetitorPricesByProduct(productID)
	if prices == nil {
		prices = []models.CompetitorPrice{}
	}

	return c.JSON(fiber.Map{"status": "success", "data": prices})
}

// HandleGetAverageCompetitorPrice returns the mean competitor price for a
// product, 0 when there are no observations.
func HandleGetAverageCompetitorPrice(c *fiber.Ctx) error {
	productID := c.Params("productId")

	if _, ok := dataStore.ProductByID(productID); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{
		"product_id":    productID,
		"average_price": dataStore.AverageCompetitorPrice(productID),
	}})
}
