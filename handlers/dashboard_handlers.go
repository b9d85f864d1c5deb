package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"pricewise/models"
)

// HandleGetDashboardSummary aggregates revenue, transaction count, average
// order value and the top five sellers. The result is cached briefly since
// every dashboard load asks for it.
func HandleGetDashboardSummary(c *fiber.Ctx) error {
	const cacheKey = "dashboard:summary"
	if cached, found := responseCache.Get(cacheKey); found {
		return c.JSON(fiber.Map{"status": "success", "data": cached})
	}

	var summary models.DashboardSummary

	sales := dataStore.Sales()
	for _, sale := range sales {
		summary.TotalSalesRevenue.Value += sale.Price * float64(sale.Quantity)
	}
	summary.NumberOfTransactions.Value = float64(len(sales))

	if len(sales) > 0 {
		summary.AverageOrderValue.Value = summary.TotalSalesRevenue.Value / float64(len(sales))
	}

	summary.TopSellingProducts = dataStore.TopSellers(5)

	responseCache.SetDefault(cacheKey, summary)

	return c.JSON(fiber.Map{"status": "success", "data": summary})
}

// HandleGetSalesTrend returns daily sales buckets in ascending date order,
// optionally filtered by product and a start-date cutoff.
func HandleGetSalesTrend(c *fiber.Ctx) error {
	productID := c.Query("productId")
	startDateStr := c.Query("startDate")

	var start *time.Time
	if startDateStr != "" {
		parsed, err := parseDate(startDateStr)
		if err != nil {
			log.Printf("Invalid startDate %q: %v", startDateStr, err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid startDate format"})
		}
		start = &parsed
	}

	if productID != "" {
		if _, ok := dataStore.ProductByID(productID); !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
		}
	}

	trend := dataStore.SalesTrend(productID, start)
	if trend == nil {
		trend = []models.TrendPoint{}
	}

	return c.JSON(fiber.Map{"status": "success", "data": trend})
}

// HandleGetTopSellers returns up to limit products ranked by revenue.
func HandleGetTopSellers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	if limit < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "limit must be positive"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": dataStore.TopSellers(limit)})
}

// parseDate accepts the date formats the dashboard UI has been seen to send.
func parseDate(dateStr string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	var lastErr error
	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}
