package handlers

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"pricewise/config"
)

// PricingInsightRequest asks the model for commentary on one product.
type PricingInsightRequest struct {
	ProductID string `json:"product_id"`
	Question  string `json:"question,omitempty"`
}

// HandleGetPricingInsights summarizes a product's pricing picture with the
// Gemini API: current price, competitor average, sales performance and the
// stored prediction if one exists.
// POST /api/v1/ai/insights
func HandleGetPricingInsights(c *fiber.Ctx) error {
	var req PricingInsightRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request body",
		})
	}

	product, ok := dataStore.ProductByID(req.ProductID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are a pricing analyst for a smartphone retailer.\n")
	fmt.Fprintf(&sb, "Product: %s (category %s), listed at %.2f, unit cost %.2f, %d units in stock.\n",
		product.Name, product.Category, product.BasePrice, product.Cost, product.Inventory)

	if avg := dataStore.AverageCompetitorPrice(product.ID); avg > 0 {
		fmt.Fprintf(&sb, "Average competitor price: %.2f.\n", avg)
	}

	sales := dataStore.SalesByProduct(product.ID)
	var units int
	var revenue float64
	for _, sale := range sales {
		units += sale.Quantity
		revenue += sale.Price * float64(sale.Quantity)
	}
	fmt.Fprintf(&sb, "Recent sales: %d transactions, %d units, %.2f revenue.\n", len(sales), units, revenue)

	if prediction, ok := dataStore.PredictionByProduct(product.ID); ok {
		fmt.Fprintf(&sb, "Model-suggested optimal price: %.2f (confidence %.0f%%).\n", prediction.OptimalPrice, prediction.Confidence)
	}

	if req.Question != "" {
		fmt.Fprintf(&sb, "Question from the merchant: %s\n", req.Question)
	} else {
		sb.WriteString("Give a short assessment of this price position and one concrete recommendation.\n")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(os.Getenv("GEMINI_API_KEY")))
	if err != nil {
		log.Printf("Error creating Gemini client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Failed to initialize Gemini client",
		})
	}
	defer client.Close()

	modelName := config.AppConfig.GeminiModel
	if modelName == "" {
		modelName = "gemini-1.5-pro-latest"
	}

	model := client.GenerativeModel(modelName)
	resp, err := model.GenerateContent(ctx, genai.Text(sb.String()))
	if err != nil {
		log.Printf("Error generating content: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Failed to generate insights",
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   resp,
	})
}
