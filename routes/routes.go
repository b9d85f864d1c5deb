package routes

import (
	"github.com/gofiber/fiber/v2"

	"pricewise/handlers"
	"pricewise/middleware"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	app.Get("/health", handlers.HandleHealth)
	app.Get("/version", handlers.HandleVersion)

	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/login", handlers.HandleLogin)

	// One-time bootstrap, guarded by INIT_TOKEN
	api.Post("/init", handlers.HandleInitializeAdmin)

	// --- Product Catalog ---
	products := api.Group("/products")
	products.Get("/", handlers.HandleListProducts)
	products.Post("/", middleware.Authenticate, middleware.CheckRole("admin", "merchant"), handlers.HandleCreateProduct)
	products.Get("/:productId", handlers.HandleGetProductByID)
	products.Get("/:productId/competitor-prices", handlers.HandleListCompetitorPrices)
	products.Get("/:productId/competitor-prices/average", handlers.HandleGetAverageCompetitorPrice)

	// --- Dashboard ---
	dashboard := api.Group("/dashboard")
	dashboard.Get("/summary", handlers.HandleGetDashboardSummary)
	dashboard.Get("/sales-trend", handlers.HandleGetSalesTrend)
	dashboard.Get("/top-sellers", handlers.HandleGetTopSellers)

	// --- Price Prediction ---
	predictions := api.Group("/predictions")
	predictions.Post("/predict", handlers.HandlePredictPrice)
	predictions.Post("/knn", handlers.HandlePredictWithKNN)
	predictions.Post("/", middleware.Authenticate, middleware.CheckRole("admin", "merchant"), handlers.HandleSavePrediction)
	predictions.Get("/:productId", handlers.HandleGetPrediction)

	// --- Discount Simulation ---
	simulations := api.Group("/simulations")
	simulations.Post("/discount", handlers.HandleSimulateDiscount)
	simulations.Get("/discount/:productId/optimize", handlers.HandleOptimizeDiscount)

	// --- Resell Valuation ---
	resell := api.Group("/resell")
	resell.Post("/quote", handlers.HandleQuickQuote)
	resell.Post("/calculate", handlers.HandleCalculateResell)
	resell.Post("/evaluate", handlers.HandleEvaluateOffer)
	resell.Get("/models", handlers.HandleListResellModels)

	// --- Feature Importance ---
	api.Post("/features/importance", handlers.HandleFeatureImportance)

	// --- Dataset Import ---
	api.Post("/import/dataset", middleware.Authenticate, middleware.CheckRole("admin", "merchant"), handlers.HandleImportDataset)

	// --- AI Insights ---
	ai := api.Group("/ai", middleware.Authenticate)
	ai.Post("/insights", handlers.HandleGetPricingInsights)
}
