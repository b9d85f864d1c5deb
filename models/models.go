package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// --- JWT & Auth ---

type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User represents an account in the system (Admin or Merchant).
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// --- Core Models ---

// Product represents a catalog entry for a phone model on sale.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	BasePrice      float64           `json:"base_price"`
	Category       string            `json:"category"`
	Inventory      int               `json:"inventory"`
	Cost           float64           `json:"cost"`
	Seasonality    float64           `json:"seasonality"`
	Specifications map[string]string `json:"specifications,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

// ProductSale is a single recorded sale of a product. Append-only.
type ProductSale struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Date      time.Time `json:"date"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
}

// CompetitorPrice is an observed price for a product at a competitor.
type CompetitorPrice struct {
	ProductID      string    `json:"product_id"`
	CompetitorName string    `json:"competitor_name"`
	Price          float64   `json:"price"`
	Date           time.Time `json:"date"`
}

// PhoneRecord is one row of the smartphone reference dataset, matched by
// "Brand Model" in the resell flow and used as the KNN training set.
type PhoneRecord struct {
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	LaunchPrice float64 `json:"launch_price"`
	DemandLevel float64 `json:"demand_level"`
	RAM         string  `json:"ram"`
	Storage     string  `json:"storage"`
	ScreenSize  string  `json:"screen_size"`
	Battery     string  `json:"battery"`
	Camera      string  `json:"camera"`
}

// FullName returns the "Brand Model" form the resell form matches against.
func (r PhoneRecord) FullName() string {
	return r.Brand + " " + r.Model
}

// --- API Request/Response Structs ---

// CreateProductRequest defines the body for adding a new product.
type CreateProductRequest struct {
	Name           string            `json:"name"`
	BasePrice      float64           `json:"base_price"`
	Category       string            `json:"category"`
	Inventory      int               `json:"inventory"`
	Cost           float64           `json:"cost"`
	Seasonality    float64           `json:"seasonality"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

// KpiData represents a single Key Performance Indicator.
type KpiData struct {
	Value float64 `json:"value"`
}

// ProductSummary represents a summary of a single product's performance.
type ProductSummary struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// DashboardSummary defines the structure for the dashboard summary endpoint.
type DashboardSummary struct {
	TotalSalesRevenue    KpiData          `json:"total_sales_revenue"`
	NumberOfTransactions KpiData          `json:"number_of_transactions"`
	AverageOrderValue    KpiData          `json:"average_order_value"`
	TopSellingProducts   []ProductSummary `json:"top_selling_products"`
}

// TrendPoint is one day of the sales-trend series.
type TrendPoint struct {
	Date     string  `json:"date"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// ImportSummary reports what a dataset upload contained.
type ImportSummary struct {
	Rows     int      `json:"rows"`
	Columns  int      `json:"columns"`
	Headers  []string `json:"headers"`
	Imported int      `json:"imported"`
}

// --- Paginated Responses ---

// Pagination details for paginated responses.
type Pagination struct {
	TotalItems  int `json:"total_items"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
}

// PaginatedProductsResponse for the product catalog listing.
type PaginatedProductsResponse struct {
	Items      []Product  `json:"items"`
	Pagination Pagination `json:"pagination"`
}
