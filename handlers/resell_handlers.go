package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"pricewise/models"
	"pricewise/pricing"
)

// QuickQuoteRequest is the caller-supplied variant of the resale quote: the
// caller provides the base price and a coarse demand band directly.
type QuickQuoteRequest struct {
	BasePrice    float64           `json:"base_price"`
	PurchaseYear int               `json:"purchase_year"`
	Condition    models.Condition  `json:"condition"`
	Demand       models.DemandBand `json:"demand"`
	Description  string            `json:"description,omitempty"`
	DesiredPrice float64           `json:"desired_price"`
}

func validateResellYears(purchaseYear int) string {
	currentYear := time.Now().Year()
	if purchaseYear > currentYear {
		return "purchase_year cannot be in the future"
	}
	if purchaseYear < 2000 {
		return "purchase_year is too far in the past"
	}
	return ""
}

// HandleQuickQuote computes the multiplicative resale quote and evaluates the
// asking price with the three-tier accept/counter/reject policy.
func HandleQuickQuote(c *fiber.Ctx) error {
	var req QuickQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	if req.BasePrice <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "base_price must be positive"})
	}
	if req.DesiredPrice <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "desired_price must be positive"})
	}
	if !pricing.ValidQuoteCondition(req.Condition) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "condition must be one of Excellent, Good, Fair or Poor"})
	}
	if msg := validateResellYears(req.PurchaseYear); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": msg})
	}

	calculated := pricing.CalculateResellPrice(req.BasePrice, req.PurchaseYear, req.Condition, req.Demand, req.Description)
	decision := pricing.EvaluateResellPrice(calculated, req.DesiredPrice)

	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{
		"calculated_price": calculated,
		"decision":         decision,
	}})
}

// HandleCalculateResell matches the submitted model against the reference
// dataset, computes the itemized offer and evaluates the asking price with
// the resell form's two-tier policy. An unknown model is a 404, not a
// calculation.
func HandleCalculateResell(c *fiber.Ctx) error {
	var req models.ResellSubmission
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	if req.DesiredPrice <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "desired_price must be positive"})
	}
	if !pricing.ValidSubmissionCondition(req.Condition) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "condition must be one of Excellent, Good, Fair, Poor or Custom"})
	}
	if msg := validateResellYears(req.PurchaseYear); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": msg})
	}

	record, ok := dataStore.FindPhoneModel(req.PhoneModel)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Phone model not found"})
	}

	breakdown := pricing.CalculateResellBreakdown(record.LaunchPrice, req.PurchaseYear, req.Condition, req.Description, record.DemandLevel)
	decision := pricing.EvaluateResellOffer(breakdown.CalculatedPrice, req.DesiredPrice)

	calculation := models.ResellCalculation{
		PhoneModel: record.FullName(),
		Breakdown:  breakdown,
		Decision:   decision,
	}

	return c.JSON(fiber.Map{"status": "success", "data": calculation})
}

// EvaluateOfferRequest compares an asking price against an already computed
// offer without redoing the calculation.
type EvaluateOfferRequest struct {
	CalculatedPrice float64 `json:"calculated_price"`
	DesiredPrice    float64 `json:"desired_price"`
}

// HandleEvaluateOffer applies the resell form's two-tier policy to a price
// pair. Used when the form re-evaluates after the user edits their ask.
func HandleEvaluateOffer(c *fiber.Ctx) error {
	var req EvaluateOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	if req.CalculatedPrice <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "calculated_price must be positive"})
	}
	if req.DesiredPrice <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "desired_price must be positive"})
	}

	decision := pricing.EvaluateResellOffer(req.CalculatedPrice, req.DesiredPrice)

	return c.JSON(fiber.Map{"status": "success", "data": decision})
}

// HandleListResellModels lists the reference dataset the resell form matches
// against.
func HandleListResellModels(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "success", "data": dataStore.Phones()})
}
