package models

// Condition is the declared state of a phone offered for resale.
type Condition string

const (
	ConditionExcellent Condition = "Excellent"
	ConditionGood      Condition = "Good"
	ConditionFair      Condition = "Fair"
	ConditionPoor      Condition = "Poor"
	ConditionCustom    Condition = "Custom"
)

// DemandBand is the coarse demand input to the quick resale quote.
type DemandBand string

const (
	DemandHigh   DemandBand = "high"
	DemandMedium DemandBand = "medium"
	DemandLow    DemandBand = "low"
)

// Decision values for the three-tier evaluation.
const (
	DecisionAccept  = "accept"
	DecisionCounter = "counter"
	DecisionReject  = "reject"
)

// Decision values for the two-tier offer evaluation used by the resell form.
const (
	OfferApproved     = "Approved"
	OfferCounteroffer = "Counteroffer"
)

// ResellSubmission is a customer's buy-back request.
type ResellSubmission struct {
	PhoneModel   string    `json:"phone_model"`
	PurchaseYear int       `json:"purchase_year"`
	Condition    Condition `json:"condition"`
	Description  string    `json:"description,omitempty"`
	DesiredPrice float64   `json:"desired_price"`
}

// ResellBreakdown itemizes how a resale offer was computed.
type ResellBreakdown struct {
	BasePrice             float64 `json:"base_price"`
	YearDepreciation      float64 `json:"year_depreciation"`
	DemandAdjustment      float64 `json:"demand_adjustment"`
	ConditionDepreciation float64 `json:"condition_depreciation"`
	InflationAdjustment   float64 `json:"inflation_adjustment"`
	CalculatedPrice       float64 `json:"calculated_price"`
}

// ResellDecision is the verdict on a customer's asking price.
type ResellDecision struct {
	Decision             string  `json:"decision"`
	Message              string  `json:"message"`
	CalculatedPrice      float64 `json:"calculated_price"`
	PercentageDifference float64 `json:"percentage_difference"`
}

// ResellCalculation is the full response for a resell submission.
type ResellCalculation struct {
	PhoneModel string          `json:"phone_model"`
	Breakdown  ResellBreakdown `json:"breakdown"`
	Decision   ResellDecision  `json:"decision"`
}
