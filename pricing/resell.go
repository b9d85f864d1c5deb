package pricing

import (
	"fmt"
	"math"
	"strings"
	"time"

	"pricewise/models"
)

// conditionRates maps a declared condition to its depreciation rate.
var conditionRates = map[models.Condition]float64{
	models.ConditionExcellent: 0,
	models.ConditionGood:      0.10,
	models.ConditionFair:      0.25,
	models.ConditionPoor:      0.40,
}

// negativeKeywords is the vocabulary scanned in free-text condition
// descriptions. Each match pushes the severity up by 0.08.
var negativeKeywords = []string{
	"broken", "crack", "scratch", "damage", "shatter", "dent", "malfunction",
	"problem", "issue", "not working", "faulty", "defect", "bad", "poor",
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValidQuoteCondition reports whether the condition carries a rate in the
// multiplicative quote. Custom is not rated; it only exists for the itemized
// breakdown, where the description supplies the severity.
func ValidQuoteCondition(c models.Condition) bool {
	_, ok := conditionRates[c]
	return ok
}

// ValidSubmissionCondition reports whether the condition is accepted by the
// resell form: the rated conditions plus Custom.
func ValidSubmissionCondition(c models.Condition) bool {
	return c == models.ConditionCustom || ValidQuoteCondition(c)
}

// CalculateResellPrice computes the quick resale quote. Every factor
// multiplies the running price: depreciation (20% per year, capped at 90%),
// condition, demand band, inflation at 3% per elapsed year and a flat 5%
// penalty when a custom description is present.
func CalculateResellPrice(basePrice float64, purchaseYear int, condition models.Condition, demand models.DemandBand, customDescription string) float64 {
	years := time.Now().Year() - purchaseYear

	depreciation := math.Min(0.9, float64(years)*0.20)
	price := basePrice * (1 - depreciation)

	price *= 1 - conditionRates[condition]

	switch demand {
	case models.DemandHigh:
		price *= 1.10
	case models.DemandLow:
		price *= 0.80
	}

	price *= math.Pow(1.03, float64(years))

	if customDescription != "" {
		price *= 0.95
	}

	return round2(price)
}

// CalculateResellBreakdown computes the itemized offer used by the resell
// form. Unlike CalculateResellPrice the adjustments here are additive and
// each is computed against the base price, not the running total; the demand
// adjustment comes from the matched dataset record's demand level. Both
// formulas are load-bearing at their own call sites, so keep them separate.
func CalculateResellBreakdown(basePrice float64, purchaseYear int, condition models.Condition, customDescription string, demandLevel float64) models.ResellBreakdown {
	years := time.Now().Year() - purchaseYear

	yearDepreciation := basePrice * math.Min(0.9, float64(years)*0.20)

	var demandAdjustment float64
	if demandLevel > 0.7 {
		demandAdjustment = basePrice * 0.10
	} else if demandLevel < 0.3 {
		demandAdjustment = -basePrice * 0.20
	}

	var conditionDepreciation float64
	if condition == models.ConditionCustom {
		conditionDepreciation = basePrice * DescriptionSeverity(customDescription)
	} else {
		conditionDepreciation = basePrice * conditionRates[condition]
	}

	inflationAdjustment := basePrice * (math.Pow(1.03, float64(years)) - 1)

	price := basePrice - yearDepreciation + demandAdjustment - conditionDepreciation + inflationAdjustment
	if price < 0 {
		price = 0
	}

	return models.ResellBreakdown{
		BasePrice:             basePrice,
		YearDepreciation:      round2(yearDepreciation),
		DemandAdjustment:      round2(demandAdjustment),
		ConditionDepreciation: round2(conditionDepreciation),
		InflationAdjustment:   round2(inflationAdjustment),
		CalculatedPrice:       round2(price),
	}
}

// DescriptionSeverity maps a free-text condition description to a
// depreciation rate by counting negative-sentiment keywords. Base severity is
// 0.10, each match adds 0.08, capped at 0.50.
func DescriptionSeverity(description string) float64 {
	lowered := strings.ToLower(description)
	count := 0
	for _, kw := range negativeKeywords {
		if strings.Contains(lowered, kw) {
			count++
		}
	}
	return math.Min(0.5, 0.10+float64(count)*0.08)
}

// EvaluateResellPrice compares a customer's asking price to the calculated
// offer using the three-tier policy: within 10% accept, within 25% counter at
// the calculated price, beyond that reject.
func EvaluateResellPrice(calculatedPrice, desiredPrice float64) models.ResellDecision {
	// A floored-to-zero offer has no percentage to compare against.
	if calculatedPrice <= 0 {
		return models.ResellDecision{
			Decision:        models.DecisionReject,
			Message:         "This device has no resale value.",
			CalculatedPrice: calculatedPrice,
		}
	}

	pct := (desiredPrice - calculatedPrice) / calculatedPrice * 100

	decision := models.ResellDecision{
		CalculatedPrice:      calculatedPrice,
		PercentageDifference: pct,
	}

	switch {
	case math.Abs(pct) <= 10:
		decision.Decision = models.DecisionAccept
		decision.Message = "Your asking price is within range. We accept your offer."
	case pct > 10 && pct <= 25, pct >= -25 && pct < -10:
		decision.Decision = models.DecisionCounter
		decision.Message = fmt.Sprintf("We cannot match your asking price, but we can offer %.2f.", calculatedPrice)
	default:
		decision.Decision = models.DecisionReject
		decision.Message = "Your asking price is too far from our valuation."
	}

	return decision
}

// EvaluateResellOffer is the resell form's two-tier policy: a single 10%
// threshold collapsing to Approved or Counteroffer, with no reject tier.
// Kept distinct from EvaluateResellPrice on purpose.
func EvaluateResellOffer(calculatedPrice, desiredPrice float64) models.ResellDecision {
	// This policy has no reject tier, so a floored-to-zero offer becomes a
	// zero counteroffer rather than a division by zero.
	if calculatedPrice <= 0 {
		return models.ResellDecision{
			Decision:        models.OfferCounteroffer,
			Message:         "We cannot make an offer for this device.",
			CalculatedPrice: calculatedPrice,
		}
	}

	pct := (desiredPrice - calculatedPrice) / calculatedPrice * 100

	decision := models.ResellDecision{
		CalculatedPrice:      calculatedPrice,
		PercentageDifference: pct,
	}

	if math.Abs(pct) <= 10 {
		decision.Decision = models.OfferApproved
		decision.Message = fmt.Sprintf("Approved at your asking price of %.2f.", desiredPrice)
	} else {
		decision.Decision = models.OfferCounteroffer
		decision.Message = fmt.Sprintf("Counteroffer: %.2f.", calculatedPrice)
	}

	return decision
}
