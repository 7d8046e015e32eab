package forecast

import (
	"fmt"

	"github.com/GustaPeruci/PersonalFinanceTracker/internal/models"
	"github.com/GustaPeruci/PersonalFinanceTracker/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RiskLevel classifies how much a candidate transaction endangers future
// solvency.
//
// swagger:enum RiskLevel
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// horizonMonths is the projection window the impact analysis looks at.
const horizonMonths = 12

// maxCriticalMonths is the number of critical months a candidate may cause
// before it is classified medium risk.
const maxCriticalMonths = 3

// Accumulated balance thresholds, in currency units.
var (
	criticalAccumulated = decimal.NewFromInt(-1000) // below this, a month counts as critical
	mediumAccumulated   = decimal.NewFromInt(-500)  // worst month below this means medium risk
	highAccumulated     = decimal.NewFromInt(-2000) // worst month below this means high risk
)

// Impact quantifies the effect of a candidate transaction.
type Impact struct {
	MonthlyImpact     decimal.Decimal `json:"monthlyImpact" example:"-1490.32"`                             // Effect on a single active month, signed by kind
	TotalImpact       decimal.Decimal `json:"totalImpact" example:"-8941.92"`                               // Effect over the whole lifetime of the transaction
	CriticalMonths    []string        `json:"criticalMonths" example:"November/2025,December/2025"`         // Months with negative net balance or critically low accumulated balance
	RecommendedAction string          `json:"recommendedAction" example:"Monitor the accumulated balance."` // Human readable recommendation
	RiskLevel         RiskLevel       `json:"riskLevel" example:"medium"`                                   // Risk classification
}

// Analysis is the result of simulating a candidate transaction.
type Analysis struct {
	CurrentProjections []MonthlyProjection `json:"currentProjections"` // Projection without the candidate
	NewProjections     []MonthlyProjection `json:"newProjections"`     // Projection with the candidate included
	Impact             Impact              `json:"impact"`             // The difference, quantified and classified
}

// Analyze simulates committing the candidate transaction: it projects a
// year of months without and with the candidate and classifies the risk of
// going through with it.
//
// The candidate is only ever part of the in-memory snapshot, nothing is
// persisted. Its ID is cleared so a stored transaction can never be
// confused with a simulated one.
func Analyze(existing []models.Transaction, candidate models.Transaction, start types.Month) Analysis {
	current := Generate(existing, start, horizonMonths)

	candidate.ID = uuid.Nil

	withCandidate := make([]models.Transaction, 0, len(existing)+1)
	withCandidate = append(withCandidate, existing...)
	withCandidate = append(withCandidate, candidate)

	projected := Generate(withCandidate, start, horizonMonths)

	return Analysis{
		CurrentProjections: current,
		NewProjections:     projected,
		Impact:             calculateImpact(projected, candidate),
	}
}

func calculateImpact(projected []MonthlyProjection, candidate models.Transaction) Impact {
	monthlyImpact := candidate.Amount
	if candidate.Kind != models.KindCredit {
		monthlyImpact = candidate.Amount.Neg()
	}

	totalImpact := monthlyImpact
	if candidate.Kind == models.KindInstallment {
		installments := candidate.Installments
		if installments < 1 {
			installments = 1
		}

		totalImpact = monthlyImpact.Mul(decimal.NewFromInt(int64(installments)))
	}

	criticalMonths := make([]string, 0)
	for _, p := range projected {
		if p.NetBalance.IsNegative() || p.AccumulatedBalance.LessThan(criticalAccumulated) {
			criticalMonths = append(criticalMonths, fmt.Sprintf("%s/%d", p.MonthName, p.Year))
		}
	}

	// Credits can only improve the outlook
	riskLevel := RiskLow
	recommendedAction := "Recommended. The transaction has a positive effect on your finances."

	if candidate.Kind != models.KindCredit && len(projected) > 0 {
		worst := projected[0].AccumulatedBalance
		for _, p := range projected[1:] {
			if p.AccumulatedBalance.LessThan(worst) {
				worst = p.AccumulatedBalance
			}
		}

		switch {
		case worst.LessThan(highAccumulated):
			riskLevel = RiskHigh
			recommendedAction = "Attention! This transaction can cause significant financial difficulties. Consider renegotiating amounts or terms."
		case worst.LessThan(mediumAccumulated) || len(criticalMonths) > maxCriticalMonths:
			riskLevel = RiskMedium
			recommendedAction = "Careful! This transaction can tighten the budget. Keep a close eye on the critical months."
		default:
			recommendedAction = "The transaction is viable, but monitor the accumulated balance over the coming months."
		}
	}

	return Impact{
		MonthlyImpact:     monthlyImpact,
		TotalImpact:       totalImpact,
		CriticalMonths:    criticalMonths,
		RecommendedAction: recommendedAction,
		RiskLevel:         riskLevel,
	}
}
