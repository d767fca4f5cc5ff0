package service

import (
	"github.com/avelasq/paycheck-planner/internal/models"
	"github.com/shopspring/decimal"
)

// BuildChart normalizes the per-paycheck debt/savings/spending split into
// percentages for the bar chart. Negative amounts are clamped to zero before
// normalizing; when nothing is positive the breakdown is marked empty.
// Each percentage is rounded to one fractional digit independently, so the
// three need not sum to exactly 100.
func (s *Service) BuildChart(result models.AnalysisResult) models.ChartBreakdown {
	debt := clampNonNegative(result.TotalDebt)
	savings := clampNonNegative(result.Savings)
	spending := clampNonNegative(result.Spending)

	total := debt.Add(savings).Add(spending)
	if total.Sign() <= 0 {
		return models.ChartBreakdown{Empty: true}
	}

	pct := func(v decimal.Decimal) decimal.Decimal {
		if v.Sign() <= 0 {
			return decimal.Zero
		}
		return v.Mul(oneHundred).Div(total).Round(1)
	}

	return models.ChartBreakdown{
		Segments: []models.ChartSegment{
			{Label: "Debt", Percent: pct(debt)},
			{Label: "Savings", Percent: pct(savings)},
			{Label: "Spending", Percent: pct(spending)},
		},
	}
}

func clampNonNegative(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}
