package service

import (
	"github.com/avelasq/paycheck-planner/internal/models"
	"github.com/shopspring/decimal"
)

// Advice thresholds. Ratios are against per-paycheck income; the savings
// floor is the larger of 20 and 5% of leftover cash.
var (
	ratioVeryHeavy  = decimal.NewFromFloat(0.6)
	ratioHigh       = decimal.NewFromFloat(0.4)
	savingsFloor    = decimal.NewFromInt(20)
	savingsFraction = decimal.NewFromFloat(0.05)
)

const (
	msgShortfall = "You are short this period. First goal: get leftover cash to at least 0. " +
		"Options: reduce non-essential spending, pause extra debt payments, or temporarily increase income " +
		"(overtime, side work, selling unused items)."
	msgBillsVsFlexible = "List your must-pay bills vs. flexible expenses. Anything flexible should be cut or reduced " +
		"until leftover cash is non-negative."
	msgVeryHeavyDebt = "Your debt payments are more than 60% of your income this period. This is very heavy. " +
		"Consider refinancing, consolidating, or focusing on paying down one high-interest debt while " +
		"keeping others at minimum payments."
	msgHighDebt = "Your debt payments are between 40% and 60% of your income this period. This is high. " +
		"Be careful taking on new debt and try to reduce one balance consistently."
	msgLowSavings = "You have leftover cash but are saving a small portion of it. " +
		"If possible, slowly increase your save percentage (for example, +1% every month) " +
		"until you reach a level that feels sustainable."
)

// Advise maps a result to zero or more advice messages, in a fixed order.
// Rules are independent except the two debt-load messages, which are
// mutually exclusive. A shortfall always yields both shortfall messages.
func (s *Service) Advise(result models.AnalysisResult) []string {
	var msgs []string

	if result.AvailableCash.IsNegative() {
		msgs = append(msgs, msgShortfall, msgBillsVsFlexible)
	}

	if result.DebtIncomeRatio.Valid {
		switch r := result.DebtIncomeRatio.Decimal; {
		case r.GreaterThan(ratioVeryHeavy):
			msgs = append(msgs, msgVeryHeavyDebt)
		case r.GreaterThan(ratioHigh):
			msgs = append(msgs, msgHighDebt)
		}
	}

	if result.AvailableCash.IsPositive() {
		floor := decimal.Max(savingsFloor, result.AvailableCash.Mul(savingsFraction))
		if result.Savings.LessThan(floor) {
			msgs = append(msgs, msgLowSavings)
		}
	}

	return msgs
}
