package service

import (
	"github.com/avelasq/paycheck-planner/internal/models"
	"github.com/shopspring/decimal"
)

// Biweekly pay model: 26 paychecks per year, so one month is 26/12 paychecks.
var (
	paychecksPerYear = decimal.NewFromInt(26)
	monthsPerYear    = decimal.NewFromInt(12)
	monthlyFactor    = paychecksPerYear.Div(monthsPerYear)
	oneHundred       = decimal.NewFromInt(100)
)

// Analyze computes the result record for a validated input. It is a pure
// function with no error path: validation is assumed to have passed already,
// and out-of-range inputs still produce mathematically consistent output
// (the save percent is clamped to [0, 100]).
func (s *Service) Analyze(input models.FinanceInput) models.AnalysisResult {
	totalDebt := input.HousingPayment.
		Add(input.AutoPayment).
		Add(input.CreditPayment).
		Add(input.StudentPayment)

	income := input.MonthlyAfterTaxIncome
	available := income.Sub(totalDebt)

	var (
		canSave  bool
		savings  decimal.Decimal
		spending decimal.Decimal
	)
	if available.Sign() <= 0 {
		// Nothing left to split; spending carries the shortfall.
		savings = decimal.Zero
		spending = available
	} else {
		canSave = true
		savings = available.Mul(clampPercent(input.SavePercent)).Div(oneHundred)
		spending = available.Sub(savings)
	}

	var ratio decimal.NullDecimal
	if income.IsPositive() {
		ratio = decimal.NullDecimal{Decimal: totalDebt.Div(income), Valid: true}
	}

	return models.AnalysisResult{
		TotalDebt:     totalDebt,
		AvailableCash: available,
		CanSave:       canSave,
		Savings:       savings,
		Spending:      spending,

		DebtIncomeRatio: ratio,

		TotalDebtMonthly: totalDebt.Mul(monthlyFactor),
		AvailableMonthly: available.Mul(monthlyFactor),
		MonthlySavings:   savings.Mul(monthlyFactor),
		MonthlySpending:  spending.Mul(monthlyFactor),

		AnnualSavings:  savings.Mul(paychecksPerYear),
		AnnualSpending: spending.Mul(paychecksPerYear),
	}
}

func clampPercent(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(oneHundred) {
		return oneHundred
	}
	return p
}
