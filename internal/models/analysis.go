package models

import "github.com/shopspring/decimal"

// AnalysisResult represents the derived figures for one request. Fields are
// per paycheck unless suffixed otherwise; monthly fields are the per-paycheck
// figures scaled by 26/12 and annual fields by 26.
type AnalysisResult struct {
	TotalDebt     decimal.Decimal `json:"total_debt"`
	AvailableCash decimal.Decimal `json:"available_cash"`
	CanSave       bool            `json:"can_save"`
	Savings       decimal.Decimal `json:"savings_per_paycheck"`
	Spending      decimal.Decimal `json:"spending_per_paycheck"`

	// DebtIncomeRatio is valid only when income is positive. A zero income
	// must stay distinguishable from a computed ratio of zero.
	DebtIncomeRatio decimal.NullDecimal `json:"debt_income_ratio"`

	TotalDebtMonthly decimal.Decimal `json:"total_debt_monthly"`
	AvailableMonthly decimal.Decimal `json:"available_monthly"`
	MonthlySavings   decimal.Decimal `json:"monthly_savings"`
	MonthlySpending  decimal.Decimal `json:"monthly_spending"`

	AnnualSavings  decimal.Decimal `json:"annual_savings"`
	AnnualSpending decimal.Decimal `json:"annual_spending"`
}
