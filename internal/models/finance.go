package models

import "github.com/shopspring/decimal"

// Period mode values, selecting the display units for results.
const (
	PeriodPaycheck = "paycheck"
	PeriodMonthly  = "monthly"
)

// Housing status values. Informational only, not used in computation.
const (
	HousingRent = "rent"
	HousingOwn  = "own"
)

// FinanceInput represents one submitted calculation request.
// All monetary amounts are per paycheck (biweekly).
type FinanceInput struct {
	HousingStatus  string          `json:"housing_status"`
	HousingPayment decimal.Decimal `json:"housing_payment"`
	AutoPayment    decimal.Decimal `json:"auto_payment"`
	CreditPayment  decimal.Decimal `json:"credit_payment"`
	StudentPayment decimal.Decimal `json:"student_payment"`
	// MonthlyAfterTaxIncome is take-home pay per paycheck. The field name
	// is kept for compatibility with the existing form markup.
	MonthlyAfterTaxIncome decimal.Decimal `json:"monthly_after_tax_income"`
	SavePercent           decimal.Decimal `json:"save_percent"`
	PeriodMode            string          `json:"period_mode"`
	ShowAnnual            bool            `json:"show_annual"`
}
