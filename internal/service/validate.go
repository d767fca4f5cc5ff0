package service

import (
	"github.com/avelasq/paycheck-planner/internal/models"
)

// Validate checks a FinanceInput and returns one message per violated rule.
// Checks run in a fixed field order (housing, auto, credit, student, income,
// save percent) and do not short-circuit, so the user sees every problem at
// once. An empty slice means the input is valid.
func (s *Service) Validate(input models.FinanceInput) []string {
	var errs []string

	if input.HousingPayment.IsNegative() {
		errs = append(errs, "Housing payment cannot be negative.")
	}
	if input.AutoPayment.IsNegative() {
		errs = append(errs, "Auto loan payment cannot be negative.")
	}
	if input.CreditPayment.IsNegative() {
		errs = append(errs, "Credit card payment cannot be negative.")
	}
	if input.StudentPayment.IsNegative() {
		errs = append(errs, "Student loan payment cannot be negative.")
	}
	if input.MonthlyAfterTaxIncome.IsNegative() {
		errs = append(errs, "Take-home pay per paycheck cannot be negative.")
	}
	if input.SavePercent.IsNegative() || input.SavePercent.GreaterThan(oneHundred) {
		errs = append(errs, "Percent to save must be between 0 and 100.")
	}

	return errs
}
