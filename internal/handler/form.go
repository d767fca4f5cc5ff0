package handler

import (
	"net/url"
	"strings"

	"github.com/avelasq/paycheck-planner/internal/models"
	"github.com/shopspring/decimal"
)

// Form field names are fixed by the existing markup and must not change.
const (
	fieldHousingStatus  = "housing_status"
	fieldHousingPayment = "housing_payment"
	fieldAutoPayment    = "auto_payment"
	fieldCreditPayment  = "credit_payment"
	fieldStudentPayment = "student_payment"
	fieldIncome         = "monthly_after_tax_income"
	fieldSavePercent    = "save_percent"
	fieldPeriodMode     = "period_mode"
	fieldShowAnnual     = "show_annual"
)

// decodeFinanceInput maps a submitted form onto a FinanceInput. Numeric
// fields that fail to parse are reported in the validator's field order and
// left at zero; any decode error suppresses computation the same way a
// validation error does.
func decodeFinanceInput(form url.Values) (models.FinanceInput, []string) {
	var errs []string

	amount := func(field, label string) decimal.Decimal {
		raw := strings.TrimSpace(form.Get(field))
		if raw == "" {
			return decimal.Zero
		}
		v, err := decimal.NewFromString(raw)
		if err != nil {
			errs = append(errs, label+" must be a number.")
			return decimal.Zero
		}
		return v
	}

	input := models.FinanceInput{
		HousingStatus:         form.Get(fieldHousingStatus),
		HousingPayment:        amount(fieldHousingPayment, "Housing payment"),
		AutoPayment:           amount(fieldAutoPayment, "Auto loan payment"),
		CreditPayment:         amount(fieldCreditPayment, "Credit card payment"),
		StudentPayment:        amount(fieldStudentPayment, "Student loan payment"),
		MonthlyAfterTaxIncome: amount(fieldIncome, "Take-home pay per paycheck"),
		SavePercent:           amount(fieldSavePercent, "Percent to save"),
		PeriodMode:            form.Get(fieldPeriodMode),
		ShowAnnual:            form.Get(fieldShowAnnual) != "",
	}

	if input.PeriodMode != models.PeriodMonthly {
		input.PeriodMode = models.PeriodPaycheck
	}

	return input, errs
}
