package view

import (
	"fmt"

	"github.com/avelasq/paycheck-planner/internal/models"
)

// DetailRow is one labeled figure in the results list.
type DetailRow struct {
	Label string
	Value string
}

// ChartRow is a display-ready bar of the breakdown chart. Percent holds one
// fractional digit and doubles as the bar width.
type ChartRow struct {
	Label   string
	Percent string
}

// ChartView mirrors models.ChartBreakdown with formatted percentages.
type ChartView struct {
	Empty bool
	Rows  []ChartRow
}

// ResultView is everything the results fragment needs. All presentation
// decisions (period mode, summary polarity, annual line) are made here so
// the templates stay free of logic beyond presence checks.
type ResultView struct {
	Summary    string
	Favorable  bool
	Details    []DetailRow
	AnnualLine string
	Chart      ChartView
	Advice     []string
}

// BuildResult assembles the view model for a successful analysis. The mode
// selects per-paycheck or monthly-equivalent figures for the summary and the
// detail list; the chart always uses per-paycheck percentages, which are
// identical under the uniform monthly scaling. Summary polarity follows the
// sign of available cash alone.
func BuildResult(result models.AnalysisResult, mode string, showAnnual bool, advice []string, chart models.ChartBreakdown) ResultView {
	monthly := mode == models.PeriodMonthly
	v := ResultView{Advice: advice}

	if result.AvailableCash.Sign() <= 0 {
		if monthly {
			v.Summary = "You do not have leftover cash after debts (in the monthly equivalent). " +
				"You cannot save based on these numbers."
		} else {
			v.Summary = "You do not have leftover cash after debts this paycheck. " +
				"You cannot save based on these numbers."
		}
	} else {
		v.Favorable = true
		if monthly {
			v.Summary = fmt.Sprintf(
				"Monthly equivalent: you have %s left after debts. You save %s and keep %s for other expenses per month.",
				result.AvailableMonthly.StringFixed(2),
				result.MonthlySavings.StringFixed(2),
				result.MonthlySpending.StringFixed(2))
		} else {
			v.Summary = fmt.Sprintf(
				"You have %s left after debts this paycheck. You save %s and keep %s for other expenses.",
				result.AvailableCash.StringFixed(2),
				result.Savings.StringFixed(2),
				result.Spending.StringFixed(2))
		}
	}

	if monthly {
		v.Details = []DetailRow{
			{Label: "total_debt_per_month (approx)", Value: result.TotalDebtMonthly.StringFixed(2)},
			{Label: "available_cash_before_saving_per_month (approx)", Value: result.AvailableMonthly.StringFixed(2)},
			{Label: "savings_per_month (approx)", Value: result.MonthlySavings.StringFixed(2)},
			{Label: "spending_money_per_month (approx)", Value: result.MonthlySpending.StringFixed(2)},
		}
	} else {
		v.Details = []DetailRow{
			{Label: "total_debt_per_paycheck", Value: result.TotalDebt.StringFixed(2)},
			{Label: "available_cash_before_saving", Value: result.AvailableCash.StringFixed(2)},
			{Label: "savings_per_paycheck", Value: result.Savings.StringFixed(2)},
			{Label: "spending_money_per_paycheck", Value: result.Spending.StringFixed(2)},
		}
	}

	if showAnnual {
		v.AnnualLine = fmt.Sprintf("annual_savings (26 paychecks): %s | annual_spending (26 paychecks): %s",
			result.AnnualSavings.StringFixed(2), result.AnnualSpending.StringFixed(2))
	}

	v.Chart.Empty = chart.Empty
	for _, seg := range chart.Segments {
		v.Chart.Rows = append(v.Chart.Rows, ChartRow{Label: seg.Label, Percent: seg.Percent.StringFixed(1)})
	}

	return v
}
