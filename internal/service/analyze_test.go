package service

import (
	"testing"
)

func TestAnalyze_NoDebt(t *testing.T) {
	svc := newTestService(t)

	// Scenario A: all payments zero, income 1000, save 10%.
	result := svc.Analyze(input(t, "0", "0", "0", "0", "1000", "10"))

	checks := []struct {
		name, got, want string
	}{
		{"total_debt", result.TotalDebt.StringFixed(2), "0.00"},
		{"available_cash", result.AvailableCash.StringFixed(2), "1000.00"},
		{"savings_per_paycheck", result.Savings.StringFixed(2), "100.00"},
		{"spending_per_paycheck", result.Spending.StringFixed(2), "900.00"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
	if !result.CanSave {
		t.Error("CanSave = false, want true")
	}
}

func TestAnalyze_Shortfall(t *testing.T) {
	svc := newTestService(t)

	// Scenario B: total debt 1000 exceeds income 900.
	result := svc.Analyze(input(t, "500", "200", "150", "150", "900", "20"))

	if result.CanSave {
		t.Error("CanSave = true, want false")
	}
	if got := result.AvailableCash.StringFixed(2); got != "-100.00" {
		t.Errorf("available_cash = %s, want -100.00", got)
	}
	if got := result.Savings.StringFixed(2); got != "0.00" {
		t.Errorf("savings = %s, want 0.00", got)
	}
	if got := result.Spending.StringFixed(2); got != "-100.00" {
		t.Errorf("spending = %s, want -100.00 (spending carries the shortfall)", got)
	}
}

func TestAnalyze_SavingsPlusSpendingEqualsAvailable(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name    string
		income  string
		percent string
	}{
		{"ten percent", "1234.56", "10"},
		{"odd percent", "999.99", "33.33"},
		{"zero percent", "500", "0"},
		{"full percent", "500", "100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.Analyze(input(t, "100", "0", "0", "0", tt.income, tt.percent))
			sum := result.Savings.Add(result.Spending)
			if !sum.Equal(result.AvailableCash) {
				t.Fatalf("savings+spending = %s, want %s", sum, result.AvailableCash)
			}
		})
	}
}

func TestAnalyze_RatioAbsentWithoutIncome(t *testing.T) {
	svc := newTestService(t)

	result := svc.Analyze(input(t, "500", "0", "0", "0", "0", "10"))
	if result.DebtIncomeRatio.Valid {
		t.Fatalf("DebtIncomeRatio = %s, want absent for zero income", result.DebtIncomeRatio.Decimal)
	}
}

func TestAnalyze_RatioPresentWithIncome(t *testing.T) {
	svc := newTestService(t)

	result := svc.Analyze(input(t, "650", "0", "0", "0", "1000", "10"))
	if !result.DebtIncomeRatio.Valid {
		t.Fatal("DebtIncomeRatio absent, want 0.65")
	}
	if got := result.DebtIncomeRatio.Decimal.StringFixed(2); got != "0.65" {
		t.Fatalf("DebtIncomeRatio = %s, want 0.65", got)
	}
}

func TestAnalyze_ZeroDebtZeroIncomeRatioIsDistinguishable(t *testing.T) {
	svc := newTestService(t)

	withIncome := svc.Analyze(input(t, "0", "0", "0", "0", "1000", "10"))
	if !withIncome.DebtIncomeRatio.Valid || !withIncome.DebtIncomeRatio.Decimal.IsZero() {
		t.Fatalf("ratio with income = %+v, want a valid zero", withIncome.DebtIncomeRatio)
	}

	withoutIncome := svc.Analyze(input(t, "0", "0", "0", "0", "0", "10"))
	if withoutIncome.DebtIncomeRatio.Valid {
		t.Fatal("ratio without income should be absent, not zero")
	}
}

func TestAnalyze_MonthlyAndAnnualScalings(t *testing.T) {
	svc := newTestService(t)

	result := svc.Analyze(input(t, "300", "100", "50", "50", "1200", "25"))

	scalings := []struct {
		name      string
		got, want string
	}{
		{"total_debt_monthly", result.TotalDebtMonthly.String(), result.TotalDebt.Mul(monthlyFactor).String()},
		{"available_monthly", result.AvailableMonthly.String(), result.AvailableCash.Mul(monthlyFactor).String()},
		{"monthly_savings", result.MonthlySavings.String(), result.Savings.Mul(monthlyFactor).String()},
		{"monthly_spending", result.MonthlySpending.String(), result.Spending.Mul(monthlyFactor).String()},
		{"annual_savings", result.AnnualSavings.String(), result.Savings.Mul(paychecksPerYear).String()},
		{"annual_spending", result.AnnualSpending.String(), result.Spending.Mul(paychecksPerYear).String()},
	}
	for _, sc := range scalings {
		if sc.got != sc.want {
			t.Errorf("%s = %s, want %s", sc.name, sc.got, sc.want)
		}
	}
}

func TestAnalyze_ClampsOutOfContractPercent(t *testing.T) {
	svc := newTestService(t)

	over := svc.Analyze(input(t, "0", "0", "0", "0", "1000", "150"))
	if got := over.Savings.StringFixed(2); got != "1000.00" {
		t.Errorf("savings with percent 150 = %s, want 1000.00 (clamped to 100)", got)
	}

	under := svc.Analyze(input(t, "0", "0", "0", "0", "1000", "-10"))
	if got := under.Savings.StringFixed(2); got != "0.00" {
		t.Errorf("savings with percent -10 = %s, want 0.00 (clamped to 0)", got)
	}
}

// Display rounding is round-half-up: StringFixed rounds ties away from zero.
func TestAnalyze_DisplayRoundingHalfUp(t *testing.T) {
	svc := newTestService(t)

	// available 4.69, save 50% -> savings 2.345, a .xx5 boundary.
	result := svc.Analyze(input(t, "0", "0", "0", "0", "4.69", "50"))
	if got := result.Savings.StringFixed(2); got != "2.35" {
		t.Fatalf("savings = %s, want 2.35 (half rounds up)", got)
	}
	if got := result.Spending.StringFixed(2); got != "2.35" {
		t.Fatalf("spending = %s, want 2.35 (half rounds up)", got)
	}
}
