package calculations

import "math"

// ComputeSummary returns the fixed monthly installment and the totals for terms.
// Terms that cannot be amortized (principal, rate or term not positive) yield
// an all-zero summary instead of an error.
func ComputeSummary(terms LoanTerms) RepaymentSummary {
	if !terms.Valid() {
		return RepaymentSummary{}
	}

	P := terms.Principal
	r := terms.MonthlyRate()
	n := float64(terms.TermMonths)

	growth := math.Pow(1.0+r, n)
	monthly := P * (r * growth) / (growth - 1.0)
	total := monthly * n

	return RepaymentSummary{
		MonthlyPayment: monthly,
		TotalInterest:  total - P,
		TotalRepayment: total,
	}
}

// ComputeSchedule materializes the month-by-month amortization table.
// It is empty whenever ComputeSummary degrades to zero. Values keep full
// precision; rounding is left to whoever displays them.
func ComputeSchedule(terms LoanTerms) []AmortizationRow {
	summary := ComputeSummary(terms)
	if summary.IsZero() {
		return nil
	}

	r := terms.MonthlyRate()
	n := terms.TermMonths
	monthly := summary.MonthlyPayment

	schedule := make([]AmortizationRow, 0, n)
	balance := terms.Principal

	for m := 1; m <= n; m++ {
		interest := balance * r
		principalComponent := monthly - interest
		balance -= principalComponent

		// the last installment settles the loan; what remains is float residue
		if balance < 0 || m == n {
			balance = 0
		}

		schedule = append(schedule, AmortizationRow{
			Month:            m,
			Payment:          monthly,
			PrincipalPortion: principalComponent,
			InterestPortion:  interest,
			RemainingBalance: balance,
		})
	}

	return schedule
}
