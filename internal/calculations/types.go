package calculations

import "github.com/ABHIJEETVINAYJHA07/Innotech-2025/pkg/utils"

// LoanTerms describes a fixed-rate, fixed-term, fully amortizing loan
type LoanTerms struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermMonths        int     `json:"term_months"`
}

// MonthlyRate returns the periodic rate as a fraction
func (t LoanTerms) MonthlyRate() float64 {
	return t.AnnualRatePercent / 100.0 / 12.0
}

// Valid reports whether the terms can be amortized with the standard formula.
// Zero-rate loans are deliberately excluded.
func (t LoanTerms) Valid() bool {
	if !utils.IsFinite(t.Principal) || !utils.IsFinite(t.AnnualRatePercent) {
		return false
	}
	return t.Principal > 0 && t.MonthlyRate() > 0 && t.TermMonths > 0
}

// RepaymentSummary is derived from LoanTerms
type RepaymentSummary struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalInterest  float64 `json:"total_interest"`
	TotalRepayment float64 `json:"total_repayment"`
}

// IsZero reports whether the summary is the degraded all-zero result
func (s RepaymentSummary) IsZero() bool {
	return s == RepaymentSummary{}
}

// AmortizationRow is one period of a repayment schedule
type AmortizationRow struct {
	Month            int     `json:"month"`
	Payment          float64 `json:"payment"`
	PrincipalPortion float64 `json:"principal_portion"`
	InterestPortion  float64 `json:"interest_portion"`
	RemainingBalance float64 `json:"remaining_balance"`
}
