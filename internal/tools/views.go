package tools

import (
	"github.com/shopspring/decimal"

	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/calculations"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/schemes"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/pkg/utils"
)

// SummaryView is a repayment summary rounded for display
type SummaryView struct {
	Terms          calculations.LoanTerms `json:"terms"`
	MonthlyPayment decimal.Decimal        `json:"monthly_payment"`
	TotalInterest  decimal.Decimal        `json:"total_interest"`
	TotalRepayment decimal.Decimal        `json:"total_repayment"`
	Display        map[string]string      `json:"display"`
}

func newSummaryView(terms calculations.LoanTerms, s calculations.RepaymentSummary) SummaryView {
	return SummaryView{
		Terms:          terms,
		MonthlyPayment: utils.Money(s.MonthlyPayment),
		TotalInterest:  utils.Money(s.TotalInterest),
		TotalRepayment: utils.Money(s.TotalRepayment),
		Display: map[string]string{
			"monthly_payment": utils.FormatRupees(s.MonthlyPayment),
			"total_interest":  utils.FormatRupees(s.TotalInterest),
			"total_repayment": utils.FormatRupees(s.TotalRepayment),
		},
	}
}

// RowView is one schedule row rounded for display
type RowView struct {
	Month            int             `json:"month"`
	Payment          decimal.Decimal `json:"payment"`
	PrincipalPortion decimal.Decimal `json:"principal"`
	InterestPortion  decimal.Decimal `json:"interest"`
	RemainingBalance decimal.Decimal `json:"balance"`
}

func newRowViews(rows []calculations.AmortizationRow) []RowView {
	out := make([]RowView, 0, len(rows))
	for _, r := range rows {
		out = append(out, RowView{
			Month:            r.Month,
			Payment:          utils.Money(r.Payment),
			PrincipalPortion: utils.Money(r.PrincipalPortion),
			InterestPortion:  utils.Money(r.InterestPortion),
			RemainingBalance: utils.Money(r.RemainingBalance),
		})
	}
	return out
}

// SchemeView adds the formatted maximum shown on scheme cards
type SchemeView struct {
	schemes.Scheme
	MaxLoanDisplay string `json:"max_loan_display"`
}

func newSchemeViews(list []schemes.Scheme) []SchemeView {
	out := make([]SchemeView, 0, len(list))
	for _, s := range list {
		out = append(out, SchemeView{Scheme: s, MaxLoanDisplay: utils.FormatRupees(s.MaxLoanAmount)})
	}
	return out
}
