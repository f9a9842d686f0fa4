package domain

import (
	"time"

	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/calculations"
)

// Status of a submitted application
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Application is a submitted loan application. Proof fields hold file
// names only.
type Application struct {
	ID                string     `json:"id"`
	Status            Status     `json:"status"`
	ApplicationDate   time.Time  `json:"application_date"`
	FullName          string     `json:"full_name"`
	BusinessName      string     `json:"business_name"`
	Address           string     `json:"address"`
	GovernmentIDType  string     `json:"government_id_type"`
	GovernmentIDProof string     `json:"government_id_proof"`
	LoanAmount        float64    `json:"loan_amount"`
	LoanTerm          int        `json:"loan_term"`
	LoanPurpose       string     `json:"loan_purpose"`
	InterestRate      float64    `json:"interest_rate"`
	Scheme            string     `json:"scheme"`
	AccountHolderName string     `json:"account_holder_name"`
	BankName          string     `json:"bank_name"`
	AccountNumber     string     `json:"account_number"`
	IFSCCode          string     `json:"ifsc_code"`
	BankProof         string     `json:"bank_proof"`
	LoanBalance       *float64   `json:"loan_balance,omitempty"`
	NextPaymentDate   *time.Time `json:"next_payment_date,omitempty"`
}

// Terms are the amortization inputs for the application
func (a Application) Terms() calculations.LoanTerms {
	return calculations.LoanTerms{
		Principal:         a.LoanAmount,
		AnnualRatePercent: a.InterestRate,
		TermMonths:        a.LoanTerm,
	}
}

// ExternalLoan is a loan taken outside the platform that the user tracks
type ExternalLoan struct {
	ID           string    `json:"id"`
	LenderName   string    `json:"lender_name"`
	LoanAmount   float64   `json:"loan_amount"`
	InterestRate float64   `json:"interest_rate"`
	LoanTerm     int       `json:"loan_term"`
	StartDate    time.Time `json:"start_date"`
}

// EndDate is the start date moved forward by the term in months
func (l ExternalLoan) EndDate() time.Time {
	return l.StartDate.AddDate(0, l.LoanTerm, 0)
}

// Terms are the amortization inputs for the loan
func (l ExternalLoan) Terms() calculations.LoanTerms {
	return calculations.LoanTerms{
		Principal:         l.LoanAmount,
		AnnualRatePercent: l.InterestRate,
		TermMonths:        l.LoanTerm,
	}
}
