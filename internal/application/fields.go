package application

import (
	"strings"

	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/schemes"
)

// FieldID identifies a field of the loan application form
type FieldID string

const (
	FieldFullName          FieldID = "fullName"
	FieldBusinessName      FieldID = "businessName"
	FieldAddress           FieldID = "address"
	FieldGovernmentIDType  FieldID = "governmentIdType"
	FieldGovernmentIDProof FieldID = "governmentIdProof"
	FieldLoanAmount        FieldID = "loanAmount"
	FieldLoanPurpose       FieldID = "loanPurpose"
	FieldOtherPurpose      FieldID = "otherPurpose"
	FieldScheme            FieldID = "scheme"
	FieldAccountHolderName FieldID = "accountHolderName"
	FieldBankName          FieldID = "bankName"
	FieldAccountNumber     FieldID = "accountNumber"
	FieldIFSCCode          FieldID = "ifscCode"
	FieldBankProof         FieldID = "bankProof"
)

// AllFields lists every form field in display order
var AllFields = []FieldID{
	FieldFullName, FieldBusinessName, FieldAddress, FieldGovernmentIDType, FieldGovernmentIDProof,
	FieldLoanAmount, FieldLoanPurpose, FieldOtherPurpose, FieldScheme,
	FieldAccountHolderName, FieldBankName, FieldAccountNumber, FieldIFSCCode, FieldBankProof,
}

// PurposeOther is the loan purpose that requires a free-text explanation
const PurposeOther = "Other"

// IDTypes are the accepted government ID documents
var IDTypes = []string{"Aadhar Card", "PAN Card", "Voter ID Card", "Driving License", "Passport"}

// LoanPurposes are the selectable loan purposes, PurposeOther last
var LoanPurposes = []string{
	"Working Capital",
	"Purchase Equipment",
	"Inventory Purchase",
	"Business Expansion",
	"Marketing and Sales",
	PurposeOther,
}

// IsKnown reports whether id names a form field
func IsKnown(id FieldID) bool {
	for _, f := range AllFields {
		if f == id {
			return true
		}
	}
	return false
}

// Mode is the scheme-type context of the form
type Mode string

const (
	ModeDirect     Mode = "direct"
	ModeGovernment Mode = "government"
)

// Context carries the selections that change how the form is validated
type Context struct {
	Scheme      *schemes.Scheme
	LoanPurpose string
	// Proof limits uploaded documents; the zero value means DefaultProofLimits
	Proof ProofLimits
}

func (c Context) proofLimits() ProofLimits {
	limits := DefaultProofLimits()
	if c.Proof.MaxBytes > 0 {
		limits.MaxBytes = c.Proof.MaxBytes
	}
	if len(c.Proof.AllowedTypes) > 0 {
		limits.AllowedTypes = c.Proof.AllowedTypes
	}
	return limits
}

// Mode is government iff the selected scheme is a government scheme
func (c Context) Mode() Mode {
	if c.Scheme.IsGovernment() {
		return ModeGovernment
	}
	return ModeDirect
}

// ContextFor derives the context from the current values. An unknown
// scheme id leaves Scheme nil, which keeps the form in direct mode.
func ContextFor(values Values, catalog *schemes.Catalog) Context {
	ctx := Context{LoanPurpose: values.String(FieldLoanPurpose)}
	if catalog != nil {
		if s, ok := catalog.Get(strings.TrimSpace(values.String(FieldScheme))); ok {
			ctx.Scheme = s
		}
	}
	return ctx
}

type requirementKey struct {
	mode         Mode
	otherPurpose bool
}

var baseRequired = []FieldID{
	FieldFullName, FieldBusinessName, FieldAddress, FieldGovernmentIDType,
	FieldGovernmentIDProof, FieldLoanAmount, FieldLoanPurpose, FieldScheme,
	FieldAccountHolderName, FieldBankName, FieldAccountNumber, FieldIFSCCode, FieldBankProof,
}

var requirementRules = map[requirementKey][]FieldID{
	{ModeGovernment, false}: {},
	{ModeGovernment, true}:  {},
	{ModeDirect, false}:     baseRequired,
	{ModeDirect, true}:      append(append([]FieldID{}, baseRequired...), FieldOtherPurpose),
}

// RequiredFields returns the fields that must validate before submission.
// The returned slice is owned by the caller.
func RequiredFields(ctx Context) []FieldID {
	rule := requirementRules[requirementKey{ctx.Mode(), ctx.LoanPurpose == PurposeOther}]
	out := make([]FieldID, len(rule))
	copy(out, rule)
	return out
}

// FinalPurpose is the purpose recorded on a submitted application
func FinalPurpose(values Values) string {
	purpose := values.String(FieldLoanPurpose)
	if purpose == PurposeOther {
		return "Other: " + values.String(FieldOtherPurpose)
	}
	return purpose
}
