package application

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/pkg/utils"
)

var (
	accountNumberPattern = regexp.MustCompile(`^\d{9,18}$`)
	ifscPattern          = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
)

var requiredTextMessages = map[FieldID]string{
	FieldFullName:          "Full name is required.",
	FieldBusinessName:      "Business name is required.",
	FieldAddress:           "Address is required.",
	FieldGovernmentIDType:  "Please select an ID type.",
	FieldAccountHolderName: "Account holder's name is required.",
	FieldBankName:          "Bank name is required.",
	FieldLoanPurpose:       "Please select a purpose for the loan.",
	FieldScheme:            "Please select a loan scheme.",
}

// FieldErrors maps invalid fields to their messages
type FieldErrors map[FieldID]string

// ValidateField checks one field. It returns ("", true) when the value is
// acceptable and the user-facing message otherwise. In government mode
// every field is valid.
func ValidateField(id FieldID, value any, ctx Context) (string, bool) {
	if ctx.Mode() == ModeGovernment {
		return "", true
	}

	if msg, ok := requiredTextMessages[id]; ok {
		if strings.TrimSpace(asString(value)) == "" {
			return msg, false
		}
		return "", true
	}

	switch id {
	case FieldGovernmentIDProof, FieldBankProof:
		ref, ok := AsFileRef(value)
		if !ok {
			return missingProofMessage(id), false
		}
		if msg := CheckProof(id, &ref, ctx.proofLimits()); msg != "" {
			return msg, false
		}
	case FieldAccountNumber:
		if !accountNumberPattern.MatchString(asString(value)) {
			return "Enter a valid account number (9-18 digits).", false
		}
	case FieldIFSCCode:
		if !ifscPattern.MatchString(asString(value)) {
			return "Enter a valid IFSC code (e.g., SBIN0123456).", false
		}
	case FieldLoanAmount:
		return validateAmount(value, ctx)
	case FieldOtherPurpose:
		if ctx.LoanPurpose == PurposeOther && strings.TrimSpace(asString(value)) == "" {
			return "Please specify the purpose.", false
		}
	}
	return "", true
}

func validateAmount(value any, ctx Context) (string, bool) {
	if value == nil || strings.TrimSpace(asString(value)) == "" {
		return "Loan amount is required.", false
	}
	amount, ok := asNumber(value)
	if !ok || !utils.IsFinite(amount) || amount <= 0 {
		return "Please enter a valid positive number.", false
	}
	if ctx.Scheme != nil && amount > ctx.Scheme.MaxLoanAmount {
		return fmt.Sprintf("Amount cannot exceed %s for this scheme.", utils.FormatRupees(ctx.Scheme.MaxLoanAmount)), false
	}
	return "", true
}

// ValidateForSubmission re-checks every required field and returns all
// failures at once. An empty map means the form may be submitted.
func ValidateForSubmission(values Values, required []FieldID, ctx Context) FieldErrors {
	errs := FieldErrors{}
	for _, id := range required {
		if msg, ok := ValidateField(id, values[id], ctx); !ok {
			errs[id] = msg
		}
	}
	return errs
}
