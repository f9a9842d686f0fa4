package validators

import (
	"errors"
	"fmt"

	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/application"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/config"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/pkg/utils"
)

// ValidatePositiveNumber checks that a number is finite and within range
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: value is not a finite number", name)
	}
	if value < minInclusive {
		return fmt.Errorf("%s: value must be ≥ %g", name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%s: value is too large (>%g)", name, maxInclusive)
	}
	return nil
}

// ValidateIntRange checks that an integer is within range
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%s: value must be in range [%d; %d]", name, minInclusive, maxInclusive)
	}
	return nil
}

// CheckPrincipal allows zero so the calculator can degrade to an empty result
func CheckPrincipal(cfg *config.Config, principal float64) error {
	return ValidatePositiveNumber("principal", principal, 0.0, cfg.MaxPrincipal)
}

// CheckRate bounds an annual interest rate in percent
func CheckRate(cfg *config.Config, rate float64) error {
	return ValidatePositiveNumber("annual_rate_percent", rate, 0.0, cfg.MaxRate)
}

// CheckMonths bounds a term in months, zero allowed
func CheckMonths(cfg *config.Config, months int) error {
	return ValidateIntRange("months", months, 0, cfg.MaxMonths)
}

// CheckLoanTerm is stricter than CheckMonths: a submitted loan needs a term
func CheckLoanTerm(cfg *config.Config, months int) error {
	return ValidateIntRange("loan_term", months, 1, cfg.MaxMonths)
}

// ProofLimits builds the upload limits from config
func ProofLimits(cfg *config.Config) application.ProofLimits {
	limits := application.DefaultProofLimits()
	if cfg != nil && cfg.MaxProofBytes > 0 {
		limits.MaxBytes = cfg.MaxProofBytes
	}
	return limits
}

// CheckProofFile validates an uploaded proof against the configured limits.
// The error text is the message shown next to the field.
func CheckProofFile(cfg *config.Config, id application.FieldID, file *application.FileRef) error {
	if id != application.FieldGovernmentIDProof && id != application.FieldBankProof {
		return fmt.Errorf("%s: not a proof field", id)
	}
	if msg := application.CheckProof(id, file, ProofLimits(cfg)); msg != "" {
		return errors.New(msg)
	}
	return nil
}
