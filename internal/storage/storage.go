package storage

import (
	"context"
	"errors"

	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/domain"
)

// ErrNotFound is returned for unknown record ids
var ErrNotFound = errors.New("record not found")

// ApplicationStore persists submitted applications. Save inserts or
// replaces by ID; List returns records in insertion order.
type ApplicationStore interface {
	SaveApplication(ctx context.Context, app domain.Application) error
	GetApplication(ctx context.Context, id string) (domain.Application, error)
	ListApplications(ctx context.Context) ([]domain.Application, error)
}

// ExternalLoanStore persists loans tracked from other lenders
type ExternalLoanStore interface {
	SaveExternalLoan(ctx context.Context, loan domain.ExternalLoan) error
	ListExternalLoans(ctx context.Context) ([]domain.ExternalLoan, error)
}

// Store is what the server wires: one backend for both record kinds
type Store interface {
	ApplicationStore
	ExternalLoanStore
	Close() error
}
