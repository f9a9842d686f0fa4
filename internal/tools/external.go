package tools

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/config"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/domain"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/loans"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/validators"
)

// TrackExternalLoanHandler records a loan from another lender
func TrackExternalLoanHandler(cfg *config.Config, svc *loans.Service, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		ctx, c := begin(ctx, tracer, "track_external_loan")
		defer c.end()

		lender, err := stringParam(params, "lender_name")
		if err != nil {
			return nil, c.invalid(loans.ErrIncompleteLoan)
		}
		amount, err := floatParam(params, "loan_amount")
		if err != nil {
			return nil, c.invalid(loans.ErrIncompleteLoan)
		}
		rate, err := floatParam(params, "interest_rate")
		if err != nil {
			return nil, c.invalid(loans.ErrIncompleteLoan)
		}
		term, err := intParam(params, "loan_term")
		if err != nil {
			return nil, c.invalid(loans.ErrIncompleteLoan)
		}
		start, err := dateParam(params, "start_date")
		if err != nil {
			return nil, c.invalid(err)
		}

		if err := validators.CheckPrincipal(cfg, amount); err != nil {
			return nil, c.invalid(err)
		}
		if err := validators.CheckRate(cfg, rate); err != nil {
			return nil, c.invalid(err)
		}
		if err := validators.CheckMonths(cfg, term); err != nil {
			return nil, c.invalid(err)
		}

		c.span.SetAttributes(
			attribute.Float64("loan_amount", amount),
			attribute.Float64("interest_rate", rate),
			attribute.Int("loan_term", term),
		)

		loan, err := svc.TrackExternal(ctx, domain.ExternalLoan{
			LenderName:   lender,
			LoanAmount:   amount,
			InterestRate: rate,
			LoanTerm:     term,
			StartDate:    start,
		})
		if errors.Is(err, loans.ErrIncompleteLoan) {
			return nil, c.invalid(err)
		}
		if err != nil {
			return nil, c.failed(err)
		}

		c.succeed(attribute.String("id", loan.ID))
		return loan, nil
	}
}

// ListExternalLoansHandler lists tracked loans with rounded summaries
func ListExternalLoansHandler(svc *loans.Service, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		ctx, c := begin(ctx, tracer, "list_external_loans")
		defer c.end()

		tracked, err := svc.ListExternal(ctx)
		if err != nil {
			return nil, c.failed(err)
		}

		c.succeed(attribute.Int("count", len(tracked)))
		return map[string]interface{}{
			"loans": tracked,
			"count": len(tracked),
		}, nil
	}
}
