package tools

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/calculations"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/config"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/domain"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/loans"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/validators"
)

// SubmitApplicationHandler validates and submits the form. Invalid forms
// come back as field errors, not as a tool error.
func SubmitApplicationHandler(cfg *config.Config, svc *loans.Service, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		ctx, c := begin(ctx, tracer, "submit_application")
		defer c.end()

		values, err := valuesParam(params, "values")
		if err != nil {
			return nil, c.invalid(err)
		}
		term := 0
		if _, present := params["loan_term"]; present {
			if term, err = intParam(params, "loan_term"); err != nil {
				return nil, c.invalid(err)
			}
			if err := validators.CheckLoanTerm(cfg, term); err != nil {
				return nil, c.invalid(err)
			}
		}

		outcome, err := svc.Submit(ctx, values, term)
		if errors.Is(err, loans.ErrInvalidTerm) {
			return nil, c.invalid(err)
		}
		if err != nil {
			return nil, c.failed(err)
		}

		c.succeed(
			attribute.Bool("submitted", outcome.Submitted()),
			attribute.Int("field_errors", len(outcome.Errors)),
			attribute.Bool("redirected", outcome.PortalURL != ""),
		)
		return outcome, nil
	}
}

// ListApplicationsHandler returns the application history, most recent first
func ListApplicationsHandler(svc *loans.Service, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		ctx, c := begin(ctx, tracer, "list_applications")
		defer c.end()

		apps, err := svc.List(ctx)
		if err != nil {
			return nil, c.failed(err)
		}

		c.succeed(attribute.Int("count", len(apps)))
		return map[string]interface{}{
			"applications": apps,
			"count":        len(apps),
		}, nil
	}
}

// ApplicationDetail is the loan-detail view: the record, its estimate and,
// once approved, the repayment schedule
type ApplicationDetail struct {
	Application domain.Application `json:"application"`
	Summary     SummaryView        `json:"summary"`
	Schedule    []RowView          `json:"schedule"`
}

// GetApplicationHandler returns one application, or the latest when no id
// is given
func GetApplicationHandler(svc *loans.Service, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		ctx, c := begin(ctx, tracer, "get_application")
		defer c.end()

		var (
			app domain.Application
			err error
		)
		if id := optionalString(params, "id"); id != "" {
			app, err = svc.Get(ctx, id)
		} else {
			app, err = svc.Latest(ctx)
		}
		if err != nil {
			return nil, c.failed(err)
		}

		rows, err := svc.RepaymentSchedule(ctx, app.ID)
		if err != nil {
			return nil, c.failed(err)
		}

		terms := app.Terms()
		c.succeed(attribute.String("status", string(app.Status)), attribute.Int("rows", len(rows)))
		return ApplicationDetail{
			Application: app,
			Summary:     newSummaryView(terms, calculations.ComputeSummary(terms)),
			Schedule:    newRowViews(rows),
		}, nil
	}
}

// DecideApplicationHandler approves or rejects a pending application
func DecideApplicationHandler(svc *loans.Service, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		ctx, c := begin(ctx, tracer, "decide_application")
		defer c.end()

		id, err := stringParam(params, "id")
		if err != nil {
			return nil, c.invalid(err)
		}
		statusText, err := stringParam(params, "status")
		if err != nil {
			return nil, c.invalid(err)
		}
		status := domain.Status(statusText)
		if !status.Valid() {
			return nil, c.invalid(fmt.Errorf("unknown status %q", statusText))
		}
		c.span.SetAttributes(attribute.String("id", id), attribute.String("status", statusText))

		app, err := svc.Decide(ctx, id, status)
		if err != nil {
			return nil, c.failed(err)
		}

		c.succeed()
		return app, nil
	}
}
