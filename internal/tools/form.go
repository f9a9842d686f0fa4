package tools

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/application"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/config"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/loans"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/validators"
)

// SchemesResult groups the catalog the way the application screen shows it
type SchemesResult struct {
	Direct       []SchemeView `json:"direct"`
	Government   []SchemeView `json:"government"`
	IDTypes      []string     `json:"id_types"`
	LoanPurposes []string     `json:"loan_purposes"`
}

// ListSchemesHandler returns the catalog split into direct and government schemes
func ListSchemesHandler(svc *loans.Service, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, c := begin(ctx, tracer, "list_schemes")
		defer c.end()

		catalog := svc.Catalog()
		result := SchemesResult{
			Direct:       newSchemeViews(catalog.Internal()),
			Government:   newSchemeViews(catalog.Government()),
			IDTypes:      application.IDTypes,
			LoanPurposes: application.LoanPurposes,
		}

		c.succeed(attribute.Int("schemes", len(catalog.All())))
		return result, nil
	}
}

// ProgressResult is the live state of the form
type ProgressResult struct {
	Mode           application.Mode      `json:"mode"`
	RequiredFields []application.FieldID `json:"required_fields"`
	application.Progress
}

func progressFor(svc *loans.Service, values application.Values) ProgressResult {
	formCtx := svc.FormContext(values)
	required := application.RequiredFields(formCtx)
	return ProgressResult{
		Mode:           formCtx.Mode(),
		RequiredFields: required,
		Progress:       application.ComputeProgress(values, required, formCtx),
	}
}

// RequiredFieldsHandler returns the required-field set for the selected
// scheme and purpose
func RequiredFieldsHandler(svc *loans.Service, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, c := begin(ctx, tracer, "required_fields")
		defer c.end()

		values, err := valuesParam(params, "values")
		if err != nil {
			return nil, c.invalid(err)
		}

		formCtx := svc.FormContext(values)
		fields := application.RequiredFields(formCtx)

		c.succeed(attribute.String("mode", string(formCtx.Mode())), attribute.Int("fields", len(fields)))
		return map[string]interface{}{
			"mode":   formCtx.Mode(),
			"fields": fields,
		}, nil
	}
}

// FieldResult is the verdict on a single field
type FieldResult struct {
	Field   application.FieldID `json:"field"`
	Valid   bool                `json:"valid"`
	Message string              `json:"message,omitempty"`
}

// ValidateFieldHandler checks one field in the context of the rest of the form
func ValidateFieldHandler(svc *loans.Service, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, c := begin(ctx, tracer, "validate_field")
		defer c.end()

		field, err := fieldParam(params, "field")
		if err != nil {
			return nil, c.invalid(err)
		}
		values, err := valuesParam(params, "values")
		if err != nil {
			return nil, c.invalid(err)
		}
		c.span.SetAttributes(attribute.String("field", string(field)))

		formCtx := svc.FormContext(values)
		msg, ok := application.ValidateField(field, params["value"], formCtx)

		c.succeed(attribute.Bool("valid", ok))
		return FieldResult{Field: field, Valid: ok, Message: msg}, nil
	}
}

// ApplicationProgressHandler computes completion and field errors for the form
func ApplicationProgressHandler(svc *loans.Service, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, c := begin(ctx, tracer, "application_progress")
		defer c.end()

		values, err := valuesParam(params, "values")
		if err != nil {
			return nil, c.invalid(err)
		}

		result := progressFor(svc, values)

		c.succeed(attribute.Int("completion_percent", result.CompletionPercent))
		return result, nil
	}
}

// FormResult carries the updated values together with the new progress
type FormResult struct {
	Values   application.Values `json:"values"`
	Message  string             `json:"message,omitempty"`
	Progress ProgressResult     `json:"progress"`
}

// ChangeSchemeHandler selects a scheme, clamping the amount when moving
// into a direct scheme
func ChangeSchemeHandler(svc *loans.Service, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, c := begin(ctx, tracer, "change_scheme")
		defer c.end()

		values, err := valuesParam(params, "values")
		if err != nil {
			return nil, c.invalid(err)
		}
		schemeID, err := stringParam(params, "scheme_id")
		if err != nil {
			return nil, c.invalid(err)
		}
		scheme, ok := svc.Catalog().Get(schemeID)
		if !ok {
			return nil, c.invalid(fmt.Errorf("unknown scheme %q", schemeID))
		}
		c.span.SetAttributes(attribute.String("scheme_id", schemeID))

		updated := values.WithScheme(scheme)
		result := FormResult{Values: updated, Progress: progressFor(svc, updated)}

		c.succeed(attribute.Int("completion_percent", result.Progress.CompletionPercent))
		return result, nil
	}
}

// AttachProofHandler checks a selected proof file and stores its reference
// in the form. Rejected files are dropped from the values.
func AttachProofHandler(cfg *config.Config, svc *loans.Service, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, c := begin(ctx, tracer, "attach_proof")
		defer c.end()

		field, err := fieldParam(params, "field")
		if err != nil {
			return nil, c.invalid(err)
		}
		if field != application.FieldGovernmentIDProof && field != application.FieldBankProof {
			return nil, c.invalid(fmt.Errorf("%s is not a proof field", field))
		}
		values, err := valuesParam(params, "values")
		if err != nil {
			return nil, c.invalid(err)
		}

		updated, msg := values.WithProof(field, fileParam(params, "file"), validators.ProofLimits(cfg))
		result := FormResult{Values: updated, Message: msg, Progress: progressFor(svc, updated)}

		c.succeed(attribute.String("field", string(field)), attribute.Bool("accepted", msg == ""))
		return result, nil
	}
}
