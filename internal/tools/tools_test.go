package tools

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/application"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/config"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/domain"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/loans"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/schemes"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/storage"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/validators"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	cfg := &config.Config{MaxPrincipal: 5e7, MaxRate: 100, MaxMonths: 72, MaxProofBytes: 5 * 1024 * 1024}
	store := storage.NewMemory()
	svc := loans.NewService(schemes.Default(), validators.ProofLimits(cfg), loans.SimulatedBackend{}, store, store, zap.NewNop())
	return NewRegistry(cfg, svc, noop.NewTracerProvider().Tracer("test"))
}

// formValues mimics a decoded JSON request body
func formValues() map[string]interface{} {
	return map[string]interface{}{
		"fullName":          "Farhan Ali",
		"businessName":      "Ali Electricals",
		"address":           "7 Lake View, Bhopal",
		"governmentIdType":  "Voter ID Card",
		"governmentIdProof": map[string]interface{}{"name": "voter.png", "content_type": "image/png", "size": 2048.0},
		"loanAmount":        45000.0,
		"loanPurpose":       "Purchase Equipment",
		"scheme":            "s1",
		"accountHolderName": "Farhan Ali",
		"bankName":          "Canara Bank",
		"accountNumber":     "110022003300",
		"ifscCode":          "CNRB0001234",
		"bankProof":         map[string]interface{}{"name": "statement.pdf", "content_type": "application/pdf", "size": 4096.0},
	}
}

func TestRegistryNames(t *testing.T) {
	r := newTestRegistry(t)
	names := r.Names()
	if len(names) != 14 {
		t.Fatalf("expected 14 tools, got %d: %v", len(names), names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}

	if _, err := r.Call(context.Background(), "nope", nil); !errors.Is(err, ErrUnknownTool) {
		t.Errorf("expected ErrUnknownTool, got %v", err)
	}
}

func TestRepaymentSummaryTool(t *testing.T) {
	r := newTestRegistry(t)

	tests := []struct {
		name      string
		params    map[string]interface{}
		wantError bool
		check     func(*testing.T, SummaryView)
	}{
		{
			name:   "mudra estimate",
			params: map[string]interface{}{"principal": 100000.0, "annual_rate_percent": 9.75, "months": 12.0},
			check: func(t *testing.T, v SummaryView) {
				if v.MonthlyPayment.String() != "8779.97" {
					t.Errorf("monthly payment = %s", v.MonthlyPayment)
				}
				if v.Display["monthly_payment"] != "₹8,780" {
					t.Errorf("display = %q", v.Display["monthly_payment"])
				}
			},
		},
		{
			name:   "zero principal degrades",
			params: map[string]interface{}{"principal": 0.0, "annual_rate_percent": 8.0, "months": 12.0},
			check: func(t *testing.T, v SummaryView) {
				if !v.MonthlyPayment.IsZero() || !v.TotalRepayment.IsZero() {
					t.Errorf("expected zero summary, got %+v", v)
				}
			},
		},
		{
			name:      "missing months",
			params:    map[string]interface{}{"principal": 1000.0, "annual_rate_percent": 8.0},
			wantError: true,
		},
		{
			name:      "fractional months",
			params:    map[string]interface{}{"principal": 1000.0, "annual_rate_percent": 8.0, "months": 6.5},
			wantError: true,
		},
		{
			name:      "principal over cap",
			params:    map[string]interface{}{"principal": 6e7, "annual_rate_percent": 8.0, "months": 12.0},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := r.Call(context.Background(), "repayment_summary", tt.params)
			if tt.wantError {
				if !errors.Is(err, ErrInvalidParams) {
					t.Errorf("expected ErrInvalidParams, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, result.(SummaryView))
		})
	}
}

func TestRepaymentScheduleTool(t *testing.T) {
	r := newTestRegistry(t)
	result, err := r.Call(context.Background(), "repayment_schedule", map[string]interface{}{
		"principal": 500000.0, "annual_rate_percent": 12.0, "months": 24.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := result.(ScheduleResult)
	if len(res.Schedule) != 24 {
		t.Fatalf("expected 24 rows, got %d", len(res.Schedule))
	}
	if !res.Schedule[23].RemainingBalance.IsZero() {
		t.Errorf("final balance = %s", res.Schedule[23].RemainingBalance)
	}
	if res.Schedule[0].InterestPortion.String() != "5000" {
		t.Errorf("first interest = %s", res.Schedule[0].InterestPortion)
	}
}

func TestFormTools(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	t.Run("progress complete", func(t *testing.T) {
		result, err := r.Call(ctx, "application_progress", map[string]interface{}{"values": formValues()})
		if err != nil {
			t.Fatal(err)
		}
		p := result.(ProgressResult)
		if p.CompletionPercent != 100 || !p.IsSubmittable || p.Mode != application.ModeDirect {
			t.Errorf("unexpected progress %+v", p)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		_, err := r.Call(ctx, "application_progress", map[string]interface{}{"values": map[string]interface{}{"pin": "1234"}})
		if !errors.Is(err, ErrInvalidParams) {
			t.Errorf("expected ErrInvalidParams, got %v", err)
		}
	})

	t.Run("validate field", func(t *testing.T) {
		result, err := r.Call(ctx, "validate_field", map[string]interface{}{
			"field": "ifscCode", "value": "sbin0123456", "values": formValues(),
		})
		if err != nil {
			t.Fatal(err)
		}
		f := result.(FieldResult)
		if f.Valid || f.Message != "Enter a valid IFSC code (e.g., SBIN0123456)." {
			t.Errorf("unexpected result %+v", f)
		}
	})

	t.Run("required fields government", func(t *testing.T) {
		result, err := r.Call(ctx, "required_fields", map[string]interface{}{"values": map[string]interface{}{"scheme": "s2"}})
		if err != nil {
			t.Fatal(err)
		}
		m := result.(map[string]interface{})
		if fields := m["fields"].([]application.FieldID); len(fields) != 0 {
			t.Errorf("expected no required fields, got %v", fields)
		}
	})

	t.Run("change scheme clamps", func(t *testing.T) {
		values := formValues()
		values["loanAmount"] = 800000.0
		values["scheme"] = "s2"
		result, err := r.Call(ctx, "change_scheme", map[string]interface{}{"values": values, "scheme_id": "s1"})
		if err != nil {
			t.Fatal(err)
		}
		res := result.(FormResult)
		if res.Values[application.FieldLoanAmount] != 50000.0 {
			t.Errorf("amount = %v", res.Values[application.FieldLoanAmount])
		}
		if res.Progress.CompletionPercent != 100 {
			t.Errorf("progress = %d", res.Progress.CompletionPercent)
		}
	})

	t.Run("change to unknown scheme", func(t *testing.T) {
		_, err := r.Call(ctx, "change_scheme", map[string]interface{}{"scheme_id": "zz"})
		if !errors.Is(err, ErrInvalidParams) {
			t.Errorf("expected ErrInvalidParams, got %v", err)
		}
	})

	t.Run("attach oversized proof", func(t *testing.T) {
		result, err := r.Call(ctx, "attach_proof", map[string]interface{}{
			"values": formValues(),
			"field":  "bankProof",
			"file":   map[string]interface{}{"name": "scan.png", "content_type": "image/png", "size": 6.0 * 1024 * 1024},
		})
		if err != nil {
			t.Fatal(err)
		}
		res := result.(FormResult)
		if res.Message != "File is too large. Maximum size is 5MB." {
			t.Errorf("message = %q", res.Message)
		}
		if _, ok := res.Values[application.FieldBankProof]; ok {
			t.Error("rejected proof kept in values")
		}
		if res.Progress.FieldErrors[application.FieldBankProof] != "Bank proof is required." {
			t.Errorf("errors = %v", res.Progress.FieldErrors)
		}
	})

	t.Run("attach to non-proof field", func(t *testing.T) {
		_, err := r.Call(ctx, "attach_proof", map[string]interface{}{"field": "fullName"})
		if !errors.Is(err, ErrInvalidParams) {
			t.Errorf("expected ErrInvalidParams, got %v", err)
		}
	})
}

func TestApplicationLifecycleTools(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	result, err := r.Call(ctx, "submit_application", map[string]interface{}{"values": formValues(), "loan_term": 18.0})
	if err != nil {
		t.Fatal(err)
	}
	outcome := result.(loans.Outcome)
	if !outcome.Submitted() {
		t.Fatalf("expected submission, got %+v", outcome)
	}
	id := outcome.Application.ID

	result, err = r.Call(ctx, "get_application", map[string]interface{}{})
	if err != nil {
		t.Fatal(err)
	}
	detail := result.(ApplicationDetail)
	if detail.Application.ID != id || len(detail.Schedule) != 0 {
		t.Errorf("unexpected detail %+v", detail)
	}

	if _, err := r.Call(ctx, "decide_application", map[string]interface{}{"id": id, "status": "Approved"}); err != nil {
		t.Fatal(err)
	}

	result, err = r.Call(ctx, "get_application", map[string]interface{}{"id": id})
	if err != nil {
		t.Fatal(err)
	}
	if detail := result.(ApplicationDetail); len(detail.Schedule) != 18 {
		t.Errorf("expected 18 schedule rows, got %d", len(detail.Schedule))
	}

	_, err = r.Call(ctx, "decide_application", map[string]interface{}{"id": id, "status": "Rejected"})
	if !errors.Is(err, loans.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}

	_, err = r.Call(ctx, "decide_application", map[string]interface{}{"id": id, "status": "Maybe"})
	if !errors.Is(err, ErrInvalidParams) {
		t.Errorf("expected ErrInvalidParams, got %v", err)
	}

	result, err = r.Call(ctx, "list_applications", nil)
	if err != nil {
		t.Fatal(err)
	}
	if count := result.(map[string]interface{})["count"]; count != 1 {
		t.Errorf("count = %v", count)
	}
}

func TestSubmitApplicationTool(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	values := formValues()
	values["businessName"] = "Failsafe Motors"
	_, err := r.Call(ctx, "submit_application", map[string]interface{}{"values": values, "loan_term": 12.0})
	if !errors.Is(err, loans.ErrSubmissionRejected) {
		t.Errorf("expected ErrSubmissionRejected, got %v", err)
	}

	result, err := r.Call(ctx, "submit_application", map[string]interface{}{"values": map[string]interface{}{"scheme": "s2"}})
	if err != nil {
		t.Fatal(err)
	}
	if url := result.(loans.Outcome).PortalURL; url != "https://www.mudra.org.in/" {
		t.Errorf("portal url = %q", url)
	}

	values = formValues()
	delete(values, "ifscCode")
	result, err = r.Call(ctx, "submit_application", map[string]interface{}{"values": values, "loan_term": 12.0})
	if err != nil {
		t.Fatal(err)
	}
	if errs := result.(loans.Outcome).Errors; len(errs) != 1 {
		t.Errorf("expected one field error, got %v", errs)
	}

	_, err = r.Call(ctx, "submit_application", map[string]interface{}{"values": formValues(), "loan_term": 100.0})
	if !errors.Is(err, ErrInvalidParams) {
		t.Errorf("expected ErrInvalidParams for term over cap, got %v", err)
	}

	_, err = r.Call(ctx, "submit_application", map[string]interface{}{"values": formValues()})
	if !errors.Is(err, ErrInvalidParams) {
		t.Errorf("expected ErrInvalidParams for missing term, got %v", err)
	}
}

func TestProofTypeEnforcedOnSubmit(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	values := formValues()
	values["governmentIdProof"] = map[string]interface{}{
		"name":         "malware.exe",
		"content_type": "application/x-msdownload",
		"size":         9e8,
	}

	result, err := r.Call(ctx, "application_progress", map[string]interface{}{"values": values})
	if err != nil {
		t.Fatal(err)
	}
	if progress := result.(ProgressResult); progress.IsSubmittable || progress.CompletionPercent == 100 {
		t.Errorf("rejected proof counted as valid: %+v", progress.Progress)
	}

	result, err = r.Call(ctx, "submit_application", map[string]interface{}{"values": values, "loan_term": 12.0})
	if err != nil {
		t.Fatal(err)
	}
	outcome := result.(loans.Outcome)
	if outcome.Submitted() {
		t.Fatalf("submitted with rejected proof %q", outcome.Application.GovernmentIDProof)
	}
	if msg := outcome.Errors[application.FieldGovernmentIDProof]; msg != "Invalid file type. Please upload a PDF, JPG, or PNG." {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestExternalLoanTools(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	result, err := r.Call(ctx, "track_external_loan", map[string]interface{}{
		"lender_name":   "Sahakari Bank",
		"loan_amount":   60000.0,
		"interest_rate": 14.0,
		"loan_term":     12.0,
		"start_date":    "2025-02-01",
	})
	if err != nil {
		t.Fatal(err)
	}
	if loan := result.(domain.ExternalLoan); loan.ID == "" {
		t.Error("expected id")
	}

	_, err = r.Call(ctx, "track_external_loan", map[string]interface{}{"lender_name": "Sahakari Bank"})
	if !errors.Is(err, loans.ErrIncompleteLoan) {
		t.Errorf("expected ErrIncompleteLoan, got %v", err)
	}

	result, err = r.Call(ctx, "list_external_loans", nil)
	if err != nil {
		t.Fatal(err)
	}
	tracked := result.(map[string]interface{})["loans"].([]loans.TrackedLoan)
	if len(tracked) != 1 {
		t.Fatalf("expected 1 loan, got %d", len(tracked))
	}
	if got := tracked[0].EndDate.Format("2006-01-02"); got != "2026-02-01" {
		t.Errorf("end date = %s", got)
	}
}

func TestListSchemesTool(t *testing.T) {
	r := newTestRegistry(t)
	result, err := r.Call(context.Background(), "list_schemes", nil)
	if err != nil {
		t.Fatal(err)
	}
	res := result.(SchemesResult)
	if len(res.Direct) != 1 || len(res.Government) != 2 {
		t.Errorf("unexpected grouping %+v", res)
	}
	if res.Direct[0].MaxLoanDisplay != "₹50,000" {
		t.Errorf("max display = %q", res.Direct[0].MaxLoanDisplay)
	}
}
