package application

import (
	"testing"

	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/schemes"
)

func completeValues() Values {
	return Values{
		FieldFullName:          "Asha Devi",
		FieldBusinessName:      "Devi Tailoring",
		FieldAddress:           "12 Market Road, Pune",
		FieldGovernmentIDType:  "Aadhar Card",
		FieldGovernmentIDProof: FileRef{Name: "aadhar.pdf", ContentType: "application/pdf", Size: 2048},
		FieldLoanAmount:        40000.0,
		FieldLoanPurpose:       "Working Capital",
		FieldScheme:            "s1",
		FieldAccountHolderName: "Asha Devi",
		FieldBankName:          "State Bank of India",
		FieldAccountNumber:     "123456789012",
		FieldIFSCCode:          "SBIN0123456",
		FieldBankProof:         FileRef{Name: "passbook.png", ContentType: "image/png", Size: 4096},
	}
}

func TestRequiredFields(t *testing.T) {
	catalog := schemes.Default()
	s1, _ := catalog.Get("s1")
	s2, _ := catalog.Get("s2")

	tests := []struct {
		name      string
		ctx       Context
		wantLen   int
		wantOther bool
	}{
		{"direct", Context{Scheme: s1, LoanPurpose: "Working Capital"}, 13, false},
		{"direct other", Context{Scheme: s1, LoanPurpose: PurposeOther}, 14, true},
		{"no scheme", Context{}, 13, false},
		{"government", Context{Scheme: s2}, 0, false},
		{"government other", Context{Scheme: s2, LoanPurpose: PurposeOther}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RequiredFields(tt.ctx)
			if len(got) != tt.wantLen {
				t.Fatalf("expected %d fields, got %d: %v", tt.wantLen, len(got), got)
			}
			hasOther := false
			for _, id := range got {
				if id == FieldOtherPurpose {
					hasOther = true
				}
			}
			if hasOther != tt.wantOther {
				t.Errorf("otherPurpose required = %v, want %v", hasOther, tt.wantOther)
			}
		})
	}
}

func TestRequiredFieldsReturnsFreshSlice(t *testing.T) {
	first := RequiredFields(Context{})
	first[0] = "mutated"
	if second := RequiredFields(Context{}); second[0] != FieldFullName {
		t.Errorf("rule table was mutated: %v", second[0])
	}
}

func TestComputeProgress(t *testing.T) {
	catalog := schemes.Default()
	s1, _ := catalog.Get("s1")
	s2, _ := catalog.Get("s2")

	tests := []struct {
		name           string
		values         Values
		ctx            Context
		wantPercent    int
		wantSubmit     bool
		wantErrorCount int
	}{
		{
			name:           "all invalid",
			values:         Values{},
			ctx:            Context{Scheme: s1},
			wantPercent:    0,
			wantSubmit:     false,
			wantErrorCount: 13,
		},
		{
			name:           "all valid",
			values:         completeValues(),
			ctx:            Context{Scheme: s1, LoanPurpose: "Working Capital"},
			wantPercent:    100,
			wantSubmit:     true,
			wantErrorCount: 0,
		},
		{
			name:           "one missing",
			values:         completeValues().With(FieldBankProof, nil),
			ctx:            Context{Scheme: s1, LoanPurpose: "Working Capital"},
			wantPercent:    92,
			wantSubmit:     false,
			wantErrorCount: 1,
		},
		{
			name:           "other purpose unfilled",
			values:         completeValues().With(FieldLoanPurpose, PurposeOther),
			ctx:            Context{Scheme: s1, LoanPurpose: PurposeOther},
			wantPercent:    93,
			wantSubmit:     false,
			wantErrorCount: 1,
		},
		{
			name:           "government ignores state",
			values:         Values{FieldIFSCCode: "nope"},
			ctx:            Context{Scheme: s2},
			wantPercent:    100,
			wantSubmit:     true,
			wantErrorCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ComputeProgress(tt.values, RequiredFields(tt.ctx), tt.ctx)
			if p.CompletionPercent != tt.wantPercent {
				t.Errorf("percent = %d, want %d", p.CompletionPercent, tt.wantPercent)
			}
			if p.IsSubmittable != tt.wantSubmit {
				t.Errorf("submittable = %v, want %v", p.IsSubmittable, tt.wantSubmit)
			}
			if len(p.FieldErrors) != tt.wantErrorCount {
				t.Errorf("errors = %v, want %d", p.FieldErrors, tt.wantErrorCount)
			}
		})
	}
}

func TestProgressOnlyReportsRequiredFields(t *testing.T) {
	s1, _ := schemes.Default().Get("s1")
	ctx := Context{Scheme: s1}
	p := ComputeProgress(Values{}, []FieldID{FieldFullName}, ctx)
	if _, ok := p.FieldErrors[FieldIFSCCode]; ok {
		t.Error("non-required field reported")
	}
	if p.FieldErrors[FieldFullName] != "Full name is required." {
		t.Errorf("unexpected errors %v", p.FieldErrors)
	}
}

func TestContextFor(t *testing.T) {
	catalog := schemes.Default()

	ctx := ContextFor(Values{FieldScheme: "s2", FieldLoanPurpose: PurposeOther}, catalog)
	if ctx.Mode() != ModeGovernment || ctx.LoanPurpose != PurposeOther {
		t.Errorf("unexpected context %+v", ctx)
	}

	ctx = ContextFor(Values{FieldScheme: "unknown"}, catalog)
	if ctx.Scheme != nil || ctx.Mode() != ModeDirect {
		t.Errorf("unknown scheme should leave direct mode, got %+v", ctx)
	}
}

func TestFinalPurpose(t *testing.T) {
	if got := FinalPurpose(Values{FieldLoanPurpose: "Business Expansion", FieldOtherPurpose: "ignored"}); got != "Business Expansion" {
		t.Errorf("got %q", got)
	}
	if got := FinalPurpose(Values{FieldLoanPurpose: PurposeOther, FieldOtherPurpose: "Solar panels"}); got != "Other: Solar panels" {
		t.Errorf("got %q", got)
	}
}

func TestProgressRejectsUnacceptableProof(t *testing.T) {
	s1, _ := schemes.Default().Get("s1")
	ctx := Context{Scheme: s1, LoanPurpose: "Working Capital"}
	values := completeValues().With(FieldGovernmentIDProof, map[string]any{
		"name":         "malware.exe",
		"content_type": "application/x-msdownload",
		"size":         9e8,
	})

	p := ComputeProgress(values, RequiredFields(ctx), ctx)
	if p.IsSubmittable {
		t.Error("form with a rejected proof must not be submittable")
	}
	if p.FieldErrors[FieldGovernmentIDProof] != "Invalid file type. Please upload a PDF, JPG, or PNG." {
		t.Errorf("unexpected errors %v", p.FieldErrors)
	}
}
