package loans

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/application"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/calculations"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/domain"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/metrics"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/schemes"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/storage"
)

// Outcome of a submission attempt. Exactly one of Application, Errors or
// PortalURL is set.
type Outcome struct {
	Application *domain.Application     `json:"application,omitempty"`
	Errors      application.FieldErrors `json:"errors,omitempty"`
	PortalURL   string                  `json:"portal_url,omitempty"`
}

// Submitted reports whether an application record was created
func (o Outcome) Submitted() bool { return o.Application != nil }

// TrackedLoan is an external loan with its derived figures
type TrackedLoan struct {
	domain.ExternalLoan
	EndDate time.Time                     `json:"end_date"`
	Summary calculations.RepaymentSummary `json:"summary"`
}

// Service runs the application lifecycle on top of the form engine
type Service struct {
	catalog   *schemes.Catalog
	proof     application.ProofLimits
	submitter Submitter
	apps      storage.ApplicationStore
	external  storage.ExternalLoanStore
	logger    *zap.Logger
	now       func() time.Time
}

// NewService wires the form engine to a submitter and stores. proof limits
// the documents accepted on submission.
func NewService(
	catalog *schemes.Catalog,
	proof application.ProofLimits,
	submitter Submitter,
	apps storage.ApplicationStore,
	external storage.ExternalLoanStore,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		catalog:   catalog,
		proof:     proof,
		submitter: submitter,
		apps:      apps,
		external:  external,
		logger:    logger,
		now:       time.Now,
	}
}

// Catalog is the scheme catalog the service validates against
func (s *Service) Catalog() *schemes.Catalog { return s.catalog }

// FormContext derives the form context for values, carrying the service's
// proof limits
func (s *Service) FormContext(values application.Values) application.Context {
	formCtx := application.ContextFor(values, s.catalog)
	formCtx.Proof = s.proof
	return formCtx
}

// Submit validates the form and, for direct schemes, passes the record to
// the submitter and stores it as Pending. Government schemes are not
// processed here; the outcome carries the portal link instead.
func (s *Service) Submit(ctx context.Context, values application.Values, termMonths int) (Outcome, error) {
	formCtx := s.FormContext(values)

	if formCtx.Mode() == application.ModeGovernment {
		metrics.Submissions.WithLabelValues("redirected").Inc()
		return Outcome{PortalURL: formCtx.Scheme.Link}, nil
	}

	errs := application.ValidateForSubmission(values, application.RequiredFields(formCtx), formCtx)
	if formCtx.Scheme == nil {
		if _, reported := errs[application.FieldScheme]; !reported {
			errs[application.FieldScheme] = "Please select a loan scheme."
		}
	}
	if len(errs) > 0 {
		metrics.Submissions.WithLabelValues("invalid").Inc()
		return Outcome{Errors: errs}, nil
	}
	if termMonths <= 0 {
		return Outcome{}, ErrInvalidTerm
	}

	app := s.buildApplication(values, formCtx.Scheme, termMonths)

	start := time.Now()
	err := s.submitter.Submit(ctx, app)
	metrics.SubmissionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		result := "failed"
		if errors.Is(err, ErrSubmissionRejected) {
			result = "rejected"
		}
		metrics.Submissions.WithLabelValues(result).Inc()
		s.logger.Warn("application submission failed",
			zap.String("business_name", app.BusinessName),
			zap.String("scheme", app.Scheme),
			zap.Error(err),
		)
		return Outcome{}, fmt.Errorf("failed to submit application: %w", err)
	}

	if err := s.apps.SaveApplication(ctx, app); err != nil {
		metrics.Submissions.WithLabelValues("failed").Inc()
		return Outcome{}, fmt.Errorf("failed to store application: %w", err)
	}

	metrics.Submissions.WithLabelValues("submitted").Inc()
	s.logger.Info("application submitted",
		zap.String("id", app.ID),
		zap.String("scheme", app.Scheme),
		zap.Float64("loan_amount", app.LoanAmount),
		zap.Int("loan_term", app.LoanTerm),
	)
	return Outcome{Application: &app}, nil
}

func (s *Service) buildApplication(values application.Values, scheme *schemes.Scheme, termMonths int) domain.Application {
	amount, _ := values.Amount()
	idProof, _ := values.File(application.FieldGovernmentIDProof)
	bankProof, _ := values.File(application.FieldBankProof)

	return domain.Application{
		ID:                uuid.NewString(),
		Status:            domain.StatusPending,
		ApplicationDate:   s.now().UTC(),
		FullName:          strings.TrimSpace(values.String(application.FieldFullName)),
		BusinessName:      strings.TrimSpace(values.String(application.FieldBusinessName)),
		Address:           strings.TrimSpace(values.String(application.FieldAddress)),
		GovernmentIDType:  values.String(application.FieldGovernmentIDType),
		GovernmentIDProof: idProof.Name,
		LoanAmount:        amount,
		LoanTerm:          termMonths,
		LoanPurpose:       application.FinalPurpose(values),
		InterestRate:      scheme.InterestRate,
		Scheme:            scheme.Name,
		AccountHolderName: strings.TrimSpace(values.String(application.FieldAccountHolderName)),
		BankName:          strings.TrimSpace(values.String(application.FieldBankName)),
		AccountNumber:     values.String(application.FieldAccountNumber),
		IFSCCode:          values.String(application.FieldIFSCCode),
		BankProof:         bankProof.Name,
	}
}

// List returns the loan history, most recent first
func (s *Service) List(ctx context.Context) ([]domain.Application, error) {
	apps, err := s.apps.ListApplications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	out := make([]domain.Application, len(apps))
	for i, app := range apps {
		out[len(apps)-1-i] = app
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ApplicationDate.After(out[j].ApplicationDate)
	})
	return out, nil
}

// Get returns one application by id
func (s *Service) Get(ctx context.Context, id string) (domain.Application, error) {
	return s.apps.GetApplication(ctx, id)
}

// Latest is the most recent application, shown on the dashboard
func (s *Service) Latest(ctx context.Context) (domain.Application, error) {
	apps, err := s.List(ctx)
	if err != nil {
		return domain.Application{}, err
	}
	if len(apps) == 0 {
		return domain.Application{}, storage.ErrNotFound
	}
	return apps[0], nil
}

// Decide moves a Pending application to Approved or Rejected. Approval
// opens the loan: the balance is the full amount and the first payment
// falls due a month later.
func (s *Service) Decide(ctx context.Context, id string, status domain.Status) (domain.Application, error) {
	app, err := s.apps.GetApplication(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}

	if app.Status != domain.StatusPending || (status != domain.StatusApproved && status != domain.StatusRejected) {
		return domain.Application{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, app.Status, status)
	}

	app.Status = status
	if status == domain.StatusApproved {
		balance := app.LoanAmount
		next := s.now().UTC().AddDate(0, 1, 0)
		app.LoanBalance = &balance
		app.NextPaymentDate = &next
	}

	if err := s.apps.SaveApplication(ctx, app); err != nil {
		return domain.Application{}, fmt.Errorf("failed to store decision: %w", err)
	}

	metrics.Decisions.WithLabelValues(string(status)).Inc()
	s.logger.Info("application decided", zap.String("id", id), zap.String("status", string(status)))
	return app, nil
}

// RepaymentSchedule is the amortization table of an approved loan. Other
// statuses have no schedule.
func (s *Service) RepaymentSchedule(ctx context.Context, id string) ([]calculations.AmortizationRow, error) {
	app, err := s.apps.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Status != domain.StatusApproved {
		return nil, nil
	}
	return calculations.ComputeSchedule(app.Terms()), nil
}

// TrackExternal records a loan from another lender. Every field is required.
func (s *Service) TrackExternal(ctx context.Context, loan domain.ExternalLoan) (domain.ExternalLoan, error) {
	loan.LenderName = strings.TrimSpace(loan.LenderName)
	if loan.LenderName == "" || loan.LoanAmount <= 0 || loan.InterestRate <= 0 || loan.LoanTerm <= 0 || loan.StartDate.IsZero() {
		return domain.ExternalLoan{}, ErrIncompleteLoan
	}

	loan.ID = uuid.NewString()
	if err := s.external.SaveExternalLoan(ctx, loan); err != nil {
		return domain.ExternalLoan{}, fmt.Errorf("failed to store external loan: %w", err)
	}

	s.logger.Info("external loan tracked", zap.String("id", loan.ID), zap.String("lender", loan.LenderName))
	return loan, nil
}

// ListExternal returns tracked loans with their end date and repayment summary
func (s *Service) ListExternal(ctx context.Context) ([]TrackedLoan, error) {
	loans, err := s.external.ListExternalLoans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list external loans: %w", err)
	}

	out := make([]TrackedLoan, 0, len(loans))
	for _, l := range loans {
		out = append(out, TrackedLoan{
			ExternalLoan: l,
			EndDate:      l.EndDate(),
			Summary:      calculations.ComputeSummary(l.Terms()),
		})
	}
	return out, nil
}
