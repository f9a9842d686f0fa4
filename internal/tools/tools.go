package tools

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/config"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/loans"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/metrics"
)

// ToolHandler handles one tool invocation
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

var (
	ErrUnknownTool   = errors.New("unknown tool")
	ErrInvalidParams = errors.New("invalid parameters")
)

// Registry maps tool names to handlers
type Registry struct {
	handlers map[string]ToolHandler
}

// NewRegistry registers every tool backed by cfg and svc
func NewRegistry(cfg *config.Config, svc *loans.Service, tracer trace.Tracer) *Registry {
	r := &Registry{handlers: make(map[string]ToolHandler)}

	r.Register("repayment_summary", RepaymentSummaryHandler(cfg, tracer))
	r.Register("repayment_schedule", RepaymentScheduleHandler(cfg, tracer))
	r.Register("list_schemes", ListSchemesHandler(svc, tracer))
	r.Register("required_fields", RequiredFieldsHandler(svc, tracer))
	r.Register("validate_field", ValidateFieldHandler(svc, tracer))
	r.Register("application_progress", ApplicationProgressHandler(svc, tracer))
	r.Register("change_scheme", ChangeSchemeHandler(svc, tracer))
	r.Register("attach_proof", AttachProofHandler(cfg, svc, tracer))
	r.Register("submit_application", SubmitApplicationHandler(cfg, svc, tracer))
	r.Register("list_applications", ListApplicationsHandler(svc, tracer))
	r.Register("get_application", GetApplicationHandler(svc, tracer))
	r.Register("decide_application", DecideApplicationHandler(svc, tracer))
	r.Register("track_external_loan", TrackExternalLoanHandler(cfg, svc, tracer))
	r.Register("list_external_loans", ListExternalLoansHandler(svc, tracer))

	return r
}

// Register adds or replaces a tool
func (r *Registry) Register(name string, h ToolHandler) {
	r.handlers[name] = h
}

// Names lists registered tools in alphabetical order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call runs the named tool. Unknown names return ErrUnknownTool.
func (r *Registry) Call(ctx context.Context, name string, params map[string]interface{}) (interface{}, error) {
	h, ok := r.handlers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	if params == nil {
		params = map[string]interface{}{}
	}
	return h(ctx, params)
}

// call tracks one tool invocation in traces and metrics
type call struct {
	name string
	span trace.Span
}

func begin(ctx context.Context, tracer trace.Tracer, name string) (context.Context, *call) {
	ctx, span := tracer.Start(ctx, name)
	metrics.APICalls.WithLabelValues("tools", name, "started").Inc()
	return ctx, &call{name: name, span: span}
}

func (c *call) end() {
	c.span.End()
}

func (c *call) invalid(err error) error {
	c.span.SetAttributes(attribute.String("error", "validation_error"))
	c.span.SetStatus(codes.Error, err.Error())
	metrics.ToolCalls.WithLabelValues(c.name, "validation_error").Inc()
	metrics.CalculationErrors.WithLabelValues(c.name, "validation").Inc()
	metrics.APICalls.WithLabelValues("tools", c.name, "error").Inc()
	if errors.Is(err, ErrInvalidParams) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidParams, err)
}

func (c *call) failed(err error) error {
	c.span.SetAttributes(attribute.String("error", "execution_error"))
	c.span.RecordError(err)
	c.span.SetStatus(codes.Error, err.Error())
	metrics.ToolCalls.WithLabelValues(c.name, "error").Inc()
	metrics.CalculationErrors.WithLabelValues(c.name, "execution").Inc()
	metrics.APICalls.WithLabelValues("tools", c.name, "error").Inc()
	return fmt.Errorf("%s: %w", c.name, err)
}

func (c *call) succeed(attrs ...attribute.KeyValue) {
	c.span.SetAttributes(append(attrs, attribute.Bool("success", true))...)
	metrics.ToolCalls.WithLabelValues(c.name, "success").Inc()
	metrics.APICalls.WithLabelValues("tools", c.name, "success").Inc()
}
