package tools

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/calculations"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/config"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/validators"
)

func termsParams(cfg *config.Config, params map[string]interface{}) (calculations.LoanTerms, error) {
	principal, err := floatParam(params, "principal")
	if err != nil {
		return calculations.LoanTerms{}, err
	}
	rate, err := floatParam(params, "annual_rate_percent")
	if err != nil {
		return calculations.LoanTerms{}, err
	}
	months, err := intParam(params, "months")
	if err != nil {
		return calculations.LoanTerms{}, err
	}

	if err := validators.CheckPrincipal(cfg, principal); err != nil {
		return calculations.LoanTerms{}, err
	}
	if err := validators.CheckRate(cfg, rate); err != nil {
		return calculations.LoanTerms{}, err
	}
	if err := validators.CheckMonths(cfg, months); err != nil {
		return calculations.LoanTerms{}, err
	}

	return calculations.LoanTerms{Principal: principal, AnnualRatePercent: rate, TermMonths: months}, nil
}

func termsAttributes(terms calculations.LoanTerms) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Float64("principal", terms.Principal),
		attribute.Float64("annual_rate_percent", terms.AnnualRatePercent),
		attribute.Int("months", terms.TermMonths),
	}
}

// RepaymentSummaryHandler estimates the monthly payment of a loan
func RepaymentSummaryHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, c := begin(ctx, tracer, "repayment_summary")
		defer c.end()

		terms, err := termsParams(cfg, params)
		if err != nil {
			return nil, c.invalid(err)
		}
		c.span.SetAttributes(termsAttributes(terms)...)

		summary := calculations.ComputeSummary(terms)

		c.succeed(
			attribute.Float64("monthly_payment", summary.MonthlyPayment),
			attribute.Float64("total_repayment", summary.TotalRepayment),
		)
		return newSummaryView(terms, summary), nil
	}
}

// ScheduleResult is the response of repayment_schedule
type ScheduleResult struct {
	Summary  SummaryView `json:"summary"`
	Schedule []RowView   `json:"schedule"`
}

// RepaymentScheduleHandler builds the month-by-month amortization table
func RepaymentScheduleHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, c := begin(ctx, tracer, "repayment_schedule")
		defer c.end()

		terms, err := termsParams(cfg, params)
		if err != nil {
			return nil, c.invalid(err)
		}
		c.span.SetAttributes(termsAttributes(terms)...)

		summary := calculations.ComputeSummary(terms)
		rows := calculations.ComputeSchedule(terms)

		c.succeed(attribute.Int("rows", len(rows)))
		return ScheduleResult{
			Summary:  newSummaryView(terms, summary),
			Schedule: newRowViews(rows),
		}, nil
	}
}
