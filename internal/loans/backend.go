package loans

import (
	"context"
	"strings"
	"time"

	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/domain"
)

// Submitter hands a validated application to whatever processes it
type Submitter interface {
	Submit(ctx context.Context, app domain.Application) error
}

// SubmitterFunc adapts a function to Submitter
type SubmitterFunc func(ctx context.Context, app domain.Application) error

// Submit calls f
func (f SubmitterFunc) Submit(ctx context.Context, app domain.Application) error {
	return f(ctx, app)
}

// SimulatedBackend stands in for a lender API. It waits Delay and then
// rejects any application whose business name contains "fail".
type SimulatedBackend struct {
	Delay time.Duration
}

// Submit waits for Delay, then refuses any business whose name contains "fail"
func (b SimulatedBackend) Submit(ctx context.Context, app domain.Application) error {
	if b.Delay > 0 {
		timer := time.NewTimer(b.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if strings.Contains(strings.ToLower(app.BusinessName), "fail") {
		return ErrSubmissionRejected
	}
	return nil
}
