package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/domain"
)

// Memory keeps records for the lifetime of the process
type Memory struct {
	mu       sync.RWMutex
	apps     map[string]domain.Application
	appOrder []string
	external []domain.ExternalLoan
}

// NewMemory returns an empty store
func NewMemory() *Memory {
	return &Memory{apps: make(map[string]domain.Application)}
}

// SaveApplication inserts app, or replaces it in place when the id exists
func (m *Memory) SaveApplication(_ context.Context, app domain.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.apps[app.ID]; !exists {
		m.appOrder = append(m.appOrder, app.ID)
	}
	m.apps[app.ID] = app
	return nil
}

// GetApplication returns ErrNotFound for unknown ids
func (m *Memory) GetApplication(_ context.Context, id string) (domain.Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	app, ok := m.apps[id]
	if !ok {
		return domain.Application{}, fmt.Errorf("application %q: %w", id, ErrNotFound)
	}
	return app, nil
}

// ListApplications returns applications in insertion order
func (m *Memory) ListApplications(_ context.Context) ([]domain.Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Application, 0, len(m.appOrder))
	for _, id := range m.appOrder {
		out = append(out, m.apps[id])
	}
	return out, nil
}

// SaveExternalLoan appends loan
func (m *Memory) SaveExternalLoan(_ context.Context, loan domain.ExternalLoan) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.external = append(m.external, loan)
	return nil
}

// ListExternalLoans returns loans in insertion order
func (m *Memory) ListExternalLoans(_ context.Context) ([]domain.ExternalLoan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.ExternalLoan, len(m.external))
	copy(out, m.external)
	return out, nil
}

// Close is a no-op
func (m *Memory) Close() error { return nil }
