package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/domain"
)

const defaultKeyPrefix = "microloan"

// Redis stores records as JSON in a hash per kind, with a list keeping
// insertion order.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis connects to addr and checks the connection
func NewRedis(ctx context.Context, addr string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return &Redis{client: client, prefix: defaultKeyPrefix}, nil
}

// WithPrefix namespaces keys, mainly so tests do not collide
func (r *Redis) WithPrefix(prefix string) *Redis {
	return &Redis{client: r.client, prefix: prefix}
}

func (r *Redis) key(parts ...string) string {
	k := r.prefix
	for _, p := range parts {
		k += ":" + p
	}
	return k
}

// SaveApplication stores app as JSON and records its id once in the order list
func (r *Redis) SaveApplication(ctx context.Context, app domain.Application) error {
	data, err := json.Marshal(app)
	if err != nil {
		return fmt.Errorf("failed to encode application: %w", err)
	}

	created, err := r.client.HSetNX(ctx, r.key("applications"), app.ID, data).Result()
	if err != nil {
		return fmt.Errorf("failed to save application: %w", err)
	}
	if created {
		return r.client.RPush(ctx, r.key("applications", "order"), app.ID).Err()
	}
	return r.client.HSet(ctx, r.key("applications"), app.ID, data).Err()
}

// GetApplication returns ErrNotFound for unknown ids
func (r *Redis) GetApplication(ctx context.Context, id string) (domain.Application, error) {
	data, err := r.client.HGet(ctx, r.key("applications"), id).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Application{}, fmt.Errorf("application %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return domain.Application{}, fmt.Errorf("failed to load application: %w", err)
	}

	var app domain.Application
	if err := json.Unmarshal(data, &app); err != nil {
		return domain.Application{}, fmt.Errorf("failed to decode application %q: %w", id, err)
	}
	return app, nil
}

// ListApplications returns applications in insertion order
func (r *Redis) ListApplications(ctx context.Context) ([]domain.Application, error) {
	ids, err := r.client.LRange(ctx, r.key("applications", "order"), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Application{}, nil
	}

	raw, err := r.client.HMGet(ctx, r.key("applications"), ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	out := make([]domain.Application, 0, len(raw))
	for i, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var app domain.Application
		if err := json.Unmarshal([]byte(s), &app); err != nil {
			return nil, fmt.Errorf("failed to decode application %q: %w", ids[i], err)
		}
		out = append(out, app)
	}
	return out, nil
}

// SaveExternalLoan appends loan
func (r *Redis) SaveExternalLoan(ctx context.Context, loan domain.ExternalLoan) error {
	data, err := json.Marshal(loan)
	if err != nil {
		return fmt.Errorf("failed to encode external loan: %w", err)
	}
	if err := r.client.RPush(ctx, r.key("external"), data).Err(); err != nil {
		return fmt.Errorf("failed to save external loan: %w", err)
	}
	return nil
}

// ListExternalLoans returns loans in insertion order
func (r *Redis) ListExternalLoans(ctx context.Context) ([]domain.ExternalLoan, error) {
	items, err := r.client.LRange(ctx, r.key("external"), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list external loans: %w", err)
	}

	out := make([]domain.ExternalLoan, 0, len(items))
	for _, item := range items {
		var loan domain.ExternalLoan
		if err := json.Unmarshal([]byte(item), &loan); err != nil {
			return nil, fmt.Errorf("failed to decode external loan: %w", err)
		}
		out = append(out, loan)
	}
	return out, nil
}

// Flush removes every key under the prefix
func (r *Redis) Flush(ctx context.Context) error {
	return r.client.Del(ctx, r.key("applications"), r.key("applications", "order"), r.key("external")).Err()
}

// Close closes the client
func (r *Redis) Close() error {
	return r.client.Close()
}
