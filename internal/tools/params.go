package tools

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/application"
)

func floatParam(params map[string]interface{}, key string) (float64, error) {
	switch v := params[key].(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s", ErrInvalidParams, key)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrInvalidParams, key)
	}
}

func intParam(params map[string]interface{}, key string) (int, error) {
	f, err := floatParam(params, key)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s must be a whole number", ErrInvalidParams, key)
	}
	return int(f), nil
}

func stringParam(params map[string]interface{}, key string) (string, error) {
	s, ok := params[key].(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidParams, key)
	}
	return s, nil
}

func optionalString(params map[string]interface{}, key string) string {
	s, _ := params[key].(string)
	return s
}

func dateParam(params map[string]interface{}, key string) (time.Time, error) {
	s, err := stringParam(params, key)
	if err != nil {
		return time.Time{}, err
	}
	if d, err := time.Parse(time.DateOnly, s); err == nil {
		return d, nil
	}
	if d, err := time.Parse(time.RFC3339, s); err == nil {
		return d, nil
	}
	return time.Time{}, fmt.Errorf("%w: %s must be a date (YYYY-MM-DD)", ErrInvalidParams, key)
}

// valuesParam decodes form values. A missing key is an empty form.
func valuesParam(params map[string]interface{}, key string) (application.Values, error) {
	raw, present := params[key]
	if !present || raw == nil {
		return application.Values{}, nil
	}
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an object", ErrInvalidParams, key)
	}

	values := make(application.Values, len(m))
	for k, v := range m {
		id := application.FieldID(k)
		if !application.IsKnown(id) {
			return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidParams, k)
		}
		if v != nil {
			values[id] = v
		}
	}
	return values, nil
}

func fieldParam(params map[string]interface{}, key string) (application.FieldID, error) {
	s, err := stringParam(params, key)
	if err != nil {
		return "", err
	}
	id := application.FieldID(s)
	if !application.IsKnown(id) {
		return "", fmt.Errorf("%w: unknown field %q", ErrInvalidParams, s)
	}
	return id, nil
}

func fileParam(params map[string]interface{}, key string) *application.FileRef {
	ref, ok := application.AsFileRef(params[key])
	if !ok {
		return nil
	}
	return &ref
}
