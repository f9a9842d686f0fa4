package application

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/schemes"
)

// FileRef references an uploaded proof document. Only metadata is kept.
type FileRef struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Values holds raw form input keyed by field. Methods never mutate the
// receiver; edits return a copy.
type Values map[FieldID]any

// Clone returns a shallow copy of v
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// With sets a single field. Amount edits are never clamped here.
func (v Values) With(id FieldID, value any) Values {
	out := v.Clone()
	if value == nil {
		delete(out, id)
	} else {
		out[id] = value
	}
	return out
}

// WithScheme selects a scheme. Moving into a direct scheme clamps a
// loan amount above its maximum; re-selecting the current scheme does not.
// No other field is touched.
func (v Values) WithScheme(s *schemes.Scheme) Values {
	out := v.Clone()
	if s == nil {
		delete(out, FieldScheme)
		return out
	}
	unchanged := v.String(FieldScheme) == s.ID
	out[FieldScheme] = s.ID
	if unchanged || s.IsGovernment() {
		return out
	}
	if amount, ok := v.Amount(); ok && amount > s.MaxLoanAmount {
		out[FieldLoanAmount] = s.MaxLoanAmount
	}
	return out
}

// WithProof attaches a proof file after checking it against limits. A
// rejected or missing file is removed and the reason returned.
func (v Values) WithProof(id FieldID, file *FileRef, limits ProofLimits) (Values, string) {
	out := v.Clone()
	if msg := CheckProof(id, file, limits); msg != "" {
		delete(out, id)
		return out, msg
	}
	out[id] = *file
	return out, ""
}

// String returns the field as text; missing fields are empty
func (v Values) String(id FieldID) string {
	return asString(v[id])
}

// Amount returns the loan amount when it is present and numeric
func (v Values) Amount() (float64, bool) {
	return asNumber(v[FieldLoanAmount])
}

// File returns the proof attached to id, if any
func (v Values) File(id FieldID) (FileRef, bool) {
	return AsFileRef(v[id])
}

// AsFileRef accepts a FileRef, a non-nil *FileRef or a decoded JSON
// object with a non-empty name.
func AsFileRef(value any) (FileRef, bool) {
	switch f := value.(type) {
	case FileRef:
		return f, f.Name != ""
	case *FileRef:
		if f == nil {
			return FileRef{}, false
		}
		return *f, f.Name != ""
	case map[string]any:
		name, _ := f["name"].(string)
		if name == "" {
			return FileRef{}, false
		}
		ref := FileRef{Name: name}
		ref.ContentType, _ = f["content_type"].(string)
		if size, ok := asNumber(f["size"]); ok {
			ref.Size = int64(size)
		}
		return ref, true
	default:
		return FileRef{}, false
	}
}

func asString(value any) string {
	switch s := value.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(s)
	}
}

func asNumber(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
