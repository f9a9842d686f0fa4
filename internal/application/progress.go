package application

import "math"

// Progress is the live completion state of the form
type Progress struct {
	CompletionPercent int         `json:"completion_percent"`
	FieldErrors       FieldErrors `json:"field_errors"`
	IsSubmittable     bool        `json:"is_submittable"`
}

// ComputeProgress counts how many required fields validate. An empty
// required set is complete.
func ComputeProgress(values Values, required []FieldID, ctx Context) Progress {
	errs := ValidateForSubmission(values, required, ctx)
	if len(required) == 0 {
		return Progress{CompletionPercent: 100, FieldErrors: errs, IsSubmittable: true}
	}

	valid := len(required) - len(errs)
	percent := int(math.Round(100 * float64(valid) / float64(len(required))))
	return Progress{
		CompletionPercent: percent,
		FieldErrors:       errs,
		IsSubmittable:     percent == 100,
	}
}
