// Package validate holds field-level input checks shared by the command
// services. Failures wrap model.ErrValidation so transports can map them to
// client errors.
package validate

import (
	"fmt"
	"time"

	"github.com/wellnest/wellnest/internal/model"
)

// DateLayout is the calendar-date wire format. Zero-padded and fixed-width,
// so lexicographic order equals chronological order.
const DateLayout = "2006-01-02"

// Date checks that v is a real calendar date in YYYY-MM-DD form.
func Date(field, v string) error {
	if v == "" {
		return fmt.Errorf("%w: %s is required", model.ErrValidation, field)
	}
	if t, err := time.Parse(DateLayout, v); err != nil || t.Format(DateLayout) != v {
		return fmt.Errorf("%w: %s must be a YYYY-MM-DD date", model.ErrValidation, field)
	}
	return nil
}

// MoodValue checks the 1-5 mood scale.
func MoodValue(v int) error {
	if v < 1 || v > 5 {
		return fmt.Errorf("%w: value must be between 1 and 5", model.ErrValidation)
	}
	return nil
}

func NonEmpty(field, v string) error {
	if v == "" {
		return fmt.Errorf("%w: %s is required", model.ErrValidation, field)
	}
	return nil
}
