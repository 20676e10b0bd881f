// Package domain contains core domain types for the Mood Sense application.
package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Scale bounds for a mood rating.
const (
	MinScale     = 1
	MaxScale     = 5
	DefaultScale = 3
)

var (
	// ErrScaleOutOfRange is returned when a mood scale falls outside [MinScale, MaxScale].
	ErrScaleOutOfRange = errors.New("mood scale out of range")
	// ErrEmptyDescription is returned when a mood description is blank.
	ErrEmptyDescription = errors.New("mood description is empty")
)

// MoodEntry is one journaled record of a self-reported mood.
type MoodEntry struct {
	ID          string `json:"id"`
	Scale       int    `json:"scale"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
	Insight     string `json:"insight,omitempty"`
}

// NewMoodEntry builds an entry stamped with now in UTC.
func NewMoodEntry(id string, scale int, description, insight string, now time.Time) MoodEntry {
	return MoodEntry{
		ID:          id,
		Scale:       scale,
		Description: description,
		Timestamp:   now.UTC().Format(time.RFC3339Nano),
		Insight:     insight,
	}
}

// Validate checks the invariants every persisted entry must hold.
func (e MoodEntry) Validate() error {
	if err := ValidateScale(e.Scale); err != nil {
		return err
	}
	if strings.TrimSpace(e.Description) == "" {
		return ErrEmptyDescription
	}
	return nil
}

// HasInsight reports whether a generated insight is attached.
func (e MoodEntry) HasInsight() bool {
	return e.Insight != ""
}

// Time parses the entry timestamp. A malformed timestamp yields the zero time.
func (e MoodEntry) Time() time.Time {
	t, err := time.Parse(time.RFC3339Nano, e.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ValidateScale returns ErrScaleOutOfRange for values outside the mood scale.
func ValidateScale(scale int) error {
	if scale < MinScale || scale > MaxScale {
		return fmt.Errorf("%w: %d", ErrScaleOutOfRange, scale)
	}
	return nil
}

// ClampScale bounds a value to the mood scale the way the input control does.
func ClampScale(scale int) int {
	if scale < MinScale {
		return MinScale
	}
	if scale > MaxScale {
		return MaxScale
	}
	return scale
}
