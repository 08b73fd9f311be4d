package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidateConfig validates configuration values and returns an error listing
// every invalid one. It should be called after Load.
func ValidateConfig() error {
	return Current().Validate()
}

// Validate checks s and returns an error listing every invalid value.
func (s Settings) Validate() error {
	var errors []string

	if s.MinIterations < 0 {
		errors = append(errors, fmt.Sprintf("%s must not be negative, got: %d", KeyIterationsMin, s.MinIterations))
	}
	if s.MaxIterations < 1 {
		errors = append(errors, fmt.Sprintf("%s must be positive, got: %d", KeyIterationsMax, s.MaxIterations))
	}
	if s.MinIterations > s.MaxIterations {
		errors = append(errors, fmt.Sprintf("%s (%d) must not exceed %s (%d)", KeyIterationsMin, s.MinIterations, KeyIterationsMax, s.MaxIterations))
	}
	if s.MinDuration < 0 {
		errors = append(errors, fmt.Sprintf("%s must not be negative, got: %v", KeyDurationMin, s.MinDuration))
	}
	if s.MaxDuration < 0 {
		errors = append(errors, fmt.Sprintf("%s must not be negative, got: %v", KeyDurationMax, s.MaxDuration))
	}
	if s.MaxDuration > 0 && s.MinDuration > s.MaxDuration {
		errors = append(errors, fmt.Sprintf("%s (%v) must not exceed %s (%v)", KeyDurationMin, s.MinDuration, KeyDurationMax, s.MaxDuration))
	}
	if !slices.Contains(Formats, s.Format) {
		errors = append(errors, fmt.Sprintf("%s must be one of %s, got: %q", KeyFormat, strings.Join(Formats, ", "), s.Format))
	}
	if !slices.Contains(Colors, s.Color) {
		errors = append(errors, fmt.Sprintf("%s must be one of %s, got: %q", KeyColor, strings.Join(Colors, ", "), s.Color))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}
	return nil
}
