package timemath

import (
	"errors"

	"github.com/shibukawa/timemath/tokenizer"
)

// Common errors used throughout the timemath package
var (
	// ErrConfigValidation is returned when configuration validation fails.
	ErrConfigValidation = errors.New("configuration validation failed")
	// ErrInvalidBaseTime indicates a configured base time could not be parsed.
	ErrInvalidBaseTime = errors.New("invalid base time")

	// Parse errors are re-exported from the tokenizer so callers can
	// match with errors.Is without importing it.

	// ErrMissingMarker indicates the expression does not start with now().
	ErrMissingMarker = tokenizer.ErrMissingMarker
	// ErrSyntax indicates unconsumed residue after greedy offset matching.
	ErrSyntax = tokenizer.ErrSyntax
	// ErrInvalidRounding indicates a rounding suffix with a missing or unknown unit.
	ErrInvalidRounding = tokenizer.ErrInvalidRounding
	// ErrInvalidMagnitude indicates an offset magnitude that failed integer parsing.
	ErrInvalidMagnitude = tokenizer.ErrInvalidMagnitude
)
