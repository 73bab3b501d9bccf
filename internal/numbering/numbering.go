// Package numbering formats and validates work order ("OS") numbers.
//
// Numbers look like OS-2025-0007: the calendar year followed by a
// four-digit sequence that restarts every year per condominium.
package numbering

import (
	"fmt"
	"regexp"
	"strconv"

	apperrors "condo-maintenance-backend/internal/errors"
)

// MaxSequence is the largest sequence representable in four digits.
const MaxSequence = 9999

var pattern = regexp.MustCompile(`^OS-\d{4}-\d{4}$`)

// Format renders year and sequence as OS-YYYY-NNNN.
func Format(year, seq int) (string, error) {
	if year < 1000 || year > 9999 {
		return "", apperrors.NewValidationError("year", fmt.Sprintf("%d does not have four digits", year))
	}
	if seq < 1 || seq > MaxSequence {
		return "", apperrors.NewValidationError("sequence", fmt.Sprintf("%d is outside 1..%d", seq, MaxSequence))
	}
	return fmt.Sprintf("OS-%04d-%04d", year, seq), nil
}

// Valid reports whether s is a well formed OS number.
func Valid(s string) bool {
	return pattern.MatchString(s)
}

// Validate returns the number untouched when well formed.
func Validate(s string) (string, error) {
	if !Valid(s) {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidWorkOrderNumber, s)
	}
	return s, nil
}

// Parse splits a valid number into its year and sequence.
func Parse(s string) (year, seq int, err error) {
	if _, err := Validate(s); err != nil {
		return 0, 0, err
	}
	year, _ = strconv.Atoi(s[3:7])
	seq, _ = strconv.Atoi(s[8:])
	return year, seq, nil
}
