package numbering

import (
	"testing"

	apperrors "condo-maintenance-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	n, err := Format(2025, 7)
	require.NoError(t, err)
	assert.Equal(t, "OS-2025-0007", n)

	n, err = Format(2026, MaxSequence)
	require.NoError(t, err)
	assert.Equal(t, "OS-2026-9999", n)

	_, err = Format(2025, 0)
	assert.True(t, apperrors.IsValidation(err))

	_, err = Format(2025, MaxSequence+1)
	assert.True(t, apperrors.IsValidation(err))

	_, err = Format(99, 1)
	assert.True(t, apperrors.IsValidation(err))
}

func TestValidateReturnsNumberUnmodified(t *testing.T) {
	got, err := Validate("OS-2025-0007")
	require.NoError(t, err)
	assert.Equal(t, "OS-2025-0007", got)
}

func TestValidateRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"OS-2025-7",
		"os-2025-0007",
		"OS-25-0007",
		"OS-2025-00007",
		" OS-2025-0007",
		"OS-2025-0007\n",
		"OS_2025_0007",
	}
	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			_, err := Validate(c)
			assert.ErrorIs(t, err, apperrors.ErrInvalidWorkOrderNumber)
			assert.False(t, Valid(c))
		})
	}
}

func TestParse(t *testing.T) {
	year, seq, err := Parse("OS-2025-0007")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 7, seq)

	_, _, err = Parse("OS-2025-x007")
	assert.Error(t, err)
}
