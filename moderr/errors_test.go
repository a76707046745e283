package moderr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/modop/moderr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMessages pins the rendered text of every typed error.
func TestMessages(t *testing.T) {
	assert.EqualError(t, &moderr.NotRelativelyPrimeError[int]{Remainder: 0, Modulus: 5},
		"remainder 0 and modulus 5 must be relatively prime")
	assert.EqualError(t, &moderr.DifferentModuliError{Op: "divide"},
		"cannot divide between congruences with different moduli")
	assert.EqualError(t, &moderr.CannotCalculateError[uint32]{Object: "combination", Modulus: 12},
		"cannot calculate combination with modulus 12")
}

// TestSentinels verifies errors.Is through direct and wrapped errors.
func TestSentinels(t *testing.T) {
	var err error = &moderr.NotRelativelyPrimeError[int64]{Remainder: 4, Modulus: 10}
	assert.ErrorIs(t, err, moderr.ErrNotRelativelyPrime)
	assert.NotErrorIs(t, err, moderr.ErrCannotCalculate)

	wrapped := fmt.Errorf("division error: %w", err)
	assert.ErrorIs(t, wrapped, moderr.ErrNotRelativelyPrime)

	var nrp *moderr.NotRelativelyPrimeError[int64]
	require.True(t, errors.As(wrapped, &nrp))
	assert.Equal(t, int64(4), nrp.Remainder)
	assert.Equal(t, int64(10), nrp.Modulus)

	assert.ErrorIs(t, &moderr.DifferentModuliError{Op: "add"}, moderr.ErrDifferentModuli)
	assert.ErrorIs(t, &moderr.CannotCalculateError[int]{Object: "permutation", Modulus: 4}, moderr.ErrCannotCalculate)
}
