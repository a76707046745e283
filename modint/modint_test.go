package modint_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/modop/moderr"
	"github.com/katalvlaran/modop/modint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recoverErr runs f and returns the error it panicked with, or nil.
func recoverErr(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()

	return nil
}

// TestNew_NativeRemainder checks that the stored remainder equals value % modulus.
func TestNew_NativeRemainder(t *testing.T) {
	for v := int32(-50); v <= 50; v++ {
		for _, m := range []int32{1, 2, 7, 13, -7} {
			a := modint.New(v, m)
			assert.Equal(t, v%m, a.Remainder(), "v=%d m=%d", v, m)
			assert.Equal(t, m, a.Modulus())
		}
	}
	assert.Equal(t, uint8(4), modint.New(uint8(254), 10).Remainder())
	assert.Equal(t, int64(-3), modint.New(int64(-8), 5).Remainder(), "signed remainder stays negative")
}

// TestNew_ZeroModulusPanics verifies the zero-modulus contract violation.
func TestNew_ZeroModulusPanics(t *testing.T) {
	assert.PanicsWithError(t, moderr.ErrZeroModulus.Error(), func() { modint.New(3, 0) })
	assert.PanicsWithError(t, moderr.ErrZeroModulus.Error(), func() { modint.New(uint16(3), 0) })
}

// TestString renders the display form.
func TestString(t *testing.T) {
	assert.Equal(t, "2 (mod 5)", modint.New(7, 5).String())
	assert.Equal(t, "-3 (mod 5)", modint.New(-3, 5).String())
	assert.Equal(t, "0 (mod 18446744073709551615)", modint.New(uint64(0), math.MaxUint64).String())
}

// TestAddSub_RoundTrip checks (a+b)-b == a for signed widths, after normalization.
func TestAddSub_RoundTrip(t *testing.T) {
	const m = int64(17)
	for x := int64(-20); x <= 20; x++ {
		for y := int64(-20); y <= 20; y++ {
			a, b := modint.New(x, m), modint.New(y, m)
			got := a.Add(b).Sub(b)
			assert.Equal(t, modint.NonNegative(a), modint.NonNegative(got), "x=%d y=%d", x, y)
		}
	}
}

// TestAddSub_Unsigned checks the unsigned subtraction branches and round trip.
func TestAddSub_Unsigned(t *testing.T) {
	const m = uint32(13)
	for x := uint32(0); x < 30; x++ {
		for y := uint32(0); y < 30; y++ {
			a, b := modint.New(x, m), modint.New(y, m)
			d := a.Sub(b)
			assert.Less(t, d.Remainder(), m, "difference stays in [0, m)")
			assert.True(t, d.Add(b).Equal(a), "x=%d y=%d", x, y)
		}
	}

	assert.Equal(t, uint8(3), modint.New(uint8(1), 5).Sub(modint.New(uint8(3), 5)).Remainder())
	assert.Equal(t, uint8(2), modint.New(uint8(4), 5).Sub(modint.New(uint8(2), 5)).Remainder())
}

// TestMulDiv_RoundTrip checks (a*b)/b == a whenever b is invertible.
func TestMulDiv_RoundTrip(t *testing.T) {
	const m = uint64(101)
	for x := uint64(0); x < m; x += 3 {
		for y := uint64(1); y < m; y += 5 {
			a, b := modint.New(x, m), modint.New(y, m)
			assert.True(t, a.Mul(b).Div(b).Equal(a), "x=%d y=%d", x, y)
		}
	}
}

// TestDiv_Examples pins the worked division examples.
func TestDiv_Examples(t *testing.T) {
	b := modint.New(3, 5).Div(modint.New(4, 5))
	assert.Equal(t, 2, b.Remainder())

	assert.Equal(t, -3, modint.SetNonPositive(&b))
	assert.Equal(t, "-3 (mod 5)", b.String())
	assert.Equal(t, 2, modint.SetNonNegative(&b))
	assert.Equal(t, "2 (mod 5)", b.String())
}

// TestDiv_NotInvertiblePanics verifies the wrapped NotRelativelyPrime panic.
func TestDiv_NotInvertiblePanics(t *testing.T) {
	assert.PanicsWithError(t, "division error: remainder 0 and modulus 5 must be relatively prime", func() {
		modint.New(3, 5).Div(modint.New(5, 5))
	})

	err := recoverErr(func() { modint.New(3, 10).Div(modint.New(10, 10)) })
	require.Error(t, err)
	assert.ErrorIs(t, err, moderr.ErrNotRelativelyPrime)
	var nrp *moderr.NotRelativelyPrimeError[int]
	require.True(t, errors.As(err, &nrp))
	assert.Equal(t, 0, nrp.Remainder)
	assert.Equal(t, 10, nrp.Modulus)
}

// TestTryDiv returns both failure modes as errors.
func TestTryDiv(t *testing.T) {
	q, err := modint.New(3, 5).TryDiv(modint.New(4, 5))
	require.NoError(t, err)
	assert.Equal(t, 2, q.Remainder())

	_, err = modint.New(3, 5).TryDiv(modint.New(5, 5))
	var nrp *moderr.NotRelativelyPrimeError[int]
	require.ErrorAs(t, err, &nrp)
	assert.Equal(t, 0, nrp.Remainder)
	assert.Equal(t, 5, nrp.Modulus)

	_, err = modint.New(3, 5).TryDiv(modint.New(3, 10))
	assert.ErrorIs(t, err, moderr.ErrDifferentModuli)
	assert.EqualError(t, err, "cannot divide between congruences with different moduli")
}

// TestDifferentModuliPanics verifies every binary operator rejects mismatched moduli.
func TestDifferentModuliPanics(t *testing.T) {
	a, c := modint.New(3, 5), modint.New(3, 10)
	cases := map[string]func(){
		"add":      func() { a.Add(c) },
		"subtract": func() { a.Sub(c) },
		"multiply": func() { a.Mul(c) },
		"divide":   func() { a.Div(c) },
	}
	for op, f := range cases {
		assert.PanicsWithError(t, "cannot "+op+" between congruences with different moduli", f, op)
	}
}

// TestAssignOps checks that in-place variants match their value counterparts.
func TestAssignOps(t *testing.T) {
	a, b := modint.New(int16(9), 11), modint.New(int16(4), 11)

	x := a
	x.AddAssign(b)
	assert.True(t, x.Equal(a.Add(b)))

	x = a
	x.SubAssign(b)
	assert.True(t, x.Equal(a.Sub(b)))

	x = a
	x.MulAssign(b)
	assert.True(t, x.Equal(a.Mul(b)))

	x = a
	x.DivAssign(b)
	assert.True(t, x.Equal(a.Div(b)))
	assert.Equal(t, int16(9), a.Remainder(), "value receivers leave the operand untouched")
}

// TestNormalize covers both directions and the already-normalized cases.
func TestNormalize(t *testing.T) {
	assert.Equal(t, 2, modint.NonNegative(modint.New(-3, 5)))
	assert.Equal(t, 2, modint.NonNegative(modint.New(2, 5)))
	assert.Equal(t, -3, modint.NonPositive(modint.New(2, 5)))
	assert.Equal(t, -3, modint.NonPositive(modint.New(-3, 5)))
	assert.Equal(t, 0, modint.NonPositive(modint.New(0, 5)))
	assert.Equal(t, int8(4), modint.NonNegative(modint.New(int8(-1), -5)), "uses |modulus|")

	a := modint.New(int64(-8), 5)
	assert.Equal(t, int64(2), modint.SetNonNegative(&a))
	assert.Equal(t, int64(2), a.Remainder())
}
