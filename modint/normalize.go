package modint

import "github.com/katalvlaran/modop/integer"

// Normalization only exists for signed widths: an unsigned remainder is never
// negative. The functions are free-standing so the integer.Signed constraint
// can be expressed.

// NonNegative returns the representative of a in [0, |m|).
func NonNegative[T integer.Signed](a ModInt[T]) T {
	if a.remainder >= 0 {
		return a.remainder
	}

	return a.remainder + integer.Abs(a.modulus)
}

// NonPositive returns the representative of a in (-|m|, 0].
func NonPositive[T integer.Signed](a ModInt[T]) T {
	if a.remainder <= 0 {
		return a.remainder
	}

	return a.remainder - integer.Abs(a.modulus)
}

// SetNonNegative stores NonNegative(*a) and returns it.
func SetNonNegative[T integer.Signed](a *ModInt[T]) T {
	a.remainder = NonNegative(*a)

	return a.remainder
}

// SetNonPositive stores NonPositive(*a) and returns it.
func SetNonPositive[T integer.Signed](a *ModInt[T]) T {
	a.remainder = NonPositive(*a)

	return a.remainder
}
