package modint

import (
	"github.com/katalvlaran/modop/integer"
	"github.com/katalvlaran/modop/moderr"
	"github.com/katalvlaran/modop/numtheory"
	"github.com/pkg/errors"
)

// Add returns (a + b) % m.
func (a ModInt[T]) Add(b ModInt[T]) ModInt[T] {
	a.mustMatch(b, "add")

	return ModInt[T]{remainder: (a.remainder + b.remainder) % a.modulus, modulus: a.modulus}
}

// Sub returns a - b. Signed widths use (a - b) % m; unsigned widths cannot go
// below zero and pick m - b + a when b > a, keeping the result in [0, m).
func (a ModInt[T]) Sub(b ModInt[T]) ModInt[T] {
	a.mustMatch(b, "subtract")

	m := a.modulus
	if integer.IsSigned[T]() {
		return ModInt[T]{remainder: (a.remainder - b.remainder) % m, modulus: m}
	}
	if a.remainder >= b.remainder {
		return ModInt[T]{remainder: a.remainder - b.remainder, modulus: m}
	}

	return ModInt[T]{remainder: m - b.remainder + a.remainder, modulus: m}
}

// Mul returns (a * b) % m.
func (a ModInt[T]) Mul(b ModInt[T]) ModInt[T] {
	a.mustMatch(b, "multiply")

	return ModInt[T]{remainder: (a.remainder * b.remainder) % a.modulus, modulus: a.modulus}
}

// Div returns a · b⁻¹. It panics on different moduli, and when b has no
// inverse it panics with the NotRelativelyPrimeError wrapped as
// "division error: …".
func (a ModInt[T]) Div(b ModInt[T]) ModInt[T] {
	a.mustMatch(b, "divide")

	q, err := a.TryDiv(b)
	if err != nil {
		panic(errors.Wrap(err, "division error"))
	}

	return q
}

// TryDiv is Div with both failure modes returned instead of raised:
// *moderr.DifferentModuliError or *moderr.NotRelativelyPrimeError.
func (a ModInt[T]) TryDiv(b ModInt[T]) (ModInt[T], error) {
	if a.modulus != b.modulus {
		return ModInt[T]{}, &moderr.DifferentModuliError{Op: "divide"}
	}
	inv, err := numtheory.ModInverse(b.remainder, b.modulus)
	if err != nil {
		return ModInt[T]{}, err
	}

	return ModInt[T]{remainder: (a.remainder * inv) % a.modulus, modulus: a.modulus}, nil
}

// AddAssign sets a = a + b.
func (a *ModInt[T]) AddAssign(b ModInt[T]) { *a = a.Add(b) }

// SubAssign sets a = a - b.
func (a *ModInt[T]) SubAssign(b ModInt[T]) { *a = a.Sub(b) }

// MulAssign sets a = a * b.
func (a *ModInt[T]) MulAssign(b ModInt[T]) { *a = a.Mul(b) }

// DivAssign sets a = a / b.
func (a *ModInt[T]) DivAssign(b ModInt[T]) { *a = a.Div(b) }
