package numtheory

import (
	"github.com/holiman/uint256"
	"github.com/katalvlaran/modop/integer"
	"github.com/katalvlaran/modop/moderr"
)

// ModInverse returns the multiplicative inverse of a modulo m, in [0, |m|).
//
// Algorithm:
//  1. Reject a, m with gcd(a, m) ≠ 1 (NotRelativelyPrimeError). gcd follows
//     Go's remainder sign, so GCD(-3, 5) == -1 is rejected as well.
//  2. Run iterative Euclid on (a, m) in T, carrying the Bézout coefficient of a
//     in the wide intermediate: u, v ← v, u − q·v.
//  3. Reduce u by m (sign follows the dividend), add |m| when negative and
//     narrow back to T.
func ModInverse[T integer.Integer](a, m T) (T, error) {
	if GCD(a, m) != 1 {
		return 0, &moderr.NotRelativelyPrimeError[T]{Remainder: a, Modulus: m}
	}

	wm := integer.Wide(m)
	b := m
	u, v := uint256.NewInt(1), new(uint256.Int)
	for b != 0 {
		q := a / b
		a, b = b, a-b*q
		next := new(uint256.Int).Mul(integer.Wide(q), v)
		next.Sub(u, next)
		u, v = v, next
	}

	u.SMod(u, wm)
	if u.Sign() < 0 {
		u.Add(u, new(uint256.Int).Abs(wm))
	}

	return integer.Narrow[T](u), nil
}
