// Package modint implements ModInt, an integer remainder bound to a fixed
// modulus, with the usual arithmetic operators and binary exponentiation.
//
// 🚀 What:
//
//	ModInt[T] stores remainder = value % modulus using Go's native remainder,
//	so for signed T a remainder may be negative (e.g. -3 (mod 5)).
//	Normalization into [0, m) or (-m, 0] is an explicit opt-in through
//	NonNegative / NonPositive.
//
// ✨ Key features:
//   - generic over every fixed-width integer (package integer)
//   - Add / Sub / Mul / Div return new values, *Assign variants mutate in place
//   - Div goes through numtheory.ModInverse; TryDiv returns the failure as an error
//   - Pow / PowAssign use square-and-multiply, reducing after every product
//   - String renders "<remainder> (mod <modulus>)"
//
// ⚙️ Usage:
//
//	a := modint.New(3, 5)
//	b := a.Div(modint.New(4, 5)) // 2 (mod 5)
//	modint.SetNonPositive(&b)    // -3 (mod 5)
//
// Panics:
//
//	Contract violations are not recoverable results. New panics with
//	moderr.ErrZeroModulus, binary operators on different moduli panic with a
//	*moderr.DifferentModuliError, and Div on a non-invertible divisor panics
//	with the wrapped *moderr.NotRelativelyPrimeError.
//
// Products are computed in T, so keep |modulus| below the square root of the
// largest value of T when multiplying or exponentiating.
package modint
