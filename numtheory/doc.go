// Package numtheory provides the number-theoretic primitives behind modular
// arithmetic: greatest common divisor, the extended Euclidean algorithm and
// the modular inverse.
//
// 🚀 What:
//
//   - GCD         — Euclid's algorithm, following Go's remainder sign convention.
//   - ExtendedGCD — d, x, y with a·x + b·y = d = gcd(a, b).
//   - ModInverse  — x with a·x ≡ 1 (mod m), or NotRelativelyPrimeError.
//   - LCM         — least common multiple built on GCD.
//
// ✨ Overflow safety:
//
//	ModInverse keeps its Bézout coefficient in a 256-bit wide intermediate
//	(see package integer), so back-substitution cannot overflow even when
//	the narrow type is uint64 and m sits near its range limit.
//
// Complexity:
//
//   - GCD, ExtendedGCD, ModInverse: O(log min(a, b)).
//
// Errors:
//
//   - moderr.NotRelativelyPrimeError: gcd(a, m) ≠ 1 (sign as returned by GCD), no inverse exists.
package numtheory
