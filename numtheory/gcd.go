package numtheory

import "github.com/katalvlaran/modop/integer"

// GCD returns the greatest common divisor of a and b using Euclid's algorithm.
// GCD(a, 0) == a. For signed inputs of mixed sign the result carries the sign
// produced by Go's % operator and may be negative.
func GCD[T integer.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// ExtendedGCD returns d = GCD(a, b) together with Bézout coefficients x, y
// such that a*x + b*y == d. Coefficients are computed in T and may overflow
// for inputs near the limits of T; ModInverse does not rely on them.
func ExtendedGCD[T integer.Integer](a, b T) (d, x, y T) {
	if b == 0 {
		return a, 1, 0
	}
	d, x1, y1 := ExtendedGCD(b, a%b)

	return d, y1, x1 - (a/b)*y1
}

// LCM returns the least common multiple of a and b; LCM(a, 0) == 0.
func LCM[T integer.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}

	return integer.Abs(a / GCD(a, b) * b)
}
