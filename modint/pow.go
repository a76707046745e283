package modint

// Pow returns remainder^n reduced by the modulus, leaving a unchanged.
// Exponentiation is square-and-multiply from the least significant bit of n;
// every product is reduced immediately. Pow(0) is 1 % m.
func (a ModInt[T]) Pow(n uint) T {
	m := a.modulus
	base := a.remainder
	acc := 1 % m
	for {
		if n&1 == 1 {
			acc = acc * base % m
		}
		n >>= 1
		if n == 0 {
			break
		}
		base = base * base % m
	}

	return acc
}

// PowAssign overwrites the remainder with Pow(n) and returns it.
func (a *ModInt[T]) PowAssign(n uint) T {
	a.remainder = a.Pow(n)

	return a.remainder
}
