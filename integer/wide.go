package integer

import "github.com/holiman/uint256"

// Wide returns x as a 256-bit two's-complement integer.
func Wide[T Integer](x T) *uint256.Int {
	z := new(uint256.Int)
	if x >= 0 {
		return z.SetUint64(uint64(x))
	}
	// ^x == -x-1 is non-negative and fits even for the minimum value of T.
	z.SetUint64(uint64(^x))
	z.AddUint64(z, 1)

	return z.Neg(z)
}

// Narrow converts w back into T. The caller guarantees that w is
// representable in T; excess high bits are discarded.
func Narrow[T Integer](w *uint256.Int) T {
	if w.Sign() >= 0 {
		return T(w.Uint64())
	}
	abs := new(uint256.Int).Neg(w)

	return -T(abs.Uint64())
}
