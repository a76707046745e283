package modint

import (
	"fmt"

	"github.com/katalvlaran/modop/integer"
	"github.com/katalvlaran/modop/moderr"
)

// ModInt is the residue class remainder (mod modulus).
// The zero value has modulus 0 and is not usable; construct values with New.
type ModInt[T integer.Integer] struct {
	remainder T
	modulus   T
}

// New reduces value by modulus with native % semantics.
// Panics with moderr.ErrZeroModulus when modulus is zero.
func New[T integer.Integer](value, modulus T) ModInt[T] {
	if modulus == 0 {
		panic(moderr.ErrZeroModulus)
	}

	return ModInt[T]{remainder: value % modulus, modulus: modulus}
}

// Remainder returns the stored representative.
func (a ModInt[T]) Remainder() T { return a.remainder }

// Modulus returns the modulus fixed at construction.
func (a ModInt[T]) Modulus() T { return a.modulus }

// Equal reports whether a and b share modulus and remainder.
// -2 (mod 5) and 3 (mod 5) are not Equal until normalized.
func (a ModInt[T]) Equal(b ModInt[T]) bool {
	return a.modulus == b.modulus && a.remainder == b.remainder
}

// String renders "<remainder> (mod <modulus>)".
func (a ModInt[T]) String() string {
	return fmt.Sprintf("%v (mod %v)", a.remainder, a.modulus)
}

// mustMatch panics with a DifferentModuliError naming op.
func (a ModInt[T]) mustMatch(b ModInt[T], op string) {
	if a.modulus != b.modulus {
		panic(&moderr.DifferentModuliError{Op: op})
	}
}
