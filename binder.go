package modop

import (
	"github.com/katalvlaran/modop/integer"
	"github.com/katalvlaran/modop/moderr"
	"github.com/katalvlaran/modop/modgen"
	"github.com/katalvlaran/modop/modint"
)

// Binder fixes a modulus and an integer type so call sites construct values
// without repeating them. It carries no state beyond the modulus.
type Binder[T integer.Integer] struct {
	modulus T
}

// Bind returns a Binder for modulus. Panics with moderr.ErrZeroModulus on zero.
func Bind[T integer.Integer](modulus T) Binder[T] {
	if modulus == 0 {
		panic(moderr.ErrZeroModulus)
	}

	return Binder[T]{modulus: modulus}
}

// Modulus returns the bound modulus.
func (b Binder[T]) Modulus() T { return b.modulus }

// Int returns value (mod modulus).
func (b Binder[T]) Int(value T) modint.ModInt[T] {
	return modint.New(value, b.modulus)
}

// Gen returns a fresh combinatorics generator for the bound modulus.
func (b Binder[T]) Gen() *modgen.Generator[T] {
	return modgen.New(b.modulus)
}
