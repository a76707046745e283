package modgen

import (
	"fmt"

	"github.com/katalvlaran/modop/integer"
	"github.com/katalvlaran/modop/moderr"
	"github.com/katalvlaran/modop/modint"
	"github.com/katalvlaran/modop/numtheory"
)

// inverse is an optional (i!)⁻¹; ok is false when i! shares a factor with m.
type inverse[T integer.Integer] struct {
	value T
	ok    bool
}

// Generator holds the factorial and inverse-factorial tables for one modulus.
//
// Invariants:
//   - len(factorials) == len(inverses), index i holding i! and (i!)⁻¹;
//   - tables only grow;
//   - top.Remainder() == factorials[len(factorials)-1].
type Generator[T integer.Integer] struct {
	factorials []T
	inverses   []inverse[T]
	top        modint.ModInt[T]
}

// New returns a Generator covering 0! and 1!.
// Panics with moderr.ErrZeroModulus when modulus is zero.
func New[T integer.Integer](modulus T) *Generator[T] {
	if modulus == 0 {
		panic(moderr.ErrZeroModulus)
	}
	var one inverse[T]
	if v, err := numtheory.ModInverse(T(1), modulus); err == nil {
		one = inverse[T]{value: v, ok: true}
	}

	return &Generator[T]{
		factorials: []T{1, 1},
		inverses:   []inverse[T]{one, one},
		top:        modint.New(T(1), modulus),
	}
}

// Modulus returns the generator's modulus.
func (g *Generator[T]) Modulus() T { return g.top.Modulus() }

// Len returns the number of covered indices; 0..Len()-1 are tabulated.
func (g *Generator[T]) Len() int { return len(g.factorials) }

// Factorials returns a copy of the factorial table.
func (g *Generator[T]) Factorials() []T {
	out := make([]T, len(g.factorials))
	copy(out, g.factorials)

	return out
}

// InverseFactorial returns (i!)⁻¹ after covering i; ok is false when it does not exist.
func (g *Generator[T]) InverseFactorial(i int) (T, bool) {
	g.Expand(i)
	inv := g.inverses[i]

	return inv.value, inv.ok
}

// Expand makes sure index n is tabulated. Already covered indices are left
// untouched; each new index costs one multiplication and one inverse.
func (g *Generator[T]) Expand(n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: n(=%d)", moderr.ErrNegativeIndex, n))
	}
	if n < len(g.factorials) {
		return
	}
	toT[T](n) // indices grow monotonically: if n fits, every index below it does
	m := g.Modulus()
	for i := len(g.factorials); i <= n; i++ {
		g.top.MulAssign(modint.New(toT[T](i), m))
		f := g.top.Remainder()
		g.factorials = append(g.factorials, f)

		var inv inverse[T]
		if v, err := numtheory.ModInverse(f, m); err == nil {
			inv = inverse[T]{value: v, ok: true}
		}
		g.inverses = append(g.inverses, inv)
	}
}

// toT converts a table index into T, panicking when it does not fit.
func toT[T integer.Integer](i int) T {
	v := T(i)
	if v < 0 || int(v) != i {
		panic(fmt.Errorf("%w: %d", moderr.ErrIndexOverflow, i))
	}

	return v
}
