package modgen

import (
	"fmt"

	"github.com/katalvlaran/modop/moderr"
	"github.com/katalvlaran/modop/modint"
)

// Factorial returns n! (mod m). The error is always nil; it is kept so all
// three queries share a shape.
func (g *Generator[T]) Factorial(n int) (modint.ModInt[T], error) {
	g.Expand(n)

	return modint.New(g.factorials[n], g.Modulus()), nil
}

// Permutation returns n! · (r!)⁻¹ (mod m).
// It fails with a *moderr.CannotCalculateError when (r!)⁻¹ does not exist.
// Panics with moderr.ErrInvertedOrder when r > n.
func (g *Generator[T]) Permutation(n, r int) (modint.ModInt[T], error) {
	checkOrder("permutation", n, r)
	g.Expand(n)

	m := g.Modulus()
	inv := g.inverses[r]
	if !inv.ok {
		return modint.ModInt[T]{}, &moderr.CannotCalculateError[T]{Object: "permutation", Modulus: m}
	}

	return modint.New(g.factorials[n], m).Mul(modint.New(inv.value, m)), nil
}

// Combination returns C(n, r) = n! · (r!)⁻¹ · ((n-r)!)⁻¹ (mod m).
// Panics with moderr.ErrInvertedOrder when r > n.
func (g *Generator[T]) Combination(n, r int) (modint.ModInt[T], error) {
	checkOrder("combination", n, r)
	g.Expand(n)

	m := g.Modulus()
	rInv, nrInv := g.inverses[r], g.inverses[n-r]
	if !rInv.ok || !nrInv.ok {
		return modint.ModInt[T]{}, &moderr.CannotCalculateError[T]{Object: "combination", Modulus: m}
	}

	c := modint.New(g.factorials[n], m).Mul(modint.New(rInv.value, m))

	return c.Mul(modint.New(nrInv.value, m)), nil
}

func checkOrder(object string, n, r int) {
	if r < 0 {
		panic(fmt.Errorf("%s error: %w: r(=%d)", object, moderr.ErrNegativeIndex, r))
	}
	if n < r {
		panic(fmt.Errorf("%s error: %w: n(=%d), r(=%d)", object, moderr.ErrInvertedOrder, n, r))
	}
}
