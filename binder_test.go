package modop_test

import (
	"testing"

	"github.com/katalvlaran/modop"
	"github.com/katalvlaran/modop/moderr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBind_Int builds values through the binder.
func TestBind_Int(t *testing.T) {
	b := modop.Bind[int](5)
	assert.Equal(t, 5, b.Modulus())

	q := b.Int(3).Div(b.Int(4))
	assert.Equal(t, "2 (mod 5)", q.String())
	assert.Equal(t, -2, b.Int(-7).Remainder())
}

// TestBind_Gen builds a generator sharing the bound modulus.
func TestBind_Gen(t *testing.T) {
	b := modop.Bind[uint32](13)
	g := b.Gen()
	assert.Equal(t, uint32(13), g.Modulus())

	c, err := g.Combination(5, 2)
	require.NoError(t, err)
	assert.True(t, c.Equal(b.Int(10)))

	assert.NotSame(t, g, b.Gen(), "each call returns an independent generator")
}

// TestBind_ZeroPanics verifies the zero-modulus contract.
func TestBind_ZeroPanics(t *testing.T) {
	assert.PanicsWithError(t, moderr.ErrZeroModulus.Error(), func() { modop.Bind[int64](0) })
}
