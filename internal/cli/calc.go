package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/modop"
	"github.com/katalvlaran/modop/integer"
	"github.com/katalvlaran/modop/moderr"
	"github.com/katalvlaran/modop/modint"
	"github.com/katalvlaran/modop/numtheory"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// calculator runs every command at one integer width. Each method returns
// the lines to print.
type calculator interface {
	div(a, b string) ([]string, error)
	pow(a, n string) ([]string, error)
	inv(a string) ([]string, error)
	gcd(a, b string) ([]string, error)
	fact(n string) ([]string, error)
	perm(n, r string) ([]string, error)
	comb(n, r string) ([]string, error)
}

type factory func(cfg Config, log *zap.SugaredLogger) (calculator, error)

var calculators = map[string]factory{
	"int8":   signed[int8](8),
	"int16":  signed[int16](16),
	"int32":  signed[int32](32),
	"int64":  signed[int64](64),
	"int":    signed[int](strconv.IntSize),
	"uint8":  unsigned[uint8](8),
	"uint16": unsigned[uint16](16),
	"uint32": unsigned[uint32](32),
	"uint64": unsigned[uint64](64),
	"uint":   unsigned[uint](strconv.IntSize),
}

func typeNames() []string {
	names := make([]string, 0, len(calculators))
	for name := range calculators {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func signed[T integer.Signed](bits int) factory {
	parse := func(s string) (T, error) {
		v, err := strconv.ParseInt(s, 0, bits)
		if err != nil {
			return 0, errors.Wrapf(err, "parsing %q as a %d-bit signed integer", s, bits)
		}

		return T(v), nil
	}

	return func(cfg Config, log *zap.SugaredLogger) (calculator, error) {
		c, err := newCalc(cfg, parse, log)
		if err != nil {
			return nil, err
		}
		c.normalize = func(x modint.ModInt[T]) (T, T) {
			return modint.NonPositive(x), modint.NonNegative(x)
		}

		return c, nil
	}
}

func unsigned[T integer.Unsigned](bits int) factory {
	parse := func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 0, bits)
		if err != nil {
			return 0, errors.Wrapf(err, "parsing %q as a %d-bit unsigned integer", s, bits)
		}

		return T(v), nil
	}

	return func(cfg Config, log *zap.SugaredLogger) (calculator, error) {
		c, err := newCalc(cfg, parse, log)
		if err != nil {
			return nil, err
		}

		return c, nil
	}
}

type calc[T integer.Integer] struct {
	bind     modop.Binder[T]
	parse    func(string) (T, error)
	log      *zap.SugaredLogger
	maxIndex int

	// normalize is nil for unsigned widths.
	normalize func(modint.ModInt[T]) (nonPositive, nonNegative T)
}

func newCalc[T integer.Integer](cfg Config, parse func(string) (T, error), log *zap.SugaredLogger) (*calc[T], error) {
	m, err := parse(cfg.Modulus)
	if err != nil {
		return nil, errors.WithMessage(err, "invalid modulus")
	}
	if m == 0 {
		return nil, moderr.ErrZeroModulus
	}

	return &calc[T]{bind: modop.Bind(m), parse: parse, log: log, maxIndex: cfg.MaxIndex}, nil
}

func (c *calc[T]) parsePair(a, b string) (T, T, error) {
	x, err := c.parse(a)
	if err != nil {
		return 0, 0, err
	}
	y, err := c.parse(b)
	if err != nil {
		return 0, 0, err
	}

	return x, y, nil
}

func (c *calc[T]) div(a, b string) ([]string, error) {
	x, y, err := c.parsePair(a, b)
	if err != nil {
		return nil, err
	}
	q := c.bind.Int(x).Div(c.bind.Int(y))
	lines := []string{q.String()}
	if c.normalize != nil {
		m := c.bind.Modulus()
		neg, pos := c.normalize(q)
		lines = append(lines, modint.New(neg, m).String(), modint.New(pos, m).String())
	}

	return lines, nil
}

func (c *calc[T]) pow(a, n string) ([]string, error) {
	x, err := c.parse(a)
	if err != nil {
		return nil, err
	}
	e, err := strconv.ParseUint(n, 0, strconv.IntSize)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing exponent %q", n)
	}
	v := c.bind.Int(x)
	v.PowAssign(uint(e))

	return []string{v.String()}, nil
}

func (c *calc[T]) inv(a string) ([]string, error) {
	x, err := c.parse(a)
	if err != nil {
		return nil, err
	}
	m := c.bind.Modulus()
	i, err := numtheory.ModInverse(x, m)
	if err != nil {
		return nil, err
	}

	return []string{modint.New(i, m).String()}, nil
}

func (c *calc[T]) gcd(a, b string) ([]string, error) {
	x, y, err := c.parsePair(a, b)
	if err != nil {
		return nil, err
	}
	d, s, t := numtheory.ExtendedGCD(x, y)

	return []string{
		fmt.Sprintf("gcd(%v, %v) = %v = %v*(%v) + %v*(%v)", x, y, d, x, s, y, t),
		fmt.Sprintf("lcm(%v, %v) = %v", x, y, numtheory.LCM(x, y)),
	}, nil
}

// index parses a generator index. Negative values pass through so the
// generator reports them; values above maxIndex are refused before any
// table is built.
func (c *calc[T]) index(name, s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %s %q", name, s)
	}
	if i > c.maxIndex {
		return 0, errors.Errorf("%s(=%d) exceeds max-index %d", name, i, c.maxIndex)
	}

	return i, nil
}

func (c *calc[T]) fact(n string) ([]string, error) {
	i, err := c.index("n", n)
	if err != nil {
		return nil, err
	}
	g := c.bind.Gen()
	f, err := g.Factorial(i)
	if err != nil {
		return nil, err
	}
	c.log.Debugw("factorial table expanded", "len", g.Len())

	return []string{f.String()}, nil
}

func (c *calc[T]) perm(n, r string) ([]string, error) {
	i, err := c.index("n", n)
	if err != nil {
		return nil, err
	}
	j, err := c.index("r", r)
	if err != nil {
		return nil, err
	}
	g := c.bind.Gen()
	p, err := g.Permutation(i, j)
	c.log.Debugw("factorial table expanded", "len", g.Len())
	if err != nil {
		return nil, err
	}

	return []string{p.String()}, nil
}

func (c *calc[T]) comb(n, r string) ([]string, error) {
	i, err := c.index("n", n)
	if err != nil {
		return nil, err
	}
	j, err := c.index("r", r)
	if err != nil {
		return nil, err
	}
	g := c.bind.Gen()
	v, err := g.Combination(i, j)
	c.log.Debugw("factorial table expanded", "len", g.Len())
	if err != nil {
		return nil, err
	}

	return []string{v.String()}, nil
}
