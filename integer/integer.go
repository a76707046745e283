package integer

import "golang.org/x/exp/constraints"

// Integer is the contract satisfied by every fixed-width integer type:
// native + - * / %, ordering, and conversion to and from the wide type.
type Integer interface {
	constraints.Integer
}

// Signed is the subset of Integer able to hold negative remainders.
type Signed interface {
	constraints.Signed
}

// Unsigned is the subset of Integer whose remainders are never negative.
type Unsigned interface {
	constraints.Unsigned
}

// IsSigned reports whether T can represent negative values.
func IsSigned[T Integer]() bool {
	var zero T

	return ^zero < zero
}

// Abs returns |x|. Unsigned values are returned unchanged; the minimum value
// of a signed type has no positive counterpart and wraps to itself.
func Abs[T Integer](x T) T {
	if x < 0 {
		return -x
	}

	return x
}
