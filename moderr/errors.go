package moderr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotRelativelyPrime indicates that no modular inverse exists.
	ErrNotRelativelyPrime = errors.New("moderr: not relatively prime")

	// ErrDifferentModuli indicates an operation between congruences with different moduli.
	ErrDifferentModuli = errors.New("moderr: different moduli")

	// ErrCannotCalculate indicates a combinatorial value whose inverse factorial is missing.
	ErrCannotCalculate = errors.New("moderr: cannot calculate")

	// ErrZeroModulus is the panic value for a zero modulus.
	ErrZeroModulus = errors.New("moderr: zero cannot be a modulus")

	// ErrInvertedOrder is the panic value for a permutation or combination with r > n.
	ErrInvertedOrder = errors.New("moderr: n must be equal or larger than r")

	// ErrNegativeIndex is the panic value for a negative factorial table index.
	ErrNegativeIndex = errors.New("moderr: index must be non-negative")

	// ErrIndexOverflow is the panic value for a table index the integer type cannot hold.
	ErrIndexOverflow = errors.New("moderr: index overflows the integer type")
)

// NotRelativelyPrimeError reports that Remainder has no inverse modulo Modulus.
type NotRelativelyPrimeError[T any] struct {
	Remainder T
	Modulus   T
}

func (e *NotRelativelyPrimeError[T]) Error() string {
	return fmt.Sprintf("remainder %v and modulus %v must be relatively prime", e.Remainder, e.Modulus)
}

// Is matches ErrNotRelativelyPrime.
func (e *NotRelativelyPrimeError[T]) Is(target error) bool {
	return target == ErrNotRelativelyPrime
}

// DifferentModuliError names the operation attempted between incompatible congruences.
type DifferentModuliError struct {
	Op string
}

func (e *DifferentModuliError) Error() string {
	return fmt.Sprintf("cannot %s between congruences with different moduli", e.Op)
}

// Is matches ErrDifferentModuli.
func (e *DifferentModuliError) Is(target error) bool {
	return target == ErrDifferentModuli
}

// CannotCalculateError names the combinatorial object that could not be computed.
type CannotCalculateError[T any] struct {
	Object  string
	Modulus T
}

func (e *CannotCalculateError[T]) Error() string {
	return fmt.Sprintf("cannot calculate %s with modulus %v", e.Object, e.Modulus)
}

// Is matches ErrCannotCalculate.
func (e *CannotCalculateError[T]) Is(target error) bool {
	return target == ErrCannotCalculate
}
