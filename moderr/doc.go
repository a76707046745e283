// Package moderr is the single error taxonomy shared by numtheory, modint and
// modgen.
//
// Two regimes coexist:
//
//   - Recoverable conditions are returned as typed errors the caller must
//     inspect: NotRelativelyPrimeError (no inverse exists),
//     DifferentModuliError (typed division across moduli) and
//     CannotCalculateError (a needed inverse factorial is missing).
//   - Contract violations (zero modulus, mismatched moduli in an operator,
//     r > n, an index that does not fit the integer type) are raised with
//     panic. The panic value is always an error, so a caller that recovers
//     can still classify it with errors.Is.
//
// Every typed error matches its sentinel through errors.Is:
//
//	_, err := numtheory.ModInverse(4, 10)
//	if errors.Is(err, moderr.ErrNotRelativelyPrime) { … }
package moderr
