// Package modgen answers factorial, permutation and combination queries
// modulo a fixed modulus from incrementally grown tables.
//
// 🚀 What:
//
//	A Generator keeps n! (mod m) and, where it exists, (n!)⁻¹ (mod m) for
//	every index covered so far. Queries beyond the covered range extend the
//	tables on demand; earlier entries are never recomputed, so the total
//	cost over the generator's lifetime is O(n) plus one inverse per index.
//
// ✨ Composite moduli:
//
//	The modulus need not be prime. Once i! shares a factor with m its
//	inverse is recorded as missing, and Permutation/Combination return a
//	*moderr.CannotCalculateError when they need it. Factorial always succeeds.
//
// ⚙️ Usage:
//
//	g := modgen.New(13)
//	c, err := g.Combination(5, 2) // 10 (mod 13)
//
// Concurrency:
//
//	A Generator mutates its tables on query and is not synchronized;
//	guard it with a mutex when sharing between goroutines.
//
// Panics:
//
//   - moderr.ErrZeroModulus   — New(0).
//   - moderr.ErrInvertedOrder — Permutation/Combination with r > n.
//   - moderr.ErrNegativeIndex — negative n or r.
//   - moderr.ErrIndexOverflow — an index the integer type cannot represent.
package modgen
