// Package modop is exact arithmetic over residue classes: modular integers,
// the number theory behind them, and modular combinatorics.
//
// 🚀 What is modop?
//
//	A small, generic, dependency-light library that brings together:
//		• Integer contract: any fixed-width signed or unsigned Go integer
//		• Number theory: GCD, extended Euclid, overflow-safe modular inverse
//		• Modular integers: + − × ÷, exponentiation, explicit normalization
//		• Combinatorics: factorial, permutation, combination from growing tables
//
// ✨ Why choose modop?
//
//   - Generic – one implementation for int8 … uint64, resolved at compile time
//   - Honest errors – contract violations panic, missing inverses are returned
//   - Native semantics – remainders follow Go's %, normalization is opt-in
//
// Under the hood, everything is organized in subpackages:
//
//	integer/   — the capability contract and the 256-bit wide intermediate
//	moderr/    — the shared error taxonomy
//	numtheory/ — GCD, ExtendedGCD, ModInverse, LCM
//	modint/    — ModInt and its operators
//	modgen/    — Generator: factorial / permutation / combination tables
//
// This package binds a modulus and an integer type once:
//
//	b := modop.Bind[int64](1_000_000_007)
//	x := b.Int(3)               // 3 (mod 1000000007)
//	c, _ := b.Gen().Combination(10, 3)
//
//	go get github.com/katalvlaran/modop
package modop
