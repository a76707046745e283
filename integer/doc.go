// Package integer defines the capability contract every underlying integer
// type of modop must satisfy, together with a wide intermediate used where a
// computation would overflow the narrow type.
//
// 🚀 What:
//
//	Integer is the set of fixed-width Go integers (int8…int64, uint8…uint64,
//	int, uint, uintptr and named types over them). Every other package is
//	generic over it, so widths are resolved at compile time and no dynamic
//	dispatch is involved.
//
// ✨ Wide intermediate:
//
//	Go has no native 128-bit integer, so Wide/Narrow convert into and out of
//	a 256-bit two's-complement uint256.Int. It is large enough to hold any
//	product of two 64-bit values with room for sign, which is what Bézout
//	back-substitution needs.
//
// Complexity:
//
//   - IsSigned, Abs, Wide, Narrow: O(1).
package integer
