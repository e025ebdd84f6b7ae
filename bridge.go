package intdelta

import "math"

// signed32 reinterprets the bit pattern of u as a two's-complement int32.
//
// Values up to math.MaxInt32 map directly; larger values wrap around through
// math.MinInt32, so the result is always the unique value in
// [math.MinInt32, math.MaxInt32] congruent to u modulo 2^32. This lets delta
// arithmetic over arbitrary 32-bit indices (signed or unsigned) be done in a
// single signed 32-bit slot regardless of the input's original width.
func signed32(u uint32) int32 {
	if u <= math.MaxInt32 {
		return int32(u)
	}
	return int32(u-(1<<31)) + math.MinInt32
}

// unsigned32 is the decoder-side inverse of signed32: a plain bit-pattern
// reinterpretation, well-defined for every int32 value.
func unsigned32(v int32) uint32 {
	return uint32(v)
}
