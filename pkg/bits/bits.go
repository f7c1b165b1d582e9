// Package bits provides small helpers for testing and modifying
// individual bits of unsigned integers.
package bits

import "golang.org/x/exp/constraints"

// Val returns the value of the bit at the given index.
func Val[T constraints.Unsigned](b T, i uint8) T {
	return (b >> i) & 1
}

// Reset resets the bit at the given index.
func Reset[T constraints.Unsigned](b T, i uint8) T {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set[T constraints.Unsigned](b T, i uint8) T {
	return b | (1 << i)
}

// Test tests the bit at the given index.
func Test[T constraints.Unsigned](b T, i uint8) bool {
	return (b>>i)&1 != 0
}

// Assign sets the bit at the given index when v is true, and
// resets it otherwise.
func Assign[T constraints.Unsigned](b T, i uint8, v bool) T {
	if v {
		return Set(b, i)
	}
	return Reset(b, i)
}

// Low returns the low byte of a 16-bit value.
func Low(v uint16) uint8 {
	return uint8(v)
}

// High returns the high byte of a 16-bit value.
func High(v uint16) uint8 {
	return uint8(v >> 8)
}

// Join combines a high and low byte into a 16-bit value.
func Join(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}
