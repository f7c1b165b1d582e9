package cpu

import "github.com/thelolagemann/gomeboy-core/pkg/bits"

// rotateLeftCarry rotates n left, bit 7 goes to both bit 0 and the
// carry flag.
//
//	RLC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftCarry(n uint8) uint8 {
	result := n<<1 | n>>7
	c.F.Set(result == 0, false, false, n&0x80 != 0)
	return result
}

// rotateRightCarry rotates n right, bit 0 goes to both bit 7 and the
// carry flag.
//
//	RRC n
func (c *CPU) rotateRightCarry(n uint8) uint8 {
	result := n>>1 | n<<7
	c.F.Set(result == 0, false, false, n&0x01 != 0)
	return result
}

// rotateLeft rotates n left through the carry flag.
//
//	RL n
func (c *CPU) rotateLeft(n uint8) uint8 {
	result := n << 1
	if c.F.Carry() {
		result |= 0x01
	}
	c.F.Set(result == 0, false, false, n&0x80 != 0)
	return result
}

// rotateRight rotates n right through the carry flag.
//
//	RR n
func (c *CPU) rotateRight(n uint8) uint8 {
	result := n >> 1
	if c.F.Carry() {
		result |= 0x80
	}
	c.F.Set(result == 0, false, false, n&0x01 != 0)
	return result
}

// rotateAccumulator applies one of the rotations to A. The accumulator
// forms always reset Z.
//
//	RLCA, RRCA, RLA, RRA
func (c *CPU) rotateAccumulator(rotate func(*CPU, uint8) uint8) {
	c.A = rotate(c, c.A)
	c.F.Set(false, false, false, c.F.Carry())
}

// shiftLeftArithmetic shifts n left into carry, bit 0 is reset.
//
//	SLA n
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	result := n << 1
	c.F.Set(result == 0, false, false, n&0x80 != 0)
	return result
}

// shiftRightArithmetic shifts n right into carry, bit 7 is kept.
//
//	SRA n
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	result := n>>1 | n&0x80
	c.F.Set(result == 0, false, false, n&0x01 != 0)
	return result
}

// shiftRightLogical shifts n right into carry, bit 7 is reset.
//
//	SRL n
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	result := n >> 1
	c.F.Set(result == 0, false, false, n&0x01 != 0)
	return result
}

// swap exchanges the upper and lower nibbles of n.
//
//	SWAP n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(n uint8) uint8 {
	result := n<<4 | n>>4
	c.F.Set(result == 0, false, false, false)
	return result
}

// testBit tests bit b of n.
//
//	BIT b, n
//
// Flags affected:
//
//	Z - Set if bit b of n is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(b uint8, n uint8) {
	c.F.Set(!bits.Test(n, b), false, true, c.F.Carry())
}

func resetBit(b uint8, n uint8) uint8 {
	return bits.Reset(n, b)
}

func setBit(b uint8, n uint8) uint8 {
	return bits.Set(n, b)
}
