package cpu

// add adds n, and the carry flag when withCarry is set, to the A
// Register.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, withCarry bool) {
	var carry uint8
	if withCarry && c.F.Carry() {
		carry = 1
	}
	result := uint16(c.A) + uint16(n) + uint16(carry)
	halfCarry := c.A&0x0F+n&0x0F+carry > 0x0F

	c.A = uint8(result)
	c.F.Set(c.A == 0, false, halfCarry, result > 0xFF)
}

// sub subtracts n, and the carry flag when withCarry is set, from the
// A Register.
//
//	SUB n
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if no borrow from bit 4.
//	C - Set if no borrow.
func (c *CPU) sub(n uint8, withCarry bool) {
	c.A = c.subtract(n, withCarry)
}

// compare compares n to the A Register. The result of A - n is
// discarded.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero. (Set if A = n.)
//	N - Set.
//	H - Set if no borrow from bit 4.
//	C - Set for no borrow. (Set if A < n.)
func (c *CPU) compare(n uint8) {
	c.subtract(n, false)
}

func (c *CPU) subtract(n uint8, withCarry bool) uint8 {
	var carry int16
	if withCarry && c.F.Carry() {
		carry = 1
	}
	result := int16(c.A) - int16(n) - carry
	halfCarry := int16(c.A&0x0F)-int16(n&0x0F)-carry < 0

	c.F.Set(uint8(result) == 0, true, halfCarry, result < 0)
	return uint8(result)
}

// and performs a bitwise AND operation on n and the A Register.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.F.Set(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.F.Set(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.F.Set(c.A == 0, false, false, false)
}

// increment returns n + 1.
//
//	INC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	result := n + 1
	c.F.Set(result == 0, false, n&0x0F == 0x0F, c.F.Carry())
	return result
}

// decrement returns n - 1.
//
//	DEC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if no borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	result := n - 1
	c.F.Set(result == 0, true, n&0x0F == 0, c.F.Carry())
	return result
}

// addHL adds n to the HL register pair.
//
//	ADD HL, n
//	n = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(n uint16) {
	hl := c.HL()
	result := uint32(hl) + uint32(n)
	c.F.Set(c.F.Zero(), false, hl&0x0FFF+n&0x0FFF > 0x0FFF, result > 0xFFFF)
	c.SetHL(uint16(result))
}

// addSPSigned returns SP plus a signed displacement. It is shared by
// ADD SP, e and LD HL, SP+e, which set the flags from the unsigned
// addition of the low byte.
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(e int8) uint16 {
	n := uint16(uint8(e))
	c.F.Set(false, false, c.SP&0x0F+n&0x0F > 0x0F, c.SP&0xFF+n > 0xFF)
	return uint16(int32(c.SP) + int32(e))
}

// decimalAdjust adjusts the A Register so that it holds the binary
// coded decimal result of the previous addition or subtraction.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if register A is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) decimalAdjust(Instruction) {
	a, carry := c.A, c.F.Carry()
	var adjust uint8
	if !c.F.Subtract() {
		if carry || a > 0x99 {
			adjust |= 0x60
			carry = true
		}
		if c.F.HalfCarry() || a&0x0F > 0x09 {
			adjust |= 0x06
		}
		a += adjust
	} else {
		if carry {
			adjust |= 0x60
		}
		if c.F.HalfCarry() {
			adjust |= 0x06
		}
		a -= adjust
	}

	c.A = a
	c.F.Set(a == 0, c.F.Subtract(), false, carry)
}

// complement flips every bit of the A Register.
//
//	CPL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func (c *CPU) complement(Instruction) {
	c.A = ^c.A
	c.F.Set(c.F.Zero(), true, true, c.F.Carry())
}
