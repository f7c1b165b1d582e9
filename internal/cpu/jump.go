package cpu

// jumpAbsolute jumps to the address given by the next two bytes.
//
//	JP nn
//	nn = 16-bit immediate value, LS byte first
func (c *CPU) jumpAbsolute(Instruction) {
	c.PC.Set(c.fetch16())
}

// jumpAbsoluteConditional jumps to nn if the condition holds.
//
//	JP cc, nn
//	cc = NZ, Z, NC, C
func (c *CPU) jumpAbsoluteConditional(in Instruction) {
	address := c.fetch16()
	if in.Cond.Check(c.F) {
		c.PC.Set(address)
		c.branch(1)
	}
}

// jumpRelative adds a signed displacement to the address of the next
// instruction.
//
//	JR e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(Instruction) {
	offset := int8(c.fetch())
	c.PC.RelativeJump(offset)
}

// jumpRelativeConditional jumps by e if the condition holds.
//
//	JR cc, e
//	cc = NZ, Z, NC, C
func (c *CPU) jumpRelativeConditional(in Instruction) {
	offset := int8(c.fetch())
	if in.Cond.Check(c.F) {
		c.PC.RelativeJump(offset)
		c.branch(1)
	}
}

// call pushes the address of the next instruction onto the stack and
// jumps to nn.
//
//	CALL nn
func (c *CPU) call(Instruction) {
	address := c.fetch16()
	c.push(c.PC.Get())
	c.PC.Set(address)
}

// callConditional calls nn if the condition holds.
//
//	CALL cc, nn
//	cc = NZ, Z, NC, C
func (c *CPU) callConditional(in Instruction) {
	address := c.fetch16()
	if in.Cond.Check(c.F) {
		c.push(c.PC.Get())
		c.PC.Set(address)
		c.branch(3)
	}
}

// ret pops an address off the stack and jumps to it.
//
//	RET
func (c *CPU) ret(Instruction) {
	c.PC.Set(c.pop())
}

// retConditional returns if the condition holds.
//
//	RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) retConditional(in Instruction) {
	if in.Cond.Check(c.F) {
		c.PC.Set(c.pop())
		c.branch(3)
	}
}

// retInterrupt returns and enables interrupts.
//
//	RETI
func (c *CPU) retInterrupt(in Instruction) {
	c.ime = true
	c.ret(in)
}

// restart pushes the address of the next instruction onto the stack
// and jumps to one of the fixed vectors in page zero.
//
//	RST n
//	n = 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38
func (c *CPU) restart(in Instruction) {
	c.push(c.PC.Get())
	c.PC.Set(in.Vector)
}
