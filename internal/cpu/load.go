package cpu

import "github.com/thelolagemann/gomeboy-core/pkg/bits"

// loadIncrementHLA stores A at (HL), then increments HL.
//
//	LD (HL+), A
func (c *CPU) loadIncrementHLA(Instruction) {
	hl := c.HL()
	c.bus.Write(hl, c.A)
	c.SetHL(hl + 1)
}

// loadDecrementHLA stores A at (HL), then decrements HL.
//
//	LD (HL-), A
func (c *CPU) loadDecrementHLA(Instruction) {
	hl := c.HL()
	c.bus.Write(hl, c.A)
	c.SetHL(hl - 1)
}

// loadAIncrementHL loads A from (HL), then increments HL.
//
//	LD A, (HL+)
func (c *CPU) loadAIncrementHL(Instruction) {
	hl := c.HL()
	c.A = c.bus.Read(hl)
	c.SetHL(hl + 1)
}

// loadADecrementHL loads A from (HL), then decrements HL.
//
//	LD A, (HL-)
func (c *CPU) loadADecrementHL(Instruction) {
	hl := c.HL()
	c.A = c.bus.Read(hl)
	c.SetHL(hl - 1)
}

// loadAbsoluteSP stores SP at nn, LS byte first.
//
//	LD (nn), SP
func (c *CPU) loadAbsoluteSP(Instruction) {
	address := c.fetch16()
	c.bus.Write(address, bits.Low(c.SP))
	c.bus.Write(address+1, bits.High(c.SP))
}
