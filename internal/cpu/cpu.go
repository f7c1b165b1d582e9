package cpu

import (
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/bits"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// Bus is the memory the CPU executes against.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// CPU represents the SM83 core. It is responsible for fetching,
// decoding and executing instructions, one at a time.
type CPU struct {
	// PC is the program counter, it points to the next byte to be fetched.
	PC ProgramCounter
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers and the flags.
	Registers

	// Cycles counts the machine cycles executed since power on.
	Cycles uint64

	// Debug enables the per-instruction trace.
	Debug bool

	// ime is the interrupt master enable latch. Interrupts are never
	// serviced, it is only tracked.
	ime bool

	// cycles spent by the instruction currently executing
	stepCycles uint8

	bus Bus
	Log log.Logger
}

// NewCPU returns a CPU in the state the boot ROM leaves it in. The
// flags depend on whether the cartridge header checksum is nonzero.
func NewCPU(bus Bus, checksumNonZero bool, logger log.Logger) *CPU {
	return &CPU{
		PC:        NewProgramCounter(),
		SP:        0xFFFE,
		Registers: NewRegisters(checksumNonZero),
		bus:       bus,
		Log:       logger,
	}
}

// IME reports the state of the interrupt master enable latch.
func (c *CPU) IME() bool {
	return c.ime
}

// Step executes a single instruction and returns the machine cycles it
// took. Coverage faults panic with *UnknownOpcodeError or
// *UnhandledOperationError.
func (c *CPU) Step() uint8 {
	pc := c.PC.Get()
	opcode := c.fetch()
	in := Decode(opcode)

	if c.Debug {
		c.Log.Debugf("PC: 0x%04X | Opcode: 0x%02X | Instruction: %s", pc, opcode, in.Name)
	}

	c.stepCycles = in.Cycles
	c.execute(in)
	c.Cycles += uint64(c.stepCycles)

	return c.stepCycles
}

func (c *CPU) execute(in Instruction) {
	h := handlers[in.Op]
	if h == nil {
		panic(&UnhandledOperationError{Op: in.Op})
	}
	h(c, in)
}

// fetch reads the byte at PC and advances it.
func (c *CPU) fetch() uint8 {
	return c.bus.Read(c.PC.Next())
}

// fetch16 reads a little-endian word at PC and advances past it.
func (c *CPU) fetch16() uint16 {
	low := c.fetch()
	high := c.fetch()
	return bits.Join(high, low)
}

// branch adds the extra cost of a taken conditional branch.
func (c *CPU) branch(cycles uint8) {
	c.stepCycles += cycles
}

// push pushes a 16 bit value onto the stack.
func (c *CPU) push(value uint16) {
	c.SP -= 2
	c.bus.Write(c.SP, bits.Low(value))
	c.bus.Write(c.SP+1, bits.High(value))
}

// pop pops a 16 bit value off the stack.
func (c *CPU) pop() uint16 {
	low := c.bus.Read(c.SP)
	high := c.bus.Read(c.SP + 1)
	c.SP += 2
	return bits.Join(high, low)
}

var _ types.Stater = (*CPU)(nil)

func (c *CPU) Load(s *types.State) {
	c.PC.Set(s.Read16())
	c.SP = s.Read16()
	c.SetAF(s.Read16())
	c.SetBC(s.Read16())
	c.SetDE(s.Read16())
	c.SetHL(s.Read16())
	c.ime = s.ReadBool()
	c.Cycles = s.Read64()
}

func (c *CPU) Save(s *types.State) {
	s.Write16(c.PC.Get())
	s.Write16(c.SP)
	s.Write16(c.AF())
	s.Write16(c.BC())
	s.Write16(c.DE())
	s.Write16(c.HL())
	s.WriteBool(c.ime)
	s.Write64(c.Cycles)
}
