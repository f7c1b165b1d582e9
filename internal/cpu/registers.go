package cpu

import "github.com/thelolagemann/gomeboy-core/pkg/bits"

// Reg8 selects one of the 8-bit registers.
type Reg8 uint8

const (
	RegA Reg8 = iota
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
)

func (r Reg8) String() string {
	return [...]string{"A", "B", "C", "D", "E", "H", "L"}[r]
}

// Reg16 selects one of the 16-bit register pairs. It is a distinct
// type from Reg8 so that a pair can not be used where a single
// register is expected.
type Reg16 uint8

const (
	RegAF Reg16 = iota
	RegBC
	RegDE
	RegHL
)

func (r Reg16) String() string {
	return [...]string{"AF", "BC", "DE", "HL"}[r]
}

// Registers is the SM83 register file. The 16-bit pairs are views
// over the 8-bit registers and have no storage of their own.
type Registers struct {
	A uint8
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8
	F Flags
}

// NewRegisters returns the register file as the DMG boot ROM leaves it.
func NewRegisters(checksumNonZero bool) Registers {
	return Registers{
		A: 0x01,
		B: 0x00,
		C: 0x13,
		D: 0x00,
		E: 0xD8,
		H: 0x01,
		L: 0x4D,
		F: NewFlags(checksumNonZero),
	}
}

func (r *Registers) pointer(reg Reg8) *uint8 {
	switch reg {
	case RegA:
		return &r.A
	case RegB:
		return &r.B
	case RegC:
		return &r.C
	case RegD:
		return &r.D
	case RegE:
		return &r.E
	case RegH:
		return &r.H
	case RegL:
		return &r.L
	}
	panic("cpu: invalid register")
}

// Get returns the value of an 8-bit register.
func (r *Registers) Get(reg Reg8) uint8 {
	return *r.pointer(reg)
}

// Set stores a value in an 8-bit register.
func (r *Registers) Set(reg Reg8, value uint8) {
	*r.pointer(reg) = value
}

// Pair returns the value of a register pair.
func (r *Registers) Pair(pair Reg16) uint16 {
	switch pair {
	case RegAF:
		return r.AF()
	case RegBC:
		return r.BC()
	case RegDE:
		return r.DE()
	case RegHL:
		return r.HL()
	}
	panic("cpu: invalid register pair")
}

// SetPair writes both halves of a register pair.
func (r *Registers) SetPair(pair Reg16, value uint16) {
	switch pair {
	case RegAF:
		r.SetAF(value)
	case RegBC:
		r.SetBC(value)
	case RegDE:
		r.SetDE(value)
	case RegHL:
		r.SetHL(value)
	default:
		panic("cpu: invalid register pair")
	}
}

func (r *Registers) AF() uint16 { return bits.Join(r.A, r.F.Byte()) }
func (r *Registers) BC() uint16 { return bits.Join(r.B, r.C) }
func (r *Registers) DE() uint16 { return bits.Join(r.D, r.E) }
func (r *Registers) HL() uint16 { return bits.Join(r.H, r.L) }

// SetAF writes A and F. The low nibble of F is discarded.
func (r *Registers) SetAF(value uint16) {
	r.A, r.F = bits.High(value), FlagsFromByte(bits.Low(value))
}

func (r *Registers) SetBC(value uint16) { r.B, r.C = bits.High(value), bits.Low(value) }
func (r *Registers) SetDE(value uint16) { r.D, r.E = bits.High(value), bits.Low(value) }
func (r *Registers) SetHL(value uint16) { r.H, r.L = bits.High(value), bits.Low(value) }
