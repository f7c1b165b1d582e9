package cpu

import "github.com/thelolagemann/gomeboy-core/pkg/bits"

// Flag is the bit index of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flags holds the four condition flags of the F register. The lower
// nibble of F does not exist in hardware and always reads as zero.
type Flags struct {
	zero      bool
	subtract  bool
	halfCarry bool
	carry     bool
}

// NewFlags returns the flags left behind by the boot ROM. A cartridge
// with a nonzero header checksum leaves H and C set, otherwise every
// flag is cleared.
func NewFlags(checksumNonZero bool) Flags {
	if checksumNonZero {
		return Flags{halfCarry: true, carry: true}
	}
	return Flags{}
}

// FlagsFromByte unpacks a value written to the F register. Bits 3-0
// are discarded.
func FlagsFromByte(b uint8) Flags {
	return Flags{
		zero:      bits.Test(b, FlagZero),
		subtract:  bits.Test(b, FlagSubtract),
		halfCarry: bits.Test(b, FlagHalfCarry),
		carry:     bits.Test(b, FlagCarry),
	}
}

// Set overwrites all four flags at once.
func (f *Flags) Set(zero, subtract, halfCarry, carry bool) {
	f.zero = zero
	f.subtract = subtract
	f.halfCarry = halfCarry
	f.carry = carry
}

func (f Flags) Zero() bool      { return f.zero }
func (f Flags) Subtract() bool  { return f.subtract }
func (f Flags) HalfCarry() bool { return f.halfCarry }
func (f Flags) Carry() bool     { return f.carry }

// Byte packs the flags as Z N H C in bits 7-4.
func (f Flags) Byte() uint8 {
	var b uint8
	b = bits.Assign(b, FlagZero, f.zero)
	b = bits.Assign(b, FlagSubtract, f.subtract)
	b = bits.Assign(b, FlagHalfCarry, f.halfCarry)
	b = bits.Assign(b, FlagCarry, f.carry)
	return b
}

func (f Flags) String() string {
	s := []byte("----")
	for i, set := range [4]bool{f.zero, f.subtract, f.halfCarry, f.carry} {
		if set {
			s[i] = "ZNHC"[i]
		}
	}
	return string(s)
}

// Condition is the flag test encoded in bits 4-3 of a conditional
// jump, call or return.
type Condition uint8

const (
	CondNZ Condition = iota
	CondZ
	CondNC
	CondC
)

// Check reports whether the condition holds for the given flags.
func (cc Condition) Check(f Flags) bool {
	switch cc {
	case CondNZ:
		return !f.zero
	case CondZ:
		return f.zero
	case CondNC:
		return !f.carry
	default:
		return f.carry
	}
}

func (cc Condition) String() string {
	return [...]string{"NZ", "Z", "NC", "C"}[cc&3]
}
