package cpu

import "github.com/thelolagemann/gomeboy-core/internal/types"

// ProgramCounter points at the next byte to be fetched. All arithmetic
// on it wraps at 16 bits.
type ProgramCounter struct {
	value uint16
}

// NewProgramCounter returns a counter pointing at the cartridge entry
// point, where execution resumes once the boot ROM has finished.
func NewProgramCounter() ProgramCounter {
	return ProgramCounter{value: types.BootROMEnd}
}

func (p *ProgramCounter) Get() uint16 {
	return p.value
}

func (p *ProgramCounter) Set(address uint16) {
	p.value = address
}

// Next returns the current address and advances the counter by one.
func (p *ProgramCounter) Next() uint16 {
	address := p.value
	p.value++
	return address
}

// RelativeJump adds a signed displacement to the counter.
func (p *ProgramCounter) RelativeJump(offset int8) {
	p.value = uint16(int32(p.value) + int32(offset))
}
