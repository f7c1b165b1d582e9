package mmu

import "github.com/thelolagemann/gomeboy-core/internal/types"

// WRAM is the 8kB of work RAM at 0xC000 - 0xDFFF, which is also
// visible through the echo region at 0xE000 - 0xFDFF.
type WRAM struct {
	raw [0x2000]uint8
}

func NewWRAM() *WRAM {
	return &WRAM{}
}

// offset maps both the work RAM and its echo onto the backing array.
func (w *WRAM) offset(addr uint16) uint16 {
	if addr >= types.Echo.Start {
		return addr - types.Echo.Start
	}
	return addr - types.WRAM.Start
}

func (w *WRAM) Read(addr uint16) uint8 {
	return w.raw[w.offset(addr)]
}

func (w *WRAM) Write(addr uint16, v uint8) {
	w.raw[w.offset(addr)] = v
}

func (w *WRAM) Load(s *types.State) {
	s.ReadData(w.raw[:])
}

func (w *WRAM) Save(s *types.State) {
	s.WriteData(w.raw[:])
}
