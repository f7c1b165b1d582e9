// Package ppu provides the video unit's memory. Rendering is not
// emulated; the unit only stores the video RAM and the sprite
// attribute table so that programs writing tile data behave as
// they would on hardware.
package ppu

import (
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

const (
	// VRAMSize is the size of the DMG video RAM.
	VRAMSize = 0x2000
	// OAMSize is the size of the sprite attribute table, 40 sprites
	// of 4 bytes each.
	OAMSize = 0xA0
)

// PPU is the video unit's memory store.
type PPU struct {
	vRAM [VRAMSize]uint8
	oam  [OAMSize]uint8
}

// New returns a PPU with cleared memory.
func New() *PPU {
	return &PPU{}
}

// Read returns the byte at the given address in either VRAM
// (0x8000 - 0x9FFF) or OAM (0xFE00 - 0xFE9F).
func (p *PPU) Read(address uint16) uint8 {
	if types.OAM.Contains(address) {
		return p.oam[address-types.OAM.Start]
	}
	return p.vRAM[address-types.VRAM.Start]
}

// Write writes the value to the given address in either VRAM or OAM.
func (p *PPU) Write(address uint16, value uint8) {
	if types.OAM.Contains(address) {
		p.oam[address-types.OAM.Start] = value
		return
	}
	p.vRAM[address-types.VRAM.Start] = value
}

// Sprite returns the 4 attribute bytes (Y, X, tile, flags) of the
// sprite at the given index (0 - 39).
func (p *PPU) Sprite(index int) [4]uint8 {
	var s [4]uint8
	copy(s[:], p.oam[index*4:])
	return s
}

func (p *PPU) Load(s *types.State) {
	s.ReadData(p.vRAM[:])
	s.ReadData(p.oam[:])
}

func (p *PPU) Save(s *types.State) {
	s.WriteData(p.vRAM[:])
	s.WriteData(p.oam[:])
}
