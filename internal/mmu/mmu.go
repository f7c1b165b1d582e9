// Package mmu provides a memory management unit for the Game Boy. The
// MMU is unaware of the other components, and routes every read and
// write to the single store that owns the address.
package mmu

import (
	"github.com/thelolagemann/gomeboy-core/internal/cartridge"
	"github.com/thelolagemann/gomeboy-core/internal/ram"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// IOBus is the interface that the MMU uses to communicate with the other
// components.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// MMU is the memory management unit for the Game Boy. It handles all
// memory reads and writes to the Game Boy's 64kB of memory, and
// delegates to the other components through the IOBus interface.
type MMU struct {
	// 64kB address space
	raw [0x10000]*types.Address

	// 0x0000 - 0x7FFF - ROM (32kB)
	// 0xA000 - 0xBFFF - External RAM (8kB)
	Cart cartridge.Cartridge

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	// 0xFE00 - 0xFE9F - Sprite Attribute Table (160B)
	Video IOBus

	// 0xC000 - 0xDFFF - Work RAM (8kB)
	// 0xE000 - 0xFDFF - Echo RAM (7.5kB)
	wRAM *WRAM

	// 0xFF00 - 0xFF7F - I/O Registers
	io ram.RAM

	// 0xFF80 - 0xFFFE - Zero Page RAM (127B)
	zRAM ram.RAM

	// 0xFFFF - interrupt enable register
	ie uint8

	Log log.Logger
}

// NewMMU returns a new MMU with every region except video wired.
func NewMMU(cart cartridge.Cartridge, logger log.Logger) *MMU {
	m := &MMU{
		Cart: cart,
		wRAM: NewWRAM(),
		io:   ram.NewRAM(types.IO.Start, uint32(types.IO.Size())),
		zRAM: ram.NewRAM(types.HRAM.Start, uint32(types.HRAM.Size())),
		Log:  logger,
	}

	m.init()

	return m
}

func (m *MMU) init() {
	unmapped := &types.Address{Read: m.readUnmapped, Write: m.writeUnmapped}
	for i := range m.raw {
		m.raw[i] = unmapped
	}

	m.mapRegion(types.ROM, &types.Address{Read: m.Cart.ReadROM, Write: m.Cart.WriteROM})
	m.mapRegion(types.CartRAM, &types.Address{Read: m.Cart.ReadRAM, Write: m.Cart.WriteRAM})
	m.mapRegion(types.WRAM, &types.Address{Read: m.wRAM.Read, Write: m.wRAM.Write})
	m.mapRegion(types.Echo, &types.Address{Read: m.wRAM.Read, Write: m.wRAM.Write})
	m.mapRegion(types.Unusable, &types.Address{
		Read:  func(uint16) uint8 { return 0xFF },
		Write: func(uint16, uint8) {},
	})
	m.mapRegion(types.IO, &types.Address{Read: m.io.Read, Write: m.io.Write})
	m.mapRegion(types.HRAM, &types.Address{Read: m.zRAM.Read, Write: m.zRAM.Write})
	m.mapRegion(types.IE, &types.Address{
		Read:  func(uint16) uint8 { return m.ie },
		Write: func(_ uint16, v uint8) { m.ie = v },
	})
}

// mapRegion points every address of the region at the given delegate.
func (m *MMU) mapRegion(r types.Region, a *types.Address) {
	for i := int(r.Start); i <= int(r.End); i++ {
		m.raw[i] = a
	}
}

// AttachVideo attaches the video component to the MMU.
func (m *MMU) AttachVideo(video IOBus) {
	m.Video = video

	addresses := &types.Address{Read: m.Video.Read, Write: m.Video.Write}
	m.mapRegion(types.VRAM, addresses)
	m.mapRegion(types.OAM, addresses)
}

// readUnmapped handles reads from an address that no component has
// claimed. The access is reported and 0xFF, the value of an undriven
// data bus, is returned.
func (m *MMU) readUnmapped(address uint16) uint8 {
	m.Log.Errorf("read from unmapped address 0x%04X (%s)", address, types.RegionOf(address).Name)
	return 0xFF
}

func (m *MMU) writeUnmapped(address uint16, value uint8) {
	m.Log.Errorf("write 0x%02X to unmapped address 0x%04X (%s)", value, address, types.RegionOf(address).Name)
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address].Read(address)
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	m.raw[address].Write(address, value)
}

var _ types.Stater = (*MMU)(nil)

func (m *MMU) Load(s *types.State) {
	m.Cart.Load(s)
	m.wRAM.Load(s)
	m.io.Load(s)
	m.zRAM.Load(s)
	m.ie = s.Read8()
	if v, ok := m.Video.(types.Stater); ok {
		v.Load(s)
	}
}

func (m *MMU) Save(s *types.State) {
	m.Cart.Save(s)
	m.wRAM.Save(s)
	m.io.Save(s)
	m.zRAM.Save(s)
	s.Write8(m.ie)
	if v, ok := m.Video.(types.Stater); ok {
		v.Save(s)
	}
}
