package mmu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gomeboy-core/internal/cartridge"
	"github.com/thelolagemann/gomeboy-core/internal/ppu"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

func newTestMMU(t *testing.T, cartType cartridge.Type) (*MMU, *log.Recorder) {
	rom := make([]byte, 0x10000)
	for i := 0x4000; i < 0x8000; i++ {
		rom[i] = 0x01
	}
	rom[0x147] = uint8(cartType)
	rom[0x149] = 0x02 // 8kB RAM
	rom[0x0000] = 0x3C

	cart, err := cartridge.New(rom)
	require.NoError(t, err)

	l := log.NewRecorder()
	return NewMMU(cart, l), l
}

func TestMMU_Routing(t *testing.T) {
	m, l := newTestMMU(t, cartridge.MBC3RAM)
	m.AttachVideo(ppu.New())

	assert.Equal(t, uint8(0x3C), m.Read(0x0000), "ROM bank 0")
	assert.Equal(t, uint8(0x01), m.Read(0x4000), "ROM bank 1")

	m.Write(0x8000, 0xAA)
	assert.Equal(t, uint8(0xAA), m.Read(0x8000), "VRAM")

	m.Write(0xFE00, 0xBB)
	assert.Equal(t, uint8(0xBB), m.Read(0xFE00), "OAM")

	m.Write(0xC000, 0x12)
	assert.Equal(t, uint8(0x12), m.Read(0xC000), "WRAM")

	m.Write(0xFF42, 0x34)
	assert.Equal(t, uint8(0x34), m.Read(0xFF42), "I/O")

	m.Write(0xFF80, 0x56)
	m.Write(0xFFFE, 0x78)
	assert.Equal(t, uint8(0x56), m.Read(0xFF80), "HRAM")
	assert.Equal(t, uint8(0x78), m.Read(0xFFFE), "HRAM")

	m.Write(0xFFFF, 0x1F)
	assert.Equal(t, uint8(0x1F), m.Read(0xFFFF), "IE")

	assert.Equal(t, 0, l.Len(), "no diagnostics expected: %v", l.Messages)
}

func TestMMU_Echo(t *testing.T) {
	m, _ := newTestMMU(t, cartridge.ROM)

	m.Write(0xC123, 0x42)
	assert.Equal(t, uint8(0x42), m.Read(0xE123))

	m.Write(0xFDFF, 0x24)
	assert.Equal(t, uint8(0x24), m.Read(0xDDFF))
}

func TestMMU_CartridgeRAM(t *testing.T) {
	m, _ := newTestMMU(t, cartridge.MBC3RAM)

	m.Write(0xA000, 0x99)
	assert.Equal(t, uint8(0xFF), m.Read(0xA000), "RAM is disabled after power on")

	m.Write(0x0000, 0x0A)
	m.Write(0xA000, 0x99)
	assert.Equal(t, uint8(0x99), m.Read(0xA000))

	m.Write(0x0000, 0x00)
	assert.Equal(t, uint8(0xFF), m.Read(0xA000))
}

func TestMMU_Unusable(t *testing.T) {
	m, l := newTestMMU(t, cartridge.ROM)

	m.Write(0xFEA0, 0x12)
	assert.Equal(t, uint8(0xFF), m.Read(0xFEA0))
	assert.Equal(t, 0, l.Len())
}

func TestMMU_Unmapped(t *testing.T) {
	m, l := newTestMMU(t, cartridge.ROM)

	// video has not been attached, so VRAM is unmapped
	assert.Equal(t, uint8(0xFF), m.Read(0x8000))
	m.Write(0x9FFF, 0x01)

	require.Equal(t, 2, l.Len())
	assert.Contains(t, l.Messages[0], "0x8000")
	assert.Contains(t, l.Messages[0], "VRAM")
	assert.Contains(t, l.Messages[1], "0x9FFF")
}

func TestMMU_State(t *testing.T) {
	m, _ := newTestMMU(t, cartridge.MBC3RAM)
	m.AttachVideo(ppu.New())
	m.Write(0xC000, 0x01)
	m.Write(0x8000, 0x02)
	m.Write(0xFF80, 0x03)
	m.Write(0xFFFF, 0x04)

	s := types.NewState()
	m.Save(s)

	restored, _ := newTestMMU(t, cartridge.MBC3RAM)
	restored.AttachVideo(ppu.New())
	loaded := types.StateFromBytes(s.Bytes())
	restored.Load(loaded)
	require.NoError(t, loaded.Err())

	assert.Equal(t, uint8(0x01), restored.Read(0xC000))
	assert.Equal(t, uint8(0x02), restored.Read(0x8000))
	assert.Equal(t, uint8(0x03), restored.Read(0xFF80))
	assert.Equal(t, uint8(0x04), restored.Read(0xFFFF))
}
