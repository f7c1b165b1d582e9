package cartridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

// newTestROM returns an image of the given number of 16kB banks, where
// every byte of a switchable bank holds the bank number.
func newTestROM(t Type, banks int, ramSize uint8) []byte {
	rom := make([]byte, banks*romBankSize)
	for bank := 1; bank < banks; bank++ {
		for i := 0; i < romBankSize; i++ {
			rom[bank*romBankSize+i] = uint8(bank)
		}
	}
	copy(rom[0x134:], "TESTCART")
	rom[0x147] = uint8(t)
	rom[0x149] = ramSize

	var x uint8
	for _, b := range rom[0x134:0x14D] {
		x = x - b - 1
	}
	rom[0x14D] = x
	return rom
}

func TestNew(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		_, err := New(make([]byte, 0x14D))
		assert.ErrorIs(t, err, ErrROMTooShort)
	})
	t.Run("minimum size", func(t *testing.T) {
		c, err := New(make([]byte, MinimumROMSize))
		require.NoError(t, err)
		assert.IsType(t, &ROMCartridge{}, c)
		// the image is padded so the whole ROM window is backed
		assert.Equal(t, uint8(0x00), c.ReadROM(0x7FFF))
	})
	t.Run("unsupported", func(t *testing.T) {
		_, err := New(newTestROM(HUDSONHUC1, 2, 0))
		assert.ErrorIs(t, err, ErrUnsupportedType)
		assert.Contains(t, err.Error(), "HuC1")
	})
	t.Run("variants", func(t *testing.T) {
		for typ, want := range map[Type]Cartridge{
			ROM:         &ROMCartridge{},
			ROMRAM:      &ROMCartridge{},
			MBC1RAMBATT: &MemoryBankedCartridge1{},
			MBC3RAM:     &MemoryBankedCartridge3{},
			MBC5:        &MemoryBankedCartridge5{},
		} {
			c, err := New(newTestROM(typ, 4, 0x02))
			require.NoError(t, err, typ.String())
			assert.IsType(t, want, c, typ.String())
		}
	})
}

func TestHeader(t *testing.T) {
	rom := newTestROM(MBC3RAMBATT, 4, 0x03)
	c, err := New(rom)
	require.NoError(t, err)

	h := c.Header()
	assert.Equal(t, "TESTCART", h.Title)
	assert.Equal(t, MBC3RAMBATT, h.CartridgeType)
	assert.Equal(t, uint(32*1024), h.RAMSize)
	assert.Equal(t, "DMG", h.Hardware())
	assert.True(t, h.ValidChecksum())
	assert.NotZero(t, h.Fingerprint)

	rom[0x134] = 'X'
	c, err = New(rom)
	require.NoError(t, err)
	assert.False(t, c.Header().ValidChecksum())
	assert.NotEqual(t, h.Fingerprint, c.Header().Fingerprint)
}

func TestMemoryBankedCartridge3(t *testing.T) {
	newMBC3 := func(t *testing.T) Cartridge {
		c, err := New(newTestROM(MBC3RAMBATT, 8, 0x03))
		require.NoError(t, err)
		return c
	}

	t.Run("bank 0 is fixed", func(t *testing.T) {
		c := newMBC3(t)
		c.WriteROM(0x2000, 0x05)
		assert.Equal(t, uint8(0x00), c.ReadROM(0x0000))
		assert.Equal(t, uint8(0x05), c.ReadROM(0x4000))
		assert.Equal(t, uint8(0x05), c.ReadROM(0x7FFF))
	})
	t.Run("bank 0 aliases bank 1", func(t *testing.T) {
		c := newMBC3(t)
		c.WriteROM(0x2000, 0x01)
		want := c.ReadROM(0x4123)

		c.WriteROM(0x2000, 0x03)
		c.WriteROM(0x3FFF, 0x00)
		assert.Equal(t, want, c.ReadROM(0x4123))
		assert.Equal(t, uint8(0x01), c.ReadROM(0x4123))
	})
	t.Run("bank beyond image wraps", func(t *testing.T) {
		c := newMBC3(t)
		c.WriteROM(0x2000, 0x0B) // 11 % 8
		assert.Equal(t, uint8(0x03), c.ReadROM(0x4000))
	})
	t.Run("ram disabled by default", func(t *testing.T) {
		c := newMBC3(t)
		c.WriteRAM(0xA000, 0x42)
		assert.Equal(t, uint8(0xFF), c.ReadRAM(0xA000))
	})
	t.Run("ram enable requires 0xA low nibble", func(t *testing.T) {
		c := newMBC3(t)
		c.WriteROM(0x0000, 0x0A)
		c.WriteRAM(0xA000, 0x42)
		assert.Equal(t, uint8(0x42), c.ReadRAM(0xA000))

		c.WriteROM(0x1FFF, 0x0B)
		assert.Equal(t, uint8(0xFF), c.ReadRAM(0xA000))

		c.WriteROM(0x0000, 0xFA)
		assert.Equal(t, uint8(0x42), c.ReadRAM(0xA000))
	})
	t.Run("ram banks", func(t *testing.T) {
		c := newMBC3(t)
		c.WriteROM(0x0000, 0x0A)
		for bank := uint8(0); bank < 4; bank++ {
			c.WriteROM(0x4000, bank)
			c.WriteRAM(0xBFFF, 0x10+bank)
		}
		for bank := uint8(0); bank < 4; bank++ {
			c.WriteROM(0x4000, bank|0x04) // masked to 0 - 3
			assert.Equal(t, 0x10+bank, c.ReadRAM(0xBFFF))
		}
	})
	t.Run("state", func(t *testing.T) {
		c := newMBC3(t)
		c.WriteROM(0x0000, 0x0A)
		c.WriteROM(0x2000, 0x06)
		c.WriteRAM(0xA010, 0x99)

		s := types.NewState()
		c.Save(s)

		restored := newMBC3(t)
		restored.Load(types.StateFromBytes(s.Bytes()))
		assert.Equal(t, uint8(0x06), restored.ReadROM(0x4000))
		assert.Equal(t, uint8(0x99), restored.ReadRAM(0xA010))
	})
}

func TestMemoryBankedCartridge1(t *testing.T) {
	c, err := New(newTestROM(MBC1RAM, 64, 0x03))
	require.NoError(t, err)

	c.WriteROM(0x2000, 0x00)
	assert.Equal(t, uint8(0x01), c.ReadROM(0x4000), "bank 0 should select bank 1")

	c.WriteROM(0x2000, 0x1F)
	c.WriteROM(0x4000, 0x01)
	assert.Equal(t, uint8(0x3F), c.ReadROM(0x4000), "upper bits extend the bank number")

	// bank 0x20 can't be selected directly, 0x21 is mapped instead
	c.WriteROM(0x2000, 0x00)
	assert.Equal(t, uint8(0x21), c.ReadROM(0x4000))

	// advanced mode maps the upper bits onto the fixed bank and RAM
	assert.Equal(t, uint8(0x00), c.ReadROM(0x0150))
	c.WriteROM(0x6000, 0x01)
	assert.Equal(t, uint8(0x20), c.ReadROM(0x0150))

	c.WriteROM(0x0000, 0x0A)
	c.WriteRAM(0xA000, 0x11)
	c.WriteROM(0x4000, 0x02)
	assert.Equal(t, uint8(0x00), c.ReadRAM(0xA000))
	c.WriteROM(0x4000, 0x01)
	assert.Equal(t, uint8(0x11), c.ReadRAM(0xA000))
}

func TestMemoryBankedCartridge5(t *testing.T) {
	c, err := New(newTestROM(MBC5RAM, 8, 0x02))
	require.NoError(t, err)

	c.WriteROM(0x2000, 0x00)
	assert.Equal(t, uint8(0x00), c.ReadROM(0x4000), "MBC5 can map bank 0")

	c.WriteROM(0x2000, 0x07)
	assert.Equal(t, uint8(0x07), c.ReadROM(0x4000))

	c.WriteRAM(0xA000, 0x55)
	assert.Equal(t, uint8(0xFF), c.ReadRAM(0xA000))
	c.WriteROM(0x0000, 0x0A)
	c.WriteRAM(0xA000, 0x55)
	assert.Equal(t, uint8(0x55), c.ReadRAM(0xA000))
}

func TestROMCartridge(t *testing.T) {
	c, err := New(newTestROM(ROM, 2, 0))
	require.NoError(t, err)

	c.WriteROM(0x2000, 0x05)
	assert.Equal(t, uint8(0x01), c.ReadROM(0x4000), "ROM writes must not switch banks")

	c.WriteRAM(0xA000, 0x12)
	assert.Equal(t, uint8(0xFF), c.ReadRAM(0xA000), "no RAM is present")

	c, err = New(newTestROM(ROMRAM, 2, 0))
	require.NoError(t, err)
	c.WriteRAM(0xA000, 0x12)
	assert.Equal(t, uint8(0x12), c.ReadRAM(0xA000))
}
