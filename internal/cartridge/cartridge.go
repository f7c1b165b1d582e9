// Package cartridge provides the cartridge bank controllers for the DMG.
// The cartridge holds the game ROM and any external RAM, and maps them
// into the CPU's address space through a bank controller.
package cartridge

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

const (
	// MinimumROMSize is the smallest image that still contains the
	// header checksum at 0x014D.
	MinimumROMSize = 0x014E

	romBankSize = 0x4000
	ramBankSize = 0x2000

	romWindow = 0x4000 // start of the switchable ROM bank
	ramWindow = 0xA000 // start of the external RAM window
)

var (
	// ErrROMTooShort is returned when the ROM image cannot hold a header.
	ErrROMTooShort = errors.New("rom image too short")
	// ErrUnsupportedType is returned for cartridge types without a
	// bank controller implementation.
	ErrUnsupportedType = errors.New("unsupported cartridge type")
)

// BankController is the capability set the memory bus depends on. Every
// controller variant maps the 0x0000-0x7FFF ROM window and the
// 0xA000-0xBFFF RAM window through these four operations.
type BankController interface {
	// ReadROM returns the byte at the given address of the ROM window.
	ReadROM(address uint16) uint8
	// WriteROM handles a write to the ROM window. ROM is read-only, so
	// writes only ever reach the controller's registers.
	WriteROM(address uint16, value uint8)
	// ReadRAM returns the byte at the given address of the RAM window,
	// or 0xFF when RAM is disabled or absent.
	ReadRAM(address uint16) uint8
	// WriteRAM writes to the RAM window. Writes are ignored when RAM is
	// disabled or absent.
	WriteRAM(address uint16, value uint8)
}

// Cartridge represents a game cartridge.
type Cartridge interface {
	BankController
	types.Stater

	Header() *Header
}

// New parses the header of the given ROM and returns the cartridge
// for its bank controller type.
func New(rom []byte) (Cartridge, error) {
	if len(rom) < MinimumROMSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrROMTooShort, len(rom), MinimumROMSize)
	}

	header := parseHeader(padHeader(rom))
	header.Fingerprint = xxhash.Sum64(rom)

	rom = padROM(rom)

	switch header.CartridgeType {
	case ROM:
		return NewROMCartridge(rom, header), nil
	case ROMRAM, ROMRAMBATT:
		c := NewROMCartridge(rom, header)
		c.ram = make([]byte, ramBankSize)
		c.ramEnabled = true
		return c, nil
	case MBC1, MBC1RAM, MBC1RAMBATT:
		return NewMemoryBankedCartridge1(rom, header), nil
	case MBC3, MBC3RAM, MBC3RAMBATT:
		return NewMemoryBankedCartridge3(rom, header), nil
	case MBC5, MBC5RAM, MBC5RAMBATT, MBC5RUMBLE, MBC5RUMBLERAM, MBC5RUMBLERAMBATT:
		return NewMemoryBankedCartridge5(rom, header), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, header.CartridgeType)
}

// padHeader returns the 0x50 byte header region, zero-filling the
// bytes after the checksum when the image ends early.
func padHeader(rom []byte) []byte {
	header := make([]byte, 0x50)
	copy(header, rom[0x100:])
	return header
}

// padROM extends the image to a whole number of 16KB banks, with at
// least two banks so the full ROM window is backed.
func padROM(rom []byte) []byte {
	size := len(rom)
	if size < 2*romBankSize {
		size = 2 * romBankSize
	}
	if size%romBankSize != 0 {
		size += romBankSize - size%romBankSize
	}
	if size == len(rom) {
		return rom
	}
	padded := make([]byte, size)
	copy(padded, rom)
	return padded
}
