package cartridge

// ROMCartridge represents a ROM cartridge. This cartridge type is the simplest
// cartridge type and has no MBC. Up to 32kB of ROM is mapped directly, and
// the ROM+RAM variants expose 8kB of RAM that is always enabled.
type ROMCartridge struct {
	bankedMemory
}

// NewROMCartridge returns a new ROM cartridge.
func NewROMCartridge(rom []byte, header *Header) *ROMCartridge {
	c := &ROMCartridge{bankedMemory: newBankedMemory(rom, header)}
	c.ram = nil
	return c
}

// WriteROM does nothing, as there are no registers to write to.
func (r *ROMCartridge) WriteROM(address uint16, value uint8) {}
