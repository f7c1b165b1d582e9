package cartridge

// MemoryBankedCartridge5 represents a MBC5 cartridge. It supports up to
// 8MB of ROM through a 9-bit bank number, and 128kB of RAM in 16 banks.
// Unlike the earlier controllers, bank 0 can be mapped into the
// switchable ROM window.
type MemoryBankedCartridge5 struct {
	bankedMemory
}

// NewMemoryBankedCartridge5 returns a new MemoryBankedCartridge5 cartridge.
func NewMemoryBankedCartridge5(rom []byte, header *Header) *MemoryBankedCartridge5 {
	return &MemoryBankedCartridge5{
		bankedMemory: newBankedMemory(rom, header),
	}
}

func (m *MemoryBankedCartridge5) WriteROM(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.enableRAM(value)
	case address < 0x3000:
		m.romBank = m.romBank&0x100 | uint16(value)
	case address < 0x4000:
		m.romBank = m.romBank&0xFF | uint16(value&0x01)<<8
	case address < 0x6000:
		m.ramBank = value & 0x0F
	}
}
