package cartridge

// MemoryBankedCartridge3 represents a MBC3 cartridge. It supports up to
// 2MB of ROM in 128 banks and 32kB of RAM in 4 banks. The real time
// clock of the timer variants is not emulated.
type MemoryBankedCartridge3 struct {
	bankedMemory
}

// NewMemoryBankedCartridge3 returns a new MemoryBankedCartridge3 cartridge.
func NewMemoryBankedCartridge3(rom []byte, header *Header) *MemoryBankedCartridge3 {
	return &MemoryBankedCartridge3{
		bankedMemory: newBankedMemory(rom, header),
	}
}

// WriteROM writes to one of the controller registers, selected by the
// upper bits of the address.
//
//	0x0000 - 0x1FFF  RAM enable
//	0x2000 - 0x3FFF  ROM bank number (7 bits, 0 selects bank 1)
//	0x4000 - 0x5FFF  RAM bank number (0 - 3)
//	0x6000 - 0x7FFF  clock latch (ignored)
func (m *MemoryBankedCartridge3) WriteROM(address uint16, value uint8) {
	switch (address & 0xF000) >> 12 {
	case 0x0, 0x1:
		m.enableRAM(value)
	case 0x2, 0x3:
		bank := value & 0x7F
		if bank == 0 {
			bank = 1
		}
		m.romBank = uint16(bank)
	case 0x4, 0x5:
		m.ramBank = value & 0x03
	}
}
