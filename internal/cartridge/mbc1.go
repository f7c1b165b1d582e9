package cartridge

import "github.com/thelolagemann/gomeboy-core/internal/types"

// MemoryBankedCartridge1 represents a MBC1 cartridge. It supports up to
// 2MB of ROM through a 5-bit bank register extended by a 2-bit secondary
// register, which can alternatively select one of 4 RAM banks.
type MemoryBankedCartridge1 struct {
	bankedMemory

	lower uint8 // 5-bit ROM bank register
	upper uint8 // 2-bit secondary bank register

	// advanced banking mode, the secondary register applies to the
	// fixed ROM bank and to RAM.
	advanced bool
}

// NewMemoryBankedCartridge1 returns a new MemoryBankedCartridge1 cartridge.
func NewMemoryBankedCartridge1(rom []byte, header *Header) *MemoryBankedCartridge1 {
	return &MemoryBankedCartridge1{
		bankedMemory: newBankedMemory(rom, header),
		lower:        1,
	}
}

func (m *MemoryBankedCartridge1) ReadROM(address uint16) uint8 {
	if address < romWindow {
		if m.advanced {
			return m.readROMBank(int(m.upper)<<5, address)
		}
		return m.rom[address]
	}
	return m.bankedMemory.ReadROM(address)
}

func (m *MemoryBankedCartridge1) WriteROM(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.enableRAM(value)
	case address < 0x4000:
		// ROM bank number (lower 5 bits), 0 is treated as 1
		m.lower = value & 0x1F
		if m.lower == 0 {
			m.lower = 1
		}
	case address < 0x6000:
		m.upper = value & 0x03
	default:
		m.advanced = value&0x01 == 0x01
	}

	m.romBank = uint16(m.upper)<<5 | uint16(m.lower)
	m.ramBank = 0
	if m.advanced {
		m.ramBank = m.upper
	}
}

func (m *MemoryBankedCartridge1) Load(s *types.State) {
	m.bankedMemory.Load(s)
	m.lower = s.Read8()
	m.upper = s.Read8()
	m.advanced = s.ReadBool()
}

func (m *MemoryBankedCartridge1) Save(s *types.State) {
	m.bankedMemory.Save(s)
	s.Write8(m.lower)
	s.Write8(m.upper)
	s.WriteBool(m.advanced)
}
