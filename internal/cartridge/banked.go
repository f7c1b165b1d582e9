package cartridge

import "github.com/thelolagemann/gomeboy-core/internal/types"

// bankedMemory holds the state shared by every bank controller: the
// ROM and RAM images, the selected banks and the RAM enable latch.
type bankedMemory struct {
	rom []byte
	ram []byte

	romBank uint16
	ramBank uint8

	ramEnabled bool

	header *Header
}

func newBankedMemory(rom []byte, header *Header) bankedMemory {
	return bankedMemory{
		rom:     rom,
		ram:     make([]byte, header.RAMSize),
		romBank: 1,
		header:  header,
	}
}

func (m *bankedMemory) Header() *Header {
	return m.header
}

// romBanks returns the number of 16KB banks present in the image.
func (m *bankedMemory) romBanks() int {
	return len(m.rom) / romBankSize
}

// readROMBank reads offset from the given ROM bank. Banks beyond the
// end of the image wrap, as the upper bank lines are not connected.
func (m *bankedMemory) readROMBank(bank int, offset uint16) uint8 {
	bank %= m.romBanks()
	return m.rom[bank*romBankSize+int(offset)]
}

// ReadROM maps bank 0 verbatim into 0x0000-0x3FFF and the selected
// bank into 0x4000-0x7FFF.
func (m *bankedMemory) ReadROM(address uint16) uint8 {
	if address < romWindow {
		return m.rom[address]
	}
	return m.readROMBank(int(m.romBank), address-romWindow)
}

// ramOffset returns the index into ram for the given address, or -1
// when RAM cannot be accessed.
func (m *bankedMemory) ramOffset(address uint16, bank uint8) int {
	if !m.ramEnabled || len(m.ram) == 0 {
		return -1
	}
	offset := int(bank)*ramBankSize + int(address-ramWindow)
	return offset % len(m.ram)
}

func (m *bankedMemory) ReadRAM(address uint16) uint8 {
	if i := m.ramOffset(address, m.ramBank); i >= 0 {
		return m.ram[i]
	}
	return 0xFF
}

func (m *bankedMemory) WriteRAM(address uint16, value uint8) {
	if i := m.ramOffset(address, m.ramBank); i >= 0 {
		m.ram[i] = value
	}
}

// enableRAM latches the RAM enable register. Any value with 0xA in
// the lower nibble enables RAM, everything else disables it.
func (m *bankedMemory) enableRAM(value uint8) {
	m.ramEnabled = value&0x0F == 0x0A
}

func (m *bankedMemory) Load(s *types.State) {
	m.romBank = s.Read16()
	m.ramBank = s.Read8()
	m.ramEnabled = s.ReadBool()
	s.ReadData(m.ram)
}

func (m *bankedMemory) Save(s *types.State) {
	s.Write16(m.romBank)
	s.Write8(m.ramBank)
	s.WriteBool(m.ramEnabled)
	s.WriteData(m.ram)
}
