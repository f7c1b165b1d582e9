package types

// Address represents a memory address in the Game Boy's memory,
// which can be read from or written to. The MMU holds one Address
// per location in the 16-bit address space, so routing an access
// is a single table lookup.
type Address struct {
	// Read is a function that is called when the CPU reads from
	// the address.
	Read func(address uint16) uint8
	// Write is a function that is called when the CPU writes to
	// the address.
	Write func(address uint16, value uint8)
}

// Region is an inclusive range of the address space that is owned
// by exactly one backing store.
type Region struct {
	Name  string
	Start uint16
	End   uint16
}

// Contains reports whether the address falls within the region.
func (r Region) Contains(address uint16) bool {
	return address >= r.Start && address <= r.End
}

// Size returns the number of addresses covered by the region.
func (r Region) Size() int {
	return int(r.End) - int(r.Start) + 1
}

// The memory map of the DMG. Regions are non-overlapping and together
// they cover 0x0000 - 0xFFFF.
//
//	0000-3FFF   16KB ROM Bank 00     (in cartridge, fixed at bank 00)
//	4000-7FFF   16KB ROM Bank 01..NN (in cartridge, switchable bank number)
//	8000-9FFF   8KB Video RAM (VRAM)
//	A000-BFFF   8KB External RAM     (in cartridge, switchable bank, if any)
//	C000-DFFF   8KB Work RAM (WRAM)
//	E000-FDFF   Same as C000-DDFF (ECHO)
//	FE00-FE9F   Sprite Attribute Table (OAM)
//	FEA0-FEFF   Not Usable
//	FF00-FF7F   I/O Ports
//	FF80-FFFE   High RAM (HRAM)
//	FFFF        Interrupt Enable Register
var (
	ROM      = Region{"ROM", 0x0000, 0x7FFF}
	VRAM     = Region{"VRAM", 0x8000, 0x9FFF}
	CartRAM  = Region{"Cartridge RAM", 0xA000, 0xBFFF}
	WRAM     = Region{"WRAM", 0xC000, 0xDFFF}
	Echo     = Region{"Echo RAM", 0xE000, 0xFDFF}
	OAM      = Region{"OAM", 0xFE00, 0xFE9F}
	Unusable = Region{"Unusable", 0xFEA0, 0xFEFF}
	IO       = Region{"I/O", 0xFF00, 0xFF7F}
	HRAM     = Region{"HRAM", 0xFF80, 0xFFFE}
	IE       = Region{"Interrupt Enable", 0xFFFF, 0xFFFF}
)

// MemoryMap lists every region in ascending address order.
var MemoryMap = [...]Region{ROM, VRAM, CartRAM, WRAM, Echo, OAM, Unusable, IO, HRAM, IE}

// RegionOf returns the region that owns the given address.
func RegionOf(address uint16) Region {
	for _, r := range MemoryMap {
		if r.Contains(address) {
			return r
		}
	}
	// unreachable while MemoryMap covers the whole address space
	return Region{Name: "unmapped", Start: address, End: address}
}

const (
	// BootROMEnd is the first address executed after the boot ROM
	// has handed control to the cartridge.
	BootROMEnd uint16 = 0x0100

	// HeaderChecksum is the address of the cartridge header checksum.
	HeaderChecksum uint16 = 0x014D
)
