package ppu

// Tile represents a tile. Each tile has a size of 8x8 pixels and a color
// depth of 4 colors/gray shades. Tiles can be displayed as sprites or as
// background/window tiles.
type Tile [8][8]uint8

// NewTile decodes the 16 bytes of 2bpp tile data. Each row is stored as
// two bytes, the first holding the low bit of every pixel and the second
// the high bit, with the leftmost pixel in bit 7.
func NewTile(b [16]uint8) Tile {
	t := Tile{}
	for tileY := 0; tileY < 8; tileY++ {
		lo, hi := b[tileY*2], b[tileY*2+1]
		for tileX := 0; tileX < 8; tileX++ {
			t[tileY][tileX] = (lo>>(7-tileX))&1 | ((hi>>(7-tileX))&1)<<1
		}
	}

	return t
}

// Tile decodes the tile at the given index (0 - 383) of the tile data
// area at 0x8000 - 0x97FF.
func (p *PPU) Tile(index int) Tile {
	var b [16]uint8
	copy(b[:], p.vRAM[index*16:])
	return NewTile(b)
}
