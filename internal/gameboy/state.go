package gameboy

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

var (
	// ErrStateMismatch is returned when a save state was taken with a
	// different ROM.
	ErrStateMismatch = errors.New("gameboy: save state belongs to a different cartridge")
	// ErrStateCorrupt is returned when a save state fails its checksum.
	ErrStateCorrupt = errors.New("gameboy: save state is corrupt")
)

// stateVersion is bumped whenever the layout written by Save changes.
const stateVersion = 1

// SaveState returns a snapshot of the machine. The layout is
//
//	version     uint8
//	fingerprint uint64  xxhash of the ROM
//	checksum    uint64  xxhash of the compressed payload
//	length      uint32
//	payload     brotli compressed types.State
func (g *GameBoy) SaveState() ([]byte, error) {
	s := types.NewState()
	g.Save(s)

	var compressed bytes.Buffer
	w := brotli.NewWriterLevel(&compressed, brotli.DefaultCompression)
	if _, err := w.Write(s.Bytes()); err != nil {
		return nil, fmt.Errorf("gameboy: compressing state: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("gameboy: compressing state: %w", err)
	}

	out := types.NewState()
	out.Write8(stateVersion)
	out.Write64(g.Cartridge.Header().Fingerprint)
	out.Write64(xxhash.Sum64(compressed.Bytes()))
	out.Write32(uint32(compressed.Len()))
	out.WriteData(compressed.Bytes())

	return out.Bytes(), nil
}

// LoadState restores a snapshot taken by SaveState. The machine is left
// untouched if the snapshot can not be used.
func (g *GameBoy) LoadState(b []byte) error {
	in := types.StateFromBytes(b)
	version := in.Read8()
	fingerprint := in.Read64()
	checksum := in.Read64()
	length := in.Read32()
	if err := in.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStateCorrupt, err)
	}
	if int(length) > len(b) {
		return fmt.Errorf("%w: payload length %d exceeds state", ErrStateCorrupt, length)
	}
	compressed := make([]byte, length)
	in.ReadData(compressed)
	if err := in.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStateCorrupt, err)
	}

	if version != stateVersion {
		return fmt.Errorf("%w: unknown version %d", ErrStateCorrupt, version)
	}
	if fingerprint != g.Cartridge.Header().Fingerprint {
		return ErrStateMismatch
	}
	if xxhash.Sum64(compressed) != checksum {
		return ErrStateCorrupt
	}

	raw, err := io.ReadAll(brotli.NewReader(bytes.NewReader(compressed)))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStateCorrupt, err)
	}

	// every component saves a fixed number of bytes, so a payload of
	// the current size is read completely
	current := types.NewState()
	g.Save(current)
	if len(raw) != len(current.Bytes()) {
		return fmt.Errorf("%w: payload is %d bytes, expected %d", ErrStateCorrupt, len(raw), len(current.Bytes()))
	}

	g.Load(types.StateFromBytes(raw))
	return nil
}
