package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState(t *testing.T) {
	s := NewState()
	s.Write8(0x12)
	s.Write16(0x3456)
	s.Write64(0x0102030405060708)
	s.WriteBool(true)
	s.WriteData([]byte{0xAA, 0xBB})

	r := StateFromBytes(s.Bytes())
	assert.Equal(t, uint8(0x12), r.Read8())
	assert.Equal(t, uint16(0x3456), r.Read16())
	assert.Equal(t, uint64(0x0102030405060708), r.Read64())
	assert.True(t, r.ReadBool())
	data := make([]byte, 2)
	r.ReadData(data)
	assert.Equal(t, []byte{0xAA, 0xBB}, data)
	require.NoError(t, r.Err())

	// reading past the end records the error instead of panicking
	assert.Equal(t, uint16(0), r.Read16())
	assert.ErrorIs(t, r.Err(), ErrStateTruncated)
}

func TestMemoryMap(t *testing.T) {
	covered := 0
	for i, r := range MemoryMap {
		covered += r.Size()
		if i > 0 {
			assert.Equal(t, MemoryMap[i-1].End+1, r.Start, "%s must follow %s", r.Name, MemoryMap[i-1].Name)
		}
	}
	assert.Equal(t, 0x10000, covered)
	assert.Equal(t, "Echo RAM", RegionOf(0xE123).Name)
	assert.Equal(t, "Interrupt Enable", RegionOf(0xFFFF).Name)
}
