package gameboy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gomeboy-core/internal/cartridge"
	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// testROM returns a 32kB ROM-only image with program at the entry
// point.
func testROM(checksum uint8, program ...uint8) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x0100:], program)
	copy(rom[0x0134:], "TEST")
	rom[0x014D] = checksum
	return rom
}

func newTestGameBoy(t *testing.T, rom []byte, opts ...Opt) *GameBoy {
	t.Helper()
	g, err := New(rom, append([]Opt{WithLogger(log.NewNullLogger())}, opts...)...)
	require.NoError(t, err)
	return g
}

func TestNew(t *testing.T) {
	t.Run("short ROM", func(t *testing.T) {
		_, err := New(make([]byte, 0x014D))
		assert.ErrorIs(t, err, cartridge.ErrROMTooShort)
	})

	t.Run("checksum presets flags", func(t *testing.T) {
		g := newTestGameBoy(t, testROM(0x42))
		assert.Equal(t, uint16(0x0130), g.CPU.AF())

		g = newTestGameBoy(t, testROM(0x00))
		assert.Equal(t, uint16(0x0100), g.CPU.AF())
	})

	t.Run("post boot state", func(t *testing.T) {
		g := newTestGameBoy(t, testROM(0x42))
		assert.Equal(t, uint16(0x0100), g.CPU.PC.Get())
		assert.Equal(t, uint16(0xFFFE), g.CPU.SP)
		assert.False(t, g.LoadedFromState())
	})
}

func TestGameBoy_Run(t *testing.T) {
	g := newTestGameBoy(t, testROM(0x42, 0xAF, 0x00))

	require.NoError(t, g.Run(context.Background(), 2))
	assert.Equal(t, uint16(0x0102), g.CPU.PC.Get())
	assert.Equal(t, uint8(0x80), g.CPU.F.Byte())
	assert.Equal(t, uint64(2), g.CPU.Cycles)
}

func TestGameBoy_RunCancelled(t *testing.T) {
	g := newTestGameBoy(t, testROM(0x42, 0x00))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, g.Run(ctx, 1), context.Canceled)
	assert.Equal(t, uint16(0x0100), g.CPU.PC.Get())
}

func TestGameBoy_RunUntilDone(t *testing.T) {
	// JR -2
	g := newTestGameBoy(t, testROM(0x42, 0x18, 0xFE))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, g.Run(ctx, 0), context.DeadlineExceeded)
	assert.Equal(t, uint16(0x0100), g.CPU.PC.Get())
	assert.NotZero(t, g.CPU.Cycles)
}

func TestGameBoy_RunUnknownOpcode(t *testing.T) {
	g := newTestGameBoy(t, testROM(0x42, 0x00, 0xD3))

	err := g.Run(context.Background(), 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cpu.ErrNotCovered))

	var unknown *cpu.UnknownOpcodeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, uint8(0xD3), unknown.Opcode)
}

func TestGameBoy_Debug(t *testing.T) {
	recorder := log.NewRecorder()
	g, err := New(testROM(0x42, 0xAF), WithLogger(recorder), Debug())
	require.NoError(t, err)

	g.Step()

	assert.Contains(t, recorder.Messages, "DEBUG PC: 0x0100 | Opcode: 0xAF | Instruction: XOR A")
}

func TestGameBoy_State(t *testing.T) {
	rom := testROM(0x42,
		0x3E, 0x42, // LD A, 0x42
		0xEA, 0x00, 0xC0, // LD (0xC000), A
		0x21, 0x00, 0x80, // LD HL, 0x8000
		0x77, // LD (HL), A
		0x00,
	)
	g := newTestGameBoy(t, rom)
	require.NoError(t, g.Run(context.Background(), 4))

	state, err := g.SaveState()
	require.NoError(t, err)

	t.Run("restore", func(t *testing.T) {
		restored := newTestGameBoy(t, rom, WithState(state))

		assert.True(t, restored.LoadedFromState())
		assert.Equal(t, g.CPU.PC.Get(), restored.CPU.PC.Get())
		assert.Equal(t, g.CPU.Registers, restored.CPU.Registers)
		assert.Equal(t, uint8(0x42), restored.MMU.Read(0xC000))
		assert.Equal(t, uint8(0x42), restored.MMU.Read(0x8000))

		require.NoError(t, restored.Run(context.Background(), 1))
		assert.Equal(t, uint16(0x010A), restored.CPU.PC.Get())
	})

	t.Run("different cartridge", func(t *testing.T) {
		_, err := New(testROM(0x42, 0x00), WithLogger(log.NewNullLogger()), WithState(state))
		assert.ErrorIs(t, err, ErrStateMismatch)
	})

	t.Run("corrupt payload", func(t *testing.T) {
		corrupt := append([]byte(nil), state...)
		corrupt[len(corrupt)-1] ^= 0xFF

		_, err := New(rom, WithLogger(log.NewNullLogger()), WithState(corrupt))
		assert.ErrorIs(t, err, ErrStateCorrupt)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := New(rom, WithLogger(log.NewNullLogger()), WithState(state[:10]))
		assert.ErrorIs(t, err, ErrStateCorrupt)

		_, err = New(rom, WithLogger(log.NewNullLogger()), WithState(state[:len(state)-1]))
		assert.ErrorIs(t, err, ErrStateCorrupt)
	})
}
