// Package gameboy wires the CPU, memory bus, cartridge and video store
// together into a headless Game Boy.
package gameboy

import (
	"context"
	"errors"
	"fmt"

	"github.com/thelolagemann/gomeboy-core/internal/cartridge"
	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"github.com/thelolagemann/gomeboy-core/internal/mmu"
	"github.com/thelolagemann/gomeboy-core/internal/ppu"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// GameBoy represents a Game Boy. It owns every component and is the
// main entry point for the emulator.
type GameBoy struct {
	CPU       *cpu.CPU
	MMU       *mmu.MMU
	PPU       *ppu.PPU
	Cartridge cartridge.Cartridge

	log.Logger

	loadedFromState bool
	// first error raised by an Opt
	optErr error
}

// New returns a GameBoy with the given ROM inserted, in the state the
// boot ROM leaves the machine.
func New(rom []byte, opts ...Opt) (*GameBoy, error) {
	cart, err := cartridge.New(rom)
	if err != nil {
		return nil, fmt.Errorf("gameboy: inserting cartridge: %w", err)
	}

	logger := log.New()
	video := ppu.New()
	memBus := mmu.NewMMU(cart, logger)
	memBus.AttachVideo(video)

	g := &GameBoy{
		CPU:       cpu.NewCPU(memBus, rom[types.HeaderChecksum] != 0, logger),
		MMU:       memBus,
		PPU:       video,
		Cartridge: cart,
		Logger:    logger,
	}

	for _, opt := range opts {
		opt(g)
	}
	if g.optErr != nil {
		return nil, g.optErr
	}

	g.Debugf("inserted %s", cart.Header())
	return g, nil
}

// Step executes a single instruction and returns the machine cycles it
// took.
func (g *GameBoy) Step() uint8 {
	return g.CPU.Step()
}

// Run executes steps instructions, or runs until ctx is done when steps
// is zero. The context is only checked between instructions. An opcode
// the CPU does not cover stops the run and is returned as an error
// matching cpu.ErrNotCovered.
func (g *GameBoy) Run(ctx context.Context, steps int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fault, ok := r.(error)
			if !ok || !errors.Is(fault, cpu.ErrNotCovered) {
				panic(r)
			}
			err = fmt.Errorf("gameboy: at 0x%04X: %w", g.CPU.PC.Get(), fault)
		}
	}()

	for i := 0; steps == 0 || i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		g.CPU.Step()
	}

	return nil
}

// LoadedFromState reports whether the machine was restored from a save
// state by WithState.
func (g *GameBoy) LoadedFromState() bool {
	return g.loadedFromState
}

var _ types.Stater = (*GameBoy)(nil)

func (g *GameBoy) Load(s *types.State) {
	g.CPU.Load(s)
	g.MMU.Load(s)
}

func (g *GameBoy) Save(s *types.State) {
	g.CPU.Save(s)
	g.MMU.Save(s)
}
