package gameboy

import "github.com/thelolagemann/gomeboy-core/pkg/log"

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// Debug enables the per-instruction trace.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.CPU.Debug = true
	}
}

// WithLogger replaces the logger of every component.
func WithLogger(l log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = l
		gb.CPU.Log = l
		gb.MMU.Log = l
	}
}

// WithState restores a snapshot taken by SaveState. A snapshot that
// can not be restored makes New fail.
func WithState(b []byte) Opt {
	return func(gb *GameBoy) {
		if gb.optErr != nil {
			return
		}
		if err := gb.LoadState(b); err != nil {
			gb.optErr = err
			return
		}
		gb.loadedFromState = true
	}
}
