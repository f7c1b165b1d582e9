package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/thelolagemann/gomeboy-core/internal/gameboy"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
)

func main() {
	romFile := flag.String("rom", "", "The rom file to load (.gb, .gbc, .gz, .xz, .zip or .7z)")
	steps := flag.Int("steps", 0, "Number of instructions to execute, 0 runs until interrupted")
	trace := flag.Bool("trace", false, "Log every executed instruction")
	stateFile := flag.String("state", "", "A save state to resume from")
	saveFile := flag.String("save", "", "Write a save state here when execution stops")
	level := flag.String("log-level", "info", "Log level (error, info, debug)")
	flag.Parse()

	if err := run(*romFile, *steps, *trace, *stateFile, *saveFile, *level); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(romFile string, steps int, trace bool, stateFile, saveFile, level string) error {
	if romFile == "" {
		return errors.New("no rom file given, use -rom")
	}

	if trace {
		level = "debug"
	}
	logger, err := log.NewWithLevel(level)
	if err != nil {
		return err
	}

	rom, err := utils.LoadFile(romFile)
	if err != nil {
		return err
	}

	opts := []gameboy.Opt{gameboy.WithLogger(logger)}
	if trace {
		opts = append(opts, gameboy.Debug())
	}
	if stateFile != "" {
		state, err := os.ReadFile(stateFile)
		if err != nil {
			return err
		}
		opts = append(opts, gameboy.WithState(state))
	}

	gb, err := gameboy.New(rom, opts...)
	if err != nil {
		return err
	}
	logger.Infof("loaded %s", gb.Cartridge.Header())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runErr := gb.Run(ctx, steps)
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}
	if runErr != nil {
		logger.Errorf("%v", runErr)
	}
	logger.Infof("stopped at PC 0x%04X after %d cycles", gb.CPU.PC.Get(), gb.CPU.Cycles)

	if saveFile != "" {
		state, err := gb.SaveState()
		if err != nil {
			return err
		}
		if err := os.WriteFile(saveFile, state, 0o644); err != nil {
			return err
		}
		logger.Infof("saved state to %s", saveFile)
	}

	return runErr
}
