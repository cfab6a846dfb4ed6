// Package config handles application configuration and setup
package config

import (
	"fmt"
	"math/rand/v2"

	"github.com/retroenv/retrochip8/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateInterpreterOptions creates the interpreter options for the given quirk preset.
// A non zero seed makes the random instruction reproducible.
func CreateInterpreterOptions(opts options.Program, preset string) (chip8.Options, error) {
	quirks, err := chip8.QuirksForPreset(preset)
	if err != nil {
		return chip8.Options{}, fmt.Errorf("creating interpreter options: %w", err)
	}

	interpreterOptions := chip8.NewOptions()
	interpreterOptions.Quirks = quirks
	interpreterOptions.Trace = opts.Trace
	if opts.Seed != 0 {
		interpreterOptions.Rand = rand.NewPCG(opts.Seed, opts.Seed)
	}
	return interpreterOptions, nil
}
