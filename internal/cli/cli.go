// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/chip8"
	"github.com/retroenv/retrochip8/internal/options"
)

// Default values of the runner flags.
const (
	DefaultCycles = 100000
	DefaultSpeed  = 700
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "" && opts.Batch == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if opts.Batch == "" && len(args) > 0 {
		opts.Input = args[0]
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <ROM file to run>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Preset = strings.ToLower(opts.Preset)
	if opts.Preset != "" {
		if _, err := chip8.QuirksForPreset(opts.Preset); err != nil {
			return err
		}
	}

	if opts.Speed <= 0 {
		return fmt.Errorf("invalid speed %d, has to be a positive number of instructions per second", opts.Speed)
	}

	if opts.Verify != "" {
		verify := strings.TrimPrefix(strings.ToLower(opts.Verify), "0x")
		if _, err := strconv.ParseUint(verify, 16, 32); err != nil {
			return fmt.Errorf("invalid screen checksum '%s': %w", opts.Verify, err)
		}
		opts.Verify = verify
	}

	if opts.Trace && !opts.Debug {
		opts.Debug = true
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask, for example *.ch8")
	flags.StringVar(&opts.Preset, "p", "", "quirk preset (default/vip/chip48/schip) - if not auto-detected from file extension")
	flags.Uint64Var(&opts.Cycles, "cycles", DefaultCycles, "maximum number of instructions to execute")
	flags.IntVar(&opts.Speed, "speed", DefaultSpeed, "instructions per second of emulated time")
	flags.StringVar(&opts.Keys, "keys", "", "scripted key events as key@cycle, key-@cycle releases, for example 5@100,5-@140")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed of the random number generator, 0 uses a random seed")
	flags.BoolVar(&opts.Realtime, "realtime", false, "run at real speed instead of as fast as possible")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, enables debug logging")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.NoScreen, "noscreen", false, "do not print the final screen")
	flags.BoolVar(&opts.ASCII, "ascii", false, "print the screen using ASCII characters")
	flags.StringVar(&opts.Verify, "verify", "", "verify that the CRC32 of the final screen matches the given hex value")
}
