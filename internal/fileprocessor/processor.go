// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/retroenv/retrochip8/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/render"
	"github.com/retroenv/retrochip8/internal/verification"
	"github.com/retroenv/retrogolib/log"
)

// Reasons for the end of a program run.
const (
	StopCycleLimit = "cycle limit reached"
	StopExit       = "program exited"
)

// Result describes a finished program run.
type Result struct {
	Steps    uint64 // Step calls, including draws retried while waiting for the display
	Reason   string
	Checksum uint32
	Screen   chip8.Snapshot
}

// ProcessFile handles the complete file processing workflow and prints the
// final screen to stdout.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	_, err := processFile(ctx, logger, opts, os.Stdout)
	return err
}

func processFile(ctx context.Context, logger *log.Logger, opts options.Program, out *os.File) (Result, error) {
	rom, err := loader.New().Load(opts.Input)
	if err != nil {
		return Result{}, fmt.Errorf("loading ROM: %w", err)
	}

	events, err := ParseKeyScript(opts.Keys)
	if err != nil {
		return Result{}, fmt.Errorf("parsing key script: %w", err)
	}

	ip, err := setupInterpreter(logger, opts, rom)
	if err != nil {
		return Result{}, fmt.Errorf("setting up interpreter: %w", err)
	}

	result, err := run(ctx, ip, runConfig{
		maxSteps: opts.Cycles,
		speed:    opts.Speed,
		realtime: opts.Realtime,
		events:   events,
	})
	if err != nil {
		logger.Debug("Interpreter state", log.String("dump", ip.String()))
		return result, fmt.Errorf("running program: %w", err)
	}

	result.Screen = ip.Snapshot()
	result.Checksum = verification.ScreenChecksum(result.Screen)
	logger.Info("Program finished",
		log.String("reason", result.Reason),
		log.Int("steps", int(result.Steps)),
		log.Hex("screen_crc32", result.Checksum))

	if !opts.NoScreen {
		if err := writeScreen(logger, out, opts, result.Screen); err != nil {
			return result, err
		}
	}

	if opts.Verify != "" {
		if err := verification.VerifyScreen(logger, result.Screen, opts.Verify); err != nil {
			return result, fmt.Errorf("verification failed: %w", err)
		}
		logger.Info("Verification successful")
	}

	return result, nil
}

func setupInterpreter(logger *log.Logger, opts options.Program, rom []byte) (*chip8.Interpreter, error) {
	preset := detector.New(logger).Detect(opts)

	interpreterOptions, err := config.CreateInterpreterOptions(opts, preset)
	if err != nil {
		return nil, err
	}

	ip, err := chip8.New(logger, interpreterOptions)
	if err != nil {
		return nil, fmt.Errorf("creating interpreter: %w", err)
	}
	if err := ip.LoadProgram(rom); err != nil {
		return nil, err
	}

	logger.Info("Running program",
		log.String("file", opts.Input),
		log.String("preset", preset),
		log.Int("size", len(rom)))
	return ip, nil
}

type runConfig struct {
	maxSteps uint64
	speed    int // steps per second
	realtime bool
	events   []KeyEvent
}

// run drives the interpreter in frames of 1/60 second, executing the steps of
// one frame followed by a timer tick. It stops at the step limit or when the
// program exits.
func run(ctx context.Context, ip *chip8.Interpreter, cfg runConfig) (Result, error) {
	stepsPerFrame := max(cfg.speed/chip8.TimerFrequency, 1)

	var ticker *time.Ticker
	if cfg.realtime {
		ticker = time.NewTicker(time.Second / chip8.TimerFrequency)
		defer ticker.Stop()
	}

	var result Result
	nextEvent := 0

	for frame := time.Duration(0); ; frame++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		for range stepsPerFrame {
			for nextEvent < len(cfg.events) && cfg.events[nextEvent].Step <= result.Steps {
				event := cfg.events[nextEvent]
				if err := ip.SetKey(event.Key, event.Pressed); err != nil {
					return result, fmt.Errorf("applying key event: %w", err)
				}
				nextEvent++
			}

			if result.Steps >= cfg.maxSteps {
				result.Reason = StopCycleLimit
				return result, nil
			}

			err := ip.Step()
			result.Steps++
			if err != nil {
				if errors.Is(err, chip8.ErrExit) {
					result.Reason = StopExit
					return result, nil
				}
				return result, err
			}
		}

		ip.Tick(frameEnd(frame) - frameEnd(frame-1))

		if ticker != nil {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-ticker.C:
			}
		}
	}
}

// frameEnd returns the emulated time at the end of a frame, rounded up to whole
// nanoseconds so that every frame completes exactly one timer interval.
func frameEnd(frame time.Duration) time.Duration {
	return (time.Second*(frame+1) + chip8.TimerFrequency - 1) / chip8.TimerFrequency
}

func writeScreen(logger *log.Logger, out *os.File, opts options.Program, snapshot chip8.Snapshot) error {
	style := render.ASCII
	if !opts.ASCII {
		style = render.DetectStyle(out)
	}

	if columns := render.Columns(snapshot); !render.FitsTerminal(out, columns) {
		logger.Warn("Screen is wider than the terminal", log.Int("columns", columns))
	}

	if err := render.Write(out, snapshot, style, filepath.Base(opts.Input)); err != nil {
		return fmt.Errorf("printing screen: %w", err)
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("retrochip8", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
