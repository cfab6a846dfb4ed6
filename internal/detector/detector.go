// Package detector handles quirk preset detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrochip8/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles quirk preset detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new preset detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the quirk preset from options or file auto-detection.
// It first checks if a preset is explicitly specified in options, otherwise
// attempts to detect the preset from the input filename extension.
func (d *Detector) Detect(opts options.Program) string {
	preset := opts.Preset
	if preset == "" {
		preset = d.detectFromFile(opts.Input)
		d.logger.Debug("Auto-detected quirk preset",
			log.Stringer("system", arch.CHIP8System),
			log.String("preset", preset),
			log.String("file", opts.Input))
	}
	return preset
}

// detectFromFile determines the quirk preset based on file extension.
func (d *Detector) detectFromFile(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".sc8", ".schip":
		return chip8.PresetSuperChip
	case ".c8x":
		return chip8.PresetVIP
	default:
		// .ch8 files and unknown extensions use the default quirks
		return chip8.PresetDefault
	}
}
