package detector

import (
	"testing"

	"github.com/retroenv/retrochip8/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDetect(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name       string
		presetOpt  string
		inputFile  string
		wantPreset string
	}{
		{
			name:       "explicit preset option",
			presetOpt:  "chip48",
			inputFile:  "game.sc8",
			wantPreset: chip8.PresetCHIP48,
		},
		{
			name:       "detect from .sc8 extension",
			presetOpt:  "",
			inputFile:  "game.sc8",
			wantPreset: chip8.PresetSuperChip,
		},
		{
			name:       "detect from .ch8 extension",
			presetOpt:  "",
			inputFile:  "game.ch8",
			wantPreset: chip8.PresetDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.Program{
				Parameters: options.Parameters{Input: tt.inputFile},
				Flags:      options.Flags{Preset: tt.presetOpt},
			}

			got := d.Detect(opts)
			assert.Equal(t, tt.wantPreset, got)
		})
	}
}

func TestDetectFromFile(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name       string
		filename   string
		wantPreset string
	}{
		{
			name:       ".SC8 extension (uppercase)",
			filename:   "ANT.SC8",
			wantPreset: chip8.PresetSuperChip,
		},
		{
			name:       ".schip extension",
			filename:   "car.schip",
			wantPreset: chip8.PresetSuperChip,
		},
		{
			name:       ".c8x extension",
			filename:   "hires.c8x",
			wantPreset: chip8.PresetVIP,
		},
		{
			name:       "no extension",
			filename:   "game",
			wantPreset: chip8.PresetDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.detectFromFile(tt.filename)
			assert.Equal(t, tt.wantPreset, got)
		})
	}
}
