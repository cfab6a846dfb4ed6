package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "pong.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8"},
				Flags:      options.Flags{Cycles: DefaultCycles, Speed: DefaultSpeed},
			},
		},
		{
			name: "preset and cycles",
			args: []string{"prog", "-p", "VIP", "-cycles", "500", "-speed", "1000", "game.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "game.ch8"},
				Flags:      options.Flags{Preset: "vip", Cycles: 500, Speed: 1000},
			},
		},
		{
			name: "trace enables debug",
			args: []string{"prog", "-trace", "game.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "game.ch8"},
				Flags:      options.Flags{Cycles: DefaultCycles, Speed: DefaultSpeed, Trace: true, Debug: true},
			},
		},
		{
			name: "verify is normalized",
			args: []string{"prog", "-verify", "0xDEADBEEF", "-noscreen", "game.ch8"},
			want: options.Program{
				Parameters:  options.Parameters{Input: "game.ch8"},
				Flags:       options.Flags{Cycles: DefaultCycles, Speed: DefaultSpeed},
				OutputFlags: options.OutputFlags{NoScreen: true, Verify: "deadbeef"},
			},
		},
		{
			name: "batch without positional file",
			args: []string{"prog", "-batch", "roms/*.ch8", "-keys", "5@10"},
			want: options.Program{
				Parameters: options.Parameters{Batch: "roms/*.ch8"},
				Flags:      options.Flags{Cycles: DefaultCycles, Speed: DefaultSpeed, Keys: "5@10"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		usage      bool
		errContain string
	}{
		{name: "no file", args: []string{"prog"}, usage: true},
		{name: "flag after file", args: []string{"prog", "game.ch8", "-debug"}, usage: true},
		{name: "unknown preset", args: []string{"prog", "-p", "xochip", "game.ch8"}, errContain: "unsupported quirk preset"},
		{name: "invalid speed", args: []string{"prog", "-speed", "0", "game.ch8"}, errContain: "invalid speed"},
		{name: "invalid checksum", args: []string{"prog", "-verify", "xyz", "game.ch8"}, errContain: "invalid screen checksum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, err := ParseFlags()
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usage, errors.As(err, &usageErr))
			if tt.errContain != "" {
				assert.ErrorContains(t, err, tt.errContain)
			}
		})
	}
}
