package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestQuirksForPreset(t *testing.T) {
	tests := []struct {
		name    string
		preset  string
		want    Quirks
		wantErr bool
	}{
		{name: "empty", preset: "", want: DefaultQuirks()},
		{name: "default", preset: "default", want: DefaultQuirks()},
		{name: "vip", preset: "vip", want: VIPQuirks()},
		{name: "chip8 alias", preset: "CHIP8", want: VIPQuirks()},
		{name: "chip48", preset: "chip48", want: CHIP48Quirks()},
		{name: "schip", preset: "schip", want: SuperChipQuirks()},
		{name: "superchip alias", preset: "SuperChip", want: SuperChipQuirks()},
		{name: "unknown", preset: "xochip", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := QuirksForPreset(tt.preset)
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorContains(t, err, "valid options")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultQuirksLogicFlagOptIn(t *testing.T) {
	assert.False(t, DefaultQuirks().LogicResetsFlag)
	assert.True(t, VIPQuirks().LogicResetsFlag)
	assert.True(t, SuperChipQuirks().SuperChip)
	assert.False(t, CHIP48Quirks().SuperChip)
}
