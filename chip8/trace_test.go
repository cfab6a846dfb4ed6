package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestFormatInstruction(t *testing.T) {
	tests := []struct {
		raw       uint16
		superChip bool
		want      string
	}{
		{0x00E0, false, "cls"},
		{0x00EE, false, "ret"},
		{0x1234, false, "jp $234"},
		{0x2300, false, "call $300"},
		{0x3234, false, "se V2, $34"},
		{0x5230, false, "se V2, V3"},
		{0xA21E, false, "ld I, $21E"},
		{0xB210, false, "jp V0, $210"},
		{0xD235, false, "drw V2, V3, $5"},
		{0x8AB4, false, "add VA, VB"},
		{0xE19E, false, "skp V1"},
		{0x00C4, true, "scd $4"},
		{0x00FD, true, "exit"},
		{0xF130, true, "ld HF, V1"},
		{0xF375, true, "ld R, V3"},
	}

	for _, tt := range tests {
		ins, err := Decode(tt.raw, tt.superChip)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, FormatInstruction(ins))
	}
}

func TestTraceLogging(t *testing.T) {
	opts := NewOptions()
	opts.Trace = true
	ip, err := New(nil, opts)
	assert.NoError(t, err)
	assert.NoError(t, ip.LoadProgram([]byte{0x60, 0x01}))
	assert.NoError(t, ip.Step())
	assert.Equal(t, byte(1), ip.Registers().V[0])
}
