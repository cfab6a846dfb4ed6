package fileprocessor

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseKeyScript(t *testing.T) {
	events, err := ParseKeyScript("a@100, 5@10,a-@120,F-@10")
	assert.NoError(t, err)

	expected := []KeyEvent{
		{Key: 5, Pressed: true, Step: 10},
		{Key: 15, Pressed: false, Step: 10},
		{Key: 10, Pressed: true, Step: 100},
		{Key: 10, Pressed: false, Step: 120},
	}
	assert.Equal(t, expected, events)
}

func TestParseKeyScriptEmpty(t *testing.T) {
	events, err := ParseKeyScript("")
	assert.NoError(t, err)
	assert.Empty(t, events)

	events, err = ParseKeyScript(" , ")
	assert.NoError(t, err)
	assert.Empty(t, events)
}

func TestParseKeyScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		errMsg string
	}{
		{"missing step", "5", "missing the step"},
		{"invalid key", "G@1", "invalid key 'G'"},
		{"key out of range", "10@1", "invalid key '10'"},
		{"empty key", "@1", "invalid key ''"},
		{"invalid step", "5@x", "invalid step 'x'"},
		{"negative step", "5@-1", "invalid step '-1'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseKeyScript(tt.script)
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}
