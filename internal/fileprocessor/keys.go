package fileprocessor

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/chip8"
)

// KeyEvent is a scripted key state change that is applied before the given
// step of the runner is executed.
type KeyEvent struct {
	Key     int
	Pressed bool
	Step    uint64
}

// ParseKeyScript parses a comma separated list of key events. Each event has the
// form key@step to press or key-@step to release a key, the key is a hex digit.
// The returned events are sorted by step, events of the same step keep their order.
func ParseKeyScript(script string) ([]KeyEvent, error) {
	var events []KeyEvent

	for entry := range strings.SplitSeq(script, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		keyPart, stepPart, ok := strings.Cut(entry, "@")
		if !ok {
			return nil, fmt.Errorf("key event '%s' is missing the step, expected format key@step", entry)
		}

		event := KeyEvent{Pressed: true}
		if released, found := strings.CutSuffix(keyPart, "-"); found {
			keyPart = released
			event.Pressed = false
		}

		key, err := strconv.ParseUint(keyPart, 16, 8)
		if err != nil || key >= chip8.NumKeys {
			return nil, fmt.Errorf("invalid key '%s' in key event '%s'", keyPart, entry)
		}
		event.Key = int(key)

		event.Step, err = strconv.ParseUint(stepPart, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid step '%s' in key event '%s': %w", stepPart, entry, err)
		}

		events = append(events, event)
	}

	slices.SortStableFunc(events, func(a, b KeyEvent) int {
		return cmp.Compare(a.Step, b.Step)
	})
	return events, nil
}
