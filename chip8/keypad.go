package chip8

import "fmt"

// NumKeys is the number of keys of the hexadecimal keypad.
const NumKeys = 16

// Keypad latches the pressed state of the 16 logical keys as reported by the frontend.
type Keypad struct {
	pressed [NumKeys]bool
}

// Set updates the state of a key and returns whether this was a press edge,
// a transition from released to pressed.
func (k *Keypad) Set(key int, pressed bool) (bool, error) {
	if key < 0 || key >= NumKeys {
		return false, fmt.Errorf("%w: %d", ErrInvalidKey, key)
	}
	edge := pressed && !k.pressed[key]
	k.pressed[key] = pressed
	return edge, nil
}

// Pressed returns whether the key is held down. Only the low nibble of the key is used.
func (k *Keypad) Pressed(key byte) bool {
	return k.pressed[key&0xF]
}
