package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestStackRoundTrip(t *testing.T) {
	var s Stack

	for i := range StackSize {
		assert.NoError(t, s.Push(uint16(0x200+2*i)))
	}
	assert.Equal(t, StackSize, s.Depth())

	for i := StackSize - 1; i >= 0; i-- {
		address, err := s.Pop()
		assert.NoError(t, err)
		assert.Equal(t, uint16(0x200+2*i), address)
	}
	assert.Equal(t, 0, s.Depth())
}

func TestStackOverflow(t *testing.T) {
	var s Stack
	expected := make([]uint16, 0, StackSize)
	for i := range StackSize {
		address := uint16(0x300 + 2*i)
		assert.NoError(t, s.Push(address))
		expected = append(expected, address)
	}

	err := s.Push(0x400)
	assert.True(t, errors.Is(err, ErrStackOverflow))
	assert.Equal(t, StackSize, s.Depth())
	assert.Equal(t, expected, s.Entries())
}

func TestStackUnderflow(t *testing.T) {
	var s Stack
	_, err := s.Pop()
	assert.True(t, errors.Is(err, ErrStackUnderflow))
}
