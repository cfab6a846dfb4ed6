package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMemoryReadWrite(t *testing.T) {
	var m Memory

	assert.NoError(t, m.Write(0x300, 0xAB))
	b, err := m.Read(0x300)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xAB), b)

	assert.NoError(t, m.Write(MaxAddress, 0x01))
	b, err = m.Read(MaxAddress)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x01), b)
}

func TestMemoryOutOfRange(t *testing.T) {
	var m Memory

	_, err := m.Read(MemorySize)
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))

	err = m.Write(0xFFFF, 1)
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))

	_, err = m.ReadRange(0xFFE, 3)
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))
}

func TestMemoryWriteRangeAllOrNothing(t *testing.T) {
	var m Memory

	err := m.WriteRange(0xFFE, []byte{1, 2, 3})
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))

	b, err := m.Read(0xFFE)
	assert.NoError(t, err)
	assert.Equal(t, byte(0), b)

	assert.NoError(t, m.WriteRange(0xFFD, []byte{1, 2, 3}))
	data, err := m.ReadRange(0xFFD, 3)
	assert.NoError(t, err)
	assert.Equal(t, byte(3), data[2])
}

func TestMemoryReadRangeReturnsCopy(t *testing.T) {
	var m Memory
	assert.NoError(t, m.Write(0x200, 7))

	data, err := m.ReadRange(0x200, 1)
	assert.NoError(t, err)
	data[0] = 9

	b, err := m.Read(0x200)
	assert.NoError(t, err)
	assert.Equal(t, byte(7), b)
}

func TestMemoryLoadProgram(t *testing.T) {
	var m Memory

	assert.NoError(t, m.LoadProgram(nil))
	assert.NoError(t, m.LoadProgram([]byte{0x12, 0x34}))
	b, err := m.Read(ProgramStart + 1)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x34), b)

	assert.NoError(t, m.LoadProgram(make([]byte, MaxProgramSize)))

	err = m.LoadProgram(make([]byte, MaxProgramSize+1))
	assert.True(t, errors.Is(err, ErrProgramTooLarge))
}
