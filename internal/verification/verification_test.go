package verification

import (
	"fmt"
	"testing"

	"github.com/retroenv/retrochip8/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func testSnapshot(set ...int) chip8.Snapshot {
	s := chip8.Snapshot{
		Width:  chip8.DisplayWidth,
		Height: chip8.DisplayHeight,
		Pixels: make([]bool, chip8.DisplayWidth*chip8.DisplayHeight),
	}
	for _, i := range set {
		s.Pixels[i] = true
	}
	return s
}

func TestScreenChecksum(t *testing.T) {
	empty := ScreenChecksum(testSnapshot())
	assert.Equal(t, empty, ScreenChecksum(testSnapshot()))

	assert.True(t, empty != ScreenChecksum(testSnapshot(0)))
	assert.True(t, ScreenChecksum(testSnapshot(0)) != ScreenChecksum(testSnapshot(1)))

	highRes := chip8.Snapshot{
		Width:  chip8.HighResWidth,
		Height: chip8.HighResHeight / 4,
		Pixels: make([]bool, chip8.DisplayWidth*chip8.DisplayHeight),
	}
	assert.True(t, empty != ScreenChecksum(highRes))
}

func TestPackPixels(t *testing.T) {
	packed := packPixels([]bool{true, false, false, false, false, false, false, true, true})
	assert.Len(t, packed, 2)
	assert.Equal(t, byte(0x81), packed[0])
	assert.Equal(t, byte(0x80), packed[1])
}

func TestVerifyScreen(t *testing.T) {
	logger := log.NewTestLogger(t)
	s := testSnapshot(5, 70)
	checksum := fmt.Sprintf("%08x", ScreenChecksum(s))

	assert.NoError(t, VerifyScreen(logger, s, checksum))

	// mismatches are logged at error level, which fails tests using the test logger
	err := VerifyScreen(log.NewNop(), testSnapshot(5), checksum)
	assert.ErrorContains(t, err, "screen checksum mismatch")

	err = VerifyScreen(logger, s, "not-hex")
	assert.ErrorContains(t, err, "parsing expected checksum")
}
