// Package verification verifies that a program produced the expected screen.
package verification

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"strconv"

	"github.com/retroenv/retrochip8/chip8"
	"github.com/retroenv/retrogolib/log"
)

// ScreenChecksum returns the CRC32 (IEEE) of a framebuffer. The resolution is part
// of the checksum, followed by the pixels packed to 8 per byte, most significant bit first.
func ScreenChecksum(snapshot chip8.Snapshot) uint32 {
	buf := make([]byte, 4, 4+(len(snapshot.Pixels)+7)/8)
	binary.BigEndian.PutUint16(buf[0:], uint16(snapshot.Width))
	binary.BigEndian.PutUint16(buf[2:], uint16(snapshot.Height))
	buf = append(buf, packPixels(snapshot.Pixels)...)
	return crc32.ChecksumIEEE(buf)
}

// VerifyScreen verifies that the checksum of the framebuffer matches the expected
// checksum, given as hex string.
func VerifyScreen(logger *log.Logger, snapshot chip8.Snapshot, expected string) error {
	want, err := strconv.ParseUint(expected, 16, 32)
	if err != nil {
		return fmt.Errorf("parsing expected checksum '%s': %w", expected, err)
	}

	got := ScreenChecksum(snapshot)
	if got != uint32(want) {
		logger.Error("Screen mismatch",
			log.Hex("expected", uint32(want)),
			log.Hex("got", got),
			log.Int("set_pixels", countSet(snapshot.Pixels)))
		return fmt.Errorf("screen checksum mismatch, expected %08x but got %08x", want, got)
	}
	return nil
}

func packPixels(pixels []bool) []byte {
	packed := make([]byte, (len(pixels)+7)/8)
	for i, set := range pixels {
		if set {
			packed[i/8] |= 0x80 >> (i % 8)
		}
	}
	return packed
}

func countSet(pixels []bool) int {
	count := 0
	for _, set := range pixels {
		if set {
			count++
		}
	}
	return count
}
