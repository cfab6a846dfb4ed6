package chip8

import "fmt"

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter area, holds the font tables
//	0x200-0xFFF: Program space (3584 bytes)
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// MaxAddress is the highest valid address in CHIP-8 memory space.
	MaxAddress = MemorySize - 1

	// ProgramStart is the memory address where programs are loaded and begin execution.
	ProgramStart = 0x200

	// MaxProgramSize is the largest ROM that fits into the program space.
	MaxProgramSize = MemorySize - ProgramStart

	// FontAddress is where the small hexadecimal font is installed.
	FontAddress = 0x050

	// BigFontAddress is where the SUPER-CHIP large font is installed.
	BigFontAddress = FontAddress + FontSize
)

// Memory is the flat 4KB byte store of the machine.
// All accesses are bounds checked, addresses outside of 0x000-0xFFF return
// ErrAddressOutOfRange instead of wrapping.
type Memory struct {
	data [MemorySize]byte
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) (byte, error) {
	if err := checkRange(address, 1); err != nil {
		return 0, err
	}
	return m.data[address], nil
}

// Write sets the byte at the given address.
func (m *Memory) Write(address uint16, value byte) error {
	if err := checkRange(address, 1); err != nil {
		return err
	}
	m.data[address] = value
	return nil
}

// ReadRange returns a copy of n bytes starting at address. The whole range is
// validated before anything is read.
func (m *Memory) ReadRange(address uint16, n int) ([]byte, error) {
	if err := checkRange(address, n); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	copy(buf, m.data[address:])
	return buf, nil
}

// WriteRange copies data to memory starting at address. Nothing is written if any
// part of the range is out of bounds.
func (m *Memory) WriteRange(address uint16, data []byte) error {
	if err := checkRange(address, len(data)); err != nil {
		return err
	}
	copy(m.data[address:], data)
	return nil
}

// LoadProgram copies the ROM into the program space starting at ProgramStart.
func (m *Memory) LoadProgram(rom []byte) error {
	if len(rom) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes exceed the program space by %d bytes",
			ErrProgramTooLarge, len(rom), len(rom)-MaxProgramSize)
	}
	copy(m.data[ProgramStart:], rom)
	return nil
}

// LoadFont installs a font table at the given address.
func (m *Memory) LoadFont(address uint16, table []byte) error {
	if err := m.WriteRange(address, table); err != nil {
		return fmt.Errorf("installing font at $%03X: %w", address, err)
	}
	return nil
}

func checkRange(address uint16, n int) error {
	if n < 0 || int(address)+n > MemorySize {
		return fmt.Errorf("%w: $%04X+%d", ErrAddressOutOfRange, address, n)
	}
	return nil
}
