package chip8

import "fmt"

const (
	// NumRegisters is the number of general purpose V registers.
	NumRegisters = 16

	// FlagRegister is the index of VF, which receives carry, borrow, shift and collision flags.
	FlagRegister = 0xF

	// StackSize is the maximum call depth.
	StackSize = 16
)

// Registers is a read-only copy of the register file, returned by Interpreter.Registers.
type Registers struct {
	V     [NumRegisters]byte
	I     uint16
	PC    uint16
	SP    uint8
	DT    byte
	ST    byte
	Stack []uint16 // return addresses, oldest first
}

// Stack is the bounded call stack of return addresses.
type Stack struct {
	entries [StackSize]uint16
	depth   uint8
}

// Push adds a return address. It fails without modifying the stack if it is full.
func (s *Stack) Push(address uint16) error {
	if s.depth >= StackSize {
		return fmt.Errorf("%w: pushing $%03X with %d entries", ErrStackOverflow, address, s.depth)
	}
	s.entries[s.depth] = address
	s.depth++
	return nil
}

// Pop removes and returns the most recently pushed return address.
func (s *Stack) Pop() (uint16, error) {
	if s.depth == 0 {
		return 0, ErrStackUnderflow
	}
	s.depth--
	return s.entries[s.depth], nil
}

// Depth returns the number of entries on the stack, which is also the stack pointer.
func (s *Stack) Depth() int {
	return int(s.depth)
}

// Entries returns a copy of the current stack content, oldest entry first.
func (s *Stack) Entries() []uint16 {
	entries := make([]uint16, s.depth)
	copy(entries, s.entries[:s.depth])
	return entries
}
