package chip8

import "errors"

// Errors returned by the interpreter. They are wrapped with context, use errors.Is to
// check for a specific kind.
var (
	ErrInvalidOpcode     = errors.New("invalid opcode")
	ErrStackOverflow     = errors.New("stack overflow")
	ErrStackUnderflow    = errors.New("stack underflow")
	ErrAddressOutOfRange = errors.New("address out of range")
	ErrProgramTooLarge   = errors.New("program too large")
	ErrInvalidKey        = errors.New("invalid key")
	ErrInvalidFont       = errors.New("invalid font table")

	// ErrExit is the halting error of the SUPER-CHIP exit instruction.
	ErrExit = errors.New("program exited")
)
