// Package chip8 implements a CHIP-8 interpreter core with optional SUPER-CHIP support.
//
// The interpreter does not own a clock or a window. A frontend drives it by calling
// Step for every instruction and Tick with the elapsed real time, reports key
// changes through SetKey and reads the framebuffer with Snapshot.
// An Interpreter is not safe for concurrent use.
package chip8

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// State is the execution state of the interpreter.
type State uint8

// Execution states.
const (
	Running State = iota
	WaitingForKey
	Halted
)

var stateNames = map[State]string{
	Running:       "running",
	WaitingForKey: "waiting for key",
	Halted:        "halted",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", s)
}

// Interpreter executes CHIP-8 programs.
type Interpreter struct {
	logger *log.Logger
	quirks Quirks
	trace  bool
	rng    *rand.Rand

	font    []byte
	bigFont []byte

	// flags are the SUPER-CHIP persistent registers, they survive resets.
	flags [NumRegisters]byte

	m *machine
}

// machine contains all state that is reinitialized by a reset.
type machine struct {
	memory  Memory
	v       [NumRegisters]byte
	i       uint16
	pc      uint16
	stack   Stack
	timers  Timers
	display *Display
	keypad  Keypad

	state        State
	waitRegister uint8
	err          error // set when halted

	vblank   bool // a timer tick happened since the last draw
	deferred bool // the last draw waits for the next timer tick
	cycles   uint64
}

// New returns a new interpreter in its reset state with an empty program space.
func New(logger *log.Logger, opts Options) (*Interpreter, error) {
	if logger == nil {
		logger = log.NewWithConfig(log.DefaultConfig())
	}

	font, bigFont, err := opts.fonts()
	if err != nil {
		return nil, err
	}

	ip := &Interpreter{
		logger:  logger,
		quirks:  opts.Quirks,
		trace:   opts.Trace,
		rng:     opts.random(),
		font:    font,
		bigFont: bigFont,
	}

	ip.m, err = ip.newMachine()
	if err != nil {
		return nil, err
	}
	return ip, nil
}

func (ip *Interpreter) newMachine() (*machine, error) {
	m := &machine{
		pc:      ProgramStart,
		display: NewDisplay(),
		state:   Running,
	}
	if err := m.memory.LoadFont(FontAddress, ip.font); err != nil {
		return nil, err
	}
	if err := m.memory.LoadFont(BigFontAddress, ip.bigFont); err != nil {
		return nil, err
	}
	return m, nil
}

// Reset reinitializes memory, registers, timers, display and keypad and removes
// any loaded program. The SUPER-CHIP flag registers are kept.
func (ip *Interpreter) Reset() {
	m, err := ip.newMachine()
	if err != nil {
		// the fonts were validated at construction and always fit
		panic(err)
	}
	ip.m = m
	ip.logger.Debug("Interpreter reset")
}

// LoadProgram resets the machine and loads the ROM at ProgramStart.
// On error the previous state is kept unchanged.
func (ip *Interpreter) LoadProgram(rom []byte) error {
	m, err := ip.newMachine()
	if err != nil {
		return err
	}
	if err := m.memory.LoadProgram(rom); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	ip.m = m
	ip.logger.Debug("Program loaded", log.Int("size", len(rom)))
	return nil
}

// Step executes a single instruction. A halted interpreter returns the halting
// error again, while waiting for a key Step does nothing.
// Any error halts the interpreter without applying effects of the failing instruction.
func (ip *Interpreter) Step() error {
	m := ip.m
	switch m.state {
	case Halted:
		return m.err
	case WaitingForKey:
		return nil
	}

	pc := m.pc
	data, err := m.memory.ReadRange(pc, 2)
	if err != nil {
		return ip.halt(pc, fmt.Errorf("fetching opcode at $%03X: %w", pc, err))
	}
	raw := uint16(data[0])<<8 | uint16(data[1])
	m.pc += 2

	ins, err := Decode(raw, ip.quirks.SuperChip)
	if err == nil {
		if ip.trace {
			ip.logger.Debug("Executing",
				log.Hex("pc", pc),
				log.String("instruction", FormatInstruction(ins)))
		}
		err = handlers[ins.Op](ip, ins)
	}
	if err != nil {
		m.pc = pc
		return ip.halt(pc, fmt.Errorf("executing opcode %04X at $%03X: %w", raw, pc, err))
	}

	if m.deferred {
		m.deferred = false
		return nil
	}
	m.cycles++
	return nil
}

func (ip *Interpreter) halt(pc uint16, err error) error {
	ip.m.state = Halted
	ip.m.err = err
	ip.logger.Debug("Interpreter halted", log.Hex("pc", pc), log.Err(err))
	return err
}

// Tick advances the delay and sound timers by the elapsed real time and returns
// the number of 60 Hz intervals that passed.
func (ip *Interpreter) Tick(elapsed time.Duration) int {
	intervals := ip.m.timers.Tick(elapsed)
	if intervals > 0 {
		ip.m.vblank = true
	}
	return intervals
}

// SetKey reports the state of a key of the hexadecimal keypad. A press edge
// resumes an interpreter that waits for a key and stores the key in the
// waiting register.
func (ip *Interpreter) SetKey(key int, pressed bool) error {
	m := ip.m
	edge, err := m.keypad.Set(key, pressed)
	if err != nil {
		return err
	}
	if edge && m.state == WaitingForKey {
		m.v[m.waitRegister] = byte(key)
		m.state = Running
		ip.logger.Debug("Key wait finished", log.Int("key", key))
	}
	return nil
}

// State returns the execution state.
func (ip *Interpreter) State() State {
	return ip.m.state
}

// Err returns the error that halted the interpreter, or nil.
func (ip *Interpreter) Err() error {
	return ip.m.err
}

// WaitRegister returns the register that receives the key while waiting for a key.
func (ip *Interpreter) WaitRegister() uint8 {
	return ip.m.waitRegister
}

// Registers returns a copy of the register file.
func (ip *Interpreter) Registers() Registers {
	m := ip.m
	return Registers{
		V:     m.v,
		I:     m.i,
		PC:    m.pc,
		SP:    uint8(m.stack.Depth()),
		DT:    m.timers.Delay,
		ST:    m.timers.Sound,
		Stack: m.stack.Entries(),
	}
}

// ReadMemory returns a copy of n bytes of memory starting at address.
func (ip *Interpreter) ReadMemory(address uint16, n int) ([]byte, error) {
	return ip.m.memory.ReadRange(address, n)
}

// Snapshot returns a copy of the framebuffer and resets the display change flag.
func (ip *Interpreter) Snapshot() Snapshot {
	return ip.m.display.Snapshot()
}

// DisplayChanged returns whether the framebuffer changed since the last snapshot.
func (ip *Interpreter) DisplayChanged() bool {
	return ip.m.display.Changed()
}

// SoundActive returns whether the tone should currently be played.
func (ip *Interpreter) SoundActive() bool {
	return ip.m.timers.SoundActive()
}

// Cycles returns the number of instructions executed since the last reset.
// Draws that wait for the display are not counted until they execute.
func (ip *Interpreter) Cycles() uint64 {
	return ip.m.cycles
}

// Quirks returns the quirk configuration.
func (ip *Interpreter) Quirks() Quirks {
	return ip.quirks
}

// String returns a dump of the registers and the execution state.
func (ip *Interpreter) String() string {
	regs := ip.Registers()

	var sb strings.Builder
	fmt.Fprintf(&sb, "PC=$%03X I=$%03X SP=%d DT=%d ST=%d state=%s cycles=%d\n",
		regs.PC, regs.I, regs.SP, regs.DT, regs.ST, ip.m.state, ip.m.cycles)
	for i, value := range regs.V {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "V%X=%02X", i, value)
	}
	sb.WriteByte('\n')
	return sb.String()
}
