package chip8

import "fmt"

// Op identifies a decoded instruction variant.
type Op uint8

// Instruction variants of the base CHIP-8 set followed by the SUPER-CHIP extension.
const (
	OpSys     Op = iota // 0NNN
	OpCls               // 00E0
	OpRet               // 00EE
	OpJp                // 1NNN
	OpCall              // 2NNN
	OpSeByte            // 3XNN
	OpSneByte           // 4XNN
	OpSeReg             // 5XY0
	OpLdByte            // 6XNN
	OpAddByte           // 7XNN
	OpLdReg             // 8XY0
	OpOr                // 8XY1
	OpAnd               // 8XY2
	OpXor               // 8XY3
	OpAddReg            // 8XY4
	OpSub               // 8XY5
	OpShr               // 8XY6
	OpSubn              // 8XY7
	OpShl               // 8XYE
	OpSneReg            // 9XY0
	OpLdI               // ANNN
	OpJpV0              // BNNN
	OpRnd               // CXNN
	OpDrw               // DXYN
	OpSkp               // EX9E
	OpSknp              // EXA1
	OpLdVxDT            // FX07
	OpLdVxK             // FX0A
	OpLdDTVx            // FX15
	OpLdSTVx            // FX18
	OpAddIVx            // FX1E
	OpLdF               // FX29
	OpLdB               // FX33
	OpStore             // FX55
	OpLoad              // FX65

	OpScd    // 00CN
	OpScr    // 00FB
	OpScl    // 00FC
	OpExit   // 00FD
	OpLow    // 00FE
	OpHigh   // 00FF
	OpDrw16  // DXY0
	OpLdHF   // FX30
	OpStoreR // FX75
	OpLoadR  // FX85

	opCount
)

var opNames = [opCount]string{
	OpSys:     "sys",
	OpCls:     "cls",
	OpRet:     "ret",
	OpJp:      "jp",
	OpCall:    "call",
	OpSeByte:  "se",
	OpSneByte: "sne",
	OpSeReg:   "se",
	OpLdByte:  "ld",
	OpAddByte: "add",
	OpLdReg:   "ld",
	OpOr:      "or",
	OpAnd:     "and",
	OpXor:     "xor",
	OpAddReg:  "add",
	OpSub:     "sub",
	OpShr:     "shr",
	OpSubn:    "subn",
	OpShl:     "shl",
	OpSneReg:  "sne",
	OpLdI:     "ld",
	OpJpV0:    "jp",
	OpRnd:     "rnd",
	OpDrw:     "drw",
	OpSkp:     "skp",
	OpSknp:    "sknp",
	OpLdVxDT:  "ld",
	OpLdVxK:   "ld",
	OpLdDTVx:  "ld",
	OpLdSTVx:  "ld",
	OpAddIVx:  "add",
	OpLdF:     "ld",
	OpLdB:     "ld",
	OpStore:   "ld",
	OpLoad:    "ld",
	OpScd:     "scd",
	OpScr:     "scr",
	OpScl:     "scl",
	OpExit:    "exit",
	OpLow:     "low",
	OpHigh:    "high",
	OpDrw16:   "drw",
	OpLdHF:    "ld",
	OpStoreR:  "ld",
	OpLoadR:   "ld",
}

// String returns the assembler mnemonic of the variant.
func (o Op) String() string {
	if o >= opCount {
		return fmt.Sprintf("op(%d)", o)
	}
	return opNames[o]
}

// Extended returns whether the variant belongs to the SUPER-CHIP extension.
func (o Op) Extended() bool {
	return o >= OpScd && o < opCount
}

// Instruction is a decoded opcode. The operand accessors extract the nibble
// fields of the raw 16 bit opcode.
type Instruction struct {
	Raw uint16
	Op  Op
}

// X returns the register index in the second nibble.
func (i Instruction) X() uint8 {
	return uint8(i.Raw>>8) & 0xF
}

// Y returns the register index in the third nibble.
func (i Instruction) Y() uint8 {
	return uint8(i.Raw>>4) & 0xF
}

// N returns the lowest nibble.
func (i Instruction) N() uint8 {
	return uint8(i.Raw) & 0xF
}

// NN returns the low byte.
func (i Instruction) NN() byte {
	return byte(i.Raw)
}

// NNN returns the 12 bit address.
func (i Instruction) NNN() uint16 {
	return i.Raw & 0x0FFF
}

// decoder maps an opcode of one high nibble family to its variant.
type decoder func(raw uint16, superChip bool) (Op, bool)

// decoders has one entry per high nibble, all 16 families are covered.
var decoders = [16]decoder{
	0x0: decodeSystem,
	0x1: always(OpJp),
	0x2: always(OpCall),
	0x3: always(OpSeByte),
	0x4: always(OpSneByte),
	0x5: lowNibbleZero(OpSeReg),
	0x6: always(OpLdByte),
	0x7: always(OpAddByte),
	0x8: decodeArithmetic,
	0x9: lowNibbleZero(OpSneReg),
	0xA: always(OpLdI),
	0xB: always(OpJpV0),
	0xC: always(OpRnd),
	0xD: decodeDraw,
	0xE: decodeKey,
	0xF: decodeMisc,
}

// Decode translates an opcode into an instruction variant. The SUPER-CHIP
// variants are only recognized if superChip is set.
func Decode(raw uint16, superChip bool) (Instruction, error) {
	op, ok := decoders[raw>>12](raw, superChip)
	if !ok {
		return Instruction{}, fmt.Errorf("%w: %04X", ErrInvalidOpcode, raw)
	}
	return Instruction{Raw: raw, Op: op}, nil
}

func always(op Op) decoder {
	return func(uint16, bool) (Op, bool) {
		return op, true
	}
}

func lowNibbleZero(op Op) decoder {
	return func(raw uint16, _ bool) (Op, bool) {
		return op, raw&0xF == 0
	}
}

func decodeSystem(raw uint16, superChip bool) (Op, bool) {
	switch raw {
	case 0x00E0:
		return OpCls, true
	case 0x00EE:
		return OpRet, true
	}
	if !superChip {
		return OpSys, true
	}

	switch {
	case raw&0xFFF0 == 0x00C0:
		return OpScd, true
	case raw == 0x00FB:
		return OpScr, true
	case raw == 0x00FC:
		return OpScl, true
	case raw == 0x00FD:
		return OpExit, true
	case raw == 0x00FE:
		return OpLow, true
	case raw == 0x00FF:
		return OpHigh, true
	}
	return OpSys, true
}

func decodeArithmetic(raw uint16, _ bool) (Op, bool) {
	switch raw & 0xF {
	case 0x0:
		return OpLdReg, true
	case 0x1:
		return OpOr, true
	case 0x2:
		return OpAnd, true
	case 0x3:
		return OpXor, true
	case 0x4:
		return OpAddReg, true
	case 0x5:
		return OpSub, true
	case 0x6:
		return OpShr, true
	case 0x7:
		return OpSubn, true
	case 0xE:
		return OpShl, true
	}
	return 0, false
}

func decodeDraw(raw uint16, superChip bool) (Op, bool) {
	if superChip && raw&0xF == 0 {
		return OpDrw16, true
	}
	return OpDrw, true
}

func decodeKey(raw uint16, _ bool) (Op, bool) {
	switch raw & 0xFF {
	case 0x9E:
		return OpSkp, true
	case 0xA1:
		return OpSknp, true
	}
	return 0, false
}

func decodeMisc(raw uint16, superChip bool) (Op, bool) {
	switch raw & 0xFF {
	case 0x07:
		return OpLdVxDT, true
	case 0x0A:
		return OpLdVxK, true
	case 0x15:
		return OpLdDTVx, true
	case 0x18:
		return OpLdSTVx, true
	case 0x1E:
		return OpAddIVx, true
	case 0x29:
		return OpLdF, true
	case 0x33:
		return OpLdB, true
	case 0x55:
		return OpStore, true
	case 0x65:
		return OpLoad, true
	case 0x30:
		return OpLdHF, superChip
	case 0x75:
		return OpStoreR, superChip
	case 0x85:
		return OpLoadR, superChip
	}
	return 0, false
}
