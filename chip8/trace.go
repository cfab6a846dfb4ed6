package chip8

import (
	"fmt"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// FormatInstruction returns the assembler notation of an instruction,
// for example "drw V2, V3, $5" or "ld I, $21E".
func FormatInstruction(ins Instruction) string {
	name := instructionName(ins)
	if params := formatParameters(ins); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// instructionName looks up the mnemonic of base instructions in the shared
// CHIP-8 opcode table and falls back to the variant name for the extension.
func instructionName(ins Instruction) string {
	if ins.Op.Extended() {
		return ins.Op.String()
	}

	opcodes := chip8cpu.Opcodes[int(ins.Raw>>12)]
	for _, op := range opcodes {
		if op.Instruction != nil && op.Info.Mask&ins.Raw == op.Info.Value {
			return op.Instruction.Name
		}
	}
	return ins.Op.String()
}

func formatParameters(ins Instruction) string {
	x, y := ins.X(), ins.Y()

	switch ins.Op {
	case OpCls, OpRet, OpScr, OpScl, OpExit, OpLow, OpHigh:
		return ""

	case OpSys, OpJp, OpCall:
		return fmt.Sprintf("$%03X", ins.NNN())
	case OpJpV0:
		return fmt.Sprintf("V0, $%03X", ins.NNN())
	case OpLdI:
		return fmt.Sprintf("I, $%03X", ins.NNN())

	case OpSeByte, OpSneByte, OpLdByte, OpAddByte, OpRnd:
		return fmt.Sprintf("V%X, $%02X", x, ins.NN())

	case OpSeReg, OpSneReg, OpLdReg, OpOr, OpAnd, OpXor, OpAddReg, OpSub, OpSubn:
		return fmt.Sprintf("V%X, V%X", x, y)

	case OpShr, OpShl, OpSkp, OpSknp:
		return fmt.Sprintf("V%X", x)

	case OpDrw, OpDrw16:
		return fmt.Sprintf("V%X, V%X, $%X", x, y, ins.N())
	case OpScd:
		return fmt.Sprintf("$%X", ins.N())

	case OpLdVxDT:
		return fmt.Sprintf("V%X, DT", x)
	case OpLdVxK:
		return fmt.Sprintf("V%X, K", x)
	case OpLdDTVx:
		return fmt.Sprintf("DT, V%X", x)
	case OpLdSTVx:
		return fmt.Sprintf("ST, V%X", x)
	case OpAddIVx:
		return fmt.Sprintf("I, V%X", x)
	case OpLdF:
		return fmt.Sprintf("F, V%X", x)
	case OpLdHF:
		return fmt.Sprintf("HF, V%X", x)
	case OpLdB:
		return fmt.Sprintf("B, V%X", x)
	case OpStore:
		return fmt.Sprintf("[I], V%X", x)
	case OpLoad:
		return fmt.Sprintf("V%X, [I]", x)
	case OpStoreR:
		return fmt.Sprintf("R, V%X", x)
	case OpLoadR:
		return fmt.Sprintf("V%X, R", x)
	}
	return ""
}
