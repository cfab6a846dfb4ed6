package chip8

import "github.com/retroenv/retrogolib/log"

// handler executes one decoded instruction. It has to validate every access before
// changing any state so that a failing instruction has no effect.
type handler func(ip *Interpreter, ins Instruction) error

// handlers maps every instruction variant to its implementation.
var handlers = [opCount]handler{
	OpSys:     (*Interpreter).sys,
	OpCls:     (*Interpreter).cls,
	OpRet:     (*Interpreter).ret,
	OpJp:      (*Interpreter).jp,
	OpCall:    (*Interpreter).call,
	OpSeByte:  (*Interpreter).seByte,
	OpSneByte: (*Interpreter).sneByte,
	OpSeReg:   (*Interpreter).seReg,
	OpLdByte:  (*Interpreter).ldByte,
	OpAddByte: (*Interpreter).addByte,
	OpLdReg:   (*Interpreter).ldReg,
	OpOr:      (*Interpreter).or,
	OpAnd:     (*Interpreter).and,
	OpXor:     (*Interpreter).xor,
	OpAddReg:  (*Interpreter).addReg,
	OpSub:     (*Interpreter).sub,
	OpShr:     (*Interpreter).shr,
	OpSubn:    (*Interpreter).subn,
	OpShl:     (*Interpreter).shl,
	OpSneReg:  (*Interpreter).sneReg,
	OpLdI:     (*Interpreter).ldI,
	OpJpV0:    (*Interpreter).jpV0,
	OpRnd:     (*Interpreter).rnd,
	OpDrw:     (*Interpreter).drw,
	OpSkp:     (*Interpreter).skp,
	OpSknp:    (*Interpreter).sknp,
	OpLdVxDT:  (*Interpreter).ldVxDT,
	OpLdVxK:   (*Interpreter).ldVxK,
	OpLdDTVx:  (*Interpreter).ldDTVx,
	OpLdSTVx:  (*Interpreter).ldSTVx,
	OpAddIVx:  (*Interpreter).addIVx,
	OpLdF:     (*Interpreter).ldF,
	OpLdB:     (*Interpreter).ldB,
	OpStore:   (*Interpreter).store,
	OpLoad:    (*Interpreter).load,
	OpScd:     (*Interpreter).scd,
	OpScr:     (*Interpreter).scr,
	OpScl:     (*Interpreter).scl,
	OpExit:    (*Interpreter).exit,
	OpLow:     (*Interpreter).low,
	OpHigh:    (*Interpreter).high,
	OpDrw16:   (*Interpreter).drw16,
	OpLdHF:    (*Interpreter).ldHF,
	OpStoreR:  (*Interpreter).storeR,
	OpLoadR:   (*Interpreter).loadR,
}

// sys calls a machine code routine of the host CPU, which is not available.
func (ip *Interpreter) sys(Instruction) error {
	return nil
}

func (ip *Interpreter) cls(Instruction) error {
	ip.m.display.Clear()
	return nil
}

func (ip *Interpreter) ret(Instruction) error {
	address, err := ip.m.stack.Pop()
	if err != nil {
		return err
	}
	ip.m.pc = address
	return nil
}

func (ip *Interpreter) jp(ins Instruction) error {
	ip.m.pc = ins.NNN()
	return nil
}

// call pushes the already advanced program counter as return address.
func (ip *Interpreter) call(ins Instruction) error {
	if err := ip.m.stack.Push(ip.m.pc); err != nil {
		return err
	}
	ip.m.pc = ins.NNN()
	return nil
}

func (ip *Interpreter) seByte(ins Instruction) error {
	ip.skipIf(ip.m.v[ins.X()] == ins.NN())
	return nil
}

func (ip *Interpreter) sneByte(ins Instruction) error {
	ip.skipIf(ip.m.v[ins.X()] != ins.NN())
	return nil
}

func (ip *Interpreter) seReg(ins Instruction) error {
	ip.skipIf(ip.m.v[ins.X()] == ip.m.v[ins.Y()])
	return nil
}

func (ip *Interpreter) sneReg(ins Instruction) error {
	ip.skipIf(ip.m.v[ins.X()] != ip.m.v[ins.Y()])
	return nil
}

func (ip *Interpreter) skipIf(condition bool) {
	if condition {
		ip.m.pc += 2
	}
}

func (ip *Interpreter) ldByte(ins Instruction) error {
	ip.m.v[ins.X()] = ins.NN()
	return nil
}

func (ip *Interpreter) addByte(ins Instruction) error {
	ip.m.v[ins.X()] += ins.NN()
	return nil
}

func (ip *Interpreter) ldReg(ins Instruction) error {
	ip.m.v[ins.X()] = ip.m.v[ins.Y()]
	return nil
}

func (ip *Interpreter) or(ins Instruction) error {
	ip.m.v[ins.X()] |= ip.m.v[ins.Y()]
	ip.resetLogicFlag()
	return nil
}

func (ip *Interpreter) and(ins Instruction) error {
	ip.m.v[ins.X()] &= ip.m.v[ins.Y()]
	ip.resetLogicFlag()
	return nil
}

func (ip *Interpreter) xor(ins Instruction) error {
	ip.m.v[ins.X()] ^= ip.m.v[ins.Y()]
	ip.resetLogicFlag()
	return nil
}

func (ip *Interpreter) resetLogicFlag() {
	if ip.quirks.LogicResetsFlag {
		ip.m.v[FlagRegister] = 0
	}
}

// The arithmetic instructions write VX before VF, so if VF is the destination
// it ends up holding the flag.

func (ip *Interpreter) addReg(ins Instruction) error {
	v := &ip.m.v
	sum := uint16(v[ins.X()]) + uint16(v[ins.Y()])
	v[ins.X()] = byte(sum)
	v[FlagRegister] = flag(sum > 0xFF)
	return nil
}

func (ip *Interpreter) sub(ins Instruction) error {
	v := &ip.m.v
	x, y := v[ins.X()], v[ins.Y()]
	v[ins.X()] = x - y
	v[FlagRegister] = flag(x >= y)
	return nil
}

func (ip *Interpreter) subn(ins Instruction) error {
	v := &ip.m.v
	x, y := v[ins.X()], v[ins.Y()]
	v[ins.X()] = y - x
	v[FlagRegister] = flag(y >= x)
	return nil
}

func (ip *Interpreter) shr(ins Instruction) error {
	source := ip.shiftSource(ins)
	ip.m.v[ins.X()] = source >> 1
	ip.m.v[FlagRegister] = source & 1
	return nil
}

func (ip *Interpreter) shl(ins Instruction) error {
	source := ip.shiftSource(ins)
	ip.m.v[ins.X()] = source << 1
	ip.m.v[FlagRegister] = source >> 7
	return nil
}

func (ip *Interpreter) shiftSource(ins Instruction) byte {
	if ip.quirks.ShiftUsesSecondOperand {
		return ip.m.v[ins.Y()]
	}
	return ip.m.v[ins.X()]
}

func (ip *Interpreter) ldI(ins Instruction) error {
	ip.m.i = ins.NNN()
	return nil
}

// jpV0 jumps to NNN plus V0, or plus VX on CHIP-48 where the high nibble of
// the address doubles as register index. The target is masked to 12 bits.
func (ip *Interpreter) jpV0(ins Instruction) error {
	register := uint8(0)
	if ip.quirks.JumpUsesHighNibbleRegister {
		register = ins.X()
	}
	ip.m.pc = (ins.NNN() + uint16(ip.m.v[register])) & MaxAddress
	return nil
}

func (ip *Interpreter) rnd(ins Instruction) error {
	ip.m.v[ins.X()] = byte(ip.rng.Uint32()) & ins.NN()
	return nil
}

func (ip *Interpreter) drw(ins Instruction) error {
	return ip.draw(ins, int(ins.N()), false)
}

// drw16 draws a 16x16 sprite of 32 bytes.
func (ip *Interpreter) drw16(ins Instruction) error {
	return ip.draw(ins, 32, true)
}

func (ip *Interpreter) draw(ins Instruction, size int, wide bool) error {
	m := ip.m
	if ip.quirks.DisplayWait && !m.vblank {
		m.pc -= 2 // retry on the next step
		m.deferred = true
		return nil
	}

	rows, err := m.memory.ReadRange(m.i, size)
	if err != nil {
		return err
	}

	x, y := int(m.v[ins.X()]), int(m.v[ins.Y()])
	var collision bool
	if wide {
		collision = m.display.DrawSprite16(x, y, rows, ip.quirks.SpriteWrap)
	} else {
		collision = m.display.DrawSprite(x, y, rows, ip.quirks.SpriteWrap)
	}
	m.v[FlagRegister] = flag(collision)
	m.vblank = false
	return nil
}

func (ip *Interpreter) skp(ins Instruction) error {
	ip.skipIf(ip.m.keypad.Pressed(ip.m.v[ins.X()]))
	return nil
}

func (ip *Interpreter) sknp(ins Instruction) error {
	ip.skipIf(!ip.m.keypad.Pressed(ip.m.v[ins.X()]))
	return nil
}

func (ip *Interpreter) ldVxDT(ins Instruction) error {
	ip.m.v[ins.X()] = ip.m.timers.Delay
	return nil
}

// ldVxK suspends execution until a key edge is reported through SetKey.
func (ip *Interpreter) ldVxK(ins Instruction) error {
	ip.m.state = WaitingForKey
	ip.m.waitRegister = ins.X()
	ip.logger.Debug("Waiting for key", log.Uint8("register", ins.X()))
	return nil
}

func (ip *Interpreter) ldDTVx(ins Instruction) error {
	ip.m.timers.Delay = ip.m.v[ins.X()]
	return nil
}

func (ip *Interpreter) ldSTVx(ins Instruction) error {
	ip.m.timers.Sound = ip.m.v[ins.X()]
	return nil
}

// addIVx does not modify VF.
func (ip *Interpreter) addIVx(ins Instruction) error {
	ip.m.i += uint16(ip.m.v[ins.X()])
	return nil
}

func (ip *Interpreter) ldF(ins Instruction) error {
	ip.m.i = FontAddress + fontGlyphSize*uint16(ip.m.v[ins.X()]&0xF)
	return nil
}

func (ip *Interpreter) ldB(ins Instruction) error {
	value := ip.m.v[ins.X()]
	digits := []byte{value / 100, value / 10 % 10, value % 10}
	return ip.m.memory.WriteRange(ip.m.i, digits)
}

func (ip *Interpreter) store(ins Instruction) error {
	count := int(ins.X()) + 1
	if err := ip.m.memory.WriteRange(ip.m.i, ip.m.v[:count]); err != nil {
		return err
	}
	ip.advanceIndex(count)
	return nil
}

func (ip *Interpreter) load(ins Instruction) error {
	count := int(ins.X()) + 1
	data, err := ip.m.memory.ReadRange(ip.m.i, count)
	if err != nil {
		return err
	}
	copy(ip.m.v[:], data)
	ip.advanceIndex(count)
	return nil
}

func (ip *Interpreter) advanceIndex(count int) {
	if ip.quirks.LoadStoreIncrementsIndex {
		ip.m.i += uint16(count)
	}
}

func (ip *Interpreter) scd(ins Instruction) error {
	ip.m.display.ScrollDown(int(ins.N()))
	return nil
}

func (ip *Interpreter) scr(Instruction) error {
	ip.m.display.ScrollRight()
	return nil
}

func (ip *Interpreter) scl(Instruction) error {
	ip.m.display.ScrollLeft()
	return nil
}

func (ip *Interpreter) exit(Instruction) error {
	return ErrExit
}

func (ip *Interpreter) low(Instruction) error {
	ip.setResolution(false)
	return nil
}

func (ip *Interpreter) high(Instruction) error {
	ip.setResolution(true)
	return nil
}

func (ip *Interpreter) setResolution(highRes bool) {
	ip.m.display.SetHighResolution(highRes)
	ip.logger.Debug("Switched resolution",
		log.Int("width", ip.m.display.Width()),
		log.Int("height", ip.m.display.Height()))
}

func (ip *Interpreter) ldHF(ins Instruction) error {
	ip.m.i = BigFontAddress + bigFontGlyphSize*uint16(ip.m.v[ins.X()]&0xF)
	return nil
}

// storeR saves V0..VX to the flag registers, which are not cleared by a reset.
func (ip *Interpreter) storeR(ins Instruction) error {
	copy(ip.flags[:ins.X()+1], ip.m.v[:ins.X()+1])
	return nil
}

func (ip *Interpreter) loadR(ins Instruction) error {
	copy(ip.m.v[:ins.X()+1], ip.flags[:ins.X()+1])
	return nil
}

func flag(set bool) byte {
	if set {
		return 1
	}
	return 0
}
