package chip8

import (
	"fmt"
	"strings"
)

// Quirks selects the behavior where historical CHIP-8 implementations diverge.
// The configuration is copied at construction and can not be changed afterwards.
type Quirks struct {
	// ShiftUsesSecondOperand makes 8XY6/8XYE shift VY and store the result in VX,
	// instead of shifting VX in place.
	ShiftUsesSecondOperand bool

	// LoadStoreIncrementsIndex leaves I pointing after the transferred range
	// for FX55/FX65.
	LoadStoreIncrementsIndex bool

	// JumpUsesHighNibbleRegister makes BNNN add VX instead of V0 to the address.
	JumpUsesHighNibbleRegister bool

	// SpriteWrap wraps sprite pixels around the screen edges instead of clipping them.
	SpriteWrap bool

	// LogicResetsFlag clears VF after 8XY1/8XY2/8XY3.
	LogicResetsFlag bool

	// DisplayWait limits sprite drawing to one draw per timer tick, modelling the
	// vertical blank synchronization of the COSMAC VIP.
	DisplayWait bool

	// SuperChip enables the SUPER-CHIP instructions and the 128x64 resolution.
	SuperChip bool
}

// Preset names accepted by QuirksForPreset.
const (
	PresetDefault   = "default"
	PresetVIP       = "vip"
	PresetCHIP48    = "chip48"
	PresetSuperChip = "schip"
)

// DefaultQuirks returns the configuration used when nothing else is selected.
// Only sprite wrapping is enabled, the logic flag reset is opt-in.
func DefaultQuirks() Quirks {
	return Quirks{
		SpriteWrap: true,
	}
}

// VIPQuirks returns the behavior of the original COSMAC VIP interpreter.
func VIPQuirks() Quirks {
	return Quirks{
		ShiftUsesSecondOperand:   true,
		LoadStoreIncrementsIndex: true,
		LogicResetsFlag:          true,
		DisplayWait:              true,
	}
}

// CHIP48Quirks returns the behavior of the HP-48 CHIP-48 interpreter.
func CHIP48Quirks() Quirks {
	return Quirks{
		JumpUsesHighNibbleRegister: true,
	}
}

// SuperChipQuirks returns the behavior of SUPER-CHIP 1.1 including its extended instructions.
func SuperChipQuirks() Quirks {
	return Quirks{
		JumpUsesHighNibbleRegister: true,
		SuperChip:                  true,
	}
}

// Presets returns the names of all quirk presets.
func Presets() []string {
	return []string{PresetDefault, PresetVIP, PresetCHIP48, PresetSuperChip}
}

// QuirksForPreset returns the quirk configuration of a named preset.
// Names are case insensitive, "chip8" is an alias of "vip" and "superchip" of "schip".
func QuirksForPreset(name string) (Quirks, error) {
	switch strings.ToLower(name) {
	case PresetDefault, "":
		return DefaultQuirks(), nil
	case PresetVIP, "chip8":
		return VIPQuirks(), nil
	case PresetCHIP48:
		return CHIP48Quirks(), nil
	case PresetSuperChip, "superchip":
		return SuperChipQuirks(), nil
	default:
		return Quirks{}, fmt.Errorf("unsupported quirk preset '%s', valid options: %s",
			name, strings.Join(Presets(), ", "))
	}
}
