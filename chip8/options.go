package chip8

import (
	"fmt"
	"math/rand/v2"
)

// Options configures an interpreter. The zero value is valid and uses no quirks,
// the default fonts and a randomly seeded generator.
type Options struct {
	Quirks Quirks

	// Font is the 80 byte table of the 16 small hexadecimal glyphs, nil selects DefaultFont.
	Font []byte

	// BigFont is the 160 byte table of the 16 large SUPER-CHIP glyphs, nil selects DefaultBigFont.
	BigFont []byte

	// Rand is the source for the random instruction, nil selects a randomly seeded source.
	Rand rand.Source

	// Trace logs every executed instruction at debug level.
	Trace bool
}

// NewOptions returns the options with the default quirk configuration.
func NewOptions() Options {
	return Options{
		Quirks: DefaultQuirks(),
	}
}

// fonts returns the font tables to install, validating custom tables.
func (o Options) fonts() ([]byte, []byte, error) {
	font := o.Font
	if font == nil {
		font = DefaultFont()
	} else if len(font) != FontSize {
		return nil, nil, fmt.Errorf("%w: font has %d bytes instead of %d", ErrInvalidFont, len(font), FontSize)
	}

	bigFont := o.BigFont
	if bigFont == nil {
		bigFont = DefaultBigFont()
	} else if len(bigFont) != BigFontSize {
		return nil, nil, fmt.Errorf("%w: big font has %d bytes instead of %d", ErrInvalidFont, len(bigFont), BigFontSize)
	}

	// copies keep later changes of the caller's slices from leaking into resets
	return append([]byte(nil), font...), append([]byte(nil), bigFont...), nil
}

func (o Options) random() *rand.Rand {
	src := o.Rand
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return rand.New(src)
}
