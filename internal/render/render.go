// Package render prints interpreter framebuffers to a terminal.
package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/retroenv/retrochip8/chip8"
	"golang.org/x/term"
)

// Style selects the characters used to draw pixels.
type Style int

const (
	// Blocks draws two pixel rows per text line using half block characters.
	Blocks Style = iota
	// ASCII draws one pixel per character using '#' and '.'.
	ASCII
)

type charset struct {
	empty, upper, lower, full rune

	horizontal, vertical                       rune
	topLeft, topRight, bottomLeft, bottomRight rune
}

var charsets = map[Style]charset{
	Blocks: {
		empty: ' ', upper: '▀', lower: '▄', full: '█',
		horizontal: '─', vertical: '│',
		topLeft: '┌', topRight: '┐', bottomLeft: '└', bottomRight: '┘',
	},
	ASCII: {
		empty: '.', upper: '#', full: '#',
		horizontal: '-', vertical: '|',
		topLeft: '+', topRight: '+', bottomLeft: '+', bottomRight: '+',
	},
}

// DetectStyle returns Blocks if the file is a terminal that displays the block
// characters with a width of a single cell, ASCII otherwise.
func DetectStyle(f *os.File) Style {
	if !term.IsTerminal(int(f.Fd())) {
		return ASCII
	}

	cond := runewidth.NewCondition()
	cond.EastAsianWidth = runewidth.IsEastAsian()
	set := charsets[Blocks]
	for _, r := range []rune{set.upper, set.lower, set.full, set.horizontal, set.vertical} {
		if cond.RuneWidth(r) != 1 {
			return ASCII
		}
	}
	return Blocks
}

// Columns returns the number of terminal cells a rendered line of the snapshot needs.
func Columns(snapshot chip8.Snapshot) int {
	return snapshot.Width + 2
}

// FitsTerminal returns whether lines of the given width fit into the terminal.
// Files that are not terminals have no width limit.
func FitsTerminal(f *os.File, columns int) bool {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return true
	}
	return columns <= width
}

// Write renders the snapshot inside a frame. The title is shown in the top
// border and gets truncated if it does not fit.
func Write(w io.Writer, snapshot chip8.Snapshot, style Style, title string) error {
	set, ok := charsets[style]
	if !ok {
		return fmt.Errorf("unsupported render style %d", style)
	}

	buf := bufio.NewWriter(w)
	writeTopBorder(buf, set, snapshot.Width, title)

	step := 1
	if style == Blocks {
		step = 2
	}
	for y := 0; y < snapshot.Height; y += step {
		buf.WriteRune(set.vertical)
		for x := range snapshot.Width {
			buf.WriteRune(pixelRune(set, style, snapshot, x, y))
		}
		buf.WriteRune(set.vertical)
		buf.WriteByte('\n')
	}

	buf.WriteRune(set.bottomLeft)
	buf.WriteString(strings.Repeat(string(set.horizontal), snapshot.Width))
	buf.WriteRune(set.bottomRight)
	buf.WriteByte('\n')

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("writing screen: %w", err)
	}
	return nil
}

func writeTopBorder(buf *bufio.Writer, set charset, width int, title string) {
	if title != "" {
		title = " " + runewidth.Truncate(title, max(width-4, 0), "...") + " "
	}
	fill := max(width-runewidth.StringWidth(title), 0)

	buf.WriteRune(set.topLeft)
	if fill < width {
		buf.WriteRune(set.horizontal)
		buf.WriteString(title)
		fill--
	}
	buf.WriteString(strings.Repeat(string(set.horizontal), max(fill, 0)))
	buf.WriteRune(set.topRight)
	buf.WriteByte('\n')
}

func pixelRune(set charset, style Style, snapshot chip8.Snapshot, x, y int) rune {
	top := snapshot.Pixel(x, y)
	if style != Blocks {
		if top {
			return set.full
		}
		return set.empty
	}

	bottom := snapshot.Pixel(x, y+1)
	switch {
	case top && bottom:
		return set.full
	case top:
		return set.upper
	case bottom:
		return set.lower
	default:
		return set.empty
	}
}
