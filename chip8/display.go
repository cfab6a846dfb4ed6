package chip8

import "strings"

// Display resolutions.
const (
	DisplayWidth  = 64
	DisplayHeight = 32

	// HighResWidth and HighResHeight are the SUPER-CHIP extended resolution.
	HighResWidth  = 128
	HighResHeight = 64
)

// Display is a one bit per pixel framebuffer that is only modified by XOR sprite
// drawing, clearing, scrolling and resolution switches.
type Display struct {
	width   int
	height  int
	highRes bool
	cells   []bool
	changed bool
}

// NewDisplay returns a cleared display in the standard 64x32 resolution.
func NewDisplay() *Display {
	d := &Display{}
	d.resize(DisplayWidth, DisplayHeight)
	return d
}

// Width returns the current horizontal resolution.
func (d *Display) Width() int {
	return d.width
}

// Height returns the current vertical resolution.
func (d *Display) Height() int {
	return d.height
}

// HighResolution returns whether the extended resolution is active.
func (d *Display) HighResolution() bool {
	return d.highRes
}

// Clear unsets every pixel.
func (d *Display) Clear() {
	clear(d.cells)
	d.changed = true
}

// SetHighResolution switches between the standard and the extended resolution.
// The display is cleared on every switch.
func (d *Display) SetHighResolution(enabled bool) {
	d.highRes = enabled
	if enabled {
		d.resize(HighResWidth, HighResHeight)
	} else {
		d.resize(DisplayWidth, DisplayHeight)
	}
}

// DrawSprite XORs an 8 pixel wide sprite with one byte per row onto the display.
// The origin is wrapped onto the screen. Pixels crossing the right or bottom edge
// wrap around if wrap is set, otherwise they are clipped.
// It returns whether any set pixel was turned off.
func (d *Display) DrawSprite(x, y int, rows []byte, wrap bool) bool {
	return d.draw(x, y, rows, 8, wrap)
}

// DrawSprite16 XORs a 16 pixel wide SUPER-CHIP sprite with two bytes per row onto
// the display, following the same rules as DrawSprite.
func (d *Display) DrawSprite16(x, y int, rows []byte, wrap bool) bool {
	return d.draw(x, y, rows, 16, wrap)
}

func (d *Display) draw(x, y int, rows []byte, spriteWidth int, wrap bool) bool {
	x %= d.width
	y %= d.height
	bytesPerRow := spriteWidth / 8
	collision := false

	for row := range len(rows) / bytesPerRow {
		py := y + row
		if py >= d.height {
			if !wrap {
				break
			}
			py %= d.height
		}

		for col := range spriteWidth {
			b := rows[row*bytesPerRow+col/8]
			if b&(0x80>>(col%8)) == 0 {
				continue
			}

			px := x + col
			if px >= d.width {
				if !wrap {
					break
				}
				px %= d.width
			}

			index := py*d.width + px
			if d.cells[index] {
				collision = true
			}
			d.cells[index] = !d.cells[index]
		}
	}

	d.changed = true
	return collision
}

// ScrollDown moves the picture down by n rows, the top rows are cleared.
func (d *Display) ScrollDown(n int) {
	if n <= 0 {
		return
	}
	n = min(n, d.height)
	copy(d.cells[n*d.width:], d.cells[:(d.height-n)*d.width])
	clear(d.cells[:n*d.width])
	d.changed = true
}

// ScrollRight moves the picture right by 4 pixels, the left columns are cleared.
func (d *Display) ScrollRight() {
	d.scrollHorizontal(4)
}

// ScrollLeft moves the picture left by 4 pixels, the right columns are cleared.
func (d *Display) ScrollLeft() {
	d.scrollHorizontal(-4)
}

func (d *Display) scrollHorizontal(offset int) {
	for y := range d.height {
		line := d.cells[y*d.width : (y+1)*d.width]
		if offset > 0 {
			copy(line[offset:], line)
			clear(line[:offset])
		} else {
			copy(line, line[-offset:])
			clear(line[d.width+offset:])
		}
	}
	d.changed = true
}

// Snapshot returns a copy of the framebuffer and resets the change flag.
func (d *Display) Snapshot() Snapshot {
	pixels := make([]bool, len(d.cells))
	copy(pixels, d.cells)
	d.changed = false
	return Snapshot{
		Width:  d.width,
		Height: d.height,
		Pixels: pixels,
	}
}

// Changed returns whether the framebuffer was modified since the last snapshot.
func (d *Display) Changed() bool {
	return d.changed
}

func (d *Display) resize(width, height int) {
	d.width = width
	d.height = height
	d.cells = make([]bool, width*height)
	d.changed = true
}

// Snapshot is a read-only copy of the framebuffer, rows stored top to bottom.
type Snapshot struct {
	Width  int
	Height int
	Pixels []bool
}

// Pixel returns whether the pixel at the given position is set. Positions outside
// of the snapshot are reported as unset.
func (s Snapshot) Pixel(x, y int) bool {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return false
	}
	return s.Pixels[y*s.Width+x]
}

// String returns the framebuffer as text, one line per row with '#' for set pixels.
func (s Snapshot) String() string {
	var sb strings.Builder
	sb.Grow((s.Width + 1) * s.Height)
	for y := range s.Height {
		for x := range s.Width {
			if s.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
