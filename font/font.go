// Package font contains the fixed-width bitmap fonts used by the ILI9341 text renderer.
//
// A glyph is stored row-major, most significant bit first, and padded to a whole number
// of 32-bit words. A set bit is a foreground pixel.
package font

import (
	"errors"
	"fmt"
	"math/bits"
)

// Printable ASCII range covered by every font.
const (
	FirstRune = 32
	LastRune  = 126
	NumGlyphs = LastRune - FirstRune + 1
)

// Errors
var (
	ErrGlyphSize = errors.New("font: glyph size is invalid")
)

// Font is a fixed-width bitmap font.
type Font struct {
	// Name of the font.
	Name string

	// Width of a glyph in pixels.
	Width int

	// Height of a glyph in pixels.
	Height int

	// IntsPerGlyph is the number of 32-bit words used by each glyph.
	IntsPerGlyph int

	// Data contains the glyph bits for all runes from FirstRune to LastRune.
	Data []uint32
}

func (f *Font) String() string {
	return fmt.Sprintf("%s %dx%d", f.Name, f.Width, f.Height)
}

// Validate checks that the glyph table is consistent with the glyph dimensions.
func (f *Font) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrGlyphSize, f.Width, f.Height)
	}
	if need := (f.Width*f.Height + 31) / 32; f.IntsPerGlyph < need {
		return fmt.Errorf("font: %s needs %d words per glyph, has %d", f.Name, need, f.IntsPerGlyph)
	}
	if need := NumGlyphs * f.IntsPerGlyph; len(f.Data) < need {
		return fmt.Errorf("font: %s needs %d words of glyph data, has %d", f.Name, need, len(f.Data))
	}
	return nil
}

// Glyph returns a cursor over the bits of the glyph for r. Runes outside of the printable ASCII
// range use the space glyph.
func (f *Font) Glyph(r rune) Cursor {
	return f.ScaledGlyph(r, 1)
}

// ScaledGlyph returns a cursor that yields every glyph bit as a scale×scale block.
func (f *Font) ScaledGlyph(r rune, scale int) Cursor {
	if r < FirstRune || r > LastRune {
		r = ' '
	}
	var (
		start = int(r-FirstRune) * f.IntsPerGlyph
		end   = start + f.IntsPerGlyph
	)
	if end > len(f.Data) {
		end = len(f.Data)
	}
	if start > end {
		start = end
	}
	if scale < 0 {
		scale = 0
	}
	return Cursor{
		data:   f.Data[start:end],
		width:  f.Width,
		height: f.Height,
		scale:  scale,
		mask:   1 << 31,
	}
}

// Cursor walks the bits of one glyph in row-major order.
//
// With a scale above one, every source bit is repeated scale times horizontally, and every
// source row is walked again for each of its scale vertical replicas.
type Cursor struct {
	data          []uint32
	width, height int
	scale         int

	// Position of the current bit in data.
	index int
	mask  uint32

	started bool
	x, y    int // destination pixel
	col     int // source column
	hrep    int // horizontal replica of the source bit
	vrep    int // vertical replica of the source row
}

// Size returns the scaled glyph size in pixels.
func (c *Cursor) Size() (w, h int) {
	return c.width * c.scale, c.height * c.scale
}

// Next advances the cursor to the next destination pixel. It returns false once the glyph
// is exhausted.
func (c *Cursor) Next() bool {
	if !c.started {
		c.started = true
	} else if c.y < c.height*c.scale {
		c.advance()
	}
	return c.width > 0 && c.scale > 0 && c.y < c.height*c.scale
}

// Pos returns the destination pixel of the current bit, relative to the glyph origin.
func (c *Cursor) Pos() (x, y int) {
	return c.x, c.y
}

// On reports whether the current bit is a foreground pixel.
func (c *Cursor) On() bool {
	if c.index >= len(c.data) {
		return false
	}
	return c.data[c.index]&c.mask != 0
}

// Reset rewinds the cursor to the first bit of the glyph.
func (c *Cursor) Reset() {
	*c = Cursor{
		data:   c.data,
		width:  c.width,
		height: c.height,
		scale:  c.scale,
		mask:   1 << 31,
	}
}

func (c *Cursor) advance() {
	c.x++
	if c.hrep++; c.hrep < c.scale {
		return
	}
	c.hrep = 0
	c.step()
	if c.col++; c.col < c.width {
		return
	}

	// End of a destination row.
	c.col = 0
	c.x = 0
	c.y++
	if c.vrep++; c.vrep < c.scale {
		c.rewind(c.width)
	} else {
		c.vrep = 0
	}
}

// step moves to the next source bit.
func (c *Cursor) step() {
	c.mask >>= 1
	if c.mask == 0 {
		c.index++
		c.mask = 1 << 31
	}
}

// rewind moves n source bits back.
func (c *Cursor) rewind(n int) {
	pos := c.index*32 + bits.LeadingZeros32(c.mask) - n
	if pos < 0 {
		pos = 0
	}
	c.index = pos / 32
	c.mask = 1 << 31 >> uint(pos%32)
}
