package ili9341

import (
	"image"
	"strings"
	"unicode/utf8"

	"github.com/BeatGlow/ili9341/font"
	"github.com/BeatGlow/ili9341/pixel"
)

// TextStyle describes how DrawText renders a string.
type TextStyle struct {
	// Font to use, defaults to font.Font7x13.
	Font *font.Font

	// Color of the glyph pixels.
	Color pixel.RGB565

	// Background of the glyph cells, unless Transparent is set.
	Background pixel.RGB565

	// Transparent leaves the background pixels untouched.
	Transparent bool

	// Scale is the integer magnification of the font, a scale of 0 draws nothing.
	Scale int

	// Tracking is the extra space between glyphs in pixels.
	Tracking int

	// Leading is the extra space between lines in pixels.
	Leading int

	// Wrap starts a new line before a glyph that would cross the right edge of the display.
	Wrap bool
}

func (s TextStyle) font() *font.Font {
	if s.Font == nil {
		return font.Font7x13
	}
	return s.Font
}

// DrawText renders s with its top-left corner at (x, y). A newline moves the pen back to x,
// one line down. Without Wrap, glyphs that start past the right edge are skipped up to the
// next newline. Rendering ends at the bottom of the display.
func (d *Device) DrawText(x, y int, s string, style TextStyle) {
	d.begin()
	d.drawText(x, y, s, style)
	d.end()
}

func (d *Device) drawText(x, y int, s string, style TextStyle) {
	var (
		f      = style.font()
		scale  = abs(style.Scale)
		gw     = f.Width * scale
		gh     = f.Height * scale
		startX = x
		skip   bool
	)
	if scale == 0 {
		return
	}
	for _, r := range s {
		if y >= d.state.height {
			return
		}
		if r == '\n' {
			x, y = startX, y+gh+style.Leading
			skip = false
			continue
		}
		if skip {
			continue
		}
		if style.Wrap && x+gw > d.state.width {
			if x <= startX {
				// Does not fit on any line.
				return
			}
			x, y = startX, y+gh+style.Leading
			if y >= d.state.height || x+gw > d.state.width {
				return
			}
		}
		if x >= d.state.width {
			skip = true
			continue
		}

		switch {
		case !style.Transparent:
			d.writeChar(x, y, r, f, style.Color, style.Background, scale)
		case scale == 1:
			d.writeCharTransparent(x, y, r, f, style.Color)
		default:
			d.writeCharTransparentScaled(x, y, r, f, style.Color, scale)
		}
		x += gw + style.Tracking
	}
}

// writeChar draws a glyph with its background in one address window.
func (d *Device) writeChar(x, y int, r rune, f *font.Font, fg, bg pixel.RGB565, scale int) {
	g := f.ScaledGlyph(r, scale)
	w, h := g.Size()
	clip, result := d.state.clip(x, y, w, h)
	if result == fullyClipped {
		return
	}

	d.openWindow(clip)
	s := stream{d: d}
	for g.Next() {
		px, py := g.Pos()
		if !image.Pt(x+px, y+py).In(clip) {
			continue
		}
		if g.On() {
			s.push(fg)
		} else {
			s.push(bg)
		}
	}
	s.flush()
}

// writeCharTransparent draws the foreground pixels of a glyph one by one.
func (d *Device) writeCharTransparent(x, y int, r rune, f *font.Font, fg pixel.RGB565) {
	g := f.Glyph(r)
	for g.Next() {
		if g.On() {
			px, py := g.Pos()
			d.drawPixel(x+px, y+py, fg)
		}
	}
}

// writeCharTransparentScaled draws every foreground bit of a glyph as a scale×scale block.
func (d *Device) writeCharTransparentScaled(x, y int, r rune, f *font.Font, fg pixel.RGB565, scale int) {
	g := f.Glyph(r)
	for g.Next() {
		if g.On() {
			px, py := g.Pos()
			d.fillRect(x+px*scale, y+py*scale, scale, scale, fg)
		}
	}
}

// WriteString draws s with an opaque background.
func (d *Device) WriteString(x, y int, s string, f *font.Font, fg, bg pixel.RGB565, tracking int) {
	d.DrawText(x, y, s, TextStyle{Font: f, Color: fg, Background: bg, Scale: 1, Tracking: tracking})
}

// WriteStringScaled draws s magnified by scale with an opaque background.
func (d *Device) WriteStringScaled(x, y int, s string, f *font.Font, fg, bg pixel.RGB565, scale, tracking int) {
	d.DrawText(x, y, s, TextStyle{Font: f, Color: fg, Background: bg, Scale: scale, Tracking: tracking})
}

// WriteStringTransparent draws the glyph pixels of s only.
func (d *Device) WriteStringTransparent(x, y int, s string, f *font.Font, fg pixel.RGB565, tracking int) {
	d.DrawText(x, y, s, TextStyle{Font: f, Color: fg, Transparent: true, Scale: 1, Tracking: tracking})
}

// WriteStringTransparentScaled draws the glyph pixels of s magnified by scale.
func (d *Device) WriteStringTransparentScaled(x, y int, s string, f *font.Font, fg pixel.RGB565, scale, tracking int) {
	d.DrawText(x, y, s, TextStyle{Font: f, Color: fg, Transparent: true, Scale: scale, Tracking: tracking})
}

// MeasureString returns the size in pixels of s rendered with style, without wrapping.
func MeasureString(s string, style TextStyle) image.Point {
	if s == "" || style.Scale == 0 {
		return image.Point{}
	}
	var (
		f     = style.font()
		scale = abs(style.Scale)
		size  image.Point
		lines = strings.Split(s, "\n")
	)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > 0 {
			size.X = max(size.X, n*(f.Width*scale+style.Tracking)-style.Tracking)
		}
	}
	size.Y = len(lines)*(f.Height*scale+style.Leading) - style.Leading
	return size
}
