package ili9341

import (
	"image"
	"strings"
	"testing"

	"github.com/BeatGlow/ili9341/emulator"
	"github.com/BeatGlow/ili9341/font"
	"github.com/BeatGlow/ili9341/pixel"
)

// glyphBits counts the foreground bits of r.
func glyphBits(f *font.Font, r rune) (n int) {
	g := f.Glyph(r)
	for g.Next() {
		if g.On() {
			n++
		}
	}
	return
}

// columns returns the CASET windows in the panel log.
func columns(p *emulator.Panel) (out [][2]int) {
	for _, t := range p.Log {
		if t.Kind == emulator.Command && t.Command == CASET && len(t.Data) == 4 {
			out = append(out, [2]int{
				int(t.Data[0])<<8 | int(t.Data[1]),
				int(t.Data[2])<<8 | int(t.Data[3]),
			})
		}
	}
	return
}

func TestDrawTextSpace(t *testing.T) {
	d, p := newTestDevice(t, NoRotation)
	d.WriteString(0, 0, " ", nil, pixel.White, pixel.Blue, 0)
	if v := len(painted(p, pixel.Blue)); v != 7*13 {
		t.Errorf("expected %d background pixels, got %d", 7*13, v)
	}
	if v := len(painted(p, pixel.White)); v != 0 {
		t.Errorf("expected no foreground pixels, got %d", v)
	}
	if v := p.PixelBytes(); v != 7*13*2 {
		t.Errorf("expected %d pixel bytes, got %d", 7*13*2, v)
	}
	checkBracket(t, p)
}

func TestDrawTextOpaque(t *testing.T) {
	d, p := newTestDevice(t, NoRotation)
	d.WriteString(10, 10, "A", font.Font7x13, pixel.White, pixel.Blue, 0)
	fg, bg := painted(p, pixel.White), painted(p, pixel.Blue)
	if want := glyphBits(font.Font7x13, 'A'); len(fg) != want {
		t.Errorf("expected %d foreground pixels, got %d", want, len(fg))
	}
	if v := len(fg) + len(bg); v != 7*13 {
		t.Errorf("expected %d pixels, got %d", 7*13, v)
	}
	for pt := range fg {
		if !pt.In(image.Rect(10, 10, 17, 23)) {
			t.Errorf("pixel %s is outside of the glyph cell", pt)
		}
	}
}

func TestDrawTextClipped(t *testing.T) {
	d, p := newTestDevice(t, NoRotation)
	d.WriteString(236, 0, "AB", nil, pixel.White, pixel.Blue, 0)
	if v := len(painted(p, pixel.White)) + len(painted(p, pixel.Blue)); v != 4*13 {
		t.Errorf("expected %d pixels, got %d", 4*13, v)
	}
	for _, c := range columns(p) {
		if c != [2]int{236, 239} {
			t.Errorf("expected window 236..239, got %d..%d", c[0], c[1])
		}
	}
}

func TestDrawTextTransparent(t *testing.T) {
	d, p := newTestDevice(t, NoRotation)
	p.Clear(pixel.Green)
	d.WriteStringTransparent(10, 10, "A", nil, pixel.White, 0)
	want := glyphBits(font.Font7x13, 'A')
	if v := len(painted(p, pixel.White)); v != want {
		t.Errorf("expected %d foreground pixels, got %d", want, v)
	}
	if v := len(painted(p, pixel.Green)); v != 240*320-want {
		t.Errorf("expected the background to stay green, got %d pixels", v)
	}
}

func TestDrawTextScaled(t *testing.T) {
	bits := glyphBits(font.Font7x13, 'A')

	t.Run("opaque", func(it *testing.T) {
		d, p := newTestDevice(it, NoRotation)
		d.WriteStringScaled(0, 0, "A", nil, pixel.White, pixel.Blue, 3, 0)
		if v := len(painted(p, pixel.White)); v != bits*9 {
			it.Errorf("expected %d foreground pixels, got %d", bits*9, v)
		}
		if v := len(painted(p, pixel.White)) + len(painted(p, pixel.Blue)); v != 21*39 {
			it.Errorf("expected %d pixels, got %d", 21*39, v)
		}
	})
	t.Run("transparent", func(it *testing.T) {
		d, p := newTestDevice(it, NoRotation)
		d.WriteStringTransparentScaled(0, 0, "A", nil, pixel.White, 2, 0)
		if v := len(painted(p, pixel.White)); v != bits*4 {
			it.Errorf("expected %d foreground pixels, got %d", bits*4, v)
		}
	})
	t.Run("clipped", func(it *testing.T) {
		d, p := newTestDevice(it, NoRotation)
		d.WriteStringScaled(-5, -4, "A", nil, pixel.White, pixel.Blue, 3, 0)
		if v := p.PixelBytes(); v != 2*16*35 {
			it.Errorf("expected %d bytes of pixel data, got %d", 2*16*35, v)
		}
		view := p.View()

		d, p = newTestDevice(it, NoRotation)
		d.WriteStringScaled(0, 0, "A", nil, pixel.White, pixel.Blue, 3, 0)
		want := p.View()

		for y := 0; y < 40; y++ {
			for x := 0; x < 22; x++ {
				v := view.RGB565At(x, y)
				if x >= 16 || y >= 35 {
					if v != pixel.Black {
						it.Fatalf("expected nothing drawn at %d,%d, got %#04x", x, y, v)
					}
					continue
				}
				if w := want.RGB565At(x+5, y+4); v != w {
					it.Fatalf("expected %#04x at %d,%d, got %#04x", w, x, y, v)
				}
			}
		}
		checkBracket(it, p)
	})
	t.Run("zero", func(it *testing.T) {
		d, p := newTestDevice(it, NoRotation)
		d.WriteStringScaled(0, 0, "A", nil, pixel.White, pixel.Blue, 0, 0)
		if v := p.PixelBytes(); v != 0 {
			it.Errorf("expected no pixel data, got %d bytes", v)
		}
	})
}

func TestDrawTextWrap(t *testing.T) {
	d, p := newTestDevice(t, NoRotation)
	d.DrawText(0, 0, strings.Repeat("A", 40), TextStyle{Color: pixel.White, Scale: 1, Wrap: true})

	cols := columns(p)
	if len(cols) != 40 {
		t.Fatalf("expected 40 glyphs, got %d", len(cols))
	}
	for i, c := range cols {
		if c[1] >= 240 || c[1]-c[0] != 6 {
			t.Errorf("glyph %d: expected a full glyph on screen, got %d..%d", i, c[0], c[1])
		}
	}
	// 34 glyphs fit on the first line.
	if c := cols[34]; c[0] != 0 {
		t.Errorf("expected glyph 34 to start a new line, got x=%d", c[0])
	}
	checkBracket(t, p)
}

func TestDrawTextNoWrap(t *testing.T) {
	d, p := newTestDevice(t, NoRotation)
	d.DrawText(0, 0, strings.Repeat("A", 40)+"\nB", TextStyle{Color: pixel.White, Scale: 1})

	// 35 glyphs start on screen, the last one clipped; the rest of the line is skipped.
	cols := columns(p)
	if len(cols) != 36 {
		t.Fatalf("expected 36 glyphs, got %d", len(cols))
	}
	if c := cols[34]; c != [2]int{238, 239} {
		t.Errorf("expected a clipped glyph at 238..239, got %d..%d", c[0], c[1])
	}
	if c := cols[35]; c != [2]int{0, 6} {
		t.Errorf("expected the next line to start at 0, got %d..%d", c[0], c[1])
	}
}

func TestDrawTextBottom(t *testing.T) {
	d, p := newTestDevice(t, NoRotation)
	d.DrawText(0, 310, "A\nB\nC", TextStyle{Color: pixel.White, Scale: 1})
	if v := len(columns(p)); v != 1 {
		t.Errorf("expected 1 glyph, got %d", v)
	}
}

func TestMeasureString(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		style TextStyle
		want  image.Point
	}{
		{"empty", "", TextStyle{Scale: 1}, image.Point{}},
		{"zero scale", "abc", TextStyle{}, image.Point{}},
		{"single", "abc", TextStyle{Scale: 1}, image.Pt(21, 13)},
		{"tracking", "abc", TextStyle{Scale: 1, Tracking: 2}, image.Pt(25, 13)},
		{"scaled", "ab", TextStyle{Scale: 2}, image.Pt(28, 26)},
		{"lines", "a\nabc\n", TextStyle{Scale: 1, Leading: 1}, image.Pt(21, 41)},
		{"runes", "äö", TextStyle{Scale: 1}, image.Pt(14, 13)},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			if v := MeasureString(test.s, test.style); v != test.want {
				it.Errorf("expected %s, got %s", test.want, v)
			}
		})
	}
}
