package font

import (
	"strings"
	"testing"
)

func TestFont7x13(t *testing.T) {
	if err := Font7x13.Validate(); err != nil {
		t.Fatal(err)
	}
	if v := Font7x13.String(); v != "7x13 7x13" {
		t.Errorf("expected name %q, got %q", "7x13 7x13", v)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		font Font
		ok   bool
	}{
		{"valid", Font{Name: "t", Width: 4, Height: 8, IntsPerGlyph: 1, Data: make([]uint32, NumGlyphs)}, true},
		{"zero width", Font{Name: "t", Width: 0, Height: 8, IntsPerGlyph: 1, Data: make([]uint32, NumGlyphs)}, false},
		{"short words", Font{Name: "t", Width: 8, Height: 8, IntsPerGlyph: 1, Data: make([]uint32, NumGlyphs)}, false},
		{"short data", Font{Name: "t", Width: 4, Height: 8, IntsPerGlyph: 1, Data: make([]uint32, NumGlyphs-1)}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			err := test.font.Validate()
			if test.ok && err != nil {
				it.Errorf("expected no error, got %v", err)
			} else if !test.ok && err == nil {
				it.Error("expected an error")
			}
		})
	}
}

func render(f *Font, r rune, scale int) string {
	c := f.ScaledGlyph(r, scale)
	w, h := c.Size()
	rows := make([][]byte, h)
	for i := range rows {
		rows[i] = []byte(strings.Repeat("?", w))
	}
	for c.Next() {
		x, y := c.Pos()
		if c.On() {
			rows[y][x] = '#'
		} else {
			rows[y][x] = '.'
		}
	}
	lines := make([]string, h)
	for i, row := range rows {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

func TestGlyph(t *testing.T) {
	want := strings.Join([]string{
		".......",
		".......",
		"..##...",
		".#..#..",
		"#....#.",
		"#....#.",
		"#....#.",
		"######.",
		"#....#.",
		"#....#.",
		"#....#.",
		".......",
		".......",
	}, "\n")
	if got := render(Font7x13, 'A', 1); got != want {
		t.Errorf("glyph A mismatch, expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestGlyphSpace(t *testing.T) {
	for _, r := range []rune{' ', '\n', 0, 127, 'é'} {
		c := Font7x13.Glyph(r)
		var n, on int
		for c.Next() {
			n++
			if c.On() {
				on++
			}
		}
		if want := Font7x13.Width * Font7x13.Height; n != want {
			t.Errorf("%q: expected %d bits, got %d", r, want, n)
		}
		if on != 0 {
			t.Errorf("%q: expected an empty glyph, got %d set bits", r, on)
		}
	}
}

func TestScaledGlyph(t *testing.T) {
	font := &Font{
		Name:         "test",
		Width:        3,
		Height:       2,
		IntsPerGlyph: 1,
		Data:         make([]uint32, NumGlyphs),
	}
	// 'x' is #.# / .#.
	font.Data['x'-FirstRune] = 0b101010 << 26

	want := strings.Join([]string{
		"##..##",
		"##..##",
		"..##..",
		"..##..",
	}, "\n")
	if got := render(font, 'x', 2); got != want {
		t.Errorf("scaled glyph mismatch, expected:\n%s\ngot:\n%s", want, got)
	}

	want = strings.Join([]string{
		"###...###",
		"###...###",
		"###...###",
		"...###...",
		"...###...",
		"...###...",
	}, "\n")
	if got := render(font, 'x', 3); got != want {
		t.Errorf("scaled glyph mismatch, expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestCursorWordBoundary(t *testing.T) {
	// A 5x8 glyph spans two words; the last column of row 6 is bit 34.
	font := &Font{
		Name:         "test",
		Width:        5,
		Height:       8,
		IntsPerGlyph: 2,
		Data:         make([]uint32, NumGlyphs*2),
	}
	font.Data[('.'-FirstRune)*2] = 1          // bit 31: row 6, col 1
	font.Data[('.'-FirstRune)*2+1] = 1 << 29 // bit 34: row 6, col 4

	for _, scale := range []int{1, 2, 4} {
		c := font.ScaledGlyph('.', scale)
		var got [][2]int
		for c.Next() {
			if c.On() {
				x, y := c.Pos()
				if x%scale == 0 && y%scale == 0 {
					got = append(got, [2]int{x / scale, y / scale})
				}
			}
		}
		if len(got) != 2 || got[0] != [2]int{1, 6} || got[1] != [2]int{4, 6} {
			t.Errorf("scale %d: expected set bits at (1,6) and (4,6), got %v", scale, got)
		}
	}
}

func TestCursorReset(t *testing.T) {
	c := Font7x13.ScaledGlyph('W', 2)
	first := 0
	for c.Next() {
		if c.On() {
			first++
		}
	}
	if c.Next() {
		t.Fatal("expected an exhausted cursor to stay exhausted")
	}
	c.Reset()
	second := 0
	for c.Next() {
		if c.On() {
			second++
		}
	}
	if first == 0 || first != second {
		t.Errorf("expected the same number of set bits after reset, got %d and %d", first, second)
	}
}

func TestCursorZeroScale(t *testing.T) {
	c := Font7x13.ScaledGlyph('A', 0)
	if c.Next() {
		t.Error("expected no bits at scale 0")
	}
}
