package pixel

import (
	"image/color"
	"testing"
)

func TestRGB565Components(t *testing.T) {
	tests := []struct {
		c       RGB565
		r, g, b uint8
	}{
		{Black, 0x00, 0x00, 0x00},
		{White, 0xff, 0xff, 0xff},
		{Red, 0xff, 0x00, 0x00},
		{Green, 0x00, 0xff, 0x00},
		{Blue, 0x00, 0x00, 0xff},
		{Navy, 0x00, 0x00, 0x7b},
	}
	for _, test := range tests {
		t.Run("", func(it *testing.T) {
			r, g, b := test.c.Components()
			if r != test.r {
				it.Errorf("%#04x: expected red to be %#02x, got %#02x", uint16(test.c), test.r, r)
			}
			if g != test.g {
				it.Errorf("%#04x: expected green to be %#02x, got %#02x", uint16(test.c), test.g, g)
			}
			if b != test.b {
				it.Errorf("%#04x: expected blue to be %#02x, got %#02x", uint16(test.c), test.b, b)
			}
		})
	}
}

func TestRGB(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    RGB565
	}{
		{0x00, 0x00, 0x00, Black},
		{0xff, 0xff, 0xff, White},
		{0xff, 0x00, 0x00, Red},
		{0x00, 0xff, 0x00, Green},
		{0x00, 0x00, 0xff, Blue},
		{0xff, 0xff, 0x00, Yellow},
	}
	for _, test := range tests {
		if v := RGB(test.r, test.g, test.b); v != test.want {
			t.Errorf("RGB(%#02x, %#02x, %#02x): expected %#04x, got %#04x", test.r, test.g, test.b, uint16(test.want), uint16(v))
		}
	}
}

func TestRGB565Model(t *testing.T) {
	for v := 0; v < 0x10000; v += 0x0101 {
		c := RGB565(v)
		if got := RGB565Model.Convert(c); got != c {
			t.Fatalf("expected %#04x to convert to itself, got %#v", v, got)
		}
		// Expanding to 16-bit components and packing again is lossless.
		r, g, b, _ := c.RGBA()
		if got := ToRGB565(color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: 0xffff}); got != c {
			t.Fatalf("expected %#04x after round trip, got %#04x", v, uint16(got))
		}
	}
	if got := ToRGB565(color.White); got != White {
		t.Errorf("expected white, got %#04x", uint16(got))
	}
	if got := ToRGB565(color.RGBA{R: 0xff, A: 0xff}); got != Red {
		t.Errorf("expected red, got %#04x", uint16(got))
	}
}
