package framebuffer

import (
	"errors"
	"image"
	"testing"

	"github.com/BeatGlow/ili9341/pixel"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name             string
		bpp              uint32
		red, green, blue bitField
		want             Format
	}{
		{"rgb565", 16, bitField{Offset: 11, Length: 5}, bitField{Offset: 5, Length: 6}, bitField{Length: 5}, RGB565},
		{"bgr565", 16, bitField{Length: 5}, bitField{Offset: 5, Length: 6}, bitField{Offset: 11, Length: 5}, BGR565},
		{"xrgb8888", 32, bitField{Offset: 16, Length: 8}, bitField{Offset: 8, Length: 8}, bitField{Length: 8}, XRGB8888},
		{"xbgr8888", 32, bitField{Length: 8}, bitField{Offset: 8, Length: 8}, bitField{Offset: 16, Length: 8}, XBGR8888},
		{"rgb555", 15, bitField{Offset: 10, Length: 5}, bitField{Offset: 5, Length: 5}, bitField{Length: 5}, UnknownFormat},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			f, err := parseFormat(test.bpp, test.red, test.green, test.blue)
			if test.want == UnknownFormat {
				if !errors.Is(err, ErrFormat) {
					it.Errorf("expected ErrFormat, got %v", err)
				}
				return
			}
			if err != nil {
				it.Fatal(err)
			}
			if f != test.want {
				it.Errorf("expected %s, got %s", test.want, f)
			}
		})
	}
}

func TestNew(t *testing.T) {
	if _, err := New(make([]byte, 100), 10, 10, 20, RGB565); err == nil {
		t.Error("expected error for a short buffer")
	}
	if _, err := New(make([]byte, 200), 10, 10, 20, UnknownFormat); !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
	if _, err := New(make([]byte, 200), 10, 10, 10, RGB565); err == nil {
		t.Error("expected error for a short stride")
	}
	fb, err := New(make([]byte, 200), 10, 10, 20, RGB565)
	if err != nil {
		t.Fatal(err)
	}
	if v := fb.String(); v != "memory 10x10 RGB565" {
		t.Errorf("expected %q, got %q", "memory 10x10 RGB565", v)
	}
	if err = fb.Close(); err != nil {
		t.Error(err)
	}
}

func TestDraw(t *testing.T) {
	src := pixel.NewRGB565Image(4, 4)
	src.Fill(pixel.Red)
	src.SetRGB565(0, 0, pixel.Blue)

	for _, f := range []Format{RGB565, BGR565, XRGB8888, XBGR8888} {
		t.Run(f.String(), func(it *testing.T) {
			// Extra bytes at the end of each row.
			stride := 8*f.BytesPerPixel() + 4
			fb, err := New(make([]byte, 8*stride), 8, 8, stride, f)
			if err != nil {
				it.Fatal(err)
			}
			fb.Fill(pixel.Green)
			fb.Draw(image.Pt(6, 6), src)

			tests := []struct {
				x, y int
				want pixel.RGB565
			}{
				{0, 0, pixel.Green},
				{5, 6, pixel.Green},
				{6, 6, pixel.Blue},
				{7, 7, pixel.Red},
				{8, 8, pixel.Black},
			}
			for _, test := range tests {
				if v := fb.At(test.x, test.y); v != test.want {
					it.Errorf("(%d,%d): expected %#04x, got %#04x", test.x, test.y, test.want, v)
				}
			}
		})
	}
}

func TestDrawLayout(t *testing.T) {
	src := pixel.NewRGB565Image(1, 1)
	src.SetRGB565(0, 0, pixel.Red)

	fb, _ := New(make([]byte, 2), 1, 1, 2, RGB565)
	fb.Draw(image.Point{}, src)
	if fb.pix[0] != 0x00 || fb.pix[1] != 0xF8 {
		t.Errorf("expected little-endian 0xF800, got % x", fb.pix)
	}

	fb, _ = New(make([]byte, 4), 1, 1, 4, XRGB8888)
	fb.Draw(image.Point{}, src)
	if fb.pix[2] != 0xFF || fb.pix[0] != 0x00 || fb.pix[3] != 0xFF {
		t.Errorf("expected red in byte 2, got % x", fb.pix)
	}
}
