package pixel

import (
	"encoding/binary"
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestRGB565Image(t *testing.T) {
	testCases := []image.Point{
		{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(240, 32),
		image.Pt(32, 320),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := NewRGB565Image(test.X, test.Y)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != RGB565Model {
				it.Errorf("expected color model %T, got %T", RGB565Model, v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := i.ColorModel().Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
							return
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				for y := -test.Y; y < test.Y*2; y++ {
					for x := -test.X; x < test.X*2; x++ {
						i.Set(x, y, testRandomColor())
						if x < 0 || y < 0 || x >= test.X || y >= test.Y {
							if v := i.At(x, y); v != color.Transparent {
								itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
								return
							}
						}
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				i.Fill(Magenta)
				if n := i.Count(Magenta); n != test.X*test.Y {
					itt.Fatalf("expected %d magenta pixels, got %d", test.X*test.Y, n)
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				if n := i.Count(Black); n != test.X*test.Y {
					itt.Fatalf("expected %d black pixels, got %d", test.X*test.Y, n)
				}
			})
		})
	}
}

func TestRGB565ImageOrder(t *testing.T) {
	i := NewRGB565Image(2, 1)
	i.SetRGB565(0, 0, Red)
	if i.Pix[0] != 0xF8 || i.Pix[1] != 0x00 {
		t.Errorf("expected big-endian pixel bytes f8 00, got %02x %02x", i.Pix[0], i.Pix[1])
	}

	i.Order = binary.LittleEndian
	i.SetRGB565(1, 0, Red)
	if i.Pix[2] != 0x00 || i.Pix[3] != 0xF8 {
		t.Errorf("expected little-endian pixel bytes 00 f8, got %02x %02x", i.Pix[2], i.Pix[3])
	}
	if v := i.RGB565At(1, 0); v != Red {
		t.Errorf("expected red, got %#04x", uint16(v))
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(256)),
		G: uint8(rand.Intn(256)),
		B: uint8(rand.Intn(256)),
		A: 0xff,
	}
}
