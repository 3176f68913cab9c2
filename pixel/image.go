package pixel

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// RGB565Image is a 16-bits per pixel 5-6-5-bit RGB image.
//
// Pixels are stored in Order, which defaults to big-endian: the byte order of the
// ILI9341 memory write command, so Pix can be streamed to the panel as is.
type RGB565Image struct {
	Buffer
	Order binary.ByteOrder
}

func NewRGB565Image(w, h int) *RGB565Image {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &RGB565Image{
		Buffer: makeBuffer(w, h, w*2, w*2*h),
		Order:  binary.BigEndian,
	}
}

func (p *RGB565Image) ColorModel() color.Model {
	return RGB565Model
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *RGB565Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}

func (p *RGB565Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return p.RGB565At(x, y)
}

// RGB565At returns the pixel at (x, y), or Black outside of the image.
func (p *RGB565Image) RGB565At(x, y int) RGB565 {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return Black
	}
	return RGB565(p.Order.Uint16(p.Pix[p.PixOffset(x, y):]))
}

func (p *RGB565Image) Set(x, y int, c color.Color) {
	p.SetRGB565(x, y, ToRGB565(c))
}

// SetRGB565 sets the pixel at (x, y), pixels outside of the image are ignored.
func (p *RGB565Image) SetRGB565(x, y int, c RGB565) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Order.PutUint16(p.Pix[p.PixOffset(x, y):], uint16(c))
}

func (p *RGB565Image) Fill(c color.Color) {
	value := ToRGB565(c)
	bytes := make([]byte, 2)
	p.Order.PutUint16(bytes, uint16(value))
	for i, l := 0, len(p.Pix); i < l; i += 2 {
		copy(p.Pix[i:], bytes)
	}
}

// Count returns the number of pixels that have color c.
func (p *RGB565Image) Count(c RGB565) (n int) {
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		for x := p.Rect.Min.X; x < p.Rect.Max.X; x++ {
			if p.RGB565At(x, y) == c {
				n++
			}
		}
	}
	return
}

// Interface checks.
var (
	_ Image = (*RGB565Image)(nil)
)
