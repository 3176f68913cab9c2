// Package framebuffer mirrors images to a Linux framebuffer device.
//
// The simulator uses it to show the emulated panel on a spare fbdev, such as the
// console of a Raspberry Pi. Only 16 and 32 bits per pixel true color modes are supported.
package framebuffer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/BeatGlow/ili9341/pixel"
)

// Errors.
var (
	ErrNotSupported = errors.New("framebuffer: not supported")
	ErrFormat       = errors.New("framebuffer: unsupported pixel format")
)

// Format is the memory layout of a pixel.
type Format int

// Formats
const (
	UnknownFormat Format = iota
	RGB565               // 16 bits, red in the high bits
	BGR565               // 16 bits, blue in the high bits
	XRGB8888             // 32 bits, blue in the lowest byte
	XBGR8888             // 32 bits, red in the lowest byte
)

func (f Format) String() string {
	switch f {
	case RGB565:
		return "RGB565"
	case BGR565:
		return "BGR565"
	case XRGB8888:
		return "XRGB8888"
	case XBGR8888:
		return "XBGR8888"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// BytesPerPixel for the format.
func (f Format) BytesPerPixel() int {
	switch f {
	case RGB565, BGR565:
		return 2
	case XRGB8888, XBGR8888:
		return 4
	default:
		return 0
	}
}

// bitField is struct fb_bitfield.
type bitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// parseFormat maps the variable screen info color layout to a Format.
func parseFormat(bitsPerPixel uint32, red, green, blue bitField) (Format, error) {
	switch bitsPerPixel {
	case 16:
		switch {
		case red.Offset == 11 && red.Length == 5 &&
			green.Offset == 5 && green.Length == 6 &&
			blue.Offset == 0 && blue.Length == 5:
			return RGB565, nil
		case blue.Offset == 11 && blue.Length == 5 &&
			green.Offset == 5 && green.Length == 6 &&
			red.Offset == 0 && red.Length == 5:
			return BGR565, nil
		}
	case 32:
		switch {
		case red.Offset == 16 && green.Offset == 8 && blue.Offset == 0:
			return XRGB8888, nil
		case red.Offset == 0 && green.Offset == 8 && blue.Offset == 16:
			return XBGR8888, nil
		}
	}
	return UnknownFormat, fmt.Errorf("%w: %d bpp, red %d@%d, green %d@%d, blue %d@%d", ErrFormat,
		bitsPerPixel, red.Length, red.Offset, green.Length, green.Offset, blue.Length, blue.Offset)
}

// Framebuffer is a mapped framebuffer. Pixels are stored in host (little-endian) order.
type Framebuffer struct {
	name   string
	pix    []byte
	stride int
	rect   image.Rectangle
	format Format
	close  func() error
}

// New wraps a memory buffer of w×h pixels in format f with stride bytes per row.
func New(pix []byte, w, h, stride int, f Format) (*Framebuffer, error) {
	bpp := f.BytesPerPixel()
	if bpp == 0 {
		return nil, ErrFormat
	}
	if w <= 0 || h <= 0 || stride < w*bpp || len(pix) < (h-1)*stride+w*bpp {
		return nil, fmt.Errorf("framebuffer: %d bytes too small for %dx%d with stride %d", len(pix), w, h, stride)
	}
	return &Framebuffer{
		name:   "memory",
		pix:    pix,
		stride: stride,
		rect:   image.Rect(0, 0, w, h),
		format: f,
	}, nil
}

func (fb *Framebuffer) String() string {
	return fmt.Sprintf("%s %dx%d %s", fb.name, fb.rect.Dx(), fb.rect.Dy(), fb.format)
}

// Bounds of the visible screen.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return fb.rect
}

// Format of the pixels.
func (fb *Framebuffer) Format() Format {
	return fb.format
}

// Close unmaps the framebuffer.
func (fb *Framebuffer) Close() error {
	if fb.close == nil {
		return nil
	}
	err := fb.close()
	fb.close, fb.pix = nil, nil
	return err
}

// Fill the screen with a single color.
func (fb *Framebuffer) Fill(c color.Color) {
	v := pixel.ToRGB565(c)
	for y := fb.rect.Min.Y; y < fb.rect.Max.Y; y++ {
		for x := fb.rect.Min.X; x < fb.rect.Max.X; x++ {
			fb.put(x, y, v)
		}
	}
}

// Draw copies src with its top-left corner at pt, clipped to the screen.
func (fb *Framebuffer) Draw(pt image.Point, src *pixel.RGB565Image) {
	b := src.Bounds()
	r := b.Sub(b.Min).Add(pt).Intersect(fb.rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			fb.put(x, y, src.RGB565At(b.Min.X+x-pt.X, b.Min.Y+y-pt.Y))
		}
	}
}

// At returns the pixel at (x, y).
func (fb *Framebuffer) At(x, y int) pixel.RGB565 {
	if !image.Pt(x, y).In(fb.rect) {
		return pixel.Black
	}
	i := y*fb.stride + x*fb.format.BytesPerPixel()
	switch fb.format {
	case RGB565:
		return pixel.RGB565(binary.LittleEndian.Uint16(fb.pix[i:]))
	case BGR565:
		return swap565(pixel.RGB565(binary.LittleEndian.Uint16(fb.pix[i:])))
	case XRGB8888:
		v := binary.LittleEndian.Uint32(fb.pix[i:])
		return pixel.RGB(uint8(v>>16), uint8(v>>8), uint8(v))
	default:
		v := binary.LittleEndian.Uint32(fb.pix[i:])
		return pixel.RGB(uint8(v), uint8(v>>8), uint8(v>>16))
	}
}

func (fb *Framebuffer) put(x, y int, c pixel.RGB565) {
	i := y*fb.stride + x*fb.format.BytesPerPixel()
	switch fb.format {
	case RGB565:
		binary.LittleEndian.PutUint16(fb.pix[i:], uint16(c))
	case BGR565:
		binary.LittleEndian.PutUint16(fb.pix[i:], uint16(swap565(c)))
	case XRGB8888:
		r, g, b := c.Components()
		binary.LittleEndian.PutUint32(fb.pix[i:], 0xff<<24|uint32(r)<<16|uint32(g)<<8|uint32(b))
	case XBGR8888:
		r, g, b := c.Components()
		binary.LittleEndian.PutUint32(fb.pix[i:], 0xff<<24|uint32(b)<<16|uint32(g)<<8|uint32(r))
	}
}

// swap565 exchanges the red and blue fields.
func swap565(c pixel.RGB565) pixel.RGB565 {
	return c>>11 | c&0x07E0 | (c&0x1F)<<11
}
