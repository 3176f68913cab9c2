package pixel

import "image/color"

// RGB565Model converts any color to RGB565.
var RGB565Model color.Model = color.ModelFunc(rgb565Model)

// Common colors.
const (
	Black       RGB565 = 0x0000
	Navy        RGB565 = 0x000F
	DarkGreen   RGB565 = 0x03E0
	DarkCyan    RGB565 = 0x03EF
	Maroon      RGB565 = 0x7800
	Purple      RGB565 = 0x780F
	Olive       RGB565 = 0x7BE0
	LightGray   RGB565 = 0xC618
	DarkGray    RGB565 = 0x7BEF
	Blue        RGB565 = 0x001F
	Green       RGB565 = 0x07E0
	Cyan        RGB565 = 0x07FF
	Red         RGB565 = 0xF800
	Magenta     RGB565 = 0xF81F
	Yellow      RGB565 = 0xFFE0
	White       RGB565 = 0xFFFF
	Orange      RGB565 = 0xFD20
	GreenYellow RGB565 = 0xAFE5
	Pink        RGB565 = 0xFC18
)

// RGB565 represents a 16-bit 5-6-5 RGB color.
//
// The value is in host order, the driver takes care of sending it big-endian.
type RGB565 uint16

// RGB packs 8-bit red, green and blue components, dropping the low bits.
func RGB(r, g, b uint8) RGB565 {
	return RGB565(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3)
}

// Components returns the 8-bit red, green and blue components.
func (c RGB565) Components() (r, g, b uint8) {
	// Build a 5- or 6-bit value at the top of each component.
	r = uint8((c & 0xF800) >> 8)
	g = uint8((c & 0x07E0) >> 3)
	b = uint8((c & 0x001F) << 3)
	// Duplicate the high bits in the low bits.
	r |= r >> 5
	g |= g >> 6
	b |= b >> 5
	return
}

func (c RGB565) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.Components()
	// Duplicate the whole value in the high byte.
	r = uint32(r8) | uint32(r8)<<8
	g = uint32(g8) | uint32(g8)<<8
	b = uint32(b8) | uint32(b8)<<8
	return r, g, b, 0xffff
}

func rgb565Model(c color.Color) color.Color {
	if c, ok := c.(RGB565); ok {
		return c
	}
	return ToRGB565(c)
}

// ToRGB565 converts any color to RGB565. Alpha is ignored.
func ToRGB565(c color.Color) RGB565 {
	switch c := c.(type) {
	case RGB565:
		return c
	case color.RGBA:
		return RGB(c.R, c.G, c.B)
	default:
		r, g, b, _ := c.RGBA()
		r = (r & 0xF800)
		g = (g & 0xFC00) >> 5
		b = (b & 0xF800) >> 11
		return RGB565(r | g | b)
	}
}
