package ili9341

import (
	"image/color"

	"tinygo.org/x/drivers"

	"github.com/BeatGlow/ili9341/pixel"
)

// Size returns the display size in pixels.
func (d *Device) Size() (x, y int16) {
	return int16(d.state.width), int16(d.state.height)
}

// SetPixel draws a single pixel, pixels are not buffered.
func (d *Device) SetPixel(x, y int16, c color.RGBA) {
	d.DrawPixel(int(x), int(y), pixel.ToRGB565(c))
}

// Display reports the transport error, if any. All drawing is already on the panel.
func (d *Device) Display() error {
	return d.err
}

// FillRectangleRGBA fills a rectangle with any color, for code written against TinyGo
// display drivers.
func (d *Device) FillRectangleRGBA(x, y, width, height int16, c color.RGBA) error {
	d.FillRectangle(int(x), int(y), int(width), int(height), pixel.ToRGB565(c))
	return d.err
}

// Interface checks.
var (
	_ drivers.Displayer = (*Device)(nil)
)
