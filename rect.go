package ili9341

import (
	"image"

	"github.com/BeatGlow/ili9341/draw"
	"github.com/BeatGlow/ili9341/pixel"
)

// DrawPixel sets one pixel, pixels outside of the display are ignored.
func (d *Device) DrawPixel(x, y int, c pixel.RGB565) {
	d.begin()
	d.drawPixel(x, y, c)
	d.end()
}

func (d *Device) drawPixel(x, y int, c pixel.RGB565) {
	if x < 0 || y < 0 || x >= d.state.width || y >= d.state.height {
		return
	}
	d.setWindow(x, y, x, y)
	d.data([]byte{byte(c >> 8), byte(c)})
}

// FillRectangle fills w×h pixels at (x, y). A negative width or height extends the
// rectangle to the left or up from (x, y).
func (d *Device) FillRectangle(x, y, w, h int, c pixel.RGB565) {
	d.begin()
	d.fillRect(x, y, w, h, c)
	d.end()
}

func (d *Device) fillRect(x, y, w, h int, c pixel.RGB565) clipResult {
	r, result := d.state.clip(x, y, w, h)
	if result == fullyClipped {
		return result
	}
	d.openWindow(r)
	d.fill(r.Dx()*r.Dy(), c)
	return result
}

// FillScreen fills the whole display.
func (d *Device) FillScreen(c pixel.RGB565) {
	d.FillRectangle(0, 0, d.state.width, d.state.height, c)
}

// DrawRectangle draws a one pixel wide outline.
func (d *Device) DrawRectangle(x, y, w, h int, c pixel.RGB565) {
	d.DrawRectangleThick(x, y, w, h, 1, c)
}

// DrawRectangleThick draws an outline of thickness pixels inside of the rectangle.
func (d *Device) DrawRectangleThick(x, y, w, h, thickness int, c pixel.RGB565) {
	if thickness == 0 {
		return
	}
	thickness = abs(thickness)
	x, y, w, h = normalize(x, y, w, h)

	d.begin()
	if 2*thickness >= w || 2*thickness >= h {
		// No hole left.
		d.fillRect(x, y, w, h, c)
	} else {
		d.fillRect(x, y, w, thickness, c)                                   // top
		d.fillRect(x, y+h-thickness, w, thickness, c)                       // bottom
		d.fillRect(x, y+thickness, thickness, h-2*thickness, c)             // left
		d.fillRect(x+w-thickness, y+thickness, thickness, h-2*thickness, c) // right
	}
	d.end()
}

// DrawRoundedRectangle draws a one pixel wide outline with corners of the given radius.
func (d *Device) DrawRoundedRectangle(x, y, w, h, radius int, c pixel.RGB565) {
	x, y, w, h = normalize(x, y, w, h)
	if w == 0 || h == 0 {
		return
	}
	r := min(abs(radius), w/2, h/2)
	if r == 0 {
		d.DrawRectangleThick(x, y, w, h, 1, c)
		return
	}

	d.begin()
	d.fillRect(x+r, y, w-2*r, 1, c)     // top
	d.fillRect(x+r, y+h-1, w-2*r, 1, c) // bottom
	d.fillRect(x, y+r, 1, h-2*r, c)     // left
	d.fillRect(x+w-1, y+r, 1, h-2*r, c) // right
	d.roundedCorner(x+r, y+r, r, 1, c)
	d.roundedCorner(x+w-r-1, y+r, r, 2, c)
	d.roundedCorner(x+w-r-1, y+h-r-1, r, 4, c)
	d.roundedCorner(x+r, y+h-r-1, r, 8, c)
	d.end()
}

// FillRoundedRectangle fills a rectangle with corners of the given radius.
func (d *Device) FillRoundedRectangle(x, y, w, h, radius int, c pixel.RGB565) {
	x, y, w, h = normalize(x, y, w, h)
	if w == 0 || h == 0 {
		return
	}
	r := min(abs(radius), w/2, h/2)

	d.begin()
	d.fillRect(x+r, y, w-2*r, h, c)
	if r > 0 {
		d.filledRoundedCorner(x+w-r-1, y+r, r, 1, h-2*r-1, c)
		d.filledRoundedCorner(x+r, y+r, r, 2, h-2*r-1, c)
	}
	d.end()
}

// roundedCorner draws the corner arcs selected by the quadrant bits: 1 top left,
// 2 top right, 4 bottom right and 8 bottom left.
func (d *Device) roundedCorner(x0, y0, radius, quadrant int, c pixel.RGB565) {
	var (
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
	)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		if quadrant&4 != 0 {
			d.drawPixel(x0+x, y0+y, c)
			d.drawPixel(x0+y, y0+x, c)
		}
		if quadrant&2 != 0 {
			d.drawPixel(x0+x, y0-y, c)
			d.drawPixel(x0+y, y0-x, c)
		}
		if quadrant&8 != 0 {
			d.drawPixel(x0-y, y0+x, c)
			d.drawPixel(x0-x, y0+y, c)
		}
		if quadrant&1 != 0 {
			d.drawPixel(x0-y, y0-x, c)
			d.drawPixel(x0-x, y0-y, c)
		}
	}
}

// filledRoundedCorner fills the right (quadrant 1) or left (quadrant 2) half disc of a
// rounded rectangle, stretched by delta pixels vertically.
func (d *Device) filledRoundedCorner(x0, y0, radius, quadrant, delta int, c pixel.RGB565) {
	var (
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
	)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		if quadrant&1 != 0 {
			d.fillRect(x0+x, y0-y, 1, 2*y+1+delta, c)
			d.fillRect(x0+y, y0-x, 1, 2*x+1+delta, c)
		}
		if quadrant&2 != 0 {
			d.fillRect(x0-x, y0-y, 1, 2*y+1+delta, c)
			d.fillRect(x0-y, y0-x, 1, 2*x+1+delta, c)
		}
	}
}

// DrawImage copies w×h pixels to (x, y). The image is not clipped: nothing is drawn if
// it does not fit on the display, or if pix holds less than w×h pixels.
func (d *Device) DrawImage(x, y, w, h int, pix []pixel.RGB565) {
	if w == 0 || h == 0 {
		return
	}
	_, result := d.state.clip(x, y, w, h)
	if result != drawn {
		return
	}
	x, y, w, h = normalize(x, y, w, h)
	if len(pix) < w*h {
		return
	}

	d.begin()
	d.setWindow(x, y, x+w-1, y+h-1)
	s := stream{d: d}
	for _, c := range pix[:w*h] {
		s.push(c)
	}
	s.flush()
	d.end()
}

// DrawImageFrom draws any image with its top-left corner at (x, y), clipped to the display.
func (d *Device) DrawImageFrom(x, y int, img image.Image) {
	size := img.Bounds().Size()
	r, result := d.state.clip(x, y, size.X, size.Y)
	if result == fullyClipped {
		return
	}

	src := draw.RGB565(img)
	d.begin()
	d.openWindow(r)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		i := src.PixOffset(r.Min.X-x, py-y)
		d.data(src.Pix[i : i+r.Dx()*2])
	}
	d.end()
}
