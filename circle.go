package ili9341

import "github.com/BeatGlow/ili9341/pixel"

// offScreen reports if the box around a shape centered at (xc, yc) misses the display.
func (d *Device) offScreen(xc, yc, rx, ry int) bool {
	return xc+rx < 0 || xc-rx >= d.state.width || yc+ry < 0 || yc-ry >= d.state.height
}

// span draws the pixels x0 to x1 of row y, both inclusive.
func (d *Device) span(x0, x1, y int, c pixel.RGB565) {
	d.fillRect(x0, y, x1-x0+1, 1, c)
}

// mirroredSpans draws row y of a shape centered at (xc, yc) above and below the center.
// With xi >= 0 the row is split into xc-xo..xc-xi and xc+xi..xc+xo, a negative xi draws
// the whole row.
func (d *Device) mirroredSpans(xc, yc, y, xo, xi int, c pixel.RGB565) {
	for i, row := range [2]int{yc + y, yc - y} {
		if i == 1 && y == 0 {
			break
		}
		if xi < 0 {
			d.span(xc-xo, xc+xo, row, c)
		} else {
			d.span(xc-xo, xc-xi, row, c)
			d.span(xc+xi, xc+xo, row, c)
		}
	}
}

// DrawCircle draws a one pixel wide circle outline.
func (d *Device) DrawCircle(xc, yc, r int, c pixel.RGB565) {
	r = abs(r)
	if r == 0 || d.offScreen(xc, yc, r, r) {
		return
	}

	d.begin()
	d.drawCircle(xc, yc, r, c)
	d.end()
}

// drawCircle is the midpoint circle algorithm.
func (d *Device) drawCircle(xc, yc, r int, c pixel.RGB565) {
	var (
		f    = 1 - r
		ddFx = 1
		ddFy = -2 * r
		x    = 0
		y    = r
	)
	d.drawPixel(xc, yc+r, c)
	d.drawPixel(xc, yc-r, c)
	d.drawPixel(xc+r, yc, c)
	d.drawPixel(xc-r, yc, c)

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		d.drawPixel(xc+x, yc+y, c)
		d.drawPixel(xc-x, yc+y, c)
		d.drawPixel(xc+x, yc-y, c)
		d.drawPixel(xc-x, yc-y, c)
		d.drawPixel(xc+y, yc+x, c)
		d.drawPixel(xc-y, yc+x, c)
		d.drawPixel(xc+y, yc-x, c)
		d.drawPixel(xc-y, yc-x, c)
	}
}

// DrawCircleThick draws a circle outline of thickness pixels, growing inwards from radius r.
func (d *Device) DrawCircleThick(xc, yc, r, thickness int, c pixel.RGB565) {
	r, thickness = abs(r), abs(thickness)
	if r == 0 || thickness == 0 || d.offScreen(xc, yc, r, r) {
		return
	}
	thickness = min(thickness, r)

	d.begin()
	if thickness == 1 {
		d.drawCircle(xc, yc, r, c)
	} else {
		d.ring(xc, yc, r, r-thickness, c)
	}
	d.end()
}

// FillCircle fills a circle of radius r.
func (d *Device) FillCircle(xc, yc, r int, c pixel.RGB565) {
	d.begin()
	d.fillCircle(xc, yc, r, c)
	d.end()
}

func (d *Device) fillCircle(xc, yc, r int, c pixel.RGB565) {
	r = abs(r)
	if r == 0 || d.offScreen(xc, yc, r, r) {
		return
	}
	d.ring(xc, yc, r, -1, c)
}

// ring fills the annulus between the radii ri and r, row by row. A negative ri fills the
// whole disc.
func (d *Device) ring(xc, yc, r, ri int, c pixel.RGB565) {
	xo, xi := r, ri
	for y := 0; y <= r; y++ {
		for xo*xo+y*y > r*r {
			xo--
		}
		for xi >= 0 && xi*xi+y*y > ri*ri {
			xi--
		}
		d.mirroredSpans(xc, yc, y, xo, xi, c)
	}
}
