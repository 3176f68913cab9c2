package ili9341

import "github.com/BeatGlow/ili9341/pixel"

// DrawEllipse draws a one pixel wide ellipse outline with radii rx and ry.
func (d *Device) DrawEllipse(xc, yc, rx, ry int, c pixel.RGB565) {
	rx, ry = abs(rx), abs(ry)
	if rx == 0 || ry == 0 || d.offScreen(xc, yc, rx, ry) {
		return
	}

	d.begin()
	d.drawEllipse(xc, yc, rx, ry, c)
	d.end()
}

func (d *Device) ellipsePoints(xc, yc, x, y int, c pixel.RGB565) {
	d.drawPixel(xc+x, yc+y, c)
	d.drawPixel(xc-x, yc+y, c)
	d.drawPixel(xc+x, yc-y, c)
	d.drawPixel(xc-x, yc-y, c)
}

// drawEllipse is the two region midpoint ellipse algorithm.
func (d *Device) drawEllipse(xc, yc, rx, ry int, c pixel.RGB565) {
	var (
		rx2    = int64(rx) * int64(rx)
		ry2    = int64(ry) * int64(ry)
		twoRx2 = 2 * rx2
		twoRy2 = 2 * ry2
		x      = int64(0)
		y      = int64(ry)
		px     = int64(0)
		py     = twoRx2 * y
	)
	d.ellipsePoints(xc, yc, int(x), int(y), c)

	// Region 1, the slope is less than one: step x.
	p := ry2 - rx2*int64(ry) + rx2/4
	for px < py {
		x++
		px += twoRy2
		if p < 0 {
			p += ry2 + px
		} else {
			y--
			py -= twoRx2
			p += ry2 + px - py
		}
		d.ellipsePoints(xc, yc, int(x), int(y), c)
	}

	// Region 2: step y.
	p = ry2*(x*x+x) + ry2/4 + rx2*(y-1)*(y-1) - rx2*ry2
	for y > 0 {
		y--
		py -= twoRx2
		if p > 0 {
			p += rx2 - py
		} else {
			x++
			px += twoRy2
			p += rx2 - py + px
		}
		d.ellipsePoints(xc, yc, int(x), int(y), c)
	}
}

// DrawEllipseThick draws an ellipse outline of thickness pixels, growing inwards from the radii.
func (d *Device) DrawEllipseThick(xc, yc, rx, ry, thickness int, c pixel.RGB565) {
	rx, ry, thickness = abs(rx), abs(ry), abs(thickness)
	if rx == 0 || ry == 0 || thickness == 0 || d.offScreen(xc, yc, rx, ry) {
		return
	}
	thickness = min(thickness, rx, ry)

	d.begin()
	if thickness == 1 {
		d.drawEllipse(xc, yc, rx, ry, c)
	} else {
		d.ellipseRing(xc, yc, rx, ry, rx-thickness, ry-thickness, c)
	}
	d.end()
}

// FillEllipse fills an ellipse with radii rx and ry.
func (d *Device) FillEllipse(xc, yc, rx, ry int, c pixel.RGB565) {
	rx, ry = abs(rx), abs(ry)
	if rx == 0 || ry == 0 || d.offScreen(xc, yc, rx, ry) {
		return
	}

	d.begin()
	d.ellipseRing(xc, yc, rx, ry, -1, -1, c)
	d.end()
}

// ellipseRing fills the area between the inner ellipse (ai, bi) and the outer ellipse
// (rx, ry) row by row. Negative inner radii fill the whole ellipse.
func (d *Device) ellipseRing(xc, yc, rx, ry, ai, bi int, c pixel.RGB565) {
	var (
		a2, b2 = int64(rx) * int64(rx), int64(ry) * int64(ry)
		i2, j2 = int64(ai) * int64(ai), int64(bi) * int64(bi)
		xo, xi = int64(rx), int64(ai)
	)
	for y := int64(0); y <= int64(ry); y++ {
		for xo*xo*b2+y*y*a2 > a2*b2 {
			xo--
		}
		if bi <= 0 || y > int64(bi) {
			xi = -1
		}
		for xi >= 0 && xi*xi*j2+y*y*i2 > i2*j2 {
			xi--
		}
		d.mirroredSpans(xc, yc, int(y), int(xo), int(xi), c)
	}
}
