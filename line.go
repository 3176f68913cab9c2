package ili9341

import (
	"image"
	"math"

	"github.com/BeatGlow/ili9341/pixel"
)

// DrawLine draws a one pixel wide line, including both end points.
func (d *Device) DrawLine(x0, y0, x1, y1 int, c pixel.RGB565) {
	d.begin()
	d.drawLine(x0, y0, x1, y1, c)
	d.end()
}

func (d *Device) drawLine(x0, y0, x1, y1 int, c pixel.RGB565) {
	switch {
	case x0 == x1:
		d.fillRect(x0, min(y0, y1), 1, abs(y1-y0)+1, c)
		return
	case y0 == y1:
		d.fillRect(min(x0, x1), y0, abs(x1-x0)+1, 1, c)
		return
	}

	// Bresenham
	var (
		dx, sx = abs(x1 - x0), sign(x1 - x0)
		dy, sy = -abs(y1 - y0), sign(y1 - y0)
		err    = dx + dy
	)
	for {
		d.drawPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawLineThick draws a line of thickness pixels wide. With rounded set, the end points
// get round caps.
func (d *Device) DrawLineThick(x0, y0, x1, y1, thickness int, rounded bool, c pixel.RGB565) {
	d.begin()
	d.drawLineThick(x0, y0, x1, y1, thickness, rounded, c)
	d.end()
}

func (d *Device) drawLineThick(x0, y0, x1, y1, thickness int, rounded bool, c pixel.RGB565) {
	if thickness == 0 {
		return
	}
	thickness = abs(thickness)
	if thickness == 1 {
		d.drawLine(x0, y0, x1, y1, c)
		return
	}

	var (
		dx     = float64(x1 - x0)
		dy     = float64(y1 - y0)
		length = math.Sqrt(dx*dx + dy*dy)
	)
	if length == 0 {
		return
	}

	// Perpendicular of the unit direction, scaled to half the thickness.
	var (
		half = float64(thickness) / 2
		px   = -dy / length * half
		py   = dx / length * half
	)
	corners := []image.Point{
		{X: int(float64(x0) + px), Y: int(float64(y0) + py)},
		{X: int(float64(x0) - px), Y: int(float64(y0) - py)},
		{X: int(float64(x1) - px), Y: int(float64(y1) - py)},
		{X: int(float64(x1) + px), Y: int(float64(y1) + py)},
	}
	d.fillPolygon(corners, c)

	if rounded {
		d.fillCircle(x0, y0, int(half), c)
		d.fillCircle(x1, y1, int(half), c)
	}
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
