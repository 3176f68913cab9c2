package ili9341

import (
	"image"

	"github.com/BeatGlow/ili9341/pixel"
)

// DrawPolygon connects the points with one pixel wide lines, closing the outline from the last
// point back to the first. At least two points are needed.
func (d *Device) DrawPolygon(points []image.Point, c pixel.RGB565) {
	if len(points) < 2 {
		return
	}

	d.begin()
	prev := points[len(points)-1]
	for _, p := range points {
		d.drawLine(prev.X, prev.Y, p.X, p.Y, c)
		prev = p
	}
	d.end()
}

// DrawPolygonThick is DrawPolygon with lines of thickness pixels, see DrawLineThick.
func (d *Device) DrawPolygonThick(points []image.Point, thickness int, rounded bool, c pixel.RGB565) {
	if len(points) < 2 || thickness == 0 {
		return
	}

	d.begin()
	prev := points[len(points)-1]
	for _, p := range points {
		d.drawLineThick(prev.X, prev.Y, p.X, p.Y, thickness, rounded, c)
		prev = p
	}
	d.end()
}

// FillPolygon fills the polygon with a scanline fill. At least three points are needed.
//
// Rows crossing more than MaxIntersections edges are filled with the first
// MaxIntersections crossings only.
func (d *Device) FillPolygon(points []image.Point, c pixel.RGB565) {
	if len(points) < 3 {
		return
	}

	d.begin()
	d.fillPolygon(points, c)
	d.end()
}

func (d *Device) fillPolygon(points []image.Point, c pixel.RGB565) {
	if len(points) < 3 {
		return
	}

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	if minY >= d.state.height || maxY < 0 {
		return
	}
	minY, maxY = max(minY, 0), min(maxY, d.state.height-1)

	var nodes [MaxIntersections]int
	for y := minY; y <= maxY; y++ {
		n := intersect(points, y, &nodes)

		// Insertion sort, n is small.
		for i := 1; i < n; i++ {
			key, j := nodes[i], i-1
			for ; j >= 0 && nodes[j] > key; j-- {
				nodes[j+1] = nodes[j]
			}
			nodes[j+1] = key
		}

		for i := 0; i+1 < n; i += 2 {
			x0, x1 := nodes[i], nodes[i+1]
			if x0 >= d.state.width {
				break
			}
			x1 = min(x1, d.state.width-1)
			if x1 >= 0 && x1 >= x0 {
				d.span(x0, x1, y, c)
			}
		}

		// Horizontal edges on this row are part of the outline, the crossings miss them.
		prev := points[len(points)-1]
		for _, p := range points {
			if p.Y == y && prev.Y == y {
				d.span(min(p.X, prev.X), max(p.X, prev.X), y, c)
			}
			prev = p
		}
	}
}

// intersect records the x positions where row y crosses the polygon edges in nodes, and
// returns their count.
func intersect(points []image.Point, y int, nodes *[MaxIntersections]int) (n int) {
	var dropped int
	prev := points[len(points)-1]
	for _, p := range points {
		if (p.Y < y && prev.Y >= y) || (prev.Y < y && p.Y >= y) {
			if n < len(nodes) {
				nodes[n] = p.X + (y-p.Y)*(prev.X-p.X)/(prev.Y-p.Y)
				n++
			} else {
				dropped++
			}
		}
		prev = p
	}
	if dropped > 0 {
		logger().Debug("polygon intersections dropped", "row", y, "dropped", dropped)
	}
	return
}
