package ili9341

import (
	"encoding/binary"
	"image"

	"github.com/BeatGlow/ili9341/pixel"
)

// clipResult tells how a shape relates to the display bounds.
type clipResult uint8

const (
	drawn clipResult = iota
	partiallyClipped
	fullyClipped
)

func (r clipResult) String() string {
	switch r {
	case drawn:
		return "drawn"
	case partiallyClipped:
		return "partially clipped"
	default:
		return "fully clipped"
	}
}

// normalize turns a rectangle with a negative width or height into the equivalent
// rectangle extending right and down from its top-left corner.
func normalize(x, y, w, h int) (int, int, int, int) {
	if w < 0 {
		x += w + 1
		w = -w
	}
	if h < 0 {
		y += h + 1
		h = -h
	}
	return x, y, w, h
}

// clip normalizes and clips a rectangle to the display.
func (s state) clip(x, y, w, h int) (image.Rectangle, clipResult) {
	x, y, w, h = normalize(x, y, w, h)
	r := image.Rect(x, y, x+w, y+h)
	c := r.Intersect(image.Rect(0, 0, s.width, s.height))
	switch {
	case c.Empty():
		return c, fullyClipped
	case c != r:
		return c, partiallyClipped
	default:
		return c, drawn
	}
}

// setWindow opens the address window (x0, y0)-(x1, y1), both corners inclusive. The
// window is not checked against the display bounds.
func (d *Device) setWindow(x0, y0, x1, y1 int) {
	d.commands([][]byte{
		{CASET, byte(x0 >> 8), byte(x0), byte(x1 >> 8), byte(x1)}, // Column address
		{RASET, byte(y0 >> 8), byte(y0), byte(y1 >> 8), byte(y1)}, // Row address
		{RAMWR}, // Write to RAM
	})
}

// openWindow opens the address window for a clipped rectangle.
func (d *Device) openWindow(r image.Rectangle) {
	d.setWindow(r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1)
}

// fill streams n pixels of color c to the open window.
func (d *Device) fill(n int, c pixel.RGB565) {
	if n <= 0 {
		return
	}
	var (
		buf   [StagingPixels * 2]byte
		chunk = min(n, StagingPixels)
	)
	for i := 0; i < chunk; i++ {
		binary.BigEndian.PutUint16(buf[i*2:], uint16(c))
	}
	for n > 0 {
		k := min(n, StagingPixels)
		d.data(buf[:k*2])
		n -= k
	}
}

// stream collects pixels for the open window and sends them in chunks of StagingPixels.
type stream struct {
	d   *Device
	buf [StagingPixels * 2]byte
	n   int
}

func (s *stream) push(c pixel.RGB565) {
	binary.BigEndian.PutUint16(s.buf[s.n:], uint16(c))
	if s.n += 2; s.n == len(s.buf) {
		s.flush()
	}
}

func (s *stream) flush() {
	if s.n > 0 {
		s.d.data(s.buf[:s.n])
		s.n = 0
	}
}
