package ili9341

import (
	"image"
	"testing"

	"github.com/BeatGlow/ili9341/pixel"
)

func TestPolygonTooFewPoints(t *testing.T) {
	d, p := newTestDevice(t, NoRotation)
	d.DrawPolygon(nil, pixel.Red)
	d.DrawPolygon([]image.Point{{1, 1}}, pixel.Red)
	d.DrawPolygonThick([]image.Point{{1, 1}}, 3, false, pixel.Red)
	d.FillPolygon([]image.Point{{1, 1}, {10, 10}}, pixel.Red)
	if v := len(p.Log); v != 0 {
		t.Errorf("expected no transactions, got %d", v)
	}
}

func TestFillPolygonSquare(t *testing.T) {
	d, p := newTestDevice(t, NoRotation)
	d.FillPolygon([]image.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, pixel.Red)
	set := painted(p, pixel.Red)
	if len(set) != 121 {
		t.Errorf("expected 121 pixels, got %d", len(set))
	}
	for y := 0; y <= 10; y++ {
		for x := 0; x <= 10; x++ {
			if !set[image.Pt(x, y)] {
				t.Fatalf("expected pixel at (%d,%d)", x, y)
			}
		}
	}
	checkBracket(t, p)
}

func TestFillPolygonTriangle(t *testing.T) {
	d, p := newTestDevice(t, NoRotation)
	d.FillPolygon([]image.Point{{20, 20}, {100, 20}, {20, 100}}, pixel.Red)
	set := painted(p, pixel.Red)
	for _, pt := range []image.Point{{20, 20}, {100, 20}, {20, 100}, {40, 40}, {59, 60}} {
		if !set[pt] {
			t.Errorf("expected pixel at %s", pt)
		}
	}
	for pt := range set {
		if pt.X < 20 || pt.Y < 20 || pt.X+pt.Y > 120 {
			t.Errorf("pixel %s is outside of the triangle", pt)
		}
	}
}

func TestFillPolygonClipped(t *testing.T) {
	d, p := newTestDevice(t, NoRotation)
	d.FillPolygon([]image.Point{{-50, -50}, {300, -50}, {300, 400}, {-50, 400}}, pixel.Red)
	if v := len(painted(p, pixel.Red)); v != 240*320 {
		t.Errorf("expected the whole screen, got %d pixels", v)
	}
	if err := d.Err(); err != nil {
		t.Fatal(err)
	}

	d, p = newTestDevice(t, NoRotation)
	d.FillPolygon([]image.Point{{0, 400}, {10, 400}, {10, 500}}, pixel.Red)
	if v := p.Commands(); len(v) != 0 {
		t.Errorf("expected no commands, got % x", v)
	}
}

func TestFillPolygonIntersections(t *testing.T) {
	// A comb with 20 teeth crosses rows in the teeth more than MaxIntersections times.
	var points []image.Point
	for i := 0; i < 20; i++ {
		points = append(points, image.Pt(i*10, 0), image.Pt(i*10+5, 8))
	}
	points = append(points, image.Pt(200, 20), image.Pt(0, 20))

	d, p := newTestDevice(t, NoRotation)
	d.FillPolygon(points, pixel.Red)
	set := painted(p, pixel.Red)
	for _, pt := range []image.Point{{0, 15}, {100, 15}, {198, 15}} {
		if !set[pt] {
			t.Errorf("expected pixel at %s", pt)
		}
	}
	checkBracket(t, p)
}

func TestDrawPolygon(t *testing.T) {
	d, p := newTestDevice(t, NoRotation)
	d.DrawPolygon([]image.Point{{10, 10}, {50, 10}, {10, 50}}, pixel.Red)
	set := painted(p, pixel.Red)
	for _, pt := range []image.Point{{30, 10}, {30, 30}, {10, 30}} {
		if !set[pt] {
			t.Errorf("expected pixel at %s", pt)
		}
	}
	if set[image.Pt(20, 20)] {
		t.Error("expected the inside to stay empty")
	}
	checkBracket(t, p)
}

func TestDrawPolygonThick(t *testing.T) {
	d, p := newTestDevice(t, NoRotation)
	d.DrawPolygonThick([]image.Point{{20, 20}, {120, 20}, {120, 120}, {20, 120}}, 5, true, pixel.Red)
	set := painted(p, pixel.Red)
	for _, pt := range []image.Point{{70, 18}, {70, 22}, {122, 70}, {20, 70}} {
		if !set[pt] {
			t.Errorf("expected pixel at %s", pt)
		}
	}
	if set[image.Pt(70, 70)] {
		t.Error("expected the inside to stay empty")
	}
	checkBracket(t, p)
}
