package ili9341

import (
	"errors"
	"testing"

	"github.com/BeatGlow/ili9341/pixel"
)

func TestReorient(t *testing.T) {
	vertical := state{width: 240, height: 320, rotation: NoRotation}
	tests := []struct {
		rotation Rotation
		w, h     int
	}{
		{NoRotation, 240, 320},
		{Rotate90, 320, 240},
		{Rotate180, 240, 320},
		{Rotate270, 320, 240},
	}
	for _, test := range tests {
		t.Run(test.rotation.String(), func(it *testing.T) {
			s := reorient(vertical, test.rotation)
			if s.width != test.w || s.height != test.h || s.rotation != test.rotation {
				it.Errorf("expected %dx%d at %s, got %dx%d at %s", test.w, test.h, test.rotation, s.width, s.height, s.rotation)
			}
			if back := reorient(s, NoRotation); back != vertical {
				it.Errorf("expected %+v after rotating back, got %+v", vertical, back)
			}
		})
	}
	if vertical.width != 240 {
		t.Error("expected reorient to leave its input alone")
	}
}

func TestMADCTL(t *testing.T) {
	tests := []struct {
		rotation Rotation
		want     byte
	}{
		{Vertical1, MADCTL_MX | MADCTL_BGR},
		{Horizontal1, MADCTL_MX | MADCTL_MY | MADCTL_MV | MADCTL_BGR},
		{Vertical2, MADCTL_MY | MADCTL_BGR},
		{Horizontal2, MADCTL_MV | MADCTL_BGR},
	}
	for _, test := range tests {
		if v := madctl(test.rotation); v != test.want {
			t.Errorf("expected %#02x for %s, got %#02x", test.want, test.rotation, v)
		}
	}
}

func TestSetOrientation(t *testing.T) {
	d, p := newTestDevice(t, NoRotation)
	d.SetOrientation(Rotate90)

	if d.Width() != 320 || d.Height() != 240 {
		t.Errorf("expected 320x240, got %dx%d", d.Width(), d.Height())
	}
	if len(p.Log) != 3 {
		t.Fatalf("expected select, MADCTL and deselect, got %d transactions", len(p.Log))
	}
	if c := p.Log[1]; c.Command != MADCTL || len(c.Data) != 1 || c.Data[0] != madctl(Rotate90) {
		t.Errorf("expected MADCTL %#02x, got %s", madctl(Rotate90), c)
	}

	// The whole rotated area is addressable.
	d.FillScreen(pixel.Green)
	if v := p.View().Count(pixel.Green); v != 320*240 {
		t.Errorf("expected %d green pixels, got %d", 320*240, v)
	}
	checkBracket(t, p)
}

func TestSetOrientationFailed(t *testing.T) {
	d, p := newTestDevice(t, NoRotation)
	p.Fail = errors.New("bus error")
	d.SetOrientation(Rotate90)
	if d.Err() == nil {
		t.Fatal("expected an error")
	}

	// The MADCTL write failed, so the panel kept its orientation.
	if d.Width() != 240 || d.Height() != 320 || d.Rotation() != NoRotation {
		t.Errorf("expected 240x320 at 0°, got %dx%d at %s", d.Width(), d.Height(), d.Rotation())
	}

	// Skipped entirely while the error is pending.
	p.Fail = nil
	p.ClearLog()
	d.SetOrientation(Rotate270)
	if len(p.Log) != 0 {
		t.Errorf("expected no transactions, got %d", len(p.Log))
	}
	if d.Width() != 240 || d.Height() != 320 {
		t.Errorf("expected 240x320, got %dx%d", d.Width(), d.Height())
	}

	d.ClearErr()
	d.SetOrientation(Rotate270)
	if d.Width() != 320 || d.Height() != 240 || d.Rotation() != Rotate270 {
		t.Errorf("expected 320x240 at 270°, got %dx%d at %s", d.Width(), d.Height(), d.Rotation())
	}
}

func TestRotationString(t *testing.T) {
	if v := Rotate270.String(); v != "270°" {
		t.Errorf("expected 270°, got %s", v)
	}
	if !Rotate90.Horizontal() || Rotate180.Horizontal() {
		t.Error("expected 90° to be horizontal and 180° not")
	}
}
