// Package ili9341 draws on ILI9341 TFT panels.
//
// The controller keeps its own frame memory, so nothing is buffered on the host: every
// drawing call opens an address window on the panel and streams RGB565 pixels into it.
// Coordinates outside of the panel are clipped, and drawing calls never fail on bad
// geometry. Transport errors are remembered by the Device and reported by Err.
//
// A Device is not safe for concurrent use.
package ili9341

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"

	"periph.io/x/conn/v3/gpio"
)

var debug bool

func init() {
	debug = os.Getenv("ILI9341_DEBUG") != ""
	if debug {
		SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	} else {
		SetLogger(nil)
	}
}

// Panel dimensions in the vertical orientation.
const (
	DefaultWidth  = 240
	DefaultHeight = 320
)

const (
	// StagingPixels is the capacity of the pixel staging buffer used by fills and text.
	StagingPixels = 512

	// MaxIntersections is the number of edge crossings recorded per scanline by FillPolygon,
	// further crossings are dropped.
	MaxIntersections = 32
)

// Errors
var (
	ErrSize     = errors.New("ili9341: invalid display size")
	ErrResetPin = errors.New("ili9341: reset GPIO pin is invalid")
	ErrDCPin    = errors.New("ili9341: data/command (DC) GPIO pin is invalid")
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

// SetLogger sets the logger for driver diagnostics. The driver is silent by default, or
// logs at debug level to stderr if the ILI9341_DEBUG environment variable is set.
//
// Pass nil to silence the driver again.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

func logger() *slog.Logger {
	return loggerPtr.Load()
}

// Rotation defines pixel rotation.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90° clock wise
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270° clock wise
)

// Panel orientations, as printed on most ILI9341 breakout boards.
const (
	Vertical1   = NoRotation
	Horizontal1 = Rotate90
	Vertical2   = Rotate180
	Horizontal2 = Rotate270
)

func (r Rotation) String() string {
	switch r % 4 {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// Horizontal reports if the rotation puts the long side of the panel on top.
func (r Rotation) Horizontal() bool {
	return r&1 == 1
}

// Config is the display configuration.
type Config struct {
	// Width of the display in pixels, defaults to the panel width for the rotation.
	Width int

	// Height of the display in pixels, defaults to the panel height for the rotation.
	Height int

	// Rotation of the display.
	Rotation Rotation

	// Backlight pin, optional. Brightness changes also set its PWM duty cycle.
	Backlight gpio.PinOut

	// NoInit skips the reset pulse and the register setup, for panels that are already
	// brought up by someone else.
	NoInit bool
}
