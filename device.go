package ili9341

import (
	"errors"
	"fmt"
	"image"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// state is the part of the Device that changes with the orientation.
type state struct {
	width    int
	height   int
	rotation Rotation
}

// Device is an ILI9341 panel.
type Device struct {
	c         Conn
	state     state
	backlight gpio.PinOut
	err       error
	selected  bool
}

// New sets up the panel behind c. The Conn is not closed by the Device, unless Close is called.
func New(c Conn, config *Config) (*Device, error) {
	if config == nil {
		config = new(Config)
	}

	d := &Device{
		c:         c,
		backlight: config.Backlight,
	}
	if err := d.init(config); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Device) init(config *Config) (err error) {
	rotation := config.Rotation & 3
	width, height := abs(config.Width), abs(config.Height)
	if width == 0 {
		if rotation.Horizontal() {
			width = DefaultHeight
		} else {
			width = DefaultWidth
		}
	}
	if height == 0 {
		if rotation.Horizontal() {
			height = DefaultWidth
		} else {
			height = DefaultHeight
		}
	}
	if !rotation.Horizontal() && (width > DefaultWidth || height > DefaultHeight) {
		return fmt.Errorf("%w %dx%d, maximum size is %dx%d at %s rotation", ErrSize, width, height, DefaultWidth, DefaultHeight, rotation)
	} else if rotation.Horizontal() && (width > DefaultHeight || height > DefaultWidth) {
		return fmt.Errorf("%w %dx%d, maximum size is %dx%d at %s rotation", ErrSize, width, height, DefaultHeight, DefaultWidth, rotation)
	}
	d.state = state{width: width, height: height, rotation: rotation}

	if config.NoInit {
		return nil
	}
	return d.bringUp()
}

func (d *Device) String() string {
	return fmt.Sprintf("ILI9341 %dx%d", d.state.width, d.state.height)
}

// Width of the display in pixels, for the current rotation.
func (d *Device) Width() int { return d.state.width }

// Height of the display in pixels, for the current rotation.
func (d *Device) Height() int { return d.state.height }

// Rotation is the current rotation.
func (d *Device) Rotation() Rotation { return d.state.rotation }

// Bounds is the display bounding box (dimensions).
func (d *Device) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.state.width, d.state.height)
}

// Err returns the first transport error. Once a transport call failed, all later drawing is
// skipped until ClearErr is called.
func (d *Device) Err() error {
	return d.err
}

// ClearErr forgets the transport error, so drawing resumes.
func (d *Device) ClearErr() {
	d.err = nil
}

func (d *Device) fail(err error) {
	if d.err == nil {
		d.err = fmt.Errorf("ili9341: %s: %w", d.c, err)
		logger().Debug("transport failed, drawing is suspended", "error", err)
	}
}

// begin selects the controller.
func (d *Device) begin() {
	if d.err != nil {
		return
	}
	if err := d.c.Select(); err != nil {
		d.fail(err)
		return
	}
	d.selected = true
}

// end deselects the controller, if begin selected it.
func (d *Device) end() {
	if !d.selected {
		return
	}
	d.selected = false
	if err := d.c.Deselect(); err != nil {
		d.fail(err)
	}
}

func (d *Device) command(cmnd byte, data ...byte) {
	if d.err != nil {
		return
	}
	if err := d.c.Command(cmnd, data...); err != nil {
		d.fail(err)
	}
}

func (d *Device) commands(commands [][]byte) {
	for _, command := range commands {
		d.command(command[0], command[1:]...)
	}
}

func (d *Device) data(data []byte) {
	if d.err != nil || len(data) == 0 {
		return
	}
	if err := d.c.Data(data...); err != nil {
		d.fail(err)
	}
}

// Close turns the display off and closes the connection.
func (d *Device) Close() error {
	d.Show(false)
	return errors.Join(d.err, d.c.Close())
}

// Show toggles the display on or off.
func (d *Device) Show(show bool) {
	var command = byte(DISPOFF)
	if show {
		command = DISPON
	}
	d.begin()
	d.command(command)
	d.end()
}

// InvertColors toggles color inversion of the whole panel.
func (d *Device) InvertColors(invert bool) {
	var command = byte(INVOFF)
	if invert {
		command = INVON
	}
	d.begin()
	d.command(command)
	d.end()
}

// SetBrightness sets the display brightness register, and the backlight duty cycle if the
// Device has a backlight pin.
func (d *Device) SetBrightness(level uint8) {
	d.begin()
	d.command(WRDISBV, level)
	d.end()

	if d.backlight == nil || d.err != nil {
		return
	}
	const (
		step = gpio.DutyMax / 0xFF
		rate = 2 * physic.KiloHertz
	)
	logger().Debug("backlight", "duty", step*gpio.Duty(level), "rate", rate)
	if err := d.backlight.PWM(step*gpio.Duty(level), rate); err != nil {
		d.fail(err)
	}
}

// sleep is replaced in tests.
var sleep = time.Sleep

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
