package ili9341

import (
	"fmt"
	"io"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"tinygo.org/x/drivers"

	"github.com/BeatGlow/ili9341/conn"
)

// Conn is the connection interface for communicating with the controller.
//
// Select and Deselect bracket every drawing call, Command and Data are only
// called in between.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Reset sets the reset pin to the provided level.
	Reset(gpio.Level) error

	// Select claims the bus for the controller (chip select active).
	Select() error

	// Deselect releases the bus.
	Deselect() error

	// Command sends a command byte with optional arguments.
	Command(byte, ...byte) error

	// Data sends data bytes.
	Data(...byte) error
}

// SPIConfig describes the SPI bus configuration.
type SPIConfig struct {
	Bus     int
	Device  int
	Mode    conn.SPIMode
	Speed   physic.Frequency
	DataLow bool

	// MaxTransfer is the largest single bus write, defaults to the spidev buffer size.
	MaxTransfer int

	Reset gpio.PinOut
	DC    gpio.PinOut

	// CE is an optional chip enable pin driven by Select and Deselect.
	CE gpio.PinOut
}

// DefaultSPIConfig are the default configuration values.
var DefaultSPIConfig = SPIConfig{
	Bus:    0,
	Device: 0,
	Mode:   conn.SPIMode0,
	Speed:  40 * physic.MegaHertz,
	Reset:  gpioreg.ByName("GPIO25"),
	DC:     gpioreg.ByName("GPIO24"),
}

// ValidSPISpeeds are common valid SPI bus speeds.
var ValidSPISpeeds = []physic.Frequency{
	500 * physic.KiloHertz,
	1 * physic.MegaHertz,
	2 * physic.MegaHertz,
	4 * physic.MegaHertz,
	8 * physic.MegaHertz,
	16 * physic.MegaHertz,
	20 * physic.MegaHertz,
	24 * physic.MegaHertz,
	32 * physic.MegaHertz,
	40 * physic.MegaHertz,
	48 * physic.MegaHertz,
	50 * physic.MegaHertz,
}

// OpenSPI opens the spidev bus and GPIO pins from config, or from DefaultSPIConfig if config is nil.
func OpenSPI(config *SPIConfig) (Conn, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}
	if err := checkPins(config); err != nil {
		return nil, err
	}

	if config.Speed == 0 {
		config.Speed = DefaultSPIConfig.Speed
	}
	var valid bool
	for _, speed := range ValidSPISpeeds {
		if valid = speed == config.Speed; valid {
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("ili9341: invalid SPI speed %s", config.Speed)
	}

	bus, err := conn.OpenSPI(config.Bus, config.Device)
	if err != nil {
		return nil, err
	}
	if err = bus.SetMode(config.Mode); err != nil {
		_ = bus.Close()
		return nil, err
	}
	if err = bus.SetBitsPerWord(8); err != nil {
		_ = bus.Close()
		return nil, err
	}
	if err = bus.SetMaxSpeed(int(config.Speed / physic.Hertz)); err != nil {
		_ = bus.Close()
		return nil, err
	}
	if config.MaxTransfer == 0 {
		config.MaxTransfer = bus.MaxTransfer()
	}

	c, err := NewSPIConn(bus, config)
	if err != nil {
		_ = bus.Close()
		return nil, err
	}
	c.(*spiConn).closer = bus
	c.(*spiConn).name = bus.String()
	return c, nil
}

// NewSPIConn drives the controller over any SPI bus, with the control pins from config.
// Closing the returned Conn does not close the bus.
func NewSPIConn(bus drivers.SPI, config *SPIConfig) (Conn, error) {
	if err := checkPins(config); err != nil {
		return nil, err
	}
	maxTransfer := config.MaxTransfer
	if maxTransfer <= 0 {
		maxTransfer = conn.DefaultMaxTransfer
	}
	return &spiConn{
		bus:         bus,
		name:        fmt.Sprintf("%T", bus),
		maxTransfer: maxTransfer,
		dataLow:     config.DataLow,
		reset:       config.Reset,
		dc:          config.DC,
		cs:          config.CE,
	}, nil
}

func checkPins(config *SPIConfig) error {
	if config.Reset == nil || config.Reset == gpio.INVALID {
		return ErrResetPin
	}
	if config.DC == nil || config.DC == gpio.INVALID {
		return ErrDCPin
	}
	return nil
}

type spiConn struct {
	bus         drivers.SPI
	closer      io.Closer
	name        string
	maxTransfer int
	reset       gpio.PinOut
	dc          gpio.PinOut
	dcLevel     gpio.Level
	dcValid     bool
	cs          gpio.PinOut
	dataLow     bool
	cmd         [1]byte
}

func (c *spiConn) String() string {
	return fmt.Sprintf("SPI bus %s", c.name)
}

func (c *spiConn) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

func (c *spiConn) Reset(level gpio.Level) error {
	return c.reset.Out(level)
}

func (c *spiConn) Select() error {
	return c.updateCS(gpio.Low)
}

func (c *spiConn) Deselect() error {
	return c.updateCS(gpio.High)
}

func (c *spiConn) updateDC(level gpio.Level) error {
	if !c.dcValid || c.dcLevel != level {
		if err := c.dc.Out(level); err != nil {
			return err
		}
		c.dcLevel = level
		c.dcValid = true
	}
	return nil
}

func (c *spiConn) updateCS(level gpio.Level) error {
	if c.cs == nil {
		return nil
	}
	return c.cs.Out(level)
}

func (c *spiConn) Command(cmnd byte, args ...byte) (err error) {
	if err = c.updateDC(gpio.Level(c.dataLow)); err != nil {
		return
	}
	c.cmd[0] = cmnd
	if err = c.bus.Tx(c.cmd[:], nil); err != nil {
		return
	}
	if len(args) > 0 {
		return c.Data(args...)
	}
	return
}

func (c *spiConn) Data(data ...byte) (err error) {
	if len(data) == 0 {
		return
	}
	if err = c.updateDC(gpio.Level(!c.dataLow)); err != nil {
		return
	}
	return c.writeChunked(data)
}

func (c *spiConn) writeChunked(data []byte) (err error) {
	if len(data) <= c.maxTransfer {
		return c.bus.Tx(data, nil)
	}

	logger().Debug("chunked write", "bytes", len(data), "chunks", (len(data)+c.maxTransfer-1)/c.maxTransfer)
	for len(data) > 0 {
		n := len(data)
		if n > c.maxTransfer {
			n = c.maxTransfer
		}
		if err = c.bus.Tx(data[:n], nil); err != nil {
			return
		}
		data = data[n:]
	}
	return
}
