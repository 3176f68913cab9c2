// Package conn implements the Linux spidev bus used to talk to the panel controller.
package conn

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"unsafe"

	"tinygo.org/x/drivers"

	"github.com/BeatGlow/ili9341/internal/ioctl"
)

// Definitions from <spi/spidev.h>
const (
	spiCPHA = 0x01
	spiCPOL = 0x02
)

type SPIMode uint8

const (
	SPIMode0 SPIMode = (0 | 0)             //nolint:staticcheck
	SPIMode1 SPIMode = (0 | spiCPHA)       //nolint:staticcheck
	SPIMode2 SPIMode = (spiCPOL | 0)       //nolint:staticcheck
	SPIMode3 SPIMode = (spiCPOL | spiCPHA) //nolint:staticcheck
)

const (
	spiIOCMagic       = 0x6b // 'k'
	spiIOCMessage     = 0x6b00
	spiIOCMode        = 0x6b01
	spiIOCLSBFirst    = 0x6b02
	spiIOCBitsPerWord = 0x6b03
	spiIOCMaxSpeedHz  = 0x6b04
	spiIOCMode32      = 0x6b05
)

const (
	spiDevPath = "/dev/spidev"

	// spiBufSizPath holds the largest transfer the spidev driver accepts.
	spiBufSizPath = "/sys/module/spidev/parameters/bufsiz"

	// DefaultMaxTransfer is the spidev default for bufsiz.
	DefaultMaxTransfer = 4096
)

// spiIOCTransfer is struct spi_ioc_transfer.
type spiIOCTransfer struct {
	txBuf          uint64
	rxBuf          uint64
	length         uint32
	speedHz        uint32
	delayUsecs     uint16
	bitsPerWord    uint8
	csChange       uint8
	txNbits        uint8
	rxNbits        uint8
	wordDelayUsecs uint8
	pad            uint8
}

// SPI implements the spidev interface.
type SPI struct {
	f           *os.File
	fd          uintptr
	mode        SPIMode
	bitsPerWord uint8
	maxSpeedHz  uint32
	maxTransfer int
}

// OpenSPI opens the numbered spi bus with the numbered device. The device often corresponds to the CS pin for that bus.
func OpenSPI(bus, device int) (*SPI, error) {
	spidev := fmt.Sprintf("%s%d.%d", spiDevPath, bus, device)
	f, err := os.OpenFile(spidev, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	c := &SPI{
		f:           f,
		fd:          f.Fd(),
		maxTransfer: readMaxTransfer(spiBufSizPath),
	}
	if err = ioctl.Do(c.fd, ioctl.Pointer(ioctl.Read, &c.mode, spiIOCMode), &c.mode); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = ioctl.Do(c.fd, ioctl.Pointer(ioctl.Read, &c.bitsPerWord, spiIOCBitsPerWord), &c.bitsPerWord); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = ioctl.Do(c.fd, ioctl.Pointer(ioctl.Read, &c.maxSpeedHz, spiIOCMaxSpeedHz), &c.maxSpeedHz); err != nil {
		_ = f.Close()
		return nil, err
	}

	return c, nil
}

// readMaxTransfer reads the spidev bufsiz parameter, falling back to the driver default.
func readMaxTransfer(name string) int {
	b, err := os.ReadFile(name)
	if err != nil {
		return DefaultMaxTransfer
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil || n <= 0 {
		return DefaultMaxTransfer
	}
	return n
}

func (c *SPI) Close() error {
	return c.f.Close()
}

func (c *SPI) String() string {
	return fmt.Sprintf("SPI mode=%d bits per word=%d max speed=%dHz max transfer=%d", c.mode, c.bitsPerWord, c.maxSpeedHz, c.maxTransfer)
}

func (c *SPI) Mode() SPIMode {
	return c.mode
}

func (c *SPI) SetMode(mode SPIMode) error {
	mode &= 0x0f

	if err := ioctl.Do(c.fd, ioctl.Pointer(ioctl.Write, &mode, spiIOCMode), &mode); err != nil {
		return err
	}

	var test SPIMode
	if err := ioctl.Do(c.fd, ioctl.Pointer(ioctl.Read, &test, spiIOCMode), &test); err != nil {
		return err
	}

	if test != mode {
		return fmt.Errorf("conn: SPI attempted to set mode %#02x, but mode %#02x is in use", mode, test)
	}

	c.mode = mode
	return nil
}

func (c *SPI) BitsPerWord() uint8 {
	return c.bitsPerWord
}

func (c *SPI) SetBitsPerWord(bits uint8) error {
	if bits < 8 || bits > 32 {
		return fmt.Errorf("conn: SPI bits per word need to be 8 or more and 32 or less, got %d", bits)
	}

	if c.bitsPerWord != bits {
		if err := ioctl.Do(c.fd, ioctl.Pointer(ioctl.Write, &bits, spiIOCBitsPerWord), &bits); err != nil {
			return err
		}
		c.bitsPerWord = bits
	}

	return nil
}

func (c *SPI) MaxSpeed() int {
	return int(c.maxSpeedHz)
}

func (c *SPI) SetMaxSpeed(v int) error {
	if v < 0 {
		return nil
	}

	u := uint32(v)
	if c.maxSpeedHz != u {
		if err := ioctl.Do(c.fd, ioctl.Pointer(ioctl.Write, &u, spiIOCMaxSpeedHz), &u); err != nil {
			return err
		}
		c.maxSpeedHz = u
	}

	return nil
}

// MaxTransfer is the largest number of bytes the driver accepts in a single transfer.
func (c *SPI) MaxTransfer() int {
	return c.maxTransfer
}

// Tx transmits w and receives into r in one full duplex transfer. Either buffer may be nil,
// if both are set they must have the same length.
func (c *SPI) Tx(w, r []byte) error {
	n := len(w)
	if n == 0 {
		n = len(r)
	} else if r != nil && len(r) != n {
		return fmt.Errorf("conn: SPI transmit and receive buffers differ in size (%d and %d)", len(w), len(r))
	}
	if n == 0 {
		return nil
	}
	if n > c.maxTransfer {
		return fmt.Errorf("conn: SPI transfer of %d bytes exceeds the limit of %d bytes", n, c.maxTransfer)
	}

	transfer := spiIOCTransfer{
		length:      uint32(n),
		speedHz:     c.maxSpeedHz,
		bitsPerWord: c.bitsPerWord,
	}
	if len(w) > 0 {
		transfer.txBuf = uint64(uintptr(unsafe.Pointer(&w[0])))
	}
	if len(r) > 0 {
		transfer.rxBuf = uint64(uintptr(unsafe.Pointer(&r[0])))
	}
	err := ioctl.Do(c.fd, ioctl.Encode(ioctl.Write, uint16(unsafe.Sizeof(transfer)), spiIOCMessage), &transfer)
	runtime.KeepAlive(w)
	runtime.KeepAlive(r)
	return err
}

// Transfer writes a single byte and returns the byte received at the same time.
func (c *SPI) Transfer(b byte) (byte, error) {
	var (
		w = []byte{b}
		r = make([]byte, 1)
	)
	if err := c.Tx(w, r); err != nil {
		return 0, err
	}
	return r[0], nil
}

func (c *SPI) Read(b []byte) (n int, err error) {
	return c.f.Read(b)
}

func (c *SPI) Write(b []byte) (n int, err error) {
	return c.f.Write(b)
}

// Interface checks.
var (
	_ drivers.SPI = (*SPI)(nil)
)
