// Package emulator is a software ILI9341 controller.
//
// A Panel accepts the same command and data stream as the hardware, keeps the frame
// memory in an RGB565 image and records every transaction, so drawing code can be checked
// and previewed without a display.
package emulator

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/ili9341/pixel"
)

// Frame memory size, in the unrotated orientation.
const (
	Width  = 240
	Height = 320
)

// Controller commands understood by the Panel, other commands are logged and ignored.
const (
	cmdSWRESET = 0x01
	cmdSLPIN   = 0x10
	cmdSLPOUT  = 0x11
	cmdINVOFF  = 0x20
	cmdINVON   = 0x21
	cmdDISPOFF = 0x28
	cmdDISPON  = 0x29
	cmdCASET   = 0x2A
	cmdRASET   = 0x2B
	cmdRAMWR   = 0x2C
	cmdMADCTL  = 0x36
	cmdWRDISBV = 0x51
)

// MADCTL bits.
const (
	madctlMY = 0x80
	madctlMX = 0x40
	madctlMV = 0x20
)

// Errors
var (
	ErrClosed = errors.New("emulator: panel is closed")
)

// Kind of a transaction.
type Kind uint8

// Transaction kinds.
const (
	Select Kind = iota
	Deselect
	Command
	Data
	Reset
)

func (k Kind) String() string {
	switch k {
	case Select:
		return "select"
	case Deselect:
		return "deselect"
	case Command:
		return "command"
	case Data:
		return "data"
	case Reset:
		return "reset"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// Transaction is one call on the Panel.
type Transaction struct {
	Kind Kind

	// Command byte, for Command transactions.
	Command byte

	// Data holds the command arguments or the data bytes.
	Data []byte

	// Level of the reset pin, for Reset transactions.
	Level gpio.Level
}

func (t Transaction) String() string {
	switch t.Kind {
	case Command:
		return fmt.Sprintf("command %#02x % x", t.Command, t.Data)
	case Data:
		return fmt.Sprintf("data (%d bytes)", len(t.Data))
	case Reset:
		return fmt.Sprintf("reset %s", t.Level)
	default:
		return t.Kind.String()
	}
}

// Panel emulates an ILI9341 on a SPI bus.
type Panel struct {
	// Log has every transaction, unless NoLog is set.
	Log   []Transaction
	NoLog bool

	// Fail is returned by Command and Data when set.
	Fail error

	// Unselected counts Command and Data calls made while the panel was not selected.
	Unselected int

	// Reselected counts Select calls made while the panel was already selected.
	Reselected int

	mu         sync.Mutex
	gram       *pixel.RGB565Image
	selected   bool
	closed     bool
	reset      gpio.Level
	madctl     byte
	inverted   bool
	on         bool
	sleeping   bool
	brightness uint8

	cmd          byte
	args         []byte
	col0, col1   int
	page0, page1 int
	col, page    int
	pending      []byte
	pixelBytes   int
}

// New returns a panel with blank frame memory, as after power on.
func New() *Panel {
	p := &Panel{
		gram:  pixel.NewRGB565Image(Width, Height),
		reset: gpio.High,
	}
	p.powerOn()
	return p
}

func (p *Panel) powerOn() {
	p.madctl = 0
	p.inverted = false
	p.on = false
	p.sleeping = true
	p.brightness = 0
	p.cmd = 0
	p.args = p.args[:0]
	p.col0, p.col1 = 0, Width-1
	p.page0, p.page1 = 0, Height-1
	p.col, p.page = 0, 0
	p.pending = p.pending[:0]
}

func (p *Panel) String() string {
	return "ILI9341 emulator"
}

func (p *Panel) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

func (p *Panel) record(t Transaction) {
	if !p.NoLog {
		p.Log = append(p.Log, t)
	}
}

// Reset sets the level of the reset pin. The controller resets on the rising edge.
func (p *Panel) Reset(level gpio.Level) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	p.record(Transaction{Kind: Reset, Level: level})
	if p.reset == gpio.Low && level == gpio.High {
		p.powerOn()
	}
	p.reset = level
	return nil
}

func (p *Panel) Select() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	p.record(Transaction{Kind: Select})
	if p.selected {
		p.Reselected++
	}
	p.selected = true
	return nil
}

func (p *Panel) Deselect() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	p.record(Transaction{Kind: Deselect})
	p.selected = false
	return nil
}

func (p *Panel) Command(cmnd byte, args ...byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.check(); err != nil {
		return err
	}
	p.record(Transaction{Kind: Command, Command: cmnd, Data: append([]byte(nil), args...)})

	p.cmd = cmnd
	p.args = p.args[:0]
	p.pending = p.pending[:0]
	switch cmnd {
	case cmdSWRESET:
		p.powerOn()
	case cmdSLPIN:
		p.sleeping = true
	case cmdSLPOUT:
		p.sleeping = false
	case cmdINVOFF:
		p.inverted = false
	case cmdINVON:
		p.inverted = true
	case cmdDISPOFF:
		p.on = false
	case cmdDISPON:
		p.on = true
	case cmdRAMWR:
		p.col, p.page = p.col0, p.page0
	}
	p.write(args)
	return nil
}

func (p *Panel) Data(data ...byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.check(); err != nil {
		return err
	}
	if !p.NoLog {
		p.record(Transaction{Kind: Data, Data: append([]byte(nil), data...)})
	}
	p.write(data)
	return nil
}

func (p *Panel) check() error {
	if p.closed {
		return ErrClosed
	}
	if p.Fail != nil {
		return p.Fail
	}
	if !p.selected {
		p.Unselected++
	}
	return nil
}

func (p *Panel) write(data []byte) {
	if len(data) == 0 {
		return
	}
	if p.cmd == cmdRAMWR {
		p.writePixels(data)
		return
	}

	p.args = append(p.args, data...)
	switch p.cmd {
	case cmdCASET:
		if len(p.args) >= 4 {
			p.col0, p.col1 = word(p.args[0:]), word(p.args[2:])
		}
	case cmdRASET:
		if len(p.args) >= 4 {
			p.page0, p.page1 = word(p.args[0:]), word(p.args[2:])
		}
	case cmdMADCTL:
		p.madctl = p.args[0]
	case cmdWRDISBV:
		p.brightness = p.args[0]
	}
}

func word(b []byte) int {
	return int(b[0])<<8 | int(b[1])
}

// writePixels stores big-endian pixels at the memory write cursor. A byte left over from
// the previous call is the high byte of the first pixel.
func (p *Panel) writePixels(data []byte) {
	p.pixelBytes += len(data)
	if len(p.pending) == 1 {
		p.pending = append(p.pending, data[0])
		p.store(pixel.RGB565(word(p.pending)))
		p.pending = p.pending[:0]
		data = data[1:]
	}
	for ; len(data) >= 2; data = data[2:] {
		p.store(pixel.RGB565(word(data)))
	}
	if len(data) == 1 {
		p.pending = append(p.pending, data[0])
	}
}

func (p *Panel) store(c pixel.RGB565) {
	if x, y, ok := p.physical(p.col, p.page); ok {
		p.gram.SetRGB565(x, y, c)
	}

	// The cursor wraps around inside the window.
	if p.col++; p.col > p.col1 {
		p.col = p.col0
		if p.page++; p.page > p.page1 {
			p.page = p.page0
		}
	}
}

// physical maps a column and page address to the frame memory.
func (p *Panel) physical(col, page int) (x, y int, ok bool) {
	x, y = col, page
	if p.madctl&madctlMV != 0 {
		x, y = page, col
	}
	if p.madctl&madctlMX != 0 {
		x = Width - 1 - x
	}
	if p.madctl&madctlMY != 0 {
		y = Height - 1 - y
	}
	return x, y, x >= 0 && y >= 0 && x < Width && y < Height
}

// Size is the addressable area in the current memory access mode.
func (p *Panel) Size() (w, h int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.size()
}

func (p *Panel) size() (w, h int) {
	if p.madctl&madctlMV != 0 {
		return Height, Width
	}
	return Width, Height
}

// View returns the frame memory as seen through the current memory access mode, so a pixel
// written at column x and page y is at (x, y).
func (p *Panel) View() *pixel.RGB565Image {
	p.mu.Lock()
	defer p.mu.Unlock()

	w, h := p.size()
	view := pixel.NewRGB565Image(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px, py, _ := p.physical(x, y)
			view.SetRGB565(x, y, p.gram.RGB565At(px, py))
		}
	}
	return view
}

// GRAM returns a copy of the frame memory in the unrotated orientation.
func (p *Panel) GRAM() *pixel.RGB565Image {
	p.mu.Lock()
	defer p.mu.Unlock()
	gram := pixel.NewRGB565Image(Width, Height)
	copy(gram.Pix, p.gram.Pix)
	return gram
}

// Screen renders what the panel shows: the view with inversion applied, and black while the
// display is off or asleep.
func (p *Panel) Screen() *image.RGBA {
	view := p.View()

	p.mu.Lock()
	on, inverted := p.on && !p.sleeping, p.inverted
	p.mu.Unlock()

	b := view.Bounds()
	out := image.NewRGBA(b)
	if !on {
		return out
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := view.RGB565At(x, y)
			if inverted {
				c = ^c
			}
			out.Set(x, y, c)
		}
	}
	return out
}

// State is a snapshot of the controller registers.
type State struct {
	MADCTL     byte
	Inverted   bool
	On         bool
	Sleeping   bool
	Brightness uint8
	Selected   bool
	Window     image.Rectangle
}

// State returns the current register values.
func (p *Panel) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return State{
		MADCTL:     p.madctl,
		Inverted:   p.inverted,
		On:         p.on,
		Sleeping:   p.sleeping,
		Brightness: p.brightness,
		Selected:   p.selected,
		Window:     image.Rect(p.col0, p.page0, p.col1+1, p.page1+1),
	}
}

// PixelBytes is the number of bytes written to the frame memory.
func (p *Panel) PixelBytes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pixelBytes
}

// Pending reports if half a pixel is waiting for its low byte.
func (p *Panel) Pending() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending) > 0
}

// Commands returns the command bytes from the log, in order.
func (p *Panel) Commands() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []byte
	for _, t := range p.Log {
		if t.Kind == Command {
			out = append(out, t.Command)
		}
	}
	return out
}

// Count returns how often cmnd appears in the log.
func (p *Panel) Count(cmnd byte) (n int) {
	for _, c := range p.Commands() {
		if c == cmnd {
			n++
		}
	}
	return
}

// ClearLog forgets the recorded transactions and counters.
func (p *Panel) ClearLog() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Log = p.Log[:0]
	p.pixelBytes = 0
	p.Unselected = 0
	p.Reselected = 0
}

// Clear fills the frame memory with c without logging.
func (p *Panel) Clear(c color.Color) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gram.Fill(c)
}
