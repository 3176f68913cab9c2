package framebuffer

import (
	"fmt"
	"image"
	"os"
	"syscall"

	"github.com/BeatGlow/ili9341/internal/ioctl"
)

// From <linux/fb.h>
const (
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
)

// fixScreenInfo is struct fb_fix_screeninfo.
type fixScreenInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

// varScreenInfo is struct fb_var_screeninfo.
type varScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha bitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}

// Open maps a framebuffer device by name, typically /dev/fb[0..x].
func Open(name string) (*Framebuffer, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}

	var (
		fix  fixScreenInfo
		info varScreenInfo
	)
	if err = ioctl.Do(f.Fd(), ioctl.Command(fbioGetFScreenInfo), &fix); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("framebuffer: %s: %w", name, err)
	}
	if err = ioctl.Do(f.Fd(), ioctl.Command(fbioGetVScreenInfo), &info); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("framebuffer: %s: %w", name, err)
	}

	format, err := parseFormat(info.BitsPerPixel, info.Red, info.Green, info.Blue)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	pix, err := syscall.Mmap(int(f.Fd()), 0, int(fix.SmemLen), syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("framebuffer: %s: mmap: %w", name, err)
	}

	// Skip to the visible part of the virtual screen.
	offset := int(info.Yoffset)*int(fix.LineLength) + int(info.Xoffset)*format.BytesPerPixel()
	fb, err := New(pix[offset:], int(info.Xres), int(info.Yres), int(fix.LineLength), format)
	if err != nil {
		_ = syscall.Munmap(pix)
		_ = f.Close()
		return nil, err
	}
	fb.name = name
	fb.rect = image.Rect(0, 0, int(info.Xres), int(info.Yres))
	fb.close = func() error {
		if err := syscall.Munmap(pix); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}
	return fb, nil
}
