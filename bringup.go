package ili9341

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// initCommands is the register setup after a software reset, for a 240x320 panel in
// 16 bits per pixel mode.
var initCommands = [][]byte{
	{PWCTRA, 0x39, 0x2C, 0x00, 0x34, 0x02},
	{PWCTRB, 0x00, 0xC1, 0x30},
	{DTCTRA, 0x85, 0x00, 0x78},
	{DTCTRB, 0x00, 0x00},
	{PWRONCTR, 0x64, 0x03, 0x12, 0x81},
	{PUMPRCTR, 0x20},
	{PWCTR1, 0x23},       // VRH[5:0]
	{PWCTR2, 0x10},       // SAP[2:0], BT[3:0]
	{VMCTR1, 0x3E, 0x28}, // VCOM
	{VMCTR2, 0x86},
	{MADCTL, 0x48},
	{PIXFMT, 0x55}, // 16-bits per pixel
	{FRMCTR1, 0x00, 0x18},
	{DFUNCTR, 0x08, 0x82, 0x27},
	{GAMMA3GCTR, 0x00},
	{GAMMASET, 0x01},
	{GMCTRP1, 0x0F, 0x31, 0x2B, 0x0C, 0x0E, 0x08, 0x4E, 0xF1, 0x37, 0x07, 0x10, 0x03, 0x0E, 0x09, 0x00},
	{GMCTRN1, 0x00, 0x0E, 0x14, 0x03, 0x11, 0x07, 0x31, 0xC1, 0x48, 0x08, 0x0F, 0x0C, 0x31, 0x36, 0x0F},
}

// bringUp pulses the reset pin and configures the controller.
func (d *Device) bringUp() (err error) {
	if err = d.c.Reset(gpio.High); err != nil {
		return fmt.Errorf("ili9341: reset: %w", err)
	}
	sleep(10 * time.Millisecond)
	if err = d.c.Reset(gpio.Low); err != nil {
		return fmt.Errorf("ili9341: reset: %w", err)
	}
	sleep(10 * time.Millisecond)
	if err = d.c.Reset(gpio.High); err != nil {
		return fmt.Errorf("ili9341: reset: %w", err)
	}
	sleep(120 * time.Millisecond)

	d.begin()
	d.command(SWRESET)
	sleep(150 * time.Millisecond)
	d.commands(initCommands)
	d.command(SLPOUT)
	sleep(120 * time.Millisecond)
	d.command(DISPON)
	d.command(MADCTL, madctl(d.state.rotation))
	d.end()

	logger().Debug("bring-up done", "conn", d.c.String(), "rotation", d.state.rotation.String(), "error", d.err)
	return d.err
}
