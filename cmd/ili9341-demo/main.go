// Command ili9341-demo runs the test scenes on an ILI9341 panel connected over SPI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/ili9341"
	"github.com/BeatGlow/ili9341/internal/demo"
)

func main() {
	spiBusFlag := flag.Int("spi-bus", 0, "SPI bus")
	spiDeviceFlag := flag.Int("spi-dev", 0, "SPI device")
	resetPinFlag := flag.String("reset", "GPIO25", "Reset GPIO pin")
	dcPinFlag := flag.String("dc", "GPIO24", "Data/Command GPIO pin (DC)")
	cePinFlag := flag.String("ce", "", "Chip enable GPIO pin, empty if the SPI driver handles CE")
	blPinFlag := flag.String("bl", "", "Backlight GPIO pin")
	rotateFlag := flag.String("rotate", "90", "Display rotation")
	delayFlag := flag.Duration("delay", 2*time.Second, "Time per scene")
	loopFlag := flag.Bool("loop", false, "Repeat the scenes until interrupted")
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	speed := ili9341.DefaultSPIConfig.Speed
	flag.Var(&speed, "speed", "SPI bus speed")
	flag.Parse()

	if *debugFlag {
		ili9341.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	rotation, err := parseRotation(*rotateFlag)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using rotation: %s\n", rotation)

	if _, err = host.Init(); err != nil {
		fatal(err)
	}

	conn, err := ili9341.OpenSPI(&ili9341.SPIConfig{
		Bus:    *spiBusFlag,
		Device: *spiDeviceFlag,
		Speed:  speed,
		Reset:  pin(*resetPinFlag),
		DC:     pin(*dcPinFlag),
		CE:     pin(*cePinFlag),
	})
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using connection: %s\n", conn)

	display, err := ili9341.New(conn, &ili9341.Config{
		Rotation:  rotation,
		Backlight: pin(*blPinFlag),
	})
	if err != nil {
		_ = conn.Close()
		fatal(err)
	}
	defer display.Close()
	fmt.Printf("using driver: %s\n", display)
	display.SetBrightness(0xFF)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var (
		rng  = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
		wait = func(ctx context.Context, scene demo.Scene) error {
			fmt.Println("scene:", scene.Name)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(*delayFlag):
				return nil
			}
		}
	)
	fmt.Println("hit control-c to stop...")
	for {
		if err = demo.Run(ctx, display, rng, wait); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fatal(err)
		}
		if !*loopFlag {
			return
		}
	}
}

// pin looks up a GPIO by name, an empty name is no pin.
func pin(name string) gpio.PinIO {
	if name == "" {
		return nil
	}
	p := gpioreg.ByName(name)
	if p == nil {
		fatal(fmt.Errorf("unknown GPIO pin %q", name))
	}
	return p
}

func parseRotation(value string) (ili9341.Rotation, error) {
	switch value {
	case "", "no", "0":
		return ili9341.NoRotation, nil
	case "90", "right", "cw":
		return ili9341.Rotate90, nil
	case "180", "flip":
		return ili9341.Rotate180, nil
	case "270", "left", "ccw":
		return ili9341.Rotate270, nil
	default:
		return 0, fmt.Errorf("invalid rotation %q specified", value)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
