// Command ili9341-sim runs the demo scenes against an emulated panel in a desktop window.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/BeatGlow/ili9341"
	"github.com/BeatGlow/ili9341/draw"
	"github.com/BeatGlow/ili9341/emulator"
	"github.com/BeatGlow/ili9341/framebuffer"
	"github.com/BeatGlow/ili9341/internal/demo"
)

func main() {
	rotateFlag := flag.String("rotate", "90", "Display rotation")
	scaleFlag := flag.Int("scale", 2, "Window scale")
	delayFlag := flag.Duration("delay", 2*time.Second, "Time per scene, 0 waits for the space key")
	fbFlag := flag.String("fb", "", "Mirror the panel to a framebuffer device, such as /dev/fb1")
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *debugFlag {
		ili9341.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	rotation, err := parseRotation(*rotateFlag)
	if err != nil {
		fatal(err)
	}

	var fb *framebuffer.Framebuffer
	if *fbFlag != "" {
		if fb, err = framebuffer.Open(*fbFlag); err != nil {
			fatal(err)
		}
		defer fb.Close()
		fmt.Printf("mirroring to framebuffer: %s\n", fb)
	}

	panel := emulator.New()
	panel.NoLog = true
	display, err := ili9341.New(panel, &ili9341.Config{Rotation: rotation})
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using driver: %s\n", display)

	g := &game{
		panel: panel,
		fb:    fb,
		next:  make(chan struct{}, 1),
		done:  make(chan error, 1),
	}
	w, h := display.Width(), display.Height()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
		for ctx.Err() == nil {
			if err := demo.Run(ctx, display, rng, g.wait(*delayFlag)); err != nil {
				g.done <- err
				return
			}
		}
	}()

	ebiten.SetWindowTitle("ILI9341 " + rotation.String())
	ebiten.SetWindowSize(w*(*scaleFlag), h*(*scaleFlag))
	ebiten.SetTPS(30)
	if err = ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
}

type game struct {
	panel *emulator.Panel
	fb    *framebuffer.Framebuffer
	img   *ebiten.Image
	next  chan struct{}
	done  chan error
}

// wait returns the demo hook that holds each scene for delay, or until space is pressed.
func (g *game) wait(delay time.Duration) demo.Wait {
	return func(ctx context.Context, scene demo.Scene) error {
		fmt.Println("scene:", scene.Name)
		var timeout <-chan time.Time
		if delay > 0 {
			t := time.NewTimer(delay)
			defer t.Stop()
			timeout = t.C
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-g.next:
		case <-timeout:
		}
		return nil
	}
}

func (g *game) Update() error {
	select {
	case err := <-g.done:
		return err
	default:
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		select {
		case g.next <- struct{}{}:
		default:
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	frame := g.panel.Screen()
	b := frame.Bounds()
	if g.img == nil || g.img.Bounds().Size() != b.Size() {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.img.WritePixels(frame.Pix)
	screen.DrawImage(g.img, nil)

	if g.fb != nil {
		g.fb.Draw(image.Point{}, draw.RGB565(frame))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.panel.Size()
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
