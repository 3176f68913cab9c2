// Package demo holds the test scenes shown by the demo and simulator commands.
package demo

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand/v2"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/BeatGlow/ili9341"
	"github.com/BeatGlow/ili9341/pixel"
)

const hello = "Hello, World!"

// Scene draws one test screen.
type Scene struct {
	Name string
	Draw func(d *ili9341.Device, rng *rand.Rand)
}

// Scenes in the order they are shown.
var Scenes = []Scene{
	{"Fill screen test", fillScreen},
	{"Fill rectangle test", fillRectangles},
	{"Write string test", writeStrings},
	{"Write string scaled test", writeScaled},
	{"Write string wrap test", writeWrapped},
	{"Write string tracking, leading test", writeSpacing},
	{"Write string transparent test", writeTransparent},
	{"Proportional font test", writeProportional},
	{"Draw image test", drawImage},
	{"Inverted colors test", invertColors},
	{"Draw line test", drawLines},
	{"Draw line thick test", drawThickLines},
	{"Draw rectangle test", drawRectangles},
	{"Draw rectangle thick test", drawThickRectangles},
	{"Rounded rectangle test", drawRounded},
	{"Draw circle test", drawCircles},
	{"Draw circle thick test", drawThickCircles},
	{"Fill circle test", fillCircles},
	{"Draw ellipse test", drawEllipses},
	{"Draw ellipse thick test", drawThickEllipses},
	{"Fill ellipse test", fillEllipses},
	{"Draw polygon test", drawPolygons},
	{"Fill polygon test", fillPolygons},
}

// Wait is called after each scene, returning an error stops the run.
type Wait func(ctx context.Context, scene Scene) error

// Run shows every scene once. It stops on the first transport error.
func Run(ctx context.Context, d *ili9341.Device, rng *rand.Rand, wait Wait) error {
	for _, scene := range Scenes {
		if err := ctx.Err(); err != nil {
			return err
		}
		Title(d, scene.Name)
		scene.Draw(d, rng)
		if err := d.Err(); err != nil {
			return fmt.Errorf("%s: %w", scene.Name, err)
		}
		if wait != nil {
			if err := wait(ctx, scene); err != nil {
				return err
			}
		}
	}
	return nil
}

// Title clears the screen and writes the scene name.
func Title(d *ili9341.Device, name string) {
	d.FillScreen(pixel.White)
	d.WriteString(5, 5, name, nil, pixel.Black, pixel.White, 0)
}

func randomColor(rng *rand.Rand) pixel.RGB565 {
	return pixel.RGB565(rng.UintN(0xFFFF))
}

func fillScreen(d *ili9341.Device, _ *rand.Rand) {
	for _, c := range []pixel.RGB565{pixel.Red, pixel.Green, pixel.Blue, pixel.Black} {
		d.FillScreen(c)
	}
}

func fillRectangles(d *ili9341.Device, rng *rand.Rand) {
	for i := -5; i < 15; i++ {
		d.FillRectangle(10+i*15, 30+i*15, 50, 50, randomColor(rng))
	}
}

func writeStrings(d *ili9341.Device, _ *rand.Rand) {
	d.WriteString(5, 25, hello, nil, pixel.Black, pixel.White, 0)
	d.WriteString(5, 40, "Welcome to the ILI9341 test suite.", nil, pixel.Blue, pixel.White, 0)
	d.WriteString(5, 55, "Codepoints: "+string(rune(0x7E))+string(rune(0xA9))+string(rune(0xB0)), nil, pixel.Red, pixel.White, 0)
	d.WriteString(5, 70, hello, nil, pixel.White, pixel.Navy, 0)
}

func writeScaled(d *ili9341.Device, _ *rand.Rand) {
	y := 25
	for scale := 1; scale <= 4; scale++ {
		d.WriteStringScaled(5, y, hello, nil, pixel.Black, pixel.White, scale, 0)
		y += 13*scale + 5
	}
}

func writeWrapped(d *ili9341.Device, _ *rand.Rand) {
	const s = "Hello, World! This is a test of the wrap feature. It should automatically move to the next line when the text exceeds the width of the display."
	d.DrawText(5, 25, s, ili9341.TextStyle{Color: pixel.Black, Background: pixel.White, Scale: 1, Wrap: true})
	d.DrawText(5, 120, s, ili9341.TextStyle{Color: pixel.Black, Background: pixel.White, Scale: 1})
}

func writeSpacing(d *ili9341.Device, _ *rand.Rand) {
	d.WriteString(5, 25, hello, nil, pixel.Black, pixel.White, 2)
	d.WriteString(5, 40, hello, nil, pixel.Black, pixel.White, -1)
	d.DrawText(5, 60, "Hello, World! This a test of leading in case of multiple lines from automatic line wraps.",
		ili9341.TextStyle{Color: pixel.Black, Background: pixel.White, Scale: 1, Leading: 4, Wrap: true})
}

func writeTransparent(d *ili9341.Device, rng *rand.Rand) {
	for y := 25; y < 120; y += 16 {
		for x := 0; x < d.Width(); x += 16 {
			d.FillRectangle(x, y, 16, 16, randomColor(rng))
		}
	}
	d.WriteStringTransparent(5, 30, hello, nil, pixel.Black, 0)
	d.WriteStringTransparent(5, 50, hello, nil, pixel.White, 0)
	d.WriteStringTransparentScaled(5, 70, hello, nil, pixel.Black, 2, 0)
}

func writeProportional(d *ili9341.Device, _ *rand.Rand) {
	font := &proggy.TinySZ8pt7b
	tinyfont.WriteLine(d, font, 5, 40, hello, color.RGBA{A: 0xFF})

	_, w := tinyfont.LineWidth(font, hello)
	tinyfont.WriteLine(d, font, int16(d.Width()-int(w))/2, 60, hello, color.RGBA{R: 0xFF, A: 0xFF})
}

func drawImage(d *ili9341.Device, _ *rand.Rand) {
	const w, h = 128, 96
	pix := make([]pixel.RGB565, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix[y*w+x] = pixel.RGB(uint8(x*2), uint8(y*2), uint8(255-x-y))
		}
	}
	d.DrawImage(10, 25, w, h, pix)

	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), B: uint8(y * 4), A: 0xFF})
		}
	}
	d.DrawImageFrom(20, 130, img)
}

func invertColors(d *ili9341.Device, _ *rand.Rand) {
	d.FillRectangle(20, 40, 80, 80, pixel.Red)
	d.InvertColors(true)
	d.InvertColors(false)
}

func drawLines(d *ili9341.Device, rng *rand.Rand) {
	for i := 0; i < 20; i++ {
		d.DrawLine(rng.IntN(d.Width()), 25+rng.IntN(d.Height()-25), rng.IntN(d.Width()), 25+rng.IntN(d.Height()-25), randomColor(rng))
	}
}

func drawThickLines(d *ili9341.Device, rng *rand.Rand) {
	for i := 0; i < 10; i++ {
		d.DrawLineThick(rng.IntN(d.Width()), 25+rng.IntN(d.Height()-25), rng.IntN(d.Width()), 25+rng.IntN(d.Height()-25),
			2+rng.IntN(8), i%2 == 0, randomColor(rng))
	}
}

func drawRectangles(d *ili9341.Device, rng *rand.Rand) {
	for i := 0; i < 15; i++ {
		d.DrawRectangle(10+i*15, 30+i*15, 50, 50, randomColor(rng))
	}
}

func drawThickRectangles(d *ili9341.Device, rng *rand.Rand) {
	for i := 0; i < 15; i++ {
		d.DrawRectangleThick(10+i*15, 30+i*15, 50, 50, 5, randomColor(rng))
	}
}

func drawRounded(d *ili9341.Device, rng *rand.Rand) {
	d.DrawRoundedRectangle(10, 30, 100, 60, 12, randomColor(rng))
	d.FillRoundedRectangle(10, 110, 100, 60, 20, randomColor(rng))
}

func drawCircles(d *ili9341.Device, rng *rand.Rand) {
	for i := 0; i < 15; i++ {
		d.DrawCircle(25+i*15, 55+i*15, 25, randomColor(rng))
	}
}

func drawThickCircles(d *ili9341.Device, rng *rand.Rand) {
	for i := 0; i < 15; i++ {
		d.DrawCircleThick(25+i*15, 55+i*15, 25, 5, randomColor(rng))
	}
}

func fillCircles(d *ili9341.Device, rng *rand.Rand) {
	for i := 0; i < 15; i++ {
		d.FillCircle(25+i*20, 55+i*20, 25, randomColor(rng))
	}
}

func drawEllipses(d *ili9341.Device, rng *rand.Rand) {
	for i := 0; i < 15; i++ {
		d.DrawEllipse(35+i*15, 45+i*15, 35, 20, randomColor(rng))
	}
}

func drawThickEllipses(d *ili9341.Device, rng *rand.Rand) {
	for i := 0; i < 15; i++ {
		d.DrawEllipseThick(35+i*15, 45+i*15, 35, 20, 5, randomColor(rng))
	}
}

func fillEllipses(d *ili9341.Device, rng *rand.Rand) {
	for i := 0; i < 15; i++ {
		d.FillEllipse(35+i*20, 45+i*20, 35, 20, randomColor(rng))
	}
}

// regular returns the corners of a regular polygon.
func regular(xc, yc, r, sides int, phase float64) []image.Point {
	points := make([]image.Point, sides)
	for i := range points {
		a := phase + 2*math.Pi*float64(i)/float64(sides)
		points[i] = image.Pt(xc+int(float64(r)*math.Cos(a)), yc+int(float64(r)*math.Sin(a)))
	}
	return points
}

func drawPolygons(d *ili9341.Device, rng *rand.Rand) {
	for sides := 3; sides <= 8; sides++ {
		xc, yc := 40+(sides-3)%3*75, 70+(sides-3)/3*80
		if sides%2 == 0 {
			d.DrawPolygonThick(regular(xc, yc, 30, sides, 0), 3, true, randomColor(rng))
		} else {
			d.DrawPolygon(regular(xc, yc, 30, sides, 0), randomColor(rng))
		}
	}
}

func fillPolygons(d *ili9341.Device, rng *rand.Rand) {
	star := make([]image.Point, 10)
	for i := range star {
		r := 50
		if i%2 == 1 {
			r = 20
		}
		a := -math.Pi/2 + math.Pi*float64(i)/5
		star[i] = image.Pt(d.Width()/2+int(float64(r)*math.Cos(a)), 90+int(float64(r)*math.Sin(a)))
	}
	d.FillPolygon(star, randomColor(rng))
	d.FillPolygon(regular(d.Width()/2, 200, 40, 6, 0), randomColor(rng))
}
