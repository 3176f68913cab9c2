// Command ili9341-fontgen writes a Go source file with a fixed-width bitmap font table.
//
// The glyphs come from one of the built-in faces, or from a TrueType file rendered at
// the requested pixel size:
//
//	ili9341-fontgen -face basic7x13 -name Font7x13 -o font7x13.go
//	ili9341-fontgen -ttf DejaVuSansMono.ttf -size 16 -name Font16 -o font16.go
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
)

type source struct {
	label string
	doc   string
	load  func(size float64) (xfont.Face, error)
}

var faces = map[string]source{
	"basic7x13": {
		label: "7x13",
		doc:   "the public domain X11 misc-fixed 7x13 font",
		load: func(float64) (xfont.Face, error) {
			return basicfont.Face7x13, nil
		},
	},
	"gomono": {
		label: "Go Mono",
		doc:   "the Go Mono font",
		load: func(size float64) (xfont.Face, error) {
			return trueType(gomono.TTF, size)
		},
	},
}

func trueType(data []byte, size float64) (xfont.Face, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	}), nil
}

func main() {
	faceFlag := flag.String("face", "basic7x13", "Built-in face: basic7x13 or gomono")
	ttfFlag := flag.String("ttf", "", "TrueType font file, overrides -face")
	sizeFlag := flag.Float64("size", 13, "Pixel size for TrueType faces")
	nameFlag := flag.String("name", "Font7x13", "Name of the font variable")
	pkgFlag := flag.String("pkg", "font", "Package name of the generated file")
	outFlag := flag.String("o", "", "Output file (default: stdout)")
	flag.Parse()

	src, ok := faces[*faceFlag]
	if *ttfFlag != "" {
		base := filepath.Base(*ttfFlag)
		src = source{
			label: fmt.Sprintf("%s %g", strings.TrimSuffix(base, filepath.Ext(base)), *sizeFlag),
			doc:   base,
			load: func(size float64) (xfont.Face, error) {
				data, err := os.ReadFile(*ttfFlag)
				if err != nil {
					return nil, err
				}
				return trueType(data, size)
			},
		}
	} else if !ok {
		fatal(fmt.Errorf("unknown face %q", *faceFlag))
	} else if *faceFlag != "basic7x13" {
		src.label = fmt.Sprintf("%s %g", src.label, *sizeFlag)
	}

	face, err := src.load(*sizeFlag)
	if err != nil {
		fatal(err)
	}
	defer face.Close()

	f, err := rasterize(face, src.label)
	if err != nil {
		fatal(err)
	}

	command := strings.Join(append([]string{"ili9341-fontgen"}, os.Args[1:]...), " ")
	out, err := generate(f, *pkgFlag, *nameFlag, src.doc, command)
	if err != nil {
		fatal(err)
	}

	if *outFlag == "" {
		_, err = os.Stdout.Write(out)
	} else {
		err = os.WriteFile(*outFlag, out, 0o644)
	}
	if err != nil {
		fatal(err)
	}
	fmt.Fprintf(os.Stderr, "%s: %d×%d, %d words per glyph\n", f.Name, f.Width, f.Height, f.IntsPerGlyph)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
