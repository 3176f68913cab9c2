package main

import (
	"bytes"
	"fmt"
	"go/format"
	"image"
	"strconv"
	"strings"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/BeatGlow/ili9341/font"
)

// rasterize renders the printable ASCII range of face into fixed cells. The cell is as
// wide as the advance of 'M' and as high as the face ascent plus descent.
func rasterize(face xfont.Face, name string) (*font.Font, error) {
	advance, ok := face.GlyphAdvance('M')
	if !ok {
		return nil, fmt.Errorf("fontgen: face has no glyph for 'M'")
	}
	var (
		metrics = face.Metrics()
		ascent  = metrics.Ascent.Ceil()
		width   = advance.Ceil()
		height  = ascent + metrics.Descent.Ceil()
	)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", font.ErrGlyphSize, width, height)
	}

	var (
		words = (width*height + 31) / 32
		dot   = fixed.P(0, ascent)
		f     = &font.Font{
			Name:         name,
			Width:        width,
			Height:       height,
			IntsPerGlyph: words,
			Data:         make([]uint32, font.NumGlyphs*words),
		}
	)

	for r := rune(font.FirstRune); r <= font.LastRune; r++ {
		dr, mask, maskp, _, ok := face.Glyph(dot, r)
		if !ok {
			continue
		}
		glyph := f.Data[int(r-font.FirstRune)*words:]
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if !image.Pt(x, y).In(dr) {
					continue
				}
				_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
				if a >= 0x8000 {
					bit := y*width + x
					glyph[bit/32] |= 1 << (31 - bit%32)
				}
			}
		}
	}
	return f, f.Validate()
}

// generate renders f as a Go file in package pkg, declaring variable name.
func generate(f *font.Font, pkg, name, doc, command string) ([]byte, error) {
	var (
		b         bytes.Buffer
		qualifier string
	)
	if pkg != "font" {
		qualifier = "font."
	}
	fmt.Fprintf(&b, "// Code generated by %s; DO NOT EDIT.\n\n", command)
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	if qualifier != "" {
		fmt.Fprintf(&b, "import \"github.com/BeatGlow/ili9341/font\"\n\n")
	}
	fmt.Fprintf(&b, "// %s is derived from %s.\n", name, doc)
	fmt.Fprintf(&b, "var %s = &%sFont{\n", name, qualifier)
	fmt.Fprintf(&b, "Name: %q,\nWidth: %d,\nHeight: %d,\nIntsPerGlyph: %d,\n", f.Name, f.Width, f.Height, f.IntsPerGlyph)
	fmt.Fprintf(&b, "Data: []uint32{\n")
	words := make([]string, f.IntsPerGlyph)
	for i := 0; i < font.NumGlyphs; i++ {
		for j := range words {
			words[j] = fmt.Sprintf("0x%08X", f.Data[i*f.IntsPerGlyph+j])
		}
		fmt.Fprintf(&b, "%s, // %s\n", strings.Join(words, ", "), strconv.QuoteRune(rune(font.FirstRune+i)))
	}
	fmt.Fprintf(&b, "},\n}\n")
	return format.Source(b.Bytes())
}
