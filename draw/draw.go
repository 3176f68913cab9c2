// Package draw provides image composition onto RGB565 images.
package draw

import (
	"image"
	"image/draw"

	"github.com/BeatGlow/ili9341/pixel"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Op is an alias for image/draw.Op
type Op = draw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over Op = iota

	// Src specifies ``src in mask''.
	Src
)

// Draw calls [DrawMask] with a nil mask.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	DrawMask(dst, r, src, sp, nil, image.Point{}, op)
}

// DrawMask aligns r.Min in dst with sp in src and mp in mask and then replaces the rectangle r
// in dst with the result of a Porter-Duff composition. A nil mask is treated as opaque.
func DrawMask(dst Image, r image.Rectangle, src image.Image, sp image.Point, mask image.Image, mp image.Point, op Op) {
	draw.DrawMask(dst, r, src, sp, mask, mp, op)
}

// RGB565 converts the src image to a big-endian RGB565 image with its origin at (0, 0).
//
// Transparent source pixels are composed over black.
func RGB565(src image.Image) *pixel.RGB565Image {
	b := src.Bounds()
	dst := pixel.NewRGB565Image(b.Dx(), b.Dy())
	if rgb, ok := src.(*pixel.RGB565Image); ok && rgb.Order == dst.Order && rgb.Stride == dst.Stride {
		copy(dst.Pix, rgb.Pix[rgb.PixOffset(b.Min.X, b.Min.Y):])
		return dst
	}
	Draw(dst, dst.Bounds(), src, b.Min, Over)
	return dst
}
