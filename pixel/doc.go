// Package pixel implements the RGB565 color and image types used by the ILI9341 driver.
//
// The types are compatible with Go's native [color.Color] and [image.Image] / [draw.Image]
// interfaces, so any image can be converted to the panel's native pixel format.
package pixel
