// Package imageutil provides the pure Go image plumbing used by img2ascii:
// RGBA and grayscale wrappers, resampling, luminance conversion, filtering
// and file decoding.
package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to an opaque color.RGBA.
func (rgb RGB) ToColor() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// Shade returns the plain integer average of the three channels.
func (rgb RGB) Shade() uint8 {
	return uint8((int(rgb.R) + int(rgb.G) + int(rgb.B)) / 3)
}

// RGBFromColor converts a color.Color to RGB, dropping alpha.
func RGBFromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// RGBAImage wraps image.RGBA with convenience methods for pixel access.
// Its bounds always start at the origin.
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage creates a new RGBAImage with the specified dimensions.
// Negative dimensions are treated as zero.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
	}
}

// RGBAImageFromImage copies any image.Image into a new opaque RGBAImage
// anchored at the origin. Alpha is dropped and every pixel keeps its
// straight (non-premultiplied) color, so transparent pixels are not
// darkened. The source is never retained or modified.
func RGBAImageFromImage(img image.Image) *RGBAImage {
	if img == nil {
		return NewRGBAImage(0, 0)
	}
	bounds := img.Bounds()
	rgba := NewRGBAImage(bounds.Dx(), bounds.Dy())
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		draw.Draw(rgba.RGBA, rgba.Bounds(), img, bounds.Min, draw.Src)
		return rgba
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.SetRGB(x-bounds.Min.X, y-bounds.Min.Y, straightRGB(img.At(x, y)))
		}
	}
	return rgba
}

// straightRGB returns the non-premultiplied color of c without alpha.
func straightRGB(c color.Color) RGB {
	switch c := c.(type) {
	case color.NRGBA:
		return RGB{R: c.R, G: c.G, B: c.B}
	case color.NRGBA64:
		return RGB{R: uint8(c.R >> 8), G: uint8(c.G >> 8), B: uint8(c.B >> 8)}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// Width returns the image width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// Empty reports whether the image has no pixels.
func (img *RGBAImage) Empty() bool {
	return img.Width() == 0 || img.Height() == 0
}

// GetRGB returns the RGB value at (x, y).
func (img *RGBAImage) GetRGB(x, y int) RGB {
	c := img.RGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB sets the RGB value at (x, y).
func (img *RGBAImage) SetRGB(x, y int, c RGB) {
	img.SetRGBA(x, y, c.ToColor())
}

// Clone creates a deep copy of the image.
func (img *RGBAImage) Clone() *RGBAImage {
	clone := NewRGBAImage(img.Width(), img.Height())
	copy(clone.Pix, img.Pix)
	return clone
}

// GrayImage wraps image.Gray for single-channel intensity images.
type GrayImage struct {
	*image.Gray
}

// NewGrayImage creates a new GrayImage with the specified dimensions.
func NewGrayImage(width, height int) *GrayImage {
	return &GrayImage{
		Gray: image.NewGray(image.Rect(0, 0, max(width, 0), max(height, 0))),
	}
}

// Width returns the image width.
func (img *GrayImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *GrayImage) Height() int {
	return img.Bounds().Dy()
}

// GetGray returns the intensity at (x, y).
func (img *GrayImage) GetGray(x, y int) uint8 {
	return img.GrayAt(x, y).Y
}

// SetGrayValue sets the intensity at (x, y).
func (img *GrayImage) SetGrayValue(x, y int, v uint8) {
	img.Gray.SetGray(x, y, color.Gray{Y: v})
}
