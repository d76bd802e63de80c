package imageutil

import (
	"image"
	"image/color"
)

// Luminance returns the BT.601 luminance Y = 0.299*R + 0.587*G + 0.114*B
// using rounded integer math.
func Luminance(c RGB) uint8 {
	lum := (299*int(c.R) + 587*int(c.G) + 114*int(c.B) + 500) / 1000
	if lum > 255 {
		lum = 255
	}
	return uint8(lum)
}

// ToGrayscale converts an RGBA image to a single intensity channel using
// Luminance.
func ToGrayscale(img *RGBAImage) *GrayImage {
	width, height := img.Width(), img.Height()
	gray := NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			gray.Gray.SetGray(x, y, color.Gray{Y: Luminance(img.GetRGB(x, y))})
		}
	}

	return gray
}

// GrayscaleOf returns the intensity channel of any image. Single-channel
// inputs keep their own values; everything else goes through ToGrayscale.
func GrayscaleOf(img image.Image) *GrayImage {
	if g, ok := img.(*image.Gray); ok {
		b := g.Bounds()
		gray := NewGrayImage(b.Dx(), b.Dy())
		for y := 0; y < b.Dy(); y++ {
			copy(gray.Pix[y*gray.Stride:y*gray.Stride+b.Dx()],
				g.Pix[g.PixOffset(b.Min.X, b.Min.Y+y):])
		}
		return gray
	}
	if rgba, ok := img.(*RGBAImage); ok {
		return ToGrayscale(rgba)
	}
	return ToGrayscale(RGBAImageFromImage(img))
}
