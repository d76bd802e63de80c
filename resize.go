package img2ascii

import (
	"fmt"
	"image"
	"math"

	"github.com/wbrown/img2ascii/imageutil"
)

// CellSize is the pixel footprint of one rendered glyph.
type CellSize struct {
	Width  int
	Height int
}

// DefaultCellSize is the 10x20 cell used for bitmap output. Its aspect
// ratio of 2 is also the auto-fit correction for text output.
var DefaultCellSize = CellSize{Width: 10, Height: 20}

// AspectRatio returns how much taller the cell is than it is wide.
func (c CellSize) AspectRatio() float64 {
	if c.Width <= 0 {
		return 1
	}
	return float64(c.Height) / float64(c.Width)
}

// Validate checks that both dimensions are positive.
func (c CellSize) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("cell size must be positive, got %dx%d", c.Width, c.Height)
	}
	return nil
}

// AutoHeight computes the glyph grid height for a target width so that
// the art keeps the source proportions once each glyph is drawn in a cell
// cellAspect times taller than wide:
//
//	floor(targetWidth * (srcHeight / srcWidth) / cellAspect)
//
// A zero source width or non-positive aspect yields 0.
func AutoHeight(srcWidth, srcHeight, targetWidth int, cellAspect float64) int {
	if srcWidth <= 0 || cellAspect <= 0 {
		return 0
	}
	ratio := float64(srcHeight) / float64(srcWidth) / cellAspect
	return int(math.Floor(float64(targetWidth) * ratio))
}

// Resizer scales a source image to a target glyph grid. The zero value
// uses Catmull-Rom resampling and the default cell aspect ratio.
type Resizer struct {
	// CellAspect is the glyph cell height/width ratio used by auto-fit.
	// Zero means DefaultCellSize.AspectRatio().
	CellAspect    float64
	Interpolation imageutil.Interpolation
	// Sharpen applies a mild sharpening pass after resampling.
	Sharpen bool
}

// Size returns the grid dimensions Resize will produce for a source of
// srcWidth x srcHeight. A targetHeight of 0 selects auto-fit.
func (r Resizer) Size(srcWidth, srcHeight, targetWidth, targetHeight int) (int, int) {
	if targetHeight != 0 {
		return targetWidth, targetHeight
	}
	aspect := r.CellAspect
	if aspect == 0 {
		aspect = DefaultCellSize.AspectRatio()
	}
	return targetWidth, AutoHeight(srcWidth, srcHeight, targetWidth, aspect)
}

// Resize returns a new image of exactly targetWidth x targetHeight pixels,
// auto-computing the height when targetHeight is 0. An explicit height is
// used verbatim. Zero-sized results are returned as empty images. The
// source image is never modified.
func (r Resizer) Resize(img image.Image, targetWidth, targetHeight int) *imageutil.RGBAImage {
	b := img.Bounds()
	width, height := r.Size(b.Dx(), b.Dy(), targetWidth, targetHeight)

	resized := imageutil.Resize(img, width, height, r.Interpolation)
	if r.Sharpen && !resized.Empty() {
		resized = imageutil.Sharpen(resized)
	}
	return resized
}
