package img2ascii

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/wbrown/img2ascii/imageutil"
)

// DefaultBackground is the dark fill behind colorized bitmap glyphs.
var DefaultBackground = color.RGBA{R: 25, G: 25, B: 25, A: 255}

// ProgressFunc observes a long-running render. It is called once per
// completed row with the number of rows done and the row total.
type ProgressFunc func(done, total int)

// Colorizer renders an image as density glyphs drawn in each pixel's own
// color: the glyph shape conveys density while the fill conveys the true
// color. The glyph for a pixel is chosen from the reversed ramp by its
// plain channel average.
type Colorizer struct {
	Ramp       Ramp
	Cell       CellSize
	Background color.Color
	Depth      ColorDepth
	// Atlas provides glyph masks for ToBitmap. When nil, a Go Mono atlas
	// is built on first use.
	Atlas    *GlyphAtlas
	Progress ProgressFunc
}

// NewColorizer returns a Colorizer with the default ramp, cell size,
// background and truecolor output.
func NewColorizer() *Colorizer {
	return &Colorizer{
		Ramp:       DefaultRamp(),
		Cell:       DefaultCellSize,
		Background: DefaultBackground,
		Depth:      ColorDepthTrue,
	}
}

// glyphFor returns the glyph for a pixel from the reversed ramp.
func glyphFor(reversed Ramp, c imageutil.RGB) rune {
	return reversed[reversed.ProportionalIndex(c.Shade())]
}

// ToANSI renders the image as escape-coded text: every pixel becomes a
// foreground color sequence, its glyph and a reset, and every row ends
// with '\n'.
func (cz *Colorizer) ToANSI(img image.Image) (string, error) {
	if err := cz.Ramp.Validate(); err != nil {
		return "", err
	}
	src := imageutil.RGBAImageFromImage(img)
	reversed := cz.Ramp.Reversed()
	width, height := src.Width(), src.Height()

	var sb strings.Builder
	sb.Grow(width * height * 24)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := src.GetRGB(x, y)
			writeGlyph(&sb, glyphFor(reversed, c), foregroundCode(c, cz.Depth))
		}
		sb.WriteByte('\n')
		cz.report(y+1, height)
	}
	return sb.String(), nil
}

// ToBitmap renders the image onto a canvas of
// (width*Cell.Width, height*Cell.Height) pixels filled with Background,
// stamping the glyph for pixel (x, y) into cell (x, y) in the pixel's
// color.
func (cz *Colorizer) ToBitmap(img image.Image) (*image.RGBA, error) {
	if err := cz.Ramp.Validate(); err != nil {
		return nil, err
	}
	if err := cz.Cell.Validate(); err != nil {
		return nil, err
	}
	atlas, err := cz.atlas()
	if err != nil {
		return nil, err
	}

	src := imageutil.RGBAImageFromImage(img)
	reversed := cz.Ramp.Reversed()
	width, height := src.Width(), src.Height()

	canvas := image.NewRGBA(image.Rect(0, 0, width*cz.Cell.Width, height*cz.Cell.Height))
	bg := cz.Background
	if bg == nil {
		bg = DefaultBackground
	}
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := src.GetRGB(x, y)
			atlas.Draw(canvas, glyphFor(reversed, c),
				x*cz.Cell.Width, y*cz.Cell.Height, c.ToColor())
		}
		cz.report(y+1, height)
	}
	return canvas, nil
}

// atlas returns the configured atlas, building the default one if needed.
// A configured atlas must match the cell size.
func (cz *Colorizer) atlas() (*GlyphAtlas, error) {
	if cz.Atlas == nil {
		atlas, err := DefaultGlyphAtlas(cz.Cell, cz.Ramp)
		if err != nil {
			return nil, err
		}
		cz.Atlas = atlas
	}
	if cz.Atlas.Cell() != cz.Cell {
		return nil, fmt.Errorf("glyph atlas cell %dx%d does not match %dx%d",
			cz.Atlas.Cell().Width, cz.Atlas.Cell().Height, cz.Cell.Width, cz.Cell.Height)
	}
	return cz.Atlas, nil
}

func (cz *Colorizer) report(done, total int) {
	if cz.Progress != nil {
		cz.Progress(done, total)
	}
}
