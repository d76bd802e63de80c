package img2ascii

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

// inkThreshold is the alpha above which a mask pixel counts as ink (25%).
const inkThreshold = 64

// GlyphAtlas holds pre-rasterised coverage masks for a fixed set of
// glyphs, one cell in size each. It is read-only after construction and
// safe to share.
type GlyphAtlas struct {
	cell  CellSize
	masks map[rune]*image.Alpha
	name  string
}

// DefaultGlyphAtlas rasterises glyphs with the embedded Go Mono font.
func DefaultGlyphAtlas(cell CellSize, glyphs []rune) (*GlyphAtlas, error) {
	return NewGlyphAtlas(gomono.TTF, "Go Mono", cell, glyphs)
}

// LoadGlyphAtlas rasterises glyphs with the TrueType font at path.
func LoadGlyphAtlas(path string, cell CellSize, glyphs []rune) (*GlyphAtlas, error) {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	return NewGlyphAtlas(ttf, path, cell, glyphs)
}

// NewGlyphAtlas parses a TrueType font and pre-renders every glyph into a
// cell-sized alpha mask.
//
// The font size is derived from the cell: it starts at 70% of the cell
// height and shrinks until the widest requested glyph fits the cell width.
// Glyphs are centered horizontally and the baseline is placed so that
// ascent plus descent is vertically centered. Runes the font does not map
// get no mask and render as background.
func NewGlyphAtlas(ttf []byte, name string, cell CellSize, glyphs []rune) (*GlyphAtlas, error) {
	if err := cell.Validate(); err != nil {
		return nil, err
	}
	ttfFont, err := freetype.ParseFont(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", name, err)
	}

	size := fitFontSize(ttfFont, cell, glyphs)
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	baselineY := (cell.Height-(ascent+descent))/2 + ascent

	atlas := &GlyphAtlas{
		cell:  cell,
		masks: make(map[rune]*image.Alpha, len(glyphs)),
		name:  name,
	}
	for _, r := range glyphs {
		if _, ok := atlas.masks[r]; ok || ttfFont.Index(r) == 0 {
			continue
		}
		adv, _ := face.GlyphAdvance(r)
		x := (fixed.I(cell.Width) - adv) / 2
		atlas.masks[r] = renderGlyphMask(ttfFont, size, cell, r,
			fixed.Point26_6{X: x, Y: fixed.I(baselineY)})
	}
	return atlas, nil
}

// fitFontSize picks a point size at which glyphs fit into cell.
func fitFontSize(ttfFont *truetype.Font, cell CellSize, glyphs []rune) float64 {
	size := float64(cell.Height) * 0.7
	face := truetype.NewFace(ttfFont, &truetype.Options{Size: size, DPI: 72})
	defer face.Close()

	widest := fixed.Int26_6(0)
	for _, r := range glyphs {
		if adv, ok := face.GlyphAdvance(r); ok && adv > widest {
			widest = adv
		}
	}
	if limit := fixed.I(cell.Width); widest > limit {
		size *= float64(limit) / float64(widest)
	}
	return size
}

// renderGlyphMask draws a single glyph into a cell-sized alpha mask using
// full hinting at 72 DPI.
func renderGlyphMask(ttfFont *truetype.Font, size float64, cell CellSize, r rune, pt fixed.Point26_6) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, cell.Width, cell.Height))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttfFont)
	ctx.SetFontSize(size)
	ctx.SetClip(mask.Bounds())
	ctx.SetDst(mask)
	ctx.SetSrc(image.Opaque)
	ctx.SetHinting(font.HintingFull)

	// DrawString only fails when no font is set.
	_, _ = ctx.DrawString(string(r), pt)
	return mask
}

// Name returns the font name or path the atlas was built from.
func (a *GlyphAtlas) Name() string {
	return a.name
}

// Cell returns the cell size of every mask.
func (a *GlyphAtlas) Cell() CellSize {
	return a.cell
}

// Mask returns the coverage mask for r.
func (a *GlyphAtlas) Mask(r rune) (*image.Alpha, bool) {
	m, ok := a.masks[r]
	return m, ok
}

// Coverage returns the fraction of the cell inked by r, counting pixels
// above a 25% alpha threshold.
func (a *GlyphAtlas) Coverage(r rune) float64 {
	m, ok := a.masks[r]
	if !ok {
		return 0
	}
	inked := 0
	for _, v := range m.Pix {
		if v > inkThreshold {
			inked++
		}
	}
	return float64(inked) / float64(len(m.Pix))
}

// Draw stamps r with its top-left corner at (x, y) in color c. Runes
// without a mask leave dst untouched.
func (a *GlyphAtlas) Draw(dst draw.Image, r rune, x, y int, c color.Color) {
	m, ok := a.masks[r]
	if !ok {
		return
	}
	rect := image.Rect(x, y, x+a.cell.Width, y+a.cell.Height)
	draw.DrawMask(dst, rect, image.NewUniform(c), image.Point{}, m, image.Point{}, draw.Over)
}
