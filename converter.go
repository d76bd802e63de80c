package img2ascii

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"strconv"
	"time"

	"github.com/wbrown/img2ascii/imageutil"
)

// Art is the result of one conversion. Text modes fill Text; colorized
// mode fills ANSI and Bitmap.
type Art struct {
	Mode Mode
	// Width and Height are the glyph grid dimensions.
	Width  int
	Height int

	Text   string
	ANSI   string
	Bitmap *image.RGBA
}

// Converter runs the resize and glyph mapping pipeline with a fixed
// configuration. It holds no per-run state beyond a lazily built glyph
// atlas, so one Converter can convert many images.
type Converter struct {
	ramp          Ramp
	cell          CellSize
	background    color.Color
	interpolation imageutil.Interpolation
	sharpen       bool
	depth         ColorDepth
	compact       bool
	atlas         *GlyphAtlas
	progress      ProgressFunc
	logger        *slog.Logger
}

// Option is a functional option for configuring a Converter.
type Option func(*Converter)

// NewConverter creates a Converter with the given options.
// Defaults: DefaultRamp(), DefaultCellSize, DefaultBackground,
// Catmull-Rom resampling, no sharpening, truecolor, uncompressed escapes.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		ramp:          DefaultRamp(),
		cell:          DefaultCellSize,
		background:    DefaultBackground,
		interpolation: imageutil.InterpolationCatmullRom,
		depth:         ColorDepthTrue,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithRamp sets the glyph ramp.
func WithRamp(r Ramp) Option {
	return func(c *Converter) {
		c.ramp = r
	}
}

// WithCellSize sets the glyph cell size. Its aspect ratio also drives
// auto-fit height.
func WithCellSize(cell CellSize) Option {
	return func(c *Converter) {
		c.cell = cell
	}
}

// WithBackground sets the colorized bitmap background.
func WithBackground(bg color.Color) Option {
	return func(c *Converter) {
		c.background = bg
	}
}

// WithInterpolation sets the resampling method.
func WithInterpolation(interp imageutil.Interpolation) Option {
	return func(c *Converter) {
		c.interpolation = interp
	}
}

// WithSharpen enables a mild sharpening pass after resampling.
func WithSharpen(sharpen bool) Option {
	return func(c *Converter) {
		c.sharpen = sharpen
	}
}

// WithColorDepth sets the escape color encoding for colorized text.
func WithColorDepth(depth ColorDepth) Option {
	return func(c *Converter) {
		c.depth = depth
	}
}

// WithCompact merges same-colored runs in colorized escape text.
func WithCompact(compact bool) Option {
	return func(c *Converter) {
		c.compact = compact
	}
}

// WithGlyphAtlas sets the glyph masks used for bitmap rendering.
func WithGlyphAtlas(atlas *GlyphAtlas) Option {
	return func(c *Converter) {
		c.atlas = atlas
	}
}

// WithProgress sets an observer for the colorized render.
func WithProgress(fn ProgressFunc) Option {
	return func(c *Converter) {
		c.progress = fn
	}
}

// WithLogger sets the logger used for debug timings.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Ramp returns the configured ramp.
func (c *Converter) Ramp() Ramp {
	return c.ramp
}

// Resizer returns the Resizer the converter uses.
func (c *Converter) Resizer() Resizer {
	return Resizer{
		CellAspect:    c.cell.AspectRatio(),
		Interpolation: c.interpolation,
		Sharpen:       c.sharpen,
	}
}

// Convert resizes img to width x height glyphs (height 0 auto-fits) and
// maps it according to mode. A non-positive width, a negative height or an
// auto-fit height that rounds down to zero returns KindInvalidNumericInput;
// an unknown mode returns KindInvalidMode.
func (c *Converter) Convert(img image.Image, width, height int, mode Mode) (*Art, error) {
	if width <= 0 {
		return nil, newError(KindInvalidNumericInput, strconv.Itoa(width), nil)
	}
	if height < 0 {
		return nil, newError(KindInvalidNumericInput, strconv.Itoa(height), nil)
	}
	if !mode.Valid() {
		return nil, newError(KindInvalidMode, strconv.Itoa(int(mode)), nil)
	}
	if err := c.ramp.Validate(); err != nil {
		return nil, err
	}

	b := img.Bounds()
	if gw, gh := c.Resizer().Size(b.Dx(), b.Dy(), width, height); gw <= 0 || gh <= 0 {
		return nil, newError(KindInvalidNumericInput, fmt.Sprintf("%dx%d", gw, gh),
			errors.New("grid has no cells"))
	}

	start := time.Now()
	resized := c.Resizer().Resize(img, width, height)
	art := &Art{Mode: mode, Width: resized.Width(), Height: resized.Height()}
	c.logger.Debug("resized image",
		slog.Int("width", art.Width),
		slog.Int("height", art.Height),
		slog.String("interpolation", c.interpolation.String()),
		slog.Duration("elapsed", time.Since(start)),
	)

	start = time.Now()
	if mode.IsText() {
		text, err := ToText(resized, mode, c.ramp)
		if err != nil {
			return nil, err
		}
		art.Text = text
		c.logger.Debug("mapped glyphs",
			slog.String("mode", mode.String()),
			slog.Int("bytes", len(text)),
			slog.Duration("elapsed", time.Since(start)),
		)
		return art, nil
	}

	cz := &Colorizer{
		Ramp:       c.ramp,
		Cell:       c.cell,
		Background: c.background,
		Depth:      c.depth,
		Atlas:      c.atlas,
		Progress:   c.progress,
	}
	bitmap, err := cz.ToBitmap(resized)
	if err != nil {
		return nil, err
	}
	c.atlas = cz.Atlas

	cz.Progress = nil
	ansi, err := cz.ToANSI(resized)
	if err != nil {
		return nil, err
	}
	rawLen := len(ansi)
	if c.compact {
		ansi = CompressANSI(ansi)
	}
	art.Bitmap = bitmap
	art.ANSI = ansi
	c.logger.Debug("colorized",
		slog.Int("bitmap_width", bitmap.Bounds().Dx()),
		slog.Int("bitmap_height", bitmap.Bounds().Dy()),
		slog.Int("escape_bytes", rawLen),
		slog.Int("compressed_bytes", len(ansi)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return art, nil
}
