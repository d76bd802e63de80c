package img2ascii

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/wbrown/img2ascii/imageutil"
)

// Config holds file-level defaults for a conversion. Zero values fall back
// to the library defaults.
type Config struct {
	// Ramp lists the glyphs from densest to sparsest.
	Ramp string     `yaml:"ramp"`
	Cell CellConfig `yaml:"cell"`
	// Background is the bitmap fill as "#rrggbb".
	Background string `yaml:"background"`
	// Resample names the interpolation, see imageutil.ParseInterpolation.
	Resample string `yaml:"resample"`
	Sharpen  bool   `yaml:"sharpen"`
	// Font is a TrueType file used for bitmap glyphs instead of Go Mono.
	Font       string `yaml:"font"`
	ColorDepth int    `yaml:"colorDepth"`
	Compact    bool   `yaml:"compact"`
	OutputDir  string `yaml:"outputDir"`
}

// CellConfig is the YAML form of CellSize.
type CellConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DefaultConfig returns the configuration matching NewConverter's
// defaults.
func DefaultConfig() Config {
	return Config{
		Ramp:       DefaultRamp().String(),
		Cell:       CellConfig{Width: DefaultCellSize.Width, Height: DefaultCellSize.Height},
		Background: "#191919",
		Resample:   imageutil.InterpolationCatmullRom.String(),
		ColorDepth: int(ColorDepthTrue),
		OutputDir:  ".",
	}
}

// LoadConfig reads a YAML config file. Keys absent from the file keep
// their DefaultConfig values; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML config data over DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.DisallowUnknownField()); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Options translates the config into Converter options, validating every
// field.
func (c Config) Options() ([]Option, error) {
	var opts []Option

	if c.Ramp != "" {
		ramp, err := ParseRamp(c.Ramp)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithRamp(ramp))
	}

	cell := DefaultCellSize
	if c.Cell.Width != 0 || c.Cell.Height != 0 {
		cell = CellSize{Width: c.Cell.Width, Height: c.Cell.Height}
		if err := cell.Validate(); err != nil {
			return nil, err
		}
		opts = append(opts, WithCellSize(cell))
	}

	if c.Background != "" {
		bg, err := ParseHexColor(c.Background)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithBackground(bg))
	}

	interp, err := imageutil.ParseInterpolation(c.Resample)
	if err != nil {
		return nil, err
	}
	opts = append(opts, WithInterpolation(interp), WithSharpen(c.Sharpen), WithCompact(c.Compact))

	if c.ColorDepth != 0 {
		depth, err := ParseColorDepth(c.ColorDepth)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithColorDepth(depth))
	}

	if c.Font != "" {
		glyphs := DefaultRamp()
		if c.Ramp != "" {
			glyphs = Ramp([]rune(c.Ramp))
		}
		atlas, err := LoadGlyphAtlas(c.Font, cell, glyphs)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithGlyphAtlas(atlas))
	}

	return opts, nil
}

// ParseHexColor parses "#rrggbb" (the '#' is optional) into an opaque
// color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q, expected #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
