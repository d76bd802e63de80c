package img2ascii

import (
	"image"
	"strings"
	"unicode/utf8"

	"github.com/wbrown/img2ascii/imageutil"
)

// ToText converts an image into a glyph grid. Each pixel's luminance is
// bucketed into ramp (ModeClassic) or its reversal (ModeInverted); rows
// are joined with '\n' and there is no trailing newline. The result always
// has exactly Height lines of Width glyphs.
//
// ModeColorized and unknown modes return an error of KindInvalidMode.
func ToText(img image.Image, mode Mode, ramp Ramp) (string, error) {
	if !mode.IsText() {
		return "", newError(KindInvalidMode, mode.String(), nil)
	}
	if err := ramp.Validate(); err != nil {
		return "", err
	}
	glyphs := ramp
	if mode == ModeInverted {
		glyphs = ramp.Reversed()
	}

	gray := imageutil.GrayscaleOf(img)
	width, height := gray.Width(), gray.Height()
	if width == 0 || height == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.Grow(height * (width*maxRuneLen(glyphs) + 1))
	for y := 0; y < height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := gray.Pix[y*gray.Stride : y*gray.Stride+width]
		for _, v := range row {
			sb.WriteRune(glyphs.Glyph(v))
		}
	}
	return sb.String(), nil
}

// Lines splits text art into its rows.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func maxRuneLen(r Ramp) int {
	n := 1
	for _, g := range r {
		n = max(n, utf8.RuneLen(g))
	}
	return n
}
