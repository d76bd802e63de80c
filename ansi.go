package img2ascii

import (
	"strconv"
	"strings"

	"github.com/wbrown/img2ascii/imageutil"
)

const (
	// ESC starts every terminal control sequence.
	ESC = "\u001b"
	// Reset restores default terminal attributes.
	Reset = ESC + "[0m"
)

// foregroundCode returns the SGR parameters selecting c as the foreground
// color at the given depth, e.g. "38;2;255;0;0".
func foregroundCode(c imageutil.RGB, depth ColorDepth) string {
	if depth == ColorDepth256 {
		return "38;5;" + strconv.Itoa(int(Xterm256Index(c)))
	}
	return "38;2;" + strconv.Itoa(int(c.R)) + ";" +
		strconv.Itoa(int(c.G)) + ";" + strconv.Itoa(int(c.B))
}

// writeGlyph writes one glyph bracketed by its color and a reset.
func writeGlyph(sb *strings.Builder, glyph rune, code string) {
	sb.WriteString(ESC)
	sb.WriteByte('[')
	sb.WriteString(code)
	sb.WriteByte('m')
	sb.WriteRune(glyph)
	sb.WriteString(Reset)
}

// CompressANSI shortens colorized escape text by merging adjacent glyphs
// that share a foreground color into a single colored run. The function
// takes text in the per-glyph form produced by Colorizer.ToANSI and
// returns text that renders identically, with one reset per run.
func CompressANSI(ansiText string) string {
	var compressed strings.Builder
	compressed.Grow(len(ansiText) / 2)

	lines := strings.Split(ansiText, "\n")
	for li, line := range lines {
		var currentCode string
		var run strings.Builder

		flush := func() {
			if run.Len() == 0 {
				return
			}
			compressed.WriteString(formatANSICode(currentCode, run.String()))
			run.Reset()
		}

		segments := strings.Split(line, ESC+"[")
		for _, segment := range segments {
			if segment == "" {
				continue
			}
			code, text, ok := strings.Cut(segment, "m")
			if !ok || code == "0" {
				// Resets are re-emitted per run.
				continue
			}
			if code != currentCode {
				flush()
				currentCode = code
			}
			run.WriteString(text)
		}
		flush()

		if li < len(lines)-1 {
			compressed.WriteByte('\n')
		}
	}

	return compressed.String()
}

// formatANSICode formats a colored run: the SGR code, the glyphs, and a
// trailing reset.
func formatANSICode(code, glyphs string) string {
	var sb strings.Builder
	sb.WriteString(ESC)
	sb.WriteByte('[')
	sb.WriteString(code)
	sb.WriteByte('m')
	sb.WriteString(glyphs)
	sb.WriteString(Reset)
	return sb.String()
}

// StripANSI removes SGR sequences, leaving only the glyphs and newlines.
func StripANSI(ansiText string) string {
	var sb strings.Builder
	for {
		i := strings.Index(ansiText, ESC+"[")
		if i < 0 {
			sb.WriteString(ansiText)
			return sb.String()
		}
		sb.WriteString(ansiText[:i])
		rest := ansiText[i+2:]
		j := strings.IndexByte(rest, 'm')
		if j < 0 {
			return sb.String()
		}
		ansiText = rest[j+1:]
	}
}
