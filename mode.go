package img2ascii

import (
	"strings"
)

// Mode selects the glyph mapping and the output representation. The
// numeric values match the selector accepted on the command line.
type Mode int

const (
	// ModeClassic maps intensity through the ramp in declared order. Best
	// viewed dark-on-light.
	ModeClassic Mode = 1
	// ModeInverted maps intensity through the reversed ramp. Best viewed
	// light-on-dark.
	ModeInverted Mode = 2
	// ModeColorized stamps a density glyph per pixel in the pixel's color.
	ModeColorized Mode = 3
)

// ModesMessage describes the selectable modes for prompts and help text.
const ModesMessage = "Conversion modes:\n" +
	"1 - classic (recommended for viewing on a light background)\n" +
	"2 - inverted (recommended for viewing on a dark background)\n" +
	"3 - colorized (ANSI art)"

// ParseMode parses a mode selector. Only "1", "2" and "3" are accepted.
func ParseMode(s string) (Mode, error) {
	switch strings.TrimSpace(s) {
	case "1":
		return ModeClassic, nil
	case "2":
		return ModeInverted, nil
	case "3":
		return ModeColorized, nil
	}
	return 0, newError(KindInvalidMode, s, nil)
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m == ModeClassic || m == ModeInverted || m == ModeColorized
}

// IsText reports whether m produces a plain glyph grid.
func (m Mode) IsText() bool {
	return m == ModeClassic || m == ModeInverted
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeClassic:
		return "classic"
	case ModeInverted:
		return "inverted"
	case ModeColorized:
		return "colorized"
	}
	return "unknown"
}
