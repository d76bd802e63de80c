package img2ascii

import (
	"fmt"
	"slices"
)

// MaxRampLength is the largest ramp that still gives every glyph at least
// one intensity value.
const MaxRampLength = 256

// classicGlyphs is ordered from densest to sparsest.
var classicGlyphs = [...]rune{
	'¶', '@', '#', 'S', '%', '?', '*', '+', ';', ':', ',', '.', '`',
}

// Ramp is an ordered sequence of glyphs from darkest/densest to
// lightest/sparsest appearance. Ramps are treated as immutable values: no
// method modifies its receiver.
type Ramp []rune

// DefaultRamp returns a fresh copy of the 13-glyph ramp
// "¶@#S%?*+;:,.`".
func DefaultRamp() Ramp {
	return Ramp(slices.Clone(classicGlyphs[:]))
}

// ParseRamp builds a ramp from the runes of s.
func ParseRamp(s string) (Ramp, error) {
	r := Ramp([]rune(s))
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks that the ramp is non-empty and no longer than
// MaxRampLength.
func (r Ramp) Validate() error {
	if len(r) == 0 {
		return fmt.Errorf("%w: ramp is empty", ErrInvalidRamp)
	}
	if len(r) > MaxRampLength {
		return fmt.Errorf("%w: ramp has %d glyphs, at most %d allowed",
			ErrInvalidRamp, len(r), MaxRampLength)
	}
	return nil
}

// Reversed returns a new ramp with the glyph order reversed. The receiver
// is left untouched.
func (r Ramp) Reversed() Ramp {
	out := slices.Clone(r)
	slices.Reverse(out)
	return out
}

// Mirror returns the index that glyph i occupies in the reversed ramp.
func (r Ramp) Mirror(i int) int {
	return len(r) - 1 - i
}

// BucketSize returns the integer width of one intensity bucket,
// 256/len(r) rounded down.
func (r Ramp) BucketSize() int {
	return 256 / len(r)
}

// Index buckets an intensity into a ramp index by integer division,
// clamped to the last glyph. Intensity 0 maps to 0 and 255 maps to
// len(r)-1.
func (r Ramp) Index(intensity uint8) int {
	return min(int(intensity)/r.BucketSize(), len(r)-1)
}

// ProportionalIndex maps a shade onto the ramp as floor(shade*len/256),
// clamped to the last glyph.
func (r Ramp) ProportionalIndex(shade uint8) int {
	return min(int(shade)*len(r)/256, len(r)-1)
}

// Glyph returns the glyph for an intensity using Index.
func (r Ramp) Glyph(intensity uint8) rune {
	return r[r.Index(intensity)]
}

// String returns the ramp as a string.
func (r Ramp) String() string {
	return string(r)
}
