package img2ascii

import (
	"fmt"
	"math"

	"github.com/wbrown/img2ascii/imageutil"
)

// ColorDepth selects how colorized escape text encodes foreground colors.
type ColorDepth int

const (
	// ColorDepthTrue emits 24-bit "38;2;r;g;b" sequences.
	ColorDepthTrue ColorDepth = 24
	// ColorDepth256 emits "38;5;n" sequences using the nearest xterm-256
	// palette entry.
	ColorDepth256 ColorDepth = 8
)

// ParseColorDepth accepts 24 (truecolor) or 8 (xterm-256).
func ParseColorDepth(bits int) (ColorDepth, error) {
	switch ColorDepth(bits) {
	case ColorDepthTrue, ColorDepth256:
		return ColorDepth(bits), nil
	}
	return 0, fmt.Errorf("unsupported color depth %d, options are 24 or 8", bits)
}

// cubeLevels are the channel intensities of the xterm 6x6x6 color cube.
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// Xterm256Color returns the RGB value of palette entry n for n >= 16.
// Entries below 16 are terminal-defined and reported as the matching cube
// corner.
func Xterm256Color(n uint8) imageutil.RGB {
	switch {
	case n >= 232:
		v := 8 + 10*(n-232)
		return imageutil.RGB{R: v, G: v, B: v}
	case n >= 16:
		i := n - 16
		return imageutil.RGB{
			R: cubeLevels[i/36],
			G: cubeLevels[(i/6)%6],
			B: cubeLevels[i%6],
		}
	}
	return Xterm256Color(16 + 36*5*(n&1) + 6*5*((n>>1)&1) + 5*((n>>2)&1))
}

// Xterm256Index returns the palette entry (16..255) closest to c. Both the
// nearest cube color and the nearest gray are considered and the one with
// the smaller Euclidean distance wins.
func Xterm256Index(c imageutil.RGB) uint8 {
	ri, gi, bi := nearestCubeLevel(c.R), nearestCubeLevel(c.G), nearestCubeLevel(c.B)
	cube := uint8(16 + 36*ri + 6*gi + bi)

	avg := (int(c.R) + int(c.G) + int(c.B)) / 3
	grayStep := 0
	if avg > 8 {
		grayStep = min((avg-8+5)/10, 23)
	}
	gray := uint8(232 + grayStep)

	if colorDistance(c, Xterm256Color(gray)) < colorDistance(c, Xterm256Color(cube)) {
		return gray
	}
	return cube
}

func nearestCubeLevel(v uint8) int {
	best, bestDist := 0, math.MaxInt
	for i, level := range cubeLevels {
		d := int(v) - int(level)
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// colorDistance calculates the Euclidean distance between two RGB colors.
func colorDistance(a, b imageutil.RGB) float64 {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return math.Sqrt(float64(dr*dr + dg*dg + db*db))
}
