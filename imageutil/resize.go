package imageutil

import (
	"fmt"
	"image"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Interpolation specifies the resampling method used by Resize.
type Interpolation int

const (
	// InterpolationCatmullRom uses the Catmull-Rom kernel. High quality for
	// both up and down scaling.
	InterpolationCatmullRom Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest, and keeps hard pixel edges.
	InterpolationNearest

	// InterpolationLanczos uses a Lanczos3 kernel via nfnt/resize.
	InterpolationLanczos
)

var interpolationNames = map[Interpolation]string{
	InterpolationCatmullRom: "catmull-rom",
	InterpolationLinear:     "bilinear",
	InterpolationNearest:    "nearest",
	InterpolationLanczos:    "lanczos",
}

// String returns the flag spelling of the interpolation.
func (i Interpolation) String() string {
	if name, ok := interpolationNames[i]; ok {
		return name
	}
	return fmt.Sprintf("Interpolation(%d)", int(i))
}

// InterpolationNames lists the accepted spellings in declaration order.
func InterpolationNames() []string {
	return []string{"catmull-rom", "bilinear", "nearest", "lanczos"}
}

// ParseInterpolation parses a resampling method name. The empty string
// selects InterpolationCatmullRom.
func ParseInterpolation(name string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "catmull-rom", "catmullrom", "area":
		return InterpolationCatmullRom, nil
	case "bilinear", "linear":
		return InterpolationLinear, nil
	case "nearest":
		return InterpolationNearest, nil
	case "lanczos", "lanczos3":
		return InterpolationLanczos, nil
	}
	return 0, fmt.Errorf("unknown interpolation %q, options are %s",
		name, strings.Join(InterpolationNames(), ", "))
}

// Resize resamples img to exactly width x height pixels. The source is
// flattened to opaque straight color first. A non-positive dimension
// yields an empty image.
func Resize(img image.Image, width, height int, interp Interpolation) *RGBAImage {
	if width <= 0 || height <= 0 || img.Bounds().Empty() {
		return NewRGBAImage(width, height)
	}
	src, ok := img.(*RGBAImage)
	if !ok {
		src = RGBAImageFromImage(img)
	}

	if interp == InterpolationLanczos {
		// nfnt/resize preserves aspect when a dimension is zero, which the
		// guard above rules out.
		scaled := resize.Resize(uint(width), uint(height), src.RGBA, resize.Lanczos3)
		return RGBAImageFromImage(scaled)
	}

	var scaler draw.Scaler
	switch interp {
	case InterpolationLinear:
		scaler = draw.BiLinear
	case InterpolationNearest:
		scaler = draw.NearestNeighbor
	default:
		scaler = draw.CatmullRom
	}

	dst := NewRGBAImage(width, height)
	scaler.Scale(dst.RGBA, dst.Bounds(), src.RGBA, src.Bounds(), draw.Src, nil)
	return dst
}
