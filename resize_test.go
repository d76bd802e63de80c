package img2ascii

import (
	"testing"

	"github.com/wbrown/img2ascii/imageutil"
)

func TestAutoHeight(t *testing.T) {
	tests := []struct {
		name                string
		srcW, srcH, targetW int
		aspect              float64
		want                int
	}{
		{"square", 200, 200, 100, 2, 50},
		{"landscape", 400, 100, 100, 2, 12},
		{"portrait", 100, 300, 50, 2, 75},
		{"unit aspect", 100, 50, 40, 1, 20},
		{"rounds down", 3, 2, 10, 2, 3},
		{"zero source width", 0, 100, 50, 2, 0},
		{"zero aspect", 100, 100, 50, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AutoHeight(tt.srcW, tt.srcH, tt.targetW, tt.aspect); got != tt.want {
				t.Errorf("AutoHeight = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResizerResize(t *testing.T) {
	src := imageutil.CreateGradientImage(200, 100)
	before := src.Clone()

	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"auto height", 40, 0, 40, 10},
		{"explicit height", 40, 7, 40, 7},
		{"upscale", 300, 300, 300, 300},
		{"auto height rounds to zero", 1, 0, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Resizer{}.Resize(src, tt.width, tt.height)
			if out.Width() != tt.wantW || out.Height() != tt.wantH {
				t.Errorf("Resize(%d, %d) = %dx%d, want %dx%d",
					tt.width, tt.height, out.Width(), out.Height(), tt.wantW, tt.wantH)
			}
		})
	}

	if imageutil.CalculateMSE(src, before) != 0 {
		t.Error("Resize modified the source image")
	}
}

func TestResizerCellAspect(t *testing.T) {
	src := imageutil.CreateSolidImage(100, 100, imageutil.RGB{R: 10, G: 20, B: 30})
	out := Resizer{CellAspect: 1, Sharpen: true}.Resize(src, 20, 0)
	if out.Width() != 20 || out.Height() != 20 {
		t.Errorf("got %dx%d, want 20x20", out.Width(), out.Height())
	}
	if got := out.GetRGB(10, 10); got != (imageutil.RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("sharpened solid pixel = %v", got)
	}
}

func TestCellSize(t *testing.T) {
	if DefaultCellSize.AspectRatio() != 2 {
		t.Errorf("default aspect = %v, want 2", DefaultCellSize.AspectRatio())
	}
	if err := (CellSize{Width: 0, Height: 20}).Validate(); err == nil {
		t.Error("zero-width cell should not validate")
	}
	if err := DefaultCellSize.Validate(); err != nil {
		t.Errorf("default cell: %v", err)
	}
}
