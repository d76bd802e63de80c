package img2ascii

import (
	"image/color"
	"strings"
	"testing"

	"github.com/wbrown/img2ascii/imageutil"
)

func TestColorizerToANSI(t *testing.T) {
	img := imageutil.CreateSolidImage(1, 1, imageutil.RGB{R: 255})

	got, err := NewColorizer().ToANSI(img)
	if err != nil {
		t.Fatalf("ToANSI: %v", err)
	}
	// Shade 85 selects index 4 of the reversed ramp.
	want := "\x1b[38;2;255;0;0m;\x1b[0m\n"
	if got != want {
		t.Errorf("ToANSI = %q, want %q", got, want)
	}
}

func TestColorizerToANSIShape(t *testing.T) {
	img := imageutil.CreateColorBarsImage(8, 3)
	cz := NewColorizer()

	var calls []int
	cz.Progress = func(done, total int) {
		if total != 3 {
			t.Errorf("total = %d, want 3", total)
		}
		calls = append(calls, done)
	}

	got, err := cz.ToANSI(img)
	if err != nil {
		t.Fatal(err)
	}
	if len(calls) != 3 || calls[2] != 3 {
		t.Errorf("progress calls = %v", calls)
	}

	if !strings.HasSuffix(got, "\n") {
		t.Error("every row must end with a newline")
	}
	rows := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(rows) != 3 {
		t.Fatalf("%d rows, want 3", len(rows))
	}
	for i, row := range rows {
		if n := strings.Count(row, Reset); n != 8 {
			t.Errorf("row %d has %d resets, want 8", i, n)
		}
		if n := len([]rune(StripANSI(row))); n != 8 {
			t.Errorf("row %d has %d glyphs, want 8", i, n)
		}
	}

	// White is the densest glyph, black the sparsest.
	plain := []rune(StripANSI(rows[0]))
	if plain[0] != '¶' || plain[7] != '`' {
		t.Errorf("white/black glyphs = %q/%q", plain[0], plain[7])
	}
}

func TestColorizer256(t *testing.T) {
	cz := NewColorizer()
	cz.Depth = ColorDepth256

	got, err := cz.ToANSI(imageutil.CreateSolidImage(1, 1, imageutil.RGB{R: 255}))
	if err != nil {
		t.Fatal(err)
	}
	if want := "\x1b[38;5;196m;\x1b[0m\n"; got != want {
		t.Errorf("ToANSI = %q, want %q", got, want)
	}
}

func TestColorizerToBitmap(t *testing.T) {
	img := imageutil.CreateSolidImage(3, 2, imageutil.RGB{R: 255})
	cz := NewColorizer()

	rows := 0
	cz.Progress = func(done, total int) { rows = done }

	bitmap, err := cz.ToBitmap(img)
	if err != nil {
		t.Fatalf("ToBitmap: %v", err)
	}
	if b := bitmap.Bounds(); b.Dx() != 30 || b.Dy() != 40 {
		t.Fatalf("bitmap is %dx%d, want 30x40", b.Dx(), b.Dy())
	}
	if rows != 2 {
		t.Errorf("progress reached %d rows, want 2", rows)
	}

	// Each cell has background and red ink.
	for cy := 0; cy < 2; cy++ {
		for cx := 0; cx < 3; cx++ {
			var bg, ink bool
			for y := cy * 20; y < (cy+1)*20; y++ {
				for x := cx * 10; x < (cx+1)*10; x++ {
					c := bitmap.RGBAAt(x, y)
					if c == DefaultBackground {
						bg = true
					}
					if c.R > 100 && c.G < 25 {
						ink = true
					}
				}
			}
			if !bg || !ink {
				t.Errorf("cell (%d,%d): background %v, ink %v", cx, cy, bg, ink)
			}
		}
	}
}

func TestColorizerBlankGlyph(t *testing.T) {
	bg := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	cz := NewColorizer()
	cz.Ramp = Ramp{' '}
	cz.Background = bg

	bitmap, err := cz.ToBitmap(imageutil.CreateSolidImage(2, 2, imageutil.RGB{R: 200, G: 200, B: 200}))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(bitmap.Pix); i += 4 {
		c := color.RGBA{R: bitmap.Pix[i], G: bitmap.Pix[i+1], B: bitmap.Pix[i+2], A: bitmap.Pix[i+3]}
		if c != bg {
			t.Fatalf("pixel %d = %v, want background", i/4, c)
		}
	}
}

func TestColorizerAtlasMismatch(t *testing.T) {
	atlas, err := DefaultGlyphAtlas(CellSize{Width: 8, Height: 16}, DefaultRamp())
	if err != nil {
		t.Fatal(err)
	}
	cz := NewColorizer()
	cz.Atlas = atlas
	if _, err := cz.ToBitmap(imageutil.CreateSolidImage(1, 1, imageutil.RGB{})); err == nil {
		t.Error("expected an error for an atlas with a different cell size")
	}
}
