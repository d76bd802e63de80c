package img2ascii

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/wbrown/img2ascii/imageutil"
)

func TestToTextSolid(t *testing.T) {
	black := imageutil.CreateSolidImage(2, 2, imageutil.RGB{})
	white := imageutil.CreateSolidImage(2, 2, imageutil.RGB{R: 255, G: 255, B: 255})

	tests := []struct {
		name string
		img  image.Image
		mode Mode
		want string
	}{
		{"classic black", black, ModeClassic, "¶¶\n¶¶"},
		{"classic white", white, ModeClassic, "``\n``"},
		{"inverted black", black, ModeInverted, "``\n``"},
		{"inverted white", white, ModeInverted, "¶¶\n¶¶"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToText(tt.img, tt.mode, DefaultRamp())
			if err != nil {
				t.Fatalf("ToText: %v", err)
			}
			if got != tt.want {
				t.Errorf("ToText = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToTextRectangular(t *testing.T) {
	img := imageutil.CreateGradientImage(37, 5)
	for _, mode := range []Mode{ModeClassic, ModeInverted} {
		text, err := ToText(img, mode, DefaultRamp())
		if err != nil {
			t.Fatalf("ToText(%v): %v", mode, err)
		}
		if strings.HasSuffix(text, "\n") {
			t.Errorf("%v: trailing newline", mode)
		}
		lines := Lines(text)
		if len(lines) != 5 {
			t.Fatalf("%v: %d lines, want 5", mode, len(lines))
		}
		for i, line := range lines {
			if n := utf8.RuneCountInString(line); n != 37 {
				t.Errorf("%v: line %d has %d glyphs, want 37", mode, i, n)
			}
		}
	}
}

func TestToTextIntensityMapping(t *testing.T) {
	ramp := DefaultRamp()
	img := imageutil.CreateIntensityRamp()

	classic, err := ToText(img, ModeClassic, ramp)
	if err != nil {
		t.Fatal(err)
	}
	inverted, err := ToText(img, ModeInverted, ramp)
	if err != nil {
		t.Fatal(err)
	}

	c, inv := []rune(classic), []rune(inverted)
	if len(c) != 256 || len(inv) != 256 {
		t.Fatalf("got %d and %d glyphs, want 256", len(c), len(inv))
	}
	for v := 0; v < 256; v++ {
		i := ramp.Index(uint8(v))
		if c[v] != ramp[i] {
			t.Errorf("classic intensity %d: got %q, want %q", v, c[v], ramp[i])
		}
		if inv[v] != ramp[ramp.Mirror(i)] {
			t.Errorf("inverted intensity %d: got %q, want %q", v, inv[v], ramp[ramp.Mirror(i)])
		}
	}
}

func TestToTextUsesLuminance(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{G: 255, A: 255})
	img.Set(2, 0, color.RGBA{B: 255, A: 255})

	ramp := DefaultRamp()
	got, err := ToText(img, ModeClassic, ramp)
	if err != nil {
		t.Fatal(err)
	}
	// Luminance 76, 150 and 29.
	want := string([]rune{ramp[4], ramp[7], ramp[1]})
	if got != want {
		t.Errorf("ToText = %q, want %q", got, want)
	}
}

func TestToTextIgnoresAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 128})

	got, err := ToText(img, ModeClassic, DefaultRamp())
	if err != nil {
		t.Fatal(err)
	}
	if got != "``" {
		t.Errorf("ToText = %q, want %q", got, "``")
	}

	art, err := NewConverter(WithInterpolation(imageutil.InterpolationNearest)).Convert(img, 2, 1, ModeColorized)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(art.ANSI, "\x1b[38;2;255;255;255m") {
		t.Errorf("colorized escape text starts %q", art.ANSI[:min(len(art.ANSI), 24)])
	}
}

func TestToTextRejectsNonTextModes(t *testing.T) {
	img := imageutil.CreateSolidImage(1, 1, imageutil.RGB{})
	for _, mode := range []Mode{ModeColorized, 0, 7} {
		if _, err := ToText(img, mode, DefaultRamp()); !errors.Is(err, ErrInvalidMode) {
			t.Errorf("ToText(mode %d) err = %v, want ErrInvalidMode", mode, err)
		}
	}
	if _, err := ToText(img, ModeClassic, nil); !errors.Is(err, ErrInvalidRamp) {
		t.Errorf("nil ramp err = %v, want ErrInvalidRamp", err)
	}
}

func TestToTextEmpty(t *testing.T) {
	got, err := ToText(imageutil.NewRGBAImage(0, 4), ModeClassic, DefaultRamp())
	if err != nil || got != "" {
		t.Errorf("ToText(empty) = %q, %v", got, err)
	}
	if Lines("") != nil {
		t.Error("Lines(\"\") should be nil")
	}
}
