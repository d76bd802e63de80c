package img2ascii

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultRamp(t *testing.T) {
	r := DefaultRamp()
	if got := r.String(); got != "¶@#S%?*+;:,.`" {
		t.Fatalf("DefaultRamp() = %q", got)
	}
	if len(r) != 13 {
		t.Fatalf("len = %d, want 13", len(r))
	}

	r[0] = 'X'
	if DefaultRamp()[0] != '¶' {
		t.Error("DefaultRamp shares its backing array")
	}
}

func TestRampIndexBoundaries(t *testing.T) {
	r := DefaultRamp()
	if r.BucketSize() != 19 {
		t.Fatalf("BucketSize() = %d, want 19", r.BucketSize())
	}

	tests := []struct {
		intensity uint8
		want      int
	}{
		{0, 0},
		{18, 0},
		{19, 1},
		{227, 11},
		{228, 12},
		{246, 12},
		{247, 12},
		{255, 12},
	}
	for _, tt := range tests {
		if got := r.Index(tt.intensity); got != tt.want {
			t.Errorf("Index(%d) = %d, want %d", tt.intensity, got, tt.want)
		}
	}

	prev := 0
	for v := 0; v < 256; v++ {
		i := r.Index(uint8(v))
		if i < prev {
			t.Fatalf("Index not monotonic at %d", v)
		}
		if i < 0 || i >= len(r) {
			t.Fatalf("Index(%d) = %d out of range", v, i)
		}
		prev = i
	}
}

func TestRampProportionalIndex(t *testing.T) {
	r := DefaultRamp()
	tests := []struct {
		shade uint8
		want  int
	}{
		{0, 0},
		{19, 0},
		{20, 1},
		{85, 4},
		{255, 12},
	}
	for _, tt := range tests {
		if got := r.ProportionalIndex(tt.shade); got != tt.want {
			t.Errorf("ProportionalIndex(%d) = %d, want %d", tt.shade, got, tt.want)
		}
	}
}

func TestRampReversed(t *testing.T) {
	r := DefaultRamp()
	rev := r.Reversed()

	if rev.String() != "`.,:;+*?%S#@¶" {
		t.Errorf("Reversed() = %q", rev.String())
	}
	if r.String() != DefaultRamp().String() {
		t.Error("Reversed modified its receiver")
	}
	for i := range r {
		if rev[r.Mirror(i)] != r[i] {
			t.Errorf("glyph %d not at mirrored index %d", i, r.Mirror(i))
		}
	}
}

func TestParseRamp(t *testing.T) {
	r, err := ParseRamp("#+. ")
	if err != nil {
		t.Fatalf("ParseRamp: %v", err)
	}
	if len(r) != 4 || r.Glyph(255) != ' ' || r.Glyph(0) != '#' {
		t.Errorf("ParseRamp gave %q", r.String())
	}

	if _, err := ParseRamp(""); !errors.Is(err, ErrInvalidRamp) {
		t.Errorf("empty ramp: err = %v, want ErrInvalidRamp", err)
	}
	if _, err := ParseRamp(strings.Repeat("x", MaxRampLength+1)); !errors.Is(err, ErrInvalidRamp) {
		t.Errorf("long ramp: err = %v, want ErrInvalidRamp", err)
	}
	if _, err := ParseRamp(strings.Repeat("x", MaxRampLength)); err != nil {
		t.Errorf("ramp of MaxRampLength: %v", err)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"1", ModeClassic, false},
		{"2", ModeInverted, false},
		{" 3\n", ModeColorized, false},
		{"0", 0, true},
		{"4", 0, true},
		{"", 0, true},
		{"one", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidMode) {
				t.Errorf("ParseMode(%q) err = %v, want ErrInvalidMode", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}

	if !ModeClassic.IsText() || !ModeInverted.IsText() || ModeColorized.IsText() {
		t.Error("IsText classification wrong")
	}
	if Mode(9).Valid() || Mode(9).String() != "unknown" {
		t.Error("Mode(9) should be invalid")
	}
}
