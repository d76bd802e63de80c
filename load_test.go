package img2ascii

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/wbrown/img2ascii/imageutil"
)

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "solid.png")
	f, err := os.Create(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := imageutil.EncodePNG(f, imageutil.CreateSolidImage(7, 3, imageutil.RGB{R: 9})); err != nil {
		t.Fatal(err)
	}
	f.Close()

	textPath := filepath.Join(dir, "notes.jpg")
	if err := os.WriteFile(textPath, []byte("hello"), 0o600); err != nil {
		t.Fatal(err)
	}

	img, err := LoadImage(pngPath)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 7 || b.Dy() != 3 {
		t.Errorf("bounds = %v", b)
	}

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing", filepath.Join(dir, "missing.png"), ErrInputNotFound},
		{"directory", dir, ErrInputNotFound},
		{"empty path", "", ErrInputNotFound},
		{"not an image", textPath, ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadImage(tt.path)
			if !errors.Is(err, tt.want) {
				t.Errorf("LoadImage(%q) err = %v, want %v", tt.path, err, tt.want)
			}
		})
	}
}
