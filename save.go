package img2ascii

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/wbrown/img2ascii/imageutil"
)

const (
	// TextSuffix is appended to the source stem for text art.
	TextSuffix = "_ascii.txt"
	// BitmapSuffix is appended to the source stem for colorized bitmaps.
	BitmapSuffix = "_ansi.png"
)

// Stem returns the base name of srcPath up to its first '.'. Names that
// start with a dot keep the part before their last extension instead.
func Stem(srcPath string) string {
	base := filepath.Base(srcPath)
	stem, _, _ := strings.Cut(base, ".")
	if stem == "" {
		stem = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return stem
}

// OutputPath returns dir/<stem><suffix> for the source image srcPath.
func OutputPath(dir, srcPath, suffix string) string {
	return filepath.Join(dir, Stem(srcPath)+suffix)
}

// SaveText writes text art byte-for-byte to dir/<stem>_ascii.txt and
// returns the path written.
func SaveText(text, srcPath, dir string) (string, error) {
	path := OutputPath(dir, srcPath, TextSuffix)
	if err := writeFileAtomic(path, []byte(text)); err != nil {
		return "", err
	}
	return path, nil
}

// SaveBitmap encodes img as PNG to dir/<stem>_ansi.png and returns the
// path written.
func SaveBitmap(img image.Image, srcPath, dir string) (string, error) {
	var buf bytes.Buffer
	if err := imageutil.EncodePNG(&buf, img); err != nil {
		return "", err
	}
	path := OutputPath(dir, srcPath, BitmapSuffix)
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place, so a failed write never leaves a partial file at path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set mode on %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
