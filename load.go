package img2ascii

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"

	"github.com/wbrown/img2ascii/imageutil"
)

// LoadImage opens and decodes the image at path. A path that does not
// name a readable regular file yields KindInputNotFound; a file that no
// registered decoder accepts yields KindUnsupportedFormat.
func LoadImage(path string) (image.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, newError(KindInputNotFound, path, err)
	}
	if info.IsDir() {
		return nil, newError(KindInputNotFound, path, errors.New("is a directory"))
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, newError(KindInputNotFound, path, err)
		}
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := imageutil.Decode(f)
	if err != nil {
		return nil, newError(KindUnsupportedFormat, path, err)
	}
	return img, nil
}
