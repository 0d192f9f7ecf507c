// Package photo provides image path resolution, decoding, scaling and
// perceptual comparison for review photos.
package photo

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/corona10/goimagehash"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNoMedia is returned for rows that have no image path.
var ErrNoMedia = errors.New("no media file")

// LoadError reports an image that could not be opened or decoded.
type LoadError struct {
	Path string
	// Decode is true when the file opened but was not a readable image.
	Decode bool
	Err    error
}

func (e *LoadError) Error() string {
	if e.Decode {
		return fmt.Sprintf("failed to decode image %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to open image %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Resolve joins a relative image path onto baseDir. Absolute paths are
// returned cleaned; an empty path stays empty.
func Resolve(baseDir, p string) string {
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(baseDir, p)
}

// Load decodes the image at path.
func Load(path string) (image.Image, error) {
	if path == "" {
		return nil, ErrNoMedia
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, &LoadError{Path: path, Decode: true, Err: err}
	}
	return img, nil
}

// Scale resamples img to exactly w×h pixels. Aspect ratio is not kept.
// Sizes below one pixel are clamped to one.
func Scale(img image.Image, w, h int) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Distance returns the hamming distance between the perceptual hashes of
// two images. 0 means perceptually identical.
func Distance(a, b image.Image) (int, error) {
	ha, err := goimagehash.PerceptionHash(a)
	if err != nil {
		return 0, fmt.Errorf("failed to hash first image: %w", err)
	}
	hb, err := goimagehash.PerceptionHash(b)
	if err != nil {
		return 0, fmt.Errorf("failed to hash second image: %w", err)
	}
	return ha.Distance(hb)
}
