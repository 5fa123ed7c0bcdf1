// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package icon implements the image transformations used to prepare app icons.

There are two pipelines:

	Round   applies a rounded-rectangle alpha mask to an image, keeping its
	        dimensions.
	Resize  produces square variants of an image at fixed nominal sizes and
	        pixel densities (see Variants).

Inputs are decoded by content, so any format with a registered decoder can be
used (PNG, JPEG, GIF, BMP, TIFF and WebP are registered by this package).
Outputs are always PNG.
*/
package icon

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// Possible errors.
var (
	ErrInvalidRadius = errors.New("corner radius ratio must be between 0 and 0.5")
	ErrEmptyImage    = errors.New("image has no pixels")
	ErrNotDir        = errors.New("not a directory")
)

// Load opens and decodes the image at path.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyImage)
	}
	return img, nil
}

// Save encodes img as PNG and writes it to path.
//
// The image is written to a temporary file in the same directory first and
// then renamed, so path never holds a partially written image.
func Save(img image.Image, path string) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp) // no-op after a successful rename

	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", base, err)
	}
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
