// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icon

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Sizes are the nominal icon sizes produced by ResizeFile, in order.
var Sizes = []int{16, 32, 64, 128, 256, 512}

// Scales are the pixel densities produced for each nominal size, in order.
var Scales = []int{1, 2}

// Variant is a square icon rendition of a nominal size at a pixel density.
type Variant struct {
	Size  int // nominal size
	Scale int // pixel density, 1 or 2
}

// Pixels returns the edge length of the variant in pixels.
func (v Variant) Pixels() int { return v.Size * v.Scale }

// Name returns the file name of the variant, like "icon_32x32.png" or
// "icon_32x32@2x.png".
func (v Variant) Name() string {
	if v.Scale == 1 {
		return fmt.Sprintf("icon_%dx%d.png", v.Size, v.Size)
	}
	return fmt.Sprintf("icon_%dx%d@%dx.png", v.Size, v.Size, v.Scale)
}

// Variants expands nominal sizes into variants for every scale in Scales.
// Order follows sizes, and within each size, Scales.
func Variants(sizes []int) []Variant {
	vs := make([]Variant, 0, len(sizes)*len(Scales))
	for _, s := range sizes {
		for _, sc := range Scales {
			vs = append(vs, Variant{Size: s, Scale: sc})
		}
	}
	return vs
}

// Resize scales img to a square of the variant's pixel size using Lanczos
// resampling. The aspect ratio of img is not preserved.
func Resize(img image.Image, v Variant) *image.NRGBA {
	px := v.Pixels()
	return imaging.Resize(img, px, px, imaging.Lanczos)
}

// ResizeFile reads the image at src and writes every variant of Sizes into
// dir, which must already exist. It returns the paths of written files in
// order.
//
// Processing stops at the first error; files written before it are kept
// and reported.
func ResizeFile(src, dir string) ([]string, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%s: %w", dir, ErrNotDir)
	}

	img, err := Load(src)
	if err != nil {
		return nil, err
	}

	var written []string
	for _, v := range Variants(Sizes) {
		path := filepath.Join(dir, v.Name())
		if err := Save(Resize(img, v), path); err != nil {
			return written, fmt.Errorf("%s: %w", v.Name(), err)
		}
		written = append(written, path)
	}
	return written, nil
}
