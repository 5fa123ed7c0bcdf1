// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icon

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"
)

// DefaultRadius is the corner radius ratio used when none is given. It is
// a rough approximation of the macOS app icon shape.
const DefaultRadius = 0.22

// kappa is the distance of cubic Bézier control points from the arc
// endpoints, relative to the radius, for approximating a quarter circle.
const kappa = 0.5522847498

// Mask returns an alpha mask of size w×h that is opaque inside a rounded
// rectangle spanning the whole mask and transparent outside of it. Corners
// are rounded with radius r, in pixels.
//
// If smooth is false, the edge is hard: a pixel is opaque when at least half
// of it is covered by the shape. Otherwise the anti-aliased coverage is kept.
func Mask(w, h int, r float64, smooth bool) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return mask
	}

	fw, fh := float32(w), float32(h)
	rr := float32(max(0, min(r, float64(min(w, h))/2)))
	k := rr * kappa

	z := vector.NewRasterizer(w, h)
	z.MoveTo(rr, 0)
	z.LineTo(fw-rr, 0)
	z.CubeTo(fw-rr+k, 0, fw, rr-k, fw, rr)
	z.LineTo(fw, fh-rr)
	z.CubeTo(fw, fh-rr+k, fw-rr+k, fh, fw-rr, fh)
	z.LineTo(rr, fh)
	z.CubeTo(rr-k, fh, 0, fh-rr+k, 0, fh-rr)
	z.LineTo(0, rr)
	z.CubeTo(0, rr-k, rr-k, 0, rr, 0)
	z.ClosePath()
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	if !smooth {
		for i, a := range mask.Pix {
			if a >= 0x80 {
				mask.Pix[i] = 0xff
			} else {
				mask.Pix[i] = 0
			}
		}
	}
	return mask
}

// Round returns a copy of img with its alpha channel replaced by a rounded
// rectangle mask. The corner radius is ratio times the shorter side of img.
//
// Corner pixels become transparent only when the radius is large enough for
// less than half of them to be covered, which at DefaultRadius means images
// of at least 7×7 pixels. Smaller images keep opaque corners.
func Round(img image.Image, ratio float64, smooth bool) (*image.NRGBA, error) {
	if math.IsNaN(ratio) || ratio < 0 || ratio > 0.5 {
		return nil, ErrInvalidRadius
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	w, h := b.Dx(), b.Dy()

	mask := Mask(w, h, float64(min(w, h))*ratio, smooth)

	// Dimensions already match, so this only normalizes img to NRGBA
	// anchored at the origin.
	out := imaging.Fill(img, w, h, imaging.Center, imaging.Lanczos)

	for y := range h {
		row := out.Pix[y*out.Stride : y*out.Stride+w*4]
		mrow := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x, a := range mrow {
			row[x*4+3] = a
		}
	}
	return out, nil
}

// RoundFile reads the image at src, rounds its corners and writes the
// result to dst as PNG.
func RoundFile(src, dst string, ratio float64, smooth bool) error {
	img, err := Load(src)
	if err != nil {
		return err
	}
	out, err := Round(img, ratio, smooth)
	if err != nil {
		return err
	}
	return Save(out, dst)
}
