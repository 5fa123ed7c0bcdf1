// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Resize-icons resizes an icon into the standard icon sizes.

# Usage

	$ go tool resize-icons [flags] <input_path> <output_dir>

This tool resizes the provided input image to 16, 32, 64, 128, 256 and 512
pixels square, each also at double density, and saves them as PNG images in
output_dir, which must already exist:

	icon_16x16.png
	icon_16x16@2x.png
	...
	icon_512x512.png
	icon_512x512@2x.png

Images are resampled with a Lanczos filter. The aspect ratio of the input is
not preserved.

It prints "Resized all icons." on success and "Error: <details>" on
failure. Processing stops at the first failure, leaving the icons written
so far in place. The exit status is 0 even on failure, unless -strict is
given.

With -watch, the icons are regenerated each time the input file changes,
until the tool is interrupted.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() {
	cli.SetDocComment(doc)
}
