// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Round-icon rounds the corners of an icon.

# Usage

	$ go tool round-icon [flags] <input_path> <output_path>

This tool reads the input image (any format, detected by content), replaces
its alpha channel with a rounded rectangle mask covering the whole image and
saves the result as PNG to output_path. The image keeps its dimensions.

The corner radius is a fraction of the shorter side of the image, set with
the -radius flag (0.22 by default, must be between 0 and 0.5). Edges of the
mask are hard unless -smooth is given.

On success it prints "Created processed icon at <output_path>". On failure it
prints "Error processing image: <details>" and exits with status 1.

With -watch, the icon is processed again each time the input file changes,
until the tool is interrupted.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
