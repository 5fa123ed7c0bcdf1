// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"go.astrophena.name/base/cli"

	"go.astrophena.name/icons/internal/devtools"
	"go.astrophena.name/icons/internal/icon"
)

func main() {
	cli.Main(new(app))
}

type app struct {
	strict bool
	watch  bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.strict, "strict", false, "Exit with non-zero status if resizing fails.")
	fs.BoolVar(&a.watch, "watch", false, "Resize the icons again each time the input changes.")
}

func (a *app) Run(ctx context.Context) error {
	args, err := devtools.Args(ctx, "input path", "output directory")
	if err != nil {
		return err
	}
	in, outDir := args[0], args[1]
	stdout := cli.GetEnv(ctx).Stdout

	err = a.process(stdout, in, outDir)
	if !a.watch {
		return err
	}
	return devtools.Watch(ctx, in, func() error {
		return a.process(stdout, in, outDir)
	})
}

// process resizes the icons and reports the outcome to w. Unless the strict
// flag is set, failures are only reported and nil is returned.
func (a *app) process(w io.Writer, in, outDir string) error {
	if _, err := icon.ResizeFile(in, outDir); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		if a.strict {
			return fmt.Errorf("resizing %s: %w", in, err)
		}
		return nil
	}
	fmt.Fprintln(w, "Resized all icons.")
	return nil
}
