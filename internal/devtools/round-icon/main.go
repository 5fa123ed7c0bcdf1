// © 2026 Ilya Mateyko. All rights reserved.
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

func main() { cli.Main(new(app)) }

type app struct {
	radius float64
	smooth bool
	watch  bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.Float64Var(&a.radius, "radius", icon.DefaultRadius, "Corner radius as a `fraction` of the shorter image side.")
	fs.BoolVar(&a.smooth, "smooth", false, "Anti-alias the rounded edges.")
	fs.BoolVar(&a.watch, "watch", false, "Process the icon again each time the input changes.")
}

func (a *app) Run(ctx context.Context) error {
	args, err := devtools.Args(ctx, "input path", "output path")
	if err != nil {
		return err
	}
	in, out := args[0], args[1]
	if a.watch && devtools.SamePath(in, out) {
		return fmt.Errorf("%w: -watch needs an output path different from the input", cli.ErrInvalidArgs)
	}
	stdout := cli.GetEnv(ctx).Stdout

	err = a.process(stdout, in, out)
	if !a.watch {
		return err
	}
	return devtools.Watch(ctx, in, func() error {
		return a.process(stdout, in, out)
	})
}

// process rounds a single icon and reports the outcome to w. Any error is
// fatal for a one-shot run.
func (a *app) process(w io.Writer, in, out string) error {
	if err := icon.RoundFile(in, out, a.radius, a.smooth); err != nil {
		fmt.Fprintf(w, "Error processing image: %v\n", err)
		return fmt.Errorf("processing %s: %w", in, err)
	}
	fmt.Fprintf(w, "Created processed icon at %s\n", out)
	return nil
}
