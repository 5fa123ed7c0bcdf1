// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package devtools contains common functionality for icon tools.
package devtools

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/base/logger"

	"go.astrophena.name/icons/internal/watch"
)

// Args returns the first positional argument of the tool for each name.
// Fewer arguments than names is an error; extra arguments are ignored. The
// names are only used for the error message.
func Args(ctx context.Context, names ...string) ([]string, error) {
	env := cli.GetEnv(ctx)
	if len(env.Args) < len(names) {
		return nil, fmt.Errorf("%w: want %s", cli.ErrInvalidArgs, strings.Join(names, " and "))
	}
	return env.Args[:len(names)], nil
}

// Watch calls run each time the file at path changes, until ctx is canceled.
// Errors returned by run are logged and don't stop watching.
func Watch(ctx context.Context, path string, run func() error) error {
	return watch.File(ctx, path, func() {
		logger.Info(ctx, "regenerating", slog.String("input", path))
		if err := run(); err != nil {
			logger.Error(ctx, "regeneration failed", slog.Any("err", err))
		}
	})
}

// SamePath reports whether a and b name the same file. Paths that don't
// exist yet are compared after resolving them to absolute paths.
func SamePath(a, b string) bool {
	ai, aerr := os.Stat(a)
	bi, berr := os.Stat(b)
	if aerr == nil && berr == nil {
		return os.SameFile(ai, bi)
	}
	aa, aerr := filepath.Abs(a)
	ba, berr := filepath.Abs(b)
	return aerr == nil && berr == nil && aa == ba
}
