// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package devtools

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/base/testutil"
)

func TestArgs(t *testing.T) {
	cases := map[string]struct {
		args    []string
		want    []string
		wantErr error
	}{
		"exact":   {args: []string{"in.png", "out.png"}, want: []string{"in.png", "out.png"}},
		"extra":   {args: []string{"in.png", "out.png", "extra"}, want: []string{"in.png", "out.png"}},
		"too few": {args: []string{"in.png"}, wantErr: cli.ErrInvalidArgs},
		"no args": {args: nil, wantErr: cli.ErrInvalidArgs},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ctx := cli.WithEnv(context.Background(), &cli.Env{Args: tc.args})
			got, err := Args(ctx, "input path", "output path")
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

func TestSamePath(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "icon.png")
	if err := os.WriteFile(existing, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "link.png")
	if err := os.Symlink(existing, link); err != nil {
		t.Fatal(err)
	}

	cases := map[string]struct {
		a, b string
		want bool
	}{
		"same existing file": {existing, existing, true},
		"unclean path":       {existing, filepath.Join(dir, ".", "icon.png"), true},
		"symlink":            {existing, link, true},
		"different files":    {existing, filepath.Join(dir, "out.png"), false},
		"same missing file":  {filepath.Join(dir, "new.png"), filepath.Join(dir, "sub", "..", "new.png"), true},
		"different missing":  {filepath.Join(dir, "a.png"), filepath.Join(dir, "b.png"), false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, SamePath(tc.a, tc.b), tc.want)
		})
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icon.png")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	errCh := make(chan error, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		errCh <- Watch(ctx, path, func() error {
			calls.Add(1)
			return errors.New("broken image")
		})
	}()

	// Keep touching the file, slower than the debounce delay, until the
	// failing function has run twice: an error must not stop watching.
	deadline := time.After(10 * time.Second)
	tick := time.NewTicker(400 * time.Millisecond)
	defer tick.Stop()
	for calls.Load() < 2 {
		select {
		case <-tick.C:
			if err := os.WriteFile(path, []byte("y"), 0o644); err != nil {
				t.Fatal(err)
			}
		case err := <-errCh:
			t.Fatalf("Watch returned early: %v", err)
		case <-deadline:
			t.Fatalf("want at least 2 calls, got %d", calls.Load())
		}
	}

	cancel()
	wg.Wait()
	if err := <-errCh; err != nil {
		t.Fatalf("Watch: %v", err)
	}
}
