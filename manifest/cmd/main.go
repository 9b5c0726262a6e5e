// Package main provides the mkmanifest CLI that digests
// every regular file in a directory and atomically writes
// a sha256sum-compatible manifest next to them.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/byte4ever/manifest_tools/manifest"
)

func run() error {
	const errCtx = "mkmanifest"

	var dir string

	flag.StringVar(
		&dir, "dir", ".",
		"directory to hash",
	)

	flag.Parse()

	mf, err := manifest.Generate(
		os.DirFS(dir), manifest.DefaultExclusions,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	out := filepath.Join(dir, manifest.Name)

	if err := manifest.Save(out, mf); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	fmt.Printf(
		"wrote %s (%d entries)\n", out, len(mf.Entries),
	)

	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
