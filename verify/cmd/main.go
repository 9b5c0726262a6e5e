// Package main provides the chkmanifest CLI that verifies
// a directory's files against its checksum manifest and
// exits non-zero unless every entry checks out.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/byte4ever/manifest_tools/manifest"
	"github.com/byte4ever/manifest_tools/verify"
)

func run() error {
	const errCtx = "chkmanifest"

	var (
		dir          string
		manifestPath string
		format       string
		reportKind   string
		quiet        bool
	)

	flag.StringVar(
		&dir, "dir", ".",
		"directory holding the tracked files",
	)

	flag.StringVar(
		&manifestPath, "manifest", "",
		"manifest file (default: <dir>/"+manifest.Name+")",
	)

	flag.StringVar(
		&format, "format", verify.DefaultFormat,
		"per-entry line template"+
			" ({path}, {status}, {expected}, {actual})",
	)

	flag.StringVar(
		&reportKind, "report", "text",
		"report output: text, json or yaml",
	)

	flag.BoolVar(
		&quiet, "quiet", false,
		"print only entries that are not OK",
	)

	flag.Parse()

	if manifestPath == "" {
		manifestPath = filepath.Join(dir, manifest.Name)
	}

	mf, lineErrs, err := manifest.Load(manifestPath)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	rp := verify.Verify(os.DirFS(dir), mf)
	rp.ParseErrors = lineErrs

	switch reportKind {
	case "text":
		err = rp.RenderText(os.Stdout, format, quiet)
	case "json":
		err = rp.EncodeJSON(os.Stdout)
	case "yaml":
		err = rp.EncodeYAML(os.Stdout)
	default:
		return fmt.Errorf(
			"%s: unknown report kind %q",
			errCtx, reportKind,
		)
	}

	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	ok, failed, missing := rp.Counts()

	if reportKind == "text" {
		fmt.Printf(
			"%d ok, %d failed, %d missing\n",
			ok, failed, missing,
		)
	}

	if !rp.OK() {
		return fmt.Errorf(
			"%s: verification failed:"+
				" %d failed, %d missing, %d parse errors",
			errCtx, failed, missing, len(rp.ParseErrors),
		)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
