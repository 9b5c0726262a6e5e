package manifest

import (
	"fmt"
	"io/fs"

	"github.com/byte4ever/manifest_tools/digest"
)

// Generate digests every regular file directly under the
// root of fsys whose name is not excluded, and returns the
// resulting manifest sorted by path. Subdirectories and
// symlinks are never traversed. Any file that cannot be
// hashed aborts the whole run.
func Generate(
	fsys fs.FS,
	excl Exclusions,
) (*Manifest, error) {
	const errCtx = "generating manifest"

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf(
			"%s: reading directory: %w", errCtx, err,
		)
	}

	mf := &Manifest{}

	for _, de := range entries {
		if !de.Type().IsRegular() {
			continue
		}

		name := de.Name()
		if excl.Match(name) {
			continue
		}

		dg, err := digest.File(fsys, name)
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %s: %w", errCtx, name, err,
			)
		}

		mf.Entries = append(mf.Entries, Entry{
			Path:   name,
			Digest: dg,
		})
	}

	mf.Sort()

	return mf, nil
}
