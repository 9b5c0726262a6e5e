package manifest

import (
	"fmt"
	"os"
	"path/filepath"
)

// Load reads and parses the manifest at path. A missing or
// unreadable manifest file is fatal; malformed lines are
// returned as LineErrors alongside the parsed entries.
func Load(path string) (*Manifest, []LineError, error) {
	const errCtx = "loading manifest"

	fi, err := os.Open(path) //nolint:gosec // path from CLI flag
	if err != nil {
		return nil, nil, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	defer fi.Close() //nolint:errcheck // read-only handle

	mf, lineErrs, err := Parse(fi)
	if err != nil {
		return nil, nil, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	return mf, lineErrs, nil
}

// Save writes the manifest to path atomically: the encoded
// content goes to a temp file in the destination directory
// which is renamed over path only once fully written. On
// any failure the temp file is removed and a pre-existing
// manifest at path is left untouched.
func Save(path string, mf *Manifest) (retErr error) {
	const errCtx = "saving manifest"

	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".manifest-*")
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	defer func() {
		if retErr != nil {
			_ = tmp.Close()           //nolint:errcheck // already failing
			_ = os.Remove(tmp.Name()) //nolint:errcheck // best-effort cleanup
		}
	}()

	if _, err := tmp.WriteString(mf.Encode()); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}
