package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

// HexLen is the length of a hex-encoded SHA-256 digest.
const HexLen = 64

// Bytes computes the SHA-256 hex digest of data.
func Bytes(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}

// Reader computes the SHA-256 hex digest of everything
// readable from r.
func Reader(r io.Reader) (string, error) {
	const errCtx = "digesting reader"

	ha := sha256.New()

	if _, err := io.Copy(ha, r); err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return hex.EncodeToString(ha.Sum(nil)), nil
}

// File computes the SHA-256 hex digest of the file at path
// within fsys. The file is streamed, not slurped.
func File(
	fsys fs.FS,
	path string,
) (result string, retErr error) {
	const errCtx = "digesting file"

	fi, err := fsys.Open(path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	defer func() {
		if closeErr := fi.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("%s: %w", errCtx, closeErr)
		}
	}()

	dg, err := Reader(fi)
	if err != nil {
		return "", fmt.Errorf("%s: %s: %w", errCtx, path, err)
	}

	return dg, nil
}

// Equal reports whether two hex digests denote the same
// hash, ignoring case.
func Equal(a, b string) bool {
	return strings.EqualFold(a, b)
}

// Valid reports whether s looks like a SHA-256 hex digest.
func Valid(s string) bool {
	if len(s) != HexLen {
		return false
	}

	_, err := hex.DecodeString(s)

	return err == nil
}
