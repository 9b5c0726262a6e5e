// Package digest computes SHA-256 content digests as lowercase hex strings.
// It hashes byte slices, readers, and files behind an fs.FS, and compares
// digests case-insensitively so manifests written by other tools still
// verify.
package digest
