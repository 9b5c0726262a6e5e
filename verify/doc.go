// Package verify checks a directory's files against a checksum manifest.
// Each entry is recomputed and compared, producing a per-entry OK, FAILED,
// or MISSING result and an aggregate pass/fail. Verification is strictly
// read-only. Reports render as sha256sum-style text lines, JSON, or YAML.
package verify
