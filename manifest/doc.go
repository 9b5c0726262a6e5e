// Package manifest models a checksum manifest: an ordered list of
// path/digest entries persisted one per line in the sha256sum format
// "<digest>  <path>". It generates manifests from a directory listing,
// parses existing ones while collecting per-line errors, and replaces the
// on-disk file atomically so a half-written manifest is never observable.
package manifest
