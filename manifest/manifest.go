package manifest

import (
	"fmt"
	"sort"
	"strings"
)

// Name is the fixed on-disk manifest filename.
const Name = "sha256_manifest.txt"

// Entry records the expected digest for one tracked file.
type Entry struct {
	Path   string `json:"path"   yaml:"path"`
	Digest string `json:"digest" yaml:"digest"`
}

// Manifest is an ordered list of entries. Paths are unique
// within a manifest produced by Generate.
type Manifest struct {
	Entries []Entry
}

// Lookup returns the entry for path, if present.
func (mf *Manifest) Lookup(path string) (Entry, bool) {
	for _, en := range mf.Entries {
		if en.Path == path {
			return en, true
		}
	}

	return Entry{}, false
}

// Paths returns the entry paths in manifest order.
func (mf *Manifest) Paths() []string {
	paths := make([]string, 0, len(mf.Entries))

	for _, en := range mf.Entries {
		paths = append(paths, en.Path)
	}

	return paths
}

// Sort orders entries lexicographically by path so
// repeated generations produce byte-identical manifests.
func (mf *Manifest) Sort() {
	sort.Slice(mf.Entries, func(i, j int) bool {
		return mf.Entries[i].Path < mf.Entries[j].Path
	})
}

// Encode renders the manifest in sha256sum format, digest
// first, two spaces, then the path. An empty manifest
// encodes to an empty string.
func (mf *Manifest) Encode() string {
	var sb strings.Builder

	for _, en := range mf.Entries {
		fmt.Fprintf(&sb, "%s  %s\n", en.Digest, en.Path)
	}

	return sb.String()
}
