package manifest

import "path"

// Exclusions is a set of filename glob patterns that are
// never tracked. Patterns match flat names only, never
// paths with separators.
type Exclusions []string

// DefaultExclusions covers the manifest itself, the
// landing-page documents shipped alongside the datasets,
// and shell scripts such as the checksum generator.
var DefaultExclusions = Exclusions{
	Name,
	"README.md",
	"index.html",
	"*.sh",
}

// Match reports whether name matches any exclusion
// pattern. Patterns that fail to compile never match.
func (ex Exclusions) Match(name string) bool {
	for _, pattern := range ex {
		ok, err := path.Match(pattern, name)
		if err != nil {
			continue
		}

		if ok {
			return true
		}
	}

	return false
}
