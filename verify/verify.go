package verify

import (
	"io/fs"

	"github.com/byte4ever/manifest_tools/digest"
	"github.com/byte4ever/manifest_tools/manifest"
)

// Status classifies the outcome for one manifest entry.
type Status string

const (
	// StatusOK means the recomputed digest matched.
	StatusOK Status = "OK"
	// StatusFailed means the file exists but its digest
	// differs from the recorded one.
	StatusFailed Status = "FAILED"
	// StatusMissing means the file is absent or unreadable.
	StatusMissing Status = "MISSING"
)

// Result is the verification outcome for one entry. Actual
// is empty when the file could not be read.
type Result struct {
	Path     string `json:"path"             yaml:"path"`
	Status   Status `json:"status"           yaml:"status"`
	Expected string `json:"expected"         yaml:"expected"`
	Actual   string `json:"actual,omitempty" yaml:"actual,omitempty"`
}

// Report aggregates per-entry results and any manifest
// parse errors encountered while loading.
type Report struct {
	Results     []Result             `json:"results"                yaml:"results"`
	ParseErrors []manifest.LineError `json:"parse_errors,omitempty" yaml:"parse_errors,omitempty"`
}

// Counts returns the number of entries per status.
func (rp *Report) Counts() (ok, failed, missing int) {
	for _, rs := range rp.Results {
		switch rs.Status {
		case StatusOK:
			ok++
		case StatusFailed:
			failed++
		case StatusMissing:
			missing++
		}
	}

	return ok, failed, missing
}

// OK reports aggregate success: every entry verified and
// every manifest line parsed. A manifest with lines the
// parser cannot read is treated as failing, since dropped
// lines would hide removed entries.
func (rp *Report) OK() bool {
	if len(rp.ParseErrors) > 0 {
		return false
	}

	for _, rs := range rp.Results {
		if rs.Status != StatusOK {
			return false
		}
	}

	return true
}

// Verify recomputes the digest of every manifest entry
// against the files in fsys. It never modifies anything:
// unreadable or absent files are reported as MISSING
// rather than returned as errors, so one bad entry never
// stops the others.
func Verify(
	fsys fs.FS,
	mf *manifest.Manifest,
) *Report {
	rp := &Report{
		Results: make([]Result, 0, len(mf.Entries)),
	}

	for _, en := range mf.Entries {
		rs := Result{
			Path:     en.Path,
			Expected: en.Digest,
		}

		actual, err := digest.File(fsys, en.Path)

		switch {
		case err != nil:
			rs.Status = StatusMissing
		case digest.Equal(actual, en.Digest):
			rs.Status = StatusOK
			rs.Actual = actual
		default:
			rs.Status = StatusFailed
			rs.Actual = actual
		}

		rp.Results = append(rp.Results, rs)
	}

	return rp
}
