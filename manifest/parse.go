package manifest

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/byte4ever/manifest_tools/digest"
)

// LineError describes a manifest line that could not be
// parsed. Parsing continues past it; callers decide
// whether any LineError fails the run.
type LineError struct {
	Line   int    `json:"line"   yaml:"line"`
	Text   string `json:"text"   yaml:"text"`
	Reason string `json:"reason" yaml:"reason"`
}

func (le LineError) Error() string {
	return fmt.Sprintf(
		"manifest line %d: %s", le.Line, le.Reason,
	)
}

// Parse reads a manifest in sha256sum format. Malformed
// lines are collected as LineErrors and skipped; remaining
// lines are still processed. Only a read failure on r is
// fatal. Blank lines are ignored.
func Parse(r io.Reader) (*Manifest, []LineError, error) {
	const errCtx = "parsing manifest"

	mf := &Manifest{}

	var lineErrs []LineError

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		en, reason := parseLine(line)
		if reason != "" {
			lineErrs = append(lineErrs, LineError{
				Line:   lineNo,
				Text:   line,
				Reason: reason,
			})

			continue
		}

		mf.Entries = append(mf.Entries, en)
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	return mf, lineErrs, nil
}

// parseLine splits one manifest line into an entry. It
// accepts any whitespace run between digest and path,
// including sha256sum's "  " and " *" binary marker.
func parseLine(line string) (Entry, string) {
	line = strings.TrimLeft(line, " \t")

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Entry{}, "expected \"<digest> <path>\""
	}

	dg := fields[0]
	if !digest.Valid(dg) {
		return Entry{}, fmt.Sprintf(
			"malformed digest %q", dg,
		)
	}

	rest := strings.TrimSpace(line[len(dg):])
	rest = strings.TrimPrefix(rest, "*")

	if rest == "" {
		return Entry{}, "missing path"
	}

	return Entry{Path: rest, Digest: dg}, ""
}
