package verify

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/valyala/fasttemplate"
)

// DefaultFormat is the sha256sum-compatible per-entry line.
const DefaultFormat = "{path}: {status}"

// Render expands a single-brace template against the
// result. Available tags: {path}, {status}, {expected},
// {actual}. Unknown tags are preserved as-is.
func (rs Result) Render(format string) string {
	return fasttemplate.ExecuteStringStd(
		format, "{", "}",
		map[string]interface{}{
			"path":     rs.Path,
			"status":   string(rs.Status),
			"expected": rs.Expected,
			"actual":   rs.Actual,
		},
	)
}

// RenderText writes one formatted line per entry followed
// by parse-error lines. When quiet is true, OK entries are
// suppressed and only problems are printed.
func (rp *Report) RenderText(
	w io.Writer,
	format string,
	quiet bool,
) error {
	const errCtx = "rendering report"

	for _, rs := range rp.Results {
		if quiet && rs.Status == StatusOK {
			continue
		}

		if _, err := fmt.Fprintln(
			w, rs.Render(format),
		); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	for _, le := range rp.ParseErrors {
		if _, err := fmt.Fprintln(
			w, le.Error(),
		); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	return nil
}

// EncodeJSON writes the report as a single JSON document.
func (rp *Report) EncodeJSON(w io.Writer) error {
	const errCtx = "encoding json report"

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(rp); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// EncodeYAML writes the report as a single YAML document.
func (rp *Report) EncodeYAML(w io.Writer) error {
	const errCtx = "encoding yaml report"

	buf, err := yaml.Marshal(rp)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}
