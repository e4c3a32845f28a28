package export

import (
	"fmt"
	"strings"

	"github.com/sih-tools/psgrab/internal/ps"
)

// Format identifies an output format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// FormatError reports a single format that failed to write.
type FormatError struct {
	Format Format
	Path   string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("exporting %s to %s: %v", e.Format, e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Result records the outcome of one requested format.
type Result struct {
	Format Format
	Path   string
	Err    error
}

// ParseFormats normalizes requested format names, accepting "excel" as an
// alias for xlsx, dropping duplicates, and rejecting unknown names.
func ParseFormats(names []string) ([]Format, error) {
	seen := make(map[Format]bool, len(names))
	formats := make([]Format, 0, len(names))

	for _, name := range names {
		var f Format
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "csv":
			f = FormatCSV
		case "json":
			f = FormatJSON
		case "xlsx", "excel":
			f = FormatXLSX
		default:
			return nil, fmt.Errorf("unknown format: %q (must be csv, json, or xlsx)", name)
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		formats = append(formats, f)
	}

	if len(formats) == 0 {
		return nil, fmt.Errorf("no output formats requested")
	}

	return formats, nil
}

// Write writes one file per requested format as <base>.<ext>, returning a
// result per format. A failing format does not stop the others.
func Write(records []*ps.ProblemStatement, base string, formats []Format) []Result {
	results := make([]Result, 0, len(formats))

	for _, f := range formats {
		path := base + "." + string(f)

		var err error
		switch f {
		case FormatCSV:
			err = writeCSV(path, records)
		case FormatJSON:
			err = writeJSON(path, records)
		case FormatXLSX:
			err = writeXLSX(path, records)
		default:
			err = fmt.Errorf("unknown format: %s", f)
		}

		if err != nil {
			err = &FormatError{Format: f, Path: path, Err: err}
		}
		results = append(results, Result{Format: f, Path: path, Err: err})
	}

	return results
}
