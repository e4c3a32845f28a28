package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/sih-tools/psgrab/internal/ps"
)

// utf8BOM makes spreadsheet applications detect the encoding correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func writeCSV(path string, records []*ps.ProblemStatement) error {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(ps.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(rec.Row()); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing rows: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}

	return nil
}
