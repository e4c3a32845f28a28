package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sih-tools/psgrab/internal/ps"
)

func writeJSON(path string, records []*ps.ProblemStatement) error {
	// An explicit empty array keeps the output loadable even with zero
	// records, though the pipeline never gets that far.
	if records == nil {
		records = []*ps.ProblemStatement{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}

	return nil
}
