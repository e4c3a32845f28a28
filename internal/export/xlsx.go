package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sih-tools/psgrab/internal/ps"
)

// SheetName is the single worksheet holding all records.
const SheetName = "Problem Statements"

func writeXLSX(path string, records []*ps.ProblemStatement) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	if err := writeSheetRow(f, 1, ps.Columns); err != nil {
		return err
	}
	for i, rec := range records {
		if err := writeSheetRow(f, i+2, rec.Row()); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}

	return nil
}

func writeSheetRow(f *excelize.File, row int, values []string) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("resolving cell: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, v); err != nil {
			return fmt.Errorf("setting cell %s: %w", cell, err)
		}
	}
	return nil
}
