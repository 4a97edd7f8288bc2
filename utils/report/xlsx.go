package report

import (
	"fmt"

	"github.com/Aashish23092/statement-top-amounts/dto"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Top5"

// XLSX renders the same aligned report as CSV into a single-sheet workbook.
func XLSX(ranked dto.RankedResult) ([]byte, error) {
	pairs, err := Pairs(ranked)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	rows := [][]string{{"debit", "credit"}}
	for _, p := range pairs {
		rows = append(rows, []string{p.Debit, p.Credit})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		values := []interface{}{row[0], row[1]}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
