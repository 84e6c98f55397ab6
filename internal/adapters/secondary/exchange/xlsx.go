package exchange

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nusclubs/clubconnect/internal/domain/entity"
)

const sheetName = "Members"

func writeXLSX(path string, members []entity.Member) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to set sheet name: %w", err)
	}

	for i, header := range columnHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("failed to set header cell: %w", err)
		}
	}

	for row, m := range members {
		for i, value := range memberRow(m) {
			cell, _ := excelize.CoordinatesToCellName(i+1, row+2)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("failed to set cell value: %w", err)
			}
		}
	}

	return f.SaveAs(path)
}
