package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/TrimCut/internal/model"
)

// Sheet names in the exported workbook.
const (
	CutListSheet      = "Cut List"
	ShoppingListSheet = "Shopping List"
)

// ExportXLSX writes the plan as an Excel workbook with a Cut List sheet (one
// row per cut) and a Shopping List sheet (boards to buy per stock length).
func ExportXLSX(path string, result model.PlanResult) error {
	if len(result.Boards) == 0 {
		return fmt.Errorf("no boards to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), CutListSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(ShoppingListSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	cutRows := [][]interface{}{
		{"Board", "Stock Length (in)", "Cut #", "Length (in)", "Length", "Room", "Wall", "Measurement"},
	}
	for _, b := range result.Boards {
		for i, c := range b.Cuts {
			cutRows = append(cutRows, []interface{}{
				b.Name, b.Length, i + 1, c.Length, model.FormatLength(c.Length), c.Room, c.Wall, c.MeasurementID,
			})
		}
		cutRows = append(cutRows, []interface{}{
			b.Name, b.Length, "waste", b.Waste(result.Kerf), model.FormatLength(b.Waste(result.Kerf)),
		})
	}
	if err := writeRows(f, CutListSheet, cutRows); err != nil {
		return err
	}

	shopRows := [][]interface{}{
		{"Stock Length (in)", "Stock Length", "Boards", "Linear Feet"},
	}
	var feet float64
	for _, bc := range result.Summary.BoardCounts {
		lf := bc.Length * float64(bc.Count) / 12
		feet += lf
		shopRows = append(shopRows, []interface{}{bc.Length, model.FormatLength(bc.Length), bc.Count, lf})
	}
	shopRows = append(shopRows,
		[]interface{}{"Total", "", result.Summary.TotalBoards, feet},
		[]interface{}{"Total Waste (in)", "", "", result.Summary.TotalWaste},
		[]interface{}{"Kerf (in)", "", "", result.Kerf},
	)
	if err := writeRows(f, ShoppingListSheet, shopRows); err != nil {
		return err
	}

	for _, sheet := range []string{CutListSheet, ShoppingListSheet} {
		if err := f.SetCellStyle(sheet, "A1", "H1", bold); err != nil {
			return fmt.Errorf("style header: %w", err)
		}
		if err := f.SetColWidth(sheet, "A", "H", 16); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	return f.SaveAs(path)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for r, row := range rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}
