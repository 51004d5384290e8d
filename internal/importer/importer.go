// Package importer turns spreadsheet and drawing files into measurement lists.
//
// Tabular sources (CSV, Excel) share one row pipeline: the first row is
// checked against known header names, and files without a header fall back
// to a positional layout chosen from the shape of their first row.
package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/TrimCut/internal/model"
)

// ImportResult collects what an import produced. Errors are per-row or
// per-file problems; Warnings never prevent measurements from being returned.
type ImportResult struct {
	Measurements []model.Measurement
	Errors       []string
	Warnings     []string
}

func (r *ImportResult) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ImportResult) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// ColumnMapping gives the column index of each field, or -1 when absent.
type ColumnMapping struct {
	Room     int
	Wall     int
	Length   int
	Quantity int
	Balanced int
}

// columnRoles lists the header spellings accepted for each field, lowercase.
var columnRoles = []struct {
	names []string
	field func(*ColumnMapping) *int
}{
	{[]string{"room", "area", "location", "space"}, func(m *ColumnMapping) *int { return &m.Room }},
	{[]string{"wall", "side", "label", "name", "description", "desc"}, func(m *ColumnMapping) *int { return &m.Wall }},
	{[]string{"length", "len", "l", "inches", "size", "measurement", "measure"}, func(m *ColumnMapping) *int { return &m.Length }},
	{[]string{"quantity", "qty", "count", "num", "pcs", "pieces"}, func(m *ColumnMapping) *int { return &m.Quantity }},
	{[]string{"balanced", "split", "even", "balance", "split balanced", "splitbalanced"}, func(m *ColumnMapping) *int { return &m.Balanced }},
}

var (
	// Room, Wall, Length, Quantity, Balanced
	positionalMapping = ColumnMapping{Room: 0, Wall: 1, Length: 2, Quantity: 3, Balanced: 4}
	// Length, Quantity, Room, Wall, Balanced
	lengthFirstMapping = ColumnMapping{Length: 0, Quantity: 1, Room: 2, Wall: 3, Balanced: 4}
)

func roleOf(cell string) func(*ColumnMapping) *int {
	cell = strings.ToLower(strings.TrimSpace(cell))
	for _, role := range columnRoles {
		for _, name := range role.names {
			if cell == name {
				return role.field
			}
		}
	}
	return nil
}

// DetectColumns reports whether row is a header and how its columns map to
// measurement fields. The first column carrying a given role wins. For a
// data row the returned mapping is lengthFirstMapping when the row opens
// with a parseable length and positionalMapping otherwise.
func DetectColumns(row []string) (ColumnMapping, bool) {
	m := ColumnMapping{Room: -1, Wall: -1, Length: -1, Quantity: -1, Balanced: -1}
	header := false
	for i, cell := range row {
		field := roleOf(cell)
		if field == nil {
			continue
		}
		header = true
		if idx := field(&m); *idx < 0 {
			*idx = i
		}
	}
	switch {
	case header:
		return m, true
	case len(row) > 0 && isLength(row[0]):
		return lengthFirstMapping, false
	default:
		return positionalMapping, false
	}
}

func isLength(s string) bool {
	_, err := model.ParseLength(s)
	return err == nil
}

var balancedWords = map[string]bool{
	"yes": true, "y": true, "true": true, "t": true, "1": true, "x": true, "balanced": true, "even": true,
	"": false, "no": false, "n": false, "false": false, "f": false, "0": false, "-": false,
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// rowMeasurements parses one data row. A quantity above one expands into
// that many measurements, each with its own ID.
func rowMeasurements(row []string, m ColumnMapping, label string, res *ImportResult) []model.Measurement {
	raw := cell(row, m.Length)
	if raw == "" {
		res.errorf("%s: no length", label)
		return nil
	}
	length, err := model.ParseLength(raw)
	if err != nil {
		res.errorf("%s: cannot read length %q", label, raw)
		return nil
	}
	if length <= 0 {
		res.errorf("%s: length %q is not positive", label, raw)
		return nil
	}

	count := 1
	if q := cell(row, m.Quantity); q != "" {
		if count, err = strconv.Atoi(q); err != nil {
			res.errorf("%s: cannot read quantity %q", label, q)
			return nil
		}
		if count <= 0 {
			res.errorf("%s: quantity %d is not positive", label, count)
			return nil
		}
	}

	b := cell(row, m.Balanced)
	balanced, known := balancedWords[strings.ToLower(b)]
	if !known {
		res.warnf("%s: balanced value %q not understood, treating as no", label, b)
	}

	room, wall := cell(row, m.Room), cell(row, m.Wall)
	out := make([]model.Measurement, 0, count)
	for range count {
		ms := model.NewMeasurement(length, room, wall)
		ms.SplitBalanced = balanced
		out = append(out, ms)
	}
	return out
}

// importRows runs the shared row pipeline over CSV or sheet data. prefix
// names rows in messages ("Line" or "Row"), numbered from one.
func importRows(rows [][]string, prefix string, res ImportResult) ImportResult {
	if len(rows) == 0 {
		res.Errors = append(res.Errors, "File is empty")
		return res
	}

	first := 0
	mapping, header := DetectColumns(rows[0])
	switch {
	case header && mapping.Length < 0:
		res.errorf("header has no Length column (accepted names: %s)", strings.Join(columnRoles[2].names, ", "))
		return res
	case header:
		first = 1
		res.warnf("%s 1 treated as a header", prefix)
	case mapping.Length < len(rows[0]) && !isLength(cell(rows[0], mapping.Length)):
		// unrecognized titles
		first = 1
		res.warnf("%s 1 treated as a header", prefix)
	}

	for i := first; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		label := fmt.Sprintf("%s %d", prefix, i+1)
		res.Measurements = append(res.Measurements, rowMeasurements(rows[i], mapping, label, &res)...)
	}
	return res
}

// ImportExcel reads measurements from the first sheet of an .xlsx workbook.
func ImportExcel(path string) ImportResult {
	var res ImportResult

	f, err := excelize.OpenFile(path)
	if err != nil {
		res.errorf("open workbook: %v", err)
		return res
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		res.errorf("workbook has no sheets")
		return res
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		res.errorf("read sheet %q: %v", sheets[0], err)
		return res
	}
	return importRows(rows, "Row", res)
}
