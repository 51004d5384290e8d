package importer

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
)

var delimiterNames = map[rune]string{',': "comma", ';': "semicolon", '\t': "tab", '|': "pipe"}

func readRecords(r io.Reader, delim rune) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}

// DetectCSVDelimiter guesses the field separator of data among comma,
// semicolon, tab and pipe. A candidate qualifies when it splits the first
// line into at least two fields; among those the one keeping the most rows
// at the first row's width wins, then the one giving the most columns.
// Comma is returned when nothing qualifies.
func DetectCSVDelimiter(data []byte) rune {
	best, bestRows, bestCols := ',', -1, 0
	for _, d := range []rune{',', ';', '\t', '|'} {
		records, err := readRecords(bytes.NewReader(data), d)
		if err != nil || len(records) == 0 || len(records[0]) < 2 {
			continue
		}
		cols := len(records[0])
		rows := 0
		for _, rec := range records {
			if len(rec) == cols {
				rows++
			}
		}
		if rows > bestRows || (rows == bestRows && cols > bestCols) {
			best, bestRows, bestCols = d, rows, cols
		}
	}
	return best
}

// ImportCSV reads measurements from a delimited text file, detecting the
// delimiter first.
func ImportCSV(path string) ImportResult {
	var res ImportResult

	data, err := os.ReadFile(path)
	if err != nil {
		res.errorf("open %s: %v", path, err)
		return res
	}
	if len(bytes.TrimSpace(data)) == 0 {
		res.Errors = append(res.Errors, "File is empty")
		return res
	}

	delim := DetectCSVDelimiter(data)
	if delim != ',' {
		res.warnf("Using %s as the delimiter", delimiterNames[delim])
	}
	return importRecords(bytes.NewReader(data), delim, res)
}

// ImportCSVFromReader reads measurements from r using a known delimiter.
func ImportCSVFromReader(r io.Reader, delimiter rune) ImportResult {
	return importRecords(r, delimiter, ImportResult{})
}

func importRecords(r io.Reader, delim rune, res ImportResult) ImportResult {
	records, err := readRecords(r, delim)
	if err != nil {
		res.errorf("parse CSV: %v", err)
		return res
	}
	return importRows(records, "Line", res)
}
