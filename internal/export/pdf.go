// Package export writes finished cutting plans to PDF, label sheets, Excel
// workbooks and plain text.
package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/TrimCut/internal/model"
)

// cutColor represents an RGB color for a placed cut.
type cutColor struct {
	R, G, B int
}

// cutColors is the palette cycled through for cuts on a board.
var cutColors = []cutColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth     = 297.0
	pageHeight    = 210.0
	marginLeft    = 15.0
	marginRight   = 15.0
	marginTop     = 15.0
	marginBottom  = 15.0
	headerHeight  = 12.0
	drawAreaTop   = marginTop + headerHeight + 5.0
	boardRowH     = 19.0 // vertical space per board
	boardBarH     = 9.0
	boardLabelW   = 38.0
	boardsPerPage = 8 // fits between drawAreaTop and the bottom margin
)

// ExportPDF generates a PDF document of the cutting plan. Boards are drawn
// as bars to a common scale, several per page, followed by a summary page
// with the shopping list and any offcuts worth keeping.
func ExportPDF(path string, result model.PlanResult) error {
	if len(result.Boards) == 0 {
		return fmt.Errorf("no boards to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	longest := 0.0
	for _, b := range result.Boards {
		if b.Length > longest {
			longest = b.Length
		}
	}
	scale := (pageWidth - marginLeft - marginRight - boardLabelW) / longest

	pages := (len(result.Boards) + boardsPerPage - 1) / boardsPerPage
	for page := 0; page < pages; page++ {
		pdf.AddPage()
		renderPageHeader(pdf, result, page+1, pages)

		start := page * boardsPerPage
		end := start + boardsPerPage
		if end > len(result.Boards) {
			end = len(result.Boards)
		}
		for i, b := range result.Boards[start:end] {
			renderBoard(pdf, b, result.Kerf, scale, drawAreaTop+float64(i)*boardRowH)
		}
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result)

	return pdf.OutputFileAndClose(path)
}

func renderPageHeader(pdf *fpdf.Fpdf, result model.PlanResult, page, pages int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Cutting Plan - %d boards, kerf %s", result.Summary.TotalBoards, model.FormatLength(result.Kerf))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(pageWidth-marginRight-40, marginTop)
	pdf.CellFormat(40, headerHeight, fmt.Sprintf("Page %d of %d", page, pages), "", 0, "R", false, 0, "")
}

// renderBoard draws one board at vertical position y: its name on the left,
// then each cut as a colored segment with the kerf gaps and waste shown.
func renderBoard(pdf *fpdf.Fpdf, b model.Board, kerf, scale, y float64) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(boardLabelW, 5, "Board "+b.Name, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(marginLeft, y+5)
	pdf.CellFormat(boardLabelW, 4, model.FormatLength(b.Length)+" stock", "", 0, "L", false, 0, "")

	x0 := marginLeft + boardLabelW
	barW := b.Length * scale

	// Stock background (wood color)
	pdf.SetFillColor(210, 180, 140)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.4)
	pdf.Rect(x0, y, barW, boardBarH, "FD")

	pos := 0.0
	for i, c := range b.Cuts {
		if i > 0 {
			pos += kerf
		}
		col := cutColors[i%len(cutColors)]
		cw := c.Length * scale
		cx := x0 + pos*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.2)
		pdf.Rect(cx, y, cw, boardBarH, "FD")

		text := model.FormatLength(c.Length)
		pdf.SetFont("Helvetica", "", 7)
		if tw := pdf.GetStringWidth(text); tw < cw-1 {
			pdf.SetXY(cx+(cw-tw)/2, y+2.5)
			pdf.CellFormat(tw, 4, text, "", 0, "C", false, 0, "")
		}

		if loc := cutLocation(c); loc != "" {
			pdf.SetFont("Helvetica", "", 6)
			if lw := pdf.GetStringWidth(loc); lw < cw-1 {
				pdf.SetXY(cx+(cw-lw)/2, y+boardBarH+0.5)
				pdf.CellFormat(lw, 3, loc, "", 0, "C", false, 0, "")
			}
		}
		pos += c.Length
	}

	waste := b.Waste(kerf)
	if waste > 0 {
		wx := x0 + (b.Length-waste)*scale
		ww := waste * scale
		drawHatchPattern(pdf, wx, y, ww, boardBarH)
		pdf.SetFont("Helvetica", "I", 7)
		pdf.SetTextColor(90, 90, 90)
		text := "waste " + model.FormatLength(waste)
		if tw := pdf.GetStringWidth(text); tw < ww-1 {
			pdf.SetXY(wx+(ww-tw)/2, y+2.5)
			pdf.CellFormat(tw, 4, text, "", 0, "C", false, 0, "")
		}
		pdf.SetTextColor(0, 0, 0)
	}
}

// drawHatchPattern draws diagonal lines within a rectangle.
func drawHatchPattern(pdf *fpdf.Fpdf, x, y, w, h float64) {
	pdf.SetDrawColor(160, 130, 100)
	pdf.SetLineWidth(0.1)
	const spacing = 2.0
	for offset := 0.0; offset < w; offset += spacing {
		x2 := x + offset + h
		if x2 > x+w {
			x2 = x + w
		}
		pdf.Line(x+offset, y+h, x2, y+h-(x2-x-offset))
	}
}

func cutLocation(c model.Cut) string {
	switch {
	case c.Room != "" && c.Wall != "":
		return c.Room + " / " + c.Wall
	case c.Room != "":
		return c.Room
	default:
		return c.Wall
	}
}

// renderSummaryPage draws the overall statistics and shopping list.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.PlanResult) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Cutting Plan Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Total Boards", fmt.Sprintf("%d", result.Summary.TotalBoards)},
		{"Total Cuts", fmt.Sprintf("%d", result.CutCount())},
		{"Total Waste", model.FormatLength(result.Summary.TotalWaste)},
		{"Overall Efficiency", fmt.Sprintf("%.1f%%", result.TotalEfficiency())},
		{"Kerf", model.FormatLength(result.Kerf)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Shopping List", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{50, 40, 40}
	headers := []string{"Stock Length", "Boards", "Linear Feet"}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, bc := range result.Summary.BoardCounts {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		row := []string{
			model.FormatLength(bc.Length),
			fmt.Sprintf("%d", bc.Count),
			fmt.Sprintf("%.1f", bc.Length*float64(bc.Count)/12),
		}
		xPos = marginLeft
		for j, cell := range row {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	if len(result.Unplaced) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Pieces that fit no stock length", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, c := range result.Unplaced {
			pdf.SetXY(marginLeft+5, y)
			text := fmt.Sprintf("- %s: %s %s", c.MeasurementID, model.FormatLength(c.Length), cutLocation(c))
			pdf.CellFormat(200, 5, text, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	offcuts := model.DetectOffcuts(result, model.DefaultMinOffcutLength)
	if len(offcuts) > 0 && y < pageHeight-marginBottom-20 {
		y += 8
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(100, 7, "Usable Offcuts", "", 0, "L", false, 0, "")
		y += 8
		pdf.SetFont("Helvetica", "", 9)
		for _, o := range offcuts {
			if y > pageHeight-marginBottom-8 {
				break
			}
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(200, 5, fmt.Sprintf("- Board %s: %s", o.BoardName, model.FormatLength(o.Length)), "", 0, "L", false, 0, "")
			y += 5
		}
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by TrimCut - Baseboard Cutting Planner", "", 0, "C", false, 0, "")
}
