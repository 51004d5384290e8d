package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/piwi3910/TrimCut/internal/model"
)

var (
	headerColor  = color.New(color.Bold, color.FgHiCyan)
	boardColor   = color.New(color.FgHiBlue)
	wasteColor   = color.New(color.FgYellow)
	successColor = color.New(color.FgHiGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.FgHiBlack)
)

func printWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, warnColor.Sprintf("⚠ %s", msg))
}

func printSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, successColor.Sprintf("✓ %s", msg))
}

// printPlan renders a plan for the terminal.
func printPlan(w io.Writer, result model.PlanResult, minOffcut float64) {
	fmt.Fprintln(w, headerColor.Sprintf("Cutting plan (kerf %s)", model.FormatLength(result.Kerf)))

	if len(result.Boards) == 0 {
		fmt.Fprintln(w, "  No boards needed.")
	}
	for _, b := range result.Boards {
		fmt.Fprintf(w, "\n%s %s\n",
			boardColor.Sprintf("Board %s", b.Name),
			dimColor.Sprintf("(%s stock, %.1f%% used)", model.FormatLength(b.Length), b.Efficiency(result.Kerf)))
		for i, c := range b.Cuts {
			loc := c.Room
			if c.Wall != "" {
				if loc != "" {
					loc += " / "
				}
				loc += c.Wall
			}
			fmt.Fprintf(w, "  %2d. %-12s %s %s\n", i+1, model.FormatLength(c.Length), loc, dimColor.Sprintf("[%s]", c.MeasurementID))
		}
		fmt.Fprintf(w, "      %s\n", wasteColor.Sprintf("waste %s", model.FormatLength(b.Waste(result.Kerf))))
	}

	if len(result.Boards) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerColor.Sprint("Shopping list"))
		for _, bc := range result.Summary.BoardCounts {
			fmt.Fprintf(w, "  %-10s x %d\n", model.FormatLength(bc.Length), bc.Count)
		}
		fmt.Fprintf(w, "\nTotal boards: %d\n", result.Summary.TotalBoards)
		fmt.Fprintf(w, "Total waste:  %s (%.1f%% efficiency)\n",
			model.FormatLength(result.Summary.TotalWaste), result.TotalEfficiency())
	}

	if offcuts := model.DetectOffcuts(result, minOffcut); len(offcuts) > 0 {
		parts := make([]string, 0, len(offcuts))
		for _, o := range offcuts {
			parts = append(parts, fmt.Sprintf("%s from %s", model.FormatLength(o.Length), o.BoardName))
		}
		fmt.Fprintf(w, "Usable offcuts: %s\n", strings.Join(parts, ", "))
	}

	if len(result.Unplaced) > 0 {
		fmt.Fprintln(w)
		for _, c := range result.Unplaced {
			fmt.Fprintln(w, errorColor.Sprintf("✗ %s (%s) does not fit any stock length",
				c.MeasurementID, model.FormatLength(c.Length)))
		}
	}
}
