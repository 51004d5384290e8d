package export

import (
	"fmt"
	"strings"

	"github.com/piwi3910/TrimCut/internal/model"
)

// FormatText renders the plan as plain text, one block per board followed by
// the shopping list. It is the format copied to the clipboard and printed by
// the CLI.
func FormatText(result model.PlanResult) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "CUTTING PLAN (kerf %s)\n", model.FormatLength(result.Kerf))
	if len(result.Boards) == 0 {
		sb.WriteString("\nNo boards needed.\n")
	}

	for _, b := range result.Boards {
		fmt.Fprintf(&sb, "\nBoard %s - %s stock, %d cut(s), waste %s\n",
			b.Name, model.FormatLength(b.Length), len(b.Cuts), model.FormatLength(b.Waste(result.Kerf)))
		for i, c := range b.Cuts {
			fmt.Fprintf(&sb, "  %2d. %-12s", i+1, model.FormatLength(c.Length))
			if loc := cutLocation(c); loc != "" {
				fmt.Fprintf(&sb, " %s", loc)
			}
			fmt.Fprintf(&sb, " [%s]\n", c.MeasurementID)
		}
	}

	sb.WriteString("\nSHOPPING LIST\n")
	for _, bc := range result.Summary.BoardCounts {
		fmt.Fprintf(&sb, "  %-10s x %d\n", model.FormatLength(bc.Length), bc.Count)
	}
	fmt.Fprintf(&sb, "\nTotal boards: %d\n", result.Summary.TotalBoards)
	fmt.Fprintf(&sb, "Total waste:  %s\n", model.FormatLength(result.Summary.TotalWaste))

	if len(result.Unplaced) > 0 {
		sb.WriteString("\nUNPLACED (longer than every stock length)\n")
		for _, c := range result.Unplaced {
			fmt.Fprintf(&sb, "  %s %s\n", model.FormatLength(c.Length), c.MeasurementID)
		}
	}
	return sb.String()
}
