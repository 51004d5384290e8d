package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/TrimCut/internal/engine"
	"github.com/piwi3910/TrimCut/internal/model"
)

// CompareCmd returns the compare command.
func CompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the plan against what-if alternatives",
		Long: `Plan the same measurements under several variants (balanced splits,
zero kerf, a single stock length) and show the results side by side.`,
		RunE: runCompare,
	}
	addInputFlags(cmd)
	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg, err := loadPlanInput(cmd, out)
	if err != nil {
		return err
	}

	opt := &engine.Optimizer{Logger: app.logger}
	results := engine.CompareScenarios(opt, engine.BuildDefaultScenarios(cfg))

	best := -1
	for i, r := range results {
		if r.Warning != nil || r.BoardsUsed == 0 {
			continue
		}
		if best < 0 || r.TotalWaste < results[best].TotalWaste-1e-9 {
			best = i
		}
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tBOARDS\tCUTS\tWASTE\tWASTE %\tBUY")
	fmt.Fprintln(tw, "--------\t------\t----\t-----\t-------\t---")
	for i, r := range results {
		name := r.Scenario.Name
		if i == best {
			name += " *"
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%.1f\t%s\n",
			name, r.BoardsUsed, r.TotalCuts, model.FormatLength(r.TotalWaste), r.WastePercent, shoppingLine(r.Result.Summary))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, r := range results {
		if r.Warning != nil {
			printWarning(out, fmt.Sprintf("%s: %v", r.Scenario.Name, r.Warning))
		}
	}
	if best >= 0 {
		fmt.Fprintln(out, successColor.Sprintf("* least waste: %s", results[best].Scenario.Name))
	}
	return nil
}

func shoppingLine(s model.Summary) string {
	if len(s.BoardCounts) == 0 {
		return "-"
	}
	line := ""
	for i, bc := range s.BoardCounts {
		if i > 0 {
			line += ", "
		}
		line += fmt.Sprintf("%dx%s", bc.Count, model.FormatLength(bc.Length))
	}
	return line
}
