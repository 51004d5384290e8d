package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/TrimCut/internal/engine"
	"github.com/piwi3910/TrimCut/internal/model"
)

// EstimateCmd returns the estimate command.
func EstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Quick linear-footage estimate of boards to buy",
		Long: `Estimate how many boards of one stock length to buy from the total
linear length, without packing. The real plan is shown alongside.`,
		RunE: runEstimate,
	}
	addInputFlags(cmd)
	cmd.Flags().String("stock-length", "", "board length to estimate for (default: longest stock length)")
	cmd.Flags().Float64("waste-percent", 10, "extra percentage to allow for mistakes")
	return cmd
}

func runEstimate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg, err := loadPlanInput(cmd, out)
	if err != nil {
		return err
	}

	stockLength := 0.0
	for _, l := range cfg.AvailableLengths {
		if l > stockLength {
			stockLength = l
		}
	}
	if s, _ := cmd.Flags().GetString("stock-length"); s != "" {
		stockLength, err = model.ParseLength(s)
		if err != nil {
			return fmt.Errorf("stock length %q: %w", s, err)
		}
	}
	wastePercent, _ := cmd.Flags().GetFloat64("waste-percent")
	if wastePercent < 0 {
		return fmt.Errorf("--waste-percent must not be negative")
	}

	est := model.CalculatePurchaseEstimate(cfg.Measurements, stockLength, cfg.KerfOrDefault(), wastePercent)

	fmt.Fprintln(out, headerColor.Sprint("Purchase estimate"))
	fmt.Fprintf(out, "  Total linear:   %s (%.1f ft)\n", model.FormatLength(est.TotalLinear), est.TotalLinearFeet)
	if est.StockLength <= 0 {
		printWarning(out, "no stock length to estimate for")
		return nil
	}
	fmt.Fprintf(out, "  Stock length:   %s\n", model.FormatLength(est.StockLength))
	fmt.Fprintf(out, "  Boards (exact): %.2f\n", est.BoardsNeededExact)
	fmt.Fprintf(out, "  Boards (min):   %d\n", est.BoardsNeededMin)
	fmt.Fprintf(out, "  With %.0f%% extra: %d\n", est.WastePercent, est.BoardsWithWaste)

	result, err := engine.New().Optimize(cfg)
	if err == nil {
		fmt.Fprintf(out, "  Planned:        %d board(s), %s\n", result.Summary.TotalBoards, shoppingLine(result.Summary))
	}
	return nil
}
