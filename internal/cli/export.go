package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/TrimCut/internal/engine"
	"github.com/piwi3910/TrimCut/internal/export"
	"github.com/piwi3910/TrimCut/internal/model"
)

// ExportCmd returns the export command and its format subcommands.
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Compute a plan and write it to a file",
		Long:  "Compute a cutting plan and export it as a PDF, Excel workbook, QR label sheet or plain text.",
	}
	cmd.AddCommand(
		exportFormatCmd("pdf", "Export the cut plan and shopping list as PDF", export.ExportPDF),
		exportFormatCmd("xlsx", "Export the cut list and shopping list as an Excel workbook", export.ExportXLSX),
		exportFormatCmd("labels", "Export one QR-coded label per cut as a PDF label sheet", export.ExportLabels),
		exportFormatCmd("text", "Export the plan as plain text", exportText),
	)
	return cmd
}

func exportFormatCmd(format, short string, write func(string, model.PlanResult) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   format + " [output]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cfg, err := loadPlanInput(cmd, out)
			if err != nil {
				return err
			}
			result, planErr := (&engine.Optimizer{Logger: app.logger}).Optimize(cfg)
			warnings, err := engine.Warnings(result, planErr)
			if err != nil {
				return err
			}
			for _, w := range warnings {
				printWarning(out, w)
			}

			if err := write(args[0], result); err != nil {
				return fmt.Errorf("failed to export %s: %w", format, err)
			}
			printSuccess(out, fmt.Sprintf("Exported %s to %s", format, args[0]))
			return nil
		},
	}
	addInputFlags(cmd)
	return cmd
}

func exportText(path string, result model.PlanResult) error {
	return os.WriteFile(path, []byte(export.FormatText(result)), 0644)
}
