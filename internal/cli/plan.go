package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/TrimCut/internal/engine"
	"github.com/piwi3910/TrimCut/internal/model"
	"github.com/piwi3910/TrimCut/internal/project"
	"github.com/piwi3910/TrimCut/internal/server"
)

// PlanCmd returns the plan command.
func PlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute a cutting plan",
		Long: `Compute which boards to buy and where to cut them.

Measurements come from -m flags, a project file, a saved configuration or an
imported CSV, Excel or DXF file. Lengths accept inches, fractions and feet:
96, 96 3/16, 8', 8ft 4in.`,
		Example: `  trimcut plan -m 144:Kitchen:North -m 200:Kitchen:East -l 96,120,144
  trimcut plan --csv walls.csv --stock "Oak 8'/10'/12'" --balanced`,
		RunE: runPlan,
	}
	addInputFlags(cmd)
	cmd.Flags().Bool("json", false, "print the plan as JSON")
	cmd.Flags().Bool("strict", false, "fail when a piece cannot be placed")
	cmd.Flags().StringP("output", "o", "", "save the configuration and plan to a project file")
	return cmd
}

func runPlan(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	asJSON, _ := cmd.Flags().GetBool("json")
	strict, _ := cmd.Flags().GetBool("strict")
	output, _ := cmd.Flags().GetString("output")

	// Import warnings go to stderr so JSON output stays parseable.
	var notes io.Writer = out
	if asJSON {
		notes = cmd.ErrOrStderr()
	}

	cfg, err := loadPlanInput(cmd, notes)
	if err != nil {
		return err
	}

	opt := &engine.Optimizer{Strict: strict, Logger: app.logger}
	result, planErr := opt.Optimize(cfg)
	warnings, err := engine.Warnings(result, planErr)
	if err != nil {
		return err
	}

	if output != "" {
		p := model.Project{Name: projectName(output), Config: cfg, Result: &result}
		if err := project.SaveProject(output, p); err != nil {
			return fmt.Errorf("failed to save project: %w", err)
		}
		app.config.AddRecentProject(output)
		if err := project.SaveAppConfig(app.configPath, app.config); err != nil {
			app.logger.Warn("could not update recent projects", "error", err)
		}
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(server.PlanResponse{Result: result, Warnings: warnings}); err != nil {
			return err
		}
	} else {
		printPlan(out, result, app.config.MinOffcutLength)
		if errors.Is(planErr, engine.ErrNoStockLengths) {
			printWarning(out, warnings[0]+": add -l or --stock")
		}
		if output != "" {
			printSuccess(out, "Saved project "+output)
		}
	}

	if strict && errors.Is(planErr, engine.ErrUnplaceable) {
		return planErr
	}
	return nil
}

func projectName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), project.FileExtension)
}
