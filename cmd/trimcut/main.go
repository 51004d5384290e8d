// TrimCut - Baseboard Cutting Planner
//
// Plans how to cut baseboard and other linear trim from purchasable stock
// lengths with as little waste as possible, and exports the plan as PDF,
// Excel, QR labels or text. Also serves the planner over HTTP.
//
// Build:
//   go build -o trimcut ./cmd/trimcut
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o trimcut.exe ./cmd/trimcut
//   GOOS=darwin  GOARCH=arm64 go build -o trimcut-darwin ./cmd/trimcut

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/TrimCut/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "trimcut",
		Short:   "TrimCut - baseboard cutting planner",
		Version: version,
		Long: `TrimCut turns a list of wall measurements into a shopping list of
stock boards and a cut plan for each board, minimizing waste.`,
	}
	cli.Setup(rootCmd)

	// Planning
	rootCmd.AddCommand(cli.PlanCmd())
	rootCmd.AddCommand(cli.CompareCmd())
	rootCmd.AddCommand(cli.EstimateCmd())
	rootCmd.AddCommand(cli.ExportCmd())

	// Data
	rootCmd.AddCommand(cli.ConfigsCmd())
	rootCmd.AddCommand(cli.InventoryCmd())
	rootCmd.AddCommand(cli.BackupCmd())

	// Server
	rootCmd.AddCommand(cli.ServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
