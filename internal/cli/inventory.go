package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/TrimCut/internal/model"
	"github.com/piwi3910/TrimCut/internal/project"
)

// InventoryCmd returns the inventory command.
func InventoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Manage blade profiles and stock presets",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List blades and stock presets usable with --blade and --stock",
		Args:  cobra.NoArgs,
		RunE:  runInventoryList,
	}

	importCmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Merge blades and stock presets from an inventory JSON file",
		Args:  cobra.ExactArgs(1),
		RunE:  runInventoryImport,
	}

	cmd.AddCommand(listCmd, importCmd)
	return cmd
}

func runInventoryList(cmd *cobra.Command, args []string) error {
	inv, err := project.LoadInventory(app.inventoryPath())
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BLADE\tKERF")
	fmt.Fprintln(w, "-----\t----")
	for _, b := range inv.Blades {
		fmt.Fprintf(w, "%s\t%s\n", b.Name, model.FormatLength(b.Kerf))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "STOCK\tMATERIAL\tLENGTHS")
	fmt.Fprintln(w, "-----\t--------\t-------")
	for _, s := range inv.Stocks {
		lengths := make([]string, len(s.Lengths))
		for i, l := range s.Lengths {
			lengths[i] = model.FormatLength(l)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, s.Material, strings.Join(lengths, ", "))
	}
	return w.Flush()
}

func runInventoryImport(cmd *cobra.Command, args []string) error {
	inv, err := project.LoadInventory(app.inventoryPath())
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}
	merged, err := project.ImportInventory(args[0], inv)
	if err != nil {
		return fmt.Errorf("failed to import inventory: %w", err)
	}
	if err := project.SaveInventory(app.inventoryPath(), merged); err != nil {
		return fmt.Errorf("failed to save inventory: %w", err)
	}
	printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Inventory now has %d blade(s) and %d stock preset(s)",
		len(merged.Blades), len(merged.Stocks)))
	return nil
}
