package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/TrimCut/internal/project"
)

// BackupCmd returns the backup command.
func BackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or restore settings, inventory and saved configurations",
	}

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write all user data to a backup file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBackupExport,
	}

	importCmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Restore user data from a backup file",
		Long: `Restore a backup. The app config is replaced, inventory entries are
merged by ID and saved configurations are upserted by name.`,
		Args: cobra.ExactArgs(1),
		RunE: runBackupImport,
	}

	cmd.AddCommand(exportCmd, importCmd)
	return cmd
}

func runBackupExport(cmd *cobra.Command, args []string) error {
	inv, err := project.LoadInventory(app.inventoryPath())
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	saved, err := st.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list configurations: %w", err)
	}

	if err := project.ExportAllData(args[0], app.config, inv, saved); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Backed up %d saved configuration(s) to %s", len(saved), args[0]))
	return nil
}

func runBackupImport(cmd *cobra.Command, args []string) error {
	data, err := project.ImportAllData(args[0])
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}

	if err := data.Config.Validate(); err != nil {
		return err
	}
	if err := project.SaveAppConfig(app.configPath, data.Config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	inv, err := project.LoadInventory(app.inventoryPath())
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}
	if err := project.SaveInventory(app.inventoryPath(), project.MergeInventory(inv, data.Inventory)); err != nil {
		return fmt.Errorf("failed to save inventory: %w", err)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	for _, sc := range data.SavedConfigs {
		if _, err := st.Save(cmd.Context(), sc); err != nil {
			return fmt.Errorf("failed to restore %q: %w", sc.Name, err)
		}
	}
	printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Restored %d saved configuration(s) from %s", len(data.SavedConfigs), args[0]))
	return nil
}
