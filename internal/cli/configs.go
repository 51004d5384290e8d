package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/TrimCut/internal/model"
)

// ConfigsCmd returns the saved configuration commands.
func ConfigsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configs",
		Short: "Manage saved configurations",
		Long:  "Save, list, show and delete named measurement and stock configurations.",
	}

	saveCmd := &cobra.Command{
		Use:   "save [name]",
		Short: "Save the given measurements and stock under a name",
		Args:  cobra.ExactArgs(1),
		RunE:  runConfigsSave,
	}
	addInputFlags(saveCmd)
	saveCmd.Flags().StringP("description", "d", "", "description of the configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved configurations",
		Args:  cobra.NoArgs,
		RunE:  runConfigsList,
	}

	showCmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Print a saved configuration as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runConfigsShow,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a saved configuration",
		Args:  cobra.ExactArgs(1),
		RunE:  runConfigsDelete,
	}

	cmd.AddCommand(saveCmd, listCmd, showCmd, deleteCmd)
	return cmd
}

func runConfigsSave(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg, err := loadPlanInput(cmd, out)
	if err != nil {
		return err
	}
	description, _ := cmd.Flags().GetString("description")

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	saved, err := st.Save(cmd.Context(), model.NewSavedConfig(args[0], description, cfg))
	if err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	printSuccess(out, fmt.Sprintf("Saved configuration %s (%d measurements)", saved.Name, len(saved.Config.Measurements)))
	return nil
}

func runConfigsList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	configs, err := st.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list configurations: %w", err)
	}
	if len(configs) == 0 {
		fmt.Fprintln(out, "No saved configurations")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMEASUREMENTS\tSTOCK\tUPDATED\tDESCRIPTION")
	fmt.Fprintln(w, "----\t------------\t-----\t-------\t-----------")
	for _, sc := range configs {
		stock := ""
		for i, l := range sc.Config.AvailableLengths {
			if i > 0 {
				stock += ","
			}
			stock += model.FormatLength(l)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", sc.Name, len(sc.Config.Measurements), stock,
			sc.UpdatedAt.Format("2006-01-02 15:04"), sc.Description)
	}
	return w.Flush()
}

func runConfigsShow(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	sc, err := st.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(sc)
}

func runConfigsDelete(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete configuration: %w", err)
	}
	printSuccess(cmd.OutOrStdout(), "Deleted configuration "+args[0])
	return nil
}
