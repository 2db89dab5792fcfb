package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/debghosh/mysticresin/internal/config"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write a backup snapshot of all site data",
	Long: `Export writes the full site snapshot (configuration, products, blog
posts) as JSON. With no argument the document goes to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore a backup snapshot",
	Long: `Import reads a snapshot produced by export and replaces whichever of
the config, products and blogPosts collections it contains. A document
that fails to parse changes nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var (
	resetYes             bool
	resetConfirmDataLoss bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all site data to the built-in defaults",
	Long: `Reset deletes every product, blog post and configuration change and
restores the built-in sample data. Irreversible; both --yes and
--confirm-data-loss must be given.`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "confirm the reset")
	resetCmd.Flags().BoolVar(&resetConfirmDataLoss, "confirm-data-loss", false, "acknowledge that all current data is destroyed")

	rootCmd.AddCommand(exportCmd, importCmd, resetCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	logger := zap.NewNop()
	cfg := config.Load()

	kvStore, _, backupSvc, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer kvStore.Close()

	data, err := backupSvc.Export()
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if len(args) == 0 {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(args[0], data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported snapshot to %s\n", args[0])
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	logger := zap.NewNop()
	cfg := config.Load()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	kvStore, _, backupSvc, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer kvStore.Close()

	if err := backupSvc.Import(data); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "snapshot imported")
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetYes || !resetConfirmDataLoss {
		return fmt.Errorf("reset is destructive: pass both --yes and --confirm-data-loss")
	}

	logger := zap.NewNop()
	cfg := config.Load()

	kvStore, st, _, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer kvStore.Close()

	if err := st.ResetToDefaults(); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "site data reset to defaults")
	return nil
}
