package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/debghosh/mysticresin/internal/backup"
	"github.com/debghosh/mysticresin/internal/config"
	"github.com/debghosh/mysticresin/internal/kv"
	"github.com/debghosh/mysticresin/internal/store"

	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "mysticresin",
	Short: "Storefront and admin console for a handcrafted resin shop",
	Long: `mysticresin serves the public catalog and the session-gated admin API
for a single-tenant handcrafted-goods storefront. All state lives in one
embedded key-value database; the export/import commands work against the
same database the server uses.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStore wires the shared store stack for a command run.
func openStore(cfg config.Config, logger *zap.Logger) (*kv.Store, *store.Store, *backup.Service, error) {
	kvStore, err := kv.Open(cfg.DataDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open database: %w", err)
	}
	st := store.Open(kvStore, logger)
	return kvStore, st, backup.NewService(st), nil
}
