// Package commands wires the CLI: ingestion, split rules and transaction
// review over the injected store and file directories.
package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/splitledger-dev/splitledger/internal/buildinfo"
	"github.com/splitledger-dev/splitledger/internal/config"
	"github.com/splitledger-dev/splitledger/internal/logging"
	"github.com/splitledger-dev/splitledger/internal/store"
	"github.com/splitledger-dev/splitledger/internal/store/sqlite"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "splitledger",
		Short:   "Bank CSV ingestion and couple cost-splitting",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.FileName, "path to splitledger.yaml")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newIngestCommand(&configPath))
	rootCmd.AddCommand(newRulesCommand(&configPath))
	rootCmd.AddCommand(newTransactionsCommand(&configPath))

	return rootCmd
}

// loadConfig reads the config file and installs the configured log level.
// A missing file falls back to defaults so read-only commands work without
// an init.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg = config.Default("")
	} else if err != nil {
		return nil, err
	}
	logging.Setup(cfg.Logging.Level)
	return cfg, nil
}

// openStore opens the configured SQLite store.
func openStore(cfg *config.Config) (store.Store, error) {
	st, err := sqlite.Open(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	return st, nil
}
