package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/splitledger-dev/splitledger/internal/config"
	"github.com/splitledger-dev/splitledger/internal/filestore"
)

func newInitCommand() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new splitledger project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, user)
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "default user for files without a user prefix (required)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func runInit(dir, user string) error {
	cfg := config.Default(user)
	cfg.Store.Path = filepath.Join(dir, cfg.Store.Path)
	cfg.Files.Root = filepath.Join(dir, cfg.Files.Root)

	if err := filestore.Init(cfg.Files.Root); err != nil {
		return err
	}

	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Initialized splitledger project at %s\n", dir)
	return nil
}
