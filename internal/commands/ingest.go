package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/splitledger-dev/splitledger/internal/config"
	"github.com/splitledger-dev/splitledger/internal/filestore"
	"github.com/splitledger-dev/splitledger/internal/ingest"
	"github.com/splitledger-dev/splitledger/internal/mapping"
	"github.com/splitledger-dev/splitledger/internal/model"
	"github.com/splitledger-dev/splitledger/internal/split"
	"github.com/splitledger-dev/splitledger/internal/store"
)

func newIngestCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "ingest [file...]",
		Short: "Ingest bank CSVs from the inbox (or the given files)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			return runIngest(cmd.Context(), cfg, st, args)
		},
	}
}

func runIngest(ctx context.Context, cfg *config.Config, st store.Store, paths []string) error {
	cutoff, err := cfg.HistoryBoundary()
	if err != nil {
		return err
	}

	files, fromInbox, err := ingestTargets(cfg.Files.Root, paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("Nothing to ingest.")
		return nil
	}

	matcher := mapping.Default()
	pipeline := ingest.New(cutoff, slog.Default())

	for _, file := range files {
		if err := ingestFile(ctx, cfg, st, matcher, pipeline, file, fromInbox); err != nil {
			return fmt.Errorf("%s: %w", file.Name, err)
		}
	}
	return nil
}

// ingestTargets resolves what to process: explicit file arguments, or the
// whole inbox when none are given. Only inbox files are archived afterwards.
func ingestTargets(root string, paths []string) ([]filestore.FileInfo, bool, error) {
	if len(paths) == 0 {
		files, err := filestore.Scan(root)
		return files, true, err
	}

	var files []filestore.FileInfo
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, false, fmt.Errorf("stat %s: %w", p, err)
		}
		files = append(files, filestore.FileInfo{
			Name: filepath.Base(p),
			Path: p,
			Size: info.Size(),
		})
	}
	return files, false, nil
}

func ingestFile(ctx context.Context, cfg *config.Config, st store.Store, matcher *mapping.Matcher, pipeline *ingest.Pipeline, file filestore.FileInfo, fromInbox bool) error {
	log := slog.Default().With("file", file.Name)

	data, err := os.ReadFile(file.Path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	fileHash := ingest.FileHash(data)
	seen, err := st.SeenFile(ctx, fileHash)
	if err != nil {
		return err
	}
	if seen {
		log.Info("file already processed, skipping", "file_hash", fileHash)
		if fromInbox {
			return filestore.Remove(cfg.Files.Root, file.Name)
		}
		return nil
	}

	header, rows, err := ingest.Decode(data)
	if err != nil {
		return err
	}

	m, ok := matcher.Match(header)
	if !ok {
		// Not fatal: the file stays put for manual handling.
		log.Warn("no mapping matches header, leaving file unprocessed", "header", header)
		return nil
	}

	userID, ok := filestore.UserFromFileName(file.Name)
	if !ok {
		userID = cfg.Ingest.DefaultUser
	}
	if userID == "" {
		return fmt.Errorf("cannot determine user for %s and no default_user configured", file.Name)
	}

	ruleRows, err := st.ListRules(ctx, userID)
	if err != nil {
		return err
	}
	rules := split.NewRules(userID, ruleRows)

	txs, res := pipeline.Rows(rows, m, userID, rules)
	if err := st.UpsertTransactions(ctx, txs); err != nil {
		return err
	}

	if err := st.RecordFile(ctx, model.FileLedgerEntry{
		FileHash:    fileHash,
		UserID:      userID,
		MappingName: m.Name,
	}); err != nil {
		return err
	}

	if fromInbox {
		archived, err := filestore.Archive(cfg.Files.Root, file.Name, m.Name, fileHash, time.Now())
		if err != nil {
			return err
		}
		log.Info("archived", "as", archived)
	}

	log.Info("ingested",
		"mapping", m.Name, "user", userID,
		"rows", res.Rows, "ingested", res.Ingested,
		"skipped", res.Skipped, "date_fallbacks", res.DateFallbacks)
	fmt.Printf("%s: %d of %d rows ingested (%s)\n", file.Name, res.Ingested, res.Rows, m.Name)
	return nil
}
