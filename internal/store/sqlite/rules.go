package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/splitledger-dev/splitledger/internal/model"
	"github.com/splitledger-dev/splitledger/internal/store"
)

// ListRules returns a user's split rules ordered by category.
func (s *Store) ListRules(ctx context.Context, userID string) ([]model.SplitRule, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id, category, need, split_percent FROM split_rules WHERE user_id = ? ORDER BY category",
		userID)
	if err != nil {
		return nil, fmt.Errorf("listing split rules: %w", err)
	}
	defer rows.Close()

	var rules []model.SplitRule
	for rows.Next() {
		var r model.SplitRule
		if err := rows.Scan(&r.UserID, &r.Category, &r.Need, &r.SplitPercent); err != nil {
			return nil, fmt.Errorf("scanning split rule: %w", err)
		}
		rules = append(rules, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating split rules: %w", err)
	}
	return rules, nil
}

// PutRule inserts or replaces the rule for (user, category).
func (s *Store) PutRule(ctx context.Context, rule model.SplitRule) error {
	if rule.SplitPercent < 0 || rule.SplitPercent > 100 {
		return fmt.Errorf("split percent %d out of range 0-100", rule.SplitPercent)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO split_rules (user_id, category, need, split_percent)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, category) DO UPDATE SET
			need = excluded.need,
			split_percent = excluded.split_percent`,
		rule.UserID, rule.Category, rule.Need, rule.SplitPercent)
	if err != nil {
		return fmt.Errorf("putting split rule: %w", err)
	}
	return nil
}

// DeleteRule removes the rule for (user, category).
func (s *Store) DeleteRule(ctx context.Context, userID, category string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM split_rules WHERE user_id = ? AND category = ?", userID, category)
	if err != nil {
		return fmt.Errorf("deleting split rule: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("split rule %s/%s: %w", userID, category, store.ErrNotFound)
	}
	return nil
}

// SeenFile reports whether a whole-file hash is already in the ledger.
func (s *Store) SeenFile(ctx context.Context, fileHash string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM file_ledger WHERE file_hash = ?", fileHash).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking file ledger: %w", err)
	}
	return n > 0, nil
}

// RecordFile adds a processed file's hash to the ledger.
func (s *Store) RecordFile(ctx context.Context, entry model.FileLedgerEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.AddedAt.IsZero() {
		entry.AddedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO file_ledger (id, file_hash, user_id, mapping_name, added_at)
		VALUES (?, ?, ?, ?, ?)`,
		entry.ID, entry.FileHash, entry.UserID, entry.MappingName,
		entry.AddedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording file hash: %w", err)
	}
	return nil
}
