package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/splitledger-dev/splitledger/internal/model"
	"github.com/splitledger-dev/splitledger/internal/store"
)

const txColumns = `content_hash, user_id, amount, description, transaction_date,
	post_date, balance, category, transaction_type, memo, address, mapping_name,
	split_percent, after_split_amount, partner_split_amount, need,
	split_decided, review_status, ingested_at`

const upsertTx = `
INSERT INTO transactions (` + txColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(content_hash) DO UPDATE SET
	user_id = excluded.user_id,
	amount = excluded.amount,
	description = excluded.description,
	transaction_date = excluded.transaction_date,
	post_date = excluded.post_date,
	balance = excluded.balance,
	category = excluded.category,
	transaction_type = excluded.transaction_type,
	memo = excluded.memo,
	address = excluded.address,
	mapping_name = excluded.mapping_name,
	split_percent = excluded.split_percent,
	after_split_amount = excluded.after_split_amount,
	partner_split_amount = excluded.partner_split_amount,
	need = excluded.need,
	split_decided = excluded.split_decided,
	review_status = excluded.review_status,
	ingested_at = excluded.ingested_at`

// UpsertTransactions writes records keyed by content hash inside one
// transaction. Ingestion time is stamped here.
func (s *Store) UpsertTransactions(ctx context.Context, txs []model.Transaction) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	now := time.Now().UTC()
	for _, tx := range txs {
		if tx.IngestedAt.IsZero() {
			tx.IngestedAt = now
		}
		if _, err := dbTx.ExecContext(ctx, upsertTx, upsertArgs(tx)...); err != nil {
			return fmt.Errorf("upserting transaction %s: %w", tx.ContentHash, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing upsert: %w", err)
	}
	return nil
}

const updateTx = `
UPDATE transactions SET
	user_id = ?, amount = ?, description = ?, transaction_date = ?,
	post_date = ?, balance = ?, category = ?, transaction_type = ?,
	memo = ?, address = ?, mapping_name = ?, split_percent = ?,
	after_split_amount = ?, partner_split_amount = ?, need = ?,
	split_decided = ?, review_status = ?, ingested_at = ?
WHERE content_hash = ?`

// UpdateTransaction rewrites the existing record for tx.ContentHash.
func (s *Store) UpdateTransaction(ctx context.Context, tx model.Transaction) error {
	args := append(upsertArgs(tx)[1:], tx.ContentHash)
	res, err := s.db.ExecContext(ctx, updateTx, args...)
	if err != nil {
		return fmt.Errorf("updating transaction %s: %w", tx.ContentHash, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("transaction %s: %w", tx.ContentHash, store.ErrNotFound)
	}
	return nil
}

// GetTransaction fetches a record by content hash.
func (s *Store) GetTransaction(ctx context.Context, contentHash string) (model.Transaction, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+txColumns+" FROM transactions WHERE content_hash = ?", contentHash)
	tx, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Transaction{}, fmt.Errorf("transaction %s: %w", contentHash, store.ErrNotFound)
	}
	if err != nil {
		return model.Transaction{}, fmt.Errorf("getting transaction: %w", err)
	}
	return tx, nil
}

// ListTransactions returns records matching the query, oldest first.
func (s *Store) ListTransactions(ctx context.Context, q store.TransactionQuery) ([]model.Transaction, error) {
	query := "SELECT " + txColumns + " FROM transactions WHERE 1=1"
	var args []any

	if q.UserID != "" {
		query += " AND user_id = ?"
		args = append(args, q.UserID)
	}
	if q.Status != "" {
		query += " AND review_status = ?"
		args = append(args, string(q.Status))
	}
	if q.OutflowsOnly {
		query += " AND amount IS NOT NULL AND CAST(amount AS REAL) <= 0"
	}
	if q.StartDate != "" {
		query += " AND transaction_date >= ?"
		args = append(args, q.StartDate)
	}
	if q.EndDate != "" {
		query += " AND transaction_date <= ?"
		args = append(args, q.EndDate)
	}
	if q.IngestedStart != "" {
		query += " AND ingested_at >= ?"
		args = append(args, q.IngestedStart)
	}
	if q.IngestedEnd != "" {
		// Inclusive day bound against RFC 3339 timestamps.
		query += " AND ingested_at <= ?"
		args = append(args, q.IngestedEnd+"T23:59:59Z")
	}
	query += " ORDER BY transaction_date, content_hash"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []model.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}
	return txs, nil
}

// ListCategories returns the distinct categories across a user's
// transactions and split rules, sorted.
func (s *Store) ListCategories(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category FROM transactions WHERE user_id = ? AND category != ''
		UNION
		SELECT category FROM split_rules WHERE user_id = ?
		ORDER BY category`, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}
	return categories, nil
}

func upsertArgs(tx model.Transaction) []any {
	return []any{
		tx.ContentHash,
		tx.UserID,
		decimalArg(tx.Amount),
		tx.Description,
		tx.TransactionDate,
		tx.PostDate,
		decimalArg(tx.Balance),
		tx.Category,
		tx.TransactionType,
		tx.Memo,
		tx.Address,
		tx.MappingName,
		tx.SplitPercent,
		decimalArg(tx.AfterSplitAmount),
		decimalArg(tx.PartnerSplitAmount),
		boolArg(tx.Need),
		string(tx.SplitDecided),
		string(tx.ReviewStatus),
		tx.IngestedAt.UTC().Format(time.RFC3339),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(r rowScanner) (model.Transaction, error) {
	var (
		tx                    model.Transaction
		amount, balance       sql.NullString
		after, partner        sql.NullString
		need                  sql.NullBool
		decided, status, when string
	)
	err := r.Scan(
		&tx.ContentHash, &tx.UserID, &amount, &tx.Description,
		&tx.TransactionDate, &tx.PostDate, &balance, &tx.Category,
		&tx.TransactionType, &tx.Memo, &tx.Address, &tx.MappingName,
		&tx.SplitPercent, &after, &partner, &need, &decided, &status, &when,
	)
	if err != nil {
		return model.Transaction{}, err
	}

	if tx.Amount, err = decimalField(amount); err != nil {
		return model.Transaction{}, fmt.Errorf("amount: %w", err)
	}
	if tx.Balance, err = decimalField(balance); err != nil {
		return model.Transaction{}, fmt.Errorf("balance: %w", err)
	}
	if tx.AfterSplitAmount, err = decimalField(after); err != nil {
		return model.Transaction{}, fmt.Errorf("after_split_amount: %w", err)
	}
	if tx.PartnerSplitAmount, err = decimalField(partner); err != nil {
		return model.Transaction{}, fmt.Errorf("partner_split_amount: %w", err)
	}
	if need.Valid {
		tx.Need = &need.Bool
	}
	tx.SplitDecided = model.SplitDecision(decided)
	tx.ReviewStatus = model.ReviewStatus(status)
	if tx.IngestedAt, err = time.Parse(time.RFC3339, when); err != nil {
		return model.Transaction{}, fmt.Errorf("ingested_at: %w", err)
	}
	return tx, nil
}

func decimalArg(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.StringFixed(2)
}

func boolArg(b *bool) any {
	if b == nil {
		return nil
	}
	return *b
}

func decimalField(s sql.NullString) (*decimal.Decimal, error) {
	if !s.Valid {
		return nil, nil
	}
	d, err := decimal.NewFromString(s.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
