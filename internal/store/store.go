// Package store defines the persistence port for transactions, split rules
// and the file-hash ledger. The engine never constructs a storage handle
// itself; implementations are injected at the command layer.
package store

import (
	"context"
	"errors"

	"github.com/splitledger-dev/splitledger/internal/model"
)

// ErrNotFound reports a lookup that matched nothing.
var ErrNotFound = errors.New("not found")

// TransactionQuery filters ListTransactions. Zero values mean "no filter".
type TransactionQuery struct {
	UserID        string
	Status        model.ReviewStatus
	OutflowsOnly  bool
	StartDate     string // YYYY-MM-DD, inclusive, against transaction_date
	EndDate       string
	IngestedStart string // YYYY-MM-DD, inclusive, against ingestion time
	IngestedEnd   string
}

// Store is the persistence port.
type Store interface {
	// UpsertTransactions writes records keyed by content hash. Re-ingesting
	// the same logical transaction overwrites rather than duplicates.
	UpsertTransactions(ctx context.Context, txs []model.Transaction) error
	GetTransaction(ctx context.Context, contentHash string) (model.Transaction, error)
	UpdateTransaction(ctx context.Context, tx model.Transaction) error
	ListTransactions(ctx context.Context, q TransactionQuery) ([]model.Transaction, error)

	// ListCategories returns the distinct categories seen across a user's
	// transactions and split rules.
	ListCategories(ctx context.Context, userID string) ([]string, error)

	ListRules(ctx context.Context, userID string) ([]model.SplitRule, error)
	PutRule(ctx context.Context, rule model.SplitRule) error
	DeleteRule(ctx context.Context, userID, category string) error

	// SeenFile reports whether a whole-file hash is already in the ledger.
	SeenFile(ctx context.Context, fileHash string) (bool, error)
	RecordFile(ctx context.Context, entry model.FileLedgerEntry) error

	Close() error
}
