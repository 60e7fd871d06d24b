package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SplitDecision records whether a human has confirmed that a transaction is
// shared with the partner.
type SplitDecision string

const (
	// SplitUndecided means the transaction still awaits a decision.
	SplitUndecided SplitDecision = "undecided"
	// SplitNo means the transaction is not shared.
	SplitNo SplitDecision = "no"
	// SplitYes means the transaction is shared.
	SplitYes SplitDecision = "yes"
)

// ReviewStatus tracks whether a transaction still needs human review.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewReviewed ReviewStatus = "reviewed"
)

// Transaction is the canonical, storage-ready representation of one bank CSV
// row. Amounts are exact 2-decimal values; negative = outflow. Optional
// monetary fields are nil when the source row carried no value.
type Transaction struct {
	UserID          string
	Amount          *decimal.Decimal // nil when the row had neither debit nor credit
	Description     string
	TransactionDate string // YYYY-MM-DD when the source date parsed, raw otherwise
	PostDate        string
	Balance         *decimal.Decimal
	Category        string
	TransactionType string
	Memo            string
	Address         string
	MappingName     string // which bank format mapping produced this record
	ContentHash     string // storage identity, see ingest.ContentHash

	SplitPercent       int // counterparty share, 0-100
	AfterSplitAmount   *decimal.Decimal
	PartnerSplitAmount *decimal.Decimal
	Need               *bool // nil until a split rule matched

	SplitDecided SplitDecision
	ReviewStatus ReviewStatus
	IngestedAt   time.Time // set by the store on upsert
}

// IsOutflow reports whether the transaction cost money.
func (t Transaction) IsOutflow() bool {
	return t.Amount != nil && t.Amount.IsNegative()
}
