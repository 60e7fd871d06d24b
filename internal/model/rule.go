package model

import "time"

// SplitRule is a per-user, per-category policy: what fraction of an expense
// belongs to the partner, and whether the category is a necessity. At most
// one rule exists per (UserID, Category) pair.
type SplitRule struct {
	UserID       string
	Category     string
	Need         bool
	SplitPercent int // counterparty share, 0-100
}

// FileLedgerEntry records a processed upload so re-uploads of the same file
// bytes are skipped. The hash here covers the whole file, not a record.
type FileLedgerEntry struct {
	ID          string
	FileHash    string
	UserID      string
	MappingName string
	AddedAt     time.Time
}
