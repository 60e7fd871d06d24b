package ingest

import (
	"log/slog"
	"time"

	"github.com/splitledger-dev/splitledger/internal/mapping"
	"github.com/splitledger-dev/splitledger/internal/model"
	"github.com/splitledger-dev/splitledger/internal/normalize"
	"github.com/splitledger-dev/splitledger/internal/split"
)

// Result reports per-file ingestion counters so the lenient paths (skipped
// rows, date fallbacks) stay observable.
type Result struct {
	Rows          int
	Ingested      int
	Skipped       int
	DateFallbacks int
}

// Pipeline orchestrates row mapping, hashing, split allocation and initial
// review classification for one file at a time. It holds no storage handle;
// persistence belongs to the caller.
type Pipeline struct {
	cutoff time.Time // history boundary: outflows dated before it are auto-resolved
	log    *slog.Logger
}

// New creates a Pipeline with the given history boundary.
func New(cutoff time.Time, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{cutoff: cutoff, log: log}
}

// Rows processes every raw row of a matched file in source order and
// returns one canonical transaction per ingestible row.
//
// The per-row failure policy is skip-and-log: a row whose monetary cells
// cannot be parsed is counted and logged at warn level, and never aborts
// the file or corrupts records already produced.
func (p *Pipeline) Rows(rows []Row, m mapping.Mapping, userID string, rules split.Rules) ([]model.Transaction, Result) {
	var out []model.Transaction
	res := Result{Rows: len(rows)}

	for i, row := range rows {
		tx, fallbacks, err := MapRow(row, m, userID)
		if err != nil {
			res.Skipped++
			p.log.Warn("skipping malformed row",
				"mapping", m.Name, "row", i+1, "error", err)
			continue
		}
		if fallbacks > 0 {
			res.DateFallbacks += fallbacks
			p.log.Warn("date did not parse, keeping raw value",
				"mapping", m.Name, "row", i+1, "count", fallbacks)
		}

		tx.ContentHash = ContentHash(tx)
		tx = split.Allocate(tx, rules)
		tx.SplitDecided, tx.ReviewStatus = classify(tx, p.cutoff)

		out = append(out, tx)
		res.Ingested++
	}
	return out, res
}

// classify assigns the initial review state. Inflows never need a split
// decision, and outflows dated strictly before the history boundary predate
// the split arrangement, so both are auto-resolved. Everything else waits
// for a human.
func classify(tx model.Transaction, cutoff time.Time) (model.SplitDecision, model.ReviewStatus) {
	if tx.Amount != nil {
		if tx.Amount.IsPositive() {
			return model.SplitNo, model.ReviewReviewed
		}
		if date, err := time.Parse(normalize.ISODate, tx.TransactionDate); err == nil && date.Before(cutoff) {
			return model.SplitNo, model.ReviewReviewed
		}
	}
	return model.SplitUndecided, model.ReviewPending
}
