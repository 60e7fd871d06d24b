// Package split computes the cost-sharing allocation between the owning
// user and their partner from per-category split rules.
package split

import (
	"github.com/shopspring/decimal"

	"github.com/splitledger-dev/splitledger/internal/model"
)

// Rules indexes one user's split rules by category for lookup during
// allocation. The set is read-only for the duration of a file's ingestion.
type Rules struct {
	userID     string
	byCategory map[string]model.SplitRule
}

// NewRules builds a lookup over the rules belonging to userID. Rules for
// other users are ignored.
func NewRules(userID string, rules []model.SplitRule) Rules {
	byCategory := make(map[string]model.SplitRule, len(rules))
	for _, r := range rules {
		if r.UserID == userID {
			byCategory[r.Category] = r
		}
	}
	return Rules{userID: userID, byCategory: byCategory}
}

// Lookup returns the rule for a category, if one exists.
func (r Rules) Lookup(category string) (model.SplitRule, bool) {
	rule, ok := r.byCategory[category]
	return rule, ok
}

var hundred = decimal.NewFromInt(100)

// Allocate enriches a transaction with its split allocation and returns it.
//
// Uncategorized transactions get percent 0 and no allocation detail. A
// category with no rule leaves every allocation field unset. When a rule
// matches, need is copied from it; the arithmetic itself runs only for
// outflows (amount < 0) -- refunds and payments are never split. The two
// shares are each rounded to 2 places independently, so they may differ
// from the original amount by up to a cent.
func Allocate(tx model.Transaction, rules Rules) model.Transaction {
	// Recomputing after a category change must not leave stale fields behind.
	tx.SplitPercent = 0
	tx.AfterSplitAmount = nil
	tx.PartnerSplitAmount = nil
	tx.Need = nil

	if tx.Category == "" {
		return tx
	}

	rule, ok := rules.Lookup(tx.Category)
	if !ok {
		return tx
	}

	need := rule.Need
	tx.Need = &need

	if !tx.IsOutflow() {
		return tx
	}
	tx.SplitPercent = rule.SplitPercent

	var after, partner decimal.Decimal
	switch rule.SplitPercent {
	case 0:
		after, partner = *tx.Amount, decimal.Zero
	case 100:
		after, partner = decimal.Zero, *tx.Amount
	default:
		pct := decimal.NewFromInt(int64(rule.SplitPercent))
		after = tx.Amount.Mul(pct).Div(hundred).Round(2)
		partner = tx.Amount.Mul(hundred.Sub(pct)).Div(hundred).Round(2)
	}
	tx.AfterSplitAmount = &after
	tx.PartnerSplitAmount = &partner
	return tx
}
