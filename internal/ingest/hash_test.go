package ingest

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitledger-dev/splitledger/internal/model"
)

func sampleTx() model.Transaction {
	amount := decimal.RequireFromString("-54.30")
	return model.Transaction{
		UserID:          "alice",
		Amount:          &amount,
		Description:     "WHOLEFDS MKT",
		TransactionDate: "2024-08-15",
		PostDate:        "2024-08-16",
		Category:        "Groceries",
		TransactionType: "Sale",
		MappingName:     "chase_credit",
	}
}

func TestContentHash_Deterministic(t *testing.T) {
	a := ContentHash(sampleTx())
	b := ContentHash(sampleTx())
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestContentHash_SensitiveToEveryField(t *testing.T) {
	base := ContentHash(sampleTx())

	edits := map[string]func(*model.Transaction){
		"user":        func(tx *model.Transaction) { tx.UserID = "bob" },
		"amount":      func(tx *model.Transaction) { d := decimal.RequireFromString("-54.31"); tx.Amount = &d },
		"description": func(tx *model.Transaction) { tx.Description = "TRADER JOES" },
		"date":        func(tx *model.Transaction) { tx.TransactionDate = "2024-08-14" },
		"post date":   func(tx *model.Transaction) { tx.PostDate = "" },
		"category":    func(tx *model.Transaction) { tx.Category = "Dining" },
		"type":        func(tx *model.Transaction) { tx.TransactionType = "Return" },
		"mapping":     func(tx *model.Transaction) { tx.MappingName = "amex_credit" },
		"balance":     func(tx *model.Transaction) { d := decimal.RequireFromString("10.00"); tx.Balance = &d },
	}
	for name, edit := range edits {
		t.Run(name, func(t *testing.T) {
			tx := sampleTx()
			edit(&tx)
			assert.NotEqual(t, base, ContentHash(tx))
		})
	}
}

func TestContentHash_IgnoresAllocationAndReviewFields(t *testing.T) {
	tx := sampleTx()
	base := ContentHash(tx)

	need := true
	after := decimal.RequireFromString("-27.15")
	tx.Need = &need
	tx.SplitPercent = 50
	tx.AfterSplitAmount = &after
	tx.PartnerSplitAmount = &after
	tx.SplitDecided = model.SplitYes
	tx.ReviewStatus = model.ReviewReviewed
	tx.ContentHash = "something"

	assert.Equal(t, base, ContentHash(tx))
}

func TestContentHash_NilAmountHashesAsEmpty(t *testing.T) {
	tx := sampleTx()
	tx.Amount = nil
	require.NotEqual(t, ContentHash(sampleTx()), ContentHash(tx))
}

func TestFileHash_DistinctFromContentHash(t *testing.T) {
	data := []byte("Date,Description,Amount\n08/15/2024,X,-1.00\n")
	assert.Equal(t, FileHash(data), FileHash(data))
	assert.NotEqual(t, FileHash(data), FileHash(append(data, '\n')))
}
