package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/splitledger-dev/splitledger/internal/model"
)

// hashFields is the canonical field-name universe in lexicographic order.
// The digest covers the record as it stands before split allocation and
// status assignment; allocation and review fields never participate.
var hashFields = []string{
	"address",
	"amount",
	"balance",
	"category",
	"description",
	"mapping_name",
	"memo",
	"post_date",
	"transaction_date",
	"transaction_type",
	"user_id",
}

// ContentHash derives the record's storage identity: a SHA-256 digest over
// the concatenated field values in lexicographic field-name order. Missing
// fields contribute the empty string, so identical logical records always
// hash identically and re-ingesting one overwrites rather than duplicates.
func ContentHash(tx model.Transaction) string {
	var b strings.Builder
	for _, field := range hashFields {
		b.WriteString(hashValue(tx, field))
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func hashValue(tx model.Transaction, field string) string {
	switch field {
	case "address":
		return tx.Address
	case "amount":
		if tx.Amount == nil {
			return ""
		}
		return tx.Amount.StringFixed(2)
	case "balance":
		if tx.Balance == nil {
			return ""
		}
		return tx.Balance.StringFixed(2)
	case "category":
		return tx.Category
	case "description":
		return tx.Description
	case "mapping_name":
		return tx.MappingName
	case "memo":
		return tx.Memo
	case "post_date":
		return tx.PostDate
	case "transaction_date":
		return tx.TransactionDate
	case "transaction_type":
		return tx.TransactionType
	case "user_id":
		return tx.UserID
	}
	return ""
}

// FileHash digests raw file bytes for upload deduplication. This is the
// whole-file hash recorded in the ledger, distinct from ContentHash.
func FileHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
