// Package ingest turns a matched bank CSV file into canonical transaction
// records: map each row, normalize money and dates, hash, allocate the
// split, and classify the initial review state.
package ingest

import (
	"fmt"

	"github.com/splitledger-dev/splitledger/internal/mapping"
	"github.com/splitledger-dev/splitledger/internal/model"
	"github.com/splitledger-dev/splitledger/internal/normalize"
)

// Row is one raw CSV row keyed by source column header. Absent cells have
// no key.
type Row map[string]string

// MapRow projects a raw row into a partially-built transaction under the
// chosen mapping. dateFallbacks counts dates that failed to parse under the
// mapping's layout and were passed through raw.
//
// Debit cells produce a negated amount, credit cells a positive one; a
// literal "0" or empty cell in either contributes nothing, so a row where
// both are zero leaves the amount unset. The payee column is a bank-specific
// alias for the description. name and reference_number are never copied.
func MapRow(row Row, m mapping.Mapping, userID string) (tx model.Transaction, dateFallbacks int, err error) {
	tx = model.Transaction{UserID: userID, MappingName: m.Name}

	for _, field := range mapping.Fields {
		col, mapped := m.Columns[field]
		if !mapped {
			continue
		}
		val, present := row[col]
		if !present {
			continue
		}

		switch field {
		case mapping.FieldDebit:
			if val == "" || val == "0" {
				continue
			}
			d, perr := normalize.Amount(val)
			if perr != nil {
				return model.Transaction{}, dateFallbacks, fmt.Errorf("debit column %q: %w", col, perr)
			}
			neg := d.Neg()
			tx.Amount = &neg

		case mapping.FieldCredit:
			if val == "" || val == "0" {
				continue
			}
			d, perr := normalize.Amount(val)
			if perr != nil {
				return model.Transaction{}, dateFallbacks, fmt.Errorf("credit column %q: %w", col, perr)
			}
			tx.Amount = &d

		case mapping.FieldAmount:
			if val == "" {
				continue
			}
			d, perr := normalize.Amount(val)
			if perr != nil {
				return model.Transaction{}, dateFallbacks, fmt.Errorf("amount column %q: %w", col, perr)
			}
			tx.Amount = &d

		case mapping.FieldBalance:
			if val == "" {
				continue
			}
			d, perr := normalize.Amount(val)
			if perr != nil {
				return model.Transaction{}, dateFallbacks, fmt.Errorf("balance column %q: %w", col, perr)
			}
			tx.Balance = &d

		case mapping.FieldTransactionDate:
			date, normalized := normalize.Date(val, m.DateFormat)
			if m.DateFormat != "" && !normalized {
				dateFallbacks++
			}
			tx.TransactionDate = date

		case mapping.FieldPostDate:
			date, normalized := normalize.Date(val, m.DateFormat)
			if m.DateFormat != "" && !normalized {
				dateFallbacks++
			}
			tx.PostDate = date

		case mapping.FieldDescription, mapping.FieldPayee:
			tx.Description = val

		case mapping.FieldCategory:
			tx.Category = val

		case mapping.FieldTransactionType:
			tx.TransactionType = val

		case mapping.FieldMemo:
			tx.Memo = val

		case mapping.FieldAddress:
			tx.Address = val

		case mapping.FieldReferenceNumber:
			// Dropped from the canonical record.
		}
	}

	return tx, dateFallbacks, nil
}
