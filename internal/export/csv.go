// Package export writes canonical transaction records as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/splitledger-dev/splitledger/internal/model"
)

// Header is the CSV header for exported transactions.
const Header = "content_hash,user_id,transaction_date,post_date,description,category,amount,balance,split_percent,after_split_amount,partner_split_amount,need,split_decided,review_status,mapping_name"

const (
	numFields   = 15
	colHash     = 0
	colUserID   = 1
	colTxDate   = 2
	colPostDate = 3
	colDesc     = 4
	colCategory = 5
	colAmount   = 6
	colBalance  = 7
	colPercent  = 8
	colAfter    = 9
	colPartner  = 10
	colNeed     = 11
	colDecided  = 12
	colStatus   = 13
	colMapping  = 14
)

// WriteTransactions writes records to w (including header).
func WriteTransactions(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, tx := range txs {
		if err := cw.Write(marshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func marshalTransaction(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colHash] = tx.ContentHash
	row[colUserID] = tx.UserID
	row[colTxDate] = tx.TransactionDate
	row[colPostDate] = tx.PostDate
	row[colDesc] = tx.Description
	row[colCategory] = tx.Category
	row[colAmount] = decimalString(tx.Amount)
	row[colBalance] = decimalString(tx.Balance)
	row[colPercent] = strconv.Itoa(tx.SplitPercent)
	row[colAfter] = decimalString(tx.AfterSplitAmount)
	row[colPartner] = decimalString(tx.PartnerSplitAmount)
	if tx.Need != nil {
		row[colNeed] = strconv.FormatBool(*tx.Need)
	}
	row[colDecided] = string(tx.SplitDecided)
	row[colStatus] = string(tx.ReviewStatus)
	row[colMapping] = tx.MappingName
	return row
}

func decimalString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}
