// Package mapping describes how each known bank CSV export maps to canonical
// transaction fields, and selects the best-fitting mapping for a file.
package mapping

// Canonical field names. Mappings bind these to source column headers.
const (
	FieldTransactionDate = "transaction_date"
	FieldPostDate        = "post_date"
	FieldDescription     = "description"
	FieldCategory        = "category"
	FieldTransactionType = "transaction_type"
	FieldAmount          = "amount"
	FieldDebit           = "debit"
	FieldCredit          = "credit"
	FieldBalance         = "balance"
	FieldMemo            = "memo"
	FieldPayee           = "payee"
	FieldAddress         = "address"
	FieldReferenceNumber = "reference_number"
)

// Fields lists every canonical field in the fixed order the record mapper
// visits them. Monetary fields come after the descriptive ones so a mapping
// that binds both amount and debit/credit resolves deterministically.
var Fields = []string{
	FieldTransactionDate,
	FieldPostDate,
	FieldDescription,
	FieldPayee,
	FieldCategory,
	FieldTransactionType,
	FieldMemo,
	FieldAddress,
	FieldReferenceNumber,
	FieldAmount,
	FieldDebit,
	FieldCredit,
	FieldBalance,
}

// Mapping is a named, immutable bank format configuration: canonical field
// name -> source column header, plus an optional date layout.
type Mapping struct {
	Name       string
	Columns    map[string]string
	DateFormat string // Go reference layout; empty = dates pass through raw
}

// RequiredColumns returns every source column the mapping needs in a header
// for it to be a match candidate. Name and DateFormat are metadata, not
// columns.
func (m Mapping) RequiredColumns() []string {
	cols := make([]string, 0, len(m.Columns))
	for _, field := range Fields {
		if col, ok := m.Columns[field]; ok {
			cols = append(cols, col)
		}
	}
	return cols
}
