package mapping

// usDate is the layout every builtin bank export uses.
const usDate = "01/02/2006"

// Builtin returns the known bank format mappings in declaration order.
// Declaration order matters: the matcher breaks specificity ties by taking
// the first-declared candidate.
func Builtin() []Mapping {
	return []Mapping{
		{
			Name: "chase_credit",
			Columns: map[string]string{
				FieldTransactionDate: "Transaction Date",
				FieldPostDate:        "Post Date",
				FieldDescription:     "Description",
				FieldCategory:        "Category",
				FieldTransactionType: "Type",
				FieldAmount:          "Amount",
				FieldMemo:            "Memo",
			},
			DateFormat: usDate,
		},
		{
			Name: "amex_credit",
			Columns: map[string]string{
				FieldTransactionDate: "Date",
				FieldDescription:     "Description",
				FieldAmount:          "Amount",
			},
			DateFormat: usDate,
		},
		{
			Name: "discover_credit",
			Columns: map[string]string{
				FieldTransactionDate: "Trans. Date",
				FieldPostDate:        "Post Date",
				FieldDescription:     "Description",
				FieldAmount:          "Amount",
				FieldCategory:        "Category",
			},
			DateFormat: usDate,
		},
		{
			Name: "discover_checking",
			Columns: map[string]string{
				FieldTransactionDate: "Transaction Date",
				FieldDescription:     "Transaction Description",
				FieldTransactionType: "Transaction Type",
				FieldDebit:           "Debit",
				FieldCredit:          "Credit",
				FieldBalance:         "Balance",
			},
			DateFormat: usDate,
		},
		{
			Name: "bofa_checking",
			Columns: map[string]string{
				FieldTransactionDate: "Date",
				FieldDescription:     "Description",
				FieldAmount:          "Amount",
				FieldBalance:         "Running Bal.",
			},
			DateFormat: usDate,
		},
		{
			Name: "bofa_credit",
			Columns: map[string]string{
				FieldTransactionDate: "Posted Date",
				FieldReferenceNumber: "Reference Number",
				FieldPayee:           "Payee",
				FieldAddress:         "Address",
				FieldAmount:          "Amount",
			},
			DateFormat: usDate,
		},
	}
}
