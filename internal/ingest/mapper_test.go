package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitledger-dev/splitledger/internal/mapping"
	"github.com/splitledger-dev/splitledger/internal/normalize"
)

func mustLookup(t *testing.T, name string) mapping.Mapping {
	t.Helper()
	m, ok := mapping.Default().Lookup(name)
	require.True(t, ok)
	return m
}

func TestMapRow_ChaseCredit(t *testing.T) {
	row := Row{
		"Transaction Date": "08/15/2024",
		"Post Date":        "08/16/2024",
		"Description":      "WHOLEFDS MKT",
		"Category":         "Groceries",
		"Type":             "Sale",
		"Amount":           "-54.30",
		"Memo":             "",
	}

	tx, fallbacks, err := MapRow(row, mustLookup(t, "chase_credit"), "alice")
	require.NoError(t, err)
	assert.Zero(t, fallbacks)

	assert.Equal(t, "alice", tx.UserID)
	assert.Equal(t, "chase_credit", tx.MappingName)
	assert.Equal(t, "2024-08-15", tx.TransactionDate)
	assert.Equal(t, "2024-08-16", tx.PostDate)
	assert.Equal(t, "WHOLEFDS MKT", tx.Description)
	assert.Equal(t, "Groceries", tx.Category)
	assert.Equal(t, "Sale", tx.TransactionType)
	require.NotNil(t, tx.Amount)
	assert.Equal(t, "-54.30", tx.Amount.StringFixed(2))
	assert.Nil(t, tx.Balance)
}

func TestMapRow_DebitNegates(t *testing.T) {
	row := Row{
		"Transaction Date":        "09/02/2024",
		"Transaction Description": "COFFEE SHOP",
		"Transaction Type":        "Debit",
		"Debit":                   "$4.50",
		"Credit":                  "0",
		"Balance":                 "$1,200.00",
	}

	tx, _, err := MapRow(row, mustLookup(t, "discover_checking"), "alice")
	require.NoError(t, err)
	require.NotNil(t, tx.Amount)
	assert.Equal(t, "-4.50", tx.Amount.StringFixed(2))
	require.NotNil(t, tx.Balance)
	assert.Equal(t, "1200.00", tx.Balance.StringFixed(2))
}

func TestMapRow_CreditStaysPositive(t *testing.T) {
	row := Row{
		"Transaction Date":        "09/02/2024",
		"Transaction Description": "PAYROLL",
		"Transaction Type":        "Credit",
		"Debit":                   "0",
		"Credit":                  "2,500.00",
		"Balance":                 "3700.00",
	}

	tx, _, err := MapRow(row, mustLookup(t, "discover_checking"), "alice")
	require.NoError(t, err)
	require.NotNil(t, tx.Amount)
	assert.Equal(t, "2500.00", tx.Amount.StringFixed(2))
}

func TestMapRow_BothZeroLeavesAmountUnset(t *testing.T) {
	// A zero-amount adjustment row is representable: amount simply stays nil.
	row := Row{
		"Transaction Date":        "09/02/2024",
		"Transaction Description": "ADJUSTMENT",
		"Transaction Type":        "Adjustment",
		"Debit":                   "0",
		"Credit":                  "0",
		"Balance":                 "3700.00",
	}

	tx, _, err := MapRow(row, mustLookup(t, "discover_checking"), "alice")
	require.NoError(t, err)
	assert.Nil(t, tx.Amount)
}

func TestMapRow_PayeeBecomesDescription(t *testing.T) {
	row := Row{
		"Posted Date":      "08/01/2024",
		"Reference Number": "24492154",
		"Payee":            "TRADER JOES",
		"Address":          "SEATTLE WA",
		"Amount":           "-32.10",
	}

	tx, _, err := MapRow(row, mustLookup(t, "bofa_credit"), "alice")
	require.NoError(t, err)
	assert.Equal(t, "TRADER JOES", tx.Description)
	assert.Equal(t, "SEATTLE WA", tx.Address)
	assert.Equal(t, "2024-08-01", tx.TransactionDate)
}

func TestMapRow_DateFallbackCounted(t *testing.T) {
	row := Row{
		"Date":        "not a date",
		"Description": "MYSTERY",
		"Amount":      "-1.00",
	}

	tx, fallbacks, err := MapRow(row, mustLookup(t, "amex_credit"), "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, fallbacks)
	// Lenient pass-through: the raw value survives.
	assert.Equal(t, "not a date", tx.TransactionDate)
}

func TestMapRow_MalformedAmount(t *testing.T) {
	row := Row{
		"Date":        "08/15/2024",
		"Description": "BROKEN",
		"Amount":      "twelve dollars",
	}

	_, _, err := MapRow(row, mustLookup(t, "amex_credit"), "alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, normalize.ErrMalformedAmount)
}

func TestMapRow_MissingCellsSkipped(t *testing.T) {
	tx, fallbacks, err := MapRow(Row{"Description": "ONLY DESC"}, mustLookup(t, "amex_credit"), "alice")
	require.NoError(t, err)
	assert.Zero(t, fallbacks)
	assert.Equal(t, "ONLY DESC", tx.Description)
	assert.Nil(t, tx.Amount)
	assert.Empty(t, tx.TransactionDate)
}

func TestMapRow_RenormalizationIdempotent(t *testing.T) {
	row := Row{
		"Date":        "08/15/2024",
		"Description": "ROUNDING",
		"Amount":      "-10.5",
	}

	tx, _, err := MapRow(row, mustLookup(t, "amex_credit"), "alice")
	require.NoError(t, err)

	again, err := normalize.Amount(tx.Amount.StringFixed(2))
	require.NoError(t, err)
	assert.True(t, tx.Amount.Equal(again))
}
