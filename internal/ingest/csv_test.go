package ingest

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_ChaseCredit(t *testing.T) {
	data, err := os.ReadFile("testdata/chase_credit.csv")
	require.NoError(t, err)

	header, rows, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"Transaction Date", "Post Date", "Description", "Category", "Type", "Amount", "Memo"}, header)
	require.Len(t, rows, 4)
	assert.Equal(t, "WHOLEFDS MKT 123", rows[0]["Description"])
	assert.Equal(t, "-54.30", rows[0]["Amount"])
	assert.Equal(t, "", rows[2]["Category"])
}

func TestDecode_PreambleRewrite(t *testing.T) {
	data, err := os.ReadFile("testdata/bofa_checking.csv")
	require.NoError(t, err)

	header, rows, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Description", "Amount", "Running Bal."}, header)
	require.Len(t, rows, 3)
	assert.Equal(t, "UBER EATS", rows[0]["Description"])
	assert.Equal(t, "4,975.00", rows[0]["Running Bal."])
	assert.Equal(t, "PAYROLL DEPOSIT", rows[2]["Description"])
}

func TestDecode_ShortRowOmitsTrailingColumns(t *testing.T) {
	data := []byte("Date,Description,Amount\n08/15/2024,SHORT\n")
	header, rows, err := Decode(data)
	require.NoError(t, err)
	assert.Len(t, header, 3)
	require.Len(t, rows, 1)
	_, present := rows[0]["Amount"]
	assert.False(t, present)
}

func TestDecode_Empty(t *testing.T) {
	header, rows, err := Decode(nil)
	require.NoError(t, err)
	assert.Nil(t, header)
	assert.Nil(t, rows)
}

func TestDecode_HeaderOnly(t *testing.T) {
	header, rows, err := Decode([]byte("Date,Description,Amount\n"))
	require.NoError(t, err)
	assert.Len(t, header, 3)
	assert.Nil(t, rows)
}
