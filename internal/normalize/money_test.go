package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"$1,234.56", "1234.56"},
		{"-$1,234.56", "-1234.56"},
		{"1234.5", "1234.50"},
		{"  42.00  ", "42.00"},
		{"-5", "-5.00"},
		{"0", "0.00"},
		{"$0.005", "0.01"},
		{"1234.567", "1234.57"},
		{"-0.005", "-0.01"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Amount(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestAmount_Malformed(t *testing.T) {
	for _, in := range []string{"", "abc", "12..3", "$", "1,2,3x"} {
		t.Run(in, func(t *testing.T) {
			_, err := Amount(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedAmount)
		})
	}
}

func TestAmount_Idempotent(t *testing.T) {
	first, err := Amount("$1,234.5")
	require.NoError(t, err)

	second, err := Amount(first.StringFixed(2))
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}
