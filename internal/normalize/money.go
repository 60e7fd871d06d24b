// Package normalize converts source-specific monetary and date strings into
// their canonical forms.
package normalize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMalformedAmount reports a monetary cell that is not a decimal numeral
// after currency punctuation is stripped.
var ErrMalformedAmount = errors.New("malformed amount")

// Amount parses a currency-formatted string ("$1,234.56", "-$5", " 12.5 ")
// into an exact fixed-point value with exactly 2 fractional digits. Rounding
// is half away from zero. Binary floating point is never involved.
func Amount(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrMalformedAmount, s)
	}
	return d.Round(2), nil
}
