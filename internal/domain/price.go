package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePrice converts the raw textual price into an exact decimal value.
// A blank or all-whitespace value reports absence (present=false) rather
// than an error, so the validator can emit "Price is required"; a non-blank
// value that is not a decimal number yields a NumberFormatError carrying the
// offending text. Parsing keeps the exact decimal digits, so "999.99"
// round-trips as 999.99 with no binary rounding.
func ParsePrice(raw string) (decimal.Decimal, bool, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Decimal{}, false, nil
	}
	price, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, false, &NumberFormatError{Raw: raw}
	}
	return price, true, nil
}
