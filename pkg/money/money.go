// Package money holds the rules prices share across the catalog and orders.
package money

import "github.com/shopspring/decimal"

// Scale is the number of decimal places a stored price keeps.
const Scale = 2

// IsCents reports whether d is representable at Scale without rounding.
// Trailing zeros are fine: 10.000 passes, 0.005 does not.
func IsCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(Scale))
}
