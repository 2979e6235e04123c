package utils

import (
	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of decimal places used when amounts leave the system.
const DisplayPrecision = 2

// FormatAmount renders an amount for display with exactly two decimals.
// Example: 236 returns "236.00", 12.345 returns "12.35"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(DisplayPrecision)
}

// FormatBalance renders an absolute balance followed by its side, e.g. "800.00 Dr".
func FormatBalance(amount decimal.Decimal, side string) string {
	return FormatAmount(amount.Abs()) + " " + side
}
