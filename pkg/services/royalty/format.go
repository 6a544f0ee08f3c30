package royalty

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var cent = decimal.New(1, -2)

func roundCents(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

// FormatMoney renders an amount as $12,345.67.
func FormatMoney(v decimal.Decimal) string {
	if v.IsNegative() {
		return "-$" + humanize.FormatFloat("#,###.##", v.Abs().InexactFloat64())
	}
	return "$" + humanize.FormatFloat("#,###.##", v.InexactFloat64())
}

// FormatPercent renders a rate such as 0.065 as 6.5% using the given number
// of decimals.
func FormatPercent(rate decimal.Decimal, places int32) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(places) + "%"
}
