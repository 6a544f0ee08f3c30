package extract

import (
	"strings"

	"github.com/shopspring/decimal"
)

var amountCleaner = strings.NewReplacer(",", "", "$", "", " ", "")

// ParseAmount converts a report cell to an amount. Thousands separators and
// currency symbols are ignored; blank or malformed cells read as zero.
func ParseAmount(value string) decimal.Decimal {
	cleaned := amountCleaner.Replace(strings.TrimSpace(value))
	if cleaned == "" {
		return decimal.Zero
	}
	negative := false
	// accounting exports write negatives as (1,234.56)
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		negative = true
		cleaned = cleaned[1 : len(cleaned)-1]
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	if negative {
		return amount.Neg()
	}
	return amount
}
