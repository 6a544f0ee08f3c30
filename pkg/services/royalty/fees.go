package royalty

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BrandFundCap returns the annual National Brand Fund cap. Years after the
// schedule grow by the yearly increment; years before it use the first cap.
func (rt RateTable) BrandFundCap(year int) decimal.Decimal {
	if len(rt.BrandFundCaps) == 0 {
		return decimal.Zero
	}
	for _, c := range rt.BrandFundCaps {
		if c.Year == year {
			return c.Cap
		}
	}
	first, last := rt.BrandFundCaps[0], rt.BrandFundCaps[len(rt.BrandFundCaps)-1]
	if year > last.Year {
		return last.Cap.Add(rt.BrandFundCapIncrement.Mul(decimal.NewFromInt(int64(year - last.Year))))
	}
	if year < first.Year {
		return first.Cap
	}
	// gap inside the schedule: the latest earlier year applies
	capValue := first.Cap
	for _, c := range rt.BrandFundCaps {
		if c.Year > year {
			break
		}
		capValue = c.Cap
	}
	return capValue
}

type BrandFundResult struct {
	Fee              decimal.Decimal
	ApplicableAmount decimal.Decimal
	Capped           bool
	RemainingCap     decimal.Decimal
	AnnualCap        decimal.Decimal
	Description      string
}

// BrandFundFee charges the brand fund rate on this month's standard-rate
// volume, limited to what is left of the annual cap after the volume already
// accrued earlier in the year.
func (rt RateTable) BrandFundFee(thisMonth, ytdBefore decimal.Decimal, year int) BrandFundResult {
	annualCap := rt.BrandFundCap(year)
	headroom := decimal.Max(decimal.Zero, annualCap.Sub(ytdBefore))

	if !thisMonth.IsPositive() {
		return BrandFundResult{
			Fee:              decimal.Zero,
			ApplicableAmount: decimal.Zero,
			RemainingCap:     headroom,
			AnnualCap:        annualCap,
			Description:      "No standard rate revenue",
		}
	}

	if !headroom.IsPositive() {
		return BrandFundResult{
			Fee:              decimal.Zero,
			ApplicableAmount: decimal.Zero,
			Capped:           true,
			RemainingCap:     decimal.Zero,
			AnnualCap:        annualCap,
			Description:      "Annual cap reached",
		}
	}

	applicable := decimal.Min(thisMonth, headroom)
	capped := thisMonth.GreaterThan(headroom)
	remaining := decimal.Zero
	if !capped {
		remaining = roundCents(headroom.Sub(applicable))
	}

	return BrandFundResult{
		Fee:              roundCents(applicable.Mul(rt.BrandFundRate)),
		ApplicableAmount: applicable,
		Capped:           capped,
		RemainingCap:     remaining,
		AnnualCap:        annualCap,
		Description:      fmt.Sprintf("%s of %s", FormatPercent(rt.BrandFundRate, 1), FormatMoney(applicable)),
	}
}

// NationalAccountsFee is charged on standard-rate volume without a cap.
func (rt RateTable) NationalAccountsFee(standard decimal.Decimal) decimal.Decimal {
	return roundCents(standard.Mul(rt.NationalAccountsRate))
}

// ReducedBrandFundFee is charged on reduced-rate volume without a cap.
func (rt RateTable) ReducedBrandFundFee(reduced decimal.Decimal) decimal.Decimal {
	return roundCents(reduced.Mul(rt.BrandFundReducedRate))
}
