// Package royalty implements the franchise royalty and fee schedule.
package royalty

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNoTierMatched means the standard tier table does not cover a volume. A
// validated table always ends with an unbounded tier, so this is a defect in
// the table rather than bad input.
var ErrNoTierMatched = errors.New("no standard royalty tier matches volume")

type StandardResult struct {
	Royalty         decimal.Decimal
	Rate            decimal.Decimal
	FixedFee        decimal.Decimal
	Description     string
	TierDescription string
	IsMinimum       bool
}

// StandardRoyalty applies the tiered table to the month's standard-rate
// volume. Upper bounds are inclusive: a volume on a boundary belongs to the
// lower tier. No volume at all bills the minimum royalty with the lowest
// tier's fixed fee.
func (rt RateTable) StandardRoyalty(volume decimal.Decimal) (StandardResult, error) {
	if len(rt.Tiers) == 0 {
		return StandardResult{}, ErrNoTiers
	}

	if !volume.IsPositive() {
		return StandardResult{
			Royalty:         rt.MinimumRoyalty,
			Rate:            decimal.Zero,
			FixedFee:        rt.Tiers[0].FixedFee,
			Description:     fmt.Sprintf("Minimum royalty (no revenue): %s", FormatMoney(rt.MinimumRoyalty)),
			TierDescription: "Minimum",
			IsMinimum:       true,
		}, nil
	}

	for i, tier := range rt.Tiers {
		if !tier.covers(volume) {
			continue
		}
		var description string
		if tier.Threshold == nil {
			description = fmt.Sprintf("%s of %s", FormatPercent(tier.Rate, 1), FormatMoney(volume))
		} else {
			description = fmt.Sprintf("%s + %s of %s",
				FormatMoney(tier.Fixed), FormatPercent(tier.Rate, 1), FormatMoney(volume.Sub(*tier.Threshold)))
		}
		return StandardResult{
			Royalty:         roundCents(tier.royalty(volume)),
			Rate:            tier.Rate,
			FixedFee:        tier.FixedFee,
			Description:     description,
			TierDescription: rt.tierDescription(i),
		}, nil
	}

	return StandardResult{}, fmt.Errorf("%w: %s", ErrNoTierMatched, volume.StringFixed(2))
}

func (rt RateTable) tierDescription(i int) string {
	lower := FormatMoney(rt.lowerBound(i))
	if rt.Tiers[i].UpTo == nil {
		return lower + " and above"
	}
	return lower + " - " + FormatMoney(*rt.Tiers[i].UpTo)
}

type ReducedResult struct {
	Royalty      decimal.Decimal
	Rate         decimal.Decimal
	ExcessAmount decimal.Decimal
	Description  string
}

// ReducedRoyalty applies the two-part reduced-rate formula to Subcontract and
// Reconstruction volume. The breakpoint itself is billed at the lower part.
func (rt RateTable) ReducedRoyalty(volume decimal.Decimal) ReducedResult {
	if !volume.IsPositive() {
		return ReducedResult{
			Royalty:      decimal.Zero,
			Rate:         decimal.Zero,
			ExcessAmount: decimal.Zero,
			Description:  "No reduced rate revenue",
		}
	}

	if volume.LessThanOrEqual(rt.ReducedBreakpoint) {
		return ReducedResult{
			Royalty:      roundCents(volume.Mul(rt.ReducedRateBelow)),
			Rate:         rt.ReducedRateBelow,
			ExcessAmount: decimal.Zero,
			Description:  fmt.Sprintf("%s of %s", FormatPercent(rt.ReducedRateBelow, 0), FormatMoney(volume)),
		}
	}

	excess := volume.Sub(rt.ReducedBreakpoint)
	return ReducedResult{
		Royalty:      roundCents(rt.ReducedFixed.Add(excess.Mul(rt.ReducedRateAbove))),
		Rate:         rt.ReducedRateAbove,
		ExcessAmount: roundCents(excess),
		Description: fmt.Sprintf("%s + %s of %s",
			FormatMoney(rt.ReducedFixed), FormatPercent(rt.ReducedRateAbove, 0), FormatMoney(excess)),
	}
}
