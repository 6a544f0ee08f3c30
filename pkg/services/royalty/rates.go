package royalty

import (
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Tier is one row of the standard-rate royalty table. A tier applies to every
// volume up to and including UpTo; the last tier has no upper bound.
type Tier struct {
	UpTo      *decimal.Decimal // nil: unbounded
	Rate      decimal.Decimal  // 0.065
	Fixed     decimal.Decimal  // 5247.00
	Threshold *decimal.Decimal // nil: flat rate on the whole volume
	FixedFee  decimal.Decimal  // 115
}

func (t Tier) covers(volume decimal.Decimal) bool {
	return t.UpTo == nil || volume.LessThanOrEqual(*t.UpTo)
}

func (t Tier) royalty(volume decimal.Decimal) decimal.Decimal {
	if t.Threshold == nil {
		return volume.Mul(t.Rate)
	}
	return t.Fixed.Add(volume.Sub(*t.Threshold).Mul(t.Rate))
}

type BrandFundCap struct {
	Year int
	Cap  decimal.Decimal
}

// RateTable holds every rate of the franchise agreement. It is an immutable
// value once validated and can be shared between goroutines.
type RateTable struct {
	Tiers          []Tier
	MinimumRoyalty decimal.Decimal

	ReducedBreakpoint decimal.Decimal
	ReducedRateBelow  decimal.Decimal
	ReducedRateAbove  decimal.Decimal
	ReducedFixed      decimal.Decimal

	NationalAccountsRate  decimal.Decimal
	BrandFundRate         decimal.Decimal
	BrandFundReducedRate  decimal.Decimal
	BrandFundCaps         []BrandFundCap // ascending by year
	BrandFundCapIncrement decimal.Decimal
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func bound(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

// DefaultRateTable returns the royalty table of the franchise license
// agreement.
func DefaultRateTable() RateTable {
	return RateTable{
		Tiers: []Tier{
			{UpTo: bound("12849.99"), Rate: d("0.10"), FixedFee: d("45")},
			{UpTo: bound("21416.99"), Rate: d("0.09"), FixedFee: d("65")},
			{UpTo: bound("32124.99"), Rate: d("0.08"), FixedFee: d("85")},
			{UpTo: bound("42832.99"), Rate: d("0.075"), FixedFee: d("95")},
			{UpTo: bound("74956.99"), Rate: d("0.07"), FixedFee: d("115")},
			{UpTo: bound("107082.99"), Rate: d("0.065"), Fixed: d("5247.00"), Threshold: bound("74956.99"), FixedFee: d("115")},
			{UpTo: bound("160623.99"), Rate: d("0.06"), Fixed: d("7335.00"), Threshold: bound("107082.99"), FixedFee: d("115")},
			{UpTo: bound("214164.99"), Rate: d("0.055"), Fixed: d("10547.00"), Threshold: bound("160623.99"), FixedFee: d("115")},
			{UpTo: nil, Rate: d("0.05"), Fixed: d("13492.00"), Threshold: bound("214164.99"), FixedFee: d("115")},
		},
		MinimumRoyalty: d("145.00"),

		ReducedBreakpoint: d("32124.99"),
		ReducedRateBelow:  d("0.04"),
		ReducedRateAbove:  d("0.03"),
		ReducedFixed:      d("1285.00"),

		NationalAccountsRate: d("0.005"),
		BrandFundRate:        d("0.025"),
		BrandFundReducedRate: d("0.0025"),
		BrandFundCaps: []BrandFundCap{
			{Year: 2017, Cap: d("800000")},
			{Year: 2018, Cap: d("850000")},
			{Year: 2019, Cap: d("900000")},
			{Year: 2020, Cap: d("950000")},
			{Year: 2021, Cap: d("1050000")},
			{Year: 2022, Cap: d("1150000")},
			{Year: 2023, Cap: d("1250000")},
			{Year: 2024, Cap: d("1350000")},
			{Year: 2025, Cap: d("1450000")},
		},
		BrandFundCapIncrement: d("100000"),
	}
}

var (
	ErrNoTiers          = errors.New("rate table has no standard tiers")
	ErrTiersNotOrdered  = errors.New("standard tiers must be ordered by ascending upper bound")
	ErrTiersNotCovering = errors.New("only the last standard tier may be unbounded, and it must be")
	ErrNoBrandFundCaps  = errors.New("rate table has no brand fund caps")
)

// Validate checks that the standard tiers cover every positive volume exactly
// once and that the brand fund schedule is usable.
func (rt RateTable) Validate() error {
	if len(rt.Tiers) == 0 {
		return ErrNoTiers
	}
	for i, tier := range rt.Tiers {
		last := i == len(rt.Tiers)-1
		if (tier.UpTo == nil) != last {
			return fmt.Errorf("tier %d: %w", i+1, ErrTiersNotCovering)
		}
		if i > 0 && tier.UpTo != nil && !tier.UpTo.GreaterThan(*rt.Tiers[i-1].UpTo) {
			return fmt.Errorf("tier %d: %w", i+1, ErrTiersNotOrdered)
		}
	}
	if len(rt.BrandFundCaps) == 0 {
		return ErrNoBrandFundCaps
	}
	if !slices.IsSortedFunc(rt.BrandFundCaps, func(a, b BrandFundCap) int { return a.Year - b.Year }) {
		return fmt.Errorf("brand fund caps must be ordered by year")
	}
	return nil
}

// lowerBound is the first cent a tier applies to.
func (rt RateTable) lowerBound(i int) decimal.Decimal {
	if i == 0 || rt.Tiers[i-1].UpTo == nil {
		return decimal.Zero
	}
	return rt.Tiers[i-1].UpTo.Add(cent)
}
