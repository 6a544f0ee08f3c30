package royalty

import (
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBrandFundCap(t *testing.T) {
	rt := DefaultRateTable()

	tests := []struct {
		year     int
		expected string
	}{
		{year: 2017, expected: "800000"},
		{year: 2021, expected: "1050000"},
		{year: 2025, expected: "1450000"},
		{year: 2026, expected: "1550000"},
		{year: 2030, expected: "1950000"},
		{year: 2010, expected: "800000"},
	}

	for _, tc := range tests {
		t.Run(strconv.Itoa(tc.year), func(t *testing.T) {
			assert.Equal(t, tc.expected, rt.BrandFundCap(tc.year).String())
		})
	}
}

func TestBrandFundCap_GapInSchedule(t *testing.T) {
	// Given a schedule with a missing year
	rt := RateTable{BrandFundCaps: []BrandFundCap{
		{Year: 2020, Cap: decimal.NewFromInt(100)},
		{Year: 2023, Cap: decimal.NewFromInt(400)},
	}}

	// Then the latest earlier year applies
	assert.Equal(t, "100", rt.BrandFundCap(2021).String())
	assert.Equal(t, "100", rt.BrandFundCap(2022).String())
	assert.Equal(t, "400", rt.BrandFundCap(2023).String())
}

func TestBrandFundFee(t *testing.T) {
	rt := DefaultRateTable()
	annualCap := rt.BrandFundCap(2025)

	t.Run("well under the cap", func(t *testing.T) {
		result := rt.BrandFundFee(decimal.NewFromInt(12000), decimal.Zero, 2025)

		assert.Equal(t, "300.00", result.Fee.StringFixed(2))
		assert.Equal(t, "12000.00", result.ApplicableAmount.StringFixed(2))
		assert.False(t, result.Capped)
		assert.Equal(t, "1438000.00", result.RemainingCap.StringFixed(2))
		assert.Equal(t, "2.5% of $12,000.00", result.Description)
	})

	t.Run("crossing the cap this month", func(t *testing.T) {
		// Given 100 left under the cap and 500 of revenue this month
		ytdBefore := annualCap.Sub(decimal.NewFromInt(100))

		// When the fee is computed
		result := rt.BrandFundFee(decimal.NewFromInt(500), ytdBefore, 2025)

		// Then only the remaining headroom is charged
		assert.Equal(t, "2.50", result.Fee.StringFixed(2))
		assert.Equal(t, "100.00", result.ApplicableAmount.StringFixed(2))
		assert.True(t, result.Capped)
		assert.True(t, result.RemainingCap.IsZero())
		assert.True(t, result.AnnualCap.Equal(annualCap))
	})

	t.Run("exactly reaching the cap", func(t *testing.T) {
		ytdBefore := annualCap.Sub(decimal.NewFromInt(500))

		result := rt.BrandFundFee(decimal.NewFromInt(500), ytdBefore, 2025)

		assert.Equal(t, "12.50", result.Fee.StringFixed(2))
		assert.False(t, result.Capped)
		assert.True(t, result.RemainingCap.IsZero())
	})

	t.Run("cap already reached", func(t *testing.T) {
		result := rt.BrandFundFee(decimal.NewFromInt(500), annualCap.Add(decimal.NewFromInt(1)), 2025)

		assert.True(t, result.Fee.IsZero())
		assert.True(t, result.ApplicableAmount.IsZero())
		assert.True(t, result.Capped)
		assert.Equal(t, "Annual cap reached", result.Description)
	})

	t.Run("no revenue", func(t *testing.T) {
		result := rt.BrandFundFee(decimal.Zero, decimal.NewFromInt(1000), 2025)

		assert.True(t, result.Fee.IsZero())
		assert.False(t, result.Capped)
		assert.Equal(t, "1449000.00", result.RemainingCap.StringFixed(2))
	})
}

func TestFlatFees(t *testing.T) {
	rt := DefaultRateTable()

	assert.Equal(t, "60.00", rt.NationalAccountsFee(decimal.NewFromInt(12000)).StringFixed(2))
	assert.Equal(t, "12.50", rt.ReducedBrandFundFee(decimal.NewFromInt(5000)).StringFixed(2))
	assert.True(t, rt.NationalAccountsFee(decimal.Zero).IsZero())
}
