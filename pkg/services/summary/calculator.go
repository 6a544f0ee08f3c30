// Package summary assembles the payment summary and the royalty volume report
// from a last-month and a year-to-date report.
package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/royalty-atlas/pkg/models/domain"
	"github.com/de-tools/royalty-atlas/pkg/services/extract"
	"github.com/de-tools/royalty-atlas/pkg/services/royalty"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Request carries the two reports and the franchise the statement is for. A
// zero period is read from the last-month report.
type Request struct {
	Franchise domain.FranchiseInfo
	Period    domain.Period
	LastMonth *domain.Report
	YTD       *domain.Report
}

type Calculator interface {
	Calculate(ctx context.Context, req Request) (domain.PaymentSummary, error)
}

type calculator struct {
	rates royalty.RateTable
	now   func() time.Time
}

type Option func(*calculator)

// WithClock sets the clock used when neither the request nor the last-month
// report names a period.
func WithClock(now func() time.Time) Option {
	return func(c *calculator) {
		c.now = now
	}
}

func NewCalculator(rates royalty.RateTable, opts ...Option) Calculator {
	c := &calculator{rates: rates, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *calculator) Calculate(ctx context.Context, req Request) (domain.PaymentSummary, error) {
	logger := zerolog.Ctx(ctx)

	lastMonth := extract.Extract(req.LastMonth)
	ytd := extract.Extract(req.YTD)

	var warnings []string
	if !lastMonth.HasData {
		warnings = append(warnings, "last month report indicates no data")
	}
	if !ytd.HasData {
		warnings = append(warnings, "year-to-date report indicates no data")
	}

	period := c.resolvePeriod(req)

	logger.Debug().
		Str("last_month_shape", string(lastMonth.Shape)).
		Str("ytd_shape", string(ytd.Shape)).
		Int("year", period.Year).
		Int("month", period.Month).
		Msg("extracted report categories")

	standard := lastMonth.Categories.StandardRate()
	reduced := lastMonth.Categories.ReducedRate()
	ytdStandard := ytd.Categories.StandardRate()
	ytdReduced := ytd.Categories.ReducedRate()

	ytdBefore := ytdStandard.Sub(standard)
	if ytdBefore.IsNegative() {
		msg := fmt.Sprintf(
			"year-to-date standard rate volume %s is below this month's %s; volume before this month taken as zero",
			ytdStandard.StringFixed(2), standard.StringFixed(2))
		logger.Warn().
			Str("ytd_standard", ytdStandard.StringFixed(2)).
			Str("this_month_standard", standard.StringFixed(2)).
			Msg("year-to-date volume below this month, clamping")
		warnings = append(warnings, msg)
		ytdBefore = decimal.Zero
	}

	std, err := c.rates.StandardRoyalty(standard)
	if err != nil {
		return domain.PaymentSummary{}, fmt.Errorf("failed to calculate standard royalty: %w", err)
	}
	red := c.rates.ReducedRoyalty(reduced)
	brand := c.rates.BrandFundFee(standard, ytdBefore, period.Year)

	fees := domain.Fees{
		FixedFee:         std.FixedFee,
		NationalAccounts: c.rates.NationalAccountsFee(standard),
		NationalBrandFund: domain.BrandFundFee{
			Amount:           brand.Fee,
			ApplicableAmount: brand.ApplicableAmount,
			Capped:           brand.Capped,
			RemainingCap:     brand.RemainingCap,
			AnnualCap:        brand.AnnualCap,
			Description:      brand.Description,
		},
		NationalBrandReduced: c.rates.ReducedBrandFundFee(reduced),
	}
	fees.Total = fees.FixedFee.
		Add(fees.NationalAccounts).
		Add(fees.NationalBrandFund.Amount).
		Add(fees.NationalBrandReduced)

	royalties := domain.Royalties{
		Standard: domain.StandardRoyalty{
			Amount:          std.Royalty,
			Rate:            std.Rate,
			FixedFee:        std.FixedFee,
			Description:     std.Description,
			TierDescription: std.TierDescription,
			IsMinimum:       std.IsMinimum,
		},
		Reduced: domain.ReducedRoyalty{
			Amount:       red.Royalty,
			Rate:         red.Rate,
			ExcessAmount: red.ExcessAmount,
			Description:  red.Description,
		},
		Total: std.Royalty.Add(red.Royalty),
	}

	summary := domain.PaymentSummary{
		Franchise: req.Franchise,
		Period:    period,
		Categories: allocate(lastMonth.Categories, ytd.Categories,
			effectiveRate(std.Royalty, standard), effectiveRate(red.Royalty, reduced)),
		Subtotals: domain.Subtotals{
			StandardRate: domain.PeriodAmounts{ThisMonth: standard, YTD: ytdStandard},
			ReducedRate:  domain.PeriodAmounts{ThisMonth: reduced, YTD: ytdReduced},
			Total:        domain.PeriodAmounts{ThisMonth: standard.Add(reduced), YTD: ytdStandard.Add(ytdReduced)},
		},
		Royalties:         royalties,
		Fees:              fees,
		GrandTotalPayable: royalties.Total.Add(fees.Total),
		Warnings:          warnings,
	}

	logger.Info().
		Str("franchise", req.Franchise.Number).
		Str("royalty", royalties.Total.StringFixed(2)).
		Str("fees", fees.Total.StringFixed(2)).
		Str("grand_total", summary.GrandTotalPayable.StringFixed(2)).
		Bool("brand_fund_capped", brand.Capped).
		Msg("payment summary calculated")

	return summary, nil
}

func (c *calculator) resolvePeriod(req Request) domain.Period {
	period := req.Period
	if period.Month != 0 && period.Year != 0 {
		return period
	}
	fromReport, ok := extract.Period(req.LastMonth)
	now := c.now()
	if period.Month == 0 {
		if ok {
			period.Month = fromReport.Month
		} else {
			period.Month = int(now.Month())
		}
	}
	if period.Year == 0 {
		if ok {
			period.Year = fromReport.Year
		} else {
			period.Year = now.Year()
		}
	}
	return period
}

// effectiveRate is the share of revenue the tiered royalty amounts to. It is
// used for display allocation only.
func effectiveRate(royaltyAmount, revenue decimal.Decimal) decimal.Decimal {
	if !revenue.IsPositive() {
		return decimal.Zero
	}
	return royaltyAmount.Div(revenue)
}

// allocate spreads each rate class's royalty over its categories in
// proportion to their revenue.
func allocate(thisMonth, ytd domain.CategoryAmounts, standardRate, reducedRate decimal.Decimal) []domain.CategoryLine {
	lines := make([]domain.CategoryLine, 0, len(domain.RevenueCategories))
	for _, category := range domain.RevenueCategories {
		rate := standardRate
		if category.IsReducedRate() {
			rate = reducedRate
		}
		tm, y := thisMonth[category], ytd[category]
		lines = append(lines, domain.CategoryLine{
			Category: category,
			Commercial: domain.LineAmounts{
				ThisMonth: tm.Commercial,
				YTD:       y.Commercial,
				Royalty:   tm.Commercial.Mul(rate).Round(2),
			},
			Residential: domain.LineAmounts{
				ThisMonth: tm.Residential,
				YTD:       y.Residential,
				Royalty:   tm.Residential.Mul(rate).Round(2),
			},
			Total: domain.LineAmounts{
				ThisMonth: tm.Total,
				YTD:       y.Total,
				Royalty:   tm.Total.Mul(rate).Round(2),
			},
		})
	}
	return lines
}
