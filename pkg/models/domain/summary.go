package domain

import "github.com/shopspring/decimal"

type RevenueCategory string

const (
	CategoryWater          RevenueCategory = "water"
	CategoryFire           RevenueCategory = "fire"
	CategoryMoldBio        RevenueCategory = "mold_bio"
	CategoryOther          RevenueCategory = "other"
	CategorySubcontract    RevenueCategory = "subcontract"
	CategoryReconstruction RevenueCategory = "reconstruction"
)

// RevenueCategories lists the domain categories in reporting order.
var RevenueCategories = []RevenueCategory{
	CategoryWater,
	CategoryFire,
	CategoryMoldBio,
	CategoryOther,
	CategorySubcontract,
	CategoryReconstruction,
}

// IsReducedRate reports whether the category is billed on the reduced-rate
// schedule (Subcontract and Reconstruction).
func (c RevenueCategory) IsReducedRate() bool {
	return c == CategorySubcontract || c == CategoryReconstruction
}

type RevenueSplit struct {
	Commercial  decimal.Decimal
	Residential decimal.Decimal
	Total       decimal.Decimal
}

// CategoryAmounts holds the revenue of every domain category. Missing
// categories read as zero.
type CategoryAmounts map[RevenueCategory]RevenueSplit

func NewCategoryAmounts() CategoryAmounts {
	amounts := make(CategoryAmounts, len(RevenueCategories))
	for _, c := range RevenueCategories {
		amounts[c] = RevenueSplit{}
	}
	return amounts
}

// StandardRate sums Water, Fire, Mold/Bio-Hazard and Other.
func (a CategoryAmounts) StandardRate() decimal.Decimal {
	total := decimal.Zero
	for _, c := range RevenueCategories {
		if !c.IsReducedRate() {
			total = total.Add(a[c].Total)
		}
	}
	return total
}

// ReducedRate sums Subcontract and Reconstruction.
func (a CategoryAmounts) ReducedRate() decimal.Decimal {
	total := decimal.Zero
	for _, c := range RevenueCategories {
		if c.IsReducedRate() {
			total = total.Add(a[c].Total)
		}
	}
	return total
}

type FranchiseInfo struct {
	Number     string
	Department string
	Owner      string
}

type Period struct {
	Month int
	Year  int
}

// LineAmounts is one revenue line of the payment summary.
type LineAmounts struct {
	ThisMonth decimal.Decimal
	YTD       decimal.Decimal
	Royalty   decimal.Decimal // allocated share, display only
}

type CategoryLine struct {
	Category    RevenueCategory
	Commercial  LineAmounts
	Residential LineAmounts
	Total       LineAmounts
}

type PeriodAmounts struct {
	ThisMonth decimal.Decimal
	YTD       decimal.Decimal
}

type Subtotals struct {
	StandardRate PeriodAmounts
	ReducedRate  PeriodAmounts
	Total        PeriodAmounts
}

type StandardRoyalty struct {
	Amount          decimal.Decimal
	Rate            decimal.Decimal
	FixedFee        decimal.Decimal
	Description     string // "10.0% of $12,000.00"
	TierDescription string // "$0.00 - $12,849.99"
	IsMinimum       bool
}

type ReducedRoyalty struct {
	Amount       decimal.Decimal
	Rate         decimal.Decimal
	ExcessAmount decimal.Decimal
	Description  string
}

type Royalties struct {
	Standard StandardRoyalty
	Reduced  ReducedRoyalty
	Total    decimal.Decimal
}

type BrandFundFee struct {
	Amount           decimal.Decimal
	ApplicableAmount decimal.Decimal
	Capped           bool
	RemainingCap     decimal.Decimal
	AnnualCap        decimal.Decimal
	Description      string
}

type Fees struct {
	FixedFee             decimal.Decimal
	NationalAccounts     decimal.Decimal
	NationalBrandFund    BrandFundFee
	NationalBrandReduced decimal.Decimal
	Total                decimal.Decimal
}

// PaymentSummary is the reconciled royalty statement for one franchise and
// one reporting period.
type PaymentSummary struct {
	Franchise         FranchiseInfo
	Period            Period
	Categories        []CategoryLine
	Subtotals         Subtotals
	Royalties         Royalties
	Fees              Fees
	GrandTotalPayable decimal.Decimal
	Warnings          []string
}
