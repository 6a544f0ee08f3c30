package api

import "github.com/de-tools/royalty-atlas/pkg/models/domain"

type RevenueLine struct {
	ThisMonth float64 `json:"this_month"`
	YTD       float64 `json:"ytd"`
	Royalty   float64 `json:"royalty"`
}

type CategoryRevenue struct {
	Commercial  RevenueLine `json:"commercial"`
	Residential RevenueLine `json:"residential"`
	Total       RevenueLine `json:"total"`
}

type PeriodAmounts struct {
	ThisMonth float64 `json:"this_month"`
	YTD       float64 `json:"ytd"`
}

type Subtotals struct {
	StandardRate PeriodAmounts `json:"standard_rate"`
	ReducedRate  PeriodAmounts `json:"reduced_rate"`
	Total        PeriodAmounts `json:"total"`
}

type StandardRoyalty struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Tier        string  `json:"tier"`
	Rate        float64 `json:"rate"`
	IsMinimum   bool    `json:"is_minimum"`
}

type ReducedRoyalty struct {
	Amount       float64 `json:"amount"`
	Description  string  `json:"description"`
	ExcessAmount float64 `json:"excess_amount"`
	Rate         float64 `json:"rate"`
}

type Royalties struct {
	StandardRate StandardRoyalty `json:"standard_rate"`
	ReducedRate  ReducedRoyalty  `json:"reduced_rate"`
	Total        float64         `json:"total"`
}

type BrandFundFee struct {
	Amount           float64 `json:"amount"`
	ApplicableAmount float64 `json:"applicable_amount"`
	Capped           bool    `json:"capped"`
	RemainingCap     float64 `json:"remaining_cap"`
	AnnualCap        float64 `json:"annual_cap"`
	Description      string  `json:"description"`
}

type Fees struct {
	FixedFee             float64      `json:"fixed_fee"`
	NationalAccounts     float64      `json:"national_accounts"`
	NationalBrandFund    BrandFundFee `json:"national_brand_fund"`
	NationalBrandReduced float64      `json:"national_brand_reduced"`
	Total                float64      `json:"total"`
}

type PaymentSummary struct {
	FranchiseNumber   string                     `json:"franchise_number"`
	DepartmentName    string                     `json:"department_name"`
	OwnerName         string                     `json:"owner_name"`
	PeriodMonth       int                        `json:"period_month"`
	PeriodYear        int                        `json:"period_year"`
	Categories        map[string]CategoryRevenue `json:"categories"`
	Subtotals         Subtotals                  `json:"subtotals"`
	Royalties         Royalties                  `json:"royalties"`
	Fees              Fees                       `json:"fees"`
	GrandTotalPayable float64                    `json:"grand_total_payable"`
	Warnings          []string                   `json:"warnings,omitempty"`
}

type VolumeLine struct {
	Kind      string  `json:"kind"`
	Label     string  `json:"label"`
	Indent    int     `json:"indent"`
	LastMonth float64 `json:"last_month"`
	YTD       float64 `json:"ytd"`
}

type VolumeReport struct {
	Title     string       `json:"title"`
	Basis     string       `json:"basis"`
	Currency  string       `json:"currency"`
	StartDate string       `json:"start_date"`
	EndDate   string       `json:"end_date"`
	Lines     []VolumeLine `json:"lines"`
}

type Franchise struct {
	Profile    string `json:"profile"`
	Number     string `json:"franchise_number"`
	Department string `json:"department_name"`
	Owner      string `json:"owner_name"`
}

// ReportsRequest is the body of the payment summary and volume report
// endpoints. Franchise fields override the named profile.
type ReportsRequest struct {
	Profile         string         `json:"profile,omitempty"`
	FranchiseNumber string         `json:"franchise_number,omitempty"`
	DepartmentName  string         `json:"department_name,omitempty"`
	OwnerName       string         `json:"owner_name,omitempty"`
	PeriodMonth     int            `json:"period_month,omitempty"`
	PeriodYear      int            `json:"period_year,omitempty"`
	Title           string         `json:"title,omitempty"`
	LastMonth       *domain.Report `json:"last_month"`
	YTD             *domain.Report `json:"ytd"`
}

type Error struct {
	Message string `json:"error"`
}
