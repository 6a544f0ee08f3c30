package adapters

import (
	"testing"

	"github.com/de-tools/royalty-atlas/pkg/models/api"
	"github.com/de-tools/royalty-atlas/pkg/models/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestMapPaymentSummaryDomainToApi(t *testing.T) {
	// Given a calculated summary
	summary := domain.PaymentSummary{
		Franchise: domain.FranchiseInfo{Number: "10456", Department: "Springfield North", Owner: "Jane Roe"},
		Period:    domain.Period{Month: 5, Year: 2025},
		Categories: []domain.CategoryLine{{
			Category:   domain.CategoryWater,
			Commercial: domain.LineAmounts{ThisMonth: dec("10000"), YTD: dec("40000"), Royalty: dec("1000")},
			Total:      domain.LineAmounts{ThisMonth: dec("10000"), YTD: dec("40000"), Royalty: dec("1000")},
		}},
		Subtotals: domain.Subtotals{
			StandardRate: domain.PeriodAmounts{ThisMonth: dec("10000"), YTD: dec("40000")},
			Total:        domain.PeriodAmounts{ThisMonth: dec("10000"), YTD: dec("40000")},
		},
		Royalties: domain.Royalties{
			Standard: domain.StandardRoyalty{
				Amount: dec("1000"), Rate: dec("0.1"), Description: "10.0% of $10,000.00", TierDescription: "$0.00 - $12,849.99",
			},
			Reduced: domain.ReducedRoyalty{Description: "No reduced rate revenue"},
			Total:   dec("1000"),
		},
		Fees: domain.Fees{
			FixedFee:         dec("45"),
			NationalAccounts: dec("50"),
			NationalBrandFund: domain.BrandFundFee{
				Amount: dec("250"), ApplicableAmount: dec("10000"), RemainingCap: dec("1410000"), AnnualCap: dec("1450000"),
				Description: "2.5% of $10,000.00",
			},
			Total: dec("345"),
		},
		GrandTotalPayable: dec("1345"),
		Warnings:          []string{"check"},
	}

	// When it is mapped to the API model
	result := MapPaymentSummaryDomainToApi(summary)

	// Then amounts become plain numbers and categories are keyed by name
	expected := api.PaymentSummary{
		FranchiseNumber: "10456",
		DepartmentName:  "Springfield North",
		OwnerName:       "Jane Roe",
		PeriodMonth:     5,
		PeriodYear:      2025,
		Categories: map[string]api.CategoryRevenue{
			"water": {
				Commercial: api.RevenueLine{ThisMonth: 10000, YTD: 40000, Royalty: 1000},
				Total:      api.RevenueLine{ThisMonth: 10000, YTD: 40000, Royalty: 1000},
			},
		},
		Subtotals: api.Subtotals{
			StandardRate: api.PeriodAmounts{ThisMonth: 10000, YTD: 40000},
			Total:        api.PeriodAmounts{ThisMonth: 10000, YTD: 40000},
		},
		Royalties: api.Royalties{
			StandardRate: api.StandardRoyalty{
				Amount: 1000, Description: "10.0% of $10,000.00", Tier: "$0.00 - $12,849.99", Rate: 0.1,
			},
			ReducedRate: api.ReducedRoyalty{Description: "No reduced rate revenue"},
			Total:       1000,
		},
		Fees: api.Fees{
			FixedFee:         45,
			NationalAccounts: 50,
			NationalBrandFund: api.BrandFundFee{
				Amount: 250, ApplicableAmount: 10000, RemainingCap: 1410000, AnnualCap: 1450000,
				Description: "2.5% of $10,000.00",
			},
			Total: 345,
		},
		GrandTotalPayable: 1345,
		Warnings:          []string{"check"},
	}
	if diff := cmp.Diff(expected, result); diff != "" {
		t.Errorf("payment summary mismatch (-want +got):\n%s", diff)
	}
}

func TestMapVolumeReportDomainToApi(t *testing.T) {
	report := domain.VolumeReport{
		Title: "Volume", Basis: "Cash", Currency: "USD",
		Lines: []domain.VolumeLine{
			{Kind: domain.VolumeLineItem, Label: "Drying", Indent: 2, LastMonth: dec("12.5"), YTD: dec("100")},
		},
	}

	result := MapVolumeReportDomainToApi(report)

	assert.Equal(t, api.VolumeReport{
		Title: "Volume", Basis: "Cash", Currency: "USD",
		Lines: []api.VolumeLine{{Kind: "item", Label: "Drying", Indent: 2, LastMonth: 12.5, YTD: 100}},
	}, result)
}

func TestMapFranchiseProfileDomainToApi(t *testing.T) {
	result := MapFranchiseProfileDomainToApi(domain.FranchiseProfile{
		Name: "springfield", Number: "10456", Department: "Springfield North", Owner: "Jane Roe",
	})

	assert.Equal(t, api.Franchise{
		Profile: "springfield", Number: "10456", Department: "Springfield North", Owner: "Jane Roe",
	}, result)
}
