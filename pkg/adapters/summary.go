package adapters

import (
	"github.com/de-tools/royalty-atlas/pkg/models/api"
	"github.com/de-tools/royalty-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

func money(v decimal.Decimal) float64 {
	return v.InexactFloat64()
}

func MapLineAmountsDomainToApi(l domain.LineAmounts) api.RevenueLine {
	return api.RevenueLine{
		ThisMonth: money(l.ThisMonth),
		YTD:       money(l.YTD),
		Royalty:   money(l.Royalty),
	}
}

func MapPeriodAmountsDomainToApi(p domain.PeriodAmounts) api.PeriodAmounts {
	return api.PeriodAmounts{
		ThisMonth: money(p.ThisMonth),
		YTD:       money(p.YTD),
	}
}

func MapBrandFundFeeDomainToApi(f domain.BrandFundFee) api.BrandFundFee {
	return api.BrandFundFee{
		Amount:           money(f.Amount),
		ApplicableAmount: money(f.ApplicableAmount),
		Capped:           f.Capped,
		RemainingCap:     money(f.RemainingCap),
		AnnualCap:        money(f.AnnualCap),
		Description:      f.Description,
	}
}

func MapPaymentSummaryDomainToApi(s domain.PaymentSummary) api.PaymentSummary {
	categories := make(map[string]api.CategoryRevenue, len(s.Categories))
	for _, line := range s.Categories {
		categories[string(line.Category)] = api.CategoryRevenue{
			Commercial:  MapLineAmountsDomainToApi(line.Commercial),
			Residential: MapLineAmountsDomainToApi(line.Residential),
			Total:       MapLineAmountsDomainToApi(line.Total),
		}
	}

	return api.PaymentSummary{
		FranchiseNumber: s.Franchise.Number,
		DepartmentName:  s.Franchise.Department,
		OwnerName:       s.Franchise.Owner,
		PeriodMonth:     s.Period.Month,
		PeriodYear:      s.Period.Year,
		Categories:      categories,
		Subtotals: api.Subtotals{
			StandardRate: MapPeriodAmountsDomainToApi(s.Subtotals.StandardRate),
			ReducedRate:  MapPeriodAmountsDomainToApi(s.Subtotals.ReducedRate),
			Total:        MapPeriodAmountsDomainToApi(s.Subtotals.Total),
		},
		Royalties: api.Royalties{
			StandardRate: api.StandardRoyalty{
				Amount:      money(s.Royalties.Standard.Amount),
				Description: s.Royalties.Standard.Description,
				Tier:        s.Royalties.Standard.TierDescription,
				Rate:        money(s.Royalties.Standard.Rate),
				IsMinimum:   s.Royalties.Standard.IsMinimum,
			},
			ReducedRate: api.ReducedRoyalty{
				Amount:       money(s.Royalties.Reduced.Amount),
				Description:  s.Royalties.Reduced.Description,
				ExcessAmount: money(s.Royalties.Reduced.ExcessAmount),
				Rate:         money(s.Royalties.Reduced.Rate),
			},
			Total: money(s.Royalties.Total),
		},
		Fees: api.Fees{
			FixedFee:             money(s.Fees.FixedFee),
			NationalAccounts:     money(s.Fees.NationalAccounts),
			NationalBrandFund:    MapBrandFundFeeDomainToApi(s.Fees.NationalBrandFund),
			NationalBrandReduced: money(s.Fees.NationalBrandReduced),
			Total:                money(s.Fees.Total),
		},
		GrandTotalPayable: money(s.GrandTotalPayable),
		Warnings:          s.Warnings,
	}
}

func MapVolumeReportDomainToApi(r domain.VolumeReport) api.VolumeReport {
	lines := make([]api.VolumeLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, api.VolumeLine{
			Kind:      string(l.Kind),
			Label:     l.Label,
			Indent:    l.Indent,
			LastMonth: money(l.LastMonth),
			YTD:       money(l.YTD),
		})
	}
	return api.VolumeReport{
		Title:     r.Title,
		Basis:     r.Basis,
		Currency:  r.Currency,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Lines:     lines,
	}
}

func MapFranchiseProfileDomainToApi(p domain.FranchiseProfile) api.Franchise {
	return api.Franchise{
		Profile:    p.Name,
		Number:     p.Number,
		Department: p.Department,
		Owner:      p.Owner,
	}
}
