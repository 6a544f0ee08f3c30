package summary

import (
	"testing"

	"github.com/de-tools/royalty-atlas/pkg/models/domain"
	"github.com/de-tools/royalty-atlas/pkg/services/extract"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestBuildVolumeReport(t *testing.T) {
	// Given a last month with one item and a year that also saw a second one
	lastMonth := extract.Extraction{
		Metadata: extract.ReportMetadata{ReportBasis: "Cash", Currency: "USD", StartPeriod: "2025-05-01", EndPeriod: "2025-05-31"},
		Totals: domain.Totals{
			domain.DataKey("Income", "Water", "Mitigation"): amount("1000"),
			domain.HeaderKey("Income", "Water"):             amount("50"),
			domain.LabelKey("Total Water"):                  amount("1050"),
			domain.LabelKey("Total Income"):                 amount("1050"),
			domain.LabelKey("TOTAL"):                        amount("1050"),
		},
		Structure: domain.Structure{
			{Key: "Income", Name: "Income", Subcategories: []domain.Subcategory{
				{Key: "Water", Name: "   Water", Items: []string{"Mitigation"}},
			}},
		},
	}
	ytd := extract.Extraction{
		Totals: domain.Totals{
			domain.DataKey("Income", "Water", "Mitigation"): amount("4000"),
			domain.DataKey("Income", "Water", "Drying"):     amount("600"),
			domain.LabelKey("Total Water"):                  amount("4600"),
			domain.LabelKey("Total Income"):                 amount("4600"),
			domain.LabelKey("TOTAL"):                        amount("4600"),
		},
		Structure: domain.Structure{
			{Key: "Income", Name: "Income", Subcategories: []domain.Subcategory{
				{Key: "Water", Name: "   Water", Items: []string{"Drying", "Mitigation"}},
			}},
		},
	}

	// When the volume report is built
	report := BuildVolumeReport("Royalty Volume", lastMonth, ytd)

	// Then every line of the merged structure is listed with both periods
	assert.Equal(t, "Royalty Volume", report.Title)
	assert.Equal(t, "Cash", report.Basis)
	assert.Equal(t, "2025-05-31", report.EndDate)

	type row struct {
		kind      domain.VolumeLineKind
		label     string
		lastMonth string
		ytd       string
	}
	expected := []row{
		{domain.VolumeLineCategory, "Income", "0.00", "0.00"},
		{domain.VolumeLineSubcategory, "Water", "50.00", "0.00"},
		{domain.VolumeLineItem, "Drying", "0.00", "600.00"},
		{domain.VolumeLineItem, "Mitigation", "1000.00", "4000.00"},
		{domain.VolumeLineSubtotal, "Total Water", "1050.00", "4600.00"},
		{domain.VolumeLineCategoryTotal, "Total Income", "1050.00", "4600.00"},
		{domain.VolumeLineGrandTotal, "TOTAL", "1050.00", "4600.00"},
	}
	require.Len(t, report.Lines, len(expected))
	for i, want := range expected {
		got := report.Lines[i]
		assert.Equal(t, want.kind, got.Kind, "line %d", i)
		assert.Equal(t, want.label, got.Label, "line %d", i)
		assert.Equal(t, want.lastMonth, got.LastMonth.StringFixed(2), "line %d", i)
		assert.Equal(t, want.ytd, got.YTD.StringFixed(2), "line %d", i)
	}
}

func TestBuildVolumeReport_Empty(t *testing.T) {
	report := BuildVolumeReport("Empty", extract.Extraction{}, extract.Extraction{})

	require.Len(t, report.Lines, 1)
	assert.Equal(t, domain.VolumeLineGrandTotal, report.Lines[0].Kind)
	assert.True(t, report.Lines[0].LastMonth.IsZero())
}
