package extract

import (
	"testing"

	"github.com/de-tools/royalty-atlas/pkg/models/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTotals_TreeReport(t *testing.T) {
	// Given a nested report with items, a header amount, noise and summaries
	report := loadReport(t, treeReportJSON)

	// When totals are extracted
	totals := ExtractTotals(report)

	// Then every item is keyed by its full path
	assert.Equal(t, "1000.00", totals.Data("Income", "Water", "Emergency Services").StringFixed(2))
	assert.Equal(t, "500.00", totals.Data("Income", "Water", "Drying").StringFixed(2))
	assert.Equal(t, "300.00", totals.Data("Income", "Fire", "Emergency Services").StringFixed(2))

	// And the non-zero subcategory header amount is kept apart from its items
	assert.Equal(t, "150.00", totals.Header("Income", "Water").StringFixed(2))
	_, hasFireHeader := totals[domain.HeaderKey("Income", "Fire")]
	assert.False(t, hasFireHeader)
	_, hasIncomeHeader := totals[domain.HeaderKey("Income")]
	assert.False(t, hasIncomeHeader)

	// And summaries are keyed by their verbatim label
	assert.Equal(t, "1650.00", totals.Label("Total Water").StringFixed(2))
	assert.Equal(t, "1950.00", totals.Label("Total Income").StringFixed(2))
	assert.Equal(t, "1950.00", totals.Label("Net Income").StringFixed(2))

	// And noise lines are never collected
	_, hasNoise := totals[domain.DataKey("Income", "Water", "Interest & Credit Card Fees")]
	assert.False(t, hasNoise)
	_, hasExcise := totals[domain.DataKey("Income", "SD - Excise Tax", "Excise")]
	assert.True(t, hasExcise, "items below a noise section are still walked")

	assert.Len(t, totals, 9)
}

func TestExtractTotals_SameItemUnderDifferentSubcategories(t *testing.T) {
	// Given the same item name below two subcategories
	report := loadReport(t, treeReportJSON)

	// When totals are extracted
	totals := ExtractTotals(report)

	// Then both amounts survive under distinct keys
	water := domain.DataKey("Income", "Water", "Emergency Services")
	fire := domain.DataKey("Income", "Fire", "Emergency Services")
	assert.NotEqual(t, water, fire)
	assert.False(t, totals[water].Equal(totals[fire]))
}

func TestExtractTotals_Idempotent(t *testing.T) {
	report := loadReport(t, treeReportJSON)

	first := ExtractTotals(report)
	second := ExtractTotals(report)

	assert.True(t, cmp.Equal(first, second))
}

func TestExtractTotals_ReturnsOwnedMap(t *testing.T) {
	// Given totals extracted from a report
	report := loadReport(t, treeReportJSON)
	first := ExtractTotals(report)

	// When the caller mutates the result
	first[domain.LabelKey("Total Water")] = decimal.NewFromInt(1)

	// Then a later extraction is unaffected
	second := ExtractTotals(report)
	assert.Equal(t, "1650.00", second.Label("Total Water").StringFixed(2))
}

func TestExtractTotals_EmptyReports(t *testing.T) {
	assert.Empty(t, ExtractTotals(nil))
	assert.Empty(t, ExtractTotals(&domain.Report{}))
}

func TestExtractTotals_UntypedRows(t *testing.T) {
	// Given rows without a type: a flat data row and a wrapper with a summary
	report := &domain.Report{Rows: domain.Rows{Row: []domain.Row{
		{ColData: []domain.ColData{{Value: "Misc"}, {Value: "25.00"}}},
		{
			Rows: &domain.Rows{Row: []domain.Row{
				{ColData: []domain.ColData{{Value: "Nested"}, {Value: "5"}}},
			}},
			Summary: &domain.ColRow{ColData: []domain.ColData{{Value: "Total Wrapper"}, {Value: "5.00"}}},
		},
	}}}

	// When totals are extracted
	totals := ExtractTotals(report)

	// Then flat rows are items at the root and wrappers do not add a path segment
	assert.Equal(t, "25.00", totals.Data("Misc").StringFixed(2))
	assert.Equal(t, "5.00", totals.Data("Nested").StringFixed(2))
	assert.Equal(t, "5.00", totals.Label("Total Wrapper").StringFixed(2))
}

func TestSummaryLabels_DocumentOrder(t *testing.T) {
	report := loadReport(t, treeReportJSON)

	labels := SummaryLabels(report)

	require.Len(t, labels, 4)
	got := make([]string, 0, len(labels))
	for _, l := range labels {
		got = append(got, l.Label)
	}
	assert.Equal(t, []string{"Total Water", "Total Fire", "Total Income", "Net Income"}, got)
	assert.Equal(t, "1650.00", labels[0].Amount.StringFixed(2))
}
