package extract

import (
	"testing"

	"github.com/de-tools/royalty-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestDetectShape(t *testing.T) {
	tests := []struct {
		name     string
		report   *domain.Report
		expected Shape
	}{
		{name: "nil report", report: nil, expected: ShapeTree},
		{name: "nested report", report: loadReport(t, treeReportJSON), expected: ShapeTree},
		{name: "class sales by name", report: loadReport(t, classSalesReportJSON), expected: ShapeColumns},
		{
			name: "unnamed report with category columns",
			report: &domain.Report{Columns: domain.Columns{Column: []domain.Column{
				{ColTitle: ""}, {ColTitle: "Total 2 - FIRE"},
			}}},
			expected: ShapeColumns,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DetectShape(tc.report))
		})
	}
}

func TestExtract(t *testing.T) {
	t.Run("column report", func(t *testing.T) {
		// Given a ClassSales report
		report := loadReport(t, classSalesReportJSON)

		// When it is extracted
		ex := Extract(report)

		// Then categories come from the columns and the tree is still walked
		assert.Equal(t, ShapeColumns, ex.Shape)
		assert.True(t, ex.HasData)
		assert.Equal(t, "12000.00", ex.Categories[domain.CategoryWater].Total.StringFixed(2))
		assert.Equal(t, "17700.00", ex.Totals.Label("TOTAL").StringFixed(2))
		assert.Equal(t, "17700.00", ex.Totals.Data("Sales", "Services").StringFixed(2))
	})

	t.Run("tree report", func(t *testing.T) {
		ex := Extract(loadReport(t, labeledTreeReportJSON))

		assert.Equal(t, ShapeTree, ex.Shape)
		assert.Equal(t, "12000.00", ex.Categories[domain.CategoryWater].Total.StringFixed(2))
		assert.Len(t, ex.Structure, 1)
	})
}
