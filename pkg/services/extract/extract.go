// Package extract recovers amounts from accounting report exports. It handles
// the nested Section/Data report family and the column-oriented ClassSales
// family; every function is pure and safe for concurrent use.
package extract

import "github.com/de-tools/royalty-atlas/pkg/models/domain"

type Shape string

const (
	ShapeTree    Shape = "tree"
	ShapeColumns Shape = "columns"
)

// DetectShape picks the extractor family for a report. ClassSales reports are
// recognised by name, or by column titles that match a revenue category.
func DetectShape(report *domain.Report) Shape {
	if report == nil {
		return ShapeTree
	}
	if report.Header.ReportName == domain.ReportNameClassSales || HasCategoryColumns(report) {
		return ShapeColumns
	}
	return ShapeTree
}

// Extraction is everything the engine reads from one report.
type Extraction struct {
	Shape      Shape
	Metadata   ReportMetadata
	HasData    bool
	Totals     domain.Totals
	Structure  domain.Structure
	Categories domain.CategoryAmounts
}

func Extract(report *domain.Report) Extraction {
	shape := DetectShape(report)

	ex := Extraction{
		Shape:     shape,
		Metadata:  Metadata(report),
		HasData:   HasData(report),
		Totals:    ExtractTotals(report),
		Structure: ExtractStructure(report),
	}

	switch shape {
	case ShapeColumns:
		ex.Categories = ExtractColumnTotals(report)
	default:
		ex.Categories = MatchLabels(SummaryLabels(report))
	}
	return ex
}
