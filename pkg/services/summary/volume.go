package summary

import (
	"github.com/de-tools/royalty-atlas/pkg/models/domain"
	"github.com/de-tools/royalty-atlas/pkg/services/extract"
)

const grandTotalLabel = "TOTAL"

// BuildVolumeReport lays out every category, subcategory and item found in
// either report with its last-month and year-to-date amounts. Items missing
// from one report read as zero there.
func BuildVolumeReport(title string, lastMonth, ytd extract.Extraction) domain.VolumeReport {
	report := domain.VolumeReport{
		Title:     title,
		Basis:     lastMonth.Metadata.ReportBasis,
		Currency:  lastMonth.Metadata.Currency,
		StartDate: lastMonth.Metadata.StartPeriod,
		EndDate:   lastMonth.Metadata.EndPeriod,
	}

	line := func(kind domain.VolumeLineKind, label string, indent int, key domain.TotalKey) domain.VolumeLine {
		return domain.VolumeLine{
			Kind:      kind,
			Label:     label,
			Indent:    indent,
			LastMonth: lastMonth.Totals.Get(key),
			YTD:       ytd.Totals.Get(key),
		}
	}

	structure := extract.MergeStructures(lastMonth.Structure, ytd.Structure)
	for _, category := range structure {
		// category headers carry no amount of their own
		report.Lines = append(report.Lines, domain.VolumeLine{
			Kind:  domain.VolumeLineCategory,
			Label: category.Name,
		})

		for _, sub := range category.Subcategories {
			report.Lines = append(report.Lines,
				line(domain.VolumeLineSubcategory, sub.Key, 1, domain.HeaderKey(category.Key, sub.Key)))

			for _, item := range sub.Items {
				report.Lines = append(report.Lines,
					line(domain.VolumeLineItem, item, 2, domain.DataKey(category.Key, sub.Key, item)))
			}

			totalLabel := "Total " + sub.Key
			report.Lines = append(report.Lines,
				line(domain.VolumeLineSubtotal, totalLabel, 1, domain.LabelKey(totalLabel)))
		}

		totalLabel := "Total " + category.Key
		report.Lines = append(report.Lines,
			line(domain.VolumeLineCategoryTotal, totalLabel, 0, domain.LabelKey(totalLabel)))
	}

	report.Lines = append(report.Lines,
		line(domain.VolumeLineGrandTotal, grandTotalLabel, 0, domain.LabelKey(grandTotalLabel)))
	return report
}
