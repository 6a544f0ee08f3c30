package extract

import (
	"strings"

	"github.com/de-tools/royalty-atlas/pkg/models/domain"
)

// noiseLabels are report lines that are never revenue items.
var noiseLabels = map[string]struct{}{
	"Interest & Credit Card Fees": {},
	"SD - Excise Tax":             {},
}

func isNoise(name string) bool {
	_, ok := noiseLabels[name]
	return ok
}

// ExtractTotals walks the row tree of a report and returns every item amount
// under its full path, every subcategory header amount, and every Summary
// total under its verbatim label.
func ExtractTotals(report *domain.Report) domain.Totals {
	totals := domain.Totals{}
	if report == nil {
		return totals
	}
	for _, row := range report.Rows.Row {
		totals.Merge(walkRow(row, domain.Path{}))
	}
	return totals
}

func walkRow(row domain.Row, parent domain.Path) domain.Totals {
	switch {
	case row.IsSection():
		return walkSection(row, parent)
	case row.IsData():
		return walkData(row, parent)
	default:
		return walkUntyped(row, parent)
	}
}

func walkSection(row domain.Row, parent domain.Path) domain.Totals {
	totals := domain.Totals{}

	name := strings.TrimSpace(row.Header.First())
	path := parent.Append(name)

	if row.Header != nil && len(row.Header.ColData) > 0 && !parent.IsRoot() {
		if amount := ParseAmount(row.Header.Last()); !amount.IsZero() {
			totals[domain.TotalKey{Kind: domain.KindHeader, Path: path}] = amount
		}
	}

	for _, child := range row.Children() {
		totals.Merge(walkRow(child, path))
	}

	totals.Merge(summaryTotal(row.Summary))
	return totals
}

func walkData(row domain.Row, parent domain.Path) domain.Totals {
	if len(row.ColData) == 0 {
		return nil
	}
	cells := domain.ColRow{ColData: row.ColData}
	item := strings.TrimSpace(cells.First())
	if item == "" || isNoise(item) {
		return nil
	}
	return domain.Totals{
		{Kind: domain.KindData, Path: parent.Append(item)}: ParseAmount(cells.Last()),
	}
}

func walkUntyped(row domain.Row, parent domain.Path) domain.Totals {
	totals := summaryTotal(row.Summary)
	for _, child := range row.Children() {
		totals.Merge(walkRow(child, parent))
	}
	return totals
}

func summaryTotal(summary *domain.ColRow) domain.Totals {
	totals := domain.Totals{}
	if summary == nil || len(summary.ColData) == 0 {
		return totals
	}
	label := strings.TrimSpace(summary.First())
	if label == "" {
		return totals
	}
	totals[domain.LabelKey(label)] = ParseAmount(summary.Last())
	return totals
}

// SummaryLabels returns every Summary label of the report with its amount, in
// document order. Later duplicates are kept so that callers see what the
// report shows.
func SummaryLabels(report *domain.Report) []domain.LabeledAmount {
	if report == nil {
		return nil
	}
	var labels []domain.LabeledAmount
	var visit func(rows []domain.Row)
	visit = func(rows []domain.Row) {
		for _, row := range rows {
			if row.IsData() {
				continue
			}
			visit(row.Children())
			if label := strings.TrimSpace(row.Summary.First()); label != "" {
				labels = append(labels, domain.LabeledAmount{
					Label:  label,
					Amount: ParseAmount(row.Summary.Last()),
				})
			}
		}
	}
	visit(report.Rows.Row)
	return labels
}
