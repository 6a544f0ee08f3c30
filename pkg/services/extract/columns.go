package extract

import (
	"regexp"
	"slices"
	"strings"

	"github.com/de-tools/royalty-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

const totalPrefix = "Total "

type qualifier int

const (
	qualifierCommercial qualifier = iota
	qualifierResidential
	qualifierTotal
)

// columnRule lists, per qualifier, the title patterns that identify a
// category column. Patterns are tried in order against each candidate title.
type columnRule struct {
	category domain.RevenueCategory
	patterns map[qualifier][]*regexp.Regexp
}

// titlePrefix matches a literal title at the start of a column title,
// ignoring case.
func titlePrefix(literal string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(literal))
}

func newColumnRule(category domain.RevenueCategory, name, code string) columnRule {
	return columnRule{
		category: category,
		patterns: map[qualifier][]*regexp.Regexp{
			qualifierCommercial: {
				titlePrefix("Total Commercial - " + name),
				titlePrefix("Commercial - " + name),
			},
			qualifierResidential: {
				titlePrefix("Total Residential - " + name),
				titlePrefix("Residential - " + name),
			},
			qualifierTotal: {
				titlePrefix("Total " + code),
			},
		},
	}
}

// categoryColumns is the ordered matcher table for the six revenue
// categories. Report sources name these columns inconsistently across
// versions; add variants here rather than in the matching code.
var categoryColumns = []columnRule{
	newColumnRule(domain.CategoryWater, "Water", "1 - WATER"),
	newColumnRule(domain.CategoryFire, "Fire", "2 - FIRE"),
	newColumnRule(domain.CategoryMoldBio, "Mold/Bio Hazard", "3 - MOLD/BIO HAZARD"),
	newColumnRule(domain.CategoryOther, "Other", "4 - OTHER"),
	newColumnRule(domain.CategorySubcontract, "Subcontract", "5 - SUBCONTRACT"),
	newColumnRule(domain.CategoryReconstruction, "Reconstruction", "6 - RECONSTRUCTION"),
}

type candidate struct {
	title string
	index int
	value decimal.Decimal
}

// orderCandidates puts titles starting with "Total " first and keeps document
// order otherwise.
func orderCandidates(candidates []candidate) []candidate {
	ordered := slices.Clone(candidates)
	slices.SortStableFunc(ordered, func(a, b candidate) int {
		aTotal, bTotal := strings.HasPrefix(a.title, totalPrefix), strings.HasPrefix(b.title, totalPrefix)
		switch {
		case aTotal && !bTotal:
			return -1
		case !aTotal && bTotal:
			return 1
		default:
			return a.index - b.index
		}
	})
	return ordered
}

func findColumn(candidates []candidate, patterns []*regexp.Regexp) (candidate, bool) {
	for _, c := range candidates {
		for _, p := range patterns {
			if p.MatchString(c.title) {
				return c, true
			}
		}
	}
	return candidate{}, false
}

func matchCategories(candidates []candidate) domain.CategoryAmounts {
	ordered := orderCandidates(candidates)
	amounts := domain.NewCategoryAmounts()

	for _, rule := range categoryColumns {
		var split domain.RevenueSplit
		commercial, hasCommercial := findColumn(ordered, rule.patterns[qualifierCommercial])
		if hasCommercial {
			split.Commercial = commercial.value
		}
		residential, hasResidential := findColumn(ordered, rule.patterns[qualifierResidential])
		if hasResidential {
			split.Residential = residential.value
		}
		if hasCommercial || hasResidential {
			split.Total = split.Commercial.Add(split.Residential)
		} else if c, ok := findColumn(ordered, rule.patterns[qualifierTotal]); ok {
			split.Total = c.value
		}
		amounts[rule.category] = split
	}
	return amounts
}

// ColumnTitles maps every non-blank column title to its index. When a title
// repeats, the last index wins.
func ColumnTitles(report *domain.Report) map[string]int {
	titles := map[string]int{}
	if report == nil {
		return titles
	}
	for i, col := range report.Columns.Column {
		if col.ColTitle != "" {
			titles[col.ColTitle] = i
		}
	}
	return titles
}

// GrandTotalRow returns the aggregate cells of the GrandTotal section.
func GrandTotalRow(report *domain.Report) ([]domain.ColData, bool) {
	if report == nil {
		return nil, false
	}
	for _, row := range report.Rows.Row {
		if row.IsSection() && row.Group == domain.GroupGrandTotal {
			if row.Summary == nil || len(row.Summary.ColData) == 0 {
				return nil, false
			}
			return row.Summary.ColData, true
		}
	}
	return nil, false
}

// ExtractColumnTotals reads the six revenue categories from a ClassSales
// report, where each category/qualifier pair is a column and the GrandTotal
// section holds the aggregate row. Categories that cannot be found are zero.
func ExtractColumnTotals(report *domain.Report) domain.CategoryAmounts {
	totalRow, ok := GrandTotalRow(report)
	if !ok {
		return domain.NewCategoryAmounts()
	}

	var candidates []candidate
	for title, idx := range ColumnTitles(report) {
		if idx >= len(totalRow) {
			continue
		}
		candidates = append(candidates, candidate{
			title: title,
			index: idx,
			value: ParseAmount(totalRow[idx].Value.String()),
		})
	}
	return matchCategories(candidates)
}

// MatchLabels applies the category matcher table to labeled amounts in
// document order, such as the Summary labels of a nested report.
func MatchLabels(labels []domain.LabeledAmount) domain.CategoryAmounts {
	candidates := make([]candidate, 0, len(labels))
	for i, l := range labels {
		candidates = append(candidates, candidate{title: l.Label, index: i, value: l.Amount})
	}
	return matchCategories(candidates)
}

// HasCategoryColumns reports whether any column title of the report matches
// the category matcher table.
func HasCategoryColumns(report *domain.Report) bool {
	for title := range ColumnTitles(report) {
		for _, rule := range categoryColumns {
			for _, patterns := range rule.patterns {
				for _, p := range patterns {
					if p.MatchString(title) {
						return true
					}
				}
			}
		}
	}
	return false
}
