package extract

import (
	"maps"
	"slices"
	"strings"

	"github.com/de-tools/royalty-atlas/pkg/models/domain"
)

const subcategoryIndent = "   "

// ExtractStructure returns the categories, subcategories and items of a
// report. Aggregate rows ("Total ...") and noise labels are not structural and
// are left out, as is every node without at least one item below it.
func ExtractStructure(report *domain.Report) domain.Structure {
	structure := domain.Structure{}
	if report == nil {
		return structure
	}

	for _, mainRow := range report.Rows.Row {
		if !mainRow.IsSection() {
			continue
		}
		name := sectionName(mainRow)
		if !isStructural(name) {
			continue
		}

		category := domain.Category{Key: name, Name: name}
		for _, subRow := range mainRow.Children() {
			if !subRow.IsSection() {
				continue
			}
			subName := sectionName(subRow)
			if !isStructural(subName) {
				continue
			}
			items := dataItems(subRow.Children())
			if len(items) == 0 {
				continue
			}
			category.Subcategories = append(category.Subcategories, domain.Subcategory{
				Key:   subName,
				Name:  subcategoryIndent + subName,
				Items: items,
			})
		}

		if len(category.Subcategories) > 0 {
			structure = append(structure, category)
		}
	}
	return structure
}

func sectionName(row domain.Row) string {
	return strings.TrimSpace(row.Header.First())
}

func isStructural(name string) bool {
	return name != "" && !isNoise(name) && !strings.HasPrefix(name, "Total")
}

func dataItems(rows []domain.Row) []string {
	var items []string
	for _, row := range rows {
		if !row.IsData() || len(row.ColData) == 0 {
			continue
		}
		name := strings.TrimSpace(row.ColData[0].Value.String())
		if name == "" || isNoise(name) {
			continue
		}
		items = append(items, name)
	}
	return items
}

type mergedSubcategory struct {
	name  string
	items map[string]struct{}
}

type mergedCategory struct {
	name          string
	subcategories map[string]*mergedSubcategory
}

// MergeStructures unions two structures by category key, subcategory key and
// item name. The result is sorted at every level, so the merge is idempotent
// and does not depend on argument order.
func MergeStructures(structures ...domain.Structure) domain.Structure {
	merged := map[string]*mergedCategory{}

	for _, structure := range structures {
		for _, cat := range structure {
			mc, ok := merged[cat.Key]
			if !ok {
				mc = &mergedCategory{name: cat.Name, subcategories: map[string]*mergedSubcategory{}}
				merged[cat.Key] = mc
			}
			for _, sub := range cat.Subcategories {
				ms, ok := mc.subcategories[sub.Key]
				if !ok {
					ms = &mergedSubcategory{name: sub.Name, items: map[string]struct{}{}}
					mc.subcategories[sub.Key] = ms
				}
				for _, item := range sub.Items {
					ms.items[item] = struct{}{}
				}
			}
		}
	}

	result := domain.Structure{}
	for _, catKey := range slices.Sorted(maps.Keys(merged)) {
		mc := merged[catKey]
		category := domain.Category{Key: catKey, Name: mc.name}
		for _, subKey := range slices.Sorted(maps.Keys(mc.subcategories)) {
			ms := mc.subcategories[subKey]
			category.Subcategories = append(category.Subcategories, domain.Subcategory{
				Key:   subKey,
				Name:  ms.name,
				Items: slices.Sorted(maps.Keys(ms.items)),
			})
		}
		result = append(result, category)
	}
	return result
}
