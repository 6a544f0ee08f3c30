package domain

// Category is a top-level section of a report that holds at least one
// subcategory with items.
type Category struct {
	Key           string
	Name          string
	Subcategories []Subcategory
}

type Subcategory struct {
	Key   string
	Name  string // indented display name
	Items []string
}

type Structure []Category
