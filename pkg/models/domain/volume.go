package domain

import "github.com/shopspring/decimal"

type VolumeLineKind string

const (
	VolumeLineCategory      VolumeLineKind = "category"
	VolumeLineSubcategory   VolumeLineKind = "subcategory"
	VolumeLineItem          VolumeLineKind = "item"
	VolumeLineSubtotal      VolumeLineKind = "subtotal"
	VolumeLineCategoryTotal VolumeLineKind = "category_total"
	VolumeLineGrandTotal    VolumeLineKind = "grand_total"
)

type VolumeLine struct {
	Kind      VolumeLineKind
	Label     string
	Indent    int
	LastMonth decimal.Decimal
	YTD       decimal.Decimal
}

// VolumeReport is the line-by-line royalty volume calculation built from the
// merged structure of the last-month and year-to-date reports.
type VolumeReport struct {
	Title     string
	Basis     string
	Currency  string
	StartDate string
	EndDate   string
	Lines     []VolumeLine
}
