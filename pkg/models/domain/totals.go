package domain

import (
	"maps"
	"strings"

	"github.com/shopspring/decimal"
)

// PathSeparator joins path segments when a path is displayed.
const PathSeparator = "::"

// segments are stored joined by a control character so that names containing
// the display separator never collide
const segmentSep = "\x1f"

// Path is the ordered sequence of category/subcategory/item names leading to a
// report line. It is comparable and can be used as a map key.
type Path struct {
	joined string
}

func NewPath(segments ...string) Path {
	return Path{joined: strings.Join(segments, segmentSep)}
}

// Append returns a new path with name added as the last segment.
func (p Path) Append(name string) Path {
	if p.joined == "" {
		return Path{joined: name}
	}
	return Path{joined: p.joined + segmentSep + name}
}

func (p Path) IsRoot() bool {
	return p.joined == ""
}

func (p Path) Segments() []string {
	if p.joined == "" {
		return nil
	}
	return strings.Split(p.joined, segmentSep)
}

func (p Path) String() string {
	return strings.ReplaceAll(p.joined, segmentSep, PathSeparator)
}

type TotalKind int

const (
	// KindLabel is the verbatim label of a Summary row (category, subcategory
	// or grand totals).
	KindLabel TotalKind = iota
	// KindData is a leaf item under its full path.
	KindData
	// KindHeader is an amount attached to a subcategory header and not to any
	// of its items.
	KindHeader
)

func (k TotalKind) String() string {
	switch k {
	case KindData:
		return "DATA"
	case KindHeader:
		return "HEADER"
	default:
		return "LABEL"
	}
}

type TotalKey struct {
	Kind TotalKind
	Path Path
}

func DataKey(segments ...string) TotalKey {
	return TotalKey{Kind: KindData, Path: NewPath(segments...)}
}

func HeaderKey(segments ...string) TotalKey {
	return TotalKey{Kind: KindHeader, Path: NewPath(segments...)}
}

func LabelKey(label string) TotalKey {
	return TotalKey{Kind: KindLabel, Path: NewPath(label)}
}

func (k TotalKey) String() string {
	if k.Kind == KindLabel {
		return k.Path.String()
	}
	return k.Kind.String() + PathSeparator + k.Path.String()
}

// Totals maps tagged keys to amounts extracted from one report.
type Totals map[TotalKey]decimal.Decimal

// Get returns the amount for key, or zero.
func (t Totals) Get(key TotalKey) decimal.Decimal {
	if v, ok := t[key]; ok {
		return v
	}
	return decimal.Zero
}

func (t Totals) Data(segments ...string) decimal.Decimal {
	return t.Get(DataKey(segments...))
}

func (t Totals) Header(segments ...string) decimal.Decimal {
	return t.Get(HeaderKey(segments...))
}

func (t Totals) Label(label string) decimal.Decimal {
	return t.Get(LabelKey(label))
}

// Merge copies other into t. Keys present in both take the value from other.
func (t Totals) Merge(other Totals) {
	maps.Copy(t, other)
}

// LabeledAmount is a named amount in document order, such as a Summary label
// or a column title paired with its aggregate value.
type LabeledAmount struct {
	Label  string
	Amount decimal.Decimal
}
