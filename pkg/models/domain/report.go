package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

const (
	RowTypeSection = "Section"
	RowTypeData    = "Data"

	GroupGrandTotal = "GrandTotal"

	ReportNameClassSales = "ClassSales"
)

// Report is an accounting-system report export. Generic reports carry a nested
// Section/Data row tree; ClassSales reports carry one column per class and a
// single aggregate row in the GrandTotal section.
type Report struct {
	Header  ReportHeader `json:"Header"`
	Columns Columns      `json:"Columns"`
	Rows    Rows         `json:"Rows"`
}

type ReportHeader struct {
	Time        string      `json:"Time,omitempty"`
	ReportName  string      `json:"ReportName,omitempty"`  // ClassSales
	DateMacro   string      `json:"DateMacro,omitempty"`   // last month
	ReportBasis string      `json:"ReportBasis,omitempty"` // Cash
	StartPeriod string      `json:"StartPeriod,omitempty"` // 2025-05-01
	EndPeriod   string      `json:"EndPeriod,omitempty"`   // 2025-05-31
	Currency    string      `json:"Currency,omitempty"`    // USD
	Department  string      `json:"Department,omitempty"`
	Class       string      `json:"Class,omitempty"`
	Option      []NameValue `json:"Option,omitempty"`
}

type NameValue struct {
	Name  string `json:"Name"`
	Value string `json:"Value"`
}

type Columns struct {
	Column []Column `json:"Column,omitempty"`
}

type Column struct {
	ColTitle string `json:"ColTitle"`
	ColType  string `json:"ColType,omitempty"`
}

type Rows struct {
	Row []Row `json:"Row,omitempty"`
}

type Row struct {
	Type    string    `json:"type,omitempty"`
	Group   string    `json:"group,omitempty"`
	Header  *ColRow   `json:"Header,omitempty"`
	Rows    *Rows     `json:"Rows,omitempty"`
	Summary *ColRow   `json:"Summary,omitempty"`
	ColData []ColData `json:"ColData,omitempty"`
}

type ColRow struct {
	ColData []ColData `json:"ColData"`
}

type ColData struct {
	Value CellValue `json:"value"`
	ID    string    `json:"id,omitempty"`
}

// CellValue is the raw text of a report cell. Exports are not consistent about
// quoting, so numbers and null are accepted and kept as text.
type CellValue string

func (c *CellValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = CellValue(s)
		return nil
	}
	// numbers and booleans are kept verbatim
	if _, err := strconv.ParseFloat(string(data), 64); err == nil || string(data) == "true" || string(data) == "false" {
		*c = CellValue(data)
		return nil
	}
	*c = ""
	return nil
}

func (c CellValue) String() string {
	return string(c)
}

// First returns the first cell of the row, or "" when the row is empty.
func (r *ColRow) First() string {
	if r == nil || len(r.ColData) == 0 {
		return ""
	}
	return r.ColData[0].Value.String()
}

// Last returns the last cell of the row, or "" when the row is empty.
func (r *ColRow) Last() string {
	if r == nil || len(r.ColData) == 0 {
		return ""
	}
	return r.ColData[len(r.ColData)-1].Value.String()
}

// Children returns the nested rows, or nil.
func (r Row) Children() []Row {
	if r.Rows == nil {
		return nil
	}
	return r.Rows.Row
}

// IsData reports whether the row is an item row, either explicitly typed or a
// flat row with cells and neither a Header nor a Summary.
func (r Row) IsData() bool {
	if r.Type == RowTypeData {
		return true
	}
	return r.Type != RowTypeSection && len(r.ColData) > 0 && r.Summary == nil && r.Header == nil
}

func (r Row) IsSection() bool {
	return r.Type == RowTypeSection
}
