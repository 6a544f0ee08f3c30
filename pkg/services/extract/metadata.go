package extract

import (
	"strconv"
	"strings"

	"github.com/de-tools/royalty-atlas/pkg/models/domain"
)

const optionNoReportData = "NoReportData"

type ReportMetadata struct {
	ReportName  string
	ReportBasis string
	StartPeriod string
	EndPeriod   string
	Currency    string
	Time        string
	DateMacro   string
	Department  string
	Class       string
}

// Metadata returns the report header with the defaults the accounting system
// implies when a field is missing.
func Metadata(report *domain.Report) ReportMetadata {
	if report == nil {
		return ReportMetadata{ReportBasis: "Cash", Currency: "USD"}
	}
	h := report.Header
	meta := ReportMetadata{
		ReportName:  h.ReportName,
		ReportBasis: h.ReportBasis,
		StartPeriod: h.StartPeriod,
		EndPeriod:   h.EndPeriod,
		Currency:    h.Currency,
		Time:        h.Time,
		DateMacro:   h.DateMacro,
		Department:  h.Department,
		Class:       h.Class,
	}
	if meta.ReportBasis == "" {
		meta.ReportBasis = "Cash"
	}
	if meta.Currency == "" {
		meta.Currency = "USD"
	}
	return meta
}

// HasData is false when the header declares the report empty.
func HasData(report *domain.Report) bool {
	if report == nil {
		return false
	}
	for _, opt := range report.Header.Option {
		if opt.Name == optionNoReportData && strings.EqualFold(strings.TrimSpace(opt.Value), "true") {
			return false
		}
	}
	return true
}

// Period parses the month and year of the report end date (YYYY-MM-DD).
func Period(report *domain.Report) (domain.Period, bool) {
	if report == nil {
		return domain.Period{}, false
	}
	parts := strings.Split(strings.TrimSpace(report.Header.EndPeriod), "-")
	if len(parts) < 2 {
		return domain.Period{}, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return domain.Period{}, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return domain.Period{}, false
	}
	return domain.Period{Month: month, Year: year}, true
}
