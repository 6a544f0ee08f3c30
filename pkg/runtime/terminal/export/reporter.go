package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/royalty-atlas/pkg/adapters"
	"github.com/de-tools/royalty-atlas/pkg/models/domain"
	"github.com/de-tools/royalty-atlas/pkg/services/royalty"
	"github.com/shopspring/decimal"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q, expected %s or %s", format, FormatText, FormatJSON)
	}
}

type TableConfig struct {
	LabelWidth  int
	AmountWidth int
	IndentWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		LabelWidth:  44,
		AmountWidth: 16,
		IndentWidth: 3,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

var categoryTitles = map[domain.RevenueCategory]string{
	domain.CategoryWater:          "Water",
	domain.CategoryFire:           "Fire",
	domain.CategoryMoldBio:        "Mold/Bio-Hazard",
	domain.CategoryOther:          "Other",
	domain.CategorySubcontract:    "Subcontract",
	domain.CategoryReconstruction: "Reconstruction",
}

func (c *Reporter) funcMap() template.FuncMap {
	return template.FuncMap{
		"money": royalty.FormatMoney,
		"category": func(cat domain.RevenueCategory) string {
			if title, ok := categoryTitles[cat]; ok {
				return title
			}
			return string(cat)
		},
		"row": func(label string, amounts ...decimal.Decimal) string {
			var b strings.Builder
			fmt.Fprintf(&b, "| %-*s |", c.config.LabelWidth, label)
			for _, a := range amounts {
				fmt.Fprintf(&b, " %*s |", c.config.AmountWidth, royalty.FormatMoney(a))
			}
			return b.String()
		},
		"header": func(label string, columns ...string) string {
			var b strings.Builder
			fmt.Fprintf(&b, "| %-*s |", c.config.LabelWidth, label)
			for _, col := range columns {
				fmt.Fprintf(&b, " %*s |", c.config.AmountWidth, col)
			}
			return b.String()
		},
		"separator": func(columns int) string {
			return "+" + strings.Repeat("-", c.config.LabelWidth+2) + "+" +
				strings.Repeat(strings.Repeat("-", c.config.AmountWidth+2)+"+", columns)
		},
		"indent": func(level int, label string) string {
			return strings.Repeat(" ", level*c.config.IndentWidth) + strings.TrimSpace(label)
		},
	}
}

const summaryTemplate = `
Royalty Payment Summary
Franchise: {{.Franchise.Number}}  Department: {{.Franchise.Department}}  Owner: {{.Franchise.Owner}}
Period: {{printf "%02d" .Period.Month}}/{{.Period.Year}}

{{separator 3}}
{{header "Category" "This Month" "YTD" "Royalty"}}
{{separator 3}}
{{range .Categories}}{{row (category .Category) .Total.ThisMonth .Total.YTD .Total.Royalty}}
{{row "   Commercial" .Commercial.ThisMonth .Commercial.YTD .Commercial.Royalty}}
{{row "   Residential" .Residential.ThisMonth .Residential.YTD .Residential.Royalty}}
{{end}}{{separator 3}}
{{row "Standard rate subtotal" .Subtotals.StandardRate.ThisMonth .Subtotals.StandardRate.YTD .Royalties.Standard.Amount}}
{{row "Reduced rate subtotal" .Subtotals.ReducedRate.ThisMonth .Subtotals.ReducedRate.YTD .Royalties.Reduced.Amount}}
{{row "Total" .Subtotals.Total.ThisMonth .Subtotals.Total.YTD .Royalties.Total}}
{{separator 3}}

Standard royalty: {{money .Royalties.Standard.Amount}} ({{.Royalties.Standard.Description}}; tier {{.Royalties.Standard.TierDescription}})
Reduced royalty:  {{money .Royalties.Reduced.Amount}} ({{.Royalties.Reduced.Description}})

Fixed fee:                    {{money .Fees.FixedFee}}
National accounts fee:        {{money .Fees.NationalAccounts}}
National brand fund fee:      {{money .Fees.NationalBrandFund.Amount}} ({{.Fees.NationalBrandFund.Description}})
Reduced brand fund fee:       {{money .Fees.NationalBrandReduced}}
Total fees:                   {{money .Fees.Total}}

Grand total payable:          {{money .GrandTotalPayable}}
{{if .Warnings}}
Warnings:
{{range .Warnings}}- {{.}}
{{end}}{{end}}`

const volumeTemplate = `
{{.Title}}
Basis: {{.Basis}}  Currency: {{.Currency}}{{if .StartDate}}  Period: {{.StartDate}} to {{.EndDate}}{{end}}

{{separator 2}}
{{header "" "Last Month" "Year to Date"}}
{{separator 2}}
{{range .Lines}}{{if or (eq .Kind "category") (eq .Kind "subcategory")}}{{header (indent .Indent .Label) "" ""}}
{{else}}{{row (indent .Indent .Label) .LastMonth .YTD}}
{{end}}{{end}}{{separator 2}}
`

func (c *Reporter) HandleSummary(summary domain.PaymentSummary, format string) error {
	if format == FormatJSON {
		return c.writeJSON(adapters.MapPaymentSummaryDomainToApi(summary))
	}
	return c.render("summary", summaryTemplate, summary)
}

func (c *Reporter) HandleVolume(report domain.VolumeReport, format string) error {
	if format == FormatJSON {
		return c.writeJSON(adapters.MapVolumeReportDomainToApi(report))
	}
	return c.render("volume", volumeTemplate, report)
}

func (c *Reporter) render(name, text string, data any) error {
	t, err := template.New(name).Funcs(c.funcMap()).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, data)
}

func (c *Reporter) writeJSON(v any) error {
	enc := json.NewEncoder(c.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
