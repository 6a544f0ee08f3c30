package extract

import (
	"encoding/json"
	"testing"

	"github.com/de-tools/royalty-atlas/pkg/models/domain"
	"github.com/stretchr/testify/require"
)

const treeReportJSON = `{
  "Header": {
    "ReportName": "ProfitAndLoss",
    "ReportBasis": "Accrual",
    "StartPeriod": "2025-05-01",
    "EndPeriod": "2025-05-31",
    "Currency": "USD",
    "Option": [{"Name": "NoReportData", "Value": "false"}]
  },
  "Columns": {"Column": [{"ColTitle": "", "ColType": "Account"}, {"ColTitle": "Total", "ColType": "Money"}]},
  "Rows": {"Row": [
    {
      "type": "Section",
      "group": "Income",
      "Header": {"ColData": [{"value": "Income"}, {"value": ""}]},
      "Rows": {"Row": [
        {
          "type": "Section",
          "Header": {"ColData": [{"value": "Water"}, {"value": "150.00"}]},
          "Rows": {"Row": [
            {"type": "Data", "ColData": [{"value": "Emergency Services", "id": "41"}, {"value": "1,000.00"}]},
            {"type": "Data", "ColData": [{"value": "Drying"}, {"value": 500}]},
            {"type": "Data", "ColData": [{"value": "Interest & Credit Card Fees"}, {"value": "12.00"}]}
          ]},
          "Summary": {"ColData": [{"value": "Total Water"}, {"value": "1,650.00"}]}
        },
        {
          "type": "Section",
          "Header": {"ColData": [{"value": "Fire"}, {"value": ""}]},
          "Rows": {"Row": [
            {"type": "Data", "ColData": [{"value": "Emergency Services"}, {"value": "300.00"}]}
          ]},
          "Summary": {"ColData": [{"value": "Total Fire"}, {"value": "300.00"}]}
        },
        {
          "type": "Section",
          "Header": {"ColData": [{"value": "SD - Excise Tax"}, {"value": ""}]},
          "Rows": {"Row": [
            {"type": "Data", "ColData": [{"value": "Excise"}, {"value": "8.00"}]}
          ]}
        }
      ]},
      "Summary": {"ColData": [{"value": "Total Income"}, {"value": "1,950.00"}]}
    },
    {
      "type": "Section",
      "group": "NetIncome",
      "Summary": {"ColData": [{"value": "Net Income"}, {"value": "1,950.00"}]}
    }
  ]}
}`

const labeledTreeReportJSON = `{
  "Header": {"ReportName": "ProfitAndLoss", "EndPeriod": "2025-06-30"},
  "Rows": {"Row": [
    {
      "type": "Section",
      "Header": {"ColData": [{"value": "Income"}]},
      "Rows": {"Row": [
        {
          "type": "Section",
          "Header": {"ColData": [{"value": "Commercial - Water"}]},
          "Rows": {"Row": [{"type": "Data", "ColData": [{"value": "Mitigation"}, {"value": "10000"}]}]},
          "Summary": {"ColData": [{"value": "Total Commercial - Water"}, {"value": "10,000.00"}]}
        },
        {
          "type": "Section",
          "Header": {"ColData": [{"value": "Residential - Water"}]},
          "Rows": {"Row": [{"type": "Data", "ColData": [{"value": "Mitigation"}, {"value": "2000"}]}]},
          "Summary": {"ColData": [{"value": "Total Residential - Water"}, {"value": "2,000.00"}]}
        }
      ]},
      "Summary": {"ColData": [{"value": "Total 5 - SUBCONTRACT"}, {"value": "5,000.00"}]}
    }
  ]}
}`

const classSalesReportJSON = `{
  "Header": {
    "ReportName": "ClassSales",
    "ReportBasis": "Cash",
    "StartPeriod": "2025-05-01",
    "EndPeriod": "2025-05-31",
    "Currency": "USD"
  },
  "Columns": {"Column": [
    {"ColTitle": "", "ColType": "Account"},
    {"ColTitle": "Commercial - Water", "ColType": "Money"},
    {"ColTitle": "Residential - Water", "ColType": "Money"},
    {"ColTitle": "Total 1 - WATER", "ColType": "Money"},
    {"ColTitle": "Total 2 - FIRE", "ColType": "Money"},
    {"ColTitle": "Commercial - Subcontract", "ColType": "Money"},
    {"ColTitle": "Total 5 - SUBCONTRACT", "ColType": "Money"},
    {"ColTitle": "TOTAL", "ColType": "Money"}
  ]},
  "Rows": {"Row": [
    {
      "type": "Section",
      "Header": {"ColData": [{"value": "Sales"}]},
      "Rows": {"Row": [
        {"type": "Data", "ColData": [{"value": "Services"}, {"value": "10000"}, {"value": "2000"}, {"value": "12000"}, {"value": "700"}, {"value": "5000"}, {"value": "5000"}, {"value": "17700"}]}
      ]}
    },
    {
      "type": "Section",
      "group": "GrandTotal",
      "Summary": {"ColData": [
        {"value": "TOTAL"},
        {"value": "10,000.00"},
        {"value": "2,000.00"},
        {"value": "12,000.00"},
        {"value": "700.00"},
        {"value": "5,000.00"},
        {"value": "5,000.00"},
        {"value": "17,700.00"}
      ]}
    }
  ]}
}`

func loadReport(t *testing.T, raw string) *domain.Report {
	t.Helper()
	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(raw), &report))
	return &report
}
