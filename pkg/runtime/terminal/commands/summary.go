package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/de-tools/royalty-atlas/pkg/models/domain"
	"github.com/de-tools/royalty-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/royalty-atlas/pkg/services/billing"
	"github.com/spf13/cobra"
)

// ServiceProvider builds the billing service once the persistent flags are
// parsed.
type ServiceProvider func(cmd *cobra.Command) (billing.Service, error)

type SummaryCmd struct {
	lastMonthPath string
	ytdPath       string
	profile       string
	franchise     string
	department    string
	owner         string
	year          int
	month         int
	format        string
	service       ServiceProvider
	reporter      *export.Reporter
}

func NewSummaryCmd(service ServiceProvider, reporter *export.Reporter) *cobra.Command {
	sc := &SummaryCmd{service: service, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Calculate the royalty payment summary for a period",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.lastMonthPath, "last-month", "", "Path to the last month report JSON")
	cmd.Flags().StringVar(&sc.ytdPath, "ytd", "", "Path to the year-to-date report JSON")
	cmd.Flags().StringVar(&sc.profile, "profile", "", "Franchise profile name from the profiles file")
	cmd.Flags().StringVar(&sc.franchise, "franchise", "", "Franchise number")
	cmd.Flags().StringVar(&sc.department, "department", "", "Department name")
	cmd.Flags().StringVar(&sc.owner, "owner", "", "Owner name")
	cmd.Flags().IntVar(&sc.year, "year", 0, "Period year (default: from the last month report)")
	cmd.Flags().IntVar(&sc.month, "month", 0, "Period month (default: from the last month report)")
	cmd.Flags().StringVar(&sc.format, "format", export.FormatText, "Output format: text or json")

	_ = cmd.MarkFlagRequired("last-month")
	_ = cmd.MarkFlagRequired("ytd")

	return cmd
}

func (sc *SummaryCmd) run(cmd *cobra.Command, _ []string) error {
	if err := export.ValidateFormat(sc.format); err != nil {
		return err
	}

	lastMonth, ytd, err := loadReports(sc.lastMonthPath, sc.ytdPath)
	if err != nil {
		return err
	}

	svc, err := sc.service(cmd)
	if err != nil {
		return err
	}

	summary, err := svc.PaymentSummary(cmd.Context(), billing.Input{
		Profile: sc.profile,
		Franchise: domain.FranchiseInfo{
			Number:     sc.franchise,
			Department: sc.department,
			Owner:      sc.owner,
		},
		Period:    domain.Period{Month: sc.month, Year: sc.year},
		LastMonth: lastMonth,
		YTD:       ytd,
	})
	if err != nil {
		return fmt.Errorf("failed to calculate payment summary: %w", err)
	}

	return sc.reporter.HandleSummary(summary, sc.format)
}

func loadReports(lastMonthPath, ytdPath string) (*domain.Report, *domain.Report, error) {
	lastMonth, err := loadReport(lastMonthPath)
	if err != nil {
		return nil, nil, err
	}
	ytd, err := loadReport(ytdPath)
	if err != nil {
		return nil, nil, err
	}
	return lastMonth, ytd, nil
}

func loadReport(path string) (*domain.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %s: %w", path, err)
	}
	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to parse report %s: %w", path, err)
	}
	return &report, nil
}
