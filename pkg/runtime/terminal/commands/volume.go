package commands

import (
	"fmt"

	"github.com/de-tools/royalty-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/royalty-atlas/pkg/services/billing"
	"github.com/spf13/cobra"
)

type VolumeCmd struct {
	lastMonthPath string
	ytdPath       string
	title         string
	format        string
	service       ServiceProvider
	reporter      *export.Reporter
}

func NewVolumeCmd(service ServiceProvider, reporter *export.Reporter) *cobra.Command {
	vc := &VolumeCmd{service: service, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "volume",
		Short: "Build the royalty volume calculation report",
		RunE:  vc.run,
	}

	cmd.Flags().StringVar(&vc.lastMonthPath, "last-month", "", "Path to the last month report JSON")
	cmd.Flags().StringVar(&vc.ytdPath, "ytd", "", "Path to the year-to-date report JSON")
	cmd.Flags().StringVar(&vc.title, "title", "", "Report title")
	cmd.Flags().StringVar(&vc.format, "format", export.FormatText, "Output format: text or json")

	_ = cmd.MarkFlagRequired("last-month")
	_ = cmd.MarkFlagRequired("ytd")

	return cmd
}

func (vc *VolumeCmd) run(cmd *cobra.Command, _ []string) error {
	if err := export.ValidateFormat(vc.format); err != nil {
		return err
	}

	lastMonth, ytd, err := loadReports(vc.lastMonthPath, vc.ytdPath)
	if err != nil {
		return err
	}

	svc, err := vc.service(cmd)
	if err != nil {
		return err
	}

	report, err := svc.VolumeReport(cmd.Context(), billing.Input{
		Title:     vc.title,
		LastMonth: lastMonth,
		YTD:       ytd,
	})
	if err != nil {
		return fmt.Errorf("failed to build volume report: %w", err)
	}

	return vc.reporter.HandleVolume(report, vc.format)
}
