package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/royalty-atlas/pkg/models/domain"
	"github.com/de-tools/royalty-atlas/pkg/services/config"
	"github.com/de-tools/royalty-atlas/pkg/services/extract"
	"github.com/de-tools/royalty-atlas/pkg/services/summary"
	"github.com/rs/zerolog"
)

const defaultVolumeTitle = "Royalty Volume Calculation Report"

var (
	ErrMissingReport = errors.New("both last month and year-to-date reports are required")
	ErrNoProfiles    = errors.New("no franchise profiles configured")
)

// Input identifies the franchise and period of a billing run. Franchise
// fields set here take precedence over the named profile.
type Input struct {
	Profile   string
	Franchise domain.FranchiseInfo
	Period    domain.Period
	Title     string
	LastMonth *domain.Report
	YTD       *domain.Report
}

// Service runs the royalty engine for the CLI and HTTP surfaces.
type Service interface {
	PaymentSummary(ctx context.Context, in Input) (domain.PaymentSummary, error)
	VolumeReport(ctx context.Context, in Input) (domain.VolumeReport, error)
	ListFranchises(ctx context.Context) ([]domain.FranchiseProfile, error)
}

type service struct {
	calculator summary.Calculator
	profiles   config.Registry
}

// NewService creates a billing service. profiles may be nil when no profiles
// file is configured.
func NewService(calculator summary.Calculator, profiles config.Registry) Service {
	return &service{calculator: calculator, profiles: profiles}
}

func (s *service) PaymentSummary(ctx context.Context, in Input) (domain.PaymentSummary, error) {
	if in.LastMonth == nil || in.YTD == nil {
		return domain.PaymentSummary{}, ErrMissingReport
	}

	franchise, err := s.resolveFranchise(ctx, in)
	if err != nil {
		return domain.PaymentSummary{}, err
	}

	return s.calculator.Calculate(ctx, summary.Request{
		Franchise: franchise,
		Period:    in.Period,
		LastMonth: in.LastMonth,
		YTD:       in.YTD,
	})
}

func (s *service) VolumeReport(ctx context.Context, in Input) (domain.VolumeReport, error) {
	if in.LastMonth == nil || in.YTD == nil {
		return domain.VolumeReport{}, ErrMissingReport
	}

	lastMonth := extract.Extract(in.LastMonth)
	ytd := extract.Extract(in.YTD)
	if !lastMonth.HasData {
		zerolog.Ctx(ctx).Warn().Msg("last month report indicates no data")
	}
	if !ytd.HasData {
		zerolog.Ctx(ctx).Warn().Msg("year-to-date report indicates no data")
	}

	title := in.Title
	if title == "" {
		title = defaultVolumeTitle
	}
	return summary.BuildVolumeReport(title, lastMonth, ytd), nil
}

func (s *service) ListFranchises(ctx context.Context) ([]domain.FranchiseProfile, error) {
	if s.profiles == nil {
		return nil, ErrNoProfiles
	}
	return s.profiles.GetProfiles(ctx)
}

func (s *service) resolveFranchise(ctx context.Context, in Input) (domain.FranchiseInfo, error) {
	franchise := in.Franchise
	if in.Profile == "" {
		return franchise, nil
	}
	if s.profiles == nil {
		return domain.FranchiseInfo{}, fmt.Errorf("profile %q requested: %w", in.Profile, ErrNoProfiles)
	}

	profile, err := s.profiles.GetProfile(ctx, in.Profile)
	if err != nil {
		return domain.FranchiseInfo{}, err
	}

	info := profile.Info()
	if franchise.Number != "" {
		info.Number = franchise.Number
	}
	if franchise.Department != "" {
		info.Department = franchise.Department
	}
	if franchise.Owner != "" {
		info.Owner = franchise.Owner
	}
	return info, nil
}
