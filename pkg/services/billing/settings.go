package billing

import (
	"context"
	"fmt"

	"github.com/de-tools/royalty-atlas/pkg/services/config"
	"github.com/de-tools/royalty-atlas/pkg/services/royalty"
	"github.com/de-tools/royalty-atlas/pkg/services/summary"
	"github.com/rs/zerolog"
)

type Settings struct {
	RatesPath    string // ./rates.yaml, empty for the built-in table
	ProfilesPath string // ~/.franchises.ini, empty when unused
}

func DefaultSettings() Settings {
	return Settings{}
}

// NewServiceFromSettings loads the rate table and the optional profiles file.
func NewServiceFromSettings(ctx context.Context, settings Settings) (Service, error) {
	logger := zerolog.Ctx(ctx)

	rates, err := royalty.LoadRateTable(settings.RatesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load rate table: %w", err)
	}
	if settings.RatesPath != "" {
		logger.Debug().Str("path", settings.RatesPath).Int("tiers", len(rates.Tiers)).Msg("rate table loaded")
	}

	var profiles config.Registry
	if settings.ProfilesPath != "" {
		profiles, err = config.NewRegistry(settings.ProfilesPath)
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("path", settings.ProfilesPath).Msg("franchise profiles loaded")
	}

	return NewService(summary.NewCalculator(rates), profiles), nil
}
