package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/royalty-atlas/pkg/runtime/environment"
	"github.com/de-tools/royalty-atlas/pkg/server"
	"github.com/de-tools/royalty-atlas/pkg/services/billing"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	ratesPath    string
	profilesPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Royalty Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVar(&ratesPath, "rates", "",
		"Path to a rates YAML file (default is $RATES_PATH or the built-in table)")
	rootCmd.Flags().StringVar(&profilesPath, "profiles", "",
		"Path to the franchise profiles INI file (default is $PROFILES_PATH)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := environment.Load()
	if err != nil {
		return err
	}

	logger := zerolog.New(os.Stdout).Level(cfg.Level()).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	settings := billing.DefaultSettings()
	settings.RatesPath = cfg.RatesPath
	settings.ProfilesPath = cfg.ProfilesPath
	if ratesPath != "" {
		settings.RatesPath = ratesPath
	}
	if profilesPath != "" {
		settings.ProfilesPath = profilesPath
	}

	svc, err := billing.NewServiceFromSettings(ctx, settings)
	if err != nil {
		return fmt.Errorf("failed to create billing service: %w", err)
	}

	if settings.ProfilesPath != "" {
		logger.Info().Msgf("Franchise profiles at `%s` successfully loaded.", settings.ProfilesPath)
		profiles, _ := svc.ListFranchises(ctx)
		for _, profile := range profiles {
			logger.Info().Msgf("Name: `%s`, Franchise: `%s`", profile.Name, profile.Number)
		}
	}

	api := server.NewWebAPI(server.Config{
		Addr: net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
		Dependencies: server.Dependencies{
			Billing: svc,
			Logger:  logger,
		},
	})

	return api.Start()
}
