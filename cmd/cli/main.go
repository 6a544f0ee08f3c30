package main

import (
	"fmt"
	"os"

	"github.com/de-tools/royalty-atlas/pkg/runtime/environment"
	"github.com/de-tools/royalty-atlas/pkg/runtime/terminal"
	"github.com/de-tools/royalty-atlas/pkg/services/billing"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := environment.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(cfg.Level()).
		With().Timestamp().Logger()

	settings := billing.DefaultSettings()
	settings.RatesPath = cfg.RatesPath
	settings.ProfilesPath = cfg.ProfilesPath

	cli := terminal.NewCLI(terminal.Options{
		Settings: settings,
		Logger:   &logger,
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
