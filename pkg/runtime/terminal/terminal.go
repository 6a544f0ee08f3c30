package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/royalty-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/royalty-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/royalty-atlas/pkg/services/billing"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// ServiceFactory builds the billing service from the resolved settings.
type ServiceFactory func(ctx context.Context, settings billing.Settings) (billing.Service, error)

// CLI represents the command-line interface
type CLI struct {
	factory  ServiceFactory
	settings billing.Settings
	logLevel string
	logger   zerolog.Logger
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Settings       billing.Settings
	ServiceFactory ServiceFactory
	Logger         *zerolog.Logger
	Output         io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ServiceFactory == nil {
		opts.ServiceFactory = billing.NewServiceFromSettings
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	cli := &CLI{
		factory:  opts.ServiceFactory,
		settings: opts.Settings,
		logger:   logger,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs overrides os.Args for the root command.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "royalty",
		Short:         "Royalty payment calculation tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)

	cmd.PersistentFlags().StringVar(&cli.settings.RatesPath, "rates", cli.settings.RatesPath,
		"Path to a rates YAML file (default: built-in rate table)")
	cmd.PersistentFlags().StringVar(&cli.settings.ProfilesPath, "profiles", cli.settings.ProfilesPath,
		"Path to the franchise profiles INI file")
	cmd.PersistentFlags().StringVar(&cli.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	cmd.AddCommand(commands.NewSummaryCmd(cli.service, cli.reporter))
	cmd.AddCommand(commands.NewVolumeCmd(cli.service, cli.reporter))
	cmd.AddCommand(commands.NewProfilesCmd(cli.service))

	return cmd
}

func (cli *CLI) service(cmd *cobra.Command) (billing.Service, error) {
	logger := cli.logger
	if cli.logLevel != "" {
		if level, err := zerolog.ParseLevel(cli.logLevel); err == nil {
			logger = logger.Level(level)
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	return cli.factory(ctx, cli.settings)
}
