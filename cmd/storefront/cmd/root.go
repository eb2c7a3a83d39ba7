package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/proyectoslancha/pattymoda/internal/analytics"
	"github.com/proyectoslancha/pattymoda/internal/apiclient"
	"github.com/proyectoslancha/pattymoda/internal/config"
	"github.com/proyectoslancha/pattymoda/internal/dashboard"
	"github.com/proyectoslancha/pattymoda/pkg/logger"
	"github.com/proyectoslancha/pattymoda/pkg/metrics"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// app carries what every subcommand needs once the root has been set up.
type app struct {
	version    string
	configPath string
	output     string
	verbose    bool

	cfg       *config.Config
	log       *logger.Logger
	metrics   *metrics.Manager
	analytics *analytics.Service
	dashboard *dashboard.Service
}

// newRootCmd builds the storefront command tree and the app it populates.
func newRootCmd(version string) (*cobra.Command, *app) {
	a := &app{version: version}
	loader := config.NewLoader()

	rootCmd := &cobra.Command{
		Use:   "storefront",
		Short: "Query the storefront analytics and dashboard API",
		Long: `storefront fetches analytics and dashboard data from the store backend.

Configuration is read from .storefront.yaml (in /etc/storefront, $HOME or the
current directory) and STOREFRONT_* environment variables.

Examples:
  # Headline KPIs
  storefront kpi

  # Sales of the last week as JSON
  storefront trends 7 --output json

  # Against another backend
  storefront stats --api-url http://shop.example.com:8080/api`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, loader)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a config file (default: search .storefront.yaml)")
	flags.String("api-url", "", "backend API base URL, including the /api prefix")
	flags.StringVarP(&a.output, "output", "o", outputText, "output format: text or json")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	// Flags override file and environment values
	if err := loader.Viper().BindPFlag("api_url", flags.Lookup("api-url")); err != nil {
		panic(fmt.Sprintf("binding --api-url: %v", err))
	}

	rootCmd.AddCommand(
		newKPICmd(a),
		newSegmentsCmd(a),
		newTrendsCmd(a),
		newStatsCmd(a),
		newActivityCmd(a),
	)

	return rootCmd, a
}

func (a *app) setup(cmd *cobra.Command, loader *config.Loader) error {
	if a.output != outputText && a.output != outputJSON {
		return fmt.Errorf("invalid --output %q (must be text or json)", a.output)
	}

	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = loader.LoadWithPath(a.configPath)
	} else {
		cfg, err = loader.Load()
	}
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.LogLevel = string(logger.LevelDebug)
	}
	a.cfg = cfg

	logCfg := cfg.LoggerConfig("storefront", a.version)
	logCfg.Output = cmd.ErrOrStderr()
	a.log = logger.New(logCfg)

	a.metrics = metrics.NewManager(metrics.WithMetricsEnabled(cfg.MetricsTextfile != ""))

	client, err := apiclient.NewClient(cfg.ClientConfig(), a.log.WithComponent("apiclient"), apiclient.WithMetrics(a.metrics))
	if err != nil {
		return err
	}

	a.analytics = analytics.NewService(client)
	a.dashboard = dashboard.NewService(client)

	a.log.Debug("storefront client ready", "api_url", client.BaseURL(), "output", a.output)
	return nil
}

func (a *app) writeMetrics(ctx context.Context) error {
	if a.cfg == nil || a.cfg.MetricsTextfile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.cfg.MetricsTextfile, a.metrics.Registry()); err != nil {
		a.log.ErrorCtx(ctx, "failed to write metrics textfile", err, "path", a.cfg.MetricsTextfile)
		return fmt.Errorf("failed to write metrics to %s: %w", a.cfg.MetricsTextfile, err)
	}
	return nil
}

// run executes root and then writes the metrics textfile, whether or not the
// command failed.
func (a *app) run(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	if mErr := a.writeMetrics(ctx); mErr != nil {
		err = errors.Join(err, mErr)
	}
	return err
}

// Execute builds the command tree and runs it with ctx.
func Execute(ctx context.Context, version string) error {
	rootCmd, a := newRootCmd(version)
	return a.run(ctx, rootCmd)
}
