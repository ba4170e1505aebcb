package main

import (
	"context"
	"fmt"

	"botdash/internal/api"
	"botdash/internal/config"
	"botdash/internal/logging"
	"botdash/internal/metrics"
	"botdash/internal/state"
	"botdash/internal/telemetry"
	"botdash/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configFile  string
	backendURL  string
	logLevel    string
	metricsAddr string
	tab         string
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:   "botdash",
		Short: "Operator dashboard for the Telegram search bot",
		Long: `botdash shows live statistics, users and referrals of the search bot
backend and lets the operator re-register the Telegram webhook or probe the
Usersbox API.

Configuration is read from defaults, an optional YAML file (--config or
BOTDASH_CONFIG), BOTDASH_* environment variables and finally flags.

Examples:
  botdash                                   # Start the dashboard
  botdash --backend-url http://10.0.0.5:8001
  botdash snapshot --tab users              # Print one page and exit
  botdash snapshot --format yaml            # Dump the raw data`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, &flags)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "path to a YAML config file")
	pf.StringVar(&flags.backendURL, "backend-url", config.DefaultBackendURL, "backend base URL")
	pf.StringVar(&flags.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.Flags().StringVar(&flags.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	root.Flags().StringVar(&flags.tab, "tab", state.TabOverview.String(), "initial tab (overview, users, referrals, activity)")

	root.AddCommand(newSnapshotCmd(&flags))
	return root
}

// loadConfig merges the config sources with the flags the user actually set.
func loadConfig(cmd *cobra.Command, flags *globalFlags) (*config.Config, error) {
	overrides := map[string]interface{}{}
	set := func(flag, key string, value interface{}) {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			overrides[key] = value
		}
	}
	set("backend-url", "backend_url", flags.backendURL)
	set("log-level", "log.level", flags.logLevel)
	set("metrics-addr", "metrics.addr", flags.metricsAddr)

	return config.Load(config.Options{File: flags.configFile, Overrides: overrides})
}

func newClient(cfg *config.Config) *api.Client {
	return api.NewClient(cfg.BackendURL,
		api.WithLogger(zap.S()),
		api.WithUserAgent("botdash/"+version),
	)
}

func runTUI(cmd *cobra.Command, flags *globalFlags) error {
	tab, err := state.ParseTab(flags.tab)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	// The terminal belongs to the page, so the log goes to a file.
	_, cleanup, err := logging.Setup(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			zap.L().Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	collectors := metrics.New()
	if cfg.Metrics.Addr != "" {
		go func() {
			if err := collectors.Serve(ctx, cfg.Metrics.Addr); err != nil {
				zap.L().Error("metrics listener stopped", zap.Error(err))
			}
		}()
	}

	zap.L().Info("starting dashboard",
		zap.String("backend_url", cfg.BackendURL),
		zap.String("tab", tab.String()))

	model := ui.NewAppModel(newClient(cfg),
		ui.WithRecorder(collectors),
		ui.WithInitialTab(tab),
	)
	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
