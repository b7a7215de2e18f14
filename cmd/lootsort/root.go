package main

import (
	"fmt"

	"github.com/hupe1980/lootsort"
	"github.com/hupe1980/lootsort/core"
	"github.com/hupe1980/lootsort/engine"
	"github.com/hupe1980/lootsort/logging"
	"github.com/hupe1980/lootsort/museum"
	"github.com/hupe1980/lootsort/settings"
	"github.com/hupe1980/lootsort/world"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	settingsPath string
	museumPath   string
	logLevel     string
	logFormat    string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "lootsort",
		Short: "Classify and sort loot fixtures",
		Long: `lootsort runs the loot menu engine over YAML fixtures describing a
container and the ground stacks around the player.

Settings are read from --settings (toml, yaml or json) and can be overridden
with LOOTSORT_* environment variables. A missing settings file falls back to
the defaults.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.settingsPath, "settings", "lootsort.toml", "settings file")
	cmd.PersistentFlags().StringVar(&opts.museumPath, "museum", "", "museum collection file (toml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log format (text, json)")

	cmd.AddCommand(
		newSortCommand(opts),
		newClassifyCommand(),
		newComparatorsCommand(opts),
	)
	return cmd
}

func (o *rootOptions) logger(cmd *cobra.Command) *logging.StructuredLogger {
	cfg := logging.DefaultLoggerConfig()
	cfg.Level = logging.ParseLevel(o.logLevel)
	cfg.Format = o.logFormat
	cfg.Output = cmd.ErrOrStderr()
	cfg.Component = "cli"
	return logging.NewLogger(cfg)
}

// settings loads the settings file and applies a sort order override.
func (o *rootOptions) settings(order []string) (core.SettingsProvider, error) {
	provider, err := settings.Load(o.settingsPath)
	if err != nil {
		return nil, err
	}
	if len(order) > 0 {
		s := provider.Settings()
		s.SortOrder = order
		provider.Update(s)
	}
	return provider, nil
}

// open builds a façade over the fixture at path.
func (o *rootOptions) open(cmd *cobra.Command, path string, order []string) (*lootsort.LootSort, engine.Request, error) {
	fx, err := world.LoadYAML(path)
	if err != nil {
		return nil, engine.Request{}, err
	}

	provider, err := o.settings(order)
	if err != nil {
		return nil, engine.Request{}, err
	}

	tracker := museum.NewInMemoryTracker()
	if o.museumPath != "" {
		if tracker, err = museum.LoadTOML(o.museumPath); err != nil {
			return nil, engine.Request{}, err
		}
	}

	logger := o.logger(cmd)
	logger.Debug("Fixture loaded",
		"path", path,
		"inventory", len(fx.Inventory),
		"ground", len(fx.Ground),
		"museum", tracker.Len(),
	)

	ls, req := lootsort.FromFixture(fx, func(lo *lootsort.Options) {
		lo.Settings = provider
		lo.Museum = tracker
		lo.Logger = logger.WithComponent("engine")
	})
	return ls, req, nil
}

func exactlyOneFixture(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%s expects one fixture file, got %d arguments", cmd.Name(), len(args))
	}
	return nil
}
