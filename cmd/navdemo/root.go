package main

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-nav/engine"
	"github.com/Carmen-Shannon/oxy-nav/engine/config"
	"github.com/Carmen-Shannon/oxy-nav/engine/logger"
	"github.com/Carmen-Shannon/oxy-nav/engine/window"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// options holds the command line state for one invocation.
type options struct {
	configFile string
	v          *viper.Viper
}

// newRootCmd builds the navdemo command. Flags override the config file, and NAVDEMO_* environment
// variables override both when the flag is not given.
func newRootCmd() *cobra.Command {
	return buildRootCmd(&options{v: config.NewViper()})
}

// buildRootCmd declares the flags on a new command and binds them into opts.v.
func buildRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "navdemo",
		Short:         "Drag a target around a 3D scene with an on-screen joystick",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "YAML config file (defaults are used when empty)")
	flags.Int("tick-rate", 0, "engine ticks per second")
	flags.Bool("profile", false, "log tick rate and memory stats")
	flags.Bool("debug-view", false, "show the distance marker")
	flags.Float32("max-travel", 0, "maximum travel distance from the start position, 0 for unlimited")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "also write JSON logs to this rotated file")

	for key, name := range map[string]string{
		config.KeyTickRate:      "tick-rate",
		config.KeyProfile:       "profile",
		config.KeyShowDebugView: "debug-view",
		config.KeyMaxTravel:     "max-travel",
		config.KeyLogLevel:      "log-level",
		config.KeyLogFile:       "log-file",
	} {
		// only fails for a nil flag
		_ = opts.v.BindPFlag(key, flags.Lookup(name))
	}

	return cmd
}

func (o *options) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if o.configFile != "" {
		loaded, err := config.Load(o.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyOverrides(o.v); err != nil {
		return nil, fmt.Errorf("apply overrides: %w", err)
	}
	return cfg, nil
}

// run opens the window and blocks in the engine loop until the window is closed.
func run(cfg *config.Config) error {
	log := logger.New(cfg.Logging)
	defer func() { _ = log.Sync() }()

	win, err := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)
	if err != nil {
		return err
	}

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithTickRate(float64(cfg.Engine.TickRate)),
		engine.WithProfiling(cfg.Engine.Profile),
		engine.WithLogger(log),
	)

	d := newDemo(cfg, log, float32(win.Width())/float32(win.Height()))
	bindInput(eng, d)

	log.Info("navdemo starting",
		zap.Int("tick_rate", cfg.Engine.TickRate),
		zap.Float32("control_radius", cfg.Navigation.ControlRadius),
		zap.Float32("max_travel", cfg.Navigation.MaxTravelDistance),
	)
	eng.Run()
	return nil
}
