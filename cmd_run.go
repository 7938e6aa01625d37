package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"iconcloud/cloud"
	"iconcloud/config"
	"iconcloud/tui"
)

var watchConfig bool

// runCmd starts the interactive view
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive icon cloud",
	Long: `Opens the icon cloud in the terminal.

Keys:
  mouse    steer the rotation while over the cloud
  arrows   nudge the rotation
  space    pause / resume
  r        reset rotation
  q, Esc   quit`,
	RunE: runInteractive,
}

func init() {
	runCmd.Flags().BoolVarP(&watchConfig, "watch", "w", false, "Reload labels when the config file changes")
}

func runInteractive(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := cloud.NewCloud(cfg.Labels, cfg.Options())
	if err != nil {
		return fmt.Errorf("failed to build cloud: %w", err)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer s.Fini()

	app := tui.NewApp(s, c, cfg.Cloud.FPS, logger)

	if watchConfig && configPath != "" {
		w, err := config.NewWatcher(configPath, func(next *config.Config) {
			applyReload(cmd, app, cfg, next)
		}, logger)
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer w.Stop()
	}

	logger.Info("starting icon cloud",
		zap.Int("labels", len(cfg.Labels)),
		zap.Float64("radius", cfg.Cloud.Radius),
		zap.Int("fps", cfg.Cloud.FPS))
	return app.Run(ctx)
}

// reloadTarget is the part of the running app a config reload can change.
type reloadTarget interface {
	SetLabels([]cloud.Label) error
	SetGeometry(radius, iconSize float64) error
}

// applyReload applies a reloaded config on top of the command-line flags.
// Labels and geometry change live; other fields need a restart.
func applyReload(cmd *cobra.Command, app reloadTarget, current, next *config.Config) {
	if err := applyFlagOverrides(cmd, next); err != nil {
		logger.Warn("config reload rejected", zap.Error(err))
		return
	}
	if ignored := restartOnlyChanges(current, next); len(ignored) > 0 {
		logger.Warn("config fields need a restart to take effect", zap.Strings("fields", ignored))
	}
	if err := app.SetLabels(next.Labels); err != nil {
		logger.Warn("labels rejected", zap.Error(err))
	}
	if err := app.SetGeometry(next.Cloud.Radius, next.Cloud.IconSize); err != nil {
		logger.Warn("geometry rejected", zap.Error(err))
	}
}

// restartOnlyChanges lists changed fields that are not hot-reloadable.
func restartOnlyChanges(current, next *config.Config) []string {
	var fields []string
	if next.Cloud.FPS != current.Cloud.FPS {
		fields = append(fields, "cloud.fps")
	}
	if next.Cloud.Motion != current.Cloud.Motion {
		fields = append(fields, "cloud.motion")
	}
	if next.Logging != current.Logging {
		fields = append(fields, "logging")
	}
	return fields
}
