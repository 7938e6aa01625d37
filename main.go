// main.go
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"iconcloud/config"
)

var (
	// Global flags
	configPath string
	verbose    bool
	radius     float64
	iconSize   float64
	fps        int

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "iconcloud",
	Short: "Interactive 3D technology icon cloud for the terminal",
	Long: `iconcloud spreads technology labels over a sphere and spins it.

The cloud drifts on its own; move the mouse over it to steer. Labels in
front are drawn brighter and in full, labels behind fade to a short badge.

Run without arguments to start the interactive view.`,
	SilenceUsage: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInteractive,
}

func init() {
	// assigned here rather than in the literal: the hook compares against
	// rootCmd, which would otherwise be an initialization cycle
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(cmd)
		if err != nil {
			return err
		}
		// the interactive view owns the terminal, so it logs to a file or nowhere
		interactive := cmd == rootCmd || cmd == runCmd
		logger, err = newLogger(cfg.Logging, interactive)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	pf.Float64Var(&radius, "radius", 0, "Field radius (overrides config)")
	pf.Float64Var(&iconSize, "icon-size", 0, "Base icon size (overrides config)")
	pf.IntVar(&fps, "fps", 0, "Frames per second (overrides config)")

	rootCmd.AddCommand(runCmd, framesCmd, labelsCmd, benchCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	c, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := applyFlagOverrides(cmd, c); err != nil {
		return nil, err
	}
	return c, nil
}

// applyFlagOverrides puts explicitly set flags on top of c and revalidates.
func applyFlagOverrides(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("radius") {
		c.Cloud.Radius = radius
	}
	if flags.Changed("icon-size") {
		c.Cloud.IconSize = iconSize
	}
	if flags.Changed("fps") {
		c.Cloud.FPS = fps
	}
	if verbose {
		c.Logging.Level = "debug"
	}
	return c.Validate()
}

func newLogger(lc config.LoggingConfig, interactive bool) (*zap.Logger, error) {
	if interactive && lc.File == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(strings.ToLower(lc.Level))
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if lc.File != "" {
		zc.OutputPaths = []string{lc.File}
		zc.ErrorOutputPaths = []string{lc.File}
	}
	return zc.Build()
}
