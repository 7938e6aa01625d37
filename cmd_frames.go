package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"iconcloud/cloud"
)

var (
	frameCount   int
	pointerFlag  string
	framesFormat string
)

// framesCmd computes frames without a terminal view
var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "Print computed frames without opening the view",
	Long: `Advances the cloud a number of frames and prints each frame's rendered
icons. Use --pointer to hold a steering pointer at an offset from the center.

Example:
  iconcloud frames --count 3 --pointer 120,-40 --format yaml`,
	Args: cobra.NoArgs,
	RunE: runFrames,
}

func init() {
	f := framesCmd.Flags()
	f.IntVarP(&frameCount, "count", "n", 1, "Number of frames to compute")
	f.StringVarP(&pointerFlag, "pointer", "p", "", "Steering pointer offset as dx,dy")
	f.StringVarP(&framesFormat, "format", "f", "json", "Output format: json or yaml")
}

func runFrames(cmd *cobra.Command, args []string) error {
	if frameCount < 1 {
		return fmt.Errorf("count must be at least 1, got %d", frameCount)
	}
	ptr, err := parsePointer(pointerFlag)
	if err != nil {
		return err
	}

	c, err := cloud.NewCloud(cfg.Labels, cfg.Options())
	if err != nil {
		return fmt.Errorf("failed to build cloud: %w", err)
	}

	frames := make([]cloud.Frame, 0, frameCount)
	for i := 0; i < frameCount; i++ {
		frames = append(frames, c.Tick(ptr, 1))
	}
	logger.Debug("frames computed", zap.Int("count", len(frames)), zap.Bool("steering", ptr.Active))

	out := cmd.OutOrStdout()
	switch strings.ToLower(framesFormat) {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(frames)
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(frames)
	default:
		return fmt.Errorf("unknown format %q (json, yaml)", framesFormat)
	}
}

// parsePointer reads "dx,dy". Empty input means no pointer.
func parsePointer(s string) (cloud.PointerState, error) {
	if strings.TrimSpace(s) == "" {
		return cloud.PointerState{}, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return cloud.PointerState{}, fmt.Errorf("pointer must be dx,dy, got %q", s)
	}
	dx, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return cloud.PointerState{}, fmt.Errorf("pointer dx: %w", err)
	}
	dy, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return cloud.PointerState{}, fmt.Errorf("pointer dy: %w", err)
	}
	ptr := cloud.PointerState{DX: dx, DY: dy, Active: true}
	if err := ptr.Validate(); err != nil {
		return cloud.PointerState{}, err
	}
	return ptr, nil
}
