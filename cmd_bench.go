package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"iconcloud/cloud"
)

var (
	benchFrames int
	benchCounts []int
)

// benchCmd measures frame cost
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure frame computation cost for several label counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := cloud.BenchmarkCloud(benchCounts, benchFrames)
		if err != nil {
			return err
		}
		logger.Debug("benchmark finished", zap.Int("runs", len(results)))
		cloud.PrintBenchmarkResults(cmd.OutOrStdout(), results)
		return nil
	},
}

func init() {
	benchCmd.Flags().IntVar(&benchFrames, "frames", 10000, "Frames per label count")
	benchCmd.Flags().IntSliceVar(&benchCounts, "labels", []int{8, 24, 100, 1000}, "Label counts to measure")
}
