// =======================
// cloud/benchmarks.go
// =======================

package cloud

import (
	"fmt"
	"io"
	"time"
)

// BenchmarkInfo holds frame throughput for one label count.
type BenchmarkInfo struct {
	Labels       int           `json:"labels"`
	Frames       int           `json:"frames"`
	FrameTime    time.Duration `json:"frame_time"`
	FramesPerSec float64       `json:"frames_per_second"`
	BudgetUsed   float64       `json:"budget_used"` // share of a 60 Hz frame
}

// BenchmarkCloud measures Tick cost for each label count with an idle pointer.
func BenchmarkCloud(counts []int, frames int) ([]BenchmarkInfo, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("frames must be positive, got %d", frames)
	}
	results := make([]BenchmarkInfo, 0, len(counts))

	for _, n := range counts {
		labels := make([]Label, n)
		for i := range labels {
			labels[i] = Label{Name: fmt.Sprintf("label-%d", i)}
		}
		c, err := NewCloud(labels, DefaultOptions())
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud for %d labels: %w", n, err)
		}

		start := time.Now()
		for i := 0; i < frames; i++ {
			c.Tick(PointerState{}, 1)
		}
		duration := time.Since(start)
		perFrame := duration / time.Duration(frames)

		fps := 0.0
		if perFrame > 0 {
			fps = float64(time.Second) / float64(perFrame)
		}
		results = append(results, BenchmarkInfo{
			Labels:       n,
			Frames:       frames,
			FrameTime:    perFrame,
			FramesPerSec: fps,
			BudgetUsed:   float64(perFrame) / float64(ReferenceFrame),
		})
	}

	return results, nil
}

// PrintBenchmarkResults writes the results as a table.
func PrintBenchmarkResults(w io.Writer, results []BenchmarkInfo) {
	fmt.Fprintln(w, "Icon Cloud Frame Benchmark")
	fmt.Fprintln(w, "==========================")
	fmt.Fprintf(w, "%-8s | %-12s | %-14s | %-10s\n", "Labels", "Time/Frame", "Frames/s", "Budget")
	fmt.Fprintln(w, "---------|--------------|----------------|-----------")

	for _, r := range results {
		fmt.Fprintf(w, "%-8d | %-12s | %-14.0f | %-9.4f%%\n",
			r.Labels,
			r.FrameTime.String(),
			r.FramesPerSec,
			r.BudgetUsed*100)
	}
}
