// Package testutil provides shared test infrastructure for the scheduling engine.
// It holds the golden schedule types and assertion helpers used by sim/ tests.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/golden_schedules.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one policy applied to one hand-checked process set.
type GoldenTestCase struct {
	Name        string             `json:"name"`
	Policy      string             `json:"policy"`
	Quantum     int64              `json:"quantum"`
	Processes   []GoldenProcess    `json:"processes"`
	Completions []GoldenCompletion `json:"completions"`
	Metrics     GoldenMetrics      `json:"metrics"`
}

// GoldenProcess is an input process record.
type GoldenProcess struct {
	PID         int   `json:"pid"`
	ArrivalTime int64 `json:"arrival_time"`
	BurstTime   int64 `json:"burst_time"`
	Priority    int   `json:"priority"`
}

// GoldenCompletion holds the expected per-process timing.
type GoldenCompletion struct {
	PID            int   `json:"pid"`
	StartTime      int64 `json:"start_time"`
	CompletionTime int64 `json:"completion_time"`
	WaitingTime    int64 `json:"waiting_time"`
	TurnaroundTime int64 `json:"turnaround_time"`
}

// GoldenMetrics holds the expected aggregate metrics.
type GoldenMetrics struct {
	AvgWaitingTime    float64 `json:"avg_waiting_time"`
	AvgTurnaroundTime float64 `json:"avg_turnaround_time"`
	CPUUtilization    float64 `json:"cpu_utilization"`
	Throughput        float64 `json:"throughput"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "golden_schedules.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Tests) == 0 {
		t.Fatal("Golden dataset has no test cases")
	}
	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
