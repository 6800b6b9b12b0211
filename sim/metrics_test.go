package sim

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePerformance_Formulas(t *testing.T) {
	// GIVEN two completions spanning ticks 2..12 with 5 ticks of work
	completions := []Completion{
		NewCompletion(Process{PID: 1, ArrivalTime: 2, BurstTime: 3}, 2, 5),
		NewCompletion(Process{PID: 2, ArrivalTime: 4, BurstTime: 2}, 10, 12),
	}

	// WHEN aggregated
	perf, err := ComputePerformance(completions)
	require.NoError(t, err)

	// THEN each metric follows its formula
	assert.InDelta(t, 3.0, perf.AvgWaitingTime, 1e-12)    // (0 + 6) / 2
	assert.InDelta(t, 5.5, perf.AvgTurnaroundTime, 1e-12) // (3 + 8) / 2
	assert.InDelta(t, 50.0, perf.CPUUtilization, 1e-12)   // 100 * 5 / 10
	assert.InDelta(t, 0.2, perf.Throughput, 1e-12)        // 2 / 10
	assert.Equal(t, int64(10), TotalTime(completions))
}

func TestComputePerformance_Empty_ReturnsErrEmptySchedule(t *testing.T) {
	_, err := ComputePerformance(nil)
	assert.True(t, errors.Is(err, ErrEmptySchedule))
	assert.Equal(t, int64(0), TotalTime(nil))
}

func TestComputePerformance_ZeroSpan_ReturnsErrZeroSpan(t *testing.T) {
	// hand-built record: completion equals arrival
	completions := []Completion{{Process: Process{PID: 1, ArrivalTime: 4}, CompletionTime: 4}}

	_, err := ComputePerformance(completions)

	assert.ErrorIs(t, err, ErrZeroSpan)
}

func TestNewCompletion_DerivedTimes(t *testing.T) {
	c := NewCompletion(Process{PID: 9, ArrivalTime: 3, BurstTime: 4}, 5, 11)

	assert.Equal(t, int64(8), c.TurnaroundTime)
	assert.Equal(t, int64(4), c.WaitingTime)
	assert.Equal(t, int64(2), c.ResponseTime())
}

func TestNewMetrics_FromSchedule(t *testing.T) {
	s, err := SRTF(testMixedProcesses())
	require.NoError(t, err)

	m, err := NewMetrics(s)
	require.NoError(t, err)

	assert.Equal(t, PolicySRTF, m.Policy)
	assert.Equal(t, 4, m.Processes)
	assert.Equal(t, int64(22), m.TotalTime)
	assert.InDelta(t, 5.0, m.AvgWaitingTime, 1e-12)
	assert.Equal(t, 5, m.Dispatches)
	assert.Equal(t, 1, m.Preemptions)
	assert.Equal(t, 4, m.ContextSwitches)
	assert.Equal(t, int64(0), m.IdleTicks)
	assert.Equal(t, 4, m.Waiting.Count)
	assert.Equal(t, 12.0, m.Waiting.Max)
	assert.Equal(t, 0.0, m.Response.Min)
}

func TestNewMetrics_MultilevelSumsLevels(t *testing.T) {
	s, err := MultilevelQueue(testMixedProcesses(), DefaultMultilevelConfig())
	require.NoError(t, err)

	m, err := NewMetrics(s)
	require.NoError(t, err)

	// round-robin level: pid 2, pid 4 (keeps the CPU for its second slice); fcfs level: pid 1, pid 3
	assert.Equal(t, 4, m.Dispatches)
	assert.Equal(t, int64(1), m.IdleTicks)
	assert.Equal(t, int64(13), m.TotalTime)
}

func TestMetrics_JSONFlattensPerformance(t *testing.T) {
	s, err := FCFS(testMixedProcesses())
	require.NoError(t, err)
	m, err := NewMetrics(s)
	require.NoError(t, err)

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	for _, key := range []string{"policy", "avg_waiting_time", "avg_turnaround_time", "cpu_utilization", "throughput", "waiting"} {
		assert.Contains(t, out, key)
	}
}
