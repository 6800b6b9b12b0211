package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/sched-sim/sim"
)

func testProcesses() []sim.Process {
	return []sim.Process{
		{PID: 1, ArrivalTime: 0, BurstTime: 5, Priority: 3},
		{PID: 2, ArrivalTime: 1, BurstTime: 3, Priority: 1},
		{PID: 3, ArrivalTime: 2, BurstTime: 8, Priority: 4},
		{PID: 4, ArrivalTime: 3, BurstTime: 6, Priority: 2},
	}
}

func testRun(t *testing.T, policy string) *sim.Run {
	t.Helper()
	r, err := sim.RunPolicy(policy, sim.ComparisonPolicyConfig(), testProcesses())
	require.NoError(t, err)
	return r
}

func TestWriteGantt_ContiguousSlices(t *testing.T) {
	var buf bytes.Buffer

	WriteGantt(&buf, []sim.Slice{{PID: 1, Start: 0, End: 5}, {PID: 2, Start: 5, End: 8}})

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "|   1   |   2   |", lines[0])
	assert.Equal(t, "0       5       8", lines[1])
}

func TestWriteGantt_IdleGapsShownAsDash(t *testing.T) {
	var buf bytes.Buffer

	WriteGantt(&buf, []sim.Slice{{PID: 1, Start: 3, End: 5}, {PID: 2, Start: 9, End: 10}})

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "|   1   |   -   |   2   |", lines[0])
	assert.Equal(t, "3       5       9       10", lines[1])
}

func TestWriteGantt_EmptyTimeline_WritesNothing(t *testing.T) {
	var buf bytes.Buffer
	WriteGantt(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestWriteSchedule_SingleLevel(t *testing.T) {
	var buf bytes.Buffer

	WriteSchedule(&buf, testRun(t, sim.PolicySJF))

	out := buf.String()
	assert.Contains(t, out, "SJF Non-Preemptive")
	// tablewriter upper-cases headers and footers
	assert.Contains(t, out, "TURNAROUND")
	assert.Contains(t, out, "AVERAGE")
	assert.Contains(t, out, "5.25")
	assert.Contains(t, out, "10.75")
	assert.Contains(t, out, "CPU utilization: 100.00%  Throughput: 0.1818 processes/tick")
	assert.NotContains(t, out, "UTIL")
}

func TestWriteSchedule_MultilevelWritesEachLevel(t *testing.T) {
	var buf bytes.Buffer

	WriteSchedule(&buf, testRun(t, sim.PolicyMultilevelQueue))

	out := buf.String()
	assert.Contains(t, out, "Round Robin level")
	assert.Contains(t, out, "FCFS level")
}

func TestWriteComparison_OneRowPerPolicy(t *testing.T) {
	cmp, err := sim.Compare(nil, sim.ComparisonPolicyConfig(), sim.StaticSource(testProcesses()))
	require.NoError(t, err)
	var buf bytes.Buffer

	WriteComparison(&buf, cmp.Metrics())

	out := buf.String()
	assert.Contains(t, out, "Policy Comparison")
	for _, name := range sim.DefaultComparison {
		assert.Contains(t, out, sim.DisplayName(name))
	}
}

func TestWriteJSON_ArrayOfMetrics(t *testing.T) {
	var buf bytes.Buffer
	m := testRun(t, sim.PolicyFCFS).Metrics

	require.NoError(t, WriteJSON(&buf, []*sim.Metrics{m}))

	var out []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "fcfs", out[0]["policy"])
	assert.InDelta(t, 5.75, out[0]["avg_waiting_time"], 1e-9)
}
