package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/inference-sim/sched-sim/sim"
)

// chartWidth is the bar length of the largest value in a chart.
const chartWidth = 40

// Metric names a headline metric and how to read it from sim.Metrics.
type Metric struct {
	Name  string
	Value func(*sim.Metrics) float64
}

// HeadlineMetrics are the four metrics compared across policies, in chart order.
var HeadlineMetrics = []Metric{
	{Name: "avg_waiting_time", Value: func(m *sim.Metrics) float64 { return m.AvgWaitingTime }},
	{Name: "avg_turnaround_time", Value: func(m *sim.Metrics) float64 { return m.AvgTurnaroundTime }},
	{Name: "cpu_utilization", Value: func(m *sim.Metrics) float64 { return m.CPUUtilization }},
	{Name: "throughput", Value: func(m *sim.Metrics) float64 { return m.Throughput }},
}

// TitleCase turns snake_case into Title Case ("avg_waiting_time" -> "Avg Waiting Time").
func TitleCase(snake string) string {
	words := strings.Split(snake, "_")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}

// WriteBarCharts writes one horizontal bar chart per headline metric.
func WriteBarCharts(w io.Writer, metrics []*sim.Metrics) {
	for _, hm := range HeadlineMetrics {
		WriteBarChart(w, hm, metrics)
	}
}

// WriteBarChart writes a horizontal bar chart of one metric across runs,
// scaled so the largest value spans chartWidth cells.
func WriteBarChart(w io.Writer, hm Metric, metrics []*sim.Metrics) {
	WriteTitle(w, TitleCase(hm.Name)+" Comparison")
	labelWidth := 0
	largest := 0.0
	for _, m := range metrics {
		if l := len(sim.DisplayName(m.Policy)); l > labelWidth {
			labelWidth = l
		}
		if v := hm.Value(m); v > largest {
			largest = v
		}
	}
	for _, m := range metrics {
		v := hm.Value(m)
		n := 0
		if largest > 0 {
			n = int(v / largest * chartWidth)
		}
		_, _ = fmt.Fprintf(w, "%-*s |%s %.4g\n", labelWidth, sim.DisplayName(m.Policy), strings.Repeat("█", n), v)
	}
	_, _ = fmt.Fprintln(w)
}
