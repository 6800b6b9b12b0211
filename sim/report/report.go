// Package report renders schedules and policy comparisons for the terminal:
// schedule tables, Gantt lines, a side-by-side comparison table and one bar
// chart per metric. It only reads sim results.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/inference-sim/sched-sim/sim"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))

// WriteTitle writes a styled section heading.
func WriteTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, titleStyle.Render(title))
	_, _ = fmt.Fprintln(w, strings.Repeat("-", lipgloss.Width(title)))
}

// WriteSchedule writes the heading, Gantt line(s) and per-process table of one run.
func WriteSchedule(w io.Writer, run *sim.Run) {
	WriteTitle(w, sim.DisplayName(run.Policy))
	if len(run.Schedule.Levels) > 0 {
		for _, lvl := range run.Schedule.Levels {
			_, _ = fmt.Fprintf(w, "%s level\n", sim.DisplayName(lvl.Policy))
			WriteGantt(w, lvl.Timeline)
		}
	} else {
		WriteGantt(w, run.Schedule.Timeline)
	}
	WriteCompletions(w, run.Schedule.Completions, run.Metrics)
}

// WriteGantt writes a two-line Gantt chart: PIDs between bars, then slice
// boundaries. Idle gaps appear as "-" cells.
func WriteGantt(w io.Writer, timeline []sim.Slice) {
	if len(timeline) == 0 {
		return
	}
	var bars, ticks strings.Builder
	bars.WriteString("|")
	var clock int64 = timeline[0].Start
	ticks.WriteString(fmt.Sprintf("%-8d", clock))
	for _, s := range timeline {
		if s.Start > clock {
			bars.WriteString(cell("-"))
			ticks.WriteString(fmt.Sprintf("%-8d", s.Start))
		}
		bars.WriteString(cell(fmt.Sprint(s.PID)))
		ticks.WriteString(fmt.Sprintf("%-8d", s.End))
		clock = s.End
	}
	_, _ = fmt.Fprintln(w, bars.String())
	_, _ = fmt.Fprintln(w, strings.TrimRight(ticks.String(), " "))
	_, _ = fmt.Fprintln(w)
}

// cell centers label in a 7-wide column followed by a bar.
func cell(label string) string {
	pad := 7 - len(label)
	if pad < 0 {
		pad = 0
	}
	left := pad / 2
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", pad-left) + "|"
}

// WriteCompletions writes one row per process with an averages footer,
// followed by a line carrying utilization and throughput.
func WriteCompletions(w io.Writer, completions []sim.Completion, m *sim.Metrics) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Priority", "Arrival", "Burst", "Start", "Completion", "Waiting", "Turnaround"})
	rows := make([][]string, len(completions))
	for i, c := range completions {
		rows[i] = []string{
			fmt.Sprint(c.PID),
			fmt.Sprint(c.Priority),
			fmt.Sprint(c.ArrivalTime),
			fmt.Sprint(c.BurstTime),
			fmt.Sprint(c.StartTime),
			fmt.Sprint(c.CompletionTime),
			fmt.Sprint(c.WaitingTime),
			fmt.Sprint(c.TurnaroundTime),
		}
	}
	table.AppendBulk(rows)
	if m != nil {
		table.SetFooter([]string{"Average", "", "", "", "", "",
			fmt.Sprintf("%.2f", m.AvgWaitingTime),
			fmt.Sprintf("%.2f", m.AvgTurnaroundTime)})
	}
	table.Render()
	if m != nil {
		_, _ = fmt.Fprintf(w, "CPU utilization: %.2f%%  Throughput: %.4f processes/tick\n", m.CPUUtilization, m.Throughput)
	}
}

// WriteComparison writes the four headline metrics of every run side by side.
func WriteComparison(w io.Writer, metrics []*sim.Metrics) {
	WriteTitle(w, "Policy Comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Avg Waiting", "Avg Turnaround", "CPU Util %", "Throughput", "Preemptions", "Ctx Switches"})
	for _, m := range metrics {
		table.Append([]string{
			sim.DisplayName(m.Policy),
			fmt.Sprintf("%.2f", m.AvgWaitingTime),
			fmt.Sprintf("%.2f", m.AvgTurnaroundTime),
			fmt.Sprintf("%.2f", m.CPUUtilization),
			fmt.Sprintf("%.4f", m.Throughput),
			fmt.Sprint(m.Preemptions),
			fmt.Sprint(m.ContextSwitches),
		})
	}
	table.Render()
}

// WriteJSON writes metrics as an indented JSON array.
func WriteJSON(w io.Writer, metrics []*sim.Metrics) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(metrics); err != nil {
		return fmt.Errorf("encoding metrics: %w", err)
	}
	return nil
}
