// Reduces a completed schedule to the summary statistics used to compare policies.

package sim

import (
	"fmt"
)

// Performance is the four-number summary of one completed schedule.
type Performance struct {
	AvgWaitingTime    float64 `json:"avg_waiting_time"`
	AvgTurnaroundTime float64 `json:"avg_turnaround_time"`
	CPUUtilization    float64 `json:"cpu_utilization"` // percent of the observed span
	Throughput        float64 `json:"throughput"`      // processes per tick
}

// ComputePerformance aggregates completions:
//
//	avg waiting    = sum(waiting) / n
//	avg turnaround = sum(turnaround) / n
//	total time     = max(completion) - min(arrival)
//	utilization    = 100 * sum(burst) / total time
//	throughput     = n / total time
//
// Returns ErrEmptySchedule for n = 0 and ErrZeroSpan for a zero total time.
func ComputePerformance(completions []Completion) (Performance, error) {
	n := len(completions)
	if n == 0 {
		return Performance{}, ErrEmptySchedule
	}
	span := TotalTime(completions)
	if span <= 0 {
		return Performance{}, fmt.Errorf("%w (n=%d)", ErrZeroSpan, n)
	}

	var waiting, turnaround, burst int64
	for _, c := range completions {
		waiting += c.WaitingTime
		turnaround += c.TurnaroundTime
		burst += c.BurstTime
	}
	return Performance{
		AvgWaitingTime:    float64(waiting) / float64(n),
		AvgTurnaroundTime: float64(turnaround) / float64(n),
		CPUUtilization:    float64(burst) / float64(span) * 100,
		Throughput:        float64(n) / float64(span),
	}, nil
}

// TotalTime is max(completion) - min(arrival) over completions, or 0 if empty.
func TotalTime(completions []Completion) int64 {
	if len(completions) == 0 {
		return 0
	}
	first, last := completions[0].ArrivalTime, completions[0].CompletionTime
	for _, c := range completions[1:] {
		if c.ArrivalTime < first {
			first = c.ArrivalTime
		}
		if c.CompletionTime > last {
			last = c.CompletionTime
		}
	}
	return last - first
}

// Metrics aggregates statistics about one policy run
// for final reporting and export.
type Metrics struct {
	Policy    string `json:"policy"`
	Processes int    `json:"processes"`
	TotalTime int64  `json:"total_time"`
	Performance

	Waiting    Distribution `json:"waiting"`
	Turnaround Distribution `json:"turnaround"`
	Response   Distribution `json:"response"` // first dispatch - arrival

	Dispatches      int   `json:"dispatches"`
	Preemptions     int   `json:"preemptions"`
	ContextSwitches int   `json:"context_switches"`
	IdleTicks       int64 `json:"idle_ticks"`
}

// NewMetrics computes Metrics for a finished schedule.
func NewMetrics(s *Schedule) (*Metrics, error) {
	perf, err := ComputePerformance(s.Completions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Policy, err)
	}
	waiting := make([]float64, len(s.Completions))
	turnaround := make([]float64, len(s.Completions))
	response := make([]float64, len(s.Completions))
	for i, c := range s.Completions {
		waiting[i] = float64(c.WaitingTime)
		turnaround[i] = float64(c.TurnaroundTime)
		response[i] = float64(c.ResponseTime())
	}
	summary := s.TraceSummary()
	return &Metrics{
		Policy:          s.Policy,
		Processes:       len(s.Completions),
		TotalTime:       TotalTime(s.Completions),
		Performance:     perf,
		Waiting:         NewDistribution(waiting),
		Turnaround:      NewDistribution(turnaround),
		Response:        NewDistribution(response),
		Dispatches:      summary.Dispatches,
		Preemptions:     summary.Preemptions,
		ContextSwitches: summary.ContextSwitches,
		IdleTicks:       summary.IdleTicks,
	}, nil
}
