package api

import (
	"github.com/inference-sim/sched-sim/sim"
)

// PolicyResponse describes one registered policy.
type PolicyResponse struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// RunResponse is one policy run: its metrics, per-process results and timeline.
type RunResponse struct {
	Policy      string           `json:"policy"`
	DisplayName string           `json:"display_name"`
	Metrics     *sim.Metrics     `json:"metrics"`
	Completions []sim.Completion `json:"completions"`
	Timeline    []sim.Slice      `json:"timeline,omitempty"`
	Levels      []LevelResponse  `json:"levels,omitempty"`
}

// LevelResponse is one sub-queue of a multilevel queue run.
type LevelResponse struct {
	Policy   string      `json:"policy"`
	Timeline []sim.Slice `json:"timeline"`
}

// CompareResponse holds every run of a comparison in request order.
type CompareResponse struct {
	Runs []RunResponse `json:"runs"`
}

func newRunResponse(r *sim.Run) RunResponse {
	resp := RunResponse{
		Policy:      r.Policy,
		DisplayName: sim.DisplayName(r.Policy),
		Metrics:     r.Metrics,
		Completions: r.Schedule.Completions,
		Timeline:    r.Schedule.Timeline,
	}
	for _, lvl := range r.Schedule.Levels {
		resp.Levels = append(resp.Levels, LevelResponse{Policy: lvl.Policy, Timeline: lvl.Timeline})
	}
	return resp
}
