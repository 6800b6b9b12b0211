// Package telemetry exports per-policy scheduling metrics to Prometheus.
package telemetry

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/inference-sim/sched-sim/sim"
)

// Collector holds the Prometheus metrics for scheduling runs, labelled by policy.
type Collector struct {
	// latest run per policy
	avgWaiting     *prometheus.GaugeVec
	avgTurnaround  *prometheus.GaugeVec
	cpuUtilization *prometheus.GaugeVec
	throughput     *prometheus.GaugeVec

	// cumulative
	runs        *prometheus.CounterVec
	processes   *prometheus.CounterVec
	preemptions *prometheus.CounterVec
	waitingTime *prometheus.HistogramVec

	gatherer prometheus.Gatherer
	mu       sync.Mutex
}

// NewCollector creates the metrics and registers them on a new registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		avgWaiting: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sched_avg_waiting_ticks",
			Help: "Average waiting time of the latest run, in ticks",
		}, []string{"policy"}),
		avgTurnaround: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sched_avg_turnaround_ticks",
			Help: "Average turnaround time of the latest run, in ticks",
		}, []string{"policy"}),
		cpuUtilization: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sched_cpu_utilization_percent",
			Help: "CPU utilization of the latest run, percent of the observed span",
		}, []string{"policy"}),
		throughput: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sched_throughput_per_tick",
			Help: "Completed processes per tick of the latest run",
		}, []string{"policy"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sched_runs_total",
			Help: "Total number of scheduling runs",
		}, []string{"policy"}),
		processes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sched_processes_total",
			Help: "Total number of processes scheduled",
		}, []string{"policy"}),
		preemptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sched_preemptions_total",
			Help: "Total number of preemptions",
		}, []string{"policy"}),
		waitingTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sched_waiting_ticks",
			Help:    "Per-process waiting time in ticks",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"policy"}),
		gatherer: reg,
	}

	reg.MustRegister(c.avgWaiting)
	reg.MustRegister(c.avgTurnaround)
	reg.MustRegister(c.cpuUtilization)
	reg.MustRegister(c.throughput)
	reg.MustRegister(c.runs)
	reg.MustRegister(c.processes)
	reg.MustRegister(c.preemptions)
	reg.MustRegister(c.waitingTime)

	return c
}

// RecordRun records one completed policy run.
func (c *Collector) RecordRun(run *sim.Run) {
	c.mu.Lock()
	defer c.mu.Unlock()

	policy := run.Policy
	m := run.Metrics
	c.avgWaiting.WithLabelValues(policy).Set(m.AvgWaitingTime)
	c.avgTurnaround.WithLabelValues(policy).Set(m.AvgTurnaroundTime)
	c.cpuUtilization.WithLabelValues(policy).Set(m.CPUUtilization)
	c.throughput.WithLabelValues(policy).Set(m.Throughput)
	c.runs.WithLabelValues(policy).Inc()
	c.processes.WithLabelValues(policy).Add(float64(m.Processes))
	c.preemptions.WithLabelValues(policy).Add(float64(m.Preemptions))
	for _, comp := range run.Schedule.Completions {
		c.waitingTime.WithLabelValues(policy).Observe(float64(comp.WaitingTime))
	}
}

// RecordComparison records every run of a comparison.
func (c *Collector) RecordComparison(cmp *sim.Comparison) {
	for _, r := range cmp.Runs {
		c.RecordRun(r)
	}
}

// Gatherer exposes the underlying registry, mainly for tests.
func (c *Collector) Gatherer() prometheus.Gatherer {
	return c.gatherer
}

// Handler returns the HTTP handler serving the collector's metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

// RunsRecorded returns the sched_runs_total value for policy.
func (c *Collector) RunsRecorded(policy string) float64 {
	families, err := c.gatherer.Gather()
	if err != nil {
		return 0
	}
	for _, f := range families {
		if f.GetName() != "sched_runs_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			for _, l := range metric.GetLabel() {
				if l.GetName() == "policy" && l.GetValue() == policy {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

