// Package api serves the scheduling engine over HTTP.
package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/sched-sim/sim"
	"github.com/inference-sim/sched-sim/sim/telemetry"
	"github.com/inference-sim/sched-sim/sim/workload"
)

// SchedulerHandler exposes the policies over HTTP.
type SchedulerHandler interface {
	Policies(ctx *fiber.Ctx) error
	Schedule(ctx *fiber.Ctx) error
	Compare(ctx *fiber.Ctx) error
}

// SchedulerHandlerImpl runs requests synchronously and records every run.
type SchedulerHandlerImpl struct {
	collector *telemetry.Collector
	defaults  workload.WorkloadSpec
}

// NewSchedulerHandlerImpl creates a handler. defaults fills fields of a
// request workload that the client left at zero.
func NewSchedulerHandlerImpl(collector *telemetry.Collector, defaults workload.WorkloadSpec) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{collector: collector, defaults: defaults}
}

// NewApp wires the routes:
//
//	GET  /healthz
//	GET  /metrics
//	GET  /api/v1/policies
//	POST /api/v1/schedule/:policy
//	POST /api/v1/compare
func NewApp(h SchedulerHandler, collector *telemetry.Collector) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(fiberrecover.New())
	app.Use(requestLogger)

	app.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(collector.Handler()))

	v1 := app.Group("/api/v1")
	{
		v1.Get("/policies", h.Policies)
		v1.Post("/schedule/:policy", h.Schedule)
		v1.Post("/compare", h.Compare)
	}
	return app
}

func requestLogger(ctx *fiber.Ctx) error {
	start := time.Now()
	err := ctx.Next()
	logrus.Infof("%s %s -> %d (%s)", ctx.Method(), ctx.Path(), ctx.Response().StatusCode(), time.Since(start))
	return err
}

func (s *SchedulerHandlerImpl) Policies(ctx *fiber.Ctx) error {
	out := make([]PolicyResponse, 0, len(sim.DefaultComparison))
	for _, name := range sim.DefaultComparison {
		out = append(out, PolicyResponse{Name: name, DisplayName: sim.DisplayName(name)})
	}
	return ctx.JSON(out)
}

func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	name := ctx.Params("policy")
	if !sim.IsValidPolicy(name) {
		return errorResponse(ctx, fiber.StatusNotFound, fmt.Errorf("unknown policy %q", name))
	}
	var request ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, errors.New("invalid request format"))
	}

	procs := request.Processes
	if len(procs) == 0 {
		if request.Workload == nil {
			return errorResponse(ctx, fiber.StatusBadRequest, errors.New("processes or workload required"))
		}
		spec := s.fill(*request.Workload)
		var err error
		procs, err = workload.NewSource(&spec, true)(name)
		if err != nil {
			return errorResponse(ctx, fiber.StatusBadRequest, err)
		}
	}

	run, err := sim.RunPolicy(name, policyConfig(request.Quantum, request.Multilevel), procs)
	if err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, err)
	}
	s.collector.RecordRun(run)
	return ctx.JSON(newRunResponse(run))
}

func (s *SchedulerHandlerImpl) Compare(ctx *fiber.Ctx) error {
	var request CompareRequest
	if err := ctx.BodyParser(&request); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, errors.New("invalid request format"))
	}
	bundle := sim.PolicyBundle{Policies: request.Policies}
	if err := bundle.Validate(); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, err)
	}

	var source sim.ProcessSource
	if len(request.Processes) > 0 {
		source = sim.StaticSource(request.Processes)
	} else {
		spec := s.defaults
		if request.Workload != nil {
			spec = s.fill(*request.Workload)
		}
		source = workload.NewSource(&spec, request.SameWorkload)
	}

	cmp, err := sim.Compare(bundle.Names(), policyConfig(request.Quantum, request.Multilevel), source)
	if err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, err)
	}
	s.collector.RecordComparison(cmp)

	resp := CompareResponse{Runs: make([]RunResponse, 0, len(cmp.Runs))}
	for _, r := range cmp.Runs {
		resp.Runs = append(resp.Runs, newRunResponse(r))
	}
	return ctx.JSON(resp)
}

// fill replaces zero-valued fields of spec with the handler defaults.
func (s *SchedulerHandlerImpl) fill(spec workload.WorkloadSpec) workload.WorkloadSpec {
	if spec.NumProcesses == 0 {
		spec.NumProcesses = s.defaults.NumProcesses
	}
	if spec.Arrival == (workload.RangeSpec{}) {
		spec.Arrival = s.defaults.Arrival
	}
	if spec.Burst == (workload.RangeSpec{}) {
		spec.Burst = s.defaults.Burst
	}
	if spec.Priority == (workload.RangeSpec{}) {
		spec.Priority = s.defaults.Priority
	}
	return spec
}

func errorResponse(ctx *fiber.Ctx, status int, err error) error {
	logrus.Debugf("request failed (%d): %v", status, err)
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
