package runner

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/san-kum/dynsim/internal/config"
	"github.com/san-kum/dynsim/internal/dataflow"
	"github.com/san-kum/dynsim/internal/generation"
	"github.com/san-kum/dynsim/internal/ioformat"
	"github.com/san-kum/dynsim/internal/nbody"
	"github.com/san-kum/dynsim/internal/simulation"
)

const queueCapacity = 64

// Result summarizes a completed run.
type Result struct {
	Steps              int
	FinalTime          float64
	TrajectorySamples  int
	DiagnosticsSamples int
}

// Runner owns one generator/integrator pair and fans its output out to
// the trajectory and diagnostics CSV writers at three independent
// cadences (render/diagnostics/analytics), the Go rendering of the
// teacher's Simulator.Run step loop and Experiment.Setup/Run split,
// generalized from dynamical-model state vectors to nbody.System
// snapshots.
type Runner struct {
	cfg        config.Config
	generator  generation.Generator
	integrator simulation.Integrator

	trajectoryPool   *dataflow.BufferPool[nbody.System]
	trajectoryQueue  *dataflow.BoundedQueue[nbody.Snapshot[*nbody.System]]
	diagnosticsQueue *dataflow.BoundedQueue[nbody.Snapshot[nbody.Diagnostics]]
	liveQueue        *dataflow.BoundedQueue[nbody.Snapshot[nbody.Diagnostics]]

	// scratch is a non-pooled buffer reused for diagnostics-only samples
	// (no render due the same step), so a diagnostics sample never needs
	// to check out a trajectory buffer it won't otherwise retain.
	scratch nbody.System

	trajectoryPath  string
	diagnosticsPath string
}

// EnableLive attaches a second, best-effort diagnostics queue for a live
// display (internal/render.Live) to consume alongside the diagnostics
// CSV writer. Frames are dropped rather than blocking the step loop
// when the display falls behind, since a live view only needs the
// latest state. Must be called before Run.
func (r *Runner) EnableLive(capacity int) *dataflow.BoundedQueue[nbody.Snapshot[nbody.Diagnostics]] {
	r.liveQueue = dataflow.NewBoundedQueue[nbody.Snapshot[nbody.Diagnostics]](capacity)
	return r.liveQueue
}

// New builds a Runner from cfg. streamReader is only consulted when
// cfg.Generation.Type is "stream"; it is nil for every other generator.
func New(cfg config.Config, trajectoryPath, diagnosticsPath string, streamReader io.Reader) (*Runner, error) {
	gen, err := buildGenerator(cfg.Generation, cfg.Seed, streamReader)
	if err != nil {
		return nil, err
	}

	integratorSettings, err := cfg.Simulation.IntegratorSettings()
	if err != nil {
		return nil, err
	}
	integ, err := simulation.NewIntegrator(integratorSettings)
	if err != nil {
		return nil, err
	}

	return &Runner{
		cfg:        cfg,
		generator:  gen,
		integrator: integ,
		// Pool capacity is queueCapacity+1: the integrator always holds
		// one buffer checked out while filling it, so at most
		// queueCapacity buffers can sit in the queue plus the one being
		// filled — matching spec's deadlock-free sizing rule
		// (pool.size >= queue.capacity + 1).
		trajectoryPool:   dataflow.NewBufferPool(queueCapacity+1, func() *nbody.System { s := nbody.NewSystem(0); return &s }),
		trajectoryQueue:  dataflow.NewBoundedQueue[nbody.Snapshot[*nbody.System]](queueCapacity),
		diagnosticsQueue: dataflow.NewBoundedQueue[nbody.Snapshot[nbody.Diagnostics]](queueCapacity),
		scratch:          nbody.NewSystem(0),
		trajectoryPath:   trajectoryPath,
		diagnosticsPath:  diagnosticsPath,
	}, nil
}

func buildGenerator(g config.GenerationConfig, seed int64, streamReader io.Reader) (generation.Generator, error) {
	if g.Type == "stream" {
		if streamReader == nil {
			return nil, fmt.Errorf("runner: generation type %q requires a stream reader", g.Type)
		}
		return generation.NewStreamGenerator(streamReader), nil
	}

	settings, err := g.GeneratorSettings()
	if err != nil {
		return nil, err
	}
	return generation.NewGenerator(settings, uint32(seed))
}

// Run generates the initial system, then drives the integrator to
// cfg.Simulation.Duration while two writer goroutines drain the
// trajectory/diagnostics queues concurrently with the step loop.
// Writer I/O failures are reported but do not stop the run, matching
// spec.md's "fatal to the writer thread; runner continues" handling.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	initial, err := r.generator.CreateSystem()
	if err != nil {
		return nil, err
	}
	if err := r.integrator.SetSystem(initial); err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	writerErrs := make(chan error, 2)

	wg.Add(2)
	go r.writeTrajectory(ctx, &wg, writerErrs)
	go r.writeDiagnostics(ctx, &wg, writerErrs)

	result := &Result{}
	nextRender, nextDiagnostics, nextAnalytics := 0.0, 0.0, 0.0
	sim := r.cfg.Simulation

	runErr := func() error {
		for r.integrator.SystemTime() < sim.Duration {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			if err := r.integrator.Step(ctx); err != nil {
				return err
			}
			result.Steps++

			t := r.integrator.SystemTime()
			result.FinalTime = t

			needRender := t+1e-12 >= nextRender
			needDiagnostics := t+1e-12 >= nextDiagnostics

			// Lease a System buffer from the pool, copy the current
			// system into it, and push {buffer, t} onto the snapshot
			// queue: the writer goroutine releases it back to the pool
			// once it has read the row out, so no System is ever
			// heap-allocated on the sampling path itself.
			var buf *nbody.System
			if needRender {
				buf = r.trajectoryPool.Acquire()
				r.integrator.CopySystemInto(buf)
			}

			if needDiagnostics {
				diagSrc := &r.scratch
				if buf != nil {
					diagSrc = buf
				} else {
					r.integrator.CopySystemInto(diagSrc)
				}
				diag := nbody.ComputeDiagnostics(*diagSrc, sim.SofteningParameter)
				snap := nbody.Snapshot[nbody.Diagnostics]{Time: t, Data: diag}
				if pushErr := r.diagnosticsQueue.Push(ctx, snap); pushErr == nil {
					result.DiagnosticsSamples++
				}
				if r.liveQueue != nil {
					r.liveQueue.TryPush(snap)
				}
				nextDiagnostics += sim.DiagnosticsStep
			}

			if needRender {
				if pushErr := r.trajectoryQueue.Push(ctx, nbody.Snapshot[*nbody.System]{Time: t, Data: buf}); pushErr == nil {
					result.TrajectorySamples++
				} else {
					r.trajectoryPool.Release(buf)
				}
				nextRender += sim.RenderStep
			}
			if t+1e-12 >= nextAnalytics {
				nextAnalytics += sim.AnalyticsStep
			}
		}
		return nil
	}()

	r.trajectoryQueue.Close()
	r.diagnosticsQueue.Close()
	if r.liveQueue != nil {
		r.liveQueue.Close()
	}
	wg.Wait()
	close(writerErrs)

	if runErr != nil {
		return result, runErr
	}

	for err := range writerErrs {
		return result, fmt.Errorf("runner: writer error: %w", err)
	}
	return result, nil
}

func (r *Runner) writeTrajectory(ctx context.Context, wg *sync.WaitGroup, errs chan<- error) {
	defer wg.Done()

	w, err := ioformat.NewTrajectoryWriter(r.trajectoryPath)
	if err != nil {
		errs <- err
		r.drainTrajectory(ctx)
		return
	}
	defer w.Close()

	for {
		snap, open, err := r.trajectoryQueue.PopChecked(ctx)
		if err != nil || !open {
			return
		}
		if err := w.WriteSnapshot(nbody.Snapshot[nbody.System]{Time: snap.Time, Data: *snap.Data}); err != nil {
			select {
			case errs <- err:
			default:
			}
		}
		r.trajectoryPool.Release(snap.Data)
	}
}

func (r *Runner) writeDiagnostics(ctx context.Context, wg *sync.WaitGroup, errs chan<- error) {
	defer wg.Done()

	w, err := ioformat.NewDiagnosticsWriter(r.diagnosticsPath)
	if err != nil {
		errs <- err
		r.drainDiagnostics(ctx)
		return
	}
	defer w.Close()

	for {
		snap, open, err := r.diagnosticsQueue.PopChecked(ctx)
		if err != nil || !open {
			return
		}
		if err := w.WriteSnapshot(snap); err != nil {
			select {
			case errs <- err:
			default:
			}
		}
	}
}

// drainTrajectory/drainDiagnostics discard queued items when the
// writer's file could not be opened, so the producer's blocking Push
// calls still unblock instead of deadlocking against a writer that
// already gave up.
func (r *Runner) drainTrajectory(ctx context.Context) {
	for {
		snap, open, err := r.trajectoryQueue.PopChecked(ctx)
		if err != nil || !open {
			return
		}
		r.trajectoryPool.Release(snap.Data)
	}
}

func (r *Runner) drainDiagnostics(ctx context.Context) {
	for {
		if _, open, err := r.diagnosticsQueue.PopChecked(ctx); err != nil || !open {
			return
		}
	}
}
