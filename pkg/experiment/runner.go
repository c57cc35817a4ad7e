// Package experiment drives a benchmark corpus: it generates every graph from a
// single seeded stream, synthesizes edge weights and runs the community and
// induced-subgraph benchmarks on it, in declaration order.
package experiment

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/dd0wney/cluso-graphbench/pkg/algorithms"
	"github.com/dd0wney/cluso-graphbench/pkg/bench"
	"github.com/dd0wney/cluso-graphbench/pkg/generate"
	"github.com/dd0wney/cluso-graphbench/pkg/graph"
	"github.com/dd0wney/cluso-graphbench/pkg/logging"
	"github.com/dd0wney/cluso-graphbench/pkg/metrics"
	"github.com/dd0wney/cluso-graphbench/pkg/rng"
	"github.com/dd0wney/cluso-graphbench/pkg/timing"
)

// leidenStream is the Derive offset of the stream Leiden's refinement draws from.
// Keeping it apart from the generator stream makes every corpus graph independent
// of how many Leiden calls ran before it.
const leidenStream = 1

// Config configures a Runner. Only Source is required.
type Config struct {
	Source  *rng.Source   // generator and weight stream
	Library bench.Library // defaults to algorithms.NewLibrary on a derived stream
	Clock   timing.Clock  // defaults to timing.SystemClock
	Sinks   []timing.Sink // report destinations
	Logger  logging.Logger    // defaults to logging.DefaultLogger
	Metrics *metrics.Registry // optional
}

// Runner executes corpus runs sequentially.
type Runner struct {
	src     *rng.Source
	lib     bench.Library
	engine  *timing.Engine
	logger  logging.Logger
	metrics *metrics.Registry
	runID   string
}

// NewRunner creates a Runner from cfg.
func NewRunner(cfg Config) (*Runner, error) {
	if cfg.Source == nil {
		return nil, graph.InvalidParameterError("NewRunner", "random source is required")
	}

	logger := logging.OrDefault(cfg.Logger)
	lib := cfg.Library
	if lib == nil {
		lib = algorithms.NewLibrary(cfg.Source.Derive(leidenStream))
	}

	runID := uuid.NewString()
	logger = logger.With(logging.RunID(runID), logging.Component("experiment"))

	engine := timing.NewEngine(cfg.Clock, cfg.Sinks...)
	engine.AddSink(logSink{logger: logger})
	if cfg.Metrics != nil {
		engine.AddSink(metricsSink{reg: cfg.Metrics})
	}

	return &Runner{
		src:     cfg.Source,
		lib:     lib,
		engine:  engine,
		logger:  logger,
		metrics: cfg.Metrics,
		runID:   runID,
	}, nil
}

// RunID identifies this runner in logs.
func (r *Runner) RunID() string {
	return r.runID
}

// Run executes every run of c in order. The first failure aborts the corpus.
func (r *Runner) Run(c *Corpus) error {
	if c == nil {
		return graph.InvalidParameterError("Run", "corpus is nil")
	}
	if err := c.Validate(); err != nil {
		err = graph.NewError("Run").Kind(graph.InvalidParameter).Cause(err).Err()
		r.fail(err)
		return err
	}

	r.logger.Info("corpus started", logging.Count(len(c.Runs)), logging.Seed(r.src.Seed()))
	start := time.Now()

	for i := range c.Runs {
		if err := r.RunOne(&c.Runs[i]); err != nil {
			r.fail(err)
			return err
		}
	}

	r.logger.Info("corpus finished", logging.Count(len(c.Runs)), logging.Latency(time.Since(start)))
	return nil
}

// RunOne generates the graph of d, draws its weights and runs both benchmarks.
func (r *Runner) RunOne(d *Descriptor) error {
	if err := d.Validate(); err != nil {
		return graph.NewError("RunOne").Kind(graph.InvalidParameter).Cause(err).Err()
	}

	spec := d.Spec()
	logger := r.logger.With(logging.Model(string(spec.Model)), logging.String("graph", d.Name))

	gen := logging.StartTimer(logger, "graph generated")
	g, err := generate.FromSpec(r.src, spec)
	if err != nil {
		gen.EndError(err)
		return err
	}
	elapsed := gen.End()
	if r.metrics != nil {
		r.metrics.RecordGraph(string(spec.Model), g.VertexCount(), g.EdgeCount(), elapsed)
	}
	logger.Debug("graph shape",
		logging.Vertices(g.VertexCount()),
		logging.Edges(g.EdgeCount()),
		logging.String("spec", spec.String()))

	var weights []float64
	if !d.Unweighted {
		if weights, err = generate.RandomWeights(r.src, g, nil); err != nil {
			return err
		}
	}

	if _, err := bench.Community(r.engine, r.lib, g, weights, d.Name, d.Repetitions); err != nil {
		return err
	}
	if _, err := bench.InducedSubgraphSweep(r.engine, r.lib, g, d.Name, d.SweepReps(), logger); err != nil {
		return err
	}

	fields := []logging.Field{logging.Vertices(g.VertexCount()), logging.Edges(g.EdgeCount())}
	if r.metrics != nil {
		r.metrics.UpdateSystemMetrics()
		if s, err := r.metrics.Summary(); err == nil {
			fields = append(fields, logging.String("heap", humanize.IBytes(s.MemoryAllocBytes)))
		}
	}
	logger.Info("graph finished", fields...)
	return nil
}

func (r *Runner) fail(err error) {
	kind := graph.KindOf(err)
	r.logger.Error("corpus aborted", logging.Error(err), logging.String("kind", kind.String()))
	if r.metrics != nil {
		r.metrics.RecordFailure(kind.String())
	}
}
