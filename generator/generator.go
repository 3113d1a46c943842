package generator

import (
	"context"
	"fmt"
	"iter"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/PatrikBak/GeoGen-sub011/arguments"
	"github.com/PatrikBak/GeoGen-sub011/core"
	"github.com/PatrikBak/GeoGen-sub011/filter"
	"github.com/PatrikBak/GeoGen-sub011/internal/telemetry"
	"github.com/PatrikBak/GeoGen-sub011/registry"
)

// Generator produces the non-redundant configurations reachable from a seed.
// A Generator may run several times; each Generate call starts from scratch.
type Generator struct {
	constructions []*core.Construction
	oracle        filter.Oracle
	opts          Options

	mu    sync.Mutex
	stats Stats
}

// New returns a Generator applying constructions, consulting oracle for
// every candidate. Returns ErrNoConstructions, filter.ErrNilOracle or
// ErrOptionViolation for invalid input.
func New(constructions []*core.Construction, oracle filter.Oracle, opts ...Option) (*Generator, error) {
	if len(constructions) == 0 {
		return nil, ErrNoConstructions
	}
	for i, c := range constructions {
		if c == nil {
			return nil, fmt.Errorf("%w: construction %d is nil", ErrNoConstructions, i)
		}
	}
	if oracle == nil {
		return nil, filter.ErrNilOracle
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Generator{
		constructions: append([]*core.Construction(nil), constructions...),
		oracle:        oracle,
		opts:          o,
	}, nil
}

// Stats returns a snapshot of the statistics of the current or last run.
func (g *Generator) Stats() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()
	s := g.stats
	s.Layers = append([]LayerStats(nil), g.stats.Layers...)

	return s
}

// walker holds the mutable state of one run.
type walker struct {
	g        *Generator
	ctx      context.Context
	log      zerolog.Logger
	reg      *registry.Registry
	filter   *filter.Filter
	initial  *core.Configuration
	baseline map[core.ObjectType]int
}

// Generate lazily yields every accepted configuration, layer by layer.
//
// Invalid input, oracle failures and context cancellation are yielded once as
// an error and end the sequence. Breaking out of the loop stops generation
// immediately; nothing beyond the current candidate is computed.
func (g *Generator) Generate(ctx context.Context, in Input) iter.Seq2[Result, error] {
	return func(yield func(Result, error) bool) {
		w, err := g.start(ctx, in)
		if err != nil {
			yield(Result{}, err)
			return
		}

		runCtx, span := telemetry.StartRunSpan(w.ctx, g.Stats().RunID, in.Iterations, len(g.constructions))
		defer span.End()
		w.ctx = runCtx

		layer := []*core.Configuration{w.initial}
		for it := 1; it <= in.Iterations && len(layer) > 0; it++ {
			var ok bool
			if layer, ok = w.expand(it, layer, yield); !ok {
				return
			}
		}
		s := g.Stats()
		w.log.Info().
			Int("results", s.Results()).
			Int("labeled", s.Filter.Labeled).
			Msg("generation finished")
	}
}

// start validates in, seeds the registry and resets the statistics.
func (g *Generator) start(ctx context.Context, in Input) (*walker, error) {
	if in.Iterations < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeIterations, in.Iterations)
	}
	if in.Configuration == nil {
		return nil, ErrNilConfiguration
	}
	if ctx == nil {
		ctx = context.Background()
	}

	reg := g.opts.Registry
	if reg == nil {
		reg = registry.New()
	}
	initial, err := reg.Seed(in.Configuration)
	if err != nil {
		return nil, fmt.Errorf("generator: seed: %w", err)
	}

	runID := uuid.NewString()
	log := g.opts.Logger.With().Str("run_id", runID).Logger()
	f, err := filter.New(g.oracle, filter.WithPolicy(g.opts.Policy), filter.WithLogger(log))
	if err != nil {
		return nil, err
	}

	baseline := make(map[core.ObjectType]int, len(core.ObjectTypes))
	for _, t := range core.ObjectTypes {
		baseline[t] = initial.CountOfType(t)
	}

	g.mu.Lock()
	g.stats = Stats{RunID: runID, RegistryObjects: reg.Len()}
	g.mu.Unlock()
	log.Info().
		Int("iterations", in.Iterations).
		Int("constructions", len(g.constructions)).
		Int("objects", initial.Len()).
		Stringer("policy", g.opts.Policy).
		Msg("generation started")

	return &walker{
		g:        g,
		ctx:      ctx,
		log:      log,
		reg:      reg,
		filter:   f,
		initial:  initial,
		baseline: baseline,
	}, nil
}

// expand builds layer iteration from layer, yielding each accepted
// configuration as soon as it is found. It returns the next layer and false
// when generation must stop.
func (w *walker) expand(iteration int, layer []*core.Configuration, yield func(Result, error) bool) ([]*core.Configuration, bool) {
	w.filter.NextLayer()
	ctx, span := telemetry.StartLayerSpan(w.ctx, iteration, len(layer))
	stats := LayerStats{Iteration: iteration, Inputs: len(layer)}
	candidatesBefore := w.filter.Stats().Candidates
	began := time.Now()
	var next []*core.Configuration

	defer func() {
		stats.Outputs = len(next)
		stats.Candidates = w.filter.Stats().Candidates - candidatesBefore
		stats.Duration = time.Since(began)
		telemetry.EndLayer(ctx, span, iteration, stats.Outputs, stats.Duration)
		telemetry.SetRegistrySize(w.reg.Len())
		w.record(stats)
		w.log.Info().
			Int("iteration", iteration).
			Int("inputs", stats.Inputs).
			Int("outputs", stats.Outputs).
			Int("candidates", stats.Candidates).
			Dur("elapsed", stats.Duration).
			Msg("layer expanded")
	}()

	for _, parent := range layer {
		for _, c := range w.g.constructions {
			if !w.withinCap(parent, c) {
				stats.SkippedByCap++
				continue
			}
			for args, err := range arguments.All(parent, c) {
				if err != nil {
					yield(Result{}, fmt.Errorf("generator: %w", err))
					return nil, false
				}
				// cancellation check once per candidate
				select {
				case <-ctx.Done():
					yield(Result{}, ctx.Err())
					return nil, false
				default:
				}

				outs, err := w.reg.Construct(c, args)
				if err != nil {
					yield(Result{}, fmt.Errorf("generator: %w", err))
					return nil, false
				}
				d, err := w.filter.Accept(ctx, parent, outs...)
				if err != nil {
					yield(Result{}, fmt.Errorf("generator: %w", err))
					return nil, false
				}
				if !d.Accepted() {
					continue
				}

				next = append(next, d.Configuration)
				telemetry.RecordResult(ctx, iteration)
				res := Result{Configuration: d.Configuration, Iteration: iteration, Parent: parent, Key: d.Key}
				if !yield(res, nil) {
					return nil, false
				}
			}
		}
	}

	return next, true
}

// withinCap reports whether applying c to parent keeps every capped type
// within its number of added objects.
func (w *walker) withinCap(parent *core.Configuration, c *core.Construction) bool {
	if len(w.g.opts.MaxObjects) == 0 {
		return true
	}
	adds := make(map[core.ObjectType]int, 1)
	for _, t := range c.Outputs() {
		adds[t]++
	}
	for t, n := range adds {
		limit, capped := w.g.opts.MaxObjects[t]
		if !capped {
			continue
		}
		if parent.CountOfType(t)-w.baseline[t]+n > limit {
			return false
		}
	}

	return true
}

func (w *walker) record(l LayerStats) {
	w.g.mu.Lock()
	w.g.stats.Layers = append(w.g.stats.Layers, l)
	w.g.stats.Filter = w.filter.Stats()
	w.g.stats.RegistryObjects = w.reg.Len()
	w.g.mu.Unlock()

	w.g.opts.OnLayer(l)
}
