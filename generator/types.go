package generator

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/PatrikBak/GeoGen-sub011/core"
	"github.com/PatrikBak/GeoGen-sub011/filter"
	"github.com/PatrikBak/GeoGen-sub011/registry"
)

// Sentinel errors for generation.
var (
	// ErrNegativeIterations is yielded when Input.Iterations < 0.
	ErrNegativeIterations = errors.New("generator: negative iteration count")

	// ErrNilConfiguration is yielded when Input.Configuration is nil.
	ErrNilConfiguration = errors.New("generator: initial configuration is nil")

	// ErrNoConstructions is returned by New for an empty or nil-holding construction list.
	ErrNoConstructions = errors.New("generator: no constructions")

	// ErrOptionViolation is returned by New when an invalid Option is supplied.
	ErrOptionViolation = errors.New("generator: invalid option supplied")
)

// Input is one generation request.
type Input struct {
	// Configuration is the seed, layer 0. It is not yielded.
	Configuration *core.Configuration

	// Iterations is the number of layers to build. Zero yields nothing.
	Iterations int
}

// Result is one accepted configuration.
type Result struct {
	// Configuration is the accepted configuration.
	Configuration *core.Configuration

	// Iteration is the layer it belongs to, starting at 1.
	Iteration int

	// Parent is the configuration it extends.
	Parent *core.Configuration

	// Key is its canonical form.
	Key string
}

// Option configures a Generator via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters of a Generator.
type Options struct {
	// MaxObjects caps, per type, the number of objects added on top of the
	// initial configuration. Types absent from the map are unbounded.
	MaxObjects map[core.ObjectType]int

	// Policy is the canonical cache lifetime of the filter. Default PolicyGlobal.
	Policy filter.Policy

	// Logger receives layer summaries at Info and rejections at Debug.
	Logger zerolog.Logger

	// Registry, if non-nil, is used instead of a fresh registry per run.
	Registry *registry.Registry

	// OnLayer is called after each layer with its statistics.
	OnLayer func(LayerStats)

	err error
}

// DefaultOptions returns no caps, the global policy, a disabled logger, a
// fresh registry per run and a no-op layer hook.
func DefaultOptions() Options {
	return Options{
		MaxObjects: nil,
		Policy:     filter.PolicyGlobal,
		Logger:     zerolog.Nop(),
		Registry:   nil,
		OnLayer:    func(LayerStats) {},
	}
}

// WithMaxObjects caps the number of added objects of type t.
//
//	n >= 0: at most n objects of type t are added
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxObjects(t core.ObjectType, n int) Option {
	return func(o *Options) {
		switch {
		case !t.Valid():
			o.err = fmt.Errorf("%w: unknown object type %d", ErrOptionViolation, int(t))
		case n < 0:
			o.err = fmt.Errorf("%w: cap for %s cannot be negative (%d)", ErrOptionViolation, t, n)
		default:
			if o.MaxObjects == nil {
				o.MaxObjects = make(map[core.ObjectType]int)
			}
			o.MaxObjects[t] = n
		}
	}
}

// WithPolicy sets the filter policy.
func WithPolicy(p filter.Policy) Option {
	return func(o *Options) {
		if p != filter.PolicyGlobal && p != filter.PolicyPerLayer {
			o.err = fmt.Errorf("%w: unknown policy %d", ErrOptionViolation, int(p))
			return
		}
		o.Policy = p
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithRegistry shares r across runs instead of creating one per run.
func WithRegistry(r *registry.Registry) Option {
	return func(o *Options) {
		if r != nil {
			o.Registry = r
		}
	}
}

// WithOnLayer registers a callback run after each layer.
func WithOnLayer(fn func(LayerStats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLayer = fn
		}
	}
}

// LayerStats describes one expanded layer.
type LayerStats struct {
	Iteration int
	Inputs    int
	Outputs   int
	// Candidates counts filter calls made while expanding the layer.
	Candidates int
	// SkippedByCap counts (configuration, construction) pairs pruned by MaxObjects.
	SkippedByCap int
	Duration     time.Duration
}

// Stats describes the most recent run.
type Stats struct {
	RunID           string
	Layers          []LayerStats
	Filter          filter.Stats
	RegistryObjects int
}

// Results returns the number of yielded configurations.
func (s Stats) Results() int {
	n := 0
	for _, l := range s.Layers {
		n += l.Outputs
	}

	return n
}
