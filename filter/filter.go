// Package filter decides which candidate configurations survive generation.
//
// A candidate is a parent configuration plus the objects produced by one
// construction application. Accept runs four checks, cheapest first:
//
//  1. Extend: an added object already present (or referring to an object
//     outside the parent) rejects with ReasonDuplicateObject.
//  2. Known inconstructible: any object the oracle refused before rejects
//     with ReasonKnownInconstructible, without consulting the oracle again.
//  3. Symmetry: a canonical form that was already emitted rejects with
//     ReasonSymmetric.
//  4. Oracle: Register decides; not examined, inconstructible objects and
//     coinciding objects reject with the matching reason.
//
// The canonical form is recorded only once the oracle accepts, so a class
// whose first member was refused is still represented by a later member.
//
// Policies:
//
//   - PolicyGlobal keeps emitted forms for the whole run.
//   - PolicyPerLayer forgets them on NextLayer. Since configurations of one
//     layer all carry the same number of construction steps and objects, two
//     members of one class can only meet in the same layer, so both policies
//     emit the same results; the per-layer cache just holds less memory.
//
// Complexity: Accept is O(n) for the extension plus one canonical resolution
// (see package canonical) plus the oracle call.
package filter

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/PatrikBak/GeoGen-sub011/canonical"
	"github.com/PatrikBak/GeoGen-sub011/core"
	"github.com/PatrikBak/GeoGen-sub011/internal/telemetry"
)

// Filter holds the run-wide state of the checks. It is not safe for concurrent use.
type Filter struct {
	oracle          Oracle
	opts            Options
	emitted         map[string]struct{}
	inconstructible map[int]struct{}
	stats           Stats
}

// New returns a Filter consulting oracle.
func New(oracle Oracle, opts ...Option) (*Filter, error) {
	if oracle == nil {
		return nil, ErrNilOracle
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Filter{
		oracle:          oracle,
		opts:            o,
		emitted:         make(map[string]struct{}),
		inconstructible: make(map[int]struct{}),
		stats:           Stats{ByReason: make(map[Reason]int)},
	}, nil
}

// Policy returns the configured cache policy.
func (f *Filter) Policy() Policy { return f.opts.Policy }

// Accept decides whether parent extended with added is a new configuration.
// Rejections are not errors; an error means the oracle failed and the
// decision is unusable.
func (f *Filter) Accept(ctx context.Context, parent *core.Configuration, added ...*core.Object) (Decision, error) {
	if parent == nil {
		return Decision{}, ErrNilConfiguration
	}

	// 1) Extend
	cfg, err := parent.Extend(added...)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateObject) || errors.Is(err, core.ErrObjectOutOfScope) {
			return f.reject(Decision{Reason: ReasonDuplicateObject}, err), nil
		}

		return Decision{}, fmt.Errorf("filter: Accept: %w", err)
	}
	d := Decision{Configuration: cfg}

	// 2) Known inconstructible objects
	for _, o := range cfg.Constructed() {
		if f.IsInconstructible(o.ID()) {
			d.Reason = ReasonKnownInconstructible
			return f.reject(d, nil), nil
		}
	}

	// 3) Symmetric duplicate of an emitted configuration
	form := canonical.Resolve(cfg)
	d.Key = form.Key
	d.Labeled = form.Labeled()
	if _, seen := f.emitted[d.Key]; seen {
		d.Reason = ReasonSymmetric
		return f.reject(d, nil), nil
	}

	// 4) Geometry
	verdict, err := f.oracle.Register(ctx, cfg)
	if err != nil {
		return Decision{}, fmt.Errorf("filter: Accept: oracle: %w", err)
	}
	switch {
	case !verdict.Examined:
		d.Reason = ReasonOracleFailure
	case len(verdict.Inconstructible) > 0:
		if slices.Contains(verdict.Inconstructible, nil) {
			return Decision{}, fmt.Errorf("%w: nil inconstructible object", ErrInvalidVerdict)
		}
		for _, o := range verdict.Inconstructible {
			f.inconstructible[o.ID()] = struct{}{}
		}
		d.Reason = ReasonInconstructible
	case verdict.Duplicate != nil:
		d.Reason = ReasonCoincidence
	}
	if d.Reason != ReasonNone {
		return f.reject(d, nil), nil
	}

	f.emitted[d.Key] = struct{}{}
	if d.Labeled {
		f.stats.Labeled++
	}
	f.count(ReasonNone)

	return d, nil
}

// NextLayer marks the start of a new generation layer. Under PolicyPerLayer it
// clears the emitted forms; under PolicyGlobal it does nothing.
func (f *Filter) NextLayer() {
	if f.opts.Policy == PolicyPerLayer {
		clear(f.emitted)
	}
}

// Emitted returns the number of canonical forms currently remembered.
func (f *Filter) Emitted() int { return len(f.emitted) }

// MarkInconstructible remembers ids as inconstructible.
func (f *Filter) MarkInconstructible(ids ...int) {
	for _, id := range ids {
		f.inconstructible[id] = struct{}{}
	}
}

// IsInconstructible reports whether id was marked inconstructible.
func (f *Filter) IsInconstructible(id int) bool {
	_, ok := f.inconstructible[id]
	return ok
}

// Stats returns a snapshot of the candidate counters.
func (f *Filter) Stats() Stats {
	by := make(map[Reason]int, len(f.stats.ByReason))
	for r, n := range f.stats.ByReason {
		by[r] = n
	}

	return Stats{Candidates: f.stats.Candidates, ByReason: by, Labeled: f.stats.Labeled}
}

func (f *Filter) reject(d Decision, cause error) Decision {
	f.count(d.Reason)
	ev := f.opts.Logger.Debug().Stringer("reason", d.Reason)
	if d.Key != "" {
		ev = ev.Str("key", d.Key)
	}
	if cause != nil {
		ev = ev.Err(cause)
	}
	ev.Msg("candidate rejected")

	return d
}

func (f *Filter) count(r Reason) {
	f.stats.Candidates++
	f.stats.ByReason[r]++
	telemetry.RecordCandidate(r.String())
}
