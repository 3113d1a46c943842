package filter

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/PatrikBak/GeoGen-sub011/core"
)

var (
	// ErrNilOracle is returned by New when no oracle is supplied.
	ErrNilOracle = errors.New("filter: oracle is nil")

	// ErrNilConfiguration is returned by Accept for a nil parent.
	ErrNilConfiguration = errors.New("filter: configuration is nil")

	// ErrInvalidVerdict indicates an oracle verdict naming a nil object.
	ErrInvalidVerdict = errors.New("filter: invalid oracle verdict")
)

// Reason says why a candidate was rejected. ReasonNone means it was accepted.
type Reason int

const (
	ReasonNone                 Reason = iota // accepted
	ReasonDuplicateObject                    // an added object is already present or out of scope
	ReasonKnownInconstructible               // contains an object the oracle already refused
	ReasonSymmetric                          // canonical form already emitted
	ReasonOracleFailure                      // the oracle could not examine the configuration
	ReasonInconstructible                    // the oracle reported inconstructible objects
	ReasonCoincidence                        // the oracle reported two coinciding objects
)

var reasonNames = [...]string{
	ReasonNone:                 "accepted",
	ReasonDuplicateObject:      "duplicate_object",
	ReasonKnownInconstructible: "known_inconstructible",
	ReasonSymmetric:            "symmetric",
	ReasonOracleFailure:        "oracle_failure",
	ReasonInconstructible:      "inconstructible",
	ReasonCoincidence:          "coincidence",
}

// Reasons lists every reason in declaration order.
var Reasons = []Reason{
	ReasonNone, ReasonDuplicateObject, ReasonKnownInconstructible, ReasonSymmetric,
	ReasonOracleFailure, ReasonInconstructible, ReasonCoincidence,
}

// String returns a snake_case label, also used as the metrics label.
func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return "unknown"
	}

	return reasonNames[r]
}

// Verdict is the oracle's answer for one configuration.
type Verdict struct {
	// Examined is false when the oracle could not analyze the configuration
	// (e.g. numerical trouble); the configuration is then rejected.
	Examined bool

	// Inconstructible lists objects that cannot be drawn. Their ids are
	// remembered and any later configuration containing them is rejected
	// without consulting the oracle.
	Inconstructible []*core.Object

	// Duplicate, if non-nil, holds two objects that turned out to be the
	// same geometric object.
	Duplicate *[2]*core.Object
}

// Oracle analyzes configurations geometrically. Implementations live outside
// this module; a returned error is a transport failure and aborts generation.
type Oracle interface {
	Register(ctx context.Context, cfg *core.Configuration) (Verdict, error)
}

// OracleFunc adapts a function to Oracle.
type OracleFunc func(ctx context.Context, cfg *core.Configuration) (Verdict, error)

// Register calls f.
func (f OracleFunc) Register(ctx context.Context, cfg *core.Configuration) (Verdict, error) {
	return f(ctx, cfg)
}

// AcceptAll examines and accepts every configuration.
var AcceptAll Oracle = OracleFunc(func(context.Context, *core.Configuration) (Verdict, error) {
	return Verdict{Examined: true}, nil
})

// Policy selects the lifetime of the emitted canonical forms cache.
type Policy int

const (
	// PolicyGlobal keeps every emitted canonical form for the whole run.
	PolicyGlobal Policy = iota
	// PolicyPerLayer forgets emitted forms whenever NextLayer is called.
	PolicyPerLayer
)

// String returns "global" or "per-layer".
func (p Policy) String() string {
	switch p {
	case PolicyGlobal:
		return "global"
	case PolicyPerLayer:
		return "per-layer"
	default:
		return "unknown"
	}
}

// ParsePolicy accepts the labels produced by String; the empty string is PolicyGlobal.
func ParsePolicy(s string) (Policy, bool) {
	switch s {
	case "", "global":
		return PolicyGlobal, true
	case "per-layer", "layer":
		return PolicyPerLayer, true
	default:
		return PolicyGlobal, false
	}
}

// Options configures a Filter.
type Options struct {
	// Policy is the canonical cache lifetime. Default PolicyGlobal.
	Policy Policy

	// Logger receives one Debug event per rejected candidate. Default zerolog.Nop().
	Logger zerolog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the global policy and a disabled logger.
func DefaultOptions() Options {
	return Options{
		Policy: PolicyGlobal,
		Logger: zerolog.Nop(),
	}
}

// WithPolicy sets the canonical cache policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Decision is the outcome of Accept.
type Decision struct {
	// Configuration is parent extended with the added objects; nil when
	// extending failed.
	Configuration *core.Configuration

	// Reason is ReasonNone for accepted candidates.
	Reason Reason

	// Key is the canonical form, empty when the candidate was rejected before
	// canonicalization.
	Key string

	// Labeled is set when the configuration, as labeled, is already the least
	// member of its symmetry class.
	Labeled bool
}

// Accepted reports whether the candidate passed every check.
func (d Decision) Accepted() bool { return d.Reason == ReasonNone }

// Stats counts candidates by outcome.
type Stats struct {
	Candidates int
	ByReason   map[Reason]int

	// Labeled counts accepted configurations that were already canonically
	// labeled; the others stand for a class whose least member was not met first.
	Labeled int
}

// Accepted returns the number of accepted candidates.
func (s Stats) Accepted() int { return s.ByReason[ReasonNone] }

// Rejected returns the number of rejected candidates.
func (s Stats) Rejected() int { return s.Candidates - s.Accepted() }
