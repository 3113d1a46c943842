// Package generator runs the breadth-first search over configurations.
//
// What
//
//   - Layer 0 is the initial configuration (never yielded).
//   - Layer i+1 holds every accepted extension of a layer-i configuration by
//     one application of one construction: all distinct arguments of the
//     construction are enumerated (package arguments), their output objects
//     are interned (package registry) and the candidate is judged by a
//     filter.Filter (duplicates, inconstructible objects, symmetric
//     duplicates, the geometry oracle).
//   - Accepted configurations are yielded as soon as they are found, so a
//     consumer that stops early pays only for what it consumed.
//   - An optional per-type cap on added objects prunes whole
//     (configuration, construction) pairs before any enumeration.
//
// Determinism
//
//	Constructions are tried in the given order, arguments in enumeration
//	order and configurations in the order they were accepted. Every run over
//	the same input yields the same results with the same representatives:
//	the first-found member of each symmetry class.
//
// Observability
//
//	Each run gets a uuid run id attached to its log events. A span covers the
//	run and one child span covers each layer; candidate outcomes, layer sizes
//	and durations are exported through OpenTelemetry and prometheus.
//
// Complexity
//
//   - Time:   Σ over layers of |layer| · Σ_c (arguments of c) · (canonical resolution + oracle)
//   - Memory: O(|layer| + |next layer|) configurations plus the registry and the filter caches,
//     which grow for the whole run
//
// Usage
//
//	g, err := generator.New(constructions, oracle,
//	    generator.WithMaxObjects(core.Point, 2),
//	    generator.WithLogger(log),
//	)
//	if err != nil {
//	    // ErrNoConstructions, filter.ErrNilOracle or ErrOptionViolation
//	}
//	for res, err := range g.Generate(ctx, generator.Input{Configuration: seed, Iterations: 2}) {
//	    if err != nil {
//	        // ErrNegativeIterations, ErrNilConfiguration, ctx.Err() or an oracle failure
//	    }
//	    use(res.Configuration)
//	}
package generator
