// Package arguments enumerates every role-respecting assignment of a
// configuration's objects to a construction's parameter signature.
//
// What:
//
//   - For each object type the construction consumes k times, every ordered
//     k-variation of the configuration's objects of that type is produced
//     (variations, not combinations: linear position encodes a role except where
//     a shared SetParam collapses it).
//   - The cross product across types (in core.ObjectTypes order) is fed through
//     signature.Match to build full Arguments.
//   - Results are deduplicated by Arguments.Key, the canonical string with every
//     set node's children sorted, so arguments differing only by reordering
//     inside a set node are emitted once. First occurrence wins.
//
// Example: Midpoint(Set(Point, 2)) over {A, B, C} yields the six variations
// AB, AC, BA, BC, CA, CB, which collapse to {A,B}, {A,C}, {B,C}.
//
// Complexity: Π_t n_t!/(n_t-k_t)! matcher calls, each O(L log L).
package arguments

import (
	"fmt"
	"iter"

	"github.com/PatrikBak/GeoGen-sub011/core"
	"github.com/PatrikBak/GeoGen-sub011/internal/combinatorics"
	"github.com/PatrikBak/GeoGen-sub011/signature"
)

// Generate returns the distinct arguments of c over cfg in enumeration order.
// It returns nil when cfg lacks objects for c.
func Generate(cfg *core.Configuration, c *core.Construction) ([]core.Arguments, error) {
	var out []core.Arguments
	for args, err := range All(cfg, c) {
		if err != nil {
			return nil, err
		}
		out = append(out, args)
	}

	return out, nil
}

// All lazily yields the distinct arguments of c over cfg. A matcher failure is
// yielded once as an error and ends the sequence.
func All(cfg *core.Configuration, c *core.Construction) iter.Seq2[core.Arguments, error] {
	return func(yield func(core.Arguments, error) bool) {
		// 1) Required types and their multiplicities, in a stable order
		var types []core.ObjectType
		for _, t := range core.ObjectTypes {
			if c.Requires(t) > 0 {
				types = append(types, t)
			}
		}

		// 2) Materialize the per-type variations; bail out early if any type is short
		perType := make([][][]*core.Object, len(types))
		for i, t := range types {
			available := cfg.ObjectsOfType(t)
			k := c.Requires(t)
			if len(available) < k {
				return
			}
			for v := range combinatorics.Variations(available, k) {
				perType[i] = append(perType[i], append([]*core.Object(nil), v...))
			}
		}

		// 3) Cross product → matcher → dedup by canonical key
		seen := make(map[string]struct{})
		params := c.Signature()
		for combo := range combinatorics.Product(perType) {
			pool := make(signature.Pool, len(types))
			for i, t := range types {
				pool[t] = combo[i]
			}
			args, err := signature.Match(params, pool)
			if err != nil {
				yield(nil, fmt.Errorf("arguments: %s: %w", c.Name(), err))
				return
			}
			key := args.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			if !yield(args, nil) {
				return
			}
		}
	}
}

// Count returns the number of distinct arguments of c over cfg.
func Count(cfg *core.Configuration, c *core.Construction) (int, error) {
	n := 0
	for _, err := range All(cfg, c) {
		if err != nil {
			return 0, err
		}
		n++
	}

	return n, nil
}
