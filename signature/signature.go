// Package signature fills a construction's parameter signature with concrete
// objects taken from a typed pool.
//
// What:
//
//   - Match walks the signature depth-first, left-to-right. Every ObjectParam
//     leaf takes the next unused object of its type (a per-type cursor starting
//     at 0); every SetParam node recurses Count times and wraps the results in
//     a SetArg.
//
// The pool order therefore decides roles: the arguments generator feeds one
// ordered variation per type and lets Match distribute it over the tree.
//
// Errors:
//
//   - ErrInsufficientObjects  a cursor ran past the end of its type's list.
//     This is a caller contract violation; callers that pre-check object counts
//     never see it.
//
// Complexity: O(L) for L leaves in the signature.
package signature

import (
	"errors"
	"fmt"

	"github.com/PatrikBak/GeoGen-sub011/core"
)

// ErrInsufficientObjects indicates that the pool holds fewer objects of some
// type than the signature consumes.
var ErrInsufficientObjects = errors.New("signature: insufficient objects")

// Pool maps each object type to the ordered objects available for it.
type Pool map[core.ObjectType][]*core.Object

// matcher holds the cursors of a single Match call.
type matcher struct {
	pool    Pool
	cursors map[core.ObjectType]int
}

// Match builds Arguments for params from pool. Cursors are fresh per call, so
// concurrent or repeated calls never share state.
func Match(params []core.Parameter, pool Pool) (core.Arguments, error) {
	m := &matcher{pool: pool, cursors: make(map[core.ObjectType]int)}
	args := make(core.Arguments, len(params))
	for i, p := range params {
		a, err := m.match(p)
		if err != nil {
			return nil, err
		}
		args[i] = a
	}

	return args, nil
}

// Fits reports whether pool holds enough objects of every type for a construction.
func Fits(c *core.Construction, pool Pool) bool {
	for t, n := range c.Requirements() {
		if len(pool[t]) < n {
			return false
		}
	}

	return true
}

func (m *matcher) match(p core.Parameter) (core.Argument, error) {
	switch p.Kind() {
	case core.ObjectParam:
		t := p.Type()
		i := m.cursors[t]
		if i >= len(m.pool[t]) {
			return core.Argument{}, fmt.Errorf("%w: need more than %d of %s", ErrInsufficientObjects, i, t)
		}
		m.cursors[t] = i + 1

		return core.ObjectArgument(m.pool[t][i]), nil
	case core.SetParam:
		items := make([]core.Argument, p.Count())
		for k := range items {
			a, err := m.match(p.Inner())
			if err != nil {
				return core.Argument{}, err
			}
			items[k] = a
		}

		return core.SetArgument(items...), nil
	default:
		return core.Argument{}, fmt.Errorf("signature: unknown parameter kind %d", int(p.Kind()))
	}
}
