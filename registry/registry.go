// Package registry interns configuration objects for one generation session.
//
// The registry is an append-only arena of objects indexed by id plus a map from
// structural key ("name(args)[index]", argument objects resolved to their ids)
// to the object holding that key. Constructing the same (construction,
// arguments, index) triple along any search path therefore returns the same
// *core.Object with the same id, which whole-configuration deduplication relies on.
//
// A registry is an explicit value passed through a session, never a package
// singleton. It grows monotonically; nothing is ever evicted within a run.
//
// Thread safety: mutations take a write lock, lookups a read lock. Generation
// itself is single-threaded; the locks let finished results be inspected
// from other goroutines.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/PatrikBak/GeoGen-sub011/core"
)

var (
	// ErrConstructionConflict indicates two different constructions sharing a name.
	ErrConstructionConflict = errors.New("registry: construction name conflict")

	// ErrIDConflict indicates a loose object whose id is already held by another object.
	ErrIDConflict = errors.New("registry: id already in use")

	// ErrUnknownObject indicates an object that was never registered here.
	ErrUnknownObject = errors.New("registry: unknown object")

	// ErrInvalidPermutation indicates a relabeling that is not a permutation
	// of the loose-object positions.
	ErrInvalidPermutation = errors.New("registry: invalid permutation")
)

// Option configures a Registry.
type Option func(*Registry)

// WithFirstID sets the first id handed out. Defaults to 0.
func WithFirstID(id int) Option {
	return func(r *Registry) {
		if id >= 0 {
			r.nextID = id
		}
	}
}

// Registry interns objects by structural key.
type Registry struct {
	mu            sync.RWMutex
	nextID        int
	arena         map[int]*core.Object
	byKey         map[string]*core.Object
	constructions map[string]*core.Construction
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		arena:         make(map[int]*core.Object),
		byKey:         make(map[string]*core.Object),
		constructions: make(map[string]*core.Construction),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// NewLoose creates a loose object of type t with the next free id.
func (r *Registry) NewLoose(t core.ObjectType) (*core.Object, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, err := core.NewLooseObject(r.nextID, t)
	if err != nil {
		return nil, err
	}
	r.store(o)

	return o, nil
}

// Construct returns one object per output of applying c to args, reusing the
// registered object for every key seen before and assigning fresh ids otherwise.
//
// Steps:
//  1. Check that the construction name is not bound to a different definition.
//  2. Check that every argument object belongs to this registry.
//  3. For each output index build key = c.Key(args, index).
//  4. Return the stored object, or validate, create, store and return a new one.
func (r *Registry) Construct(c *core.Construction, args core.Arguments) ([]*core.Object, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.bindConstruction(c); err != nil {
		return nil, err
	}
	for _, o := range args.Objects() {
		if o == nil || r.arena[o.ID()] != o {
			return nil, fmt.Errorf("%w: argument of %s", ErrUnknownObject, c.Name())
		}
	}
	out := make([]*core.Object, c.OutputCount())
	for i := range out {
		key := c.Key(args, i)
		if o, ok := r.byKey[key]; ok {
			out[i] = o
			continue
		}
		o, err := core.NewConstructedObject(r.nextID, c, args, i)
		if err != nil {
			return nil, fmt.Errorf("registry: Construct %s: %w", c.Name(), err)
		}
		r.store(o)
		r.byKey[key] = o
		out[i] = o
	}

	return out, nil
}

// Lookup returns the object registered under the key of c applied to args at
// index, without creating it.
func (r *Registry) Lookup(c *core.Construction, args core.Arguments, index int) (*core.Object, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.byKey[c.Key(args, index)]

	return o, ok
}

// Get returns the object with the given id.
func (r *Registry) Get(id int) (*core.Object, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.arena[id]

	return o, ok
}

// Len returns the number of registered objects, loose ones included.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.arena)
}

// Seed registers the objects of an initial configuration and returns an
// equivalent configuration whose constructed objects are the interned ones.
//
// Loose objects keep their ids; an id already held by a different object is
// ErrIDConflict. Constructed objects are re-interned in order, so ids they
// carried before seeding are replaced by registry ids.
func (r *Registry) Seed(cfg *core.Configuration) (*core.Configuration, error) {
	// 1) Reserve loose ids
	r.mu.Lock()
	for _, o := range cfg.Loose().Objects() {
		if held, ok := r.arena[o.ID()]; ok && held != o {
			r.mu.Unlock()
			return nil, fmt.Errorf("%w: loose id %d", ErrIDConflict, o.ID())
		}
		r.store(o)
	}
	r.mu.Unlock()

	// 2) Re-intern constructed objects, translating their arguments
	image := make(map[*core.Object]*core.Object)
	translate := func(o *core.Object) *core.Object {
		if n, ok := image[o]; ok {
			return n
		}

		return o
	}
	seeded := make([]*core.Object, 0, len(cfg.Constructed()))
	for _, o := range cfg.Constructed() {
		outs, err := r.Construct(o.Construction(), o.Arguments().Map(translate))
		if err != nil {
			return nil, err
		}
		image[o] = outs[o.Index()]
		seeded = append(seeded, outs[o.Index()])
	}

	return core.NewConfiguration(cfg.Loose(), seeded...)
}

// Relabel applies a loose-object relabeling to cfg: every reference to the
// i-th loose object is replaced by the perm[i]-th one and constructed objects
// are re-interned. The loose holder is shared with cfg.
//
// Relabeling by a symmetry of the layout yields a configuration with the same
// canonical form. Generation never relabels; Relabel exists to check that
// property and to build a class's other members.
func (r *Registry) Relabel(cfg *core.Configuration, perm []int) (*core.Configuration, error) {
	loose := cfg.Loose()
	if len(perm) != loose.Len() {
		return nil, fmt.Errorf("%w: length %d for %d loose objects", ErrInvalidPermutation, len(perm), loose.Len())
	}
	hit := make([]bool, len(perm))
	for _, p := range perm {
		if p < 0 || p >= len(perm) || hit[p] {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPermutation, perm)
		}
		hit[p] = true
	}
	image := make(map[*core.Object]*core.Object, cfg.Len())
	for i := 0; i < loose.Len(); i++ {
		image[loose.At(i)] = loose.At(perm[i])
	}
	translate := func(o *core.Object) *core.Object { return image[o] }

	relabeled := make([]*core.Object, 0, len(cfg.Constructed()))
	for _, o := range cfg.Constructed() {
		outs, err := r.Construct(o.Construction(), o.Arguments().Map(translate))
		if err != nil {
			return nil, err
		}
		image[o] = outs[o.Index()]
		relabeled = append(relabeled, outs[o.Index()])
	}

	return core.NewConfiguration(loose, relabeled...)
}

// Constructions returns the number of distinct constructions seen.
func (r *Registry) Constructions() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.constructions)
}

// store places o in the arena and advances the id counter past it. Caller holds mu.
func (r *Registry) store(o *core.Object) {
	r.arena[o.ID()] = o
	if o.ID() >= r.nextID {
		r.nextID = o.ID() + 1
	}
}

// bindConstruction records c under its name. Caller holds mu.
func (r *Registry) bindConstruction(c *core.Construction) error {
	if c == nil {
		return fmt.Errorf("registry: %w: nil construction", core.ErrInvalidConstruction)
	}
	known, ok := r.constructions[c.Name()]
	if !ok {
		r.constructions[c.Name()] = c
		return nil
	}
	if !known.Equal(c) {
		return fmt.Errorf("%w: %q is %s, got %s", ErrConstructionConflict, c.Name(), known, c)
	}

	return nil
}
