package core

import (
	"fmt"
	"slices"
	"strconv"
)

// LooseObjects is the ordered list of loose objects of a configuration
// together with its Layout. The position of an object in the list is its
// label for canonical serialization.
type LooseObjects struct {
	layout     Layout
	objects    []*Object
	index      map[int]int
	symmetries [][]int
}

// NewLooseObjects validates and builds a loose-object holder.
// Objects must be loose, non-nil and have distinct ids; their types must match
// the layout (NoLayout accepts any types).
func NewLooseObjects(layout Layout, objects ...*Object) (*LooseObjects, error) {
	types := make([]ObjectType, len(objects))
	index := make(map[int]int, len(objects))
	for i, o := range objects {
		if o == nil || o.kind != Loose {
			return nil, fmt.Errorf("%w: loose object %d", ErrInvalidObject, i)
		}
		if _, dup := index[o.id]; dup {
			return nil, fmt.Errorf("%w: id %d", ErrDuplicateObject, o.id)
		}
		index[o.id] = i
		types[i] = o.typ
	}
	if err := layout.checkTypes(types); err != nil {
		return nil, err
	}

	return &LooseObjects{
		layout:     layout,
		objects:    slices.Clone(objects),
		index:      index,
		symmetries: layout.Symmetries(types),
	}, nil
}

// Layout returns the layout.
func (l *LooseObjects) Layout() Layout { return l.layout }

// Objects returns a copy of the ordered loose objects.
func (l *LooseObjects) Objects() []*Object { return slices.Clone(l.objects) }

// Len returns the number of loose objects.
func (l *LooseObjects) Len() int { return len(l.objects) }

// At returns the i-th loose object.
func (l *LooseObjects) At(i int) *Object { return l.objects[i] }

// Position returns the label (list position) of the loose object with the given id.
func (l *LooseObjects) Position(id int) (int, bool) {
	i, ok := l.index[id]

	return i, ok
}

// Symmetries returns the relabeling group supplied by the layout, identity first.
// The result is shared and must not be modified.
func (l *LooseObjects) Symmetries() [][]int { return l.symmetries }

// Configuration is an immutable set of objects: loose objects plus a
// topologically ordered list of constructed objects, each referring only to
// objects that precede it. No two objects share an id.
type Configuration struct {
	loose       *LooseObjects
	constructed []*Object
	ids         map[int]struct{}
	byType      map[ObjectType][]*Object
}

// NewConfiguration validates and builds a configuration.
//
// Errors:
//   - ErrInvalidObject    nil holder, nil or loose object among constructed.
//   - ErrDuplicateObject  repeated id.
//   - ErrObjectOutOfScope argument referencing an object not yet present.
func NewConfiguration(loose *LooseObjects, constructed ...*Object) (*Configuration, error) {
	if loose == nil {
		return nil, fmt.Errorf("%w: nil loose objects", ErrInvalidObject)
	}
	c := &Configuration{
		loose:  loose,
		ids:    make(map[int]struct{}, len(loose.objects)+len(constructed)),
		byType: make(map[ObjectType][]*Object),
	}
	for _, o := range loose.objects {
		c.ids[o.id] = struct{}{}
		c.byType[o.typ] = append(c.byType[o.typ], o)
	}
	if err := c.appendConstructed(constructed); err != nil {
		return nil, err
	}

	return c, nil
}

// Extend returns a new configuration with objs appended. The receiver is not modified.
// It fails with ErrDuplicateObject if any object is already present or repeated.
//
// Complexity: O(n + k) for n existing and k appended objects.
func (c *Configuration) Extend(objs ...*Object) (*Configuration, error) {
	next := &Configuration{
		loose:       c.loose,
		constructed: slices.Clone(c.constructed),
		ids:         make(map[int]struct{}, len(c.ids)+len(objs)),
		byType:      make(map[ObjectType][]*Object, len(c.byType)),
	}
	for id := range c.ids {
		next.ids[id] = struct{}{}
	}
	for t, list := range c.byType {
		next.byType[t] = slices.Clone(list)
	}
	if err := next.appendConstructed(objs); err != nil {
		return nil, err
	}

	return next, nil
}

func (c *Configuration) appendConstructed(objs []*Object) error {
	for _, o := range objs {
		if o == nil || o.kind != Constructed {
			return fmt.Errorf("%w: expected constructed object", ErrInvalidObject)
		}
		if _, dup := c.ids[o.id]; dup {
			return fmt.Errorf("%w: id %d", ErrDuplicateObject, o.id)
		}
		for _, arg := range o.arguments.Objects() {
			if _, ok := c.ids[arg.id]; !ok {
				return fmt.Errorf("%w: object %d uses %d", ErrObjectOutOfScope, o.id, arg.id)
			}
		}
		c.ids[o.id] = struct{}{}
		c.constructed = append(c.constructed, o)
		c.byType[o.typ] = append(c.byType[o.typ], o)
	}

	return nil
}

// Loose returns the loose-object holder.
func (c *Configuration) Loose() *LooseObjects { return c.loose }

// Constructed returns a copy of the constructed objects in topological order.
func (c *Configuration) Constructed() []*Object { return slices.Clone(c.constructed) }

// Objects returns loose objects followed by constructed objects.
func (c *Configuration) Objects() []*Object {
	out := make([]*Object, 0, len(c.loose.objects)+len(c.constructed))
	out = append(out, c.loose.objects...)

	return append(out, c.constructed...)
}

// ObjectsOfType returns a copy of the objects of type t in configuration order.
func (c *Configuration) ObjectsOfType(t ObjectType) []*Object {
	return slices.Clone(c.byType[t])
}

// CountOfType returns how many objects of type t the configuration holds.
func (c *Configuration) CountOfType(t ObjectType) int { return len(c.byType[t]) }

// Contains reports whether an object with the given id is present.
func (c *Configuration) Contains(id int) bool {
	_, ok := c.ids[id]

	return ok
}

// Len returns the total number of objects.
func (c *Configuration) Len() int { return len(c.ids) }

// Namer maps an object to a display name.
type Namer func(*Object) string

// IDNamer names every object "#id".
func IDNamer(o *Object) string { return "#" + strconv.Itoa(o.ID()) }

// Format renders one line per constructed object, "name = Construction(args)[index]",
// resolving argument objects through namer. The index suffix is omitted for
// single-output constructions.
func (c *Configuration) Format(namer Namer) []string {
	if namer == nil {
		namer = IDNamer
	}
	lines := make([]string, 0, len(c.constructed))
	for _, o := range c.constructed {
		line := namer(o) + " = " + o.construction.name + o.arguments.Format(namer)
		if len(o.construction.outputs) > 1 {
			line += "[" + strconv.Itoa(o.index) + "]"
		}
		lines = append(lines, line)
	}

	return lines
}
