package core

import (
	"fmt"
	"strconv"
)

// ObjectKind tags whether an object is loose or constructed.
type ObjectKind int

const (
	Loose       ObjectKind = iota // Loose is a free seed object.
	Constructed                   // Constructed is produced by a construction.
)

// Object is a configuration object.
//
// A loose object has only an id and a type. A constructed object additionally
// carries its construction, its top-level arguments and the index of the
// construction output it stands for. Objects are never mutated after creation.
//
// Identity of constructed objects is global: two objects with the same
// construction, arguments and index are the same object, which the registry
// package guarantees by handing out a single *Object per structural key.
type Object struct {
	id           int
	kind         ObjectKind
	typ          ObjectType
	construction *Construction
	arguments    Arguments
	index        int
}

// NewLooseObject returns a loose object with the given id and type.
func NewLooseObject(id int, t ObjectType) (*Object, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: unknown type %d", ErrInvalidObject, int(t))
	}
	if id < 0 {
		return nil, fmt.Errorf("%w: negative id %d", ErrInvalidObject, id)
	}

	return &Object{id: id, kind: Loose, typ: t}, nil
}

// NewConstructedObject returns the index-th output of applying c to args.
// The arguments are validated against the signature.
//
// Callers outside the registry package should obtain constructed objects from
// a registry, which assigns ids and preserves cross-path identity.
func NewConstructedObject(id int, c *Construction, args Arguments, index int) (*Object, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil construction", ErrInvalidObject)
	}
	if index < 0 || index >= len(c.outputs) {
		return nil, fmt.Errorf("%w: %s has no output %d", ErrInvalidObject, c.name, index)
	}
	if err := c.Validate(args); err != nil {
		return nil, err
	}

	return &Object{
		id:           id,
		kind:         Constructed,
		typ:          c.outputs[index],
		construction: c,
		arguments:    args.Map(func(o *Object) *Object { return o }),
		index:        index,
	}, nil
}

// ID returns the stable object id.
func (o *Object) ID() int { return o.id }

// Kind returns whether the object is loose or constructed.
func (o *Object) Kind() ObjectKind { return o.kind }

// Type returns the geometric type.
func (o *Object) Type() ObjectType { return o.typ }

// IsLoose reports whether o is a loose object.
func (o *Object) IsLoose() bool { return o.kind == Loose }

// Construction returns the construction of a constructed object, nil for loose ones.
func (o *Object) Construction() *Construction { return o.construction }

// Arguments returns the top-level arguments of a constructed object.
// The returned tree must not be modified.
func (o *Object) Arguments() Arguments { return o.arguments }

// Index returns which construction output the object is.
func (o *Object) Index() int { return o.index }

// Key returns the structural key of a constructed object ("name(args)[index]")
// or "#id" for a loose object.
func (o *Object) Key() string {
	if o.kind == Loose {
		return "#" + strconv.Itoa(o.id)
	}

	return o.construction.Key(o.arguments, o.index)
}

// String returns "#id" for loose objects and "#id=name(args)[index]" otherwise.
func (o *Object) String() string {
	if o.kind == Loose {
		return o.Key()
	}

	return "#" + strconv.Itoa(o.id) + "=" + o.Key()
}
