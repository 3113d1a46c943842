package core

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// reservedRunes may not appear in construction names: they delimit the
// canonical serialization of objects and configurations.
const reservedRunes = "(){}[],;#"

// Construction is a named operation with a fixed parameter signature that
// produces one or more new objects from existing ones.
//
// Constructions are immutable. Name identifies a construction within a run;
// the object registry rejects two different constructions sharing a name.
type Construction struct {
	name         string
	signature    []Parameter
	outputs      []ObjectType
	requirements map[ObjectType]int
}

// NewConstruction validates and builds a construction.
//
// The name must be non-empty, start with a letter and avoid the characters
// "(){}[],;#". The signature must be non-empty and every node valid. At least
// one output type is required.
func NewConstruction(name string, signature []Parameter, outputs ...ObjectType) (*Construction, error) {
	// 1) Name shape
	if name == "" || !unicode.IsLetter([]rune(name)[0]) || strings.ContainsAny(name, reservedRunes) {
		return nil, fmt.Errorf("%w: name %q", ErrInvalidConstruction, name)
	}
	// 2) Signature
	if len(signature) == 0 {
		return nil, fmt.Errorf("%w: %s has an empty signature", ErrInvalidConstruction, name)
	}
	for i, p := range signature {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s parameter %d: %w", ErrInvalidConstruction, name, i, err)
		}
	}
	// 3) Outputs
	if len(outputs) == 0 {
		return nil, fmt.Errorf("%w: %s has no outputs", ErrInvalidConstruction, name)
	}
	for _, t := range outputs {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: %s output type %d", ErrInvalidConstruction, name, int(t))
		}
	}
	// 4) Precompute per-type leaf multiplicity
	req := make(map[ObjectType]int)
	for _, p := range signature {
		p.addRequirements(req, 1)
	}

	return &Construction{
		name:         name,
		signature:    slices.Clone(signature),
		outputs:      slices.Clone(outputs),
		requirements: req,
	}, nil
}

// MustConstruction is like NewConstruction but panics on error.
// Intended for static catalogs and tests.
func MustConstruction(name string, signature []Parameter, outputs ...ObjectType) *Construction {
	c, err := NewConstruction(name, signature, outputs...)
	if err != nil {
		panic(err)
	}

	return c
}

// Name returns the construction name.
func (c *Construction) Name() string { return c.name }

// Signature returns a copy of the ordered parameter list.
func (c *Construction) Signature() []Parameter { return slices.Clone(c.signature) }

// Outputs returns a copy of the ordered output types.
func (c *Construction) Outputs() []ObjectType { return slices.Clone(c.outputs) }

// OutputCount returns the number of objects one application produces.
func (c *Construction) OutputCount() int { return len(c.outputs) }

// Requires returns how many distinct objects of type t one application consumes.
func (c *Construction) Requires(t ObjectType) int { return c.requirements[t] }

// Requirements returns a copy of the per-type multiplicities.
func (c *Construction) Requirements() map[ObjectType]int {
	out := make(map[ObjectType]int, len(c.requirements))
	for t, n := range c.requirements {
		out[t] = n
	}

	return out
}

// Validate checks that args mirror the signature: same top-level length, set
// nodes with the declared number of children and leaves of the declared types.
// Objects must be pairwise distinct.
func (c *Construction) Validate(args Arguments) error {
	if len(args) != len(c.signature) {
		return fmt.Errorf("%w: %s expects %d arguments, got %d",
			ErrArgumentMismatch, c.name, len(c.signature), len(args))
	}
	for i, p := range c.signature {
		if err := matchArgument(p, args[i]); err != nil {
			return fmt.Errorf("%s argument %d: %w", c.name, i, err)
		}
	}
	seen := make(map[*Object]struct{})
	for _, o := range args.Objects() {
		if _, dup := seen[o]; dup {
			return fmt.Errorf("%w: %s uses object %d twice", ErrArgumentMismatch, c.name, o.ID())
		}
		seen[o] = struct{}{}
	}

	return nil
}

func matchArgument(p Parameter, a Argument) error {
	switch p.kind {
	case ObjectParam:
		if a.kind != ObjectArg || a.obj == nil {
			return fmt.Errorf("%w: expected %s object", ErrArgumentMismatch, p.typ)
		}
		if a.obj.Type() != p.typ {
			return fmt.Errorf("%w: expected %s, got %s", ErrArgumentMismatch, p.typ, a.obj.Type())
		}

		return nil
	default:
		if a.kind != SetArg || len(a.items) != p.count {
			return fmt.Errorf("%w: expected set of %d", ErrArgumentMismatch, p.count)
		}
		for _, item := range a.items {
			if err := matchArgument(*p.inner, item); err != nil {
				return err
			}
		}

		return nil
	}
}

// Key returns the structural key "name(args)[index]" of the index-th output
// of applying c to args, with referenced objects resolved to their ids.
func (c *Construction) Key(args Arguments, index int) string {
	return c.format(args, index, idString)
}

func (c *Construction) format(args Arguments, index int, resolve func(*Object) string) string {
	return c.name + args.Format(resolve) + "[" + strconv.Itoa(index) + "]"
}

// Equal reports whether c and other have the same name, signature and outputs.
func (c *Construction) Equal(other *Construction) bool {
	if c == other {
		return true
	}
	if other == nil {
		return false
	}

	return c.String() == other.String()
}

// String renders the definition, e.g. "Midpoint(Set(Point, 2)) -> Point".
func (c *Construction) String() string {
	params := make([]string, len(c.signature))
	for i, p := range c.signature {
		params[i] = p.String()
	}
	outs := make([]string, len(c.outputs))
	for i, t := range c.outputs {
		outs[i] = t.String()
	}

	return c.name + "(" + strings.Join(params, ", ") + ") -> " + strings.Join(outs, ", ")
}
