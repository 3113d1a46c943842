package core

import (
	"fmt"
	"strconv"
	"strings"
)

// ParameterKind tags the variant of a Parameter node.
type ParameterKind int

const (
	ObjectParam ParameterKind = iota // ObjectParam is a leaf requiring one object of a type.
	SetParam                         // SetParam requires Count occurrences of Inner, order irrelevant.
)

// Parameter is one node of a construction's parameter signature.
//
// A signature is an ordered list of parameters. Each parameter is either a leaf
// (ObjectParam) requiring a single object of a given type, or an internal node
// (SetParam) requiring Count occurrences of its inner parameter where the order
// of the occurrences carries no meaning.
type Parameter struct {
	kind  ParameterKind
	typ   ObjectType
	inner *Parameter
	count int
}

// ObjectParameter returns a leaf parameter requiring one object of type t.
func ObjectParameter(t ObjectType) Parameter {
	return Parameter{kind: ObjectParam, typ: t}
}

// SetParameter returns a parameter requiring count unordered occurrences of inner.
// Validity (count >= 1) is checked by Validate and NewConstruction.
func SetParameter(inner Parameter, count int) Parameter {
	in := inner
	return Parameter{kind: SetParam, inner: &in, count: count}
}

// Kind returns the variant tag.
func (p Parameter) Kind() ParameterKind { return p.kind }

// Type returns the object type of a leaf parameter.
func (p Parameter) Type() ObjectType { return p.typ }

// Inner returns the repeated parameter of a set node.
func (p Parameter) Inner() Parameter {
	if p.inner == nil {
		return Parameter{}
	}

	return *p.inner
}

// Count returns the number of occurrences required by a set node.
func (p Parameter) Count() int { return p.count }

// Validate checks the node and its subtree.
func (p Parameter) Validate() error {
	switch p.kind {
	case ObjectParam:
		if !p.typ.Valid() {
			return fmt.Errorf("%w: unknown object type %d", ErrInvalidParameter, int(p.typ))
		}

		return nil
	case SetParam:
		if p.inner == nil {
			return fmt.Errorf("%w: set without inner parameter", ErrInvalidParameter)
		}
		if p.count < 1 {
			return fmt.Errorf("%w: set count %d", ErrInvalidParameter, p.count)
		}

		return p.inner.Validate()
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidParameter, int(p.kind))
	}
}

// addRequirements accumulates how many objects of each type the subtree consumes.
func (p Parameter) addRequirements(into map[ObjectType]int, times int) {
	switch p.kind {
	case ObjectParam:
		into[p.typ] += times
	case SetParam:
		p.inner.addRequirements(into, times*p.count)
	}
}

// String renders the node, e.g. "Point" or "Set(Point, 2)".
func (p Parameter) String() string {
	switch p.kind {
	case ObjectParam:
		return p.typ.String()
	case SetParam:
		var b strings.Builder
		b.WriteString("Set(")
		b.WriteString(p.Inner().String())
		b.WriteString(", ")
		b.WriteString(strconv.Itoa(p.count))
		b.WriteByte(')')

		return b.String()
	default:
		return "?"
	}
}
