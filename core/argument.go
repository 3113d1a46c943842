package core

import (
	"slices"
	"strconv"
	"strings"
)

// ArgumentKind tags the variant of an Argument node.
type ArgumentKind int

const (
	ObjectArg ArgumentKind = iota // ObjectArg references a single object.
	SetArg                        // SetArg holds an unordered multiset of arguments.
)

// Argument is one node of the concrete object tree passed to a construction.
// It mirrors a Parameter node: ObjectArg for ObjectParam, SetArg for SetParam.
//
// Two arguments are equal iff their canonical strings are equal, where the
// canonical string of a SetArg sorts its children's canonical strings first.
// This holds recursively at every nesting depth.
type Argument struct {
	kind  ArgumentKind
	obj   *Object
	items []Argument
}

// ObjectArgument returns a leaf argument referencing o.
func ObjectArgument(o *Object) Argument {
	return Argument{kind: ObjectArg, obj: o}
}

// SetArgument returns an unordered argument over items. The slice is copied.
func SetArgument(items ...Argument) Argument {
	return Argument{kind: SetArg, items: slices.Clone(items)}
}

// Kind returns the variant tag.
func (a Argument) Kind() ArgumentKind { return a.kind }

// Object returns the referenced object of an ObjectArg.
func (a Argument) Object() *Object { return a.obj }

// Items returns a copy of the children of a SetArg.
func (a Argument) Items() []Argument { return slices.Clone(a.items) }

// Format serializes the argument, resolving each referenced object through
// resolve. Children of a SetArg are sorted by their serialization, so the result
// does not depend on their order.
func (a Argument) Format(resolve func(*Object) string) string {
	switch a.kind {
	case ObjectArg:
		return resolve(a.obj)
	case SetArg:
		parts := make([]string, len(a.items))
		for i, item := range a.items {
			parts[i] = item.Format(resolve)
		}
		slices.Sort(parts)

		return "{" + strings.Join(parts, ",") + "}"
	default:
		return "?"
	}
}

// Key returns the canonical string of the argument with objects resolved to ids.
func (a Argument) Key() string {
	return a.Format(idString)
}

// Map returns a copy of the tree with every referenced object replaced by f(o).
func (a Argument) Map(f func(*Object) *Object) Argument {
	switch a.kind {
	case ObjectArg:
		return ObjectArgument(f(a.obj))
	default:
		items := make([]Argument, len(a.items))
		for i, item := range a.items {
			items[i] = item.Map(f)
		}

		return Argument{kind: SetArg, items: items}
	}
}

// appendObjects appends referenced objects in depth-first, left-to-right order.
func (a Argument) appendObjects(dst []*Object) []*Object {
	switch a.kind {
	case ObjectArg:
		return append(dst, a.obj)
	default:
		for _, item := range a.items {
			dst = item.appendObjects(dst)
		}

		return dst
	}
}

// Arguments is the ordered top-level argument list of a construction.
type Arguments []Argument

// Format serializes the list as "(a,b,...)" using Argument.Format for each entry.
// Top-level order is significant.
func (as Arguments) Format(resolve func(*Object) string) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, a := range as {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a.Format(resolve))
	}
	b.WriteByte(')')

	return b.String()
}

// Key returns the canonical id-based string of the list. Two argument lists
// are equal iff their keys are equal.
func (as Arguments) Key() string {
	return as.Format(idString)
}

// Equal reports whether as and other are equal up to reordering inside sets.
func (as Arguments) Equal(other Arguments) bool {
	return as.Key() == other.Key()
}

// Objects returns every referenced object, depth-first and left-to-right.
// An object referenced twice appears twice.
func (as Arguments) Objects() []*Object {
	var out []*Object
	for _, a := range as {
		out = a.appendObjects(out)
	}

	return out
}

// Map returns a copy of the list with every referenced object replaced by f(o).
func (as Arguments) Map(f func(*Object) *Object) Arguments {
	out := make(Arguments, len(as))
	for i, a := range as {
		out[i] = a.Map(f)
	}

	return out
}

func idString(o *Object) string {
	return strconv.Itoa(o.ID())
}
