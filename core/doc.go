// Package core provides the immutable object model shared by every stage of
// configuration generation.
//
// Model:
//
//   - ObjectType: closed enum {Point, Line, Circle}.
//   - Object: loose (id + type) or constructed (construction + arguments +
//     output index + id). One struct, closed Kind tag, no type assertions.
//   - Parameter: signature node, ObjectParameter(type) or SetParameter(inner, count);
//     a set node means "count occurrences of inner, order irrelevant".
//   - Argument / Arguments: concrete object tree mirroring a signature;
//     ObjectArgument(obj) or SetArgument(items...).
//   - Construction: name + ordered signature + ordered output types.
//   - Layout: named constraint on the loose objects supplying its symmetry group.
//   - LooseObjects: ordered loose objects + Layout.
//   - Configuration: LooseObjects + topologically ordered constructed objects.
//
// Canonical strings:
//
//	Argument      ObjectArg → resolve(obj)       SetArg → "{" + sorted(children) + "}"
//	Arguments     "(" + a1 + "," + a2 + ... + ")"
//	Object key    name + Arguments + "[" + index + "]"
//
// Two Arguments values are equal iff their canonical strings are equal; since
// set children are sorted before joining, this holds at every nesting depth.
//
// Example:
//
//	A, _ := core.NewLooseObject(0, core.Point)
//	B, _ := core.NewLooseObject(1, core.Point)
//	mid := core.MustConstruction("Midpoint",
//	    []core.Parameter{core.SetParameter(core.ObjectParameter(core.Point), 2)}, core.Point)
//	args := core.Arguments{core.SetArgument(core.ObjectArgument(B), core.ObjectArgument(A))}
//	mid.Key(args, 0) // "Midpoint({0,1})[0]"
//
// Complexity:
//
//   - Arguments.Key:          O(s log s) per set node of s children
//   - Configuration.Extend:   O(n + k) (copy-on-extend, receivers never change)
//
// Configurations and objects are immutable and safe for concurrent reads.
package core
