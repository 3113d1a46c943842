// Package canonical computes the canonical form of a configuration: the
// lexicographically least serialization over every relabeling of its loose
// objects that its layout declares symmetric.
//
// Serialization under a relabeling p (p[i] is the label of the i-th loose object):
//
//	loose leaf         → strconv.Itoa(p[i])
//	constructed object → name + "(" args ")" + "[" index "]", argument objects
//	                     serialized recursively, set children sorted
//	configuration      → loose types + "|" + sorted object strings joined by ";"
//
// Sorting the object strings makes the form independent of the order in which
// objects were added, so the same object set reached along different paths
// shares one form. Object strings are memoized per object within one trial;
// a configuration's constructed objects are serialized in topological order,
// so every argument is already in the memo when it is needed.
//
// Several relabelings may produce the same least string; that only reflects
// an intrinsic symmetry of the configuration and is reported as Ties.
//
// Complexity:
//
//   - Time:   O(|G| · n · a)   (G=symmetry group, n=#objects, a=avg serialized argument size)
//   - Memory: O(n · s)         (s=avg object string length, one trial at a time)
package canonical

import (
	"slices"
	"strconv"
	"strings"

	"github.com/PatrikBak/GeoGen-sub011/core"
)

// Form is the canonical form of a configuration.
type Form struct {
	// Key is the least serialization.
	Key string
	// Permutation is the first relabeling (in group order) producing Key.
	Permutation []int
	// Ties counts the relabelings producing Key; 1 means no intrinsic symmetry.
	Ties int
}

// Resolve returns the canonical form of cfg. A group holding only the
// identity is not searched.
func Resolve(cfg *core.Configuration) Form {
	group := cfg.Loose().Symmetries()
	if len(group) <= 1 {
		perm := identity(cfg.Loose().Len())
		return Form{Key: String(cfg, perm), Permutation: perm, Ties: 1}
	}

	best := Form{}
	for _, perm := range group {
		s := String(cfg, perm)
		switch {
		case best.Permutation == nil || s < best.Key:
			best = Form{Key: s, Permutation: perm, Ties: 1}
		case s == best.Key:
			best.Ties++
		}
	}
	best.Permutation = slices.Clone(best.Permutation)

	return best
}

// Labeled reports whether the identity relabeling produces Key, i.e. the
// configuration the form was resolved from is already its own least labeling.
// The identity is first in every symmetry group, so it is the reported
// Permutation whenever it ties for the least string.
func (f Form) Labeled() bool {
	for i, p := range f.Permutation {
		if p != i {
			return false
		}
	}

	return true
}

// Key returns only the canonical string of cfg.
func Key(cfg *core.Configuration) string {
	return Resolve(cfg).Key
}

// IsCanonical reports whether cfg, as labeled, is not beaten by any
// relabeling of its symmetry group.
func IsCanonical(cfg *core.Configuration) bool {
	return Resolve(cfg).Labeled()
}

// String serializes cfg under the relabeling perm.
func String(cfg *core.Configuration, perm []int) string {
	loose := cfg.Loose()
	labels := make(map[*core.Object]string, cfg.Len())
	var b strings.Builder

	// 1) Loose labels and the type prefix
	for i := 0; i < loose.Len(); i++ {
		o := loose.At(i)
		labels[o] = strconv.Itoa(perm[i])
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(o.Type().String())
	}
	b.WriteByte('|')

	// 2) Constructed objects in topological order; memo doubles as resolver
	resolve := func(o *core.Object) string { return labels[o] }
	constructed := cfg.Constructed()
	parts := make([]string, len(constructed))
	for i, o := range constructed {
		s := o.Construction().Name() + o.Arguments().Format(resolve) + "[" + strconv.Itoa(o.Index()) + "]"
		labels[o] = s
		parts[i] = s
	}

	// 3) Order-independent join
	slices.Sort(parts)
	b.WriteString(strings.Join(parts, ";"))

	return b.String()
}

func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}
