package core

import (
	"fmt"
	"slices"
	"strings"

	"github.com/PatrikBak/GeoGen-sub011/internal/combinatorics"
)

// Layout is a named geometric shape constraint on the loose objects of a
// configuration. It fixes the loose-object types and supplies the group of
// relabelings that map a valid instance of the layout onto another valid
// instance. Every group contains the identity, listed first.
//
// Loose objects are referred to by position: a relabeling is a permutation p
// where p[i] is the label given to the i-th loose object.
type Layout int

const (
	// NoLayout leaves the loose objects unconstrained; every type-preserving
	// relabeling is a symmetry.
	NoLayout Layout = iota
	// LineSegment is two points A, B. Symmetries: all 2.
	LineSegment
	// Triangle is three non-collinear points A, B, C. Symmetries: all 6.
	Triangle
	// ScaleneAcuteTriangle is a triangle with pairwise distinct sides and acute
	// angles. Both properties survive any vertex relabeling. Symmetries: all 6.
	ScaleneAcuteTriangle
	// RightTriangle has its right angle at A. Symmetries: identity, (B C).
	RightTriangle
	// IsoscelesTriangle has AB = AC. Symmetries: identity, (B C).
	IsoscelesTriangle
	// EquilateralTriangle is A, B, C with equal sides. Symmetries: all 6.
	EquilateralTriangle
	// Quadrilateral is four points, no three collinear. Symmetries: all 24.
	Quadrilateral
	// CyclicQuadrilateral is four concyclic points. Symmetries: all 24.
	CyclicQuadrilateral
	// LineAndPoint is a line l and a point P not on it. Symmetries: identity.
	LineAndPoint
	// LineAndTwoPoints is a line l and points A, B off it. Symmetries: identity, (A B).
	LineAndTwoPoints
	// CircleAndTangentLine is a circle c and a line l tangent to it. Symmetries: identity.
	CircleAndTangentLine
)

// Layouts lists every declared layout.
var Layouts = []Layout{
	NoLayout, LineSegment, Triangle, ScaleneAcuteTriangle, RightTriangle, IsoscelesTriangle,
	EquilateralTriangle, Quadrilateral, CyclicQuadrilateral, LineAndPoint, LineAndTwoPoints,
	CircleAndTangentLine,
}

var layoutNames = map[Layout]string{
	NoLayout:             "None",
	LineSegment:          "LineSegment",
	Triangle:             "Triangle",
	ScaleneAcuteTriangle: "ScaleneAcuteTriangle",
	RightTriangle:        "RightTriangle",
	IsoscelesTriangle:    "IsoscelesTriangle",
	EquilateralTriangle:  "EquilateralTriangle",
	Quadrilateral:        "Quadrilateral",
	CyclicQuadrilateral:  "CyclicQuadrilateral",
	LineAndPoint:         "LineAndPoint",
	LineAndTwoPoints:     "LineAndTwoPoints",
	CircleAndTangentLine: "CircleAndTangentLine",
}

// String returns the layout name.
func (l Layout) String() string {
	if s, ok := layoutNames[l]; ok {
		return s
	}

	return fmt.Sprintf("Layout(%d)", int(l))
}

// ParseLayout converts a case-insensitive layout name. The empty string maps to NoLayout.
func ParseLayout(s string) (Layout, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoLayout, nil
	}
	for l, name := range layoutNames {
		if strings.EqualFold(name, s) {
			return l, nil
		}
	}

	return NoLayout, fmt.Errorf("core: unknown layout %q", s)
}

// ObjectTypes returns the loose-object types the layout prescribes, in order.
// NoLayout prescribes nothing and returns nil.
func (l Layout) ObjectTypes() []ObjectType {
	switch l {
	case LineSegment:
		return []ObjectType{Point, Point}
	case Triangle, ScaleneAcuteTriangle, RightTriangle, IsoscelesTriangle, EquilateralTriangle:
		return []ObjectType{Point, Point, Point}
	case Quadrilateral, CyclicQuadrilateral:
		return []ObjectType{Point, Point, Point, Point}
	case LineAndPoint:
		return []ObjectType{Line, Point}
	case LineAndTwoPoints:
		return []ObjectType{Line, Point, Point}
	case CircleAndTangentLine:
		return []ObjectType{Circle, Line}
	default:
		return nil
	}
}

// Symmetries returns the relabeling group of the layout for loose objects of
// the given types. The identity comes first. For NoLayout the group is every
// permutation that maps each object onto an object of the same type.
func (l Layout) Symmetries(types []ObjectType) [][]int {
	switch l {
	case LineSegment, Triangle, ScaleneAcuteTriangle, EquilateralTriangle,
		Quadrilateral, CyclicQuadrilateral:
		return combinatorics.Permutations(len(types))
	case RightTriangle, IsoscelesTriangle:
		return [][]int{{0, 1, 2}, {0, 2, 1}}
	case LineAndPoint:
		return [][]int{{0, 1}}
	case LineAndTwoPoints:
		return [][]int{{0, 1, 2}, {0, 2, 1}}
	case CircleAndTangentLine:
		return [][]int{{0, 1}}
	default:
		return typePreservingPermutations(types)
	}
}

// typePreservingPermutations builds the product of the full symmetric groups
// on the positions of each type.
func typePreservingPermutations(types []ObjectType) [][]int {
	// 1) Group positions by type, in ObjectTypes order
	var groups [][]int
	for _, t := range ObjectTypes {
		var pos []int
		for i, u := range types {
			if u == t {
				pos = append(pos, i)
			}
		}
		if len(pos) > 0 {
			groups = append(groups, pos)
		}
	}
	// 2) Per-group permutations; identity is first in each, hence first in the product
	perGroup := make([][][]int, len(groups))
	for i, g := range groups {
		perGroup[i] = combinatorics.Permutations(len(g))
	}
	// 3) Compose one permutation per group into a permutation of all positions
	var out [][]int
	for choice := range combinatorics.Product(perGroup) {
		p := make([]int, len(types))
		for gi, g := range groups {
			for k, pos := range g {
				p[pos] = g[choice[gi][k]]
			}
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		out = [][]int{{}}
	}

	return out
}

// checkTypes validates loose-object types against the layout.
func (l Layout) checkTypes(types []ObjectType) error {
	want := l.ObjectTypes()
	if l == NoLayout {
		return nil
	}
	if _, ok := layoutNames[l]; !ok {
		return fmt.Errorf("%w: unknown layout %d", ErrLayoutMismatch, int(l))
	}
	if !slices.Equal(want, types) {
		return fmt.Errorf("%w: %s expects %v, got %v", ErrLayoutMismatch, l, want, types)
	}

	return nil
}
