// Package catalog supplies the predefined constructions and loads problem
// definitions from YAML.
//
// Constructions
//
//	Predefined returns the built-in constructions (Midpoint, Circumcircle,
//	IntersectionOfLinesFromPoints with its nested sets, IntersectionOfCircles
//	with two outputs, ...). Custom constructions are declared in a problem
//	file with the signature notation of core.Parameter.String:
//
//	    signature: "Point, Set(Set(Point, 2), 2)"
//
// Problem files
//
//	name: triangle-midpoints
//	layout: Triangle          # optional; fixes loose types and symmetries
//	loose: [A, B, C]          # or {name: l, type: Line} entries
//	objects:                  # initial constructed objects, any order
//	  - {name: M, construction: Midpoint, arguments: "{A, B}"}
//	constructions: [Midpoint] # empty means every available construction
//	iterations: 2
//	max_objects: {Point: 2}
//	policy: global            # or per-layer
//
// Initial objects may be listed in any order: they are sorted by a
// depth-first walk over their references, which reports ErrCycleDetected for
// mutual dependencies and ErrUnknownObject for undeclared names.
package catalog
