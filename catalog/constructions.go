package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/PatrikBak/GeoGen-sub011/core"
)

var (
	// ErrUnknownConstruction indicates a construction name absent from the catalog.
	ErrUnknownConstruction = errors.New("catalog: unknown construction")

	// ErrUnknownObject indicates a reference to an object name that is not declared.
	ErrUnknownObject = errors.New("catalog: unknown object")

	// ErrCycleDetected indicates initial objects that depend on each other.
	ErrCycleDetected = errors.New("catalog: cycle detected")

	// ErrInvalidProblem indicates a malformed problem definition.
	ErrInvalidProblem = errors.New("catalog: invalid problem")

	// ErrSyntax indicates a malformed signature or argument expression.
	ErrSyntax = errors.New("catalog: syntax error")
)

var (
	point  = core.ObjectParameter(core.Point)
	line   = core.ObjectParameter(core.Line)
	circle = core.ObjectParameter(core.Circle)
)

func points(n int) core.Parameter { return core.SetParameter(point, n) }

// predefined holds the built-in constructions by name.
var predefined = func() map[string]*core.Construction {
	list := []*core.Construction{
		core.MustConstruction("Midpoint", []core.Parameter{points(2)}, core.Point),
		core.MustConstruction("LineFromPoints", []core.Parameter{points(2)}, core.Line),
		core.MustConstruction("PerpendicularBisector", []core.Parameter{points(2)}, core.Line),
		core.MustConstruction("Circumcircle", []core.Parameter{points(3)}, core.Circle),
		core.MustConstruction("Circumcenter", []core.Parameter{points(3)}, core.Point),
		core.MustConstruction("Centroid", []core.Parameter{points(3)}, core.Point),
		core.MustConstruction("Incenter", []core.Parameter{points(3)}, core.Point),
		core.MustConstruction("Orthocenter", []core.Parameter{points(3)}, core.Point),
		core.MustConstruction("PerpendicularProjection", []core.Parameter{point, line}, core.Point),
		core.MustConstruction("PerpendicularLine", []core.Parameter{point, line}, core.Line),
		core.MustConstruction("ParallelLine", []core.Parameter{point, line}, core.Line),
		core.MustConstruction("PointReflection", []core.Parameter{point, point}, core.Point),
		core.MustConstruction("IntersectionOfLines", []core.Parameter{core.SetParameter(line, 2)}, core.Point),
		core.MustConstruction("IntersectionOfLinesFromPoints",
			[]core.Parameter{core.SetParameter(points(2), 2)}, core.Point),
		core.MustConstruction("InternalAngleBisector", []core.Parameter{point, points(2)}, core.Line),
		core.MustConstruction("CircleWithCenterThroughPoint", []core.Parameter{point, point}, core.Circle),
		core.MustConstruction("IntersectionOfCircles",
			[]core.Parameter{core.SetParameter(circle, 2)}, core.Point, core.Point),
	}
	m := make(map[string]*core.Construction, len(list))
	for _, c := range list {
		m[c.Name()] = c
	}

	return m
}()

// Predefined returns every built-in construction sorted by name.
func Predefined() []*core.Construction {
	out := make([]*core.Construction, 0, len(predefined))
	for _, c := range predefined {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *core.Construction) int { return strings.Compare(a.Name(), b.Name()) })

	return out
}

// Lookup returns the built-in construction with the given name.
func Lookup(name string) (*core.Construction, bool) {
	c, ok := predefined[name]
	return c, ok
}

// Resolve returns the named built-in constructions in the given order.
func Resolve(names ...string) ([]*core.Construction, error) {
	out := make([]*core.Construction, 0, len(names))
	for _, n := range names {
		c, ok := Lookup(n)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownConstruction, n)
		}
		out = append(out, c)
	}

	return out, nil
}
