// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PatrikBak/GeoGen-sub011/core"
)

// midpoint is Midpoint(Set(Point, 2)) -> Point.
var midpoint = core.MustConstruction("Midpoint",
	[]core.Parameter{core.SetParameter(core.ObjectParameter(core.Point), 2)},
	core.Point)

// projection is PerpendicularProjection(Point, Line) -> Point.
var projection = core.MustConstruction("PerpendicularProjection",
	[]core.Parameter{core.ObjectParameter(core.Point), core.ObjectParameter(core.Line)},
	core.Point)

// mustLoose builds loose points with ids 0..n-1.
func mustLoose(t *testing.T, n int) []*core.Object {
	t.Helper()
	out := make([]*core.Object, n)
	for i := range out {
		o, err := core.NewLooseObject(i, core.Point)
		require.NoError(t, err)
		out[i] = o
	}

	return out
}

// pair builds the single top-level argument {a, b}.
func pair(a, b *core.Object) core.Arguments {
	return core.Arguments{core.SetArgument(core.ObjectArgument(a), core.ObjectArgument(b))}
}

// triangle builds a Triangle configuration on fresh loose points 0, 1, 2.
func triangle(t *testing.T) (*core.Configuration, []*core.Object) {
	t.Helper()
	pts := mustLoose(t, 3)
	loose, err := core.NewLooseObjects(core.Triangle, pts...)
	require.NoError(t, err)
	cfg, err := core.NewConfiguration(loose)
	require.NoError(t, err)

	return cfg, pts
}
