package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatrikBak/GeoGen-sub011/catalog"
	"github.com/PatrikBak/GeoGen-sub011/core"
)

func TestPredefined(t *testing.T) {
	all := catalog.Predefined()
	require.Len(t, all, 17)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Name(), all[i].Name(), "sorted by name")
	}

	mid, ok := catalog.Lookup("Midpoint")
	require.True(t, ok)
	assert.Equal(t, "Midpoint(Set(Point, 2)) -> Point", mid.String())

	circles, ok := catalog.Lookup("IntersectionOfCircles")
	require.True(t, ok)
	assert.Equal(t, 2, circles.OutputCount())

	nested, ok := catalog.Lookup("IntersectionOfLinesFromPoints")
	require.True(t, ok)
	assert.Equal(t, 4, nested.Requires(core.Point))

	_, ok = catalog.Lookup("Teleport")
	assert.False(t, ok)
}

func TestResolve(t *testing.T) {
	got, err := catalog.Resolve("Centroid", "Midpoint")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Centroid", got[0].Name())

	_, err = catalog.Resolve("Midpoint", "Nope")
	assert.ErrorIs(t, err, catalog.ErrUnknownConstruction)
}

// TestPredefinedRoundTrip: every printed signature parses back to itself.
func TestPredefinedRoundTrip(t *testing.T) {
	for _, c := range catalog.Predefined() {
		var printed []string
		for _, p := range c.Signature() {
			printed = append(printed, p.String())
		}
		params, err := catalog.ParseSignature(strings.Join(printed, ", "))
		require.NoError(t, err, c.Name())
		again, err := core.NewConstruction(c.Name(), params, c.Outputs()...)
		require.NoError(t, err)
		assert.True(t, c.Equal(again), c.Name())
	}
}
