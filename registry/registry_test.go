package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatrikBak/GeoGen-sub011/core"
	"github.com/PatrikBak/GeoGen-sub011/registry"
)

var (
	point    = core.ObjectParameter(core.Point)
	midpoint = core.MustConstruction("Midpoint", []core.Parameter{core.SetParameter(point, 2)}, core.Point)
	circles  = core.MustConstruction("IntersectionOfCircles",
		[]core.Parameter{core.SetParameter(core.ObjectParameter(core.Circle), 2)}, core.Point, core.Point)
)

func pair(a, b *core.Object) core.Arguments {
	return core.Arguments{core.SetArgument(core.ObjectArgument(a), core.ObjectArgument(b))}
}

func points(t *testing.T, r *registry.Registry, n int) []*core.Object {
	t.Helper()
	out := make([]*core.Object, n)
	for i := range out {
		o, err := r.NewLoose(core.Point)
		require.NoError(t, err)
		out[i] = o
	}

	return out
}

// TestConstruct_CrossPathIdentity: the same triple reached along two branches
// (different argument order inside the set) yields one object and one id.
func TestConstruct_CrossPathIdentity(t *testing.T) {
	r := registry.New()
	p := points(t, r, 3)

	first, err := r.Construct(midpoint, pair(p[0], p[1]))
	require.NoError(t, err)
	second, err := r.Construct(midpoint, pair(p[1], p[0]))
	require.NoError(t, err)

	require.Len(t, first, 1)
	assert.Same(t, first[0], second[0])
	assert.Equal(t, 3, first[0].ID())
	assert.Equal(t, 4, r.Len())

	other, err := r.Construct(midpoint, pair(p[1], p[2]))
	require.NoError(t, err)
	assert.Equal(t, 4, other[0].ID())

	found, ok := r.Lookup(midpoint, pair(p[1], p[0]), 0)
	assert.True(t, ok)
	assert.Same(t, first[0], found)
	got, ok := r.Get(4)
	assert.True(t, ok)
	assert.Same(t, other[0], got)
}

// TestConstruct_NestedIdentity: objects built on interned objects stay interned.
func TestConstruct_NestedIdentity(t *testing.T) {
	r := registry.New()
	p := points(t, r, 3)
	m1, err := r.Construct(midpoint, pair(p[0], p[1]))
	require.NoError(t, err)
	m2, err := r.Construct(midpoint, pair(p[1], p[0]))
	require.NoError(t, err)

	a, err := r.Construct(midpoint, pair(m1[0], p[2]))
	require.NoError(t, err)
	b, err := r.Construct(midpoint, pair(p[2], m2[0]))
	require.NoError(t, err)
	assert.Same(t, a[0], b[0])
}

func TestConstruct_MultipleOutputs(t *testing.T) {
	r := registry.New()
	c1, err := r.NewLoose(core.Circle)
	require.NoError(t, err)
	c2, err := r.NewLoose(core.Circle)
	require.NoError(t, err)

	outs, err := r.Construct(circles, pair(c1, c2))
	require.NoError(t, err)
	require.Len(t, outs, 2)
	assert.NotEqual(t, outs[0].ID(), outs[1].ID())
	assert.Equal(t, 0, outs[0].Index())
	assert.Equal(t, 1, outs[1].Index())

	again, err := r.Construct(circles, pair(c2, c1))
	require.NoError(t, err)
	assert.Equal(t, outs, again)
}

func TestConstruct_Errors(t *testing.T) {
	r := registry.New()
	p := points(t, r, 2)

	impostor := core.MustConstruction("Midpoint", []core.Parameter{point, point}, core.Point)
	_, err := r.Construct(midpoint, pair(p[0], p[1]))
	require.NoError(t, err)
	_, err = r.Construct(impostor, core.Arguments{core.ObjectArgument(p[0]), core.ObjectArgument(p[1])})
	assert.ErrorIs(t, err, registry.ErrConstructionConflict)

	foreign, err := core.NewLooseObject(0, core.Point)
	require.NoError(t, err)
	_, err = r.Construct(midpoint, pair(foreign, p[1]))
	assert.ErrorIs(t, err, registry.ErrUnknownObject)

	_, err = r.Construct(midpoint, pair(p[0], p[0]))
	assert.ErrorIs(t, err, core.ErrArgumentMismatch)

	_, err = r.Construct(nil, pair(p[0], p[1]))
	assert.ErrorIs(t, err, core.ErrInvalidConstruction)
	assert.NotErrorIs(t, err, registry.ErrUnknownObject)
}

func TestSeed(t *testing.T) {
	a, _ := core.NewLooseObject(10, core.Point)
	b, _ := core.NewLooseObject(11, core.Point)
	c, _ := core.NewLooseObject(12, core.Point)
	m, err := core.NewConstructedObject(0, midpoint, pair(a, b), 0)
	require.NoError(t, err)
	loose, err := core.NewLooseObjects(core.Triangle, a, b, c)
	require.NoError(t, err)
	cfg, err := core.NewConfiguration(loose, m)
	require.NoError(t, err)

	r := registry.New()
	seeded, err := r.Seed(cfg)
	require.NoError(t, err)

	constructed := seeded.Constructed()
	require.Len(t, constructed, 1)
	assert.Equal(t, 13, constructed[0].ID(), "constructed ids follow reserved loose ids")
	again, err := r.Construct(midpoint, pair(b, a))
	require.NoError(t, err)
	assert.Same(t, constructed[0], again[0])

	// a different object claiming a reserved id
	clash, _ := core.NewLooseObject(10, core.Point)
	other, err := core.NewLooseObjects(core.NoLayout, clash)
	require.NoError(t, err)
	otherCfg, err := core.NewConfiguration(other)
	require.NoError(t, err)
	_, err = r.Seed(otherCfg)
	assert.ErrorIs(t, err, registry.ErrIDConflict)
}

func TestRelabel(t *testing.T) {
	r := registry.New()
	p := points(t, r, 3)
	loose, err := core.NewLooseObjects(core.Triangle, p...)
	require.NoError(t, err)
	m, err := r.Construct(midpoint, pair(p[0], p[1]))
	require.NoError(t, err)
	cfg, err := core.NewConfiguration(loose, m...)
	require.NoError(t, err)

	relabeled, err := r.Relabel(cfg, []int{2, 1, 0})
	require.NoError(t, err)
	want, err := r.Construct(midpoint, pair(p[1], p[2]))
	require.NoError(t, err)
	assert.Equal(t, []*core.Object{want[0]}, relabeled.Constructed())

	for _, perm := range [][]int{{0, 1}, {0, 1, 3}, {0, 0, 1}, {-1, 1, 2}} {
		_, err = r.Relabel(cfg, perm)
		assert.ErrorIs(t, err, registry.ErrInvalidPermutation, "%v", perm)
	}
}

func TestWithFirstID(t *testing.T) {
	r := registry.New(registry.WithFirstID(100))
	o, err := r.NewLoose(core.Line)
	require.NoError(t, err)
	assert.Equal(t, 100, o.ID())
	assert.Equal(t, 0, r.Constructions())
}
