package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatrikBak/GeoGen-sub011/core"
)

func TestConfiguration_ExtendIsAppendOnly(t *testing.T) {
	cfg, p := triangle(t)
	m, err := core.NewConstructedObject(3, midpoint, pair(p[0], p[1]), 0)
	require.NoError(t, err)

	next, err := cfg.Extend(m)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Len())
	assert.Equal(t, 4, next.Len())
	assert.False(t, cfg.Contains(3))
	assert.True(t, next.Contains(3))
	assert.Equal(t, 3, cfg.CountOfType(core.Point))
	assert.Equal(t, 4, next.CountOfType(core.Point))
	assert.Equal(t, []*core.Object{p[0], p[1], p[2], m}, next.Objects())
	assert.Same(t, cfg.Loose(), next.Loose())
}

func TestConfiguration_RejectsDuplicates(t *testing.T) {
	cfg, p := triangle(t)
	m, err := core.NewConstructedObject(3, midpoint, pair(p[0], p[1]), 0)
	require.NoError(t, err)

	_, err = cfg.Extend(m, m)
	assert.ErrorIs(t, err, core.ErrDuplicateObject)

	next, err := cfg.Extend(m)
	require.NoError(t, err)
	_, err = next.Extend(m)
	assert.ErrorIs(t, err, core.ErrDuplicateObject)

	clash, err := core.NewConstructedObject(0, midpoint, pair(p[1], p[2]), 0)
	require.NoError(t, err)
	_, err = cfg.Extend(clash)
	assert.ErrorIs(t, err, core.ErrDuplicateObject)
}

func TestConfiguration_RejectsOutOfScope(t *testing.T) {
	cfg, p := triangle(t)
	stranger, err := core.NewLooseObject(9, core.Point)
	require.NoError(t, err)
	m, err := core.NewConstructedObject(3, midpoint, pair(p[0], stranger), 0)
	require.NoError(t, err)

	_, err = cfg.Extend(m)
	assert.ErrorIs(t, err, core.ErrObjectOutOfScope)

	_, err = core.NewConfiguration(nil)
	assert.ErrorIs(t, err, core.ErrInvalidObject)
}

func TestConfiguration_Format(t *testing.T) {
	cfg, p := triangle(t)
	m, err := core.NewConstructedObject(3, midpoint, pair(p[1], p[0]), 0)
	require.NoError(t, err)
	next, err := cfg.Extend(m)
	require.NoError(t, err)

	names := map[int]string{0: "A", 1: "B", 2: "C", 3: "M"}
	lines := next.Format(func(o *core.Object) string { return names[o.ID()] })
	assert.Equal(t, []string{"M = Midpoint({A,B})"}, lines)
	assert.Equal(t, []string{"#3 = Midpoint({#0,#1})"}, next.Format(nil))
}
