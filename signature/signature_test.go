package signature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatrikBak/GeoGen-sub011/core"
	"github.com/PatrikBak/GeoGen-sub011/signature"
)

func objects(t *testing.T, typ core.ObjectType, ids ...int) []*core.Object {
	t.Helper()
	out := make([]*core.Object, len(ids))
	for i, id := range ids {
		o, err := core.NewLooseObject(id, typ)
		require.NoError(t, err)
		out[i] = o
	}

	return out
}

func TestMatch_DepthFirstLeftToRight(t *testing.T) {
	point := core.ObjectParameter(core.Point)
	line := core.ObjectParameter(core.Line)
	params := []core.Parameter{
		point,
		core.SetParameter(core.SetParameter(point, 2), 2),
		line,
	}
	pool := signature.Pool{
		core.Point: objects(t, core.Point, 0, 1, 2, 3, 4),
		core.Line:  objects(t, core.Line, 10),
	}

	args, err := signature.Match(params, pool)
	require.NoError(t, err)
	assert.Len(t, args, 3)
	assert.Equal(t, "(0,{{1,2},{3,4}},10)", args.Key())
	assert.Equal(t, core.SetArg, args[1].Kind())
	assert.Len(t, args[1].Items(), 2)
}

func TestMatch_CursorsAreFreshPerCall(t *testing.T) {
	params := []core.Parameter{core.ObjectParameter(core.Point)}
	pool := signature.Pool{core.Point: objects(t, core.Point, 4, 5)}

	first, err := signature.Match(params, pool)
	require.NoError(t, err)
	second, err := signature.Match(params, pool)
	require.NoError(t, err)
	assert.Equal(t, first.Key(), second.Key())
	assert.Equal(t, "(4)", second.Key())
}

func TestMatch_InsufficientObjects(t *testing.T) {
	params := []core.Parameter{core.SetParameter(core.ObjectParameter(core.Point), 3)}
	pool := signature.Pool{core.Point: objects(t, core.Point, 0, 1)}

	_, err := signature.Match(params, pool)
	assert.ErrorIs(t, err, signature.ErrInsufficientObjects)

	_, err = signature.Match([]core.Parameter{core.ObjectParameter(core.Circle)}, pool)
	assert.ErrorIs(t, err, signature.ErrInsufficientObjects)
}

func TestFits(t *testing.T) {
	c := core.MustConstruction("Circumcircle",
		[]core.Parameter{core.SetParameter(core.ObjectParameter(core.Point), 3)}, core.Circle)

	assert.False(t, signature.Fits(c, signature.Pool{core.Point: objects(t, core.Point, 0, 1)}))
	assert.True(t, signature.Fits(c, signature.Pool{core.Point: objects(t, core.Point, 0, 1, 2)}))
}
