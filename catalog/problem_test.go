package catalog_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatrikBak/GeoGen-sub011/catalog"
	"github.com/PatrikBak/GeoGen-sub011/core"
	"github.com/PatrikBak/GeoGen-sub011/filter"
	"github.com/PatrikBak/GeoGen-sub011/generator"
)

func names(cs []*core.Construction) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name()
	}

	return out
}

func TestLoadProblem_Triangle(t *testing.T) {
	p, err := catalog.LoadProblem("testdata/triangle.yaml")
	require.NoError(t, err)

	assert.Equal(t, "triangle-midpoints", p.Name)
	assert.Equal(t, core.Triangle, p.Configuration.Loose().Layout())
	assert.Equal(t, 2, p.Iterations)
	assert.Equal(t, map[core.ObjectType]int{core.Point: 3}, p.MaxObjects)
	assert.Equal(t, filter.PolicyPerLayer, p.Policy)
	assert.Equal(t, []string{"Midpoint", "Centroid"}, names(p.Constructions))

	want := []string{"M = Midpoint({A,B})", "N = Midpoint({C,M})"}
	if diff := cmp.Diff(want, p.Configuration.Format(p.Namer())); diff != "" {
		t.Errorf("initial objects mismatch (-want +got):\n%s", diff)
	}
}

// TestProblem_Generate: problem names survive generation because the
// problem's registry is shared with the generator.
func TestProblem_Generate(t *testing.T) {
	p, err := catalog.LoadProblem("testdata/triangle.yaml")
	require.NoError(t, err)
	g, err := generator.New(p.Constructions, filter.AcceptAll, p.GeneratorOptions()...)
	require.NoError(t, err)

	in := p.Input()
	in.Iterations = 1
	n := 0
	for res, err := range g.Generate(context.Background(), in) {
		require.NoError(t, err)
		lines := res.Configuration.Format(p.Namer())
		require.Len(t, lines, 3)
		assert.Equal(t, "M = Midpoint({A,B})", lines[0])
		assert.Equal(t, "N = Midpoint({C,M})", lines[1])
		n++
	}
	assert.Positive(t, n)
}

func TestLoadProblem_CustomConstruction(t *testing.T) {
	p, err := catalog.LoadProblem("testdata/custom.yaml")
	require.NoError(t, err)

	assert.Equal(t, core.NoLayout, p.Configuration.Loose().Layout())
	assert.Len(t, p.Constructions, len(catalog.Predefined())+1)
	assert.Equal(t, "TangentFromPoint", p.Constructions[len(p.Constructions)-1].Name())
	// the unnamed sibling output comes along under its id
	assert.Equal(t, []string{
		"#3 = TangentFromPoint(P,c)[0]",
		"t2 = TangentFromPoint(P,c)[1]",
	}, p.Configuration.Format(p.Namer()))
	assert.Nil(t, p.MaxObjects)
	assert.Equal(t, filter.PolicyGlobal, p.Policy)
}

func TestLoadProblem_MissingFile(t *testing.T) {
	_, err := catalog.LoadProblem("testdata/absent.yaml")
	assert.Error(t, err)
}

func TestParseProblem_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", catalog.ErrInvalidProblem},
		{"unknown field", "layout: Triangle\nloose: [A, B, C]\ncolour: red\n", catalog.ErrInvalidProblem},
		{"negative iterations", "loose: [{name: A, type: Point}]\niterations: -1\n", catalog.ErrInvalidProblem},
		{"unknown layout", "layout: Hexagon\n", catalog.ErrInvalidProblem},
		{"loose count", "layout: Triangle\nloose: [A, B]\n", catalog.ErrInvalidProblem},
		{"untyped loose", "loose: [A]\n", catalog.ErrInvalidProblem},
		{"layout type mismatch", "layout: LineSegment\nloose: [{name: A, type: Line}, B]\n", core.ErrLayoutMismatch},
		{"duplicate name", "layout: Triangle\nloose: [A, B, A]\n", catalog.ErrInvalidProblem},
		{"bad name", "layout: LineSegment\nloose: [A, '1B']\n", catalog.ErrInvalidProblem},
		{"unknown construction", "layout: LineSegment\nloose: [A, B]\nconstructions: [Warp]\n", catalog.ErrUnknownConstruction},
		{"unknown object", "layout: LineSegment\nloose: [A, B]\nobjects:\n  - {name: M, construction: Midpoint, arguments: '{A, Z}'}\n", catalog.ErrUnknownObject},
		{"cycle", "layout: LineSegment\nloose: [A, B]\nobjects:\n" +
			"  - {name: M, construction: Midpoint, arguments: '{A, N}'}\n" +
			"  - {name: N, construction: Midpoint, arguments: '{B, M}'}\n", catalog.ErrCycleDetected},
		{"argument shape", "layout: LineSegment\nloose: [A, B]\nobjects:\n  - {name: M, construction: Midpoint, arguments: 'A, B'}\n", core.ErrArgumentMismatch},
		{"argument syntax", "layout: LineSegment\nloose: [A, B]\nobjects:\n  - {name: M, construction: Midpoint, arguments: '{A, B'}\n", catalog.ErrSyntax},
		{"output index", "layout: LineSegment\nloose: [A, B]\nobjects:\n  - {name: M, construction: Midpoint, arguments: '{A, B}', index: 1}\n", catalog.ErrInvalidProblem},
		{"shadowing", "custom:\n  - {name: Midpoint, signature: 'Point', outputs: [Point]}\n", catalog.ErrInvalidProblem},
		{"bad signature", "custom:\n  - {name: Odd, signature: 'Set(Point, 0)', outputs: [Point]}\n", catalog.ErrSyntax},
		{"bad cap", "max_objects: {Hexagon: 1}\n", catalog.ErrInvalidProblem},
		{"negative cap", "max_objects: {Point: -1}\n", catalog.ErrInvalidProblem},
		{"bad policy", "policy: sometimes\n", catalog.ErrInvalidProblem},
		{"same object twice", "layout: LineSegment\nloose: [A, B]\nobjects:\n" +
			"  - {name: M, construction: Midpoint, arguments: '{A, B}'}\n" +
			"  - {name: N, construction: Midpoint, arguments: '{B, A}'}\n", catalog.ErrInvalidProblem},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.ParseProblem(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestParseProblem_OutputTuples: naming any output of a multi-output
// construction brings in the whole tuple, so later layers never try to add a
// missing sibling on its own.
func TestParseProblem_OutputTuples(t *testing.T) {
	doc := `
loose:
  - {name: c, type: Circle}
  - {name: d, type: Circle}
objects:
  - {name: Y, construction: IntersectionOfCircles, arguments: '{c, d}', index: 1}
  - {name: X, construction: IntersectionOfCircles, arguments: '{d, c}'}
constructions: [IntersectionOfCircles, LineFromPoints]
iterations: 1
`
	p, err := catalog.ParseProblem(strings.NewReader(doc))
	require.NoError(t, err)

	want := []string{
		"X = IntersectionOfCircles({c,d})[0]",
		"Y = IntersectionOfCircles({c,d})[1]",
	}
	if diff := cmp.Diff(want, p.Configuration.Format(p.Namer())); diff != "" {
		t.Errorf("initial objects mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, p.Configuration.CountOfType(core.Point))

	// the line through both intersections is the only extension
	g, err := generator.New(p.Constructions, filter.AcceptAll, p.GeneratorOptions()...)
	require.NoError(t, err)
	var got []string
	for res, err := range g.Generate(context.Background(), p.Input()) {
		require.NoError(t, err)
		lines := res.Configuration.Format(p.Namer())
		got = append(got, lines[len(lines)-1])
	}
	assert.Equal(t, []string{"#4 = LineFromPoints({X,Y})"}, got)
}
