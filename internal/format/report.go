package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/PatrikBak/GeoGen-sub011/core"
	"github.com/PatrikBak/GeoGen-sub011/filter"
	"github.com/PatrikBak/GeoGen-sub011/generator"
)

// Constructions lists constructions with their signatures and outputs.
func Constructions(m Mode, cs []*core.Construction) string {
	t := NewTable(m)
	t.Header("Name", "Signature", "Outputs")
	for _, c := range cs {
		sig := make([]string, 0, len(c.Signature()))
		for _, p := range c.Signature() {
			sig = append(sig, p.String())
		}
		outs := make([]string, 0, c.OutputCount())
		for _, o := range c.Outputs() {
			outs = append(outs, o.String())
		}
		t.Row(c.Name(), strings.Join(sig, ", "), strings.Join(outs, ", "))
	}

	return t.String()
}

// Layouts lists layouts with their loose-object types and symmetry counts.
func Layouts(m Mode) string {
	t := NewTable(m)
	t.Header("Layout", "Loose objects", "Symmetries")
	for _, l := range core.Layouts {
		types := l.ObjectTypes()
		names := make([]string, len(types))
		for i, typ := range types {
			names[i] = typ.String()
		}
		group := "any type-preserving"
		if l != core.NoLayout {
			group = strconv.Itoa(len(l.Symmetries(types)))
		}
		t.Row(l.String(), strings.Join(names, ", "), group)
	}
	t.AlignRight(3)

	return t.String()
}

// LayerStats summarizes a run layer by layer.
func LayerStats(m Mode, s generator.Stats) string {
	t := NewTable(m)
	t.Header("Iteration", "Inputs", "Candidates", "Skipped by cap", "Outputs", "Time")
	for _, l := range s.Layers {
		t.Row(l.Iteration, l.Inputs, l.Candidates, l.SkippedByCap, l.Outputs, l.Duration.Round(time.Microsecond).String())
	}
	t.Footer("total", "", s.Filter.Candidates, "", s.Results(), "")
	t.AlignRight(2, 3, 4, 5, 6)

	return t.String()
}

// Reasons breaks the filter decisions down by reason.
func Reasons(m Mode, s filter.Stats) string {
	t := NewTable(m)
	t.Header("Outcome", "Candidates")
	for _, r := range filter.Reasons {
		t.Row(r.String(), s.ByReason[r])
	}
	t.Footer("total", s.Candidates)
	t.AlignRight(2)

	return t.String()
}
