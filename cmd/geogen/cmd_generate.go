package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PatrikBak/GeoGen-sub011/catalog"
	"github.com/PatrikBak/GeoGen-sub011/core"
	"github.com/PatrikBak/GeoGen-sub011/filter"
	"github.com/PatrikBak/GeoGen-sub011/generator"
	"github.com/PatrikBak/GeoGen-sub011/internal/format"
	"github.com/PatrikBak/GeoGen-sub011/internal/logging"
)

type generateFlags struct {
	iterations int
	maxObjects map[string]int
	policy     string
	limit      int
	stats      bool
}

func newGenerateCmd() *cobra.Command {
	var flags generateFlags
	cmd := &cobra.Command{
		Use:   "generate <problem.yaml>",
		Short: "Generate configurations for a problem file",
		Long: "Generate configurations for a problem file. No geometry oracle is attached,\n" +
			"so every configuration is treated as constructible.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], flags)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&flags.iterations, "iterations", "n", 0, "Number of layers (overrides the problem file)")
	f.StringToIntVar(&flags.maxObjects, "max-objects", nil, "Per-type cap on added objects, e.g. Point=2 (overrides the problem file)")
	f.StringVar(&flags.policy, "policy", "", "Filter policy: global or per-layer (overrides the problem file)")
	f.IntVar(&flags.limit, "limit", 0, "Stop after this many configurations (0 = no limit)")
	f.BoolVar(&flags.stats, "stats", false, "Print per-layer statistics after generation")

	return cmd
}

func runGenerate(cmd *cobra.Command, path string, flags generateFlags) error {
	p, err := catalog.LoadProblem(path)
	if err != nil {
		return err
	}

	// 1) Command-line overrides
	if cmd.Flags().Changed("iterations") {
		p.Iterations = flags.iterations
	}
	if cmd.Flags().Changed("policy") {
		policy, ok := filter.ParsePolicy(flags.policy)
		if !ok {
			return fmt.Errorf("unknown policy %q", flags.policy)
		}
		p.Policy = policy
	}
	if cmd.Flags().Changed("max-objects") {
		p.MaxObjects = make(map[core.ObjectType]int, len(flags.maxObjects))
		for raw, n := range flags.maxObjects {
			t, err := core.ParseObjectType(raw)
			if err != nil {
				return err
			}
			p.MaxObjects[t] = n
		}
	}
	mode, err := tableMode(cmd)
	if err != nil {
		return err
	}

	// 2) Generator
	log := logging.New(logging.ProfileRuntime, cmd.ErrOrStderr())
	opts := append(p.GeneratorOptions(), generator.WithLogger(log))
	g, err := generator.New(p.Constructions, filter.AcceptAll, opts...)
	if err != nil {
		return err
	}

	// 3) Stream results
	out := cmd.OutOrStdout()
	namer := p.Namer()
	loose := p.Configuration.Loose()
	looseNames := make([]string, loose.Len())
	for i := range looseNames {
		looseNames[i] = namer(loose.At(i))
	}
	fmt.Fprintf(out, "Loose objects (%s): %s\n", loose.Layout(), strings.Join(looseNames, ", "))
	for _, line := range p.Configuration.Format(namer) {
		fmt.Fprintf(out, "  %s\n", line)
	}
	n := 0
	for res, err := range g.Generate(cmd.Context(), p.Input()) {
		if err != nil {
			return err
		}
		n++
		added := res.Configuration.Format(namer)[len(res.Parent.Constructed()):]
		fmt.Fprintf(out, "#%d [iteration %d] %s\n", n, res.Iteration, strings.Join(added, "; "))
		if flags.limit > 0 && n >= flags.limit {
			break
		}
	}
	fmt.Fprintf(out, "generated: %d\n", n)

	if flags.stats {
		s := g.Stats()
		fmt.Fprintln(out, format.LayerStats(mode, s))
		fmt.Fprintln(out, format.Reasons(mode, s.Filter))
	}

	return nil
}
