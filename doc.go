// Package geogen generates geometric configurations: sets of loose objects
// extended, layer by layer, by constructions applied to the objects already
// present, keeping exactly one configuration per class of configurations that
// differ only by a symmetry of the loose-object layout.
//
// The pipeline is split into subpackages:
//
//	core/       object types, parameters, arguments, constructions, layouts, configurations
//	signature/  matching a construction signature against a configuration
//	arguments/  enumerating canonical argument lists for a signature
//	registry/   interning constructed objects under stable ids
//	canonical/  canonical forms of configurations under layout symmetries
//	filter/     duplicate, symmetry and constructibility checks
//	generator/  the lazy layer-by-layer generation loop
//	catalog/    predefined constructions and YAML problem files
//	cmd/geogen  command-line front end
//
// A minimal run:
//
//	g, _ := generator.New(constructions, filter.AcceptAll)
//	for res, err := range g.Generate(ctx, generator.Input{Configuration: cfg, Iterations: 2}) {
//		if err != nil {
//			return err
//		}
//		fmt.Println(res.Configuration.Format(core.IDNamer))
//	}
//
// Geometric constructibility is delegated to a filter.Oracle supplied by the
// caller; filter.AcceptAll treats every configuration as constructible.
package geogen
