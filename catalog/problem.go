package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/PatrikBak/GeoGen-sub011/core"
	"github.com/PatrikBak/GeoGen-sub011/filter"
	"github.com/PatrikBak/GeoGen-sub011/generator"
	"github.com/PatrikBak/GeoGen-sub011/registry"
)

// problemFile is the YAML shape of a problem definition.
type problemFile struct {
	Name          string             `yaml:"name"`
	Layout        string             `yaml:"layout"`
	Loose         []looseSpec        `yaml:"loose"`
	Objects       []objectSpec       `yaml:"objects"`
	Constructions []string           `yaml:"constructions"`
	Custom        []constructionSpec `yaml:"custom"`
	Iterations    int                `yaml:"iterations"`
	MaxObjects    map[string]int     `yaml:"max_objects"`
	Policy        string             `yaml:"policy"`
}

// looseSpec is a loose object, written either as a bare name (the type comes
// from the layout) or as a mapping with name and type.
type looseSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// UnmarshalYAML accepts a scalar name or a {name, type} mapping.
func (l *looseSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		l.Name = node.Value
		return nil
	}
	type plain looseSpec

	return node.Decode((*plain)(l))
}

// objectSpec is a named initial constructed object.
type objectSpec struct {
	Name         string `yaml:"name"`
	Construction string `yaml:"construction"`
	Arguments    string `yaml:"arguments"`
	Index        int    `yaml:"index"`
}

// constructionSpec defines a construction outside the predefined catalog.
type constructionSpec struct {
	Name      string   `yaml:"name"`
	Signature string   `yaml:"signature"`
	Outputs   []string `yaml:"outputs"`
}

// Problem is a loaded problem definition, ready to be fed to a generator.
type Problem struct {
	Name          string
	Configuration *core.Configuration
	Constructions []*core.Construction
	Iterations    int
	MaxObjects    map[core.ObjectType]int
	Policy        filter.Policy

	// Registry holds every object of Configuration. Passing it to the
	// generator keeps object ids and names stable.
	Registry *registry.Registry

	names map[int]string
}

// LoadProblem reads and parses the problem file at path.
func LoadProblem(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: LoadProblem: %w", err)
	}

	return ParseProblem(bytes.NewReader(data))
}

// ParseProblem parses a YAML problem definition.
//
// Steps:
//  1. Decode with unknown fields rejected.
//  2. Resolve the layout and create the loose objects (ids 0..n-1 in order).
//  3. Resolve constructions: custom definitions first, then names; an empty
//     list means every predefined and custom construction.
//  4. Order the initial objects by their dependencies and construct them.
//  5. Read iterations, caps and policy.
func ParseProblem(r io.Reader) (*Problem, error) {
	// 1) Decode
	var pf problemFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&pf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidProblem)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}
	if pf.Iterations < 0 {
		return nil, fmt.Errorf("%w: negative iterations %d", ErrInvalidProblem, pf.Iterations)
	}

	p := &Problem{
		Name:       pf.Name,
		Iterations: pf.Iterations,
		Registry:   registry.New(),
		names:      make(map[int]string),
	}

	// 2) Layout and loose objects
	byName, loose, err := p.buildLoose(pf)
	if err != nil {
		return nil, err
	}

	// 3) Constructions
	enabled, custom, err := resolveConstructions(pf)
	if err != nil {
		return nil, err
	}
	p.Constructions = enabled

	// 4) Initial constructed objects
	constructed, err := p.buildObjects(pf, byName, custom)
	if err != nil {
		return nil, err
	}
	if p.Configuration, err = core.NewConfiguration(loose, constructed...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}

	// 5) Caps and policy
	if len(pf.MaxObjects) > 0 {
		p.MaxObjects = make(map[core.ObjectType]int, len(pf.MaxObjects))
		for raw, n := range pf.MaxObjects {
			t, err := core.ParseObjectType(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: max_objects: %w", ErrInvalidProblem, err)
			}
			if n < 0 {
				return nil, fmt.Errorf("%w: max_objects: negative cap for %s", ErrInvalidProblem, t)
			}
			p.MaxObjects[t] = n
		}
	}
	policy, ok := filter.ParsePolicy(pf.Policy)
	if !ok {
		return nil, fmt.Errorf("%w: unknown policy %q", ErrInvalidProblem, pf.Policy)
	}
	p.Policy = policy

	return p, nil
}

func (p *Problem) buildLoose(pf problemFile) (map[string]*core.Object, *core.LooseObjects, error) {
	layout, err := core.ParseLayout(pf.Layout)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}
	prescribed := layout.ObjectTypes()
	if layout != core.NoLayout && len(pf.Loose) != len(prescribed) {
		return nil, nil, fmt.Errorf("%w: layout %s needs %d loose objects, got %d",
			ErrInvalidProblem, layout, len(prescribed), len(pf.Loose))
	}

	byName := make(map[string]*core.Object, len(pf.Loose)+len(pf.Objects))
	objs := make([]*core.Object, len(pf.Loose))
	for i, spec := range pf.Loose {
		if !validName(spec.Name) {
			return nil, nil, fmt.Errorf("%w: bad object name %q", ErrInvalidProblem, spec.Name)
		}
		if _, dup := byName[spec.Name]; dup {
			return nil, nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidProblem, spec.Name)
		}
		var t core.ObjectType
		switch {
		case spec.Type != "":
			if t, err = core.ParseObjectType(spec.Type); err != nil {
				return nil, nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
			}
		case layout != core.NoLayout:
			t = prescribed[i]
		default:
			return nil, nil, fmt.Errorf("%w: %q needs a type without a layout", ErrInvalidProblem, spec.Name)
		}
		o, err := p.Registry.NewLoose(t)
		if err != nil {
			return nil, nil, err
		}
		objs[i] = o
		byName[spec.Name] = o
		p.names[o.ID()] = spec.Name
	}
	loose, err := core.NewLooseObjects(layout, objs...)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}

	return byName, loose, nil
}

// resolveConstructions returns the constructions enabled for generation and
// the custom ones by name.
func resolveConstructions(pf problemFile) ([]*core.Construction, map[string]*core.Construction, error) {
	custom := make(map[string]*core.Construction, len(pf.Custom))
	var all []*core.Construction
	for _, spec := range pf.Custom {
		if _, taken := predefined[spec.Name]; taken {
			return nil, nil, fmt.Errorf("%w: custom construction %q shadows a predefined one", ErrInvalidProblem, spec.Name)
		}
		if _, dup := custom[spec.Name]; dup {
			return nil, nil, fmt.Errorf("%w: duplicate custom construction %q", ErrInvalidProblem, spec.Name)
		}
		sig, err := ParseSignature(spec.Signature)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrInvalidProblem, spec.Name, err)
		}
		outs := make([]core.ObjectType, len(spec.Outputs))
		for i, raw := range spec.Outputs {
			if outs[i], err = core.ParseObjectType(raw); err != nil {
				return nil, nil, fmt.Errorf("%w: %s: %w", ErrInvalidProblem, spec.Name, err)
			}
		}
		c, err := core.NewConstruction(spec.Name, sig, outs...)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
		}
		custom[spec.Name] = c
		all = append(all, c)
	}

	if len(pf.Constructions) == 0 {
		return append(Predefined(), all...), custom, nil
	}
	out := make([]*core.Construction, 0, len(pf.Constructions))
	seen := make(map[string]bool, len(pf.Constructions))
	for _, name := range pf.Constructions {
		if seen[name] {
			continue
		}
		seen[name] = true
		if c, ok := custom[name]; ok {
			out = append(out, c)
			continue
		}
		c, ok := Lookup(name)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q", ErrUnknownConstruction, name)
		}
		out = append(out, c)
	}

	return out, custom, nil
}

func (p *Problem) buildObjects(pf problemFile, byName map[string]*core.Object, custom map[string]*core.Construction) ([]*core.Object, error) {
	// 1) Parse every argument expression and collect dependencies
	specs := make(map[string]objectSpec, len(pf.Objects))
	exprs := make(map[string][]argExpr, len(pf.Objects))
	deps := make(map[string][]string, len(pf.Objects))
	names := make([]string, 0, len(pf.Objects))
	for _, spec := range pf.Objects {
		if !validName(spec.Name) {
			return nil, fmt.Errorf("%w: bad object name %q", ErrInvalidProblem, spec.Name)
		}
		if _, dup := byName[spec.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidProblem, spec.Name)
		}
		if _, dup := specs[spec.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidProblem, spec.Name)
		}
		list, err := parseArguments(spec.Arguments)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidProblem, spec.Name, err)
		}
		var refs []string
		for _, e := range list {
			refs = e.names(refs)
		}
		specs[spec.Name] = spec
		exprs[spec.Name] = list
		deps[spec.Name] = refs
		names = append(names, spec.Name)
	}

	// 2) Dependencies first
	order, err := orderByDependencies(names, deps, func(n string) bool {
		_, ok := byName[n]
		return ok
	})
	if err != nil {
		return nil, err
	}

	// 3) Construct in order through the registry. Every output of an
	// application joins the configuration, since generation only ever adds
	// whole output tuples; outputs nobody named keep their "#id" name.
	out := make([]*core.Object, 0, len(order))
	added := make(map[*core.Object]bool, len(order))
	for _, name := range order {
		spec := specs[name]
		c, ok := custom[spec.Construction]
		if !ok {
			if c, ok = Lookup(spec.Construction); !ok {
				return nil, fmt.Errorf("%w: %q used by %s", ErrUnknownConstruction, spec.Construction, name)
			}
		}
		if spec.Index < 0 || spec.Index >= c.OutputCount() {
			return nil, fmt.Errorf("%w: %s: output index %d of %s", ErrInvalidProblem, name, spec.Index, c.Name())
		}
		args := make(core.Arguments, len(exprs[name]))
		for i, e := range exprs[name] {
			if args[i], err = e.resolve(byName); err != nil {
				return nil, err
			}
		}
		if err := c.Validate(args); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidProblem, name, err)
		}
		outs, err := p.Registry.Construct(c, args)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidProblem, name, err)
		}
		o := outs[spec.Index]
		if other, named := p.names[o.ID()]; named {
			return nil, fmt.Errorf("%w: %s and %s are the same object", ErrInvalidProblem, other, name)
		}
		byName[name] = o
		p.names[o.ID()] = name
		for _, sibling := range outs {
			if !added[sibling] {
				added[sibling] = true
				out = append(out, sibling)
			}
		}
	}

	return out, nil
}

// Namer names objects by their problem names and every other object "#id".
func (p *Problem) Namer() core.Namer {
	return func(o *core.Object) string {
		if n, ok := p.names[o.ID()]; ok {
			return n
		}

		return core.IDNamer(o)
	}
}

// Input returns the generator input described by the problem.
func (p *Problem) Input() generator.Input {
	return generator.Input{Configuration: p.Configuration, Iterations: p.Iterations}
}

// GeneratorOptions returns options applying the problem's caps and policy and
// sharing its registry.
func (p *Problem) GeneratorOptions() []generator.Option {
	opts := []generator.Option{
		generator.WithPolicy(p.Policy),
		generator.WithRegistry(p.Registry),
	}
	for _, t := range core.ObjectTypes {
		if n, ok := p.MaxObjects[t]; ok {
			opts = append(opts, generator.WithMaxObjects(t, n))
		}
	}

	return opts
}
