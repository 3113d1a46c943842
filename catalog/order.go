package catalog

import "fmt"

// Visitation states of the dependency walk.
const (
	white = iota // not visited yet
	gray         // on the current path
	black        // visited with all dependencies
)

// dependencySorter orders named objects so that every object follows the
// objects it is built from.
type dependencySorter struct {
	deps  map[string][]string // name → names it references
	known func(string) bool   // names resolvable without ordering (loose objects)
	state map[string]int
	path  []string
	order []string
}

// orderByDependencies returns names in an order where every name follows its
// dependencies. Names are visited in the given order, so independent objects
// keep their declaration order. A reference that is neither in deps nor known
// is ErrUnknownObject; mutual dependencies are ErrCycleDetected.
//
// Complexity: O(V + E).
func orderByDependencies(names []string, deps map[string][]string, known func(string) bool) ([]string, error) {
	s := &dependencySorter{
		deps:  deps,
		known: known,
		state: make(map[string]int, len(names)),
		order: make([]string, 0, len(names)),
	}
	for _, n := range names {
		if s.state[n] == white {
			if err := s.visit(n); err != nil {
				return nil, err
			}
		}
	}

	// post-order already lists dependencies first
	return s.order, nil
}

func (s *dependencySorter) visit(name string) error {
	// 1. Back-edge: name is on the current path
	if s.state[name] == gray {
		return fmt.Errorf("%w: %v", ErrCycleDetected, append(s.path, name))
	}
	// 2. Already placed
	if s.state[name] == black {
		return nil
	}
	s.state[name] = gray
	s.path = append(s.path, name)

	// 3. Dependencies first
	for _, dep := range s.deps[name] {
		if _, declared := s.deps[dep]; !declared {
			if s.known(dep) {
				continue
			}
			return fmt.Errorf("%w: %q used by %q", ErrUnknownObject, dep, name)
		}
		if err := s.visit(dep); err != nil {
			return err
		}
	}

	// 4. Done
	s.path = s.path[:len(s.path)-1]
	s.state[name] = black
	s.order = append(s.order, name)

	return nil
}
