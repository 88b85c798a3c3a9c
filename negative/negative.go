package negative

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/kbtool/core"
	"github.com/katalvlaran/kbtool/walk"
)

// Sentinel errors for negative sampling.
var (
	// ErrNilPath is returned when no path is supplied.
	ErrNilPath = errors.New("negative: path is nil")

	// ErrForeignPath is returned when a path references node ids outside the
	// graph or its fields are inconsistent.
	ErrForeignPath = errors.New("negative: path does not belong to graph")

	// ErrNeedRandSource is returned when rng is nil.
	ErrNeedRandSource = errors.New("negative: random source is nil")

	// ErrUnknownPolicy is returned by Lookup for an unrecognised name.
	ErrUnknownPolicy = errors.New("negative: unknown policy")
)

// Policy names accepted by Lookup.
const (
	NameExact    = "exact"
	NameUniform  = "uniform"
	NameNearMiss = "near-miss"
	NameTraced   = "traced"
)

// Policy returns the label of one corrupted tail for p.
type Policy func(g *core.Graph, p *walk.Path, rng *rand.Rand) (string, error)

var registry = map[string]Policy{
	NameExact:    Exact,
	NameUniform:  Uniform,
	NameNearMiss: NearMiss,
	NameTraced:   Traced,
}

// Lookup resolves a policy by name.
func Lookup(name string) (Policy, error) {
	if p, ok := registry[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownPolicy)
}

// Names lists the registered policy names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// validate checks the shared preconditions of every policy.
func validate(method string, g *core.Graph, p *walk.Path, rng *rand.Rand) error {
	switch {
	case g == nil:
		return fmt.Errorf("%s: %w", method, core.ErrGraphNil)
	case g.IsEmpty():
		return fmt.Errorf("%s: %w", method, core.ErrEmptyGraph)
	case p == nil:
		return fmt.Errorf("%s: %w", method, ErrNilPath)
	case rng == nil:
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	case len(p.Nodes) == 0 || len(p.Keys) != len(p.Nodes)-1:
		return fmt.Errorf("%s: %d nodes, %d keys: %w", method, len(p.Nodes), len(p.Keys), ErrForeignPath)
	}
	for _, id := range p.Nodes {
		if !g.HasNode(id) {
			return fmt.Errorf("%s: node %d: %w", method, id, ErrForeignPath)
		}
	}
	return nil
}
