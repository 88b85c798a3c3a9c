package walk

import (
	"errors"
	"strings"

	"github.com/katalvlaran/kbtool/core"
)

// Sentinel errors for walk sampling.
var (
	// ErrNegativeLength is returned when a walk of negative length is requested.
	ErrNegativeLength = errors.New("walk: negative path length")

	// ErrNeedRandSource is returned when no *rand.Rand is supplied.
	ErrNeedRandSource = errors.New("walk: random source is nil")

	// ErrDeadEnd is returned when the current node has no incident edges.
	// Graphs built from triples never contain such a node.
	ErrDeadEnd = errors.New("walk: node has no incident edges")
)

// Option configures SamplePath.
type Option func(*options)

type options struct {
	fwdSuffix string
	bwdSuffix string
}

func defaultOptions() options {
	return options{
		fwdSuffix: core.DefaultForwardSuffix,
		bwdSuffix: core.DefaultBackwardSuffix,
	}
}

// WithSuffixes sets the strings appended to relation labels traversed
// forward (Src → Dst) and backward (Dst → Src).
// Panics if both suffixes are equal, since direction would be lost.
func WithSuffixes(fwd, bwd string) Option {
	if fwd == bwd {
		panic("walk: WithSuffixes: forward and backward suffixes must differ")
	}
	return func(o *options) {
		o.fwdSuffix = fwd
		o.bwdSuffix = bwd
	}
}

// Path is one sampled walk.
//
// For a walk of length L:
//
//	len(Nodes)  == L+1
//	len(Edges)  == L
//	len(Keys)   == L
//	len(Tokens) == 2L+1, Tokens[2i] = label(Nodes[i]),
//	                     Tokens[2i+1] = Keys[i] rendered with the suffixes.
type Path struct {
	Tokens []string
	Nodes  []int
	Edges  []int
	Keys   []core.RelationKey
}

// Len returns the number of steps L.
func (p *Path) Len() int { return len(p.Edges) }

// Head returns the start node id.
func (p *Path) Head() int { return p.Nodes[0] }

// Tail returns the final node id.
func (p *Path) Tail() int { return p.Nodes[len(p.Nodes)-1] }

// LastKey returns the directed relation of the final step.
// The second result is false for a zero-length path.
func (p *Path) LastKey() (core.RelationKey, bool) {
	if len(p.Keys) == 0 {
		return core.RelationKey{}, false
	}
	return p.Keys[len(p.Keys)-1], true
}

// String joins the tokens with tabs.
func (p *Path) String() string { return strings.Join(p.Tokens, "\t") }
