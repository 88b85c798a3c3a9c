// Package builder defines shared constants used by the triple-set
// constructors, ensuring consistent defaults and validation.
package builder

//-----------------------------------------------------------------------------
// Method names, used to prefix errors with the constructor name.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
)

// CenterVertexID is the entity label of the hub in Star.
const CenterVertexID = "Center"

// DefaultRelation is the relation label used when WithRelations is not set.
const DefaultRelation = "r"

//-----------------------------------------------------------------------------
// Minimum node counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest ring without self-loops or parallel pairs.
const MinCycleNodes = 3

// MinPathNodes is the smallest path with at least one edge.
const MinPathNodes = 2

// MinStarNodes is one hub plus one leaf.
const MinStarNodes = 2

// MinCompleteNodes is the smallest complete graph with an edge.
const MinCompleteNodes = 2

// MinRandomSparseNodes is the smallest admissible RandomSparse size.
const MinRandomSparseNodes = 1

//-----------------------------------------------------------------------------
// Probability bounds
//-----------------------------------------------------------------------------

// MinProbability is the inclusive lower bound of p in RandomSparse.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound of p in RandomSparse.
const MaxProbability = 1.0
