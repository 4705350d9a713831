package curves

import (
	"errors"
	"fmt"

	"github.com/DavidAnderegg/pysurf/types"
)

var (
	ErrSelfLoop       = errors.New("self-loop bar element")
	ErrDuplicateEdge  = errors.New("duplicate bar element")
	ErrVertexRange    = errors.New("vertex index out of range")
	ErrDegraded       = errors.New("curve reconstruction degraded")
	ErrNotSingleCurve = errors.New("bar elements do not form a single curve")
)

// Edge is a 2-node bar element, the two entries are vertex indices into a shared point array.
// The pair is unordered on input; on output it is oriented along the polyline traversal.
type Edge [2]int

func (e Edge) Reverse() Edge {
	return Edge{e[1], e[0]}
}

// Key is the direction-insensitive identity of the edge
func (e Edge) Key() types.EdgeKey {
	return types.NewEdgeKey(e)
}

func (e Edge) Directed() types.EdgeInt {
	return types.NewEdgeInt(e)
}

func FromDirected(des []types.EdgeInt) (edges []Edge) {
	edges = make([]Edge, len(des))
	for i, de := range des {
		edges[i] = de.GetVertices()
	}
	return
}

/*
Validate rejects malformed connectivity before any stitching is attempted: self-loops, bars repeated in either
direction, and vertex indices outside [0, types.MaxVertexIndex]. The range limit comes from packing every bar
into a types.EdgeKey for duplicate detection and a types.EdgeInt for the directed output, so both 0- and 1-based
connectivity are accepted but negative indices are not.
*/
func Validate(edges []Edge) (err error) {
	seen := make(map[types.EdgeKey]int, len(edges))
	for i, e := range edges {
		if e[0] < 0 || e[1] < 0 || e[0] > types.MaxVertexIndex || e[1] > types.MaxVertexIndex {
			return fmt.Errorf("%w: edge %d = %v, indices must lie in [0,%d]", ErrVertexRange, i, e, types.MaxVertexIndex)
		}
		if e[0] == e[1] {
			return fmt.Errorf("%w: edge %d = %v", ErrSelfLoop, i, e)
		}
		key := e.Key()
		if first, ok := seen[key]; ok {
			return fmt.Errorf("%w: edge %d = %v repeats edge %d = %v", ErrDuplicateEdge, i, e, first, edges[first])
		}
		seen[key] = i
	}
	return
}
