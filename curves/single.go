package curves

import "fmt"

/*
SortSingle orders bar elements that are known to describe exactly one curve.

The walk starts at the first vertex, in input order, that is used by a single edge. When there is none the
curve is periodic and the walk starts at the first vertex of the first edge. Disconnected or branching
input returns ErrNotSingleCurve.
*/
func SortSingle(edges []Edge) (p Polyline, err error) {
	if err = Validate(edges); err != nil {
		return
	}
	if len(edges) == 0 {
		err = fmt.Errorf("%w: no bar elements", ErrNotSingleCurve)
		return
	}
	bm := newBucketMap(edges)
	if branches := bm.Branches(); len(branches) != 0 {
		err = fmt.Errorf("%w: branch vertices %v", ErrNotSingleCurve, branches)
		return
	}
	start := edges[0][0]
findEnd:
	for _, e := range edges {
		for _, v := range e {
			if bm.Degree(v) == 1 {
				start = v
				break findEnd
			}
		}
	}
	used := make(map[Edge]bool, len(edges))
	p = make(Polyline, 1, len(edges)+1)
	p[0] = start
	for node := start; len(p) <= len(edges); {
		b := bm[node]
		var next Edge
		found := false
		for i := 0; i < b.numberOfEdges; i++ {
			if e := b.vertEdge[i]; !used[e] {
				next, found = e, true
				break
			}
		}
		if !found {
			err = fmt.Errorf("%w: walk stopped at vertex %d after %d of %d edges",
				ErrNotSingleCurve, node, len(p)-1, len(edges))
			return nil, err
		}
		used[next] = true
		if next[0] == node {
			node = next[1]
		} else {
			node = next[0]
		}
		p = append(p, node)
	}
	return
}
