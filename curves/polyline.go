package curves

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/DavidAnderegg/pysurf/types"
)

/*
Polyline is an ordered chain of connected vertices v0, v1, ..., vk with k >= 1.
A closed polyline repeats its first vertex as the last entry, so [1,2,3,1] is a triangle loop.
*/
type Polyline []int

func (p Polyline) Head() int { return p[0] }

func (p Polyline) Tail() int { return p[len(p)-1] }

func (p Polyline) Closed() bool {
	return len(p) > 2 && p.Head() == p.Tail()
}

func (p Polyline) NumEdges() int {
	if len(p) < 2 {
		return 0
	}
	return len(p) - 1
}

// Edges returns the bar elements (v0,v1),(v1,v2),... oriented along the traversal
func (p Polyline) Edges() (edges []Edge) {
	edges = make([]Edge, p.NumEdges())
	for i := range edges {
		edges[i] = Edge{p[i], p[i+1]}
	}
	return
}

func (p Polyline) Directed() (des []types.EdgeInt) {
	des = make([]types.EdgeInt, p.NumEdges())
	for i := range des {
		des[i] = Edge{p[i], p[i+1]}.Directed()
	}
	return
}

// Flip returns a copy traversed tail to head
func (p Polyline) Flip() (f Polyline) {
	f = make(Polyline, len(p))
	for i, v := range p {
		f[len(p)-1-i] = v
	}
	return
}

/*
Points gathers the coordinates of the polyline vertices in traversal order.
The coordinate matrix is dimensioned [3, Npts], one column per point, and base is the index of the first
point used by the connectivity (1 for CGNS). The returned matrix is dimensioned [len(p), 3].
*/
func (p Polyline) Points(coor *mat.Dense, base int) (pts *mat.Dense, err error) {
	var (
		nr, nc = coor.Dims()
	)
	if nr != 3 {
		err = fmt.Errorf("coordinate matrix must have 3 rows, have %d", nr)
		return
	}
	pts = mat.NewDense(len(p), 3, nil)
	for i, v := range p {
		col := v - base
		if col < 0 || col >= nc {
			err = fmt.Errorf("vertex %d is outside of the %d points, base %d", v, nc, base)
			return nil, err
		}
		for d := 0; d < 3; d++ {
			pts.Set(i, d, coor.At(d, col))
		}
	}
	return
}
