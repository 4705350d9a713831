package curves

import (
	"sort"
)

// vertEdgeBucket holds the first two edges incident on a vertex along with the full incidence count
type vertEdgeBucket struct {
	numberOfEdges int
	vertEdge      [2]Edge
}

type bucketMap map[int]*vertEdgeBucket

func newBucketMap(edges []Edge) (bm bucketMap) {
	bm = make(bucketMap, len(edges)+1)
	for _, e := range edges {
		bm.AddEdge(e)
	}
	return
}

func (bm bucketMap) AddEdge(e Edge) {
	var (
		b  *vertEdgeBucket
		ok bool
	)
	for i := 0; i < 2; i++ {
		if b, ok = bm[e[i]]; !ok {
			bm[e[i]] = &vertEdgeBucket{}
			b = bm[e[i]]
		}
		if b.numberOfEdges < 2 {
			b.vertEdge[b.numberOfEdges] = e
		}
		b.numberOfEdges++
	}
}

func (bm bucketMap) Degree(v int) int {
	if b, ok := bm[v]; ok {
		return b.numberOfEdges
	}
	return 0
}

// Branches lists every vertex touched by three or more edges, ascending
func (bm bucketMap) Branches() (verts []int) {
	for v, b := range bm {
		if b.numberOfEdges > 2 {
			verts = append(verts, v)
		}
	}
	sort.Ints(verts)
	return
}

/*
BranchVertices reports the vertices with an edge-degree of three or more. A curve network containing any
of these can not be represented faithfully as a set of simple polylines.
*/
func BranchVertices(edges []Edge) []int {
	return newBucketMap(edges).Branches()
}
