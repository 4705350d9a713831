package curves

// disjointSet is a union-find over vertex indices with path compression and union by size
type disjointSet struct {
	parent map[int]int
	size   map[int]int
	order  []int // Vertices in first-seen order
}

func newDisjointSet(capacity int) *disjointSet {
	return &disjointSet{
		parent: make(map[int]int, capacity),
		size:   make(map[int]int, capacity),
		order:  make([]int, 0, capacity),
	}
}

func (ds *disjointSet) add(v int) {
	if _, ok := ds.parent[v]; ok {
		return
	}
	ds.parent[v] = v
	ds.size[v] = 1
	ds.order = append(ds.order, v)
}

func (ds *disjointSet) find(v int) int {
	root := v
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for ds.parent[v] != root {
		ds.parent[v], v = root, ds.parent[v]
	}
	return root
}

func (ds *disjointSet) union(a, b int) {
	ra, rb := ds.find(a), ds.find(b)
	if ra == rb {
		return
	}
	if ds.size[ra] < ds.size[rb] {
		ra, rb = rb, ra
	}
	ds.parent[rb] = ra
	ds.size[ra] += ds.size[rb]
}

/*
Components groups the vertices of the edge set into connected components.
Components are ordered by the first appearance of any of their vertices in the input, and the vertices
within a component keep their first-seen order.
*/
func Components(edges []Edge) (comps [][]int) {
	ds := newDisjointSet(2 * len(edges))
	for _, e := range edges {
		ds.add(e[0])
		ds.add(e[1])
		ds.union(e[0], e[1])
	}
	index := make(map[int]int)
	for _, v := range ds.order {
		root := ds.find(v)
		ci, ok := index[root]
		if !ok {
			ci = len(comps)
			index[root] = ci
			comps = append(comps, nil)
		}
		comps[ci] = append(comps[ci], v)
	}
	return
}
