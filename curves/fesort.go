package curves

import (
	"fmt"
	"strings"
)

// Result is the output of Sort. Degraded results are still the best polylines obtainable from the input.
type Result struct {
	Polylines   []Polyline
	Branches    []int // Vertices with edge-degree >= 3, ascending
	Represented int   // Number of edges carried by Polylines
	Input       int   // Number of input edges
	Degraded    bool
}

// Err reports a degraded reconstruction as an error wrapping ErrDegraded, nil otherwise
func (r Result) Err() error {
	if !r.Degraded {
		return nil
	}
	var reasons []string
	if len(r.Branches) != 0 {
		reasons = append(reasons, fmt.Sprintf("branch vertices %v", r.Branches))
	}
	if r.Represented != r.Input {
		reasons = append(reasons, fmt.Sprintf("%d of %d edges represented", r.Represented, r.Input))
	}
	return fmt.Errorf("%w: %s", ErrDegraded, strings.Join(reasons, ", "))
}

// Edges flattens the polylines into bar elements oriented along each traversal
func (r Result) Edges() (edges []Edge) {
	edges = make([]Edge, 0, r.Represented)
	for _, p := range r.Polylines {
		edges = append(edges, p.Edges()...)
	}
	return
}

/*
Sort reconstructs the polylines described by an unordered set of bar elements.

Every bar starts as a one-edge chain. A pass feeds the chains, in order, into a new working list: each chain is
absorbed by the first working chain sharing an endpoint with it, checked in this order
  - chain head == working head: the chain is reversed and prepended
  - chain head == working tail: the chain is appended
  - chain tail == working head: the chain is prepended
  - chain tail == working tail: the chain is reversed and appended
and otherwise it is added at the end of the working list. Passes repeat while anything was absorbed.

Malformed input is rejected with an error. Branching input is reported through Result.Degraded and
Result.Branches, while the polylines are still returned.
*/
func Sort(edges []Edge) (r Result, err error) {
	if err = Validate(edges); err != nil {
		return
	}
	r.Input = len(edges)
	if len(edges) == 0 {
		return
	}
	chains := make([][]int, len(edges))
	for i, e := range edges {
		chains[i] = []int{e[0], e[1]}
	}
	for changed := true; changed; {
		chains, changed = stitchPass(chains)
	}
	r.Polylines = make([]Polyline, len(chains))
	for i, c := range chains {
		r.Polylines[i] = c
		r.Represented += len(c) - 1
	}
	r.Branches = BranchVertices(edges)
	r.Degraded = len(r.Branches) != 0 || r.Represented != r.Input
	return
}

func stitchPass(pending [][]int) (working [][]int, changed bool) {
	working = make([][]int, 1, len(pending))
	working[0] = pending[0]
	for _, c := range pending[1:] {
		if absorb(working, c) {
			changed = true
		} else {
			working = append(working, c)
		}
	}
	return
}

func absorb(working [][]int, c []int) bool {
	var (
		head, tail = c[0], c[len(c)-1]
	)
	for i, w := range working {
		wHead, wTail := w[0], w[len(w)-1]
		switch {
		case head == wHead:
			working[i] = join(reversed(c), w[1:])
		case head == wTail:
			working[i] = join(w[:len(w)-1], c)
		case tail == wHead:
			working[i] = join(c, w[1:])
		case tail == wTail:
			working[i] = join(w[:len(w)-1], reversed(c))
		default:
			continue
		}
		return true
	}
	return false
}

func join(a, b []int) (c []int) {
	c = make([]int, 0, len(a)+len(b))
	c = append(c, a...)
	return append(c, b...)
}

func reversed(a []int) (r []int) {
	r = make([]int, len(a))
	for i, v := range a {
		r[len(a)-1-i] = v
	}
	return
}
