package podgraph

// Reach is a reusable workspace for path queries on one graph.
//
// Visited marks are stamped with a generation counter, so consecutive
// queries reuse the same buffers without clearing them. A Reach must not be
// shared between goroutines.
type Reach[E comparable] struct {
	g     *Graph[E]
	marks []uint32
	gen   uint32
	stack []NodeID
}

// NewReach creates a workspace sized for g's current nodes. It grows on
// demand if g gains nodes later.
func NewReach[E comparable](g *Graph[E]) *Reach[E] {
	return &Reach[E]{g: g, marks: make([]uint32, g.NodeCount())}
}

// HasPath reports whether a directed path of zero or more edges leads from
// from to to.
func (r *Reach[E]) HasPath(from, to NodeID) bool {
	if from == to {
		return true
	}
	r.next()

	r.stack = append(r.stack[:0], from)
	r.marks[from] = r.gen
	for len(r.stack) > 0 {
		n := r.stack[len(r.stack)-1]
		r.stack = r.stack[:len(r.stack)-1]
		for _, ei := range r.g.out[n] {
			m := r.g.edges[ei].To
			if m == to {
				return true
			}
			if r.marks[m] != r.gen {
				r.marks[m] = r.gen
				r.stack = append(r.stack, m)
			}
		}
	}
	return false
}

func (r *Reach[E]) next() {
	if n := r.g.NodeCount(); len(r.marks) < n {
		r.marks = append(r.marks, make([]uint32, n-len(r.marks))...)
	}
	r.gen++
	if r.gen == 0 {
		clear(r.marks)
		r.gen = 1
	}
}
