package podgraph

import (
	"iter"
	"strings"

	"github.com/matzehuels/pyregraph/pkg/card"
)

// NodeID identifies a node by its insertion index, starting at 0.
type NodeID int

// Edge is a directed, labeled edge.
type Edge[E comparable] struct {
	From  NodeID
	To    NodeID
	Label E
}

// Graph is a directed multigraph of cards whose edges are decided by a
// [Policy]. The zero value is not usable - use New.
type Graph[E comparable] struct {
	policy Policy[E]
	nodes  []card.Card
	edges  []Edge[E]
	out    [][]int // edge indices by source node
	degree []int   // incident edges per node, both directions
}

// New creates an empty graph that links cards with policy.
func New[E comparable](policy Policy[E]) *Graph[E] {
	return &Graph[E]{policy: policy}
}

// Policy returns the graph's policy.
func (g *Graph[E]) Policy() Policy[E] { return g.policy }

// Insert adds c and one edge per existing node the policy links it to.
// Edges are added in the order of the existing nodes. The card is copied.
func (g *Graph[E]) Insert(c card.Card) NodeID {
	c = c.Clone()

	type pending struct {
		other NodeID
		link  Link[E]
	}
	var links []pending
	for i, existing := range g.nodes {
		if l, ok := g.policy.Check(c, existing); ok {
			links = append(links, pending{NodeID(i), l})
		}
	}

	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, c)
	g.out = append(g.out, nil)
	g.degree = append(g.degree, 0)

	for _, p := range links {
		e := Edge[E]{From: p.other, To: id, Label: p.link.Label}
		if p.link.Dir == ToExisting {
			e.From, e.To = id, p.other
		}
		g.addEdge(e)
	}
	return id
}

func (g *Graph[E]) addEdge(e Edge[E]) {
	g.out[e.From] = append(g.out[e.From], len(g.edges))
	g.edges = append(g.edges, e)
	g.degree[e.From]++
	g.degree[e.To]++
}

// NodeCount returns the number of nodes.
func (g *Graph[E]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph[E]) EdgeCount() int { return len(g.edges) }

// Node returns the card stored at id. It panics if id is out of range.
func (g *Graph[E]) Node(id NodeID) card.Card { return g.nodes[id] }

// Nodes iterates over nodes in insertion order.
func (g *Graph[E]) Nodes() iter.Seq2[NodeID, card.Card] {
	return func(yield func(NodeID, card.Card) bool) {
		for i, c := range g.nodes {
			if !yield(NodeID(i), c) {
				return
			}
		}
	}
}

// Edges iterates over edges in insertion order.
func (g *Graph[E]) Edges() iter.Seq[Edge[E]] {
	return func(yield func(Edge[E]) bool) {
		for _, e := range g.edges {
			if !yield(e) {
				return
			}
		}
	}
}

// Find returns the first node, in insertion order, whose name contains
// substr.
func (g *Graph[E]) Find(substr string) (NodeID, bool) {
	for i, c := range g.nodes {
		if strings.Contains(c.Name, substr) {
			return NodeID(i), true
		}
	}
	return 0, false
}

// ReachableTo returns every node with a directed path to the first node
// whose name contains substr, the target itself included. The set is empty
// when no name matches.
func (g *Graph[E]) ReachableTo(substr string) NodeSet {
	target, ok := g.Find(substr)
	if !ok {
		return NodeSet{}
	}

	set := newNodeSet(len(g.nodes))
	r := NewReach(g)
	for i := range g.nodes {
		if r.HasPath(NodeID(i), target) {
			set.add(NodeID(i))
		}
	}
	return set
}

// IsIsolated reports whether no edge starts or ends at id.
func (g *Graph[E]) IsIsolated(id NodeID) bool {
	return g.degree[id] == 0
}
