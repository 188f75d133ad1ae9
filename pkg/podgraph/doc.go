// Package podgraph builds directed graphs of cards linked by a pod policy.
//
// # Overview
//
// Birthing Pod and Pyre of Heroes let a player sacrifice a creature to fetch
// a creature costing exactly one more. A [Graph] records which cards in a deck
// can chain into which: an edge a -> b means a can be turned into b.
//
// The edge rule is a [Policy], supplied when the graph is created:
//
//   - [BirthingPod]: costs differ by exactly one; edges carry [NoInfo]
//   - [PyreOfHeroes]: as BirthingPod, and the cards must share a creature
//     type; edges are labeled with that type
//
// # Construction
//
// Cards are added one at a time with [Graph.Insert]. The policy is checked
// against every card already present, so edges only ever connect the new
// node to older nodes. Building a graph of n cards costs n(n-1)/2 checks.
//
//	g := podgraph.New[string](podgraph.PyreOfHeroes{})
//	g.Insert(card.Card{Name: "Goblin Matron", CMC: 3, Types: []string{"Goblin"}})
//	g.Insert(card.Card{Name: "Goblin Chieftain", CMC: 4, Types: []string{"Goblin"}})
//	// one edge: Goblin Matron -> Goblin Chieftain, labeled "Goblin"
//
// # Queries
//
// [Graph.ReachableTo] returns every node with a directed path to the first
// card whose name contains a substring; [Graph.IsIsolated] reports nodes
// without edges. Graphs are not safe for concurrent mutation.
package podgraph
