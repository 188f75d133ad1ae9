// Package dot renders pod graphs as Graphviz DOT documents.
//
// # Layout of the document
//
// Nodes are grouped into one cluster per mana cost, in ascending cost order,
// each labeled with the cost. Within a cluster nodes appear in insertion
// order, so the output is byte-for-byte deterministic for a given graph.
//
//	digraph {
//	  node [colorscheme=spectral11];
//	  edge [colorscheme=dark28];
//	  subgraph cluster_3 {
//	    label = "3";
//	    0 [label="Goblin Matron"];
//	  }
//	  0 -> 2 [label="Goblin" color=1 fontcolor=1];
//	}
//
// # Styling
//
// Isolated nodes get "style=filled fillcolor=2". Nodes that can reach the
// highlight target get "style=filled fillcolor=11". A node that is both
// carries both directives, isolation first; Graphviz keeps the last value,
// so the highlight fill shows.
//
// Each distinct edge label gets a color index in first-seen order, starting
// at 1 and wrapping within the 8 colors of the dark28 scheme.
//
// # Images
//
// [RenderSVG] and [RenderPNG] lay out a DOT document in-process with
// [github.com/goccy/go-graphviz].
package dot
