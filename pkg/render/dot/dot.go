package dot

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/pyregraph/pkg/errors"
	"github.com/matzehuels/pyregraph/pkg/podgraph"
)

// Style directives and color schemes used in the document.
const (
	NodeColorScheme = "spectral11"
	EdgeColorScheme = "dark28"
	IsolatedStyle   = "style=filled fillcolor=2"
	HighlightStyle  = "style=filled fillcolor=11"
)

// Options configures DOT rendering.
type Options struct {
	// Highlight selects the nodes that can reach the first card whose name
	// contains it. Empty disables highlighting; when set, only edges between
	// highlighted nodes are written.
	Highlight string
}

// ToDOT renders g as a DOT document.
func ToDOT[E comparable](g *podgraph.Graph[E], opts Options) string {
	var b strings.Builder
	_ = Write(&b, g, opts)
	return b.String()
}

// Write renders g as a DOT document to w. Write errors carry
// [errors.ErrCodeOutputIO].
//
// Each distinct edge label gets the 1-based index of its first appearance as
// both color and fontcolor. dark28 only defines eight colors, so Graphviz
// warns about and falls back to black for labels past the eighth.
func Write[E comparable](w io.Writer, g *podgraph.Graph[E], opts Options) error {
	bw := bufio.NewWriter(w)

	var highlight *podgraph.NodeSet
	if opts.Highlight != "" {
		set := g.ReachableTo(opts.Highlight)
		highlight = &set
	}

	bw.WriteString("digraph {\n")
	fmt.Fprintf(bw, "  node [colorscheme=%s];\n", NodeColorScheme)
	fmt.Fprintf(bw, "  edge [colorscheme=%s];\n", EdgeColorScheme)

	for _, cmc := range clusterKeys(g) {
		fmt.Fprintf(bw, "  subgraph cluster_%d {\n", cmc)
		fmt.Fprintf(bw, "    label = \"%d\";\n", cmc)
		for id, c := range g.Nodes() {
			if c.CMC != cmc {
				continue
			}
			fmt.Fprintf(bw, "    %d [label=%s", id, quote(c.Name))
			if g.IsIsolated(id) {
				bw.WriteString(" " + IsolatedStyle)
			}
			if highlight != nil && highlight.Contains(id) {
				bw.WriteString(" " + HighlightStyle)
			}
			bw.WriteString("];\n")
		}
		bw.WriteString("  }\n")
	}

	colors := make(map[E]int)
	for e := range g.Edges() {
		if highlight != nil && !(highlight.Contains(e.From) && highlight.Contains(e.To)) {
			continue
		}
		c, ok := colors[e.Label]
		if !ok {
			c = len(colors) + 1
			colors[e.Label] = c
		}
		fmt.Fprintf(bw, "  %d -> %d [label=%s color=%d fontcolor=%d];\n",
			e.From, e.To, quote(fmt.Sprint(e.Label)), c, c)
	}

	bw.WriteString("}\n")
	if err := bw.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeOutputIO, err, "write DOT")
	}
	return nil
}

// clusterKeys returns the distinct costs in g in ascending order.
func clusterKeys[E comparable](g *podgraph.Graph[E]) []uint8 {
	seen := make(map[uint8]struct{})
	for _, c := range g.Nodes() {
		seen[c.CMC] = struct{}{}
	}
	return slices.Sorted(maps.Keys(seen))
}

var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func quote(s string) string {
	return `"` + labelEscaper.Replace(s) + `"`
}
