package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/pyregraph/pkg/errors"
	"github.com/matzehuels/pyregraph/pkg/podgraph"
)

type graph struct {
	Policy string `json:"policy,omitempty"`
	Nodes  []node `json:"nodes"`
	Edges  []edge `json:"edges"`
}

type node struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	CMC      uint8    `json:"cmc"`
	Types    []string `json:"types"`
	Isolated bool     `json:"isolated,omitempty"`
}

type edge struct {
	From  int    `json:"from"`
	To    int    `json:"to"`
	Label string `json:"label,omitempty"`
}

// WriteJSON encodes a pod graph as node-link JSON and writes it to w.
// Node IDs are insertion indices; edge labels are formatted with fmt.Sprint,
// so NoInfo labels are omitted. policy is recorded as-is and may be empty.
func WriteJSON[E comparable](g *podgraph.Graph[E], policy string, w io.Writer) error {
	out := graph{
		Policy: policy,
		Nodes:  make([]node, 0, g.NodeCount()),
		Edges:  make([]edge, 0, g.EdgeCount()),
	}

	for id, c := range g.Nodes() {
		types := c.Types
		if types == nil {
			types = []string{}
		}
		out.Nodes = append(out.Nodes, node{
			ID:       int(id),
			Name:     c.Name,
			CMC:      c.CMC,
			Types:    types,
			Isolated: g.IsIsolated(id),
		})
	}
	for e := range g.Edges() {
		out.Edges = append(out.Edges, edge{From: int(e.From), To: int(e.To), Label: fmt.Sprint(e.Label)})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeOutputIO, err, "encode graph")
	}
	return nil
}

// ExportJSON writes a pod graph to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON[E comparable](g *podgraph.Graph[E], policy, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeOutputIO, err, "create %s", path)
	}
	if err := WriteJSON(g, policy, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeOutputIO, err, "close %s", path)
	}
	return nil
}
