package io

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/pyregraph/pkg/card"
	"github.com/matzehuels/pyregraph/pkg/podgraph"
)

func sampleGraph() *podgraph.Graph[string] {
	g := podgraph.New[string](podgraph.PyreOfHeroes{})
	g.Insert(card.Card{Name: "Goblin Matron", CMC: 3, Types: []string{"Goblin"}})
	g.Insert(card.Card{Name: "Llanowar Elves", CMC: 1})
	g.Insert(card.Card{Name: "Goblin Chieftain", CMC: 4, Types: []string{"Goblin"}})
	return g
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(sampleGraph(), "pyre-of-heroes", &buf); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}

	var got graph
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if got.Policy != "pyre-of-heroes" {
		t.Errorf("policy = %q", got.Policy)
	}
	if len(got.Nodes) != 3 || len(got.Edges) != 1 {
		t.Fatalf("got %d nodes, %d edges; want 3, 1", len(got.Nodes), len(got.Edges))
	}
	if e := got.Edges[0]; e.From != 0 || e.To != 2 || e.Label != "Goblin" {
		t.Errorf("edge = %+v", e)
	}
	if !got.Nodes[1].Isolated || got.Nodes[0].Isolated {
		t.Errorf("isolation flags wrong: %+v", got.Nodes)
	}
	if got.Nodes[1].Types == nil {
		t.Error("missing types should encode as an empty array")
	}
}

func TestWriteJSONNoInfoLabels(t *testing.T) {
	g := podgraph.New[podgraph.NoInfo](podgraph.BirthingPod{})
	g.Insert(card.Card{Name: "Birds of Paradise", CMC: 1})
	g.Insert(card.Card{Name: "Wall of Roots", CMC: 2})

	var buf bytes.Buffer
	if err := WriteJSON(g, "", &buf); err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(buf.Bytes(), []byte(`"label"`)) {
		t.Errorf("empty labels should be omitted:\n%s", buf.String())
	}
	if bytes.Contains(buf.Bytes(), []byte(`"policy"`)) {
		t.Errorf("empty policy should be omitted:\n%s", buf.String())
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := ExportJSON(sampleGraph(), "pyre-of-heroes", path); err != nil {
		t.Fatalf("ExportJSON error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !json.Valid(data) {
		t.Errorf("exported file is not valid JSON:\n%s", data)
	}
}

func TestExportJSONBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "graph.json")
	if err := ExportJSON(sampleGraph(), "", path); err == nil {
		t.Error("ExportJSON should fail when the directory does not exist")
	}
}
