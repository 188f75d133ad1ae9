package dot

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/matzehuels/pyregraph/pkg/card"
	apperrors "github.com/matzehuels/pyregraph/pkg/errors"
	"github.com/matzehuels/pyregraph/pkg/podgraph"
)

func creature(name string, cmc uint8, types ...string) card.Card {
	return card.Card{Name: name, CMC: cmc, Types: types}
}

func TestToDOTGolden(t *testing.T) {
	g := podgraph.New[string](podgraph.PyreOfHeroes{})
	g.Insert(creature("Goblin Matron", 3, "Goblin"))
	g.Insert(creature("Llanowar Elves", 1, "Elf", "Druid"))
	g.Insert(creature("Goblin Chieftain", 4, "Goblin"))
	g.Insert(creature("Wall of Roots", 2, "Plant", "Wall"))

	want := `digraph {
  node [colorscheme=spectral11];
  edge [colorscheme=dark28];
  subgraph cluster_1 {
    label = "1";
    1 [label="Llanowar Elves" style=filled fillcolor=2];
  }
  subgraph cluster_2 {
    label = "2";
    3 [label="Wall of Roots" style=filled fillcolor=2];
  }
  subgraph cluster_3 {
    label = "3";
    0 [label="Goblin Matron"];
  }
  subgraph cluster_4 {
    label = "4";
    2 [label="Goblin Chieftain"];
  }
  0 -> 2 [label="Goblin" color=1 fontcolor=1];
}
`
	if got := ToDOT(g, Options{}); got != want {
		t.Errorf("ToDOT() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestToDOTEmptyGraph(t *testing.T) {
	g := podgraph.New[podgraph.NoInfo](podgraph.BirthingPod{})
	want := "digraph {\n  node [colorscheme=spectral11];\n  edge [colorscheme=dark28];\n}\n"
	if got := ToDOT(g, Options{}); got != want {
		t.Errorf("ToDOT() = %q, want %q", got, want)
	}
}

func TestToDOTBirthingPodLabels(t *testing.T) {
	g := podgraph.New[podgraph.NoInfo](podgraph.BirthingPod{})
	g.Insert(creature("Birds of Paradise", 1))
	g.Insert(creature("Wall of Roots", 2))
	g.Insert(creature("Eternal Witness", 3))

	got := ToDOT(g, Options{})
	for _, line := range []string{
		`  0 -> 1 [label="" color=1 fontcolor=1];`,
		`  1 -> 2 [label="" color=1 fontcolor=1];`,
	} {
		if !strings.Contains(got, line+"\n") {
			t.Errorf("missing %q in:\n%s", line, got)
		}
	}
}

func TestToDOTHighlight(t *testing.T) {
	g := podgraph.New[podgraph.NoInfo](podgraph.BirthingPod{})
	g.Insert(creature("Birds of Paradise", 1))   // 0
	g.Insert(creature("Wall of Roots", 2))       // 1
	g.Insert(creature("Eternal Witness", 3))     // 2
	g.Insert(creature("Kitchen Finks", 3))       // 3
	g.Insert(creature("Thragtusk", 5))           // 4, isolated

	got := ToDOT(g, Options{Highlight: "Witness"})

	for _, line := range []string{
		`    0 [label="Birds of Paradise" style=filled fillcolor=11];`,
		`    1 [label="Wall of Roots" style=filled fillcolor=11];`,
		`    2 [label="Eternal Witness" style=filled fillcolor=11];`,
		`    3 [label="Kitchen Finks"];`,
		`    4 [label="Thragtusk" style=filled fillcolor=2];`,
		`  0 -> 1 [label="" color=1 fontcolor=1];`,
		`  1 -> 2 [label="" color=1 fontcolor=1];`,
	} {
		if !strings.Contains(got, line+"\n") {
			t.Errorf("missing %q in:\n%s", line, got)
		}
	}
	if strings.Contains(got, "1 -> 3") {
		t.Error("edges leaving the highlight set must be omitted")
	}
}

func TestToDOTHighlightIsolatedTarget(t *testing.T) {
	g := podgraph.New[podgraph.NoInfo](podgraph.BirthingPod{})
	g.Insert(creature("Thragtusk", 5))
	g.Insert(creature("Birds of Paradise", 1))

	got := ToDOT(g, Options{Highlight: "Thragtusk"})
	want := `    0 [label="Thragtusk" style=filled fillcolor=2 style=filled fillcolor=11];`
	if !strings.Contains(got, want+"\n") {
		t.Errorf("isolated highlight target should carry both directives, got:\n%s", got)
	}
}

func TestToDOTHighlightNoMatch(t *testing.T) {
	g := podgraph.New[podgraph.NoInfo](podgraph.BirthingPod{})
	g.Insert(creature("Birds of Paradise", 1))
	g.Insert(creature("Wall of Roots", 2))

	got := ToDOT(g, Options{Highlight: "Craterhoof"})
	if strings.Contains(got, "fillcolor=11") {
		t.Error("no node should be highlighted")
	}
	if strings.Contains(got, "->") {
		t.Error("no edge survives an empty highlight set")
	}
}

func TestToDOTEdgeColors(t *testing.T) {
	g := podgraph.New[string](podgraph.PyreOfHeroes{})
	g.Insert(creature("Elvish Visionary", 2, "Elf", "Shaman")) // 0
	g.Insert(creature("Goblin Matron", 3, "Goblin"))           // 1
	g.Insert(creature("Elvish Archdruid", 3, "Elf", "Druid"))  // 2: 0 -> 2 Elf
	g.Insert(creature("Goblin Chieftain", 4, "Goblin"))        // 3: 1 -> 3 Goblin
	g.Insert(creature("Llanowar Elves", 1, "Elf", "Druid"))    // 4: 4 -> 0 Elf

	got := ToDOT(g, Options{})
	for _, line := range []string{
		`  2 [label="Elvish Archdruid"];`,
		`  0 -> 2 [label="Elf" color=1 fontcolor=1];`,
		`  1 -> 3 [label="Goblin" color=2 fontcolor=2];`,
		`  4 -> 0 [label="Elf" color=1 fontcolor=1];`,
	} {
		if !strings.Contains(got, line+"\n") {
			t.Errorf("missing %q in:\n%s", line, got)
		}
	}
}

func TestToDOTEdgeColorsFirstSeen(t *testing.T) {
	byCost := podgraph.PolicyFunc[int](func(added, existing card.Card) (podgraph.Link[int], bool) {
		return podgraph.Link[int]{Label: int(added.CMC), Dir: podgraph.FromExisting}, added.CMC == existing.CMC+1
	})
	g := podgraph.New[int](byCost)
	for i := range 10 {
		g.Insert(creature("Card", uint8(i)))
	}

	got := ToDOT(g, Options{})
	for _, line := range []string{
		`  7 -> 8 [label="8" color=8 fontcolor=8];`,
		`  8 -> 9 [label="9" color=9 fontcolor=9];`,
	} {
		if !strings.Contains(got, line+"\n") {
			t.Errorf("missing %q in:\n%s", line, got)
		}
	}
}

func TestToDOTEscapesLabels(t *testing.T) {
	g := podgraph.New[podgraph.NoInfo](podgraph.BirthingPod{})
	g.Insert(creature(`"Ach! Hans, Run!"`, 6))

	got := ToDOT(g, Options{})
	if !strings.Contains(got, `[label="\"Ach! Hans, Run!\"" style=filled fillcolor=2]`) {
		t.Errorf("quotes should be escaped, got:\n%s", got)
	}
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteError(t *testing.T) {
	g := podgraph.New[podgraph.NoInfo](podgraph.BirthingPod{})
	g.Insert(creature("Birds of Paradise", 1))

	err := Write(errWriter{}, g, Options{})
	if !apperrors.Is(err, apperrors.ErrCodeOutputIO) {
		t.Errorf("Write() error = %v, want OUTPUT_IO", err)
	}
}

func TestRenderSVG(t *testing.T) {
	g := podgraph.New[podgraph.NoInfo](podgraph.BirthingPod{})
	g.Insert(creature("Birds of Paradise", 1))
	g.Insert(creature("Wall of Roots", 2))

	svg, err := RenderSVG(context.Background(), ToDOT(g, Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVGInvalidDOT(t *testing.T) {
	if _, err := RenderSVG(context.Background(), "digraph { invalid syntax here"); err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s, want %s", got, want)
	}
}
