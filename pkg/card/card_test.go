package card

import (
	"slices"
	"testing"
)

func TestCardIsCreature(t *testing.T) {
	tests := []struct {
		types []string
		want  bool
	}{
		{types: []string{"Creature", "—", "Elf", "Druid"}, want: true},
		{types: []string{"Legendary", "Creature", "—", "Goblin"}, want: true},
		{types: []string{"Artifact", "Creature", "—", "Golem"}, want: true},
		{types: []string{"Instant"}, want: false},
		{types: []string{"Creatures"}, want: false},
		{types: nil, want: false},
	}

	for _, tt := range tests {
		c := Card{Name: "x", Types: tt.types}
		if got := c.IsCreature(); got != tt.want {
			t.Errorf("IsCreature(%v) = %v, want %v", tt.types, got, tt.want)
		}
	}
}

func TestCardSubtypes(t *testing.T) {
	tests := []struct {
		name  string
		types []string
		want  []string
	}{
		{name: "with separator", types: []string{"Legendary", "Creature", "—", "Elf", "Druid"}, want: []string{"Elf", "Druid"}},
		{name: "no separator", types: []string{"Artifact", "Creature"}, want: []string{"Artifact", "Creature"}},
		{name: "separator last", types: []string{"Creature", "—"}, want: []string{}},
		{name: "first separator only", types: []string{"A", "—", "B", "—", "C"}, want: []string{"B", "—", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := slices.Clone(tt.types)
			c := Card{Name: "x", Types: tt.types}
			got := c.Subtypes()
			if !slices.Equal(got.Types, tt.want) {
				t.Errorf("Subtypes() = %v, want %v", got.Types, tt.want)
			}
			if !slices.Equal(c.Types, orig) {
				t.Errorf("Subtypes() modified the receiver: %v", c.Types)
			}
		})
	}
}

func TestCardClone(t *testing.T) {
	c := Card{Name: "Goblin Matron", CMC: 3, Types: []string{"Creature", "—", "Goblin"}}
	clone := c.Clone()
	clone.Types[2] = "Elf"

	if c.Types[2] != "Goblin" {
		t.Error("Clone() should not share the type slice")
	}
}

func TestCardSharesType(t *testing.T) {
	matron := Card{Name: "Goblin Matron", Types: []string{"Goblin"}}
	chieftain := Card{Name: "Goblin Chieftain", Types: []string{"Goblin"}}
	elf := Card{Name: "Llanowar Elves", Types: []string{"Elf", "Druid"}}
	shaman := Card{Name: "Elvish Shaman", Types: []string{"Shaman", "Elf", "Druid"}}

	if got, ok := matron.SharesType(chieftain); !ok || got != "Goblin" {
		t.Errorf("SharesType() = %q, %v, want Goblin, true", got, ok)
	}
	if _, ok := matron.SharesType(elf); ok {
		t.Error("SharesType() should report no shared type")
	}
	// The first shared entry in the receiver's order wins.
	if got, _ := elf.SharesType(shaman); got != "Elf" {
		t.Errorf("SharesType() = %q, want Elf", got)
	}
	if got, _ := shaman.SharesType(elf); got != "Elf" {
		t.Errorf("SharesType() = %q, want Elf", got)
	}
}
