package card

import "slices"

const (
	// TypeCreature is the card type retained by ingestion.
	TypeCreature = "Creature"

	// TypeSeparator splits supertypes and types from subtypes on a type line
	// ("Legendary Creature — Elf Druid").
	TypeSeparator = "—"
)

// Card is a resolved decklist entry.
//
// Cards are treated as values: every holder (cache, graph node) keeps its own
// copy, made with [Card.Clone] when the type slice may be shared.
type Card struct {
	Name  string   `json:"name"`
	CMC   uint8    `json:"cmc"`
	Types []string `json:"types"`
}

// Clone returns a deep copy of c.
func (c Card) Clone() Card {
	c.Types = slices.Clone(c.Types)
	return c
}

// IsCreature reports whether the type line contains the Creature type.
func (c Card) IsCreature() bool {
	return slices.Contains(c.Types, TypeCreature)
}

// Subtypes returns a copy of c whose Types keep only the words after the
// type separator. Cards without a separator are returned unchanged.
func (c Card) Subtypes() Card {
	c = c.Clone()
	if i := slices.Index(c.Types, TypeSeparator); i >= 0 {
		c.Types = c.Types[i+1:]
	}
	return c
}

// SharesType returns the first entry of c.Types that other also carries.
func (c Card) SharesType(other Card) (string, bool) {
	for _, t := range c.Types {
		if slices.Contains(other.Types, t) {
			return t, true
		}
	}
	return "", false
}
