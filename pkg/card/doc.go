// Package card defines the resolved card model shared by every stage of the
// pyregraph pipeline.
//
// # Overview
//
// A [Card] is the canonical, immutable shape of a decklist entry after it has
// been resolved against the lookup service: its printed name, its converted
// mana cost and its type line split into words.
//
// The package also holds the small pure helpers that operate on raw input and
// raw lookup data:
//
//   - [TrimName]: strips a leading quantity ("4 Llanowar Elves") from a line
//   - [CMCFromFloat]: coerces a lookup cost into an exact uint8
//   - [Card.IsCreature] and [Card.Subtypes]: the creature filter and the
//     type-line trimming applied during ingestion
//
// # Example
//
//	c := card.Card{Name: "Goblin Matron", CMC: 3, Types: []string{"Creature", "—", "Goblin"}}
//	if c.IsCreature() {
//	    c = c.Subtypes() // Types is now ["Goblin"]
//	}
package card
