package podgraph

import "github.com/matzehuels/pyregraph/pkg/card"

// Direction orients an edge between an added card and an existing one.
type Direction uint8

const (
	// FromExisting adds an edge existing -> added.
	FromExisting Direction = iota
	// ToExisting adds an edge added -> existing.
	ToExisting
)

// String returns the direction name.
func (d Direction) String() string {
	if d == ToExisting {
		return "to-existing"
	}
	return "from-existing"
}

// Link is a policy's verdict for one pair of cards.
type Link[E comparable] struct {
	Label E
	Dir   Direction
}

// Policy decides whether a newly added card links to an existing card.
//
// Check is called once per existing node on every insertion and must be a
// pure function of its arguments.
type Policy[E comparable] interface {
	Check(added, existing card.Card) (Link[E], bool)
}

// PolicyFunc adapts a function to the Policy interface.
type PolicyFunc[E comparable] func(added, existing card.Card) (Link[E], bool)

// Check calls f(added, existing).
func (f PolicyFunc[E]) Check(added, existing card.Card) (Link[E], bool) {
	return f(added, existing)
}

// NoInfo is the edge label of policies whose edges carry no data.
// It renders as the empty string.
type NoInfo struct{}

func (NoInfo) String() string { return "" }

// BirthingPod links cards whose costs differ by exactly one, from the
// cheaper card to the more expensive one.
type BirthingPod struct{}

// Check implements Policy.
func (BirthingPod) Check(added, existing card.Card) (Link[NoInfo], bool) {
	switch int(added.CMC) - int(existing.CMC) {
	case 1:
		return Link[NoInfo]{Dir: FromExisting}, true
	case -1:
		return Link[NoInfo]{Dir: ToExisting}, true
	}
	return Link[NoInfo]{}, false
}

// PyreOfHeroes links cards whose costs differ by exactly one and which share
// a type. The label is the first type of the added card, in its own order,
// that the existing card also has.
type PyreOfHeroes struct{}

// Check implements Policy.
func (PyreOfHeroes) Check(added, existing card.Card) (Link[string], bool) {
	shared, ok := added.SharesType(existing)
	if !ok {
		return Link[string]{}, false
	}
	l, ok := BirthingPod{}.Check(added, existing)
	if !ok {
		return Link[string]{}, false
	}
	return Link[string]{Label: shared, Dir: l.Dir}, true
}

var (
	_ Policy[NoInfo] = BirthingPod{}
	_ Policy[string] = PyreOfHeroes{}
)
