package podgraph

// NodeSet is a set of node IDs. The zero value is an empty set.
type NodeSet struct {
	member []bool
	n      int
}

func newNodeSet(size int) NodeSet {
	return NodeSet{member: make([]bool, size)}
}

func (s *NodeSet) add(id NodeID) {
	if !s.member[id] {
		s.member[id] = true
		s.n++
	}
}

// Contains reports whether id is in the set.
func (s NodeSet) Contains(id NodeID) bool {
	return id >= 0 && int(id) < len(s.member) && s.member[id]
}

// Len returns the number of members.
func (s NodeSet) Len() int { return s.n }

// IDs returns the members in ascending order.
func (s NodeSet) IDs() []NodeID {
	ids := make([]NodeID, 0, s.n)
	for i, ok := range s.member {
		if ok {
			ids = append(ids, NodeID(i))
		}
	}
	return ids
}
