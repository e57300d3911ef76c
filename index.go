package main

// TypeIndex maps declaration ids to their nodes. It is built once per run
// and only read afterwards.
type TypeIndex struct {
	byID map[int]*DeclarationNode
}

// NewTypeIndex indexes the given nodes by id. Children are not visited.
func NewTypeIndex(nodes []*DeclarationNode) TypeIndex {
	byID := make(map[int]*DeclarationNode, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		byID[n.ID] = n
	}
	return TypeIndex{byID: byID}
}

func (idx TypeIndex) Lookup(id int) (*DeclarationNode, bool) {
	n, ok := idx.byID[id]
	return n, ok
}

func (idx TypeIndex) Len() int {
	return len(idx.byID)
}
