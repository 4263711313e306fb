package ast

import (
	"fmt"

	"fortio.org/safecast"
)

// Arena is the flat node store. A node's handle is its slot index; slots 0
// and 1 are seeded empty, so the first allocated node is slot 2.
type Arena struct {
	nodes []Node
}

// NewArena creates an arena with the two reserved slots in place.
// capHint is a hint for the number of nodes to come; zero is allowed.
func NewArena(capHint uint) *Arena {
	a := &Arena{
		nodes: make([]Node, 0, capHint+2),
	}
	a.nodes = append(a.nodes, nil, nil)
	return a
}

// Возвращает индекс нового узла. nil занимает слот как пустой.
func (a *Arena) Allocate(n Node) GenericNodeID {
	id, err := safecast.Conv[uint32](len(a.nodes))
	if err != nil {
		panic(fmt.Errorf("arena overflow: %w", err))
	}
	a.nodes = append(a.nodes, n)
	return GenericNodeID(id)
}

// Get returns the node in slot id; ok is false for empty or missing slots.
func (a *Arena) Get(id GenericNodeID) (Node, bool) {
	if int64(id) >= int64(len(a.nodes)) {
		return nil, false
	}
	n := a.nodes[id]
	return n, n != nil
}

// READONLY
func (a *Arena) Slice() []Node {
	return a.nodes
}

func (a *Arena) Len() uint32 {
	n, err := safecast.Conv[uint32](len(a.nodes))
	if err != nil {
		panic(fmt.Errorf("arena overflow: %w", err))
	}
	return n
}
