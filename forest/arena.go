package forest

import (
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"
)

// arena owns every live Node. Parents refer to children only by ID.
type arena struct {
	lastID atomic.Uint64             // last NodeID handed out
	nodes  *xsync.Map[NodeID, *Node] // maps NodeIDs to Nodes
}

func newArena() *arena {
	return &arena{nodes: xsync.NewMap[NodeID, *Node]()}
}

// alloc creates and registers a new childless node
func (a *arena) alloc(name string) *Node {
	n := newNode(NodeID(a.lastID.Add(1)), name)
	a.nodes.Store(n.id, n)
	return n
}

func (a *arena) get(id NodeID) (*Node, bool) {
	return a.nodes.Load(id)
}

// release drops id and all of its descendants from the arena and returns how
// many nodes were released.
func (a *arena) release(id NodeID) int {
	n, ok := a.nodes.LoadAndDelete(id)
	if !ok {
		return 0
	}
	cnt := 1
	n.ascend(func(_ string, child NodeID) bool {
		cnt += a.release(child)
		return true
	})
	return cnt
}

func (a *arena) size() int {
	return a.nodes.Size()
}
