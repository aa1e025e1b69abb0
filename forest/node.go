package forest

import "github.com/google/btree"

// childDegree is the btree degree used for child and tree indexes. Directories
// are small so a low degree keeps nodes compact.
const childDegree = 8

// NodeID is a stable arena identifier. IDs survive moves; a moved subtree keeps
// every ID it had.
type NodeID uint64

// entry is one name -> child link held by a parent
type entry struct {
	name string
	id   NodeID
}

func entryLess(a, b entry) bool {
	return compareNames(a.name, b.name) < 0
}

// Node is a single named directory. Children are referenced by ID through an
// ordered index keyed by name.
type Node struct {
	id       NodeID
	name     string // immutable after creation
	children *btree.BTreeG[entry]
}

func newNode(id NodeID, name string) *Node {
	return &Node{
		id:       id,
		name:     name,
		children: btree.NewG[entry](childDegree, entryLess),
	}
}

// ID returns the node's arena ID
func (n *Node) ID() NodeID {
	return n.id
}

// Name returns the node's immutable Name.
func (n *Node) Name() string {
	return n.name
}

// Child returns the ID of the child called name
func (n *Node) Child(name string) (NodeID, bool) {
	e, ok := n.children.Get(entry{name: name})
	return e.id, ok
}

// HasChild reports whether a child called name exists
func (n *Node) HasChild(name string) bool {
	return n.children.Has(entry{name: name})
}

// Len returns the number of direct children
func (n *Node) Len() int {
	return n.children.Len()
}

// ChildNames returns child names in ascending order
func (n *Node) ChildNames() []string {
	names := make([]string, 0, n.children.Len())
	n.children.Ascend(func(e entry) bool {
		names = append(names, e.name)
		return true
	})
	return names
}

// addChild links id under name. An existing child with the same name is kept
// and false is returned.
func (n *Node) addChild(name string, id NodeID) bool {
	if n.children.Has(entry{name: name}) {
		return false
	}
	n.children.ReplaceOrInsert(entry{name: name, id: id})
	return true
}

// removeChild unlinks the child called name and returns its ID
func (n *Node) removeChild(name string) (NodeID, bool) {
	e, ok := n.children.Delete(entry{name: name})
	return e.id, ok
}

// descend calls fn for each child in descending name order until fn returns false
func (n *Node) descend(fn func(name string, id NodeID) bool) {
	n.children.Descend(func(e entry) bool {
		return fn(e.name, e.id)
	})
}

// ascend calls fn for each child in ascending name order until fn returns false
func (n *Node) ascend(fn func(name string, id NodeID) bool) {
	n.children.Ascend(func(e entry) bool {
		return fn(e.name, e.id)
	})
}
