package forest

import (
	"strings"

	"github.com/google/btree"
)

// Forest is the top-level collection of independently rooted trees. The
// exported API is read-only; mutation goes through [Engine].
type Forest struct {
	nodes *arena
	trees *btree.BTreeG[*Tree] // ordered by root name
}

// NewForest returns an empty forest
func NewForest() *Forest {
	return &Forest{
		nodes: newArena(),
		trees: btree.NewG[*Tree](childDegree, treeLess),
	}
}

// Len returns the number of trees
func (f *Forest) Len() int {
	return f.trees.Len()
}

// Size returns the number of live nodes across all trees
func (f *Forest) Size() int {
	return f.nodes.size()
}

// Tree returns the tree whose root is called name
func (f *Forest) Tree(name string) (*Tree, bool) {
	return f.trees.Get(&Tree{name: name})
}

// Trees returns all trees in ascending name order
func (f *Forest) Trees() []*Tree {
	trees := make([]*Tree, 0, f.trees.Len())
	f.trees.Ascend(func(t *Tree) bool {
		trees = append(trees, t)
		return true
	})
	return trees
}

// Node returns the live node with the given ID
func (f *Forest) Node(id NodeID) (*Node, bool) {
	return f.nodes.get(id)
}

// RootNode returns the root node of the tree called name
func (f *Forest) RootNode(name string) (*Node, bool) {
	t, ok := f.Tree(name)
	if !ok {
		return nil, false
	}
	return f.nodes.get(t.root)
}

// Child returns n's child called name
func (f *Forest) Child(n *Node, name string) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	id, ok := n.Child(name)
	if !ok {
		return nil, false
	}
	return f.nodes.get(id)
}

// Lookup resolves a full slash separated path to its node
func (f *Forest) Lookup(path string) (*Node, bool) {
	return f.Resolve(strings.Split(path, "/"))
}

// addTree creates a tree with a fresh root called name
func (f *Forest) addTree(name string) *Tree {
	root := f.nodes.alloc(name)
	t := &Tree{name: name, root: root.id}
	f.trees.ReplaceOrInsert(t)
	return t
}

// detachTree removes the tree entry but leaves its nodes alive so the root can
// be re-linked elsewhere
func (f *Forest) detachTree(name string) (*Tree, bool) {
	return f.trees.Delete(&Tree{name: name})
}

// removeTree removes the tree and releases every node it owned
func (f *Forest) removeTree(name string) int {
	t, ok := f.detachTree(name)
	if !ok {
		return 0
	}
	return f.nodes.release(t.root)
}

// contains reports whether target is ancestor itself or lies below it
func (f *Forest) contains(ancestor, target NodeID) bool {
	if ancestor == target {
		return true
	}
	n, ok := f.nodes.get(ancestor)
	if !ok {
		return false
	}
	found := false
	n.ascend(func(_ string, child NodeID) bool {
		found = f.contains(child, target)
		return !found
	})
	return found
}
