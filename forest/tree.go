package forest

// Tree is one root-named hierarchy. Its name always equals the root node's name.
type Tree struct {
	name string
	root NodeID
}

// Name returns the tree's identity, the name of its root directory
func (t *Tree) Name() string {
	return t.name
}

// Root returns the root node's ID
func (t *Tree) Root() NodeID {
	return t.root
}

func treeLess(a, b *Tree) bool {
	return compareNames(a.name, b.name) < 0
}
