package forest

// Snapshot is a detached copy of a directory and its descendants, suitable
// for comparison in tests or for encoding.
type Snapshot struct {
	Name     string     `yaml:"name" json:"name"`
	Children []Snapshot `yaml:"children,omitempty" json:"children,omitempty"`
}

// Snapshot copies every tree in ascending name order. Children are in
// ascending name order too.
func (f *Forest) Snapshot() []Snapshot {
	trees := f.Trees()
	out := make([]Snapshot, 0, len(trees))
	for _, t := range trees {
		if n, ok := f.Node(t.root); ok {
			out = append(out, f.SnapshotNode(n))
		}
	}
	return out
}

// SnapshotNode copies n and its subtree
func (f *Forest) SnapshotNode(n *Node) Snapshot {
	s := Snapshot{Name: n.name}
	n.ascend(func(_ string, id NodeID) bool {
		if child, ok := f.Node(id); ok {
			s.Children = append(s.Children, f.SnapshotNode(child))
		}
		return true
	})
	return s
}
