package forest

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Check verifies the structural invariants of the forest and reports every
// violation found:
//   - each tree's key equals its root's name
//   - each child key equals the child's own name
//   - names are non-empty
//   - every node is owned exactly once and every arena node is reachable
func (f *Forest) Check() error {
	var result *multierror.Error
	owned := make(map[NodeID]int)

	var walk func(id NodeID, path string)
	walk = func(id NodeID, path string) {
		owned[id]++
		if owned[id] > 1 {
			result = multierror.Append(result, fmt.Errorf("node %d owned more than once (at %s)", id, path))
			return
		}
		n, ok := f.Node(id)
		if !ok {
			result = multierror.Append(result, fmt.Errorf("dangling node %d at %s", id, path))
			return
		}
		n.ascend(func(key string, child NodeID) bool {
			childPath := path + "/" + key
			if cn, ok := f.Node(child); ok {
				if cn.name != key {
					result = multierror.Append(result,
						fmt.Errorf("child key %q does not match node name %q at %s", key, cn.name, path))
				}
				if cn.name == "" {
					result = multierror.Append(result, fmt.Errorf("empty directory name at %s", childPath))
				}
			}
			walk(child, childPath)
			return true
		})
	}

	for _, t := range f.Trees() {
		root, ok := f.Node(t.root)
		if !ok {
			result = multierror.Append(result, fmt.Errorf("tree %q has no root node", t.name))
			continue
		}
		if root.name != t.name {
			result = multierror.Append(result, fmt.Errorf("tree key %q does not match root name %q", t.name, root.name))
		}
		if t.name == "" {
			result = multierror.Append(result, fmt.Errorf("tree with empty name"))
		}
		walk(t.root, t.name)
	}

	f.nodes.nodes.Range(func(id NodeID, n *Node) bool {
		if owned[id] == 0 {
			result = multierror.Append(result, fmt.Errorf("unreachable node %d (%s)", id, n.name))
		}
		return true
	})

	return result.ErrorOrNil()
}
