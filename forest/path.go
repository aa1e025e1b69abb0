package forest

import "strings"

// Path is a parsed slash separated path. Segments[0] is the tree name. No
// normalization happens: "." and ".." are ordinary names and empty segments are
// kept.
type Path struct {
	Raw      string
	Segments []string
}

// ParsePath splits raw on "/". The only check made here is that the first
// segment (the tree name) is non-empty.
func ParsePath(raw string) (Path, error) {
	segments := strings.Split(raw, "/")
	if segments[0] == "" {
		return Path{}, errMissingRootName()
	}
	return Path{Raw: raw, Segments: segments}, nil
}

// Root returns the tree name
func (p Path) Root() string {
	return p.Segments[0]
}

// Leaf returns the final segment
func (p Path) Leaf() string {
	return p.Segments[len(p.Segments)-1]
}

// IsRoot reports whether the path names a tree root only
func (p Path) IsRoot() bool {
	return len(p.Segments) == 1
}

// ValidateExistingPath walks segments from root and checks that everything up
// to the second-to-last segment exists. The final segment may be missing since
// it is the one about to be created. On failure the first missing segment is
// returned.
//
// A nil root stands for a tree that does not exist yet and will be created by
// the caller: only paths of at most two segments are valid against it.
func (f *Forest) ValidateExistingPath(segments []string, root *Node) (ok bool, missing string) {
	if root == nil {
		if len(segments) > 2 {
			return false, segments[1]
		}
		return true, ""
	}
	if root.name != segments[0] {
		return false, segments[0]
	}
	cur := root
	for i := 1; i < len(segments)-1; i++ {
		next, found := f.Child(cur, segments[i])
		if !found {
			return false, segments[i]
		}
		cur = next
	}
	return true, ""
}

// LocateParent resolves the parent of the final segment, stopping one level
// short. For a bare tree name the tree's own root is returned.
func (f *Forest) LocateParent(segments []string) (*Node, bool) {
	if len(segments) == 0 {
		return nil, false
	}
	cur, ok := f.RootNode(segments[0])
	if !ok {
		return nil, false
	}
	for _, name := range segments[1 : max(len(segments)-1, 1)] {
		if cur, ok = f.Child(cur, name); !ok {
			return nil, false
		}
	}
	return cur, true
}

// Resolve walks the full path and returns the node it names
func (f *Forest) Resolve(segments []string) (*Node, bool) {
	if len(segments) == 0 {
		return nil, false
	}
	cur, ok := f.RootNode(segments[0])
	if !ok {
		return nil, false
	}
	for _, name := range segments[1:] {
		if cur, ok = f.Child(cur, name); !ok {
			return nil, false
		}
	}
	return cur, true
}
