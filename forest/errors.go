package forest

import "fmt"

// ErrorKind classifies why an operation was rejected
type ErrorKind int

const (
	// MissingRootName: the path is empty or starts with "/"
	MissingRootName ErrorKind = iota + 1
	// PathSegmentMissing: an intermediate segment does not exist
	PathSegmentMissing
	// MissingDirName: create was asked for an empty final segment
	MissingDirName
	// DestinationConflict: the move target name is already taken at the destination
	DestinationConflict
	// MoveUnresolvable: either side of a move cannot be located
	MoveUnresolvable
	// MoveIntoSelf: the destination lies inside the subtree being moved
	MoveIntoSelf
	// DeleteParentMissing: the parent of the delete target cannot be resolved
	DeleteParentMissing
	// DeleteTargetNotFound: the parent resolved but has no such child
	DeleteTargetNotFound
)

var kindNames = map[ErrorKind]string{
	MissingRootName:      "MissingRootName",
	PathSegmentMissing:   "PathSegmentMissing",
	MissingDirName:       "MissingDirName",
	DestinationConflict:  "DestinationConflict",
	MoveUnresolvable:     "MoveSourceOrDestinationUnresolvable",
	MoveIntoSelf:         "MoveIntoSelf",
	DeleteParentMissing:  "DeleteParentMissing",
	DeleteTargetNotFound: "DeleteTargetNotFound",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// PathError is the only error type returned by the engine. Msg is the exact
// user-facing text.
type PathError struct {
	Kind ErrorKind
	Msg  string
}

func (e *PathError) Error() string {
	return e.Msg
}

// Is matches any *PathError of the same Kind, so the sentinels below work with
// errors.Is regardless of message parameters.
func (e *PathError) Is(target error) bool {
	t, ok := target.(*PathError)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is
var (
	ErrMissingRootName      = &PathError{Kind: MissingRootName}
	ErrPathSegmentMissing   = &PathError{Kind: PathSegmentMissing}
	ErrMissingDirName       = &PathError{Kind: MissingDirName}
	ErrDestinationConflict  = &PathError{Kind: DestinationConflict}
	ErrMoveUnresolvable     = &PathError{Kind: MoveUnresolvable}
	ErrMoveIntoSelf         = &PathError{Kind: MoveIntoSelf}
	ErrDeleteParentMissing  = &PathError{Kind: DeleteParentMissing}
	ErrDeleteTargetNotFound = &PathError{Kind: DeleteTargetNotFound}
)

func errMissingRootName() error {
	return &PathError{Kind: MissingRootName, Msg: "Invalid path: root folder name is missing"}
}

func errSegmentMissing(segment string) error {
	return &PathError{Kind: PathSegmentMissing, Msg: fmt.Sprintf("Invalid path: %s does not exist", segment)}
}

func errMissingDirName() error {
	return &PathError{Kind: MissingDirName, Msg: "Invalid path: directory name is missing"}
}

func errDestinationConflict(name, destination string) error {
	return &PathError{
		Kind: DestinationConflict,
		Msg:  fmt.Sprintf("Invalid destination path: %s already exists in %s", name, destination),
	}
}

func errMoveUnresolvable(origin, destination string) error {
	return &PathError{
		Kind: MoveUnresolvable,
		Msg:  fmt.Sprintf("Invalid path: %s or %s does not exist", origin, destination),
	}
}

func errMoveIntoSelf(origin, destination string) error {
	return &PathError{
		Kind: MoveIntoSelf,
		Msg:  fmt.Sprintf("Invalid destination path: %s is inside %s", destination, origin),
	}
}

func errDeleteParentMissing(path, root string) error {
	return &PathError{
		Kind: DeleteParentMissing,
		Msg:  fmt.Sprintf("DELETE %s\nCannot delete %s - %s does not exist", path, path, root),
	}
}

func errDeleteTargetNotFound(name string) error {
	return &PathError{Kind: DeleteTargetNotFound, Msg: fmt.Sprintf("%s not found in path", name)}
}
