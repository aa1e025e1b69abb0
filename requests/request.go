// Package requests loads seed files: ordered lists of create/move/delete
// requests applied to an Operator before the shell starts.
package requests

import (
	"fmt"
	"strings"
)

// OpType valid types are CreateOp "create", MoveOp "move", DeleteOp "delete"
type OpType string

const (
	CreateOp OpType = "create"
	MoveOp   OpType = "move"
	DeleteOp OpType = "delete"
)

// Request is one decoded, defaulted seed entry
type Request struct {
	ID          string
	Op          OpType
	Path        string
	Destination string
}

// Validate checks that the request carries the fields its op needs. Path
// contents are left to the engine.
func (r *Request) Validate() error {
	switch r.Op {
	case CreateOp, DeleteOp:
	case MoveOp:
		if r.Destination == "" {
			return fmt.Errorf("move request %s has no destination", r.ID)
		}
	default:
		return fmt.Errorf("unknown op: %q", r.Op)
	}
	return nil
}

func (r *Request) String() string {
	if r.Op == MoveOp {
		return fmt.Sprintf("%s %s %s", strings.ToUpper(string(r.Op)), r.Path, r.Destination)
	}
	return fmt.Sprintf("%s %s", strings.ToUpper(string(r.Op)), r.Path)
}
