// Package dirforest is an in-memory forest of named directory trees driven by
// slash separated paths. The engine lives in package forest; package shell
// provides the line-oriented command interpreter around it.
package dirforest

import "github.com/brettbedarf/dirforest/forest"

// Operator is the command surface the shell and seed files drive. Mutating
// calls return nil on success or a *forest.PathError describing the failure.
type Operator interface {
	Create(path string, opts ...forest.CallOption) error
	List() string
	Move(origin, destination string, opts ...forest.CallOption) error
	Delete(path string, opts ...forest.CallOption) error
	// Forest exposes the current structure read-only
	Forest() *forest.Forest
}

var _ Operator = (*forest.Engine)(nil)

// New creates an Operator over an empty forest that reports success notices
// to sink. A nil sink discards them.
func New(sink forest.Sink) *forest.Engine {
	return forest.NewEngine(forest.WithSink(sink))
}
