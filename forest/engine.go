package forest

import (
	"fmt"

	"github.com/brettbedarf/dirforest/internal/util"
	"github.com/google/uuid"
)

// Engine performs create/list/move/delete against a single [Forest]. Every
// operation validates fully before mutating, so a failed call leaves the
// forest untouched.
//
// An Engine is not safe for concurrent use. Operations and reads through
// [Engine.Forest] must come from one goroutine at a time.
type Engine struct {
	forest  *Forest
	sink    Sink
	session string
}

// EngineOption configures an [Engine]
type EngineOption func(e *Engine)

// WithSink routes success notices to s
func WithSink(s Sink) EngineOption {
	return func(e *Engine) {
		if s != nil {
			e.sink = s
		}
	}
}

// WithForest starts the engine on an existing forest
func WithForest(f *Forest) EngineOption {
	return func(e *Engine) {
		if f != nil {
			e.forest = f
		}
	}
}

// NewEngine creates an Engine over an empty forest
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		forest:  NewForest(),
		sink:    nopSink{},
		session: uuid.New().String(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Forest exposes the forest for read-only inspection
func (e *Engine) Forest() *Forest {
	return e.forest
}

// Session returns the ID attached to this engine's log lines
func (e *Engine) Session() string {
	return e.session
}

// CallOption tunes a single mutating call
type CallOption func(c *callOpts)

type callOpts struct {
	interactive bool
}

// Interactive marks the call as typed by a user at the shell. It only changes
// how the emitted Notice is flagged, never the returned error.
func Interactive() CallOption {
	return func(c *callOpts) { c.interactive = true }
}

func newCallOpts(opts []CallOption) callOpts {
	var c callOpts
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (e *Engine) logger(component string) util.Logger {
	return util.GetLogger(component).With().Str("session", e.session).Logger()
}

func (e *Engine) notify(op Op, c callOpts, text string) {
	e.sink.Notify(Notice{Op: op, Text: text, Interactive: c.interactive})
}

// Create adds every missing directory along path, like `mkdir -p` except that
// only the tree and the final segment may be new: intermediate segments must
// already exist. Re-creating an existing path is a no-op that still succeeds.
func (e *Engine) Create(path string, opts ...CallOption) error {
	logger := e.logger("Engine.Create")
	c := newCallOpts(opts)

	p, err := ParsePath(path)
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("Rejected path")
		return err
	}

	root, _ := e.forest.RootNode(p.Root())
	if ok, missing := e.forest.ValidateExistingPath(p.Segments, root); !ok {
		err := errSegmentMissing(missing)
		logger.Debug().Err(err).Str("path", path).Msg("Rejected path")
		return err
	}
	if !p.IsRoot() && p.Leaf() == "" {
		err := errMissingDirName()
		logger.Debug().Err(err).Str("path", path).Msg("Rejected path")
		return err
	}

	if root == nil {
		t := e.forest.addTree(p.Root())
		root, _ = e.forest.Node(t.root)
		logger.Info().Str("tree", t.name).Msg("Created new tree")
	}

	cur := root
	newCnt := 0
	for _, name := range p.Segments[1:] {
		if child, ok := e.forest.Child(cur, name); ok {
			cur = child
			continue
		}
		child := e.forest.nodes.alloc(name)
		cur.addChild(name, child.id)
		newCnt++
		cur = child
	}
	logger.Debug().Str("path", path).Msg(fmt.Sprintf("Created %d new dir(s)", newCnt))

	e.notify(OpCreate, c, fmt.Sprintf("%s %s", OpCreate, path))
	return nil
}

// Move makes the directory named by origin a new child of the directory named
// by destination. The destination is resolved in full: it is the future
// parent, not the future path. Moving across trees is allowed and the subtree
// keeps its node identities. A bare tree name as origin moves the whole tree.
func (e *Engine) Move(origin, destination string, opts ...CallOption) error {
	logger := e.logger("Engine.Move")
	c := newCallOpts(opts)

	op, err := ParsePath(origin)
	if err != nil {
		logger.Debug().Err(err).Str("origin", origin).Msg("Rejected origin path")
		return err
	}
	dp, err := ParsePath(destination)
	if err != nil {
		logger.Debug().Err(err).Str("destination", destination).Msg("Rejected destination path")
		return err
	}

	name := op.Leaf()
	originParent, okOrigin := e.forest.LocateParent(op.Segments)
	destParent, okDest := e.forest.Resolve(dp.Segments)

	var moved *Node
	if okOrigin {
		if op.IsRoot() {
			moved = originParent
		} else {
			moved, okOrigin = e.forest.Child(originParent, name)
		}
	}
	if !okOrigin || !okDest {
		err := errMoveUnresolvable(origin, destination)
		logger.Debug().Err(err).Str("origin", origin).Str("destination", destination).Msg("Rejected move")
		return err
	}
	if destParent.HasChild(name) {
		err := errDestinationConflict(name, destination)
		logger.Debug().Err(err).Str("origin", origin).Str("destination", destination).Msg("Rejected move")
		return err
	}
	if e.forest.contains(moved.id, destParent.id) {
		err := errMoveIntoSelf(origin, destination)
		logger.Debug().Err(err).Str("origin", origin).Str("destination", destination).Msg("Rejected move")
		return err
	}

	destParent.addChild(name, moved.id)
	if op.IsRoot() {
		e.forest.detachTree(name)
	} else {
		originParent.removeChild(name)
	}
	logger.Debug().
		Str("origin", origin).
		Str("destination", destination).
		Uint64("node", uint64(moved.id)).
		Msg("Moved directory")

	e.notify(OpMove, c, fmt.Sprintf("%s %s %s", OpMove, origin, destination))
	return nil
}

// Delete removes the directory named by path together with its subtree. A
// child of the resolved parent takes precedence; a bare name that matches no
// such child removes the whole tree of that name.
func (e *Engine) Delete(path string, opts ...CallOption) error {
	logger := e.logger("Engine.Delete")
	c := newCallOpts(opts)

	p, err := ParsePath(path)
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("Rejected path")
		return err
	}

	target := p.Leaf()
	parent, ok := e.forest.LocateParent(p.Segments)
	if !ok {
		err := errDeleteParentMissing(path, p.Root())
		logger.Debug().Err(err).Str("path", path).Msg("Rejected delete")
		return err
	}

	if id, ok := parent.removeChild(target); ok {
		cnt := e.forest.nodes.release(id)
		logger.Debug().Str("path", path).Int("released", cnt).Msg("Deleted directory")
		e.notify(OpDelete, c, fmt.Sprintf("%s %s", OpDelete, path))
		return nil
	}

	if p.IsRoot() {
		if cnt := e.forest.removeTree(target); cnt > 0 {
			logger.Info().Str("tree", target).Int("released", cnt).Msg("Deleted tree")
			e.notify(OpDelete, c, fmt.Sprintf("%s %s", OpDelete, target))
			return nil
		}
	}

	err = errDeleteTargetNotFound(target)
	logger.Debug().Err(err).Str("path", path).Msg("Rejected delete")
	return err
}
