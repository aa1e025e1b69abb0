package forest_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/brettbedarf/dirforest/forest"
	"github.com/brettbedarf/dirforest/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newEngine returns an engine with every path created in order
func newEngine(t *testing.T, paths ...string) *forest.Engine {
	t.Helper()
	e := forest.NewEngine()
	for _, p := range paths {
		require.NoError(t, e.Create(p), "create %s", p)
	}
	return e
}

// requireNode fails the test unless path resolves
func requireNode(t *testing.T, e *forest.Engine, path string) *forest.Node {
	t.Helper()
	n, ok := e.Forest().Lookup(path)
	require.True(t, ok, "expected %s to exist", path)
	return n
}

func assertMissing(t *testing.T, e *forest.Engine, path string) {
	t.Helper()
	_, ok := e.Forest().Lookup(path)
	assert.False(t, ok, "expected %s to be gone", path)
}

func TestEngine_Create(t *testing.T) {
	t.Parallel()

	t.Run("SingleDirectory", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "foo")
		_, ok := e.Forest().Tree("foo")
		assert.True(t, ok)
	})

	t.Run("TwoDirectories", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "foo", "foo/bar")
		root, ok := e.Forest().RootNode("foo")
		require.True(t, ok)
		assert.True(t, root.HasChild("bar"))
	})

	t.Run("RootFolderMissing", func(t *testing.T) {
		t.Parallel()
		e := forest.NewEngine()
		err := e.Create("")
		require.Error(t, err)
		assert.Equal(t, "Invalid path: root folder name is missing", err.Error())
		assert.True(t, errors.Is(err, forest.ErrMissingRootName))
		assert.Equal(t, 0, e.Forest().Len())
	})

	t.Run("IntermediateMissing", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "foo/bar")
		err := e.Create("foo/baz/bar")
		require.Error(t, err)
		assert.Equal(t, "Invalid path: baz does not exist", err.Error())
		assert.True(t, errors.Is(err, forest.ErrPathSegmentMissing))
	})

	t.Run("NewTreeWithChild", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "foo/bar")
		requireNode(t, e, "foo/bar")
	})

	t.Run("NewTreeDeepPathLeavesNoTrace", func(t *testing.T) {
		t.Parallel()
		e := forest.NewEngine()
		err := e.Create("new/a/b")
		require.Error(t, err)
		assert.Equal(t, "Invalid path: a does not exist", err.Error())
		assert.Equal(t, 0, e.Forest().Len(), "a rejected create must not leave a tree behind")
		assert.Equal(t, 0, e.Forest().Size())
	})

	t.Run("EmptyFinalSegment", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "foo")
		err := e.Create("foo/")
		require.Error(t, err)
		assert.True(t, errors.Is(err, forest.ErrMissingDirName))
		assert.Equal(t, 1, e.Forest().Size())
	})

	t.Run("Idempotent", func(t *testing.T) {
		t.Parallel()
		once := newEngine(t, "foo", "foo/bar", "foo/bar/baz")
		twice := newEngine(t, "foo", "foo/bar", "foo/bar/baz", "foo/bar/baz", "foo/bar")
		assert.Equal(t, once.Forest().Snapshot(), twice.Forest().Snapshot())
		assert.Equal(t, once.Forest().Size(), twice.Forest().Size())
	})

	t.Run("EveryPrefixExists", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "a", "a/b", "a/b/c", "a/b/c/d")
		for _, p := range []string{"a", "a/b", "a/b/c", "a/b/c/d"} {
			n := requireNode(t, e, p)
			path, _ := forest.ParsePath(p)
			assert.Equal(t, path.Leaf(), n.Name())
		}
	})
}

func TestEngine_List(t *testing.T) {
	t.Parallel()

	t.Run("Empty", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "LIST", forest.NewEngine().List())
	})

	t.Run("Indentation", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "foo", "foo/bar", "foo/bar/baz", "foo/baz", "baz")
		assert.Equal(t, "LIST\nbaz\nfoo\n  bar\n    baz\n  baz", e.List())
	})

	t.Run("Deterministic", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "zeta", "alpha", "alpha/m", "alpha/a", "alpha/z", "alpha/m/q")
		first := e.List()
		assert.Equal(t, first, e.List())
		assert.Equal(t, "LIST\nalpha\n  a\n  m\n    q\n  z\nzeta", first)
	})

	t.Run("CaseCollation", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "B", "a", "b", "a/Zed", "a/apple", "a/Apple")
		assert.Equal(t, "LIST\na\n  apple\n  Apple\n  Zed\nb\nB", e.List())
	})
}

func TestEngine_IndependentEnginesInParallel(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Go(func() {
			e := forest.NewEngine()
			root := fmt.Sprintf("t%d", i)
			for _, p := range []string{root, root + "/B", root + "/a", root + "/b"} {
				assert.NoError(t, e.Create(p))
			}
			assert.Equal(t, fmt.Sprintf("LIST\n%s\n  a\n  b\n  B", root), e.List())
			assert.NoError(t, e.Forest().Check())
		})
	}
	wg.Wait()
}

func TestEngine_Move(t *testing.T) {
	t.Parallel()

	t.Run("LeafWithinTree", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "foo", "foo/bar", "foo/bar/baz", "foo/baz")
		require.NoError(t, e.Move("foo/bar/baz", "foo/baz"))
		requireNode(t, e, "foo/baz/baz")
		assertMissing(t, e, "foo/bar/baz")
		require.NoError(t, e.Forest().Check())
	})

	t.Run("SubtreeWithinTree", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "foo", "foo/bar", "foo/bar/baz", "foo/baz")
		require.NoError(t, e.Move("foo/bar", "foo/baz"))
		requireNode(t, e, "foo/baz/bar/baz")
		assertMissing(t, e, "foo/bar")
		require.NoError(t, e.Forest().Check())
	})

	t.Run("LeafAcrossTrees", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "foo", "foo/bar", "foo/bar/baz", "baz")
		require.NoError(t, e.Move("foo/bar/baz", "baz"))
		requireNode(t, e, "baz/baz")
		assertMissing(t, e, "foo/bar/baz")
	})

	t.Run("SubtreeAcrossTreesKeepsIdentity", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "foo", "foo/bar", "foo/bar/baz", "foo/bar/qux", "baz")
		before := requireNode(t, e, "foo/bar")
		leaf := requireNode(t, e, "foo/bar/baz")
		snap := e.Forest().SnapshotNode(before)

		require.NoError(t, e.Move("foo/bar", "baz"))

		after := requireNode(t, e, "baz/bar")
		assert.Equal(t, before.ID(), after.ID())
		assert.Equal(t, leaf.ID(), requireNode(t, e, "baz/bar/baz").ID())
		assert.Equal(t, snap, e.Forest().SnapshotNode(after))
		require.NoError(t, e.Forest().Check())
	})

	t.Run("WholeTree", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "foo", "foo/bar", "baz")
		require.NoError(t, e.Move("foo", "baz"))
		requireNode(t, e, "baz/foo/bar")
		_, ok := e.Forest().Tree("foo")
		assert.False(t, ok)
		require.NoError(t, e.Forest().Check())
	})

	t.Run("DestinationConflict", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "foo", "foo/bar", "foo/bar/baz", "foo/baz")
		before := e.List()
		err := e.Move("foo/bar/baz", "foo")
		require.Error(t, err)
		assert.Equal(t, "Invalid destination path: baz already exists in foo", err.Error())
		assert.True(t, errors.Is(err, forest.ErrDestinationConflict))
		assert.Equal(t, before, e.List())
	})

	t.Run("DestinationMissing", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "foo", "foo/bar", "foo/bar/baz", "foo/baz")
		err := e.Move("foo/bar/baz", "invalid/path")
		require.Error(t, err)
		assert.Equal(t, "Invalid path: foo/bar/baz or invalid/path does not exist", err.Error())
		assert.True(t, errors.Is(err, forest.ErrMoveUnresolvable))
	})

	t.Run("OriginLeafMissing", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "foo", "foo/bar", "baz")
		err := e.Move("foo/bar/nope", "baz")
		require.Error(t, err)
		assert.True(t, errors.Is(err, forest.ErrMoveUnresolvable))
	})

	t.Run("IntoOwnSubtree", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "foo", "foo/bar", "foo/bar/baz")
		before := e.List()
		err := e.Move("foo/bar", "foo/bar/baz")
		require.Error(t, err)
		assert.True(t, errors.Is(err, forest.ErrMoveIntoSelf))
		assert.Equal(t, before, e.List())

		err = e.Move("foo", "foo/bar")
		require.Error(t, err)
		assert.True(t, errors.Is(err, forest.ErrMoveIntoSelf))
	})

	t.Run("MissingRootName", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "foo")
		err := e.Move("/foo", "")
		require.Error(t, err)
		assert.Equal(t, "Invalid path: root folder name is missing", err.Error())
	})

	t.Run("DestinationMissingRootName", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "foo", "foo/bar")
		before := e.List()
		for _, dest := range []string{"/bar", ""} {
			err := e.Move("foo/bar", dest)
			require.Error(t, err, "destination %q", dest)
			assert.Equal(t, "Invalid path: root folder name is missing", err.Error())
			assert.True(t, errors.Is(err, forest.ErrMissingRootName))
			assert.Equal(t, before, e.List())
		}
	})
}

func TestEngine_Delete(t *testing.T) {
	t.Parallel()

	t.Run("Subtree", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "foo", "foo/bar", "foo/bar/baz")
		require.NoError(t, e.Delete("foo/bar"))
		assertMissing(t, e, "foo/bar")
		assert.Equal(t, 1, e.Forest().Size(), "deleted subtree must be released")
		require.NoError(t, e.Forest().Check())
	})

	t.Run("WholeTree", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "foo", "foo/bar", "baz")
		require.NoError(t, e.Delete("foo"))
		_, ok := e.Forest().Tree("foo")
		assert.False(t, ok)
		assert.Equal(t, 1, e.Forest().Size())
	})

	t.Run("ChildBeforeTree", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "foo", "foo/foo")
		require.NoError(t, e.Delete("foo"))
		_, ok := e.Forest().Tree("foo")
		assert.True(t, ok, "the child named like the tree is removed first")
		assertMissing(t, e, "foo/foo")
	})

	t.Run("ParentMissing", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "foo")
		err := e.Delete("fruits/apples")
		require.Error(t, err)
		assert.Equal(t, "DELETE fruits/apples\nCannot delete fruits/apples - fruits does not exist", err.Error())
		assert.True(t, errors.Is(err, forest.ErrDeleteParentMissing))
	})

	t.Run("TreeMissing", func(t *testing.T) {
		t.Parallel()
		e := forest.NewEngine()
		err := e.Delete("ghost")
		require.Error(t, err)
		assert.Equal(t, "DELETE ghost\nCannot delete ghost - ghost does not exist", err.Error())
	})

	t.Run("MissingRootName", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "foo", "foo/bar")
		before := e.List()
		for _, path := range []string{"", "/foo"} {
			err := e.Delete(path)
			require.Error(t, err, "path %q", path)
			assert.Equal(t, "Invalid path: root folder name is missing", err.Error())
			assert.True(t, errors.Is(err, forest.ErrMissingRootName))
			assert.Equal(t, before, e.List())
		}
	})

	t.Run("TargetNotFound", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, "foo", "foo/bar", "qux")
		err := e.Delete("foo/qux")
		require.Error(t, err)
		assert.Equal(t, "qux not found in path", err.Error())
		assert.True(t, errors.Is(err, forest.ErrDeleteTargetNotFound))
		_, ok := e.Forest().Tree("qux")
		assert.True(t, ok, "a nested path never removes a whole tree")
	})
}

func TestEngine_Notices(t *testing.T) {
	t.Parallel()

	sink := &mocks.MockSink{}
	sink.On("Notify", forest.Notice{Op: forest.OpCreate, Text: "CREATE foo"}).Once()
	sink.On("Notify", forest.Notice{Op: forest.OpCreate, Text: "CREATE foo/bar", Interactive: true}).Once()
	sink.On("Notify", forest.Notice{Op: forest.OpCreate, Text: "CREATE baz"}).Once()
	sink.On("Notify", forest.Notice{Op: forest.OpMove, Text: "MOVE foo/bar baz", Interactive: true}).Once()
	sink.On("Notify", forest.Notice{Op: forest.OpDelete, Text: "DELETE foo"}).Once()

	e := forest.NewEngine(forest.WithSink(sink))
	require.NoError(t, e.Create("foo"))
	require.NoError(t, e.Create("foo/bar", forest.Interactive()))
	require.NoError(t, e.Create("baz"))
	require.NoError(t, e.Move("foo/bar", "baz", forest.Interactive()))
	require.NoError(t, e.Delete("foo"))

	// failures never notify
	require.Error(t, e.Create(""))
	require.Error(t, e.Delete("foo"))
	require.Error(t, e.Move("nope", "baz"))

	sink.AssertExpectations(t)
	sink.AssertNumberOfCalls(t, "Notify", 5)
}

func TestEngine_InteractiveDoesNotChangeErrors(t *testing.T) {
	t.Parallel()

	e := newEngine(t, "foo/bar")
	plain := e.Create("foo/baz/bar")
	interactive := e.Create("foo/baz/bar", forest.Interactive())
	require.Error(t, plain)
	require.Error(t, interactive)
	assert.Equal(t, plain.Error(), interactive.Error())
}

func TestEngine_SinkFunc(t *testing.T) {
	t.Parallel()

	var got []string
	e := forest.NewEngine(forest.WithSink(forest.SinkFunc(func(n forest.Notice) {
		got = append(got, n.Text)
	})))
	require.NoError(t, e.Create("foo"))
	require.NoError(t, e.Delete("foo"))
	assert.Equal(t, []string{"CREATE foo", "DELETE foo"}, got)
	assert.NotEmpty(t, e.Session())
}

func TestEngine_MockSinkMatcher(t *testing.T) {
	t.Parallel()

	sink := &mocks.MockSink{}
	sink.On("Notify", mock.MatchedBy(func(n forest.Notice) bool {
		return n.Op == forest.OpCreate
	})).Times(3)

	e := forest.NewEngine(forest.WithSink(sink))
	for _, p := range []string{"a", "a/b", "a/b/c"} {
		require.NoError(t, e.Create(p))
	}
	sink.AssertExpectations(t)
}
