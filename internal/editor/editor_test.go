package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/flowgridgo/internal/testutil"
)

// item is the minimal entity the generic store requires: anything with an
// identifier.
type item struct {
	id    string
	label string
}

func (i item) EntityID() string { return i.id }

type testEvent = Event[item, item]

func newTestEditor(t *testing.T) (*Editor[item, item], *testutil.Recorder[testEvent]) {
	t.Helper()
	ed := New[item, item]("test")
	rec := &testutil.Recorder[testEvent]{}
	ed.Scope().AddPipe(rec.Pipe())
	return ed, rec
}

func kinds(events []testEvent) []Kind {
	out := make([]Kind, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Kind)
	}
	return out
}

func TestAddNode_AppendsAndEmitsPrePost(t *testing.T) {
	ed, rec := newTestEditor(t)
	ctx := context.Background()

	ok, err := ed.AddNode(ctx, item{id: "a"})
	require.NoError(t, err)
	require.True(t, ok)

	n, found := ed.Node("a")
	require.True(t, found)
	assert.Equal(t, "a", n.EntityID())
	assert.Equal(t, []Kind{KindNodeCreate, KindNodeCreated}, kinds(rec.Events()))
}

func TestAddNode_PostEventSeesMutationApplied(t *testing.T) {
	ed := New[item, item]("test")
	ctx := context.Background()

	var visibleDuringPre, visibleDuringPost bool
	ed.Scope().AddPipe(func(ctx context.Context, ev testEvent) (testEvent, bool, error) {
		switch ev.Kind {
		case KindNodeCreate:
			_, visibleDuringPre = ed.Node(ev.Node.id)
		case KindNodeCreated:
			_, visibleDuringPost = ed.Node(ev.Node.id)
		}
		return ev, true, nil
	})

	ok, err := ed.AddNode(ctx, item{id: "a"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, visibleDuringPre, "pre-event subscribers must see the pre-state")
	assert.True(t, visibleDuringPost, "post-event subscribers must see the post-state")
}

func TestAddNode_DuplicateFailsAndLeavesStoreUnchanged(t *testing.T) {
	ed, rec := newTestEditor(t)
	ctx := context.Background()

	ok, err := ed.AddNode(ctx, item{id: "a", label: "original"})
	require.NoError(t, err)
	require.True(t, ok)
	rec.Reset()

	ok, err = ed.AddNode(ctx, item{id: "a", label: "imposter"})
	assert.False(t, ok)
	require.ErrorIs(t, err, ErrDuplicateEntity)
	assert.Empty(t, rec.Events(), "a contract failure must not reach the pipeline")

	n, found := ed.Node("a")
	require.True(t, found)
	assert.Equal(t, "original", n.label)
	assert.Len(t, ed.Nodes(), 1)
}

func TestAddNode_VetoReturnsFalseWithoutError(t *testing.T) {
	ed := New[item, item]("test")
	ctx := context.Background()

	ed.Scope().AddPipe(func(ctx context.Context, ev testEvent) (testEvent, bool, error) {
		if ev.Kind == KindNodeCreate {
			return ev, false, nil
		}
		return ev, true, nil
	})
	rec := &testutil.Recorder[testEvent]{}
	ed.Scope().AddPipe(rec.Pipe())

	ok, err := ed.AddNode(ctx, item{id: "a"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, ed.Nodes())
	for _, ev := range rec.Events() {
		assert.NotEqual(t, KindNodeCreated, ev.Kind, "no nodecreated may be observed after a veto")
	}
}

func TestAddNode_TransformedNodeIsStored(t *testing.T) {
	ed, _ := newTestEditor(t)
	ctx := context.Background()

	ed.Scope().AddPipe(func(ctx context.Context, ev testEvent) (testEvent, bool, error) {
		if ev.Kind == KindNodeCreate {
			ev.Node.label = "renamed"
		}
		return ev, true, nil
	})

	ok, err := ed.AddNode(ctx, item{id: "a", label: "original"})
	require.NoError(t, err)
	require.True(t, ok)

	n, found := ed.Node("a")
	require.True(t, found)
	assert.Equal(t, "renamed", n.label)
}

func TestAddNode_TransformToLiveIdentifierFails(t *testing.T) {
	ed, _ := newTestEditor(t)
	ctx := context.Background()

	ok, err := ed.AddNode(ctx, item{id: "a"})
	require.NoError(t, err)
	require.True(t, ok)

	ed.Scope().AddPipe(func(ctx context.Context, ev testEvent) (testEvent, bool, error) {
		if ev.Kind == KindNodeCreate {
			ev.Node.id = "a"
		}
		return ev, true, nil
	})

	ok, err = ed.AddNode(ctx, item{id: "b"})
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrDuplicateEntity)
	assert.Len(t, ed.Nodes(), 1, "identifier uniqueness must survive transforming subscribers")
}

func TestAddNode_PreEventErrorLeavesStoreUnchanged(t *testing.T) {
	ed := New[item, item]("test")
	ctx := context.Background()
	boom := errors.New("boom")

	ed.Scope().AddPipe(func(ctx context.Context, ev testEvent) (testEvent, bool, error) {
		if ev.Kind == KindNodeCreate {
			return ev, false, boom
		}
		return ev, true, nil
	})

	ok, err := ed.AddNode(ctx, item{id: "a"})
	assert.False(t, ok)
	assert.Same(t, boom, err)
	assert.Empty(t, ed.Nodes())
}

func TestAddNode_PostEventErrorLeavesMutationApplied(t *testing.T) {
	ed := New[item, item]("test")
	ctx := context.Background()
	boom := errors.New("boom")

	ed.Scope().AddPipe(func(ctx context.Context, ev testEvent) (testEvent, bool, error) {
		if ev.Kind == KindNodeCreated {
			return ev, false, boom
		}
		return ev, true, nil
	})

	ok, err := ed.AddNode(ctx, item{id: "a"})
	assert.True(t, ok, "the mutation happened before the post-event failed")
	assert.Same(t, boom, err)
	assert.Len(t, ed.Nodes(), 1)
}

func TestRemoveNode_NotFoundFails(t *testing.T) {
	ed, rec := newTestEditor(t)

	ok, err := ed.RemoveNode(context.Background(), "missing")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, rec.Events())
}

func TestRemoveNode_EmitsFoundNodeAndRemoves(t *testing.T) {
	ed, rec := newTestEditor(t)
	ctx := context.Background()

	_, err := ed.AddNode(ctx, item{id: "a", label: "victim"})
	require.NoError(t, err)
	rec.Reset()

	ok, err := ed.RemoveNode(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)

	events := rec.Events()
	require.Equal(t, []Kind{KindNodeRemove, KindNodeRemoved}, kinds(events))
	assert.Equal(t, "victim", events[0].Node.label, "the pre-event carries the found node")

	_, found := ed.Node("a")
	assert.False(t, found)
}

func TestRemoveNode_VetoKeepsNode(t *testing.T) {
	ed := New[item, item]("test")
	ctx := context.Background()

	_, err := ed.AddNode(ctx, item{id: "a"})
	require.NoError(t, err)

	ed.Scope().AddPipe(func(ctx context.Context, ev testEvent) (testEvent, bool, error) {
		if ev.Kind == KindNodeRemove {
			return ev, false, nil
		}
		return ev, true, nil
	})

	ok, err := ed.RemoveNode(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
	_, found := ed.Node("a")
	assert.True(t, found)
}

func TestAddConnection_ProtocolMirrorsNodes(t *testing.T) {
	ed, rec := newTestEditor(t)
	ctx := context.Background()

	ok, err := ed.AddConnection(ctx, item{id: "c1"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []Kind{KindConnectionCreate, KindConnectionCreated}, kinds(rec.Events()))

	ok, err = ed.AddConnection(ctx, item{id: "c1"})
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrDuplicateEntity)

	rec.Reset()
	ok, err = ed.RemoveConnection(ctx, "c1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []Kind{KindConnectionRemove, KindConnectionRemoved}, kinds(rec.Events()))

	_, err = ed.RemoveConnection(ctx, "c1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClear_VetoLeavesEverythingIntact(t *testing.T) {
	ed := New[item, item]("test")
	ctx := context.Background()

	_, err := ed.AddNode(ctx, item{id: "a"})
	require.NoError(t, err)
	_, err = ed.AddConnection(ctx, item{id: "c1"})
	require.NoError(t, err)

	ed.Scope().AddPipe(func(ctx context.Context, ev testEvent) (testEvent, bool, error) {
		if ev.Kind == KindClear {
			return ev, false, nil
		}
		return ev, true, nil
	})
	rec := &testutil.Recorder[testEvent]{}
	ed.Scope().AddPipe(rec.Pipe())

	ok, err := ed.Clear(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, ed.Nodes(), 1)
	assert.Len(t, ed.Connections(), 1)
	assert.Equal(t, []Kind{KindClearCancelled}, kinds(rec.Events()),
		"a vetoed clear emits clearcancelled and nothing else")
}

func TestClear_RemovesConnectionsBeforeNodes(t *testing.T) {
	ed, rec := newTestEditor(t)
	ctx := context.Background()

	_, err := ed.AddNode(ctx, item{id: "a"})
	require.NoError(t, err)
	_, err = ed.AddNode(ctx, item{id: "b"})
	require.NoError(t, err)
	_, err = ed.AddConnection(ctx, item{id: "c1"})
	require.NoError(t, err)
	rec.Reset()

	ok, err := ed.Clear(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Empty(t, ed.Nodes())
	assert.Empty(t, ed.Connections())
	assert.Equal(t, []Kind{
		KindClear,
		KindConnectionRemove, KindConnectionRemoved,
		KindNodeRemove, KindNodeRemoved,
		KindNodeRemove, KindNodeRemoved,
		KindCleared,
	}, kinds(rec.Events()))
}

func TestImport_AddsNodesThenConnectionsInSequenceOrder(t *testing.T) {
	ed, rec := newTestEditor(t)
	ctx := context.Background()

	snap := &Snapshot[item, item]{
		Nodes:       []item{{id: "a"}, {id: "b"}},
		Connections: []item{{id: "c1"}},
	}
	ok, err := ed.Import(ctx, snap)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, []Kind{
		KindImport,
		KindNodeCreate, KindNodeCreated,
		KindNodeCreate, KindNodeCreated,
		KindConnectionCreate, KindConnectionCreated,
		KindImported,
	}, kinds(rec.Events()))
	assert.Len(t, ed.Nodes(), 2)
	assert.Len(t, ed.Connections(), 1)
}

func TestImport_VetoImportsNothing(t *testing.T) {
	ed := New[item, item]("test")
	ctx := context.Background()

	ed.Scope().AddPipe(func(ctx context.Context, ev testEvent) (testEvent, bool, error) {
		if ev.Kind == KindImport {
			return ev, false, nil
		}
		return ev, true, nil
	})

	ok, err := ed.Import(ctx, &Snapshot[item, item]{Nodes: []item{{id: "a"}}})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, ed.Nodes())
}

func TestExport_PopulatesSnapshotInCollectionOrder(t *testing.T) {
	ed, rec := newTestEditor(t)
	ctx := context.Background()

	_, err := ed.AddNode(ctx, item{id: "a"})
	require.NoError(t, err)
	_, err = ed.AddNode(ctx, item{id: "b"})
	require.NoError(t, err)
	_, err = ed.AddConnection(ctx, item{id: "c1"})
	require.NoError(t, err)
	rec.Reset()

	// Snapshot contents must be inspected during dispatch: the pre-event
	// carries the snapshot that is filled in afterwards.
	nodesAtPre, nodesAtPost := -1, -1
	ed.Scope().AddPipe(func(ctx context.Context, ev testEvent) (testEvent, bool, error) {
		switch ev.Kind {
		case KindExport:
			nodesAtPre = len(ev.Snapshot.Nodes)
		case KindExported:
			nodesAtPost = len(ev.Snapshot.Nodes)
		}
		return ev, true, nil
	})

	snap, ok, err := ed.Export(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, snap)

	assert.Equal(t, []item{{id: "a"}, {id: "b"}}, snap.Nodes)
	assert.Equal(t, []item{{id: "c1"}}, snap.Connections)

	require.Equal(t, []Kind{KindExport, KindExported}, kinds(rec.Events()))
	assert.Zero(t, nodesAtPre, "export subscribers see an empty snapshot before state is copied")
	assert.Equal(t, 2, nodesAtPost)
}

func TestExport_VetoYieldsNoSnapshot(t *testing.T) {
	ed := New[item, item]("test")
	ctx := context.Background()

	ed.Scope().AddPipe(func(ctx context.Context, ev testEvent) (testEvent, bool, error) {
		if ev.Kind == KindExport {
			return ev, false, nil
		}
		return ev, true, nil
	})

	snap, ok, err := ed.Export(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, snap)
}

func TestNodesAndConnections_PreserveInsertionOrder(t *testing.T) {
	ed, _ := newTestEditor(t)
	ctx := context.Background()

	for _, id := range []string{"z", "m", "a"} {
		_, err := ed.AddNode(ctx, item{id: id})
		require.NoError(t, err)
	}

	var got []string
	for _, n := range ed.Nodes() {
		got = append(got, n.id)
	}
	assert.Equal(t, []string{"z", "m", "a"}, got)
}
