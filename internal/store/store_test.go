package store

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todolist/internal/ids"
	"github.com/idilsaglam/todolist/internal/model"
)

func newTestStore(opts ...Option) *Store {
	return New(append([]Option{WithGenerator(ids.Sequence("T"))}, opts...)...)
}

func values(s *model.Snapshot) []string {
	out := make([]string, 0, s.Len())
	for _, e := range s.Entries() {
		out = append(out, e.Value)
	}
	return out
}

func TestNewStoreIsEmpty(t *testing.T) {
	s := New()
	require.NotNil(t, s.Snapshot())
	assert.Equal(t, 0, s.Snapshot().Len())
}

func TestAppendSingle(t *testing.T) {
	s := newTestStore()
	e := s.Append("todo1")

	assert.Equal(t, model.Entry{ID: "T1", Value: "todo1"}, e)
	if diff := cmp.Diff([]model.Entry{{ID: "T1", Value: "todo1"}}, s.Snapshot().Entries()); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestAppendPreservesCallOrder(t *testing.T) {
	s := newTestStore()
	in := []string{"todo1", "todo2", "", "  spaced  ", "todo1"}
	for _, v := range in {
		s.Append(v)
	}
	assert.Equal(t, in, values(s.Snapshot()))
}

func TestAppendEmptyValue(t *testing.T) {
	s := newTestStore()
	s.Append("")
	require.Equal(t, 1, s.Snapshot().Len())
	assert.Equal(t, "", s.Snapshot().At(0).Value)
}

func TestAppendThenRemove(t *testing.T) {
	s := newTestStore()
	e := s.Append("todo1")
	got := s.RemoveByID(e.ID)

	assert.Equal(t, 0, got.Len())
	assert.Same(t, got, s.Snapshot())
}

func TestRemoveKeepsRelativeOrder(t *testing.T) {
	s := newTestStore()
	s.Append("a")
	b := s.Append("b")
	s.Append("c")
	s.Append("d")

	got := s.RemoveByID(b.ID)
	assert.Equal(t, []string{"a", "c", "d"}, values(got))
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	s := newTestStore()
	s.Append("a")
	before := s.Snapshot()

	got := s.RemoveByID("missing")
	assert.True(t, before.Equal(got))
	assert.NotSame(t, before, got)
}

func TestRemoveOnEmptyStore(t *testing.T) {
	s := newTestStore()
	before := s.Snapshot()
	got := s.RemoveByID("anything")
	assert.Equal(t, 0, got.Len())
	assert.NotSame(t, before, got)
}

func TestEveryMutationProducesNewSnapshot(t *testing.T) {
	s := newTestStore()
	seen := []*model.Snapshot{s.Snapshot()}
	s.Append("a")
	seen = append(seen, s.Snapshot())
	s.RemoveByID("none")
	seen = append(seen, s.Snapshot())
	s.RemoveByID("T1")
	seen = append(seen, s.Snapshot())

	for i := 1; i < len(seen); i++ {
		assert.NotSame(t, seen[i-1], seen[i], "mutation %d reused the snapshot", i)
	}
	// Old snapshots stay as they were.
	assert.Equal(t, 0, seen[0].Len())
	assert.Equal(t, []string{"a"}, values(seen[1]))
	assert.Equal(t, []string{"a"}, values(seen[2]))
	assert.Equal(t, 0, seen[3].Len())
}

func TestObserversSeePrevAndNext(t *testing.T) {
	type change struct{ prev, next *model.Snapshot }
	var got []change
	s := newTestStore()
	s.Subscribe(ObserverFunc(func(prev, next *model.Snapshot) {
		got = append(got, change{prev, next})
	}))
	var late int
	s.Subscribe(ObserverFunc(func(_, _ *model.Snapshot) { late++ }))

	first := s.Snapshot()
	s.Append("a")
	s.RemoveByID("T1")

	require.Len(t, got, 2)
	assert.Same(t, first, got[0].prev)
	assert.Same(t, got[0].next, got[1].prev)
	assert.Same(t, s.Snapshot(), got[1].next)
	assert.Equal(t, 2, late)
}

func TestTimestampCollisionRemovesBoth(t *testing.T) {
	// Frozen clock: both appends land in the same millisecond.
	at := time.UnixMilli(1700000000000)
	s := New(WithGenerator(ids.Timestamp(func() time.Time { return at })))
	a := s.Append("first")
	b := s.Append("second")
	require.Equal(t, a.ID, b.ID)

	got := s.RemoveByID(a.ID)
	assert.Equal(t, 0, got.Len())
}

func TestMutationsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := newTestStore(WithLogger(l))
	s.Append("a")
	s.RemoveByID("T1")

	out := buf.String()
	assert.Contains(t, out, `msg="entry appended" id=T1 len=1`)
	assert.Contains(t, out, `msg="entry removed" id=T1 removed=1 len=0`)
}
