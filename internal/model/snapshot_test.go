package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithAppendsWithoutTouchingReceiver(t *testing.T) {
	s0 := Empty()
	s1 := s0.With(Entry{ID: "1", Value: "todo1"})
	s2 := s1.With(Entry{ID: "2", Value: "todo2"})

	assert.Equal(t, 0, s0.Len())
	assert.Equal(t, 1, s1.Len())
	if diff := cmp.Diff([]Entry{{"1", "todo1"}, {"2", "todo2"}}, s2.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
	assert.NotSame(t, s1, s2)
}

func TestWithDoesNotShareBackingArray(t *testing.T) {
	// Two snapshots built from the same parent must not overwrite each other.
	base := NewSnapshot(Entry{ID: "a", Value: "a"})
	left := base.With(Entry{ID: "l", Value: "left"})
	right := base.With(Entry{ID: "r", Value: "right"})

	assert.Equal(t, "left", left.At(1).Value)
	assert.Equal(t, "right", right.At(1).Value)
	assert.Equal(t, 1, base.Len())
}

func TestWithoutRemovesMatchingID(t *testing.T) {
	s := NewSnapshot(
		Entry{ID: "1", Value: "a"},
		Entry{ID: "2", Value: "b"},
		Entry{ID: "3", Value: "c"},
	)
	got := s.Without("2")

	if diff := cmp.Diff([]Entry{{"1", "a"}, {"3", "c"}}, got.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, s.Len())
}

func TestWithoutUnknownIDIsNewEqualSnapshot(t *testing.T) {
	s := NewSnapshot(Entry{ID: "1", Value: "a"})
	got := s.Without("nope")

	assert.NotSame(t, s, got)
	assert.True(t, s.Equal(got))
}

func TestWithoutRemovesEveryDuplicate(t *testing.T) {
	s := NewSnapshot(
		Entry{ID: "dup", Value: "first"},
		Entry{ID: "other", Value: "keep"},
		Entry{ID: "dup", Value: "second"},
	)
	got := s.Without("dup")
	require.Equal(t, 1, got.Len())
	assert.Equal(t, "keep", got.At(0).Value)
}

func TestNilSnapshotReadsAsEmpty(t *testing.T) {
	var s *Snapshot
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Entries())
	assert.True(t, s.Equal(Empty()))
	assert.Equal(t, 1, s.With(Entry{ID: "1"}).Len())
	assert.Equal(t, 0, s.Without("1").Len())
}

func TestEntriesReturnsCopy(t *testing.T) {
	s := NewSnapshot(Entry{ID: "1", Value: "a"})
	es := s.Entries()
	es[0].Value = "changed"
	assert.Equal(t, "a", s.At(0).Value)
}

