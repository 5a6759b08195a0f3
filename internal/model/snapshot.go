package model

// Snapshot is the ordered list of entries at one point in time.
// A Snapshot is never modified after it is built: every change produces a
// new *Snapshot, so a viewer can detect change with prev != next.
// A nil *Snapshot reads as empty.
type Snapshot struct {
	entries []Entry
}

// Empty returns a fresh empty snapshot.
func Empty() *Snapshot { return NewSnapshot() }

// NewSnapshot copies entries into a new snapshot.
func NewSnapshot(entries ...Entry) *Snapshot {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return &Snapshot{entries: out}
}

func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// At returns the entry at position i (0-based). It panics when i is out of
// range, like a slice index.
func (s *Snapshot) At(i int) Entry { return s.entries[i] }

// Entries returns a copy of the entries in insertion order.
func (s *Snapshot) Entries() []Entry {
	if s == nil {
		return []Entry{}
	}
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Equal reports whether both snapshots hold the same entries in the same order.
func (s *Snapshot) Equal(o *Snapshot) bool {
	if s.Len() != o.Len() {
		return false
	}
	for i := 0; i < s.Len(); i++ {
		if s.entries[i] != o.entries[i] {
			return false
		}
	}
	return true
}

// With returns a new snapshot with e appended at the end.
func (s *Snapshot) With(e Entry) *Snapshot {
	n := s.Len()
	out := make([]Entry, n, n+1)
	if n > 0 {
		copy(out, s.entries)
	}
	return &Snapshot{entries: append(out, e)}
}

// Without returns a new snapshot holding every entry whose ID is not id.
// All entries sharing that id go, the rest keep their relative order.
// When nothing matches the result is equal to s but is still a new pointer.
func (s *Snapshot) Without(id string) *Snapshot {
	out := make([]Entry, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		if s.entries[i].ID != id {
			out = append(out, s.entries[i])
		}
	}
	return &Snapshot{entries: out}
}

