package store

import (
	"io"
	"log/slog"

	"github.com/idilsaglam/todolist/internal/ids"
	"github.com/idilsaglam/todolist/internal/model"
)

// In-memory storage for one session. Nothing is written to disk.
// Not safe for concurrent use: callers mutate from a single goroutine.

// Observer is told about every mutation, after it happened.
type Observer interface {
	Changed(prev, next *model.Snapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(prev, next *model.Snapshot)

func (f ObserverFunc) Changed(prev, next *model.Snapshot) { f(prev, next) }

// Store owns the current snapshot and is the only thing that replaces it.
type Store struct {
	current   *model.Snapshot
	gen       ids.Generator
	log       *slog.Logger
	observers []Observer
}

// Option configures a Store.
type Option func(*Store)

// WithGenerator sets the id generator. The default is ids.Timestamp.
func WithGenerator(g ids.Generator) Option {
	return func(s *Store) { s.gen = g }
}

// WithLogger sets the logger used for mutation traces.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{current: model.Empty()}
	for _, o := range opts {
		o(s)
	}
	if s.gen == nil {
		s.gen = ids.Timestamp(nil)
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Subscribe registers o for all later mutations.
func (s *Store) Subscribe(o Observer) { s.observers = append(s.observers, o) }

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() *model.Snapshot { return s.current }

// Append adds value, verbatim, as a new entry at the end. It never fails.
func (s *Store) Append(value string) model.Entry {
	e := model.Entry{ID: s.gen.NewID(), Value: value}
	prev := s.current
	s.replace(prev.With(e))
	s.log.Debug("entry appended", "id", e.ID, "len", s.current.Len())
	return e
}

// RemoveByID drops every entry with the given id and returns the new
// snapshot. An unknown id still yields a new (equal) snapshot.
func (s *Store) RemoveByID(id string) *model.Snapshot {
	prev := s.current
	s.replace(prev.Without(id))
	s.log.Debug("entry removed", "id", id, "removed", prev.Len()-s.current.Len(), "len", s.current.Len())
	return s.current
}

func (s *Store) replace(next *model.Snapshot) {
	prev := s.current
	s.current = next
	for _, o := range s.observers {
		o.Changed(prev, next)
	}
}
