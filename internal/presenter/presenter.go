package presenter

import (
	"fmt"

	"github.com/idilsaglam/todolist/internal/model"
)

// Source yields the snapshot to show.
type Source interface {
	Snapshot() *model.Snapshot
}

// Remover drops entries by id.
type Remover interface {
	RemoveByID(id string) *model.Snapshot
}

// Row is one visible entry. Position is 1-based.
type Row struct {
	Position int
	ID       string
	Value    string
}

// Presenter turns the current snapshot into rows and routes activations
// back to the store.
type Presenter struct {
	src Source
	rm  Remover
}

func New(src Source, rm Remover) *Presenter {
	return &Presenter{src: src, rm: rm}
}

// Snapshot is the snapshot the rows are built from.
func (p *Presenter) Snapshot() *model.Snapshot { return p.src.Snapshot() }

// Rows lists every entry in insertion order.
func (p *Presenter) Rows() []Row {
	return RowsOf(p.src.Snapshot())
}

// RowsOf builds rows for an arbitrary snapshot.
func RowsOf(s *model.Snapshot) []Row {
	out := make([]Row, 0, s.Len())
	for i, e := range s.Entries() {
		out = append(out, Row{Position: i + 1, ID: e.ID, Value: e.Value})
	}
	return out
}

// OnEntryActivated removes the entry with id and returns the new snapshot.
func (p *Presenter) OnEntryActivated(id string) *model.Snapshot {
	return p.rm.RemoveByID(id)
}

// IDAt resolves a 1-based position to the id shown there.
func (p *Presenter) IDAt(position int) (string, error) {
	s := p.src.Snapshot()
	if position < 1 || position > s.Len() {
		return "", fmt.Errorf("position out of range: have %d, got %d", s.Len(), position)
	}
	return s.At(position - 1).ID, nil
}

// Lines renders rows as plain text, one per entry.
func (p *Presenter) Lines() []string {
	rows := p.Rows()
	if len(rows) == 0 {
		return []string{"no entries"}
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, fmt.Sprintf("%2d. %s  (%s)", r.Position, r.Value, r.ID))
	}
	return out
}
