package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todolist/internal/presenter"
	"github.com/idilsaglam/todolist/internal/ui"
)

// entryItem adapts a presenter row to bubbles/list.Item.
type entryItem presenter.Row

func (i entryItem) FilterValue() string { return i.Value }

// Custom delegate to control how entries render (single line)
type entryDelegate struct{}

func (d entryDelegate) Height() int                               { return 1 }
func (d entryDelegate) Spacing() int                              { return 0 }
func (d entryDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d entryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(entryItem)
	if !ok {
		return
	}
	t := ui.Current()

	text := it.Value
	if text == "" {
		text = t.Muted.Render("(empty)")
	}
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render(t.Cursor)
	}
	fmt.Fprintf(w, "%s%s %s", prefix, t.Accent.Render(t.SymBullet), text)
}
