package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todolist/internal/model"
)

// Run starts the program on the alternate screen and blocks until the user
// quits or ctx is cancelled. It returns the snapshot left in the store.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) (*model.Snapshot, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(m, opts...)
	final, err := p.Run()
	if err != nil {
		return m.Snapshot(), fmt.Errorf("run tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.Snapshot(), nil
	}
	return m.Snapshot(), nil
}
