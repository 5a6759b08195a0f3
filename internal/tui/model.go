package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todolist/internal/input"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/presenter"
	"github.com/idilsaglam/todolist/internal/ui"
)

type focus int

const (
	focusInput focus = iota
	focusList
)

// Model is the Bubble Tea front end. It holds no entries itself: the
// controller and presenter it is handed share one store owned by the caller.
type Model struct {
	input     *input.Controller
	presenter *presenter.Presenter

	// rendered is the snapshot the list currently shows.
	rendered *model.Snapshot

	list  list.Model
	ti    textinput.Model
	keys  keyMap
	focus focus
	err   string

	width, height int
}

// New wires a controller and a presenter into a TUI model.
func New(ctrl *input.Controller, pres *presenter.Presenter) Model {
	keys := defaultKeys()

	l := list.New(nil, entryDelegate{}, 0, 0)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = ui.Current().Title
	l.Styles.PaginationStyle = ui.Current().Muted

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What needs to be done?"
	ti.SetValue(ctrl.Buffer())
	ti.Focus()

	m := Model{
		input:     ctrl,
		presenter: pres,
		list:      l,
		ti:        ti,
		keys:      keys,
		focus:     focusInput,
		width:     80,
		height:    24,
	}
	m.sync()
	m.resize()
	return m
}

// Snapshot is what the store holds right now.
func (m Model) Snapshot() *model.Snapshot { return m.presenter.Snapshot() }

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.ForceQuit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Focus):
			return m, m.toggleFocus()
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	cmds = append(cmds, cmd)
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		if _, err := m.input.OnSubmit(); err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.err = ""
		m.ti.Reset()
		m.sync()
		if n := len(m.list.Items()); n > 0 {
			m.list.Select(n - 1)
		}
		return m, nil
	case key.Matches(msg, m.keys.Leave):
		return m, m.toggleFocus()
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	if v := m.ti.Value(); v != m.input.Buffer() {
		m.input.OnTextChange(v)
		m.err = ""
	}
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Remove):
		it, ok := m.list.SelectedItem().(entryItem)
		if !ok {
			return m, nil
		}
		idx := m.list.Index()
		m.presenter.OnEntryActivated(it.ID)
		m.sync()
		if n := len(m.list.Items()); n > 0 {
			if idx >= n {
				idx = n - 1
			}
			m.list.Select(idx)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusInput {
		m.focus = focusList
		m.ti.Blur()
		return nil
	}
	m.focus = focusInput
	return m.ti.Focus()
}

// sync rebuilds the list items when the store's snapshot is a different
// value from the one on screen.
func (m *Model) sync() {
	snap := m.presenter.Snapshot()
	if snap == m.rendered {
		return
	}
	m.rendered = snap

	rows := m.presenter.Rows()
	items := make([]list.Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, entryItem(r))
	}
	m.list.SetItems(items)
	m.list.Title = ui.Header(len(rows))
}

func (m *Model) resize() {
	// panel border + padding, input box and hint line
	w := m.width - 4
	h := m.height - 8
	if w < 10 {
		w = 10
	}
	if h < 3 {
		h = 3
	}
	m.list.SetSize(w, h)
	m.ti.Width = w - 6
}

func (m Model) View() string {
	t := ui.Current()

	box := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
	title := "Add entry"
	if m.focus == focusInput {
		title = t.Accent.Render(title)
	} else {
		title = t.Muted.Render(title)
	}
	if m.err != "" {
		title += "  " + t.Error.Render(m.err)
	}

	var help []string
	bindings := m.keys.inputHelp()
	if m.focus == focusList {
		bindings = m.keys.listHelp()
	}
	for _, b := range bindings {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}

	content := m.list.View() + "\n" +
		box.Render(title+"\n"+m.ti.View()) + "\n" +
		t.Muted.Render(strings.Join(help, " • "))
	return ui.PanelStyle().Render(content)
}
