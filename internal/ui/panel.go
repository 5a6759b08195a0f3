package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PanelStyle is the framed box used around lists.
func PanelStyle() lipgloss.Style {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
}

// Panel draws lines inside a framed box.
func Panel(w io.Writer, lines []string) {
	fmt.Fprintln(w, PanelStyle().Render(strings.Join(lines, "\n")))
}

// Header is the list title with the entry count.
func Header(count int) string {
	t := Current()
	return fmt.Sprintf("%s   %s %s %d",
		t.Title.Render("Todos"),
		t.Accent.Render(t.SymBullet),
		t.Muted.Render("Total"), count,
	)
}

func OK(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.Success.Render(t.SymOK+" "+msg))
}

func Fail(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.Error.Render(t.SymFail+" "+msg))
}
