package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ppd-dev/ppd/internal/items"
)

// View renders the current view (Bubble Tea interface).
func (m *ExplorerModel) View() string {
	if m.state == ExplorerStateQuitting {
		return ""
	}

	title := m.title
	if title == "" {
		title = "ppd explorer"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		HeaderStyle.Render(title),
		m.pane.Render(m.list.View()),
		m.renderStatusLine(),
		m.help.View(m.keys),
	)
}

// renderStatusLine shows focus position, selection size and the visible range.
func (m *ExplorerModel) renderStatusLine() string {
	n := m.list.Len()
	if n == 0 {
		return SubtleStyle.Render("no items")
	}

	focused := "-"
	if f := m.list.Focused(); f >= 0 {
		focused = m.printer.Sprintf("%d", f+1)
	}

	var b strings.Builder
	b.WriteString(LabelStyle.Render("focused "))
	b.WriteString(ValueStyle.Render(m.printer.Sprintf("%s/%d", focused, n)))
	b.WriteString(SubtleStyle.Render(" · "))
	b.WriteString(LabelStyle.Render("selected "))
	b.WriteString(ValueStyle.Render(m.printer.Sprintf("%d", len(m.list.Selected()))))

	if visible := m.list.Visible(); len(visible) > 0 {
		b.WriteString(SubtleStyle.Render(m.printer.Sprintf(" · rows %d-%d",
			visible[0].Index+1, visible[len(visible)-1].Index+1)))
	}
	if m.pane.Dragging() {
		b.WriteString(InfoStyle.Render(fmt.Sprintf(" · resizing %s", m.pane.Session().Side())))
	}
	return b.String()
}

// RenderPlain writes one line per item for non-interactive output:
// the id, the label when it differs, and flags.
func RenderPlain(w io.Writer, list []items.Item) error {
	for _, it := range list {
		line := it.ID
		if it.Label != "" && it.Label != it.ID {
			line += "\t" + it.Label
		}
		if it.Placeholder != "" {
			line += "\t(" + it.Placeholder + ")"
		}
		if it.Disabled {
			line += "\t[disabled]"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing item %s: %w", it.ID, err)
		}
	}
	return nil
}
