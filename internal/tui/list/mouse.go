package listview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ppd-dev/ppd/internal/selection"
)

// IndexAtRow returns the item rendered at a viewport row, or -1.
func (m *Model) IndexAtRow(row int) int {
	if row < 0 || row >= m.viewport.Height {
		return -1
	}
	y := row + m.viewport.YOffset
	for i, s := range m.layout {
		if y >= s.top && y < s.top+s.height {
			return i
		}
	}
	return -1
}

// HandleMouse processes a mouse event at list-relative coordinates.
func (m *Model) HandleMouse(msg tea.MouseMsg, _, y int) tea.Cmd {
	if m.closed || !m.pointerEvents || msg.Action != tea.MouseActionPress {
		return nil
	}

	//nolint:exhaustive // Other buttons are ignored.
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m.ScrollBy(-m.opts.WheelStep)
	case tea.MouseButtonWheelDown:
		return m.ScrollBy(m.opts.WheelStep)
	case tea.MouseButtonLeft:
		return m.click(m.IndexAtRow(y), msg.Ctrl, msg.Shift)
	}
	return nil
}

// click applies a pointer press on index; -1 is the list background.
func (m *Model) click(index int, ctrlOrMeta, shift bool) tea.Cmd {
	if index < 0 {
		m.setSelection(nil)
		return nil
	}
	if m.items.Disabled(index) {
		return nil
	}

	cmd := m.FocusItem(index)
	if !m.opts.Selectable {
		return cmd
	}

	id := m.items.ID(index)
	switch {
	case !ctrlOrMeta && !shift:
		m.setSelection(selection.Set{id})
	case ctrlOrMeta:
		m.setSelection(selection.ToggleSelect(m.selected, id, false))
	default:
		m.setSelection(selection.ToggleRangeSelect(m.selected, id, m.items))
	}
	return cmd
}

// Click applies a pointer press on an item index with the given modifiers.
// A negative index is a press on the list background.
func (m *Model) Click(index int, ctrlOrMeta, shift bool) tea.Cmd {
	if m.closed {
		return nil
	}
	if index >= m.items.Len() {
		index = -1
	}
	return m.click(index, ctrlOrMeta, shift)
}
