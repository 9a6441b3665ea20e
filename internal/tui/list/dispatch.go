package listview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ppd-dev/ppd/internal/selection"
)

// HandleKey interprets a key press. Every key reaching the list is consumed;
// keys without a binding are only logged.
//
//nolint:cyclop // The dispatch table is easier to audit in one place.
func (m *Model) HandleKey(ev KeyEvent) tea.Cmd {
	if m.closed {
		return nil
	}

	switch ev.Name {
	case KeyArrowUp, KeyArrowDown, KeyPageUp, KeyPageDown, KeyHome, KeyEnd:
		return m.navigate(ev)
	}

	switch {
	case ev.Name == "a" && ev.CtrlOrMeta() && !ev.Shift && !ev.Alt:
		m.setSelection(selection.SelectAll(m.items))
		return nil

	case ev.Name == "r" && ev.CtrlOrMeta() && !ev.Shift && !ev.Alt:
		return m.startReveal()

	case ev.Name == KeyEscape && ev.NoModifiers():
		m.setSelection(nil)
		return nil

	case ev.Name == KeySpace && ev.NoModifiers():
		if m.focused < 0 || m.items.Disabled(m.focused) {
			return nil
		}
		m.setSelection(selection.ToggleSelect(m.selected, m.items.ID(m.focused), false))
		return nil
	}

	m.logger.Debug().
		Str("key", ev.String()).
		Int("focused", m.focused).
		Msg("unhandled key")
	return nil
}

// navigate handles arrows, Home/End and PageUp/PageDown.
// Home/End behave as Ctrl/Meta+Arrow, PageUp/PageDown as Alt+Arrow.
func (m *Model) navigate(ev KeyEvent) tea.Cmd {
	n := m.items.Len()
	if n == 0 {
		return nil
	}

	dir := 1
	if ev.Name == KeyArrowUp || ev.Name == KeyPageUp || ev.Name == KeyHome {
		dir = -1
	}
	isPagination := ev.Alt || ev.Name == KeyPageUp || ev.Name == KeyPageDown
	isJump := ev.CtrlOrMeta() || ev.Name == KeyHome || ev.Name == KeyEnd

	var (
		index    int
		scrolled bool
	)
	switch {
	case isPagination:
		index, scrolled = m.pageTarget(dir)
	case isJump:
		index = n - 1
		if dir < 0 {
			index = 0
		}
	case m.focused == -1:
		index = 0
		if dir < 0 {
			index = n - 1
		}
	default:
		index = ((m.focused+dir)%n + n) % n
	}

	if index < 0 {
		return m.scrolledCmd(scrolled)
	}

	prev := m.focused
	if m.focusItem(index) {
		scrolled = true
	}

	if ev.Shift {
		if !isPagination && !isJump {
			s := m.pushEnabled(m.selected, index)
			m.setSelection(m.pushEnabled(s, prev))
		} else {
			m.setSelection(selection.ToggleRangeSelect(m.selected, m.items.ID(index), m.items))
		}
	}
	return m.scrolledCmd(scrolled)
}

func (m *Model) pushEnabled(s selection.Set, index int) selection.Set {
	if index < 0 || m.items.Disabled(index) {
		return s
	}
	return selection.PushSelect(s, m.items.ID(index), false)
}

func (m *Model) scrolledCmd(scrolled bool) tea.Cmd {
	if !scrolled {
		return nil
	}
	return m.onScroll()
}

// focusItem moves focus and brings the row into view. It reports whether
// the viewport scrolled.
func (m *Model) focusItem(index int) bool {
	if index < 0 || index >= m.items.Len() {
		return false
	}
	if m.focused != index {
		m.focused = index
		m.rebuild()
	}
	return m.scrollIntoView(index)
}

// FocusItem focuses an item the way tabbing onto it would. Disabled items
// cannot take focus.
func (m *Model) FocusItem(index int) tea.Cmd {
	if m.closed || m.items.Disabled(index) {
		return nil
	}
	return m.scrolledCmd(m.focusItem(index))
}

// Focus re-applies focus to the focused item, as when the list itself
// receives focus.
func (m *Model) Focus() tea.Cmd {
	if m.closed || m.focused < 0 {
		return nil
	}
	return m.scrolledCmd(m.scrollIntoView(m.focused))
}
