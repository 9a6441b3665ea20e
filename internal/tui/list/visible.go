package listview

import tea "github.com/charmbracelet/bubbletea"

// maxPageSteps bounds the scroll-and-retry loop of page navigation.
const maxPageSteps = 64

// VisibleItem is one entry of the visible-range snapshot.
type VisibleItem struct {
	ID     string
	Index  int
	Top    int
	Height int
}

// inVisibleArea reports whether a row span lies entirely inside the viewport.
// Horizontal extent is ignored and partially shown rows do not count.
func inVisibleArea(s span, viewTop, viewBottom int) bool {
	return s.top >= viewTop && s.top+s.height <= viewBottom
}

// computeVisible scans every item against the current scroll position.
func (m *Model) computeVisible() []VisibleItem {
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height

	var out []VisibleItem
	if m.viewport.Height <= 0 {
		return out
	}
	for i, s := range m.layout {
		if inVisibleArea(s, top, bottom) {
			out = append(out, VisibleItem{ID: m.items.ID(i), Index: i, Top: s.top, Height: s.height})
		}
	}
	return out
}

// onScroll schedules a snapshot refresh once scrolling goes quiet.
func (m *Model) onScroll() tea.Cmd {
	if !m.mounted {
		return nil
	}
	return m.scroll.Trigger()
}

func (m *Model) maxYOffset() int {
	return max(m.contentHeight()-m.viewport.Height, 0)
}

// scrollTo moves the viewport, clamped to the content. It reports whether
// the offset changed.
func (m *Model) scrollTo(top int) bool {
	top = min(max(top, 0), m.maxYOffset())
	if top == m.viewport.YOffset {
		return false
	}
	m.viewport.SetYOffset(top)
	return true
}

// ScrollBy scrolls by delta rows and returns the snapshot refresh command.
func (m *Model) ScrollBy(delta int) tea.Cmd {
	if !m.scrollTo(m.viewport.YOffset + delta) {
		return nil
	}
	return m.onScroll()
}

// scrollIntoView brings the row of index into view at the nearest edge.
func (m *Model) scrollIntoView(index int) bool {
	if index < 0 || index >= len(m.layout) || m.viewport.Height <= 0 {
		return false
	}
	s := m.layout[index]
	top := m.viewport.YOffset
	switch {
	case s.top < top:
		return m.scrollTo(s.top)
	case s.top+s.height > top+m.viewport.Height:
		return m.scrollTo(s.top + s.height - m.viewport.Height)
	default:
		return false
	}
}

// pageTarget resolves the index page navigation lands on: the first visible
// row going up, the last going down. When that row is already focused the
// viewport is scrolled a page, the snapshot is recomputed and the lookup is
// retried. It returns -1 when nothing is visible.
func (m *Model) pageTarget(dir int) (int, bool) {
	snapshot := m.visible
	if m.scroll.Pending() {
		snapshot = m.computeVisible()
	}

	scrolled := false
	target := -1
	for range maxPageSteps {
		if len(snapshot) == 0 {
			return -1, scrolled
		}

		edge := snapshot[len(snapshot)-1]
		if dir < 0 {
			edge = snapshot[0]
		}
		target = edge.Index
		if target != m.focused {
			return target, scrolled
		}

		// Padding never pushes the boundary row out of the viewport.
		pad := min(m.opts.PagePadding, max((m.viewport.Height-edge.Height)/2, 0))
		top := edge.Top - pad
		if dir < 0 {
			top = edge.Top + edge.Height - m.viewport.Height + pad
		}
		if !m.scrollTo(top) {
			return target, scrolled
		}
		scrolled = true
		snapshot = m.computeVisible()
	}
	return target, scrolled
}
