package listview

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	focusedStyle     = lipgloss.NewStyle().Bold(true)
	selectedStyle    = lipgloss.NewStyle().Background(lipgloss.Color("24")).Foreground(lipgloss.Color("255"))
	disabledStyle    = lipgloss.NewStyle().Faint(true)
	rowStyle         = lipgloss.NewStyle()
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true)
)

// icons maps icon names to single-cell glyphs. Unknown names use a bullet.
var icons = map[string]string{
	"file":           "▫",
	"beaker":         "⚗",
	"folder":         "▸",
	"folder-library": "▣",
}

func iconGlyph(name string) string {
	if name == "" {
		return " "
	}
	if g, ok := icons[name]; ok {
		return g
	}
	return "•"
}

// renderItem draws row i: focus marker, icon, label or custom content, and
// the placeholder.
func (m *Model) renderItem(i int) string {
	it, ok := m.items.At(i)
	if !ok {
		return ""
	}

	marker := "  "
	if i == m.focused {
		marker = "› "
	}

	label := it.Label
	if it.Content != nil {
		label = it.Content("", it)
	}

	row := marker + iconGlyph(it.Icon) + " " + label
	if it.Placeholder != "" {
		row += " " + placeholderStyle.Render(it.Placeholder)
	}
	if m.opts.Width > 0 {
		row = ansi.Truncate(row, m.opts.Width, "…")
	}

	style := rowStyle
	switch {
	case it.Disabled:
		style = disabledStyle
	case m.selected.Contains(it.ID):
		style = selectedStyle
	}
	if i == m.focused {
		style = style.Inherit(focusedStyle)
	}
	return style.Render(row)
}
