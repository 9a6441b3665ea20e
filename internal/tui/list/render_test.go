package listview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/ppd-dev/ppd/internal/items"
)

func TestView_RendersOnlyViewportRows(t *testing.T) {
	m := newTestList(t, makeItems(1000), 20, Options{})

	view := m.View()
	assert.Equal(t, 20, lipgloss.Height(view))
	assert.Contains(t, view, "Item 0")
	assert.NotContains(t, view, "Item 20")
}

func TestView_UpdatesWithScroll(t *testing.T) {
	m := newTestList(t, makeItems(100), 20, Options{})
	before := m.View()

	m.ScrollBy(10)
	after := m.View()

	assert.NotEqual(t, before, after)
	first := strings.TrimSpace(ansi.Strip(strings.Split(after, "\n")[0]))
	assert.True(t, strings.HasSuffix(first, "Item 10"), first)
}

func TestRenderItem(t *testing.T) {
	list := []items.Item{
		{ID: "a", Label: "Alpha", Icon: "folder"},
		{ID: "b", Label: "Beta", Placeholder: "hint"},
		{ID: "c", Label: "Gamma", Disabled: true},
		{ID: "d", Label: "Delta", Content: func(_ string, it items.Item) string { return "custom " + it.ID }},
		{ID: "e", Label: strings.Repeat("x", 100)},
	}
	m := newTestList(t, list, 10, Options{})
	m.FocusItem(0)

	row := func(i int) string { return ansi.Strip(m.renderItem(i)) }

	assert.Equal(t, "› ▸ Alpha", row(0), "focused row carries the marker")
	assert.Equal(t, "    Beta hint", row(1))
	assert.Contains(t, row(2), "Gamma")
	assert.Equal(t, "    custom d", row(3), "content replaces the label")
	assert.Equal(t, 40, ansi.StringWidth(row(4)), "long labels are truncated to the width")
	assert.True(t, strings.HasSuffix(row(4), "…"))
	assert.Empty(t, m.renderItem(99))
}

func TestIconGlyph(t *testing.T) {
	assert.Equal(t, "▫", iconGlyph("file"))
	assert.Equal(t, "⚗", iconGlyph("beaker"))
	assert.Equal(t, "▣", iconGlyph("folder-library"))
	assert.Equal(t, "•", iconGlyph("unknown"))
	assert.Equal(t, " ", iconGlyph(""))
}
