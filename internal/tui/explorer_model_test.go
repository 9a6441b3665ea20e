package tui

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppd-dev/ppd/internal/items"
	listview "github.com/ppd-dev/ppd/internal/tui/list"
	"github.com/ppd-dev/ppd/internal/tui/resizable"
)

func testItems(n int) []items.Item {
	list := make([]items.Item, n)
	for i := range list {
		list[i] = items.Item{ID: fmt.Sprintf("item-%d", i), Label: fmt.Sprintf("Item %d", i)}
	}
	return list
}

func newTestExplorer(t *testing.T, n int) *ExplorerModel {
	t.Helper()
	m := NewExplorerModel(context.Background(), testItems(n), ExplorerOptions{
		Title: "test",
		List:  listview.Options{Selectable: true},
		Pane: resizable.Options{
			Sides:     resizable.AllSides(),
			Width:     40,
			Height:    12,
			MinWidth:  10,
			MinHeight: 5,
		},
	})
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestNewExplorerModel(t *testing.T) {
	m := newTestExplorer(t, 5)

	assert.Equal(t, ExplorerStateRunning, m.State())
	assert.Equal(t, 1, m.Pane().Frames().Len(), "list is registered as a frame")
	assert.Equal(t, 5, m.List().Len())

	w, h := m.Pane().InnerSize()
	assert.Equal(t, 38, w)
	assert.Equal(t, 10, h)
}

func TestExplorer_KeysReachList(t *testing.T) {
	m := newTestExplorer(t, 5)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyShiftDown})

	assert.Equal(t, 1, m.List().Focused())
	assert.Equal(t, []string{"item-1", "item-0"}, m.Selected())
}

func TestExplorer_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{name: "q", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestExplorer(t, 5)

			_, cmd := m.Update(tt.msg)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())

			assert.Equal(t, ExplorerStateQuitting, m.State())
			assert.Equal(t, 0, m.Pane().Frames().Len())
			assert.Empty(t, m.View())

			m.Update(tea.KeyMsg{Type: tea.KeyDown})
			assert.Equal(t, -1, m.List().Focused(), "input after quit is ignored")
			m.Close()
		})
	}
}

func TestExplorer_ClickTranslatesCoordinates(t *testing.T) {
	m := newTestExplorer(t, 5)

	// The title row and the top border sit above the content.
	m.Update(mouse(tea.MouseActionPress, 5, paneTop+1+2))

	assert.Equal(t, 2, m.List().Focused())
	assert.Equal(t, []string{"item-2"}, m.Selected())
	assert.False(t, m.Pane().Dragging())
}

func TestExplorer_ClickOutsideContentIgnored(t *testing.T) {
	m := newTestExplorer(t, 5)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})

	m.Update(mouse(tea.MouseActionPress, 60, 5))
	assert.Len(t, m.Selected(), 5, "press right of the pane does not reach the list")
}

func TestExplorer_DragResizesPaneAndList(t *testing.T) {
	m := newTestExplorer(t, 5)
	rightEdge := m.Pane().Width() - 1
	row := paneTop + 4

	m.Update(mouse(tea.MouseActionPress, rightEdge, row))
	require.True(t, m.Pane().Dragging())
	assert.False(t, m.List().PointerEvents(), "list is suspended during the drag")

	// Motion over the list goes to the drag, not the list.
	m.Update(mouse(tea.MouseActionMotion, rightEdge+6, row+1))
	assert.Equal(t, 46, m.Pane().Width())
	assert.Equal(t, -1, m.List().Focused())

	m.Update(mouse(tea.MouseActionRelease, rightEdge+6, row+1))
	assert.False(t, m.Pane().Dragging())
	assert.True(t, m.List().PointerEvents())

	assert.Contains(t, m.View(), "Item 0")
}

func TestExplorer_DragClampedToTerminal(t *testing.T) {
	m := newTestExplorer(t, 5)
	rightEdge := m.Pane().Width() - 1

	m.Update(mouse(tea.MouseActionPress, rightEdge, paneTop+3))
	m.Update(mouse(tea.MouseActionMotion, rightEdge+200, paneTop+3))
	m.Update(mouse(tea.MouseActionRelease, rightEdge+200, paneTop+3))

	assert.Equal(t, 80, m.Pane().Width())
}

func TestExplorer_QuitMidDragRestoresFrames(t *testing.T) {
	m := newTestExplorer(t, 5)

	m.Update(mouse(tea.MouseActionPress, m.Pane().Width()-1, paneTop+3))
	require.False(t, m.List().PointerEvents())

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.List().PointerEvents())
	assert.False(t, m.Pane().Dragging())
}

func TestExplorer_StatusLine(t *testing.T) {
	m := newTestExplorer(t, 5)
	status := ansi.Strip(m.renderStatusLine())
	assert.Contains(t, status, "focused -/5")
	assert.Contains(t, status, "selected 0")
	assert.Contains(t, status, "rows 1-5")

	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	status = ansi.Strip(m.renderStatusLine())
	assert.Contains(t, status, "focused 5/5")
	assert.Contains(t, status, "selected 5")
}

func TestExplorer_StatusLineGroupsThousands(t *testing.T) {
	m := newTestExplorer(t, 1500)
	assert.Contains(t, ansi.Strip(m.renderStatusLine()), "focused -/1,500")
}

func TestExplorer_EmptyList(t *testing.T) {
	m := newTestExplorer(t, 0)
	assert.Contains(t, ansi.Strip(m.renderStatusLine()), "no items")
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, -1, m.List().Focused())
}

func TestExplorer_HelpToggle(t *testing.T) {
	m := newTestExplorer(t, 5)
	short := m.View()

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.True(t, m.help.ShowAll)
	assert.NotEqual(t, short, m.View())
	assert.Contains(t, ansi.Strip(m.View()), "first")
}

func TestRenderPlain(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPlain(&buf, []items.Item{
		{ID: "a", Label: "a"},
		{ID: "b", Label: "Bee", Placeholder: "hint"},
		{ID: "c", Disabled: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "a\nb\tBee\t(hint)\nc\t[disabled]\n", buf.String())
}
