package listview

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/ppd-dev/ppd/internal/items"
	"github.com/ppd-dev/ppd/internal/selection"
	"github.com/ppd-dev/ppd/internal/tui/debounce"
)

// Defaults applied by New when the matching option is zero.
const (
	DefaultScrollDebounce = 200 * time.Millisecond
	DefaultRevealRatio    = 0.382
	DefaultWheelStep      = 3
)

// scrollDebounceName tags the visible-range debounce ticks.
const scrollDebounceName = "list-visible"

// Options configure a list.
type Options struct {
	// Selectable enables selection by mouse click.
	Selectable bool
	Width      int
	Height     int
	// PagePadding is the number of rows kept between the boundary row and
	// the viewport edge when paging scrolls.
	PagePadding    int
	ScrollDebounce time.Duration
	// RevealRatio positions the focused row this fraction of the viewport
	// height below the top on reveal.
	RevealRatio float64
	WheelStep   int
	Logger      *zerolog.Logger
}

// FocusItemMsg moves focus to an item, as a tab or programmatic focus would.
type FocusItemMsg struct {
	Index int
}

// span is the vertical extent of one rendered item in content rows.
type span struct {
	top    int
	height int
}

// Model is the selectable list.
type Model struct {
	items *items.Collection
	opts  Options
	keys  KeyMap

	focused  int
	selected selection.Set
	visible  []VisibleItem

	layout   []span
	viewport viewport.Model
	scroll   *debounce.Debouncer
	reveal   revealState

	pointerEvents bool
	mounted       bool
	closed        bool

	logger zerolog.Logger
}

// New creates a list over the given items.
func New(list []items.Item, opts Options) *Model {
	if opts.ScrollDebounce <= 0 {
		opts.ScrollDebounce = DefaultScrollDebounce
	}
	if opts.RevealRatio <= 0 {
		opts.RevealRatio = DefaultRevealRatio
	}
	if opts.WheelStep <= 0 {
		opts.WheelStep = DefaultWheelStep
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	m := &Model{
		items:         items.NewCollection(list),
		opts:          opts,
		keys:          DefaultKeyMap(),
		focused:       -1,
		viewport:      viewport.New(max(opts.Width, 0), max(opts.Height, 0)),
		scroll:        debounce.New(scrollDebounceName, opts.ScrollDebounce),
		pointerEvents: true,
		logger:        logger,
	}
	m.rebuild()
	return m
}

// Init mounts the list and takes the first visible-range snapshot.
func (m *Model) Init() tea.Cmd {
	m.mounted = true
	m.visible = m.computeVisible()
	return nil
}

// Update handles keyboard, mouse, focus, resize and timer messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.closed {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.HandleKey(DecodeKey(msg))
	case tea.MouseMsg:
		return m, m.HandleMouse(msg, msg.X, msg.Y)
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.FocusMsg:
		return m, m.Focus()
	case FocusItemMsg:
		return m, m.FocusItem(msg.Index)
	case debounce.FiredMsg:
		if m.scroll.Accept(msg) {
			m.visible = m.computeVisible()
		}
		return m, nil
	case revealFrameMsg:
		return m, m.stepReveal(msg)
	}

	return m, nil
}

// View renders the viewport.
func (m *Model) View() string {
	return m.viewport.View()
}

// SetSize resizes the viewport and takes a fresh snapshot.
func (m *Model) SetSize(width, height int) {
	m.opts.Width, m.opts.Height = max(width, 0), max(height, 0)
	m.viewport.Width = m.opts.Width
	m.viewport.Height = m.opts.Height
	m.rebuild()
	m.scrollTo(m.viewport.YOffset)
	if m.mounted {
		m.visible = m.computeVisible()
	}
}

// SetPointerEvents enables or disables mouse handling. It lets a resizable
// pane suspend the list while a drag passes over it.
func (m *Model) SetPointerEvents(enabled bool) {
	m.pointerEvents = enabled
}

// PointerEvents reports whether mouse handling is enabled.
func (m *Model) PointerEvents() bool { return m.pointerEvents }

// Close tears the list down: pending snapshot ticks and reveal frames are
// dropped and further messages are ignored.
func (m *Model) Close() {
	m.scroll.Close()
	m.reveal = revealState{seq: m.reveal.seq + 1}
	m.closed = true
}

// KeyMap returns the bindings for help rendering.
func (m *Model) KeyMap() KeyMap { return m.keys }

// Len returns the number of items.
func (m *Model) Len() int { return m.items.Len() }

// Item returns the item at i.
func (m *Model) Item(i int) (items.Item, bool) { return m.items.At(i) }

// Focused returns the focused index, -1 when nothing is focused.
func (m *Model) Focused() int { return m.focused }

// Selected returns a copy of the selection in insertion order.
func (m *Model) Selected() selection.Set { return m.selected.Clone() }

// IsSelected reports whether id is selected.
func (m *Model) IsSelected(id string) bool { return m.selected.Contains(id) }

// Visible returns a copy of the current visible-range snapshot.
func (m *Model) Visible() []VisibleItem {
	out := make([]VisibleItem, len(m.visible))
	copy(out, m.visible)
	return out
}

// YOffset returns the scroll position in rows.
func (m *Model) YOffset() int { return m.viewport.YOffset }

// Selectable reports whether clicks select items.
func (m *Model) Selectable() bool { return m.opts.Selectable }

func (m *Model) setSelection(s selection.Set) {
	m.selected = s
	m.rebuild()
}

// rebuild re-renders every item and records its row span.
func (m *Model) rebuild() {
	n := m.items.Len()
	rows := make([]string, n)
	m.layout = m.layout[:0]

	top := 0
	for i := range n {
		rows[i] = m.renderItem(i)
		h := lipgloss.Height(rows[i])
		m.layout = append(m.layout, span{top: top, height: h})
		top += h
	}
	m.viewport.SetContent(strings.Join(rows, "\n"))
}

func (m *Model) contentHeight() int {
	if len(m.layout) == 0 {
		return 0
	}
	last := m.layout[len(m.layout)-1]
	return last.top + last.height
}
