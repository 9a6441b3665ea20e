package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ppd-dev/ppd/internal/items"
	"github.com/ppd-dev/ppd/internal/logging"
	listview "github.com/ppd-dev/ppd/internal/tui/list"
	"github.com/ppd-dev/ppd/internal/tui/resizable"
)

// ExplorerState represents the lifecycle of the explorer.
type ExplorerState int

const (
	// ExplorerStateRunning indicates the explorer is handling input.
	ExplorerStateRunning ExplorerState = iota
	// ExplorerStateQuitting indicates the explorer has been torn down.
	ExplorerStateQuitting
)

// paneTop is the screen row the pane starts on, below the title.
const paneTop = 1

// ExplorerOptions configure the explorer.
type ExplorerOptions struct {
	Title string
	List  listview.Options
	// Pane sizes are initial; Width and Height default to the terminal.
	Pane resizable.Options
}

// explorerKeyMap adds app bindings in front of the list bindings.
type explorerKeyMap struct {
	list listview.KeyMap
	Quit key.Binding
	Help key.Binding
}

func newExplorerKeyMap(list listview.KeyMap) explorerKeyMap {
	return explorerKeyMap{
		list: list,
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	}
}

// ShortHelp implements help.KeyMap.
func (k explorerKeyMap) ShortHelp() []key.Binding {
	return append(k.list.ShortHelp(), k.Help, k.Quit)
}

// FullHelp implements help.KeyMap.
func (k explorerKeyMap) FullHelp() [][]key.Binding {
	return append(k.list.FullHelp(), []key.Binding{k.Help, k.Quit})
}

// ExplorerModel is the Bubble Tea model composing a resizable pane around
// the selectable list.
type ExplorerModel struct {
	ctx    context.Context
	logger zerolog.Logger

	list       *listview.Model
	pane       *resizable.Pane
	unregister func()

	keys    explorerKeyMap
	help    help.Model
	printer *message.Printer

	title  string
	state  ExplorerState
	width  int
	height int
}

// NewExplorerModel creates the explorer over the given items. The list is
// registered as a frame of the pane so drags suspend its mouse handling.
func NewExplorerModel(ctx context.Context, list []items.Item, opts ExplorerOptions) *ExplorerModel {
	logger := logging.ComponentLogger(*logging.FromContext(ctx), "explorer")

	paneOpts := opts.Pane
	if paneOpts.Width <= 0 {
		paneOpts.Width = defaultWidth
	}
	if paneOpts.Height <= 0 {
		paneOpts.Height = defaultHeight - chromeRows
	}
	if paneOpts.Logger == nil {
		paneLogger := logger.With().Str("widget", "resizable").Logger()
		paneOpts.Logger = &paneLogger
	}
	pane := resizable.New(paneOpts)

	listOpts := opts.List
	listOpts.Width, listOpts.Height = pane.InnerSize()
	if listOpts.Logger == nil {
		listLogger := logger.With().Str("widget", "list").Logger()
		listOpts.Logger = &listLogger
	}
	lv := listview.New(list, listOpts)

	m := &ExplorerModel{
		ctx:     ctx,
		logger:  logger,
		list:    lv,
		pane:    pane,
		keys:    newExplorerKeyMap(lv.KeyMap()),
		help:    help.New(),
		printer: message.NewPrinter(language.English),
		title:   opts.Title,
		state:   ExplorerStateRunning,
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.unregister = pane.Frames().Register(lv)

	logger.Debug().
		Int("items", lv.Len()).
		Str("sides", pane.Sides().String()).
		Msg("explorer created")
	return m
}

// Init initializes the model (Bubble Tea interface).
func (m *ExplorerModel) Init() tea.Cmd {
	return m.list.Init()
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m *ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == ExplorerStateQuitting {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m, m.handleMouseMsg(msg)
	}

	_, cmd := m.list.Update(msg)
	return m, cmd
}

func (m *ExplorerModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	_, cmd := m.list.Update(msg)
	return m, cmd
}

// handleMouseMsg routes pointer events. The pane sees every event first so
// motion and release reach an open drag wherever the pointer is; anything
// it does not consume and that lands in the content area goes to the list.
func (m *ExplorerModel) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	px, py := msg.X, msg.Y-paneTop

	if m.pane.HandleMouse(msg, px, py) {
		m.syncListSize()
		return nil
	}

	ox, oy := m.pane.ContentOrigin()
	iw, ih := m.pane.InnerSize()
	lx, ly := px-ox, py-oy
	if lx < 0 || ly < 0 || lx >= iw || ly >= ih {
		return nil
	}
	return m.list.HandleMouse(msg, lx, ly)
}

func (m *ExplorerModel) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	m.pane.SetBounds(width, max(height-chromeRows, 0))
	m.syncListSize()
}

// syncListSize fits the list to the pane's content area.
func (m *ExplorerModel) syncListSize() {
	w, h := m.pane.InnerSize()
	m.list.SetSize(w, h)
}

// Close tears down the pane, the list and the frame registration.
// Safe to call more than once.
func (m *ExplorerModel) Close() {
	if m.state == ExplorerStateQuitting {
		return
	}
	m.state = ExplorerStateQuitting
	m.pane.Close()
	m.list.Close()
	if m.unregister != nil {
		m.unregister()
	}
	m.logger.Debug().
		Int("selected", len(m.list.Selected())).
		Msg("explorer closed")
}

// State returns the lifecycle state.
func (m *ExplorerModel) State() ExplorerState { return m.state }

// List returns the embedded list.
func (m *ExplorerModel) List() *listview.Model { return m.list }

// Pane returns the embedded pane.
func (m *ExplorerModel) Pane() *resizable.Pane { return m.pane }

// Selected returns the selected item ids in selection order.
func (m *ExplorerModel) Selected() []string { return m.list.Selected() }
