package listview

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Key names understood by the dispatcher.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyHome       = "Home"
	KeyEnd        = "End"
	KeyPageUp     = "PageUp"
	KeyPageDown   = "PageDown"
	KeyEscape     = "Escape"
	KeySpace      = " "
	KeyEnter      = "Enter"
	KeyTab        = "Tab"
)

// KeyEvent is a key press with its modifiers as independent bits.
type KeyEvent struct {
	Name  string
	Ctrl  bool
	Meta  bool
	Shift bool
	Alt   bool
}

// CtrlOrMeta reports whether either command modifier is held.
func (e KeyEvent) CtrlOrMeta() bool { return e.Ctrl || e.Meta }

// NoModifiers reports whether no modifier is held.
func (e KeyEvent) NoModifiers() bool { return !e.CtrlOrMeta() && !e.Shift && !e.Alt }

func (e KeyEvent) String() string {
	var b strings.Builder
	if e.Ctrl {
		b.WriteString("ctrl+")
	}
	if e.Meta {
		b.WriteString("meta+")
	}
	if e.Alt {
		b.WriteString("alt+")
	}
	if e.Shift {
		b.WriteString("shift+")
	}
	if e.Name == KeySpace {
		b.WriteString("space")
	} else {
		b.WriteString(e.Name)
	}
	return b.String()
}

// DecodeKey maps a terminal key message onto a KeyEvent.
//
//nolint:cyclop,exhaustive // One case per terminal key encoding.
func DecodeKey(msg tea.KeyMsg) KeyEvent {
	ev := KeyEvent{Alt: msg.Alt}

	switch msg.Type {
	case tea.KeyUp:
		ev.Name = KeyArrowUp
	case tea.KeyDown:
		ev.Name = KeyArrowDown
	case tea.KeyShiftUp:
		ev.Name, ev.Shift = KeyArrowUp, true
	case tea.KeyShiftDown:
		ev.Name, ev.Shift = KeyArrowDown, true
	case tea.KeyCtrlUp:
		ev.Name, ev.Ctrl = KeyArrowUp, true
	case tea.KeyCtrlDown:
		ev.Name, ev.Ctrl = KeyArrowDown, true
	case tea.KeyCtrlShiftUp:
		ev.Name, ev.Ctrl, ev.Shift = KeyArrowUp, true, true
	case tea.KeyCtrlShiftDown:
		ev.Name, ev.Ctrl, ev.Shift = KeyArrowDown, true, true
	case tea.KeyLeft:
		ev.Name = KeyArrowLeft
	case tea.KeyRight:
		ev.Name = KeyArrowRight
	case tea.KeyShiftLeft:
		ev.Name, ev.Shift = KeyArrowLeft, true
	case tea.KeyShiftRight:
		ev.Name, ev.Shift = KeyArrowRight, true
	case tea.KeyHome:
		ev.Name = KeyHome
	case tea.KeyEnd:
		ev.Name = KeyEnd
	case tea.KeyShiftHome:
		ev.Name, ev.Shift = KeyHome, true
	case tea.KeyShiftEnd:
		ev.Name, ev.Shift = KeyEnd, true
	case tea.KeyCtrlHome:
		ev.Name, ev.Ctrl = KeyHome, true
	case tea.KeyCtrlEnd:
		ev.Name, ev.Ctrl = KeyEnd, true
	case tea.KeyCtrlShiftHome:
		ev.Name, ev.Ctrl, ev.Shift = KeyHome, true, true
	case tea.KeyCtrlShiftEnd:
		ev.Name, ev.Ctrl, ev.Shift = KeyEnd, true, true
	case tea.KeyPgUp:
		ev.Name = KeyPageUp
	case tea.KeyPgDown:
		ev.Name = KeyPageDown
	case tea.KeyCtrlPgUp:
		ev.Name, ev.Ctrl = KeyPageUp, true
	case tea.KeyCtrlPgDown:
		ev.Name, ev.Ctrl = KeyPageDown, true
	case tea.KeyEsc:
		ev.Name = KeyEscape
	case tea.KeySpace:
		ev.Name = KeySpace
	case tea.KeyEnter:
		ev.Name = KeyEnter
	case tea.KeyTab:
		ev.Name = KeyTab
	case tea.KeyCtrlA:
		ev.Name, ev.Ctrl = "a", true
	case tea.KeyCtrlR:
		ev.Name, ev.Ctrl = "r", true
	case tea.KeyRunes:
		ev.Name = string(msg.Runes)
	default:
		ev.Name = msg.String()
	}
	return ev
}

// KeyMap describes the list bindings for help rendering.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	First     key.Binding
	Last      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Extend    key.Binding
	SelectAll key.Binding
	Toggle    key.Binding
	Clear     key.Binding
	Reveal    key.Binding
}

// DefaultKeyMap returns the bindings the dispatcher implements.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		First:     key.NewBinding(key.WithKeys("home", "ctrl+up"), key.WithHelp("home", "first")),
		Last:      key.NewBinding(key.WithKeys("end", "ctrl+down"), key.WithHelp("end", "last")),
		PageUp:    key.NewBinding(key.WithKeys("pgup", "alt+up"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown", "alt+down"), key.WithHelp("pgdn", "page down")),
		Extend:    key.NewBinding(key.WithKeys("shift+up", "shift+down"), key.WithHelp("shift+↑↓", "extend")),
		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Reveal:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reveal")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PageDown, k.Toggle, k.Clear}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.First, k.Last},
		{k.PageUp, k.PageDown, k.Reveal},
		{k.Extend, k.SelectAll, k.Toggle, k.Clear},
	}
}
