package resizable

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"
)

// DoublePressWindow is how long a handle press stays armed for the
// snap-to-minimum gesture.
const DoublePressWindow = time.Second

// Side identifies a pane edge.
type Side int

// Edges, in hit-test priority order.
const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Vertical reports whether the side resizes height.
func (s Side) Vertical() bool { return s == SideTop || s == SideBottom }

type axis int

const (
	axisHorizontal axis = iota
	axisVertical
)

func (s Side) axis() axis {
	if s.Vertical() {
		return axisVertical
	}
	return axisHorizontal
}

// Options configure a pane.
type Options struct {
	Sides     Sides
	Width     int
	Height    int
	MinWidth  int
	MinHeight int
	// MaxWidth and MaxHeight bound drags; zero means unbounded.
	MaxWidth  int
	MaxHeight int
	// BorderSize selects the border weight; presentation only.
	BorderSize int
	Frames     *FrameSet
	Logger     *zerolog.Logger
	Now        func() time.Time
}

// Pane is a bordered container whose enabled edges are drag handles.
// Coordinates passed to HandleMouse are relative to the pane's top-left
// corner; drags track absolute deltas so the origin may move mid-drag.
type Pane struct {
	opts       Options
	width      int
	height     int
	drag       *DragSession
	armed      map[axis]time.Time
	userSelect bool
	closed     bool
	logger     zerolog.Logger
}

// New builds a pane. Width and height are clamped to the configured bounds.
func New(opts Options) *Pane {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Frames == nil {
		opts.Frames = NewFrameSet()
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	p := &Pane{
		opts:       opts,
		armed:      make(map[axis]time.Time),
		userSelect: true,
		logger:     logger,
	}
	p.setWidth(opts.Width)
	p.setHeight(opts.Height)
	return p
}

// Sides returns the resolved handles.
func (p *Pane) Sides() Sides { return p.opts.Sides }

// Frames returns the frame registry drags suspend.
func (p *Pane) Frames() *FrameSet { return p.opts.Frames }

// Width returns the outer width, borders included.
func (p *Pane) Width() int { return p.width }

// Height returns the outer height, borders included.
func (p *Pane) Height() int { return p.height }

// UserSelect reports whether content may be selected; false while dragging.
func (p *Pane) UserSelect() bool { return p.userSelect }

// Dragging reports whether a drag session is open.
func (p *Pane) Dragging() bool { return p.drag != nil }

// Session returns the open drag session, if any.
func (p *Pane) Session() *DragSession { return p.drag }

// SetBounds updates the maximum size, typically on terminal resize.
func (p *Pane) SetBounds(maxWidth, maxHeight int) {
	p.opts.MaxWidth = maxWidth
	p.opts.MaxHeight = maxHeight
	p.setWidth(p.width)
	p.setHeight(p.height)
}

// InnerSize is the area left for content inside the borders.
func (p *Pane) InnerSize() (int, int) {
	w := p.width - p.borderCols()
	h := p.height - p.borderRows()
	return max(w, 0), max(h, 0)
}

// ContentOrigin is the offset of the content area inside the pane.
func (p *Pane) ContentOrigin() (int, int) {
	x, y := 0, 0
	if p.opts.Sides.Left {
		x = 1
	}
	if p.opts.Sides.Top {
		y = 1
	}
	return x, y
}

func (p *Pane) borderCols() int {
	n := 0
	if p.opts.Sides.Left {
		n++
	}
	if p.opts.Sides.Right {
		n++
	}
	return n
}

func (p *Pane) borderRows() int {
	n := 0
	if p.opts.Sides.Top {
		n++
	}
	if p.opts.Sides.Bottom {
		n++
	}
	return n
}

// HandleAt returns the handle under the pane-relative point, or SideNone.
func (p *Pane) HandleAt(x, y int) Side {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return SideNone
	}
	s := p.opts.Sides
	switch {
	case s.Left && x == 0:
		return SideLeft
	case s.Right && x == p.width-1:
		return SideRight
	case s.Top && y == 0:
		return SideTop
	case s.Bottom && y == p.height-1:
		return SideBottom
	default:
		return SideNone
	}
}

// HandleMouse processes a pointer event. x and y are pane-relative; the
// message's own coordinates are used for drag deltas. It reports whether the
// event was consumed by the pane. Motion and release must be forwarded from
// anywhere on screen, not only from inside the pane.
func (p *Pane) HandleMouse(msg tea.MouseMsg, x, y int) bool {
	if p.closed {
		return false
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return false
		}
		side := p.HandleAt(x, y)
		if side == SideNone {
			return false
		}
		p.press(side, msg.X, msg.Y)
		return true

	case tea.MouseActionMotion:
		if p.drag == nil {
			return false
		}
		pos := msg.X
		if p.drag.side.Vertical() {
			pos = msg.Y
		}
		p.drag.move(pos)
		return true

	case tea.MouseActionRelease:
		if p.drag == nil {
			return false
		}
		p.logger.Debug().
			Str("side", p.drag.side.String()).
			Int("width", p.width).
			Int("height", p.height).
			Msg("resize finished")
		p.drag.Close()
		return true
	}
	return false
}

func (p *Pane) press(side Side, absX, absY int) {
	now := p.opts.Now()
	ax := side.axis()

	if armedAt, ok := p.armed[ax]; ok && now.Sub(armedAt) < DoublePressWindow {
		p.snap(side)
		return
	}
	p.armed[ax] = now

	if p.drag != nil {
		p.drag.Close()
	}
	pos := absX
	if side.Vertical() {
		pos = absY
	}
	p.drag = openSession(p, side, pos)
	p.logger.Debug().Str("side", side.String()).Int("pos", pos).Msg("resize started")
}

func (p *Pane) snap(side Side) {
	if side.Vertical() {
		p.setHeight(p.opts.MinHeight)
	} else {
		p.setWidth(p.opts.MinWidth)
	}
	p.logger.Debug().
		Str("side", side.String()).
		Int("width", p.width).
		Int("height", p.height).
		Msg("snapped to minimum")
}

func (p *Pane) setWidth(w int) {
	lo := max(p.opts.MinWidth, p.borderCols())
	if p.opts.MaxWidth > 0 && w > p.opts.MaxWidth {
		w = p.opts.MaxWidth
	}
	p.width = max(w, lo)
}

func (p *Pane) setHeight(h int) {
	lo := max(p.opts.MinHeight, p.borderRows())
	if p.opts.MaxHeight > 0 && h > p.opts.MaxHeight {
		h = p.opts.MaxHeight
	}
	p.height = max(h, lo)
}

// Close ends any drag and stops the pane reacting to input.
func (p *Pane) Close() {
	if p.drag != nil {
		p.drag.Close()
	}
	p.closed = true
}

// Render draws content inside the pane's borders, clipped to the inner size.
func (p *Pane) Render(content string) string {
	w, h := p.InnerSize()
	s := p.opts.Sides

	border := lipgloss.NormalBorder()
	if p.opts.BorderSize > 1 {
		border = lipgloss.ThickBorder()
	}
	color := lipgloss.Color("240")
	if p.drag != nil {
		color = lipgloss.Color("205")
	}

	style := lipgloss.NewStyle().
		Border(border, s.Top, s.Right, s.Bottom, s.Left).
		BorderForeground(color).
		Width(w).
		Height(h)

	return style.Render(clip(content, w, h))
}

func clip(content string, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, w, "")
	}
	return strings.Join(lines, "\n")
}
