package resizable

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFrame records the pointer-events state it was last given.
type fakeFrame struct {
	enabled bool
	calls   int
}

func (f *fakeFrame) SetPointerEvents(enabled bool) {
	f.enabled = enabled
	f.calls++
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestPane(t *testing.T, sides Sides) (*Pane, *fakeClock, *fakeFrame) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	frames := NewFrameSet()
	frame := &fakeFrame{enabled: true}
	frames.Register(frame)

	p := New(Options{
		Sides:     sides,
		Width:     40,
		Height:    20,
		MinWidth:  10,
		MinHeight: 5,
		MaxWidth:  80,
		MaxHeight: 40,
		Frames:    frames,
		Now:       clock.Now,
	})
	return p, clock, frame
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func TestPane_HandleAt(t *testing.T) {
	p, _, _ := newTestPane(t, Sides{Left: true, Right: true, Bottom: true})

	assert.Equal(t, SideLeft, p.HandleAt(0, 5))
	assert.Equal(t, SideRight, p.HandleAt(39, 5))
	assert.Equal(t, SideBottom, p.HandleAt(5, 19))
	assert.Equal(t, SideNone, p.HandleAt(5, 0), "top is not enabled")
	assert.Equal(t, SideNone, p.HandleAt(5, 5))
	assert.Equal(t, SideNone, p.HandleAt(40, 5))
	assert.Equal(t, SideNone, p.HandleAt(-1, 5))
}

func TestPane_InnerSize(t *testing.T) {
	p, _, _ := newTestPane(t, Sides{Left: true, Top: true})
	w, h := p.InnerSize()
	assert.Equal(t, 39, w)
	assert.Equal(t, 19, h)

	x, y := p.ContentOrigin()
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)
}

func TestPane_DragRight(t *testing.T) {
	p, _, frame := newTestPane(t, AllSides())

	require.True(t, p.HandleMouse(press(39, 5), 39, 5))
	require.True(t, p.Dragging())
	assert.False(t, frame.enabled, "frames are suspended while dragging")
	assert.False(t, p.UserSelect())

	p.HandleMouse(motion(44, 5), 44, 5)
	assert.Equal(t, 45, p.Width())
	p.HandleMouse(motion(42, 5), 42, 5)
	assert.Equal(t, 43, p.Width())

	require.True(t, p.HandleMouse(release(42, 5), 42, 5))
	assert.False(t, p.Dragging())
	assert.True(t, frame.enabled)
	assert.True(t, p.UserSelect())
}

func TestPane_DragLeftAndTopGrowAgainstPointer(t *testing.T) {
	p, clock, _ := newTestPane(t, AllSides())

	p.HandleMouse(press(0, 5), 0, 5)
	p.HandleMouse(motion(-3, 5), -3, 5)
	assert.Equal(t, 43, p.Width())
	p.HandleMouse(release(-3, 5), -3, 5)

	clock.advance(2 * DoublePressWindow)
	p.HandleMouse(press(5, 0), 5, 0)
	p.HandleMouse(motion(5, 4), 5, 4)
	assert.Equal(t, 16, p.Height())
	p.HandleMouse(release(5, 4), 5, 4)
}

func TestPane_DragClampsToBounds(t *testing.T) {
	p, _, _ := newTestPane(t, AllSides())

	p.HandleMouse(press(39, 5), 39, 5)
	p.HandleMouse(motion(200, 5), 200, 5)
	assert.Equal(t, 80, p.Width())
	p.HandleMouse(motion(-200, 5), -200, 5)
	assert.Equal(t, 10, p.Width())
}

func TestPane_DoublePressSnapsToMinimum(t *testing.T) {
	p, clock, frame := newTestPane(t, AllSides())

	p.HandleMouse(press(0, 5), 0, 5)
	p.HandleMouse(motion(-10, 5), -10, 5)
	p.HandleMouse(release(-10, 5), -10, 5)
	require.Equal(t, 50, p.Width())

	clock.advance(300 * time.Millisecond)
	require.True(t, p.HandleMouse(press(0, 5), 0, 5))

	assert.Equal(t, 10, p.Width(), "width snaps to the minimum")
	assert.False(t, p.Dragging(), "a snap does not start a drag")
	assert.True(t, frame.enabled)

	// Further motion does not change the snapped width.
	p.HandleMouse(motion(-20, 5), -20, 5)
	assert.Equal(t, 10, p.Width())
}

func TestPane_DoublePressWindowIsPerAxis(t *testing.T) {
	p, clock, _ := newTestPane(t, AllSides())

	p.HandleMouse(press(0, 5), 0, 5)
	p.HandleMouse(release(0, 5), 0, 5)
	clock.advance(100 * time.Millisecond)

	// A vertical handle is not armed by the horizontal press.
	p.HandleMouse(press(5, 19), 5, 19)
	assert.True(t, p.Dragging())
	assert.Equal(t, 20, p.Height())
	p.HandleMouse(release(5, 19), 5, 19)

	clock.advance(100 * time.Millisecond)
	p.HandleMouse(press(39, 5), 39, 5)
	assert.Equal(t, 10, p.Width(), "right handle shares the horizontal arming")
}

func TestPane_PressAfterWindowStartsDrag(t *testing.T) {
	p, clock, _ := newTestPane(t, AllSides())

	p.HandleMouse(press(0, 5), 0, 5)
	p.HandleMouse(release(0, 5), 0, 5)
	clock.advance(DoublePressWindow)

	p.HandleMouse(press(0, 5), 0, 5)
	assert.True(t, p.Dragging())
	assert.Equal(t, 40, p.Width())
}

func TestPane_CloseRestoresFrames(t *testing.T) {
	p, _, frame := newTestPane(t, AllSides())

	p.HandleMouse(press(39, 5), 39, 5)
	session := p.Session()
	require.NotNil(t, session)
	require.False(t, frame.enabled)

	p.Close()

	assert.True(t, frame.enabled)
	assert.True(t, session.Closed())
	assert.False(t, p.Frames().Suspended())
	assert.False(t, p.HandleMouse(press(39, 5), 39, 5), "closed panes ignore input")

	// Closing the session again does not re-release the frames.
	calls := frame.calls
	session.Close()
	assert.Equal(t, calls, frame.calls)
}

func TestPane_IgnoresNonHandleInput(t *testing.T) {
	p, _, _ := newTestPane(t, AllSides())

	assert.False(t, p.HandleMouse(press(5, 5), 5, 5))
	assert.False(t, p.HandleMouse(motion(6, 6), 6, 6))
	assert.False(t, p.HandleMouse(release(6, 6), 6, 6))

	right := tea.MouseMsg{X: 39, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	assert.False(t, p.HandleMouse(right, 39, 5))
}

func TestPane_NoSides(t *testing.T) {
	p, _, _ := newTestPane(t, ResolveSides(Bool(false)))
	for _, pt := range [][2]int{{0, 0}, {39, 19}, {0, 19}} {
		assert.Equal(t, SideNone, p.HandleAt(pt[0], pt[1]))
	}
}

func TestPane_Render(t *testing.T) {
	p, _, _ := newTestPane(t, AllSides())
	out := p.Render("hello\nworld")

	assert.Equal(t, 40, lipgloss.Width(out))
	assert.Equal(t, 20, lipgloss.Height(out))
	assert.Contains(t, out, "hello")
}

func TestFrameSet_ReferenceCounted(t *testing.T) {
	fs := NewFrameSet()
	a := &fakeFrame{enabled: true}
	fs.Register(a)

	fs.suspend()
	fs.suspend()
	fs.release()
	assert.False(t, a.enabled, "still held by one session")

	late := &fakeFrame{enabled: true}
	unregister := fs.Register(late)
	assert.False(t, late.enabled, "frames registered mid-drag start disabled")

	fs.release()
	assert.True(t, a.enabled)
	assert.True(t, late.enabled)

	fs.release()
	assert.False(t, fs.Suspended())

	unregister()
	assert.Equal(t, 1, fs.Len())
}
