package listview

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	revealFPS       = 60
	revealFrequency = 8.0
	revealDamping   = 1.0
	// revealSettle is how close position and velocity must be to rest
	// before the animation snaps to its target.
	revealSettle = 0.5
)

type revealFrameMsg struct {
	seq uint64
}

type revealState struct {
	active bool
	seq    uint64
	pos    float64
	vel    float64
	target int
	spring harmonica.Spring
}

// Revealing reports whether a reveal animation is running.
func (m *Model) Revealing() bool { return m.reveal.active }

// startReveal scrolls the focused row to RevealRatio of the viewport height
// below the top, animated with a critically damped spring.
func (m *Model) startReveal() tea.Cmd {
	if m.focused < 0 || m.focused >= len(m.layout) {
		return nil
	}

	s := m.layout[m.focused]
	target := s.top - int(float64(m.viewport.Height)*m.opts.RevealRatio)
	target = min(max(target, 0), m.maxYOffset())

	m.reveal = revealState{
		active: true,
		seq:    m.reveal.seq + 1,
		pos:    float64(m.viewport.YOffset),
		target: target,
		spring: harmonica.NewSpring(harmonica.FPS(revealFPS), revealFrequency, revealDamping),
	}
	if target == m.viewport.YOffset {
		m.reveal.active = false
		return nil
	}
	return m.revealTick()
}

func (m *Model) revealTick() tea.Cmd {
	seq := m.reveal.seq
	return tea.Tick(time.Second/revealFPS, func(time.Time) tea.Msg {
		return revealFrameMsg{seq: seq}
	})
}

// stepReveal advances the animation by one frame.
func (m *Model) stepReveal(msg revealFrameMsg) tea.Cmd {
	r := &m.reveal
	if !r.active || msg.seq != r.seq {
		return nil
	}

	r.pos, r.vel = r.spring.Update(r.pos, r.vel, float64(r.target))

	done := math.Abs(r.pos-float64(r.target)) < revealSettle && math.Abs(r.vel) < revealSettle
	next := int(math.Round(r.pos))
	if done {
		next = r.target
		r.active = false
	}

	var cmds []tea.Cmd
	if m.scrollTo(next) {
		cmds = append(cmds, m.onScroll())
	}
	if r.active {
		cmds = append(cmds, m.revealTick())
	}
	return tea.Batch(cmds...)
}
