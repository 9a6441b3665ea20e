// Package debounce delays a Bubble Tea message until a burst of triggers has
// gone quiet. Each trigger supersedes the previous one; only the tick issued
// by the last trigger is accepted.
package debounce

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FiredMsg is delivered when a debounce delay elapses. Owners must pass it
// through Accept before acting on it.
type FiredMsg struct {
	Name string
	seq  uint64
}

// Debouncer issues tagged ticks. The zero value is not usable; use New.
type Debouncer struct {
	name   string
	delay  time.Duration
	seq     uint64
	pending bool
	closed  bool
}

// New returns a debouncer. name distinguishes debouncers that share a model.
func New(name string, delay time.Duration) *Debouncer {
	return &Debouncer{name: name, delay: delay}
}

// Delay returns the configured delay.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Trigger supersedes any pending tick and schedules a new one.
func (d *Debouncer) Trigger() tea.Cmd {
	if d.closed {
		return nil
	}
	d.seq++
	d.pending = true
	seq, name := d.seq, d.name
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return FiredMsg{Name: name, seq: seq}
	})
}

// Accept reports whether msg is the tick of the most recent trigger.
func (d *Debouncer) Accept(msg FiredMsg) bool {
	if d.closed || msg.Name != d.name || msg.seq != d.seq || !d.pending {
		return false
	}
	d.pending = false
	return true
}

// Pending reports whether the latest trigger has not fired yet.
func (d *Debouncer) Pending() bool {
	return d.pending
}

// Close drops any pending tick and refuses further triggers.
func (d *Debouncer) Close() {
	d.closed = true
	d.pending = false
	d.seq++
}
