package debounce

import (
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type firing struct {
	msg FiredMsg
	at  time.Time
}

// runAsync executes cmd on its own goroutine, mirroring how the Bubble Tea
// runtime executes commands.
func runAsync(wg *sync.WaitGroup, mu *sync.Mutex, out *[]firing, cmd tea.Cmd) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		msg := cmd()
		mu.Lock()
		*out = append(*out, firing{msg: msg.(FiredMsg), at: time.Now()})
		mu.Unlock()
	}()
}

func TestDebouncer_BurstFiresOnce(t *testing.T) {
	d := New("scroll", 200*time.Millisecond)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		firings []firing
		last    time.Time
	)
	for i := range 5 {
		if i > 0 {
			time.Sleep(50 * time.Millisecond)
		}
		cmd := d.Trigger()
		require.NotNil(t, cmd)
		last = time.Now()
		runAsync(&wg, &mu, &firings, cmd)
	}
	wg.Wait()

	require.Len(t, firings, 5)
	accepted := 0
	for _, f := range firings {
		if d.Accept(f.msg) {
			accepted++
			elapsed := f.at.Sub(last)
			assert.GreaterOrEqual(t, elapsed, 190*time.Millisecond)
			assert.Less(t, elapsed, 400*time.Millisecond)
		}
	}
	assert.Equal(t, 1, accepted)
	assert.False(t, d.Pending())
}

func TestDebouncer_AcceptOnlyOnce(t *testing.T) {
	d := New("scroll", time.Millisecond)
	msg := d.Trigger()().(FiredMsg)

	assert.True(t, d.Pending())
	assert.True(t, d.Accept(msg))
	assert.False(t, d.Accept(msg))
}

func TestDebouncer_IgnoresOtherNames(t *testing.T) {
	a := New("a", time.Millisecond)
	b := New("b", time.Millisecond)
	msg := a.Trigger()().(FiredMsg)
	b.Trigger()

	assert.False(t, b.Accept(msg))
	assert.True(t, a.Accept(msg))
}

func TestDebouncer_Close(t *testing.T) {
	d := New("scroll", time.Millisecond)
	msg := d.Trigger()().(FiredMsg)

	d.Close()

	assert.False(t, d.Accept(msg))
	assert.False(t, d.Pending())
	assert.Nil(t, d.Trigger())
}
