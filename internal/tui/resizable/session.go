package resizable

// DragSession is held from the press on a handle until the matching release.
// While open, registered frames ignore pointer events and the pane's content
// cannot be text-selected. Close restores both exactly once.
type DragSession struct {
	pane    *Pane
	side    Side
	lastPos int
	closed  bool
}

func openSession(p *Pane, side Side, pos int) *DragSession {
	p.opts.Frames.suspend()
	p.userSelect = false
	return &DragSession{pane: p, side: side, lastPos: pos}
}

// Side returns the handle being dragged.
func (s *DragSession) Side() Side { return s.side }

// Closed reports whether the session has been released.
func (s *DragSession) Closed() bool { return s.closed }

// Close ends the session. Safe to call more than once.
func (s *DragSession) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	s.pane.opts.Frames.release()
	s.pane.userSelect = true
	if s.pane.drag == s {
		s.pane.drag = nil
	}
}

// move applies the pointer delta since the previous move.
func (s *DragSession) move(pos int) {
	delta := pos - s.lastPos
	s.lastPos = pos
	if delta == 0 {
		return
	}

	p := s.pane
	switch s.side {
	case SideRight:
		p.setWidth(p.width + delta)
	case SideLeft:
		p.setWidth(p.width - delta)
	case SideBottom:
		p.setHeight(p.height + delta)
	case SideTop:
		p.setHeight(p.height - delta)
	case SideNone:
	}
}
