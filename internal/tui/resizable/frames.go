package resizable

// Frame is an embedded component that consumes pointer events. Frames are
// told to stop consuming them while a pane is being dragged so that motion
// over them still reaches the drag.
type Frame interface {
	SetPointerEvents(enabled bool)
}

// FrameSet is the registry of frames affected by drags. Suspension is
// reference counted: frames are re-enabled when the last drag session
// releases them.
type FrameSet struct {
	frames []Frame
	depth  int
}

// NewFrameSet returns an empty registry.
func NewFrameSet() *FrameSet {
	return &FrameSet{}
}

// Register adds a frame and returns a function removing it again. A frame
// registered while suspended starts out disabled.
func (f *FrameSet) Register(fr Frame) func() {
	f.frames = append(f.frames, fr)
	if f.depth > 0 {
		fr.SetPointerEvents(false)
	}
	return func() {
		for i, existing := range f.frames {
			if existing == fr {
				f.frames = append(f.frames[:i], f.frames[i+1:]...)
				if f.depth > 0 {
					fr.SetPointerEvents(true)
				}
				return
			}
		}
	}
}

// Suspended reports whether any drag session holds the frames.
func (f *FrameSet) Suspended() bool {
	return f != nil && f.depth > 0
}

// Len returns the number of registered frames.
func (f *FrameSet) Len() int {
	if f == nil {
		return 0
	}
	return len(f.frames)
}

func (f *FrameSet) suspend() {
	if f == nil {
		return
	}
	f.depth++
	if f.depth == 1 {
		f.setAll(false)
	}
}

func (f *FrameSet) release() {
	if f == nil || f.depth == 0 {
		return
	}
	f.depth--
	if f.depth == 0 {
		f.setAll(true)
	}
}

func (f *FrameSet) setAll(enabled bool) {
	for _, fr := range f.frames {
		fr.SetPointerEvents(enabled)
	}
}
