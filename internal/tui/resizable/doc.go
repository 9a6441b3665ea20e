// Package resizable provides a bordered Bubble Tea container whose edges can
// be dragged to resize it.
//
// Which edges act as handles is configured with a Spec, resolved once with
// ResolveSides. Pressing a handle opens a DragSession; every registered Frame
// stops consuming pointer events until the session is released by a pointer
// release or by closing the pane. A second press on a handle of the same axis
// within DoublePressWindow snaps that dimension to its minimum instead of
// starting a drag.
package resizable
