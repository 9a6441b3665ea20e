// Package listview provides a keyboard- and mouse-driven selectable list for
// Bubble Tea applications, in the style of a file explorer.
//
// The model tracks three pieces of state:
//   - the focused index (-1 when nothing is focused)
//   - the selection set, maintained by the selection package
//   - a snapshot of the rows fully inside the viewport, recomputed on mount
//     and 200ms after the last scroll
//
// Page navigation jumps to the first or last fully visible row. When focus is
// already there, the viewport is scrolled by a page and the snapshot is
// recomputed until a new target appears or the list cannot scroll further.
package listview
