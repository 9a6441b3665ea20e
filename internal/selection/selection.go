// Package selection implements the multi-selection rules of the list:
// single push, toggle, and range toggle anchored on the most recently
// inserted id.
//
// Every operation is a pure function of the current set, the target id and
// the item order. The input set is never modified.
package selection

import "slices"

// Set is an ordered list of unique selected ids. Membership defines what is
// selected; position only records where ids were inserted.
type Set []string

// Order is the item sequence range operations walk over.
type Order interface {
	Len() int
	ID(i int) string
	Disabled(i int) bool
	Index(id string) int
}

// Contains reports whether id is selected.
func (s Set) Contains(id string) bool {
	return slices.Contains(s, id)
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	return slices.Clone(s)
}

// PushSelect adds id when absent, at the front when prepend is set.
func PushSelect(s Set, id string, prepend bool) Set {
	if id == "" || s.Contains(id) {
		return s
	}
	return insert(s, id, prepend)
}

// ToggleSelect removes id when present, otherwise adds it like PushSelect.
func ToggleSelect(s Set, id string, prepend bool) Set {
	if id == "" {
		return s
	}
	if i := slices.Index(s, id); i >= 0 {
		out := make(Set, 0, len(s)-1)
		out = append(out, s[:i]...)
		return append(out, s[i+1:]...)
	}
	return insert(s, id, prepend)
}

func insert(s Set, id string, prepend bool) Set {
	out := make(Set, 0, len(s)+1)
	if prepend {
		out = append(out, id)
		return append(out, s...)
	}
	out = append(out, s...)
	return append(out, id)
}

// SelectAll returns every id of order in item order.
func SelectAll(order Order) Set {
	out := make(Set, order.Len())
	for i := range out {
		out[i] = order.ID(i)
	}
	return out
}

// ToggleRangeSelect selects the span between the anchor and id, where the
// anchor is the last id in selection order (not document order, and not
// focus). Selected neighbours contiguous with the old span on either side
// are dropped so that a shrinking range deselects what it leaves behind.
// Disabled items are never added or removed.
//
// An empty selection selects just id, unless that item is disabled.
// Unknown ids leave the selection unchanged.
func ToggleRangeSelect(s Set, id string, order Order) Set {
	if id == "" {
		return s
	}
	target := order.Index(id)
	if target < 0 {
		return s
	}
	if len(s) == 0 {
		if order.Disabled(target) {
			return s
		}
		return Set{id}
	}

	out := s.Clone()
	anchor := order.Index(out[len(out)-1])

	start, end := anchor+1, target
	if target < anchor {
		start, end = target, anchor-1
	}

	// Stale span before the new range.
	for j := start - 1; j >= 0 && out.Contains(order.ID(j)); j-- {
		if j == anchor {
			continue
		}
		out = removeEnabled(out, order, j)
	}

	i := start
	for ; i <= end; i++ {
		if !order.Disabled(i) && !out.Contains(order.ID(i)) {
			out = insert(out, order.ID(i), true)
		}
	}

	// Stale span after the new range.
	for ; i < order.Len() && out.Contains(order.ID(i)); i++ {
		if i == anchor {
			continue
		}
		out = removeEnabled(out, order, i)
	}

	return out
}

func removeEnabled(s Set, order Order, i int) Set {
	if order.Disabled(i) {
		return s
	}
	idx := slices.Index(s, order.ID(i))
	if idx < 0 {
		return s
	}
	return slices.Delete(s, idx, idx+1)
}
