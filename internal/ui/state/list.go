package state

import "github.com/atomicstack/listedit/internal/state"

// List tracks the cursor and viewport over the rendered items.
type List struct {
	Items          []state.Item
	Cursor         int
	ViewportOffset int
}

// NewList constructs a List over items with the cursor on the first row.
func NewList(items []state.Item) *List {
	l := &List{}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the row index for an item id, or -1.
func (l *List) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the item under the cursor.
func (l *List) Current() (state.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return state.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems replaces the rows. The cursor follows the item it was on; when
// that item is gone it stays at the same index, clamped to the new length.
func (l *List) UpdateItems(items []state.Item) {
	prevID := ""
	if item, ok := l.Current(); ok {
		prevID = item.ID
	}
	prevCursor := l.Cursor
	l.Items = cloneItems(items)
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if idx := l.IndexOf(prevID); idx >= 0 {
		l.Cursor = idx
		return
	}
	if prevCursor < 0 {
		prevCursor = 0
	}
	if prevCursor >= len(l.Items) {
		prevCursor = len(l.Items) - 1
	}
	l.Cursor = prevCursor
}

// Select moves the cursor onto id, reporting whether it was found.
func (l *List) Select(id string) bool {
	idx := l.IndexOf(id)
	if idx < 0 {
		return false
	}
	l.Cursor = idx
	return true
}

func cloneItems(items []state.Item) []state.Item {
	dup := make([]state.Item, len(items))
	copy(dup, items)
	return dup
}
