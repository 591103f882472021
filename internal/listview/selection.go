package listview

import "fmt"

// Scope selects which items a bulk selection applies to.
type Scope int

const (
	// ScopeAll covers every item in the list.
	ScopeAll Scope = iota
	// ScopePage covers the items on the current page of the sorted view.
	ScopePage
)

func (s Scope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopePage:
		return "page"
	}
	return fmt.Sprintf("Scope(%d)", int(s))
}

func (l *List[R, T]) scopeItems(scope Scope) []*Item[T] {
	switch scope {
	case ScopeAll:
		return l.items
	case ScopePage:
		return l.CurrentPage()
	}
	return nil
}

// Select sets the selection flag of every item in scope. Selecting all on an
// empty list is a no-op.
func (l *List[R, T]) Select(scope Scope, on bool) {
	items := l.scopeItems(scope)
	if len(items) == 0 {
		return
	}
	for _, item := range items {
		item.Selected = on
	}
	l.emit(ChangeSelect, "")
}

// AllSelected reports whether scope is non-empty and fully selected.
func (l *List[R, T]) AllSelected(scope Scope) bool {
	items := l.scopeItems(scope)
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if !item.Selected {
			return false
		}
	}
	return true
}

// ToggleScope selects everything in scope unless it is already fully
// selected, in which case it clears scope.
func (l *List[R, T]) ToggleScope(scope Scope) {
	l.Select(scope, !l.AllSelected(scope))
}

// SetSelected sets the flag for one item and reports whether it exists.
func (l *List[R, T]) SetSelected(id string, on bool) bool {
	item := l.Get(id)
	if item == nil {
		return false
	}
	if item.Selected != on {
		item.Selected = on
		l.emit(ChangeSelect, id)
	}
	return true
}

// Toggle flips the selection of one item and reports whether it exists.
func (l *List[R, T]) Toggle(id string) bool {
	item := l.Get(id)
	if item == nil {
		return false
	}
	return l.SetSelected(id, !item.Selected)
}

// ClearSelection deselects every item.
func (l *List[R, T]) ClearSelection() {
	l.Select(ScopeAll, false)
}

// SelectedCount returns the number of selected items.
func (l *List[R, T]) SelectedCount() int {
	n := 0
	for _, item := range l.items {
		if item.Selected {
			n++
		}
	}
	return n
}

// Selected returns the selected items in sorted order.
func (l *List[R, T]) Selected() []*Item[T] {
	var out []*Item[T]
	for _, item := range l.Sorted() {
		if item.Selected {
			out = append(out, item)
		}
	}
	return out
}

// SelectedIDs returns the ids of the selected items in sorted order.
func (l *List[R, T]) SelectedIDs() []string {
	return Project(l, func(item *Item[T]) string { return item.ID })
}

// Project maps the selected items of l through fn, in sorted order. It lets
// callers hand out only the fields they need instead of whole payloads.
func Project[R, T, P any](l *List[R, T], fn func(*Item[T]) P) []P {
	selected := l.Selected()
	if len(selected) == 0 {
		return nil
	}
	out := make([]P, len(selected))
	for i, item := range selected {
		out[i] = fn(item)
	}
	return out
}
