package listview

import (
	"cmp"

	"github.com/atomicstack/lapse-browser/internal/format/table"
)

// Column describes one displayed or sortable field of the items in a List.
// Columns are values; the builder methods return modified copies.
type Column[T any] struct {
	ID string
	// SortColumnID names the column whose key orders this column. It differs
	// from ID when the displayed text is not a good sort key, for example
	// "1.2 MB" sorting by a hidden byte count column.
	SortColumnID string
	Title        string
	Align        table.Alignment
	Sortable     bool
	Hidden       bool

	text    func(*Item[T]) string
	compare func(a, b *Item[T]) int
}

// NewColumn returns a display-only column.
func NewColumn[T any](id, title string, text func(*Item[T]) string) Column[T] {
	return Column[T]{
		ID:           id,
		SortColumnID: id,
		Title:        title,
		text:         text,
	}
}

// Sortable returns a copy of c ordered by key.
func Sortable[T any, K cmp.Ordered](c Column[T], key func(*Item[T]) K) Column[T] {
	c.Sortable = true
	if c.SortColumnID == "" {
		c.SortColumnID = c.ID
	}
	c.compare = func(a, b *Item[T]) int {
		return cmp.Compare(key(a), key(b))
	}
	return c
}

// SortableFunc returns a copy of c ordered by an explicit three-way compare.
func SortableFunc[T any](c Column[T], compare func(a, b *Item[T]) int) Column[T] {
	c.Sortable = true
	if c.SortColumnID == "" {
		c.SortColumnID = c.ID
	}
	c.compare = compare
	return c
}

// KeyColumn returns a hidden column that only exists to be sorted by.
func KeyColumn[T any, K cmp.Ordered](id string, key func(*Item[T]) K) Column[T] {
	c := Sortable(Column[T]{ID: id, SortColumnID: id}, key)
	c.Hidden = true
	return c
}

// SortedBy returns a copy of c that sorts using the key of column id.
func (c Column[T]) SortedBy(id string) Column[T] {
	c.SortColumnID = id
	c.Sortable = true
	return c
}

// Aligned returns a copy of c with the given alignment.
func (c Column[T]) Aligned(a table.Alignment) Column[T] {
	c.Align = a
	return c
}

// Cell renders the column text for item.
func (c Column[T]) Cell(item *Item[T]) string {
	if c.text == nil || item == nil {
		return ""
	}
	return c.text(item)
}

// HasKey reports whether the column carries its own sort key.
func (c Column[T]) HasKey() bool {
	return c.compare != nil
}

func findColumn[T any](columns []Column[T], id string) (Column[T], bool) {
	for _, c := range columns {
		if c.ID == id {
			return c, true
		}
	}
	return Column[T]{}, false
}
