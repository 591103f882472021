package listview

import "slices"

// SortItems returns a copy of items ordered by the column keyed by
// sortColumnID. The sort is stable in both directions. When no column with a
// sort key matches, the copy keeps the original order.
func SortItems[T any](items []*Item[T], columns []Column[T], sortColumnID string, ascending bool) []*Item[T] {
	sorted := cloneItems(items)
	col, ok := findColumn(columns, sortColumnID)
	if !ok || !col.HasKey() {
		return sorted
	}
	slices.SortStableFunc(sorted, func(a, b *Item[T]) int {
		// equal keys keep insertion order in both directions
		if ascending {
			return col.compare(a, b)
		}
		return col.compare(b, a)
	})
	return sorted
}
