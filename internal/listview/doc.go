// Package listview implements a sortable, paginated, selectable collection
// controller shared by every list the browser renders.
//
// A List owns the authoritative, insertion-ordered sequence of wrapped items.
// Everything else is derived on read:
//   - Sorted orders the items by the active sort column (stable).
//   - CurrentPage slices the sorted view using the page size and page index.
//   - Pager computes the windowed set of page links and ellipses.
//
// None of the derived views are cached, so a mutation can never leave one of
// them stale. Mutations (Set, Add, Remove, Replace, selection and paging
// changes) repair the page index before returning and then invoke the
// notification sink supplied with WithNotify.
//
// A List is not safe for concurrent use; hosts drive it from a single event
// loop.
package listview
