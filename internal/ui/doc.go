// Package ui contains the Bubble Tea program that browses an archive
// directory as a sortable, paginated and selectable table.
//
// Message flow:
//   - Bubble Tea invokes Model.Update, which routes each tea.Msg through a
//     typed handler registry (key presses, resizes, backend snapshots and
//     delete results).
//   - Key handling (input.go) drives the listview controller directly: paging,
//     sorting, page-size changes and selection. The confirmation prompt
//     (prompt.go) owns the keyboard while it is open.
//
// State ownership:
//   - The file collection lives in a listview.List. Its sorted view, current
//     page and pager are derived on every View call.
//   - Totals shown in the title live in internal/state and are kept in step
//     by the dispatcher, which turns each scan into list mutations.
//   - Deletes run asynchronously through the internal/ui/command bus. Rows are
//     disabled while their delete is in flight.
package ui
