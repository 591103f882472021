package listview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/paginator"
)

const (
	DefaultPageSize    = 10
	DefaultPagerWindow = 11
)

// DefaultPageSizeOptions are the page sizes offered when none are configured.
var DefaultPageSizeOptions = []int{10, 25, 50, 100}

// ChangeKind identifies the mutation reported to the notification sink.
type ChangeKind int

const (
	ChangeSet ChangeKind = iota
	ChangeAdd
	ChangeRemove
	ChangeReplace
	ChangeClear
	ChangeSelect
	ChangeDisable
	ChangePage
	ChangePageSize
	ChangeSort
)

var changeNames = [...]string{
	ChangeSet:      "set",
	ChangeAdd:      "add",
	ChangeRemove:   "remove",
	ChangeReplace:  "replace",
	ChangeClear:    "clear",
	ChangeSelect:   "select",
	ChangeDisable:  "disable",
	ChangePage:     "page",
	ChangePageSize: "page-size",
	ChangeSort:     "sort",
}

func (k ChangeKind) String() string {
	if k < 0 || int(k) >= len(changeNames) {
		return fmt.Sprintf("ChangeKind(%d)", int(k))
	}
	return changeNames[k]
}

// Change describes a completed mutation. ID is set for single-item changes.
type Change struct {
	List string
	Kind ChangeKind
	ID   string
}

// Option customises a List.
type Option func(*settings)

type settings struct {
	name            string
	pageSize        int
	pageSizeOptions []int
	pagerWindow     int
	sortColumnID    string
	sortAscending   bool
	notify          func(Change)
	diagnostics     func(error)
}

// WithName labels the list in notifications and diagnostics.
func WithName(name string) Option {
	return func(s *settings) { s.name = name }
}

// WithPageSize sets the initial page size. Values below one are ignored.
func WithPageSize(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithPageSizeOptions sets the page sizes a host may cycle through.
func WithPageSizeOptions(sizes ...int) Option {
	return func(s *settings) {
		valid := make([]int, 0, len(sizes))
		for _, n := range sizes {
			if n > 0 {
				valid = append(valid, n)
			}
		}
		if len(valid) > 0 {
			s.pageSizeOptions = valid
		}
	}
}

// WithPagerWindow sets how many slots Pager may return.
func WithPagerWindow(n int) Option {
	return func(s *settings) { s.pagerWindow = n }
}

// WithSort sets the initial sort key and direction.
func WithSort(sortColumnID string, ascending bool) Option {
	return func(s *settings) {
		s.sortColumnID = sortColumnID
		s.sortAscending = ascending
	}
}

// WithNotify installs the sink invoked after every mutation.
func WithNotify(fn func(Change)) Option {
	return func(s *settings) { s.notify = fn }
}

// WithDiagnostics installs the sink receiving configuration errors that are
// never returned to callers, such as an undersized pager window.
func WithDiagnostics(fn func(error)) Option {
	return func(s *settings) { s.diagnostics = fn }
}

// List is the collection controller. R is the raw record type handed in by
// collaborators and T the payload rendered by the host.
type List[R, T any] struct {
	name    string
	id      IDFunc[R]
	wrap    WrapFunc[R, T]
	items   []*Item[T]
	columns []Column[T]
	seq     int

	// pages holds PerPage and Page; TotalPages is refreshed by repairPage.
	pages           paginator.Model
	pageSizeOptions []int
	pagerWindow     int

	sortColumnID  string
	sortAscending bool

	notify      func(Change)
	diagnostics func(error)
}

// New constructs an empty List.
func New[R, T any](id IDFunc[R], wrap WrapFunc[R, T], columns []Column[T], opts ...Option) *List[R, T] {
	cfg := settings{
		pageSize:        DefaultPageSize,
		pageSizeOptions: DefaultPageSizeOptions,
		pagerWindow:     DefaultPagerWindow,
		sortAscending:   true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	pages := paginator.New()
	pages.PerPage = cfg.pageSize
	pages.Page = 0
	l := &List[R, T]{
		name:            cfg.name,
		id:              id,
		wrap:            wrap,
		columns:         append([]Column[T](nil), columns...),
		pages:           pages,
		pageSizeOptions: append([]int(nil), cfg.pageSizeOptions...),
		pagerWindow:     cfg.pagerWindow,
		sortColumnID:    cfg.sortColumnID,
		sortAscending:   cfg.sortAscending,
		notify:          cfg.notify,
		diagnostics:     cfg.diagnostics,
	}
	l.repairPage()
	return l
}

// Name returns the label given with WithName.
func (l *List[R, T]) Name() string {
	return l.name
}

func (l *List[R, T]) newItem(raw R, selected bool) *Item[T] {
	l.seq++
	return &Item[T]{
		ID:       l.id(raw),
		Selected: selected,
		Value:    l.wrap(raw),
		Seq:      l.seq,
	}
}

// Set replaces the whole collection. onEachAdded, when non-nil, is invoked
// once per new item in input order.
func (l *List[R, T]) Set(raw []R, onEachAdded func(*Item[T])) {
	items := make([]*Item[T], 0, len(raw))
	for _, r := range raw {
		item := l.newItem(r, false)
		items = append(items, item)
		if onEachAdded != nil {
			onEachAdded(item)
		}
	}
	l.items = items
	l.repairPage()
	l.emit(ChangeSet, "")
}

// Add appends raw to the collection. Its sorted position is picked up on the
// next read of a derived view. The id must not already be present.
func (l *List[R, T]) Add(raw R) *Item[T] {
	return l.add(raw, false)
}

// AddSelected is Add for items that should start selected.
func (l *List[R, T]) AddSelected(raw R) *Item[T] {
	return l.add(raw, true)
}

func (l *List[R, T]) add(raw R, selected bool) *Item[T] {
	item := l.newItem(raw, selected)
	if debugChecks && l.Index(item.ID) >= 0 {
		panic(fmt.Sprintf("listview: duplicate id %q added to list %q", item.ID, l.name))
	}
	l.items = append(l.items, item)
	l.repairPage()
	l.emit(ChangeAdd, item.ID)
	return item
}

// Remove deletes and returns the item with id, or nil when absent.
func (l *List[R, T]) Remove(id string) *Item[T] {
	idx := l.Index(id)
	if idx < 0 {
		return nil
	}
	item := l.items[idx]
	l.items = append(l.items[:idx:idx], l.items[idx+1:]...)
	l.repairPage()
	l.emit(ChangeRemove, id)
	return item
}

// Replace swaps the item sharing raw's id for a freshly wrapped one at the
// same position and returns the previous item. Selection, disabled state and
// insertion sequence carry over. Nothing changes when the id is absent.
func (l *List[R, T]) Replace(raw R) *Item[T] {
	id := l.id(raw)
	idx := l.Index(id)
	if idx < 0 {
		return nil
	}
	prev := l.items[idx]
	l.items[idx] = &Item[T]{
		ID:       id,
		Selected: prev.Selected,
		Disabled: prev.Disabled,
		Value:    l.wrap(raw),
		Seq:      prev.Seq,
	}
	l.emit(ChangeReplace, id)
	return prev
}

// Clear removes every item.
func (l *List[R, T]) Clear() {
	l.items = nil
	l.repairPage()
	l.emit(ChangeClear, "")
}

// Get returns the item with id or nil.
func (l *List[R, T]) Get(id string) *Item[T] {
	if idx := l.Index(id); idx >= 0 {
		return l.items[idx]
	}
	return nil
}

// Index returns the position of id in insertion order, or -1.
func (l *List[R, T]) Index(id string) int {
	for i, item := range l.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Len returns the number of items.
func (l *List[R, T]) Len() int {
	return len(l.items)
}

// Empty reports whether the list holds no items.
func (l *List[R, T]) Empty() bool {
	return len(l.items) == 0
}

// Items returns the items in insertion order.
func (l *List[R, T]) Items() []*Item[T] {
	return cloneItems(l.items)
}

// SetDisabled flags an item as busy. It reports whether the id was found.
func (l *List[R, T]) SetDisabled(id string, disabled bool) bool {
	item := l.Get(id)
	if item == nil {
		return false
	}
	if item.Disabled != disabled {
		item.Disabled = disabled
		l.emit(ChangeDisable, id)
	}
	return true
}

// Disabled reports whether the item with id is flagged busy.
func (l *List[R, T]) Disabled(id string) bool {
	item := l.Get(id)
	return item != nil && item.Disabled
}

// Columns returns the configured columns.
func (l *List[R, T]) Columns() []Column[T] {
	return append([]Column[T](nil), l.columns...)
}

// VisibleColumns returns the columns that are not hidden.
func (l *List[R, T]) VisibleColumns() []Column[T] {
	out := make([]Column[T], 0, len(l.columns))
	for _, c := range l.columns {
		if !c.Hidden {
			out = append(out, c)
		}
	}
	return out
}

// Sorted returns every item ordered by the active sort key.
func (l *List[R, T]) Sorted() []*Item[T] {
	return SortItems(l.items, l.columns, l.sortColumnID, l.sortAscending)
}

// CurrentPage returns the slice of the sorted view on the active page.
func (l *List[R, T]) CurrentPage() []*Item[T] {
	sorted := l.Sorted()
	start, end := l.pages.GetSliceBounds(len(sorted))
	if start > end {
		return nil
	}
	return sorted[start:end]
}

// Pager returns the windowed pager for the active page. An invalid window is
// reported to the diagnostics sink and yields an empty pager.
func (l *List[R, T]) Pager() []Slot {
	slots, err := Pager(len(l.items), l.pages.PerPage, l.pages.Page, l.pagerWindow)
	if err != nil {
		l.report(fmt.Errorf("list %q: %w", l.name, err))
		return nil
	}
	return slots
}

// Paginator returns a copy of the page state for rendering page dots.
func (l *List[R, T]) Paginator() paginator.Model {
	return l.pages
}

// NumPages returns the number of pages, zero when empty.
func (l *List[R, T]) NumPages() int {
	return NumPages(len(l.items), l.pages.PerPage)
}

// PageIndex returns the zero-based active page.
func (l *List[R, T]) PageIndex() int {
	return l.pages.Page
}

// PageSize returns the number of items per page.
func (l *List[R, T]) PageSize() int {
	return l.pages.PerPage
}

// PageSizeOptions returns the page sizes a host may offer.
func (l *List[R, T]) PageSizeOptions() []int {
	return append([]int(nil), l.pageSizeOptions...)
}

// PagerWindow returns the configured pager window.
func (l *List[R, T]) PagerWindow() int {
	return l.pagerWindow
}

// SetPage moves to page index, clamped to the valid range. It reports whether
// the active page changed.
func (l *List[R, T]) SetPage(index int) bool {
	old := l.pages.Page
	l.pages.Page = index
	l.repairPage()
	if l.pages.Page == old {
		return false
	}
	l.emit(ChangePage, "")
	return true
}

// NextPage advances one page when possible.
func (l *List[R, T]) NextPage() bool {
	return l.SetPage(l.pages.Page + 1)
}

// PrevPage goes back one page when possible.
func (l *List[R, T]) PrevPage() bool {
	return l.SetPage(l.pages.Page - 1)
}

// FirstPage moves to the first page.
func (l *List[R, T]) FirstPage() bool {
	return l.SetPage(0)
}

// LastPage moves to the last page.
func (l *List[R, T]) LastPage() bool {
	return l.SetPage(l.NumPages() - 1)
}

// SetPageSize changes the page size, keeping roughly the same items in view.
// Sizes below one are rejected.
func (l *List[R, T]) SetPageSize(size int) bool {
	if size < 1 {
		return false
	}
	old := l.pages.PerPage
	if size == old {
		return false
	}
	l.pages.Page = l.pages.Page * old / size
	l.pages.PerPage = size
	l.repairPage()
	l.emit(ChangePageSize, "")
	return true
}

// CyclePageSize steps through PageSizeOptions in the given direction,
// wrapping at either end.
func (l *List[R, T]) CyclePageSize(forward bool) bool {
	opts := l.pageSizeOptions
	if len(opts) == 0 {
		return false
	}
	idx := -1
	for i, n := range opts {
		if n == l.pages.PerPage {
			idx = i
			break
		}
	}
	switch {
	case idx < 0:
		idx = 0
	case forward:
		idx = (idx + 1) % len(opts)
	default:
		idx = (idx - 1 + len(opts)) % len(opts)
	}
	return l.SetPageSize(opts[idx])
}

// SortColumn returns the active sort key.
func (l *List[R, T]) SortColumn() string {
	return l.sortColumnID
}

// SortAscending reports the active sort direction.
func (l *List[R, T]) SortAscending() bool {
	return l.sortAscending
}

// SetSort sets the sort key and direction directly.
func (l *List[R, T]) SetSort(sortColumnID string, ascending bool) {
	if l.sortColumnID == sortColumnID && l.sortAscending == ascending {
		return
	}
	l.sortColumnID = sortColumnID
	l.sortAscending = ascending
	l.emit(ChangeSort, sortColumnID)
}

// ToggleSort sorts by the column with columnID. Choosing the active column
// flips the direction; a new column starts ascending. Unknown and unsortable
// columns are ignored.
func (l *List[R, T]) ToggleSort(columnID string) bool {
	col, ok := findColumn(l.columns, columnID)
	if !ok || !col.Sortable {
		return false
	}
	if col.SortColumnID == l.sortColumnID {
		l.SetSort(col.SortColumnID, !l.sortAscending)
	} else {
		l.SetSort(col.SortColumnID, true)
	}
	return true
}

// IsSortedBy reports whether the column with columnID drives the active sort.
func (l *List[R, T]) IsSortedBy(columnID string) bool {
	col, ok := findColumn(l.columns, columnID)
	return ok && col.Sortable && col.SortColumnID == l.sortColumnID
}

func (l *List[R, T]) repairPage() {
	n := l.NumPages()
	if l.pages.Page+1 >= n {
		l.pages.Page = n - 1
	}
	if l.pages.Page < 0 {
		l.pages.Page = 0
	}
	l.pages.TotalPages = max(n, 1)
}

func (l *List[R, T]) emit(kind ChangeKind, id string) {
	if l.notify == nil {
		return
	}
	l.notify(Change{List: l.name, Kind: kind, ID: id})
}

func (l *List[R, T]) report(err error) {
	if l.diagnostics == nil || err == nil {
		return
	}
	l.diagnostics(err)
}
