package listview

import (
	"errors"
	"fmt"
	"strconv"
)

// MinPagerWindow is the smallest window able to show the first page, the
// last page, the current page and an ellipsis.
const MinPagerWindow = 6

// ErrPagerWindowTooSmall reports a pager window below MinPagerWindow.
var ErrPagerWindowTooSmall = errors.New("pager window too small")

// SlotKind distinguishes clickable page links from ellipsis placeholders.
type SlotKind int

const (
	SlotLink SlotKind = iota
	SlotEllipsis
)

// Slot is one entry of a rendered pager.
type Slot struct {
	Kind SlotKind
	// Page is the zero-based page index for links; unused for ellipses.
	Page int
}

// Link returns a slot pointing at page.
func Link(page int) Slot {
	return Slot{Kind: SlotLink, Page: page}
}

// Ellipsis returns a non-clickable gap slot.
func Ellipsis() Slot {
	return Slot{Kind: SlotEllipsis}
}

// IsEllipsis reports whether the slot is a gap.
func (s Slot) IsEllipsis() bool {
	return s.Kind == SlotEllipsis
}

// Label is the text shown for the slot: one-based page number or "…".
func (s Slot) Label() string {
	if s.IsEllipsis() {
		return "…"
	}
	return strconv.Itoa(s.Page + 1)
}

func (s Slot) String() string {
	if s.IsEllipsis() {
		return "Ellipsis"
	}
	return fmt.Sprintf("Link(%d)", s.Page)
}

// NumPages returns how many pages totalItems fill. It is zero only when
// there are no items. Page sizes below one are treated as one.
func NumPages(totalItems, pageSize int) int {
	if totalItems <= 0 {
		return 0
	}
	if pageSize < 1 {
		pageSize = 1
	}
	return (totalItems + pageSize - 1) / pageSize
}

// Pager computes the windowed pager for the given position. The first and
// last pages are always linked; when there are more pages than windowSize
// slots, one or two ellipses stand in for the pages that do not fit.
func Pager(totalItems, pageSize, currentPageIndex, windowSize int) ([]Slot, error) {
	if windowSize < MinPagerWindow {
		return nil, fmt.Errorf("%w: %d slots, need at least %d", ErrPagerWindowTooSmall, windowSize, MinPagerWindow)
	}
	numPages := NumPages(totalItems, pageSize)
	if numPages == 0 {
		return nil, nil
	}
	visible := min(windowSize, numPages)
	last := visible - 1
	slots := make([]Slot, visible)
	slots[0] = Link(0)
	slots[last] = Link(numPages - 1)

	switch {
	case numPages <= windowSize:
		for i := 1; i < last; i++ {
			slots[i] = Link(i)
		}
	case currentPageIndex < windowSize-3:
		// near the start
		for i := 1; i < last-1; i++ {
			slots[i] = Link(i)
		}
		slots[last-1] = Ellipsis()
	case currentPageIndex >= numPages-windowSize+3:
		// near the end
		slots[1] = Ellipsis()
		for i := 2; i < last; i++ {
			slots[i] = Link(numPages - visible + i)
		}
	default:
		midpoint := (windowSize - 4) / 2
		slots[1] = Ellipsis()
		slots[last-1] = Ellipsis()
		for i := 2; i < last-1; i++ {
			slots[i] = Link(currentPageIndex - midpoint + (i - 2))
		}
	}
	return slots, nil
}
