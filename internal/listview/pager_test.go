package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func links(pages ...int) []Slot {
	out := make([]Slot, len(pages))
	for i, p := range pages {
		if p < 0 {
			out[i] = Ellipsis()
			continue
		}
		out[i] = Link(p)
	}
	return out
}

// -1 marks an ellipsis in the expectations below.
const gap = -1

func TestNumPages(t *testing.T) {
	for n := 0; n <= 60; n++ {
		for size := 1; size <= 12; size++ {
			got := NumPages(n, size)
			if n == 0 {
				require.Zero(t, got, "n=%d size=%d", n, size)
				continue
			}
			want := n / size
			if n%size != 0 {
				want++
			}
			require.Equal(t, want, got, "n=%d size=%d", n, size)
		}
	}
	assert.Equal(t, 5, NumPages(5, 0), "page size below one counts as one")
}

func TestPager(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		size    int
		current int
		window  int
		want    []Slot
	}{
		{name: "empty", total: 0, size: 10, current: 0, window: 11, want: nil},
		{name: "single page", total: 7, size: 10, current: 0, window: 11, want: links(0)},
		{name: "few pages", total: 23, size: 10, current: 0, window: 11, want: links(0, 1, 2)},
		{name: "exactly window", total: 110, size: 10, current: 5, window: 11, want: links(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)},
		{
			name: "near start", total: 200, size: 10, current: 0, window: 11,
			want: links(0, 1, 2, 3, 4, 5, 6, 7, 8, gap, 19),
		},
		{
			name: "near end", total: 200, size: 10, current: 19, window: 11,
			want: links(0, gap, 11, 12, 13, 14, 15, 16, 17, 18, 19),
		},
		{
			name: "middle", total: 200, size: 10, current: 10, window: 11,
			want: links(0, gap, 7, 8, 9, 10, 11, 12, 13, gap, 19),
		},
		{
			name: "near start window ten", total: 200, size: 10, current: 0, window: 10,
			want: links(0, 1, 2, 3, 4, 5, 6, 7, gap, 19),
		},
		{
			name: "near end window ten", total: 200, size: 10, current: 19, window: 10,
			want: links(0, gap, 12, 13, 14, 15, 16, 17, 18, 19),
		},
		{
			name: "last start case", total: 200, size: 10, current: 7, window: 11,
			want: links(0, 1, 2, 3, 4, 5, 6, 7, 8, gap, 19),
		},
		{
			name: "first middle case", total: 200, size: 10, current: 8, window: 11,
			want: links(0, gap, 5, 6, 7, 8, 9, 10, 11, gap, 19),
		},
		{
			name: "last middle case", total: 200, size: 10, current: 11, window: 11,
			want: links(0, gap, 8, 9, 10, 11, 12, 13, 14, gap, 19),
		},
		{
			name: "first end case", total: 200, size: 10, current: 12, window: 11,
			want: links(0, gap, 11, 12, 13, 14, 15, 16, 17, 18, 19),
		},
		{
			name: "minimum window middle", total: 100, size: 10, current: 5, window: 6,
			want: links(0, gap, 4, 5, gap, 9),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pager(tt.total, tt.size, tt.current, tt.window)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPagerRejectsSmallWindow(t *testing.T) {
	for window := -1; window < MinPagerWindow; window++ {
		slots, err := Pager(200, 10, 0, window)
		require.ErrorIs(t, err, ErrPagerWindowTooSmall)
		assert.Empty(t, slots)
	}
}

// TestPagerShape walks every position for a range of windows and page counts
// and checks the structural guarantees of the pager, recording which layout
// each position produced so all four are known to be reached.
func TestPagerShape(t *testing.T) {
	const (
		layoutPlain = iota
		layoutStart
		layoutEnd
		layoutMiddle
	)
	seen := map[int]int{}
	for window := MinPagerWindow; window <= 13; window++ {
		for numPages := 1; numPages <= 40; numPages++ {
			for current := 0; current < numPages; current++ {
				slots, err := Pager(numPages, 1, current, window)
				require.NoError(t, err)

				require.Len(t, slots, min(window, numPages))
				require.Equal(t, Link(0), slots[0])
				require.Equal(t, Link(numPages-1), slots[len(slots)-1])

				var (
					ellipses    []int
					currentSeen bool
					prevPage    = -1
					prevGap     bool
				)
				for i, s := range slots {
					if s.IsEllipsis() {
						require.False(t, prevGap, "adjacent ellipses window=%d pages=%d current=%d", window, numPages, current)
						ellipses = append(ellipses, i)
						prevGap = true
						continue
					}
					require.Greater(t, s.Page, prevPage, "links must increase")
					if prevGap {
						require.Greater(t, s.Page, prevPage+1, "ellipsis must hide at least one page")
					} else if i > 0 {
						require.Equal(t, prevPage+1, s.Page, "adjacent links must be consecutive")
					}
					if s.Page == current {
						currentSeen = true
					}
					prevPage = s.Page
					prevGap = false
				}
				require.True(t, currentSeen, "current page missing window=%d pages=%d current=%d", window, numPages, current)

				last := len(slots) - 1
				switch {
				case len(ellipses) == 0:
					require.LessOrEqual(t, numPages, window)
					seen[layoutPlain]++
				case len(ellipses) == 2:
					require.Equal(t, []int{1, last - 1}, ellipses)
					seen[layoutMiddle]++
				case ellipses[0] == last-1:
					seen[layoutStart]++
				case ellipses[0] == 1:
					seen[layoutEnd]++
				default:
					t.Fatalf("unexpected ellipsis positions %v", ellipses)
				}
			}
		}
	}
	for _, layout := range []int{layoutPlain, layoutStart, layoutEnd, layoutMiddle} {
		assert.Positive(t, seen[layout], "layout %d never produced", layout)
	}
}

func TestSlotLabels(t *testing.T) {
	assert.Equal(t, "1", Link(0).Label())
	assert.Equal(t, "…", Ellipsis().Label())
	assert.Equal(t, "Link(4)", Link(4).String())
	assert.Equal(t, "Ellipsis", Ellipsis().String())
}
