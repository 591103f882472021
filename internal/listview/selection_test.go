package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectAll(t *testing.T) {
	l := newTestList(WithPageSize(3))
	l.Set(records(8), nil)

	l.Select(ScopeAll, true)
	assert.Equal(t, l.Len(), l.SelectedCount())
	assert.True(t, l.AllSelected(ScopeAll))

	l.Select(ScopeAll, false)
	assert.Zero(t, l.SelectedCount())
}

func TestSelectAllOnEmptyListIsNoOp(t *testing.T) {
	calls := 0
	l := newTestList(WithNotify(func(Change) { calls++ }))
	l.Select(ScopeAll, true)
	assert.Zero(t, calls)
	assert.False(t, l.AllSelected(ScopeAll))
}

func TestSelectPageUsesSortedView(t *testing.T) {
	l := newTestList(WithPageSize(3), WithSort("name", false))
	l.Set(records(8), nil)
	require.True(t, l.NextPage())

	l.Select(ScopePage, true)
	assert.Equal(t, len(l.CurrentPage()), l.SelectedCount())
	assert.Equal(t, []string{"r04", "r03", "r02"}, l.SelectedIDs())
	assert.True(t, l.AllSelected(ScopePage))
	assert.False(t, l.AllSelected(ScopeAll))
}

func TestSelectLastPartialPage(t *testing.T) {
	l := newTestList(WithPageSize(3))
	l.Set(records(7), nil)
	l.LastPage()
	l.Select(ScopePage, true)
	assert.Equal(t, 1, l.SelectedCount())
}

func TestToggleScope(t *testing.T) {
	l := newTestList(WithPageSize(2))
	l.Set(records(4), nil)
	l.SetSelected("r00", true)

	l.ToggleScope(ScopePage)
	assert.Equal(t, []string{"r00", "r01"}, l.SelectedIDs())
	l.ToggleScope(ScopePage)
	assert.Zero(t, l.SelectedCount())
}

func TestToggleSingleItem(t *testing.T) {
	l := newTestList()
	l.Set(records(3), nil)

	require.True(t, l.Toggle("r01"))
	assert.True(t, l.Get("r01").Selected)
	require.True(t, l.Toggle("r01"))
	assert.False(t, l.Get("r01").Selected)
	assert.False(t, l.Toggle("missing"))
	assert.False(t, l.SetSelected("missing", true))
}

func TestSelectedFollowsSortAndProjects(t *testing.T) {
	l := newTestList(WithSort("bytes", true))
	l.Set(records(5), nil)
	for _, id := range []string{"r00", "r02", "r03"} {
		l.SetSelected(id, true)
	}

	// bytes: r00=0 r02=4 r03=1
	assert.Equal(t, []string{"r00", "r03", "r02"}, ids(l.Selected()))

	sizes := Project(l, func(item *Item[row]) int { return item.Value.bytes })
	assert.Equal(t, []int{0, 1, 4}, sizes)

	l.ClearSelection()
	assert.Nil(t, l.Selected())
	assert.Nil(t, l.SelectedIDs())
}

func TestSelectionSurvivesRemovalOfOthers(t *testing.T) {
	l := newTestList()
	l.Set(records(4), nil)
	l.SetSelected("r02", true)
	l.Remove("r00")
	l.Remove("r03")
	assert.Equal(t, []string{"r02"}, l.SelectedIDs())
}

func TestScopeString(t *testing.T) {
	assert.Equal(t, "page", ScopePage.String())
	assert.Equal(t, "all", ScopeAll.String())
}
