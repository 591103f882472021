package archive

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/lapse-browser/internal/listview"
	"github.com/atomicstack/lapse-browser/internal/testutil"
)

func TestKindOf(t *testing.T) {
	tests := map[string]Kind{
		"frame-0001.JPG": KindSnapshot,
		"print.mp4":      KindTimelapse,
		"settings.zip":   KindArchive,
		"notes.txt":      KindOther,
		"noext":          KindOther,
	}
	for name, want := range tests {
		assert.Equal(t, want, KindOf(name), name)
	}
}

func TestScanListsTopLevel(t *testing.T) {
	dir := testutil.WriteArchive(t,
		testutil.Fixture{Name: "b.mp4", Size: 2048, Age: time.Hour},
		testutil.Fixture{Name: "a.jpg", Size: 10},
		testutil.Fixture{Name: ".hidden", Size: 1},
		testutil.Fixture{Name: "renders", Dir: true},
	)
	testutil.AddFile(t, filepath.Join(dir, "renders"), testutil.Fixture{Name: "nested.mp4", Size: 5})

	snap, err := Scan(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, snap.Dir)
	assert.False(t, snap.ScannedAt.IsZero())

	files := snap.Files
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	require.Len(t, files, 3)

	assert.Equal(t, "a.jpg", files[0].Name)
	assert.Equal(t, KindSnapshot, files[0].Kind)
	assert.EqualValues(t, 10, files[0].Size)

	assert.Equal(t, "b.mp4", files[1].Name)
	assert.Equal(t, filepath.Join(dir, "b.mp4"), files[1].Path)
	assert.True(t, files[1].ModTime.Equal(testutil.Base.Add(-time.Hour)))

	assert.Equal(t, "renders", files[2].Name)
	assert.True(t, files[2].IsDir)
	assert.Equal(t, KindFolder, files[2].Kind)
	assert.Zero(t, files[2].Size)
}

func TestScanMissingDir(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDelete(t *testing.T) {
	dir := testutil.WriteArchive(t, testutil.Fixture{Name: "a.jpg", Size: 1}, testutil.Fixture{Name: "sub", Dir: true})
	snap, err := Scan(dir)
	require.NoError(t, err)
	for _, f := range snap.Files {
		if f.IsDir {
			assert.Error(t, Delete(f))
			continue
		}
		require.NoError(t, Delete(f))
		_, statErr := os.Stat(f.Path)
		assert.ErrorIs(t, statErr, os.ErrNotExist)
		assert.Error(t, Delete(f), "second delete fails")
	}
}

func TestChanged(t *testing.T) {
	base := File{Name: "a", Size: 1, ModTime: testutil.Base}
	assert.False(t, base.Changed(base))
	grown := base
	grown.Size = 2
	assert.True(t, base.Changed(grown))
	touched := base
	touched.ModTime = base.ModTime.Add(time.Second)
	assert.True(t, base.Changed(touched))
}

func TestColumnsSortFilesBySizeBytes(t *testing.T) {
	now := func() time.Time { return testutil.Base }
	l := listview.New(FileID, listview.Identity[File], Columns(now), listview.WithSort(ColumnSizeBytes, false))
	l.Set([]File{
		{Name: "small.jpg", Size: 900},
		{Name: "big.mp4", Size: 5_000_000},
		{Name: "mid.zip", Size: 20_000},
	}, nil)

	var names []string
	for _, item := range l.Sorted() {
		names = append(names, item.ID)
	}
	assert.Equal(t, []string{"big.mp4", "mid.zip", "small.jpg"}, names)
	assert.True(t, l.IsSortedBy(ColumnSize))
}

func TestColumnsSortNamesIgnoringCase(t *testing.T) {
	l := listview.New(FileID, listview.Identity[File], Columns(nil), listview.WithSort(ColumnName, true))
	l.Set([]File{
		{Name: "b.jpg"},
		{Name: "C.jpg"},
		{Name: "B.jpg"},
		{Name: "a.jpg"},
	}, nil)

	var names []string
	for _, item := range l.Sorted() {
		names = append(names, item.ID)
	}
	assert.Equal(t, []string{"a.jpg", "B.jpg", "b.jpg", "C.jpg"}, names)

	l.ToggleSort(ColumnName)
	names = names[:0]
	for _, item := range l.Sorted() {
		names = append(names, item.ID)
	}
	assert.Equal(t, []string{"C.jpg", "b.jpg", "B.jpg", "a.jpg"}, names)
}

func TestColumnCells(t *testing.T) {
	now := func() time.Time { return testutil.Base }
	cols := Columns(now)
	item := &listview.Item[File]{ID: "a", Value: File{Name: "a.mp4", Size: 1_500_000, Kind: KindTimelapse, ModTime: testutil.Base.Add(-2 * time.Hour)}}

	cells := map[string]string{}
	for _, c := range cols {
		cells[c.ID] = c.Cell(item)
	}
	assert.Equal(t, "a.mp4", cells[ColumnName])
	assert.Equal(t, "timelapse", cells[ColumnKind])
	assert.Equal(t, "1.5 MB", cells[ColumnSize])
	assert.Equal(t, "2 hours ago", cells[ColumnModified])
	assert.Equal(t, "-", SizeText(File{IsDir: true}))
}

func TestColumnIDs(t *testing.T) {
	assert.Equal(t, []string{ColumnName, ColumnKind, ColumnSize, ColumnSizeBytes, ColumnModified, ColumnAdded}, ColumnIDs())
}

func TestSortKey(t *testing.T) {
	assert.Equal(t, ColumnSizeBytes, SortKey(ColumnSize))
	assert.Equal(t, ColumnName, SortKey(ColumnName))
	assert.Equal(t, ColumnAdded, SortKey(ColumnAdded))
	assert.Equal(t, "bogus", SortKey("bogus"))
}
