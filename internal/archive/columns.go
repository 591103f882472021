package archive

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/atomicstack/lapse-browser/internal/format/table"
	"github.com/atomicstack/lapse-browser/internal/listview"
)

// Column identifiers usable with the -sort flag.
const (
	ColumnName      = "name"
	ColumnKind      = "kind"
	ColumnSize      = "size"
	ColumnSizeBytes = "size_bytes"
	ColumnModified  = "modified"
	ColumnAdded     = "added"
)

type fileItem = listview.Item[File]

// SizeText renders a byte count the way the browser displays it.
func SizeText(f File) string {
	if f.IsDir {
		return "-"
	}
	return humanize.Bytes(uint64(f.Size))
}

// AgeText renders the modification time relative to now.
func AgeText(f File, now time.Time) string {
	if f.ModTime.IsZero() {
		return ""
	}
	return humanize.RelTime(f.ModTime, now, "ago", "from now")
}

// Columns returns the list columns for archive files. now anchors the
// relative modification times.
func Columns(now func() time.Time) []listview.Column[File] {
	if now == nil {
		now = time.Now
	}
	return []listview.Column[File]{
		listview.SortableFunc(
			listview.NewColumn(ColumnName, "Name", func(i *fileItem) string { return i.Value.Name }),
			compareNames,
		),
		listview.Sortable(
			listview.NewColumn(ColumnKind, "Kind", func(i *fileItem) string { return string(i.Value.Kind) }),
			func(i *fileItem) string { return string(i.Value.Kind) },
		),
		listview.NewColumn(ColumnSize, "Size", func(i *fileItem) string { return SizeText(i.Value) }).
			SortedBy(ColumnSizeBytes).
			Aligned(table.AlignRight),
		listview.KeyColumn(ColumnSizeBytes, func(i *fileItem) int64 { return i.Value.Size }),
		listview.Sortable(
			listview.NewColumn(ColumnModified, "Modified", func(i *fileItem) string { return AgeText(i.Value, now()) }),
			func(i *fileItem) int64 { return i.Value.ModTime.UnixNano() },
		),
		listview.KeyColumn(ColumnAdded, func(i *fileItem) int { return i.Seq }),
	}
}

// compareNames orders names case-insensitively, falling back to the exact
// name so "B.jpg" and "b.jpg" keep a stable order.
func compareNames(a, b *fileItem) int {
	if c := strings.Compare(strings.ToLower(a.Value.Name), strings.ToLower(b.Value.Name)); c != 0 {
		return c
	}
	return strings.Compare(a.Value.Name, b.Value.Name)
}

// ColumnIDs lists every sortable column id, for flag validation.
func ColumnIDs() []string {
	var ids []string
	for _, c := range Columns(nil) {
		if c.Sortable {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// SortKey resolves a column id to the id of the column holding its sort key,
// so "size" sorts by "size_bytes". Unknown ids are returned unchanged.
func SortKey(id string) string {
	for _, c := range Columns(nil) {
		if c.ID == id && c.Sortable {
			return c.SortColumnID
		}
	}
	return id
}
