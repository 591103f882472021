package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const columnGap = "  "

// Widths returns the display width of the widest cell in each column.
func Widths(rows [][]string) []int {
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if w := ansi.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

// Format returns the rows padded according to the widest entry in each column.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	return FormatWidths(rows, alignments, Widths(rows))
}

// FormatWidths pads rows to the supplied column widths. Cells wider than
// their column are left as-is.
func FormatWidths(rows [][]string, alignments []Alignment, widths []int) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(columnGap)
			}
			pad := 0
			if c < len(widths) {
				pad = widths[c] - ansi.StringWidth(cell)
			}
			if c < len(alignments) && alignments[c] == AlignRight {
				writeSpaces(&b, pad)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				// no trailing padding on the final column
				if c < len(row)-1 {
					writeSpaces(&b, pad)
				}
			}
		}
		out[i] = b.String()
	}
	return out
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
