package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/lapse-browser/internal/archive"
	"github.com/atomicstack/lapse-browser/internal/format/table"
	"github.com/atomicstack/lapse-browser/internal/listview"
)

const (
	sortUp   = "▲"
	sortDown = "▼"
	// page dots are skipped past this many pages
	maxDots = 30
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	// raw lines already carry ANSI styling and are truncated ANSI-aware
	raw bool
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, m.files.PageSize()+12)
	lines = append(lines, styledLine{text: m.title(), style: styles.Title})
	lines = append(lines, m.tableLines()...)

	if pager := m.pagerLine(); pager != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: pager, raw: true})
		if dots := m.dotsLine(); dots != "" {
			lines = append(lines, styledLine{text: dots, raw: true})
		}
	}
	lines = append(lines, styledLine{text: m.statusLine(), style: styles.Status})
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.errMsg != "" {
		lines = append(lines, styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error})
	} else if err := m.store.LastError(); err != nil {
		lines = append(lines, styledLine{text: fmt.Sprintf("Scan failed: %v", err), style: styles.Error})
	}
	if m.prompt != nil {
		lines = append(lines, styledLine{text: m.prompt.view(), raw: true})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.help.View(m.keys), raw: true})
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) title() string {
	parts := []string{m.store.Dir()}
	n := m.files.Len()
	if n == 1 {
		parts = append(parts, "1 file")
	} else {
		parts = append(parts, fmt.Sprintf("%d files", n))
	}
	parts = append(parts, humanize.Bytes(uint64(max(m.store.TotalBytes(), 0))))
	return strings.Join(parts, " • ")
}

// tableLines renders the header row and the current page.
func (m *Model) tableLines() []styledLine {
	if m.files.Empty() {
		msg := "(no files)"
		if m.loading {
			msg = fmt.Sprintf("Scanning %s…", m.store.Dir())
		}
		return []styledLine{{text: msg, style: styles.Empty}}
	}
	columns := m.files.VisibleColumns()
	page := m.files.CurrentPage()

	rows := make([][]string, 0, len(page)+1)
	header := make([]string, 0, len(columns)+1)
	header = append(header, "   ")
	alignments := make([]table.Alignment, 0, len(columns)+1)
	alignments = append(alignments, table.AlignLeft)
	for _, col := range columns {
		header = append(header, m.columnTitle(col))
		alignments = append(alignments, col.Align)
	}
	rows = append(rows, header)
	for _, item := range page {
		row := make([]string, 0, len(columns)+1)
		row = append(row, checkbox(item))
		for _, col := range columns {
			row = append(row, col.Cell(item))
		}
		rows = append(rows, row)
	}

	formatted := table.FormatWidths(rows, alignments, table.Widths(rows))
	lines := make([]styledLine, 0, len(formatted))
	lines = append(lines, styledLine{text: "  " + formatted[0], style: styles.Header})
	for i, text := range formatted[1:] {
		item := page[i]
		style := styles.Row
		switch {
		case item.Disabled:
			style = styles.Disabled
		case i == m.cursor.Row:
			style = styles.CursorRow
		case item.Selected:
			style = styles.Selected
		}
		prefix := "  "
		if i == m.cursor.Row {
			prefix = "› "
		}
		lines = append(lines, styledLine{text: prefix + text, style: style})
	}
	return lines
}

func (m *Model) columnTitle(col listview.Column[archive.File]) string {
	if !m.files.IsSortedBy(col.ID) {
		return col.Title
	}
	if m.files.SortAscending() {
		return col.Title + " " + sortUp
	}
	return col.Title + " " + sortDown
}

func checkbox(item *listview.Item[archive.File]) string {
	switch {
	case item.Disabled:
		return "[-]"
	case item.Selected:
		return "[x]"
	}
	return "[ ]"
}

// pagerLine renders the numbered page selector, or nothing for a single page.
func (m *Model) pagerLine() string {
	if m.files.NumPages() <= 1 {
		return ""
	}
	slots := m.files.Pager()
	if len(slots) == 0 {
		return ""
	}
	current := m.files.PageIndex()
	parts := make([]string, 0, len(slots)+2)
	parts = append(parts, render(styles.PagerLink, "‹"))
	for _, slot := range slots {
		switch {
		case slot.IsEllipsis():
			parts = append(parts, render(styles.PagerGap, slot.Label()))
		case slot.Page == current:
			parts = append(parts, render(styles.PagerCurrent, "["+slot.Label()+"]"))
		default:
			parts = append(parts, render(styles.PagerLink, slot.Label()))
		}
	}
	parts = append(parts, render(styles.PagerLink, "›"))
	return strings.Join(parts, " ")
}

func (m *Model) dotsLine() string {
	p := m.files.Paginator()
	if p.TotalPages <= 1 || p.TotalPages > maxDots {
		return ""
	}
	p.Type = paginator.Dots
	p.ActiveDot = render(styles.PagerCurrent, "•")
	p.InactiveDot = render(styles.PagerGap, "•")
	return p.View()
}

func (m *Model) statusLine() string {
	parts := []string{fmt.Sprintf("%d of %d selected", m.files.SelectedCount(), m.files.Len())}
	if n := m.files.NumPages(); n > 0 {
		parts = append(parts, fmt.Sprintf("page %d/%d", m.files.PageIndex()+1, n))
	}
	parts = append(parts, fmt.Sprintf("%d per page", m.files.PageSize()))
	if col := m.files.SortColumn(); col != "" {
		dir := sortUp
		if !m.files.SortAscending() {
			dir = sortDown
		}
		parts = append(parts, fmt.Sprintf("sort %s %s", col, dir))
	}
	return strings.Join(parts, " • ")
}

func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw || line.style == nil {
			out[i] = line.text
			continue
		}
		out[i] = line.style.Render(line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return "…"
	}
	return truncate.StringWithTail(text, uint(width-1), "…")
}
