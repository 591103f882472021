package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestDefaultStylesPopulated(t *testing.T) {
	s := Default()
	for name, style := range map[string]*lipgloss.Style{
		"title":        s.Title,
		"header":       s.Header,
		"row":          s.Row,
		"cursor":       s.CursorRow,
		"pagerCurrent": s.PagerCurrent,
		"error":        s.Error,
		"footer":       s.Footer,
	} {
		if style == nil {
			t.Fatalf("style %s is nil", name)
		}
	}
	if Default() != s {
		t.Fatalf("expected Default to return the shared style set")
	}
}
