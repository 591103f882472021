package command

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type doneMsg struct{ n int }

func TestExecuteRunsAction(t *testing.T) {
	calls := 0
	cmd := New().Execute(Request{ID: "archive:delete", Label: "delete", Run: func() tea.Msg {
		calls++
		return doneMsg{n: 2}
	}})
	if cmd == nil {
		t.Fatalf("expected command")
	}
	if calls != 0 {
		t.Fatalf("expected action deferred until the command runs")
	}
	msg, ok := cmd().(doneMsg)
	if !ok || msg.n != 2 {
		t.Fatalf("expected doneMsg{2}, got %#v", msg)
	}
	if calls != 1 {
		t.Fatalf("expected one call, got %d", calls)
	}
}

func TestExecuteWithoutAction(t *testing.T) {
	cmd := New().Execute(Request{ID: "noop"})
	if msg := cmd(); msg != nil {
		t.Fatalf("expected nil message, got %#v", msg)
	}
	cmd = New().Execute(Request{ID: "nil", Run: func() tea.Msg { return nil }})
	if msg := cmd(); msg != nil {
		t.Fatalf("expected nil message, got %#v", msg)
	}
}
