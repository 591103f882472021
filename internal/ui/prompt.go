package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/lapse-browser/internal/archive"
	"github.com/atomicstack/lapse-browser/internal/logging/events"
)

// confirmPrompt asks before deleting files.
type confirmPrompt struct {
	targets []archive.File
	input   textinput.Model
}

func newConfirmPrompt(targets []archive.File) *confirmPrompt {
	in := textinput.New()
	in.Prompt = fmt.Sprintf("Delete %s? (y/n) ", describeTargets(targets))
	in.CharLimit = 3
	in.Cursor.SetMode(cursor.CursorStatic)
	if styles.Prompt != nil {
		in.PromptStyle = *styles.Prompt
	}
	in.Focus()
	return &confirmPrompt{targets: targets, input: in}
}

func describeTargets(targets []archive.File) string {
	if len(targets) == 1 {
		return targets[0].Name
	}
	return fmt.Sprintf("%d files", len(targets))
}

func (p *confirmPrompt) answer() (confirmed, decided bool) {
	switch strings.ToLower(strings.TrimSpace(p.input.Value())) {
	case "y", "yes":
		return true, true
	case "n", "no", "":
		return false, true
	}
	return false, false
}

func (p *confirmPrompt) view() string {
	return p.input.View()
}

// confirmDelete opens the prompt for the selected files, or the file under
// the cursor when nothing is selected.
func (m *Model) confirmDelete() tea.Cmd {
	var targets []archive.File
	for _, item := range m.files.Selected() {
		if !item.Disabled {
			targets = append(targets, item.Value)
		}
	}
	if len(targets) == 0 {
		if item := m.cursorItem(); item != nil && !item.Disabled {
			targets = append(targets, item.Value)
		}
	}
	if len(targets) == 0 {
		m.setInfo("Nothing to delete")
		return nil
	}
	ids := make([]string, len(targets))
	for i, f := range targets {
		ids[i] = archive.FileID(f)
	}
	events.Archive.DeletePrompt(ids)
	m.forceClearInfo()
	m.prompt = newConfirmPrompt(targets)
	return nil
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.prompt = nil
		return tea.Quit
	case tea.KeyEsc:
		m.cancelPrompt("escape")
		return nil
	case tea.KeyEnter:
		confirmed, decided := m.prompt.answer()
		if !decided {
			m.errMsg = "answer y or n"
			m.prompt.input.SetValue("")
			return nil
		}
		if !confirmed {
			m.cancelPrompt("declined")
			return nil
		}
		targets := m.prompt.targets
		m.prompt = nil
		m.errMsg = ""
		return m.startDelete(targets)
	}
	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return cmd
}

func (m *Model) cancelPrompt(reason string) {
	events.Archive.DeleteCancel(reason)
	m.prompt = nil
	m.errMsg = ""
}
