package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/lapse-browser/internal/archive"
	"github.com/atomicstack/lapse-browser/internal/backend"
	"github.com/atomicstack/lapse-browser/internal/data/dispatcher"
	"github.com/atomicstack/lapse-browser/internal/listview"
	"github.com/atomicstack/lapse-browser/internal/logging/events"
	"github.com/atomicstack/lapse-browser/internal/state"
	"github.com/atomicstack/lapse-browser/internal/theme"
	"github.com/atomicstack/lapse-browser/internal/ui/command"
	uistate "github.com/atomicstack/lapse-browser/internal/ui/state"
)

var styles = theme.Default()

const filesListName = "files"

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Dir           string
	PageSize      int
	PagerWindow   int
	SortColumn    string
	SortAscending bool
	Width         int
	Height        int
	ShowFooter    bool
	SelectNew     bool
	Verbose       bool
}

// Model implements the Bubble Tea model for the archive browser.
type Model struct {
	files      *dispatcher.FileList
	store      state.ArchiveStore
	dispatcher *dispatcher.Dispatcher
	backend    *backend.Watcher
	bus        *command.Bus

	cursor uistate.Cursor
	keys   keyMap
	help   help.Model
	prompt *confirmPrompt

	loading     bool
	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	now         func() time.Time

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state. watcher may be nil, in which case files
// arrive only through backend event messages sent by the caller.
func NewModel(opts Options, watcher *backend.Watcher) *Model {
	dir := opts.Dir
	if watcher != nil {
		dir = watcher.Dir()
	}
	m := &Model{
		store:      state.NewArchiveStore(dir),
		backend:    watcher,
		bus:        command.New(),
		keys:       defaultKeys(),
		help:       help.New(),
		loading:    true,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		now:        time.Now,
	}
	sortColumn := archive.SortKey(opts.SortColumn)
	if sortColumn == "" {
		sortColumn = archive.ColumnName
		opts.SortAscending = true
	}
	m.files = listview.New[archive.File, archive.File](
		archive.FileID,
		listview.Identity[archive.File],
		archive.Columns(m.clock),
		listview.WithName(filesListName),
		listview.WithPageSize(opts.PageSize),
		listview.WithPagerWindow(pagerWindow(opts.PagerWindow)),
		listview.WithSort(sortColumn, opts.SortAscending),
		listview.WithNotify(m.handleListChange),
		listview.WithDiagnostics(events.List.Diagnostics(filesListName)),
	)
	m.dispatcher = dispatcher.New(m.files, m.store)
	m.dispatcher.SelectNewFiles(opts.SelectNew)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.help.Width = opts.Width
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

func pagerWindow(n int) int {
	if n <= 0 {
		return listview.DefaultPagerWindow
	}
	return n
}

func (m *Model) clock() time.Time {
	if m.now == nil {
		return time.Now()
	}
	return m.now()
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend == nil {
		return nil
	}
	return waitForBackendEvent(m.backend)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
		reflect.TypeOf(deleteResultMsg{}):   m.handleDeleteResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// handleListChange receives every list mutation. Callers that change the
// page length clamp the cursor once their batch is done.
func (m *Model) handleListChange(c listview.Change) {
	events.List.Change(c)
	switch c.Kind {
	case listview.ChangePage, listview.ChangePageSize, listview.ChangeSort:
		m.cursor.Row = 0
	}
}

// Files exposes the list backing the view.
func (m *Model) Files() *dispatcher.FileList {
	return m.files
}

// Store exposes the archive totals shown in the title.
func (m *Model) Store() state.ArchiveStore {
	return m.store
}

func (m *Model) cursorItem() *listview.Item[archive.File] {
	page := m.files.CurrentPage()
	if len(page) == 0 {
		return nil
	}
	m.cursor.Clamp(len(page))
	return page[m.cursor.Row]
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
		m.help.Width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}
