package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	FirstPage  key.Binding
	LastPage   key.Binding
	Toggle     key.Binding
	SelectAll  key.Binding
	SelectPage key.Binding
	Sort       key.Binding
	Reverse    key.Binding
	Grow       key.Binding
	Shrink     key.Binding
	Delete     key.Binding
	Refresh    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevPage:   key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "prev page")),
		NextPage:   key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next page")),
		FirstPage:  key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "first page")),
		LastPage:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "last page")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "select")),
		SelectAll:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all/none")),
		SelectPage: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "page/none")),
		Sort:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort column")),
		Reverse:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reverse")),
		Grow:       key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more rows")),
		Shrink:     key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "fewer rows")),
		Delete:     key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Refresh:    key.NewBinding(key.WithKeys("R", "ctrl+r"), key.WithHelp("R", "rescan")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.NextPage, k.Toggle, k.Sort, k.Delete, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage, k.FirstPage, k.LastPage},
		{k.Toggle, k.SelectAll, k.SelectPage, k.Delete},
		{k.Sort, k.Reverse, k.Grow, k.Shrink},
		{k.Refresh, k.Help, k.Quit},
	}
}
