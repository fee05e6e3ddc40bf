package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding of the page. Grid bindings are only active on
// the Breeds tab, where they take precedence over the arrow keys of the
// carousel.
type keyMap struct {
	PrevImage key.Binding
	NextImage key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Tab1      key.Binding
	Tab2      key.Binding
	Tab3      key.Binding
	Tab4      key.Binding
	Like      key.Binding
	Pause     key.Binding
	SkipFact  key.Binding
	CopyURL   key.Binding
	GridUp    key.Binding
	GridDown  key.Binding
	GridLeft  key.Binding
	GridRight key.Binding
	Select    key.Binding
	Filter    key.Binding
	Clear     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevImage: key.NewBinding(key.WithKeys("left", "h", "["), key.WithHelp("←/[", "prev image")),
		NextImage: key.NewBinding(key.WithKeys("right", "l", "]"), key.WithHelp("→/]", "next image")),
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Tab1:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "about")),
		Tab2:      key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "characteristics")),
		Tab3:      key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "fun facts")),
		Tab4:      key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "breeds")),
		Like:      key.NewBinding(key.WithKeys(" ", "L", "+"), key.WithHelp("space/L", "like")),
		Pause:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause facts")),
		SkipFact:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "next fact")),
		CopyURL:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy image url")),
		GridUp:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "breed up")),
		GridDown:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "breed down")),
		GridLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "breed left")),
		GridRight: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "breed right")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select breed")),
		Filter:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter breeds")),
		Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevImage, k.NextImage, k.NextTab, k.Like, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap. Each group is one section of the overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevImage, k.NextImage, k.CopyURL},
		{k.NextTab, k.PrevTab, k.Tab1, k.Tab2, k.Tab3, k.Tab4},
		{k.GridUp, k.GridDown, k.GridLeft, k.GridRight, k.Select, k.Filter, k.Clear},
		{k.Like, k.Pause, k.SkipFact, k.Help, k.Quit},
	}
}

// helpSections names the FullHelp groups in order
var helpSections = []string{"CAROUSEL", "TABS", "BREEDS", "PAGE"}
