package tui

import "github.com/charmbracelet/bubbles/key"

// ============================================================================
// Key Bindings
// ============================================================================

// navKeyMap is the key set while navigating the settings tree.
type navKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Append key.Binding
	Remove key.Binding
	Save   key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k navKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Save, k.Help, k.Quit}
}

func (k navKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back},
		{k.Append, k.Remove, k.Save, k.Reload},
		{k.Help, k.Quit},
	}
}

// seqKeyMap widens the short help with the element bindings while a
// sequence view is open.
type seqKeyMap struct{ navKeyMap }

func (k seqKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Append, k.Remove, k.Save}
}

// editKeyMap is the key set while an edit session is open. Anything not
// listed here types into the buffer.
type editKeyMap struct {
	Commit key.Binding
	Cancel key.Binding
	Left   key.Binding
	Right  key.Binding
	Erase  key.Binding
	Delete key.Binding
}

func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cancel, k.Commit, k.Left, k.Right, k.Erase, k.Delete}
}

func (k editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Cancel, k.Commit},
		{k.Left, k.Right, k.Erase, k.Delete},
	}
}

func defaultNavKeys() navKeyMap {
	return navKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select/edit")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Append: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add element")),
		Remove: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove element")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Reload: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "reload")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func defaultEditKeys() editKeyMap {
	return editKeyMap{
		Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "cursor left")),
		Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "cursor right")),
		Erase:  key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "delete left")),
		Delete: key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete")),
	}
}
