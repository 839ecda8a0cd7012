package ui

import (
	"unicode"

	"github.com/atomicstack/menubar/internal/menubar"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap binds terminal keys to menubar navigation codes.
type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	Activate key.Binding
	Toggle   key.Binding
	Close    key.Binding
	Next     key.Binding
	Prev     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "menus")),
		Right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "submenu")),
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "move")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "move")),
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home/end", "first/last")),
		End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "leave")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "leave")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Up, k.Activate, k.Toggle, k.Close, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Home, k.End, k.Activate, k.Toggle},
		{k.Close, k.Next, k.Prev, k.Quit},
	}
}

// translate converts a terminal key press into an engine key. Single
// printable runes become type-ahead characters.
func (k keyMap) translate(msg tea.KeyMsg) (menubar.Key, bool) {
	bindings := []struct {
		binding key.Binding
		key     menubar.Key
	}{
		{k.Right, menubar.Press(menubar.KeyRight)},
		{k.Left, menubar.Press(menubar.KeyLeft)},
		{k.Down, menubar.Press(menubar.KeyDown)},
		{k.Up, menubar.Press(menubar.KeyUp)},
		{k.Home, menubar.Press(menubar.KeyHome)},
		{k.End, menubar.Press(menubar.KeyEnd)},
		{k.Activate, menubar.Press(menubar.KeyEnter)},
		{k.Toggle, menubar.Press(menubar.KeySpace)},
		{k.Close, menubar.Press(menubar.KeyEscape)},
		{k.Next, menubar.Press(menubar.KeyTab)},
		{k.Prev, menubar.Key{Code: menubar.KeyTab, Shift: true}},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.key, true
		}
	}
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return menubar.Key{}, false
	}
	r := msg.Runes[0]
	return menubar.Key{Code: menubar.KeyChar, Rune: r, Alt: msg.Alt, Shift: unicode.IsUpper(r)}, true
}
