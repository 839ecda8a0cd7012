package menubar

import (
	"slices"

	"github.com/atomicstack/menubar/internal/menu"
	"github.com/atomicstack/menubar/internal/ui/state"
)

// ClickEntry handles a pointer click on bar entry i: it opens a closed
// bar, closes the entry when it is already open and switches otherwise.
func (m *Menubar) ClickEntry(i int) Result {
	if m.disabled || i < 0 || i >= m.index.Len() {
		return Result{}
	}
	if m.path.OpenBar == i {
		return m.Close()
	}
	return m.open(i, state.First)
}

// HoverEntry switches to entry i while any dropdown is open.
func (m *Menubar) HoverEntry(i int) Result {
	if m.disabled || !m.path.IsOpen() || i < 0 || i >= m.index.Len() {
		return Result{}
	}
	if m.path.OpenBar == i {
		return Result{Handled: true}
	}
	return m.open(i, state.First)
}

// ClickItem focuses and activates the item with id. The item must be
// visible, i.e. belong to one of the currently open lists.
func (m *Menubar) ClickItem(id string) Result {
	if m.disabled {
		return Result{}
	}
	d, ok := m.visibleDepth(id)
	if !ok {
		return Result{}
	}
	m.path.Truncate(d)
	moved := m.path.SetFocused(id)
	item, _ := state.Lookup(m.currentList(), id)
	res := m.activate(item)
	res.Moved = res.Moved || moved
	return res
}

// HoverItem moves focus to a visible item, collapsing submenus opened
// below its list. Hovering the trigger of an open submenu keeps it open.
func (m *Menubar) HoverItem(id string) Result {
	if m.disabled {
		return Result{}
	}
	d, ok := m.visibleDepth(id)
	if !ok {
		return Result{}
	}
	if d < m.path.Depth() && m.path.Open[d] == id {
		moved := m.path.Truncate(d + 1)
		return Result{Handled: true, Moved: moved}
	}
	if m.path.FocusedAt(d) == id && d == m.path.Depth() {
		return Result{Handled: true}
	}
	m.typeahead.Cancel()
	m.path.Truncate(d)
	m.path.SetFocused(id)
	return Result{Handled: true, Moved: true}
}

// PointerOutside handles a pointer event outside the widget.
func (m *Menubar) PointerOutside() Result {
	if !m.path.IsOpen() {
		return Result{}
	}
	return m.Close()
}

// Blur handles focus leaving the widget.
func (m *Menubar) Blur() Result {
	res := m.Close()
	res.Handled = false
	return res
}

// visibleDepth returns the depth of the open list holding id.
func (m *Menubar) visibleDepth(id string) (int, bool) {
	if !m.path.IsOpen() {
		return 0, false
	}
	node, ok := m.index.Find(id)
	if !ok || node.Entry != m.path.OpenBar || !node.Item.Focusable() {
		return 0, false
	}
	d := node.Depth()
	if d > m.path.Depth() || !slices.Equal(node.Trail, m.path.Open[:d]) {
		return 0, false
	}
	return d, true
}

// Reveal opens every menu on the way to id and focuses it. It fails, and
// leaves the state untouched, when id is unknown or sits beneath a
// disabled submenu.
func (m *Menubar) Reveal(id string) bool {
	if m.disabled {
		return false
	}
	node, ok := m.index.Find(id)
	if !ok || !node.Item.Focusable() {
		if ok || m.index.EntryIndex(id) < 0 {
			return false
		}
		m.closeAll()
		m.open(m.index.EntryIndex(id), state.First)
		return true
	}
	for _, sub := range node.Trail {
		trigger, _ := m.index.Find(sub)
		if trigger.Item.Disabled {
			return false
		}
	}
	m.closeAll()
	m.open(node.Entry, state.First)
	for _, sub := range node.Trail {
		trigger, _ := m.index.Find(sub)
		m.path.SetFocused(sub)
		m.path.EnterSubmenu(trigger.Item, state.First)
	}
	m.path.SetFocused(id)
	return true
}

// RevealQuery reveals an exact item or entry id, falling back to the best
// fuzzy label match that can be revealed. It returns the revealed id.
func (m *Menubar) RevealQuery(query string) (string, bool) {
	if query == "" {
		return "", false
	}
	if m.Reveal(query) {
		return query, true
	}
	for _, match := range menu.Search(m.index.Bar(), query) {
		if m.Reveal(match.ID) {
			return match.ID, true
		}
	}
	return "", false
}
