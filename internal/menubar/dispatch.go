package menubar

import (
	"github.com/atomicstack/menubar/internal/menu"
	"github.com/atomicstack/menubar/internal/ui/state"
)

// HandleKey applies a keyboard event.
func (m *Menubar) HandleKey(k Key) Result {
	if m.disabled || m.index.Len() == 0 {
		return Result{}
	}
	if m.Phase() == Closed {
		return m.closedKey(k)
	}
	return m.openKey(k)
}

// closedKey handles keys while focus rests on the bar itself.
func (m *Menubar) closedKey(k Key) Result {
	n := m.index.Len()
	switch k.Code {
	case KeyRight:
		return m.focusEntry(state.WrapIndex(m.barFocus, 1, n))
	case KeyLeft:
		return m.focusEntry(state.WrapIndex(m.barFocus, -1, n))
	case KeyHome:
		return m.focusEntry(0)
	case KeyEnd:
		return m.focusEntry(n - 1)
	case KeyDown, KeyEnter, KeySpace:
		return m.open(m.barFocus, state.First)
	case KeyUp:
		return m.open(m.barFocus, state.Last)
	}
	return Result{}
}

func (m *Menubar) focusEntry(i int) Result {
	moved := m.barFocus != i
	m.barFocus = i
	return Result{Handled: true, Moved: moved}
}

// openKey handles keys while a dropdown or submenu is open.
func (m *Menubar) openKey(k Key) Result {
	list := m.currentList()
	focused := m.path.Focused()
	switch k.Code {
	case KeyDown:
		return m.move(state.Next(list, focused))
	case KeyUp:
		return m.move(state.Prev(list, focused))
	case KeyHome:
		return m.move(state.Home(list))
	case KeyEnd:
		return m.move(state.End(list))
	case KeyRight:
		if item, ok := state.Lookup(list, focused); ok && item.HasPopup() {
			return m.enter(item, state.First)
		}
		// Falls through to the next bar entry at any depth.
		return m.switchEntry(1)
	case KeyLeft:
		if m.path.Depth() > 0 {
			return m.exit()
		}
		return m.switchEntry(-1)
	case KeyEnter, KeySpace:
		item, _ := state.Lookup(list, focused)
		return m.activate(item)
	case KeyEscape:
		if m.path.Depth() > 0 {
			return m.exit()
		}
		return m.Close()
	case KeyTab:
		res := m.Close()
		res.Handled = false
		return res
	case KeyChar:
		if !k.printable() {
			return Result{}
		}
		return m.typeAhead(k.Rune, list, focused)
	}
	return Result{}
}

func (m *Menubar) move(id string) Result {
	return Result{Handled: true, Moved: m.path.SetFocused(id)}
}

// enter opens a submenu. A disabled submenu consumes the event and stays
// closed.
func (m *Menubar) enter(item menu.Item, pos state.Position) Result {
	m.typeahead.Cancel()
	return Result{Handled: true, Moved: m.path.EnterSubmenu(item, pos)}
}

func (m *Menubar) exit() Result {
	m.typeahead.Cancel()
	return Result{Handled: true, Moved: m.path.ExitSubmenu()}
}

func (m *Menubar) typeAhead(r rune, list []menu.Item, focused string) Result {
	target, ok, timer := m.typeahead.Type(r, list, focused)
	res := Result{Handled: true, Timer: &timer}
	if ok {
		res.Moved = m.path.SetFocused(target)
	}
	return res
}

// activate runs the activation semantics of the focused item. Activation
// on nothing, a separator or a disabled item is consumed without effect.
func (m *Menubar) activate(item menu.Item) Result {
	if item.ID == "" || !item.Enabled() {
		return Result{Handled: true}
	}
	switch item.Kind {
	case menu.KindAction:
		entry := m.path.OpenBar
		if m.onSelect != nil {
			m.onSelect(item.ID)
		}
		m.closeAll()
		m.barFocus = entry
		return Result{Handled: true, Selected: item.ID, Closed: true}
	case menu.KindCheckbox:
		checked, ok := m.toggles.ToggleCheckbox(item)
		if !ok {
			return Result{Handled: true}
		}
		if item.OnChange != nil {
			item.OnChange(checked)
		}
		return Result{Handled: true, Toggled: item.ID}
	case menu.KindRadio:
		return m.selectRadio(item)
	case menu.KindSubmenu:
		return m.enter(item, state.First)
	}
	return Result{Handled: true}
}

// selectRadio selects a radio within its group. Radios outside any group
// are a malformed tree and are ignored.
func (m *Menubar) selectRadio(item menu.Item) Result {
	node, ok := m.index.Find(item.ID)
	if !ok || node.Group == "" {
		return Result{Handled: true}
	}
	if !m.toggles.SelectRadio(node.Group, item) {
		return Result{Handled: true}
	}
	if group, ok := m.index.Find(node.GroupID); ok && group.Item.OnSelect != nil {
		group.Item.OnSelect(item.ID)
	}
	return Result{Handled: true, Toggled: item.ID}
}
