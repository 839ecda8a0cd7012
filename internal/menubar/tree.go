package menubar

import (
	"strconv"

	"github.com/atomicstack/menubar/internal/a11y"
	"github.com/atomicstack/menubar/internal/menu"
)

// MenuID returns the accessibility id of the menu opened by trigger id.
func (m *Menubar) MenuID(id string) string {
	return m.DOMID(id) + "-menu"
}

// Tree projects the current state into an accessibility tree.
func (m *Menubar) Tree() *a11y.Node {
	bar := m.index.Bar()
	root := a11y.New(a11y.RoleMenubar, m.DOMID("menubar"))
	if bar.Label != "" {
		root.Set("aria-label", bar.Label)
	}
	if m.disabled {
		root.Set("aria-disabled", "true")
	}
	for i, entry := range bar.Entries {
		open := m.path.OpenBar == i
		trigger := a11y.New(a11y.RoleMenuItem, m.DOMID(entry.ID))
		trigger.Label = entry.Label
		trigger.Set("aria-haspopup", "menu").
			Set("aria-expanded", strconv.FormatBool(open)).
			Set("tabindex", tabIndex(i == m.barFocus))
		list := m.menuNode(entry.ID, entry.Items, open, 0)
		root.Append(a11y.New(a11y.RoleNone, "").Append(trigger, list))
	}
	return root
}

func (m *Menubar) menuNode(trigger string, items []menu.Item, open bool, depth int) *a11y.Node {
	node := a11y.New(a11y.RoleMenu, m.MenuID(trigger)).Set("aria-labelledby", m.DOMID(trigger))
	if !open {
		node.Set("hidden", "").Set("aria-hidden", "true")
	}
	// Only the deepest open list holds the roving tab stop.
	focused := ""
	if open && depth == m.path.Depth() {
		focused = m.path.Focused()
	}
	for _, item := range items {
		switch item.Kind {
		case menu.KindSeparator:
			node.Append(a11y.New(a11y.RoleSeparator, m.DOMID(item.ID)))
		case menu.KindRadioGroup:
			group := a11y.New(a11y.RoleGroup, m.DOMID(item.ID)).Set("aria-label", item.Label)
			for _, radio := range item.Items {
				group.Append(m.itemNode(radio, item.Name, focused, open, depth)...)
			}
			node.Append(a11y.New(a11y.RoleNone, "").Append(group))
		default:
			node.Append(a11y.New(a11y.RoleNone, "").Append(m.itemNode(item, "", focused, open, depth)...))
		}
	}
	return node
}

// itemNode renders an item; submenu triggers are followed by their menu.
func (m *Menubar) itemNode(item menu.Item, group, focused string, listOpen bool, depth int) []*a11y.Node {
	node := a11y.New(itemRole(item.Kind), m.DOMID(item.ID))
	node.Label = item.Label
	node.Set("tabindex", tabIndex(listOpen && item.ID == focused))
	if item.Disabled {
		node.Set("aria-disabled", "true")
	}
	switch item.Kind {
	case menu.KindCheckbox:
		node.Set("aria-checked", strconv.FormatBool(m.toggles.Checked(item.ID)))
	case menu.KindRadio:
		node.Set("aria-checked", strconv.FormatBool(m.toggles.RadioChecked(group, item.ID)))
	case menu.KindSubmenu:
		expanded := listOpen && depth < m.path.Depth() && m.path.Open[depth] == item.ID
		node.Set("aria-haspopup", "menu").Set("aria-expanded", strconv.FormatBool(expanded))
		return []*a11y.Node{node, m.menuNode(item.ID, item.Items, expanded, depth+1)}
	}
	return []*a11y.Node{node}
}

func itemRole(kind menu.Kind) string {
	switch kind {
	case menu.KindCheckbox:
		return a11y.RoleMenuItemCheckbox
	case menu.KindRadio:
		return a11y.RoleMenuItemRadio
	}
	return a11y.RoleMenuItem
}

func tabIndex(active bool) string {
	if active {
		return "0"
	}
	return "-1"
}
