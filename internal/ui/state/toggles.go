package state

import "github.com/atomicstack/menubar/internal/menu"

// Toggles stores checkbox states by item id and radio selections by group
// name. A group selection holds at most one radio id.
type Toggles struct {
	checked map[string]bool
	radios  map[string]string
}

// NewToggles seeds state from the Checked flags in the tree. When several
// radios of a group start checked the first one wins.
func NewToggles(x *menu.Index) *Toggles {
	t := &Toggles{
		checked: make(map[string]bool),
		radios:  make(map[string]string),
	}
	if x == nil {
		return t
	}
	x.Walk(func(node *menu.Node) {
		switch node.Item.Kind {
		case menu.KindCheckbox:
			t.checked[node.Item.ID] = node.Item.Checked
		case menu.KindRadio:
			if node.Group == "" || !node.Item.Checked {
				return
			}
			if _, ok := t.radios[node.Group]; !ok {
				t.radios[node.Group] = node.Item.ID
			}
		}
	})
	return t
}

// Checked reports the checkbox state for id.
func (t *Toggles) Checked(id string) bool {
	return t.checked[id]
}

// Selected returns the radio id selected in group, or "".
func (t *Toggles) Selected(group string) string {
	return t.radios[group]
}

// RadioChecked reports whether id is the selection of group.
func (t *Toggles) RadioChecked(group, id string) bool {
	return group != "" && id != "" && t.radios[group] == id
}

// ToggleCheckbox flips a checkbox and returns its new state. Disabled items
// and non-checkboxes are left untouched and report ok == false.
func (t *Toggles) ToggleCheckbox(item menu.Item) (checked bool, ok bool) {
	if item.Kind != menu.KindCheckbox || item.Disabled {
		return t.checked[item.ID], false
	}
	t.checked[item.ID] = !t.checked[item.ID]
	return t.checked[item.ID], true
}

// SelectRadio makes item the selection of group, unselecting the previous
// member. It reports whether the selection changed.
func (t *Toggles) SelectRadio(group string, item menu.Item) bool {
	if group == "" || item.Kind != menu.KindRadio || item.Disabled {
		return false
	}
	if t.radios[group] == item.ID {
		return false
	}
	t.radios[group] = item.ID
	return true
}

// Snapshot copies the current state for projection or tests.
func (t *Toggles) Snapshot() (checked map[string]bool, radios map[string]string) {
	checked = make(map[string]bool, len(t.checked))
	for k, v := range t.checked {
		checked[k] = v
	}
	radios = make(map[string]string, len(t.radios))
	for k, v := range t.radios {
		radios[k] = v
	}
	return checked, radios
}
