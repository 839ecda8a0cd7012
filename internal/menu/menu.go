package menu

// Kind discriminates the menu item variants.
type Kind int

const (
	KindAction Kind = iota
	KindCheckbox
	KindRadio
	KindSeparator
	KindRadioGroup
	KindSubmenu
)

var kindNames = map[Kind]string{
	KindAction:     "action",
	KindCheckbox:   "checkbox",
	KindRadio:      "radio",
	KindSeparator:  "separator",
	KindRadioGroup: "radiogroup",
	KindSubmenu:    "submenu",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Item represents one entry of a dropdown or submenu list.
//
// Only the fields relevant to Kind are meaningful: Checked applies to
// checkboxes and radios, Name and OnSelect to radio groups, Items to radio
// groups and submenus.
type Item struct {
	ID       string
	Label    string
	Kind     Kind
	Disabled bool
	Checked  bool
	Shortcut string
	Name     string
	Items    []Item

	// OnChange is invoked with the new state after a checkbox toggles.
	OnChange func(checked bool)
	// OnSelect is invoked with the radio id after a group's selection changes.
	OnSelect func(id string)
}

// BarEntry is a top-level menu bar button plus its dropdown contents.
type BarEntry struct {
	ID    string
	Label string
	Items []Item
}

// Bar is the ordered sequence of entries rendered as a menubar.
type Bar struct {
	Label   string
	Entries []BarEntry
}

func Action(id, label string) Item {
	return Item{ID: id, Label: label, Kind: KindAction}
}

func Checkbox(id, label string, checked bool) Item {
	return Item{ID: id, Label: label, Kind: KindCheckbox, Checked: checked}
}

func Radio(id, label string, checked bool) Item {
	return Item{ID: id, Label: label, Kind: KindRadio, Checked: checked}
}

func Separator(id string) Item {
	return Item{ID: id, Kind: KindSeparator}
}

// RadioGroup builds a named cluster of radios. Non-radio members are
// converted to radios so the group stays well formed.
func RadioGroup(id, name, label string, radios ...Item) Item {
	items := make([]Item, len(radios))
	for i, r := range radios {
		r.Kind = KindRadio
		items[i] = r
	}
	return Item{ID: id, Name: name, Label: label, Kind: KindRadioGroup, Items: items}
}

func Submenu(id, label string, items ...Item) Item {
	return Item{ID: id, Label: label, Kind: KindSubmenu, Items: items}
}

// Disable returns a copy of the item marked disabled.
func (it Item) Disable() Item {
	it.Disabled = true
	return it
}

// WithShortcut returns a copy of the item carrying a display-only shortcut hint.
func (it Item) WithShortcut(s string) Item {
	it.Shortcut = s
	return it
}

// Focusable reports whether the item can hold roving focus. Disabled items
// are focusable; separators and group wrappers are not.
func (it Item) Focusable() bool {
	return it.Kind != KindSeparator && it.Kind != KindRadioGroup
}

// Enabled reports whether the item may be activated.
func (it Item) Enabled() bool {
	return it.Focusable() && !it.Disabled
}

// HasPopup reports whether activating the item opens a nested menu.
func (it Item) HasPopup() bool {
	return it.Kind == KindSubmenu
}

// Terminal reports whether the item ends a branch of the tree.
func (it Item) Terminal() bool {
	switch it.Kind {
	case KindAction, KindCheckbox, KindRadio:
		return true
	}
	return false
}
