package state

import (
	"slices"

	"github.com/atomicstack/menubar/internal/menu"
)

// Path tracks which bar entry is open, the chain of open submenus beneath
// its dropdown and the focused item at every open level.
//
// When a menu is open len(Focus) == len(Open)+1 and the last element of
// Focus holds logical focus; it may be "" for a list with no enabled items.
// Closed paths have OpenBar == -1 and empty chains.
type Path struct {
	OpenBar int
	Open    []string
	Focus   []string
}

// NewPath returns a closed path.
func NewPath() *Path {
	return &Path{OpenBar: -1}
}

// IsOpen reports whether a dropdown is open.
func (p *Path) IsOpen() bool {
	return p.OpenBar >= 0
}

// Depth returns the number of open submenus beneath the dropdown.
func (p *Path) Depth() int {
	return len(p.Open)
}

// Focused returns the id holding logical focus, or "".
func (p *Path) Focused() string {
	if len(p.Focus) == 0 {
		return ""
	}
	return p.Focus[len(p.Focus)-1]
}

// FocusedAt returns the focused id of the list at depth d.
func (p *Path) FocusedAt(d int) string {
	if d < 0 || d >= len(p.Focus) {
		return ""
	}
	return p.Focus[d]
}

// OpenBarMenu opens the dropdown of bar entry index and seeds focus. It is
// a no-op when that entry is already open and retargets directly when a
// different entry is open.
func (p *Path) OpenBarMenu(index int, items []menu.Item, pos Position) bool {
	if index < 0 || p.OpenBar == index {
		return false
	}
	p.OpenBar = index
	p.Open = nil
	p.Focus = []string{DefaultTarget(items, pos)}
	return true
}

// CloseAll returns the path to the closed state.
func (p *Path) CloseAll() bool {
	if !p.IsOpen() && len(p.Open) == 0 && len(p.Focus) == 0 {
		return false
	}
	p.OpenBar = -1
	p.Open = nil
	p.Focus = nil
	return true
}

// EnterSubmenu opens sub beneath the focused item. It is a no-op unless sub
// is the focused item, is a submenu, and is enabled.
func (p *Path) EnterSubmenu(sub menu.Item, pos Position) bool {
	if !p.IsOpen() || sub.Kind != menu.KindSubmenu || sub.Disabled {
		return false
	}
	if sub.ID == "" || sub.ID != p.Focused() {
		return false
	}
	p.Open = append(p.Open, sub.ID)
	p.Focus = append(p.Focus, DefaultTarget(sub.Items, pos))
	return true
}

// ExitSubmenu closes the deepest submenu leaving focus on its trigger. It
// returns false at depth 0.
func (p *Path) ExitSubmenu() bool {
	if len(p.Open) == 0 {
		return false
	}
	p.Open = p.Open[:len(p.Open)-1]
	p.Focus = p.Focus[:len(p.Focus)-1]
	return true
}

// SetFocused replaces the focused id at the current depth.
func (p *Path) SetFocused(id string) bool {
	if len(p.Focus) == 0 {
		return false
	}
	last := len(p.Focus) - 1
	if p.Focus[last] == id {
		return false
	}
	p.Focus[last] = id
	return true
}

// Truncate closes every submenu deeper than depth.
func (p *Path) Truncate(depth int) bool {
	if depth < 0 || depth >= len(p.Open) {
		return false
	}
	p.Open = p.Open[:depth]
	p.Focus = p.Focus[:depth+1]
	return true
}

// Clone returns an independent copy.
func (p *Path) Clone() Path {
	return Path{
		OpenBar: p.OpenBar,
		Open:    slices.Clone(p.Open),
		Focus:   slices.Clone(p.Focus),
	}
}

// Equal reports whether two paths describe the same state.
func (p *Path) Equal(o Path) bool {
	return p.OpenBar == o.OpenBar && slices.Equal(p.Open, o.Open) && slices.Equal(p.Focus, o.Focus)
}
