// Package menubar implements the interaction engine behind a hierarchical
// menu bar: a top-level bar of entries, each owning a dropdown that may nest
// submenus to any depth.
//
// A Menubar is single-threaded. Every event is handled to completion and the
// returned Result tells the host whether the event was consumed, which
// callbacks fired and whether a type-ahead reset timer must be armed. The
// engine performs no I/O and schedules nothing itself; hosts deliver timer
// expiry back through ExpireTypeAhead on the same event loop.
//
// Item ids must be unique within a bar. Behaviour with duplicate ids is
// undefined.
package menubar

import (
	"strings"
	"time"

	"github.com/atomicstack/menubar/internal/menu"
	"github.com/atomicstack/menubar/internal/ui/state"
	"github.com/google/uuid"
)

// Phase is the coarse interaction state.
type Phase int

const (
	Closed Phase = iota
	BarOpen
	SubmenuOpen
)

func (p Phase) String() string {
	switch p {
	case BarOpen:
		return "bar-open"
	case SubmenuOpen:
		return "submenu-open"
	default:
		return "closed"
	}
}

// Result describes the outcome of one event.
type Result struct {
	// Handled is true when the event was consumed and the host should
	// suppress its default behaviour.
	Handled bool
	// Selected is the id of an activated action item.
	Selected string
	// Toggled is the id of a checkbox or radio whose state changed.
	Toggled string
	// Moved is true when the focused item or bar entry changed.
	Moved bool
	// Opened and Closed report transitions to and from the Closed phase.
	Opened bool
	Closed bool
	// Timer, when set, asks the host to call ExpireTypeAhead(Timer.Gen)
	// after Timer.After.
	Timer *state.Timer
}

// Snapshot is a read-only copy of the navigation state.
type Snapshot struct {
	Phase    Phase
	OpenBar  int
	Open     []string
	Focus    []string
	BarFocus int
	Buffer   string
}

// Option configures a Menubar.
type Option func(*Menubar)

// WithOnSelect registers the callback invoked with the id of an activated
// action item.
func WithOnSelect(fn func(id string)) Option {
	return func(m *Menubar) { m.onSelect = fn }
}

// WithIDPrefix fixes the accessibility id prefix instead of minting one.
func WithIDPrefix(prefix string) Option {
	return func(m *Menubar) { m.prefix = strings.TrimSpace(prefix) }
}

// WithClock replaces time.Now for type-ahead expiry.
func WithClock(now func() time.Time) Option {
	return func(m *Menubar) { m.now = now }
}

// WithTypeAheadTimeout overrides the type-ahead reset window.
func WithTypeAheadTimeout(d time.Duration) Option {
	return func(m *Menubar) { m.timeout = d }
}

// WithDisabled disables the whole widget; every event is ignored.
func WithDisabled(disabled bool) Option {
	return func(m *Menubar) { m.disabled = disabled }
}

// Menubar owns the complete state of one menu bar widget.
type Menubar struct {
	index     *menu.Index
	path      *state.Path
	toggles   *state.Toggles
	typeahead *state.TypeAhead
	barFocus  int

	prefix   string
	onSelect func(string)
	now      func() time.Time
	timeout  time.Duration
	disabled bool
}

// New builds a closed Menubar for bar. Toggle state is seeded from the
// Checked flags in the tree.
func New(bar menu.Bar, opts ...Option) *Menubar {
	m := &Menubar{}
	for _, opt := range opts {
		opt(m)
	}
	if m.prefix == "" {
		m.prefix = mintPrefix()
	}
	m.index = menu.BuildIndex(bar)
	m.path = state.NewPath()
	m.toggles = state.NewToggles(m.index)
	m.typeahead = state.NewTypeAhead(m.timeout, m.now)
	return m
}

func mintPrefix() string {
	return "mb-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// Index exposes the item tree.
func (m *Menubar) Index() *menu.Index {
	return m.index
}

// IDPrefix returns the accessibility id namespace of this instance.
func (m *Menubar) IDPrefix() string {
	return m.prefix
}

// DOMID maps an item or entry id into this instance's id namespace.
func (m *Menubar) DOMID(id string) string {
	return m.prefix + "-" + id
}

// SetDisabled toggles the globally disabled flag. Disabling closes any open
// menu.
func (m *Menubar) SetDisabled(disabled bool) {
	m.disabled = disabled
	if disabled {
		m.closeAll()
	}
}

// Disabled reports whether the widget ignores events.
func (m *Menubar) Disabled() bool {
	return m.disabled
}

// Phase returns the coarse interaction state.
func (m *Menubar) Phase() Phase {
	switch {
	case !m.path.IsOpen():
		return Closed
	case m.path.Depth() > 0:
		return SubmenuOpen
	default:
		return BarOpen
	}
}

// Snapshot copies the navigation state.
func (m *Menubar) Snapshot() Snapshot {
	p := m.path.Clone()
	return Snapshot{
		Phase:    m.Phase(),
		OpenBar:  p.OpenBar,
		Open:     p.Open,
		Focus:    p.Focus,
		BarFocus: m.barFocus,
		Buffer:   m.typeahead.Buffer(),
	}
}

// Focused returns the id of the item holding logical focus, or "" when the
// bar is closed or the open list has no target.
func (m *Menubar) Focused() string {
	return m.path.Focused()
}

// BarFocus returns the index of the bar entry carrying the roving tab stop.
func (m *Menubar) BarFocus() int {
	return m.barFocus
}

// Checked reports the checkbox state of id.
func (m *Menubar) Checked(id string) bool {
	return m.toggles.Checked(id)
}

// Selected returns the radio id selected in group.
func (m *Menubar) Selected(group string) string {
	return m.toggles.Selected(group)
}

// ItemChecked reports aria-checked for a checkbox or radio id.
func (m *Menubar) ItemChecked(id string) bool {
	node, ok := m.index.Find(id)
	if !ok {
		return false
	}
	switch node.Item.Kind {
	case menu.KindCheckbox:
		return m.toggles.Checked(id)
	case menu.KindRadio:
		return m.toggles.RadioChecked(node.Group, id)
	}
	return false
}

// Expanded reports whether the bar entry or submenu with id is open.
func (m *Menubar) Expanded(id string) bool {
	if !m.path.IsOpen() {
		return false
	}
	if entry, ok := m.index.Entry(m.path.OpenBar); ok && entry.ID == id {
		return true
	}
	for _, open := range m.path.Open {
		if open == id {
			return true
		}
	}
	return false
}

// ListeningOutside reports whether the host must watch for pointer events
// outside the widget. It is true exactly while a menu is open.
func (m *Menubar) ListeningOutside() bool {
	return m.path.IsOpen()
}

// ExpireTypeAhead delivers a reset timer. Stale generations are ignored.
func (m *Menubar) ExpireTypeAhead(gen int) bool {
	return m.typeahead.Expire(gen)
}

// TypeAheadBuffer returns the pending type-ahead characters.
func (m *Menubar) TypeAheadBuffer() string {
	return m.typeahead.Buffer()
}

// List returns the items of the list at depth d of the open chain.
func (m *Menubar) List(d int) ([]menu.Item, bool) {
	if !m.path.IsOpen() || d < 0 || d > m.path.Depth() {
		return nil, false
	}
	return m.index.List(m.path.OpenBar, m.path.Open[:d])
}

func (m *Menubar) currentList() []menu.Item {
	items, _ := m.List(m.path.Depth())
	return items
}

func (m *Menubar) entryItems(i int) []menu.Item {
	entry, _ := m.index.Entry(i)
	return entry.Items
}

func (m *Menubar) closeAll() bool {
	m.typeahead.Cancel()
	return m.path.CloseAll()
}

// Close closes every open menu, leaving the roving tab stop on the entry
// that was open.
func (m *Menubar) Close() Result {
	if !m.path.IsOpen() {
		return Result{}
	}
	m.barFocus = m.path.OpenBar
	m.closeAll()
	return Result{Handled: true, Closed: true}
}

// open opens or retargets to bar entry i.
func (m *Menubar) open(i int, pos state.Position) Result {
	wasOpen := m.path.IsOpen()
	if m.path.OpenBar != i {
		m.typeahead.Cancel()
	}
	changed := m.path.OpenBarMenu(i, m.entryItems(i), pos)
	moved := m.barFocus != i || changed
	m.barFocus = i
	return Result{Handled: true, Opened: !wasOpen && changed, Moved: moved}
}

// switchEntry closes the open menu and opens the dropdown delta entries
// away, seeded on its first enabled item.
func (m *Menubar) switchEntry(delta int) Result {
	next := state.WrapIndex(m.path.OpenBar, delta, m.index.Len())
	m.closeAll()
	res := m.open(next, state.First)
	res.Opened = false
	res.Moved = true
	return res
}
