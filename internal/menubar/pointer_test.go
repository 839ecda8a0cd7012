package menubar

import (
	"testing"

	"github.com/atomicstack/menubar/internal/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClickEntryTogglesAndSwitches(t *testing.T) {
	m, _ := newBar(t, recentBar())

	res := m.ClickEntry(0)
	assert.True(t, res.Opened)
	assert.Equal(t, "new", m.Focused())
	assert.True(t, m.ListeningOutside())

	res = m.ClickEntry(1)
	assert.False(t, res.Opened)
	assert.Equal(t, 1, m.Snapshot().OpenBar)
	assert.Equal(t, "cut", m.Focused())

	res = m.ClickEntry(1)
	assert.True(t, res.Closed)
	assert.Equal(t, Closed, m.Phase())
	assert.Equal(t, 1, m.BarFocus())
	assert.False(t, m.ListeningOutside())

	assert.False(t, m.ClickEntry(7).Handled)
}

func TestHoverEntryOnlyWhileOpen(t *testing.T) {
	m, _ := newBar(t, recentBar())
	assert.False(t, m.HoverEntry(1).Handled)
	assert.Equal(t, Closed, m.Phase())

	m.ClickEntry(0)
	res := m.HoverEntry(2)
	assert.True(t, res.Moved)
	assert.Equal(t, "about", m.Focused())
	assert.True(t, m.HoverEntry(2).Handled)
}

func TestClickItemActivates(t *testing.T) {
	m, selected := newBar(t, recentBar())
	assert.False(t, m.ClickItem("new").Handled, "items of a closed menu are not visible")

	m.ClickEntry(0)
	res := m.ClickItem("recent")
	assert.True(t, res.Handled)
	assert.Equal(t, SubmenuOpen, m.Phase())
	assert.Equal(t, "doc1", m.Focused())

	res = m.ClickItem("doc2")
	assert.Equal(t, "doc2", res.Selected)
	assert.Equal(t, []string{"doc2"}, *selected)
	assert.Equal(t, Closed, m.Phase())
}

func TestClickItemOnShallowerLevelCollapsesSubmenus(t *testing.T) {
	m, selected := newBar(t, recentBar())
	require.True(t, m.Reveal("doc1"))
	res := m.ClickItem("save")
	assert.Equal(t, "save", res.Selected)
	assert.Equal(t, []string{"save"}, *selected)
}

func TestClickDisabledAndCheckboxItems(t *testing.T) {
	bar := menu.Bar{Entries: []menu.BarEntry{{ID: "view", Label: "View", Items: []menu.Item{
		menu.Checkbox("wrap", "Wrap", false),
		menu.Action("gone", "Gone").Disable(),
	}}}}
	m, selected := newBar(t, bar)
	m.ClickEntry(0)

	res := m.ClickItem("gone")
	assert.True(t, res.Handled)
	assert.Empty(t, *selected)
	assert.Equal(t, BarOpen, m.Phase())

	res = m.ClickItem("wrap")
	assert.Equal(t, "wrap", res.Toggled)
	assert.True(t, m.Checked("wrap"))
	assert.Equal(t, BarOpen, m.Phase())
	assert.Equal(t, "wrap", m.Focused())
}

func TestHoverItemMovesFocusAndCollapses(t *testing.T) {
	m, _ := newBar(t, recentBar())
	require.True(t, m.Reveal("doc2"))

	res := m.HoverItem("recent")
	assert.True(t, res.Handled)
	assert.Equal(t, SubmenuOpen, m.Phase(), "hovering the open trigger keeps its submenu")
	assert.Equal(t, "doc2", m.Focused())

	res = m.HoverItem("save")
	assert.True(t, res.Moved)
	assert.Equal(t, BarOpen, m.Phase())
	assert.Equal(t, "save", m.Focused())

	assert.False(t, m.HoverItem("cut").Handled, "items of other entries are hidden")
	assert.False(t, m.HoverItem("doc1").Handled, "items of closed submenus are hidden")
}

func TestPointerOutsideAndBlur(t *testing.T) {
	m, _ := newBar(t, recentBar())
	assert.False(t, m.PointerOutside().Handled)

	require.True(t, m.Reveal("doc1"))
	res := m.PointerOutside()
	assert.True(t, res.Closed)
	assert.Equal(t, Closed, m.Phase())
	assert.Equal(t, 0, m.BarFocus())

	m.ClickEntry(2)
	res = m.Blur()
	assert.False(t, res.Handled)
	assert.True(t, res.Closed)
	assert.Equal(t, 2, m.BarFocus())
	assert.Equal(t, Result{}, m.Blur())
}

func TestRevealOpensChain(t *testing.T) {
	m, _ := newBar(t, menu.Demo())
	require.True(t, m.Reveal("file:recent:more:archive"))
	snap := m.Snapshot()
	assert.Equal(t, 0, snap.OpenBar)
	assert.Equal(t, []string{"file:recent", "file:recent:more"}, snap.Open)
	assert.Equal(t, []string{"file:recent", "file:recent:more", "file:recent:more:archive"}, snap.Focus)

	require.True(t, m.Reveal("edit"))
	assert.Equal(t, "edit:cut", m.Focused())

	before := m.Snapshot()
	assert.False(t, m.Reveal("missing"))
	assert.False(t, m.Reveal("view:sep"))
	assert.Equal(t, before, m.Snapshot())
}

func TestRevealQuery(t *testing.T) {
	m, _ := newBar(t, menu.Demo())

	id, ok := m.RevealQuery("view:wordwrap")
	require.True(t, ok)
	assert.Equal(t, "view:wordwrap", id)

	id, ok = m.RevealQuery("archive")
	require.True(t, ok)
	assert.Equal(t, "file:recent:more:archive", id)
	assert.Equal(t, SubmenuOpen, m.Phase())

	_, ok = m.RevealQuery("")
	assert.False(t, ok)
	_, ok = m.RevealQuery("xyzzy")
	assert.False(t, ok)
}
