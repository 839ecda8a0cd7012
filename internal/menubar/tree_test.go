package menubar

import (
	"testing"

	"github.com/atomicstack/menubar/internal/a11y"
	"github.com/atomicstack/menubar/internal/menu"
	"github.com/atomicstack/menubar/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeClosed(t *testing.T) {
	m, _ := newBar(t, fileEdit())
	root := m.Tree()
	assert.Equal(t, a11y.RoleMenubar, root.Role)
	assert.Equal(t, "t-menubar", root.ID)
	assert.Equal(t, "Main", root.Attr("aria-label"))

	triggers := []*a11y.Node{root.Find("t-file"), root.Find("t-edit")}
	for i, trigger := range triggers {
		require.NotNil(t, trigger)
		assert.Equal(t, a11y.RoleMenuItem, trigger.Role)
		assert.Equal(t, "menu", trigger.Attr("aria-haspopup"))
		assert.Equal(t, "false", trigger.Attr("aria-expanded"))
		if i == 0 {
			assert.Equal(t, "0", trigger.Attr("tabindex"))
		} else {
			assert.Equal(t, "-1", trigger.Attr("tabindex"))
		}
	}
	for _, list := range root.FindRole(a11y.RoleMenu) {
		assert.True(t, list.Has("hidden"), list.ID)
		assert.Equal(t, "true", list.Attr("aria-hidden"))
	}
}

func TestTreeOpenDropdown(t *testing.T) {
	m, _ := newBar(t, fileEdit())
	m.HandleKey(Press(KeyDown))
	root := m.Tree()

	list := root.Find("t-file-menu")
	require.NotNil(t, list)
	assert.False(t, list.Has("hidden"))
	assert.Equal(t, "t-file", list.Attr("aria-labelledby"))
	require.Len(t, list.Children, 2)
	for _, wrapper := range list.Children {
		assert.Equal(t, a11y.RoleNone, wrapper.Role)
		require.Len(t, wrapper.Children, 1)
		assert.Equal(t, a11y.RoleMenuItem, wrapper.Children[0].Role)
	}
	assert.Equal(t, "0", root.Find("t-new").Attr("tabindex"))
	assert.Equal(t, "-1", root.Find("t-open").Attr("tabindex"))
	assert.True(t, root.Find("t-edit-menu").Has("hidden"))
}

func TestTreeRolesAndGrouping(t *testing.T) {
	m, _ := newBar(t, menu.Demo())
	require.True(t, m.Reveal("view:theme:dark"))
	root := m.Tree()

	list := root.Find("t-view-menu")
	require.NotNil(t, list)
	sep := root.Find("t-view:sep")
	require.NotNil(t, sep)
	assert.Equal(t, a11y.RoleSeparator, sep.Role)
	assert.Contains(t, list.Children, sep, "separators are direct children")

	group := root.Find("t-view:theme")
	require.NotNil(t, group)
	assert.Equal(t, a11y.RoleGroup, group.Role)
	assert.Equal(t, "Theme", group.Attr("aria-label"))
	require.Len(t, group.Children, 3)
	for _, radio := range group.Children {
		assert.Equal(t, a11y.RoleMenuItemRadio, radio.Role)
	}
	assert.Equal(t, "true", root.Find("t-view:theme:light").Attr("aria-checked"))
	assert.Equal(t, "0", root.Find("t-view:theme:dark").Attr("tabindex"))

	box := root.Find("t-view:wordwrap")
	assert.Equal(t, a11y.RoleMenuItemCheckbox, box.Role)
	assert.Equal(t, "true", box.Attr("aria-checked"))
}

func TestTreeNestedSubmenu(t *testing.T) {
	m, _ := newBar(t, menu.Demo())
	require.True(t, m.Reveal("file:recent:notes"))
	root := m.Tree()

	trigger := root.Find("t-file:recent")
	require.NotNil(t, trigger)
	assert.Equal(t, "menu", trigger.Attr("aria-haspopup"))
	assert.Equal(t, "true", trigger.Attr("aria-expanded"))
	assert.Equal(t, "-1", trigger.Attr("tabindex"))

	sub := root.Find("t-file:recent-menu")
	require.NotNil(t, sub)
	assert.False(t, sub.Has("hidden"))
	assert.Equal(t, "t-file:recent", sub.Attr("aria-labelledby"))

	more := root.Find("t-file:recent:more-menu")
	require.NotNil(t, more)
	assert.True(t, more.Has("hidden"))
	assert.Equal(t, "false", root.Find("t-file:recent:more").Attr("aria-expanded"))
	assert.Equal(t, "true", root.Find("t-file:recent:more:clear").Attr("aria-disabled"))
	assert.Equal(t, "0", root.Find("t-file:recent:notes").Attr("tabindex"))
}

func TestTreeOutlineIsStable(t *testing.T) {
	bar := menu.Bar{Entries: []menu.BarEntry{{ID: "f", Label: "F", Items: []menu.Item{menu.Action("a", "A")}}}}
	m, _ := newBar(t, bar)
	want := "menubar#t-menubar\n" +
		"  none\n" +
		"    menuitem#t-f \"F\" [aria-expanded=false aria-haspopup=menu tabindex=0]\n" +
		"    menu#t-f-menu [aria-hidden=true aria-labelledby=t-f hidden=]\n" +
		"      none\n" +
		"        menuitem#t-a \"A\" [tabindex=-1]\n"
	assert.Equal(t, want, m.Tree().Outline())
}

func TestTreeOutlineGolden(t *testing.T) {
	m, _ := newBar(t, fileEdit())
	m.HandleKey(Press(KeyDown))
	testutil.AssertGolden(t, "outline_file_open.golden", m.Tree().Outline())
}

func menuTabStops(root *a11y.Node) []string {
	var stops []string
	root.Walk(func(node *a11y.Node, _ int) bool {
		switch node.Role {
		case a11y.RoleMenuItem, a11y.RoleMenuItemCheckbox, a11y.RoleMenuItemRadio:
			if node.Attr("tabindex") == "0" {
				stops = append(stops, node.ID)
			}
		}
		return true
	})
	return stops
}

func TestTreeSingleTabStopPerDepth(t *testing.T) {
	cases := []struct {
		reveal string
		want   []string
	}{
		{"file:new", []string{"t-file", "t-file:new"}},
		{"file:recent:notes", []string{"t-file", "t-file:recent:notes"}},
		{"file:recent:more:archive", []string{"t-file", "t-file:recent:more:archive"}},
	}
	for _, tc := range cases {
		m, _ := newBar(t, menu.Demo())
		require.True(t, m.Reveal(tc.reveal), tc.reveal)
		assert.Equal(t, tc.want, menuTabStops(m.Tree()), tc.reveal)
	}
}
