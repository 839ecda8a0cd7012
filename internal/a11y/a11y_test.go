package a11y

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Node {
	item := New(RoleMenuItem, "x-new").Set("tabindex", "0").Set("aria-disabled", "true")
	item.Label = "New"
	menu := New(RoleMenu, "x-file-menu").Append(New(RoleNone, "").Append(item))
	return New(RoleMenubar, "x-menubar").Set("aria-label", "Demo").Append(menu)
}

func TestFindAndRole(t *testing.T) {
	root := sample()
	node := root.Find("x-new")
	require.NotNil(t, node)
	assert.Equal(t, "0", node.Attr("tabindex"))
	assert.True(t, node.Has("aria-disabled"))
	assert.False(t, node.Has("aria-checked"))
	assert.Nil(t, root.Find("missing"))
	assert.Len(t, root.FindRole(RoleNone), 1)
}

func TestNilNodeAccessors(t *testing.T) {
	var n *Node
	assert.Equal(t, "", n.Attr("role"))
	assert.False(t, n.Has("role"))
	assert.Nil(t, n.Find("x"))
}

func TestOutlineSortsAttributes(t *testing.T) {
	want := "menubar#x-menubar [aria-label=Demo]\n" +
		"  menu#x-file-menu\n" +
		"    none\n" +
		"      menuitem#x-new \"New\" [aria-disabled=true tabindex=0]\n"
	assert.Equal(t, want, sample().Outline())
}

func TestWalkSkipsChildren(t *testing.T) {
	var roles []string
	sample().Walk(func(n *Node, _ int) bool {
		roles = append(roles, n.Role)
		return n.Role != RoleMenu
	})
	assert.Equal(t, []string{RoleMenubar, RoleMenu}, roles)
}

func TestJSONShape(t *testing.T) {
	data, err := json.Marshal(New(RoleSeparator, "s"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"role":"separator","id":"s"}`, string(data))
}
