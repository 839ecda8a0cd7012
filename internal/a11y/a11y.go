// Package a11y models the accessibility tree a widget projects for its
// presentation layer.
package a11y

import (
	"fmt"
	"sort"
	"strings"
)

// Roles used by the menubar projection.
const (
	RoleMenubar          = "menubar"
	RoleMenu             = "menu"
	RoleMenuItem         = "menuitem"
	RoleMenuItemCheckbox = "menuitemcheckbox"
	RoleMenuItemRadio    = "menuitemradio"
	RoleSeparator        = "separator"
	RoleGroup            = "group"
	RoleNone             = "none"
)

// Node is one element of the accessibility tree.
type Node struct {
	Role     string            `json:"role" yaml:"role"`
	ID       string            `json:"id,omitempty" yaml:"id,omitempty"`
	Label    string            `json:"label,omitempty" yaml:"label,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Children []*Node           `json:"children,omitempty" yaml:"children,omitempty"`
}

// New creates a node with the given role and id.
func New(role, id string) *Node {
	return &Node{Role: role, ID: id}
}

// Set records an attribute and returns the node for chaining.
func (n *Node) Set(name, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[name] = value
	return n
}

// Append adds children and returns the node.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Attr returns an attribute value, or "" when absent.
func (n *Node) Attr(name string) string {
	if n == nil {
		return ""
	}
	return n.Attrs[name]
}

// Has reports whether an attribute is present.
func (n *Node) Has(name string) bool {
	if n == nil {
		return false
	}
	_, ok := n.Attrs[name]
	return ok
}

// Walk visits the subtree depth first. Returning false from fn skips the
// node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if n == nil {
		return
	}
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children {
		child.walk(fn, depth+1)
	}
}

// Find returns the node with id, or nil.
func (n *Node) Find(id string) *Node {
	var found *Node
	n.Walk(func(node *Node, _ int) bool {
		if found != nil {
			return false
		}
		if node.ID == id {
			found = node
			return false
		}
		return true
	})
	return found
}

// FindRole returns every node with role in document order.
func (n *Node) FindRole(role string) []*Node {
	var out []*Node
	n.Walk(func(node *Node, _ int) bool {
		if node.Role == role {
			out = append(out, node)
		}
		return true
	})
	return out
}

// Outline renders the subtree as indented text, one node per line, with
// attributes in name order.
func (n *Node) Outline() string {
	var b strings.Builder
	n.Walk(func(node *Node, depth int) bool {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(node.Role)
		if node.ID != "" {
			b.WriteString("#")
			b.WriteString(node.ID)
		}
		if node.Label != "" {
			fmt.Fprintf(&b, " %q", node.Label)
		}
		if len(node.Attrs) > 0 {
			names := make([]string, 0, len(node.Attrs))
			for name := range node.Attrs {
				names = append(names, name)
			}
			sort.Strings(names)
			parts := make([]string, len(names))
			for i, name := range names {
				parts[i] = name + "=" + node.Attrs[name]
			}
			b.WriteString(" [")
			b.WriteString(strings.Join(parts, " "))
			b.WriteString("]")
		}
		b.WriteByte('\n')
		return true
	})
	return b.String()
}
