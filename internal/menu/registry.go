package menu

// Node records where an item lives inside the bar.
type Node struct {
	Item Item
	// Entry is the index of the bar entry whose dropdown contains the item.
	Entry int
	// Trail is the chain of submenu ids from the dropdown down to the list
	// that holds the item. Empty for items of the dropdown itself.
	Trail []string
	// GroupID and Group identify the enclosing radio group, if any.
	GroupID string
	Group   string
}

// Depth returns the list depth of the item, 0 being the dropdown.
func (n *Node) Depth() int {
	return len(n.Trail)
}

// Index exposes lookup utilities over a bar's item tree. Ids are expected
// to be unique across the bar; later duplicates shadow earlier ones.
type Index struct {
	bar    Bar
	nodes  map[string]*Node
	groups map[string][]string
	order  []string
}

// BuildIndex walks the bar and records every item by id.
func BuildIndex(bar Bar) *Index {
	x := &Index{
		bar:    bar,
		nodes:  make(map[string]*Node),
		groups: make(map[string][]string),
	}
	for i, entry := range bar.Entries {
		x.walk(entry.Items, i, nil, "", "")
	}
	return x
}

func (x *Index) walk(items []Item, entry int, trail []string, groupID, group string) {
	for _, item := range items {
		node := &Node{
			Item:    item,
			Entry:   entry,
			Trail:   append([]string(nil), trail...),
			GroupID: groupID,
			Group:   group,
		}
		x.nodes[item.ID] = node
		x.order = append(x.order, item.ID)
		switch item.Kind {
		case KindRadioGroup:
			x.walk(item.Items, entry, trail, item.ID, item.Name)
		case KindSubmenu:
			x.walk(item.Items, entry, append(trail, item.ID), "", "")
		case KindRadio:
			if group != "" {
				x.groups[group] = append(x.groups[group], item.ID)
			}
		}
	}
}

// Bar returns the indexed bar.
func (x *Index) Bar() Bar {
	return x.bar
}

// Len returns the number of bar entries.
func (x *Index) Len() int {
	return len(x.bar.Entries)
}

// Entry returns the bar entry at index i.
func (x *Index) Entry(i int) (BarEntry, bool) {
	if i < 0 || i >= len(x.bar.Entries) {
		return BarEntry{}, false
	}
	return x.bar.Entries[i], true
}

// EntryIndex locates a bar entry by id.
func (x *Index) EntryIndex(id string) int {
	for i, entry := range x.bar.Entries {
		if entry.ID == id {
			return i
		}
	}
	return -1
}

// Find locates an item by id.
func (x *Index) Find(id string) (*Node, bool) {
	if id == "" {
		return nil, false
	}
	node, ok := x.nodes[id]
	return node, ok
}

// Group returns the radio ids belonging to the named group in tree order.
func (x *Index) Group(name string) []string {
	return x.groups[name]
}

// Groups returns every radio group name in the bar.
func (x *Index) Groups() []string {
	names := make([]string, 0, len(x.groups))
	seen := make(map[string]struct{}, len(x.groups))
	for _, id := range x.order {
		node := x.nodes[id]
		if node.Group == "" {
			continue
		}
		if _, ok := seen[node.Group]; ok {
			continue
		}
		seen[node.Group] = struct{}{}
		names = append(names, node.Group)
	}
	return names
}

// Walk visits every indexed item in tree order.
func (x *Index) Walk(fn func(*Node)) {
	for _, id := range x.order {
		if node, ok := x.nodes[id]; ok {
			fn(node)
		}
	}
}

// List resolves the items of the deepest list described by the open
// submenu chain beneath the given bar entry. It returns false when the
// chain does not describe a valid path.
func (x *Index) List(entry int, open []string) ([]Item, bool) {
	e, ok := x.Entry(entry)
	if !ok {
		return nil, false
	}
	items := e.Items
	for _, id := range open {
		sub, found := findSubmenu(items, id)
		if !found {
			return nil, false
		}
		items = sub.Items
	}
	return items, true
}

func findSubmenu(items []Item, id string) (Item, bool) {
	for _, item := range items {
		if item.ID == id && item.Kind == KindSubmenu {
			return item, true
		}
	}
	return Item{}, false
}
