package state

import "github.com/atomicstack/menubar/internal/menu"

// Position selects which end of a list receives focus when it opens.
type Position int

const (
	First Position = iota
	Last
)

// Sequence flattens a list into the items that can hold focus: separators
// are skipped, radio groups are expanded into their radios, disabled items
// are kept.
func Sequence(items []menu.Item) []menu.Item {
	seq := make([]menu.Item, 0, len(items))
	for _, item := range items {
		switch item.Kind {
		case menu.KindSeparator:
			continue
		case menu.KindRadioGroup:
			for _, radio := range item.Items {
				if radio.Focusable() {
					seq = append(seq, radio)
				}
			}
		default:
			seq = append(seq, item)
		}
	}
	return seq
}

// IndexIn returns the position of id within a focusable sequence.
func IndexIn(seq []menu.Item, id string) int {
	if id == "" {
		return -1
	}
	for i, item := range seq {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Lookup finds the focusable item with the given id in a list.
func Lookup(items []menu.Item, id string) (menu.Item, bool) {
	seq := Sequence(items)
	if i := IndexIn(seq, id); i >= 0 {
		return seq[i], true
	}
	return menu.Item{}, false
}

// WrapIndex moves i by delta inside [0, n) with wraparound.
func WrapIndex(i, delta, n int) int {
	if n <= 0 {
		return -1
	}
	return ((i+delta)%n + n) % n
}

// Next returns the id following current, wrapping. An absent current
// resolves to the first item.
func Next(items []menu.Item, current string) string {
	seq := Sequence(items)
	if len(seq) == 0 {
		return ""
	}
	i := IndexIn(seq, current)
	if i < 0 {
		return seq[0].ID
	}
	return seq[WrapIndex(i, 1, len(seq))].ID
}

// Prev returns the id preceding current, wrapping. An absent current
// resolves to the last item.
func Prev(items []menu.Item, current string) string {
	seq := Sequence(items)
	if len(seq) == 0 {
		return ""
	}
	i := IndexIn(seq, current)
	if i < 0 {
		return seq[len(seq)-1].ID
	}
	return seq[WrapIndex(i, -1, len(seq))].ID
}

// Home returns the first focusable id, disabled or not.
func Home(items []menu.Item) string {
	seq := Sequence(items)
	if len(seq) == 0 {
		return ""
	}
	return seq[0].ID
}

// End returns the last focusable id, disabled or not.
func End(items []menu.Item) string {
	seq := Sequence(items)
	if len(seq) == 0 {
		return ""
	}
	return seq[len(seq)-1].ID
}

// DefaultTarget picks the first or last enabled item; it is the focus a
// list receives when it opens. Lists without enabled items yield "".
func DefaultTarget(items []menu.Item, pos Position) string {
	seq := Sequence(items)
	if pos == Last {
		for i := len(seq) - 1; i >= 0; i-- {
			if seq[i].Enabled() {
				return seq[i].ID
			}
		}
		return ""
	}
	for _, item := range seq {
		if item.Enabled() {
			return item.ID
		}
	}
	return ""
}
