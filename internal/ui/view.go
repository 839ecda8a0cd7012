package ui

import (
	"strings"

	"github.com/atomicstack/menubar/internal/format/table"
	"github.com/atomicstack/menubar/internal/menu"
	"github.com/atomicstack/menubar/internal/menubar"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"
)

const (
	columnLimit   = 32
	submenuMarker = "▸"
	separatorRune = "─"
)

// hitTester marks rendered regions and resolves pointer positions to them.
type hitTester interface {
	Mark(id, v string) string
	Scan(v string) string
	InBounds(id string, msg tea.MouseMsg) bool
}

type zoneHits struct {
	*zone.Manager
}

func (z zoneHits) InBounds(id string, msg tea.MouseMsg) bool {
	info := z.Get(id)
	return info != nil && info.InBounds(msg)
}

func entryZone(id string) string { return "entry:" + id }

func itemZone(id string) string { return "item:" + id }

type row struct {
	id       string
	cells    []string
	sep      bool
	group    bool
	disabled bool
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := []string{m.barRow()}
	if menus := m.dropdowns(); menus != "" {
		lines = append(lines, menus)
	}
	if status := m.statusLine(); status != "" {
		lines = append(lines, "", status)
	}
	if m.showFooter {
		lines = append(lines, "", render(styles.Footer, m.help.View(m.keys)))
	}
	return m.hits.Scan(strings.Join(lines, "\n"))
}

func (m *Model) barRow() string {
	snap := m.bar.Snapshot()
	index := m.bar.Index()
	var b strings.Builder
	for i := 0; i < index.Len(); i++ {
		entry, _ := index.Entry(i)
		style := styles.BarEntry
		switch {
		case snap.OpenBar == i:
			style = styles.BarEntryOpen
		case snap.Phase == menubar.Closed && snap.BarFocus == i:
			style = styles.BarEntryFocused
		}
		b.WriteString(m.hits.Mark(entryZone(entry.ID), render(style, entryText(entry.Label, m.labelLimit()))))
	}
	if snap.Buffer != "" {
		b.WriteString("  ")
		b.WriteString(render(styles.TypeAhead, "/"+snap.Buffer))
	}
	return b.String()
}

func entryText(label string, limit int) string {
	return " " + fit(label, limit) + " "
}

// entryOffset is the column at which the dropdown of entry i starts.
func (m *Model) entryOffset(i int) int {
	offset := 0
	for j := 0; j < i; j++ {
		entry, _ := m.bar.Index().Entry(j)
		offset += lipgloss.Width(entryText(entry.Label, m.labelLimit()))
	}
	return offset
}

// dropdowns renders the open dropdown and its open submenus side by side,
// each submenu lowered to the row of its trigger.
func (m *Model) dropdowns() string {
	snap := m.bar.Snapshot()
	if snap.Phase == menubar.Closed {
		return ""
	}
	blocks := make([]string, 0, len(snap.Open)+2)
	if offset := m.entryOffset(snap.OpenBar); offset > 0 {
		blocks = append(blocks, strings.Repeat(" ", offset))
	}
	top := 0
	for d := 0; d <= len(snap.Open); d++ {
		items, _ := m.bar.List(d)
		list, rowOf := m.renderList(items, snap.Focus[d])
		blocks = append(blocks, strings.Repeat("\n", top)+render(styles.Menu, list))
		if d < len(snap.Open) {
			top += rowOf[snap.Open[d]]
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// renderList formats one list and reports the row index of every item.
func (m *Model) renderList(items []menu.Item, focused string) (string, map[string]int) {
	limit := m.labelLimit()
	rows := make([]row, 0, len(items))
	hasMarks := false
	add := func(item menu.Item) {
		mark := m.itemMark(item)
		if mark != "" {
			hasMarks = true
		}
		hint := item.Shortcut
		if item.HasPopup() {
			hint = submenuMarker
		}
		rows = append(rows, row{id: item.ID, cells: []string{mark, fit(item.Label, limit), hint}, disabled: item.Disabled})
	}
	for _, item := range items {
		switch item.Kind {
		case menu.KindSeparator:
			rows = append(rows, row{sep: true})
		case menu.KindRadioGroup:
			if item.Label != "" {
				rows = append(rows, row{group: true, cells: []string{"", fit(item.Label, limit), ""}})
			}
			for _, radio := range item.Items {
				add(radio)
			}
		default:
			add(item)
		}
	}
	if len(rows) == 0 {
		return render(styles.DisabledItem, "(empty)"), map[string]int{}
	}

	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		if r.sep {
			continue
		}
		if hasMarks {
			cells = append(cells, r.cells)
		} else {
			cells = append(cells, r.cells[1:])
		}
	}
	alignments := []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight}
	if !hasMarks {
		alignments = alignments[1:]
	}
	formatted := table.Format(cells, alignments)
	width := 0
	if len(formatted) > 0 {
		width = lipgloss.Width(formatted[0])
	}

	out := make([]string, len(rows))
	rowOf := make(map[string]int, len(rows))
	next := 0
	for i, r := range rows {
		if r.sep {
			out[i] = render(styles.Separator, strings.Repeat(separatorRune, width))
			continue
		}
		text := formatted[next]
		next++
		switch {
		case r.group:
			out[i] = render(styles.GroupLabel, text)
			continue
		case r.id == focused && r.disabled:
			text = render(styles.SelectedDisabled, text)
		case r.id == focused:
			text = render(styles.SelectedItem, text)
		case r.disabled:
			text = render(styles.DisabledItem, text)
		default:
			text = render(styles.Item, text)
		}
		rowOf[r.id] = i
		out[i] = m.hits.Mark(itemZone(r.id), text)
	}
	return strings.Join(out, "\n"), rowOf
}

func (m *Model) itemMark(item menu.Item) string {
	switch item.Kind {
	case menu.KindCheckbox:
		if m.bar.Checked(item.ID) {
			return "[x]"
		}
		return "[ ]"
	case menu.KindRadio:
		if m.bar.ItemChecked(item.ID) {
			return "(•)"
		}
		return "( )"
	}
	return ""
}

func (m *Model) statusLine() string {
	if m.errMsg != "" {
		return render(styles.Error, "Error: "+m.errMsg)
	}
	if m.status != "" {
		return render(styles.Info, m.status)
	}
	return ""
}

func (m *Model) labelLimit() int {
	if m.width > 0 && m.width < columnLimit {
		return m.width
	}
	return columnLimit
}

func fit(text string, limit int) string {
	if limit <= 0 || lipgloss.Width(text) <= limit {
		return text
	}
	return truncate.StringWithTail(text, uint(limit), "…")
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}
