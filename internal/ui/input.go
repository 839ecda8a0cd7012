package ui

import (
	"fmt"
	"time"

	"github.com/atomicstack/menubar/internal/logging/events"
	"github.com/atomicstack/menubar/internal/menu"
	"github.com/atomicstack/menubar/internal/menubar"
	"github.com/atomicstack/menubar/internal/ui/command"
	"github.com/atomicstack/menubar/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		return tea.Quit
	}
	k, ok := m.keys.translate(keyMsg)
	if !ok {
		return nil
	}
	m.errMsg = ""
	return m.apply(m.bar.HandleKey(k))
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch {
	case mouse.Action == tea.MouseActionPress && mouse.Button == tea.MouseButtonLeft:
		target, entry, hit := m.hitTarget(mouse)
		switch {
		case !hit:
			return m.apply(m.bar.PointerOutside())
		case entry >= 0:
			return m.apply(m.bar.ClickEntry(entry))
		default:
			return m.apply(m.bar.ClickItem(target))
		}
	case mouse.Action == tea.MouseActionMotion:
		target, entry, hit := m.hitTarget(mouse)
		switch {
		case !hit:
			return nil
		case entry >= 0:
			return m.apply(m.bar.HoverEntry(entry))
		default:
			return m.apply(m.bar.HoverItem(target))
		}
	}
	return nil
}

// hitTarget resolves a pointer position to a bar entry index or a visible
// item id.
func (m *Model) hitTarget(mouse tea.MouseMsg) (string, int, bool) {
	index := m.bar.Index()
	for i := 0; i < index.Len(); i++ {
		entry, _ := index.Entry(i)
		if m.hits.InBounds(entryZone(entry.ID), mouse) {
			return entry.ID, i, true
		}
	}
	snap := m.bar.Snapshot()
	if snap.Phase == menubar.Closed {
		return "", -1, false
	}
	for d := len(snap.Open); d >= 0; d-- {
		items, _ := m.bar.List(d)
		for _, item := range state.Sequence(items) {
			if m.hits.InBounds(itemZone(item.ID), mouse) {
				return item.ID, -1, true
			}
		}
	}
	return "", -1, false
}

func (m *Model) handleBlurMsg(tea.Msg) tea.Cmd {
	return m.apply(m.bar.Blur())
}

func (m *Model) handleTypeAheadExpiredMsg(msg tea.Msg) tea.Cmd {
	expired, ok := msg.(typeAheadExpiredMsg)
	if !ok {
		return nil
	}
	live := m.bar.ExpireTypeAhead(expired.gen)
	events.Menu.TypeAheadExpired(expired.gen, live)
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
		m.help.Width = resize.Width
	}
	m.height = resize.Height
	events.UI.Resize(m.width, m.height)
	return nil
}

func (m *Model) handleCommandResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if res.Err != nil {
		events.Action.Error(res.Err)
		m.errMsg = res.Err.Error()
		return nil
	}
	events.Action.Success(res.Info)
	m.status = res.Info
	return nil
}

// apply traces an engine result and turns its side effects into commands:
// queued selections, the type-ahead reset timer and the mouse tracking mode.
func (m *Model) apply(res menubar.Result) tea.Cmd {
	m.trace(res)
	cmds := make([]tea.Cmd, 0, 3)
	if res.Toggled != "" {
		m.status = m.toggleStatus(res.Toggled)
	}
	for _, id := range m.pending {
		label := id
		if node, ok := m.bar.Index().Find(id); ok {
			label = node.Item.Label
		}
		cmds = append(cmds, m.bus.Execute(m.ctx, command.Request{ID: id, Label: label}))
	}
	m.pending = nil
	if res.Timer != nil {
		gen := res.Timer.Gen
		expire := m.tick(res.Timer.After, func(time.Time) tea.Msg {
			return typeAheadExpiredMsg{gen: gen}
		})
		if expire != nil {
			cmds = append(cmds, expire)
		}
	}
	if cmd := m.syncMouse(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// syncMouse enables all-motion tracking while a menu is open, so hover and
// outside clicks are observed, and returns to cell motion once it closes.
func (m *Model) syncMouse() tea.Cmd {
	listening := m.bar.ListeningOutside()
	if listening == m.allMotion {
		return nil
	}
	m.allMotion = listening
	events.UI.MouseMode(listening)
	if listening {
		return tea.EnableMouseAllMotion
	}
	return tea.EnableMouseCellMotion
}

func (m *Model) toggleStatus(id string) string {
	node, ok := m.bar.Index().Find(id)
	if !ok {
		return ""
	}
	if node.Item.Kind == menu.KindRadio {
		label := node.Group
		if group, ok := m.bar.Index().Find(node.GroupID); ok && group.Item.Label != "" {
			label = group.Item.Label
		}
		return fmt.Sprintf("%s: %s", label, node.Item.Label)
	}
	if m.bar.Checked(id) {
		return node.Item.Label + ": on"
	}
	return node.Item.Label + ": off"
}

func (m *Model) trace(res menubar.Result) {
	snap := m.bar.Snapshot()
	entryLabel := func(i int) string {
		entry, _ := m.bar.Index().Entry(i)
		return entry.Label
	}
	if res.Opened {
		events.Menu.Open(entryLabel(snap.OpenBar))
	}
	if res.Moved && snap.Phase != menubar.Closed {
		events.Menu.Focus(entryLabel(snap.OpenBar), snap.Open, m.bar.Focused())
	}
	if res.Selected != "" {
		events.Menu.Select(res.Selected)
	}
	if res.Toggled != "" {
		events.Menu.Toggle(res.Toggled, m.bar.ItemChecked(res.Toggled))
	}
	if res.Timer != nil {
		events.Menu.TypeAhead(snap.Buffer, res.Timer.Gen)
	}
	if res.Closed {
		events.Menu.Close(entryLabel(snap.BarFocus))
	}
}
