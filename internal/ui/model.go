package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/atomicstack/menubar/internal/logging/events"
	"github.com/atomicstack/menubar/internal/menu"
	"github.com/atomicstack/menubar/internal/menubar"
	"github.com/atomicstack/menubar/internal/theme"
	"github.com/atomicstack/menubar/internal/ui/command"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// tickFunc schedules a message after a delay; tea.Tick in production.
type tickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// typeAheadExpiredMsg delivers a type-ahead reset timer back to the engine.
type typeAheadExpiredMsg struct {
	gen int
}

// Options configures a Model.
type Options struct {
	// Width fixes the render width; 0 follows the terminal.
	Width      int
	ShowFooter bool
	Context    context.Context
	Bus        *command.Bus

	// TypeAheadTimeout overrides the engine's reset window.
	TypeAheadTimeout time.Duration

	tick tickFunc
	hits hitTester
}

// Model implements the Bubble Tea model hosting one menu bar.
type Model struct {
	bar        *menubar.Menubar
	bus        *command.Bus
	ctx        context.Context
	keys       keyMap
	help       help.Model
	hits       hitTester
	tick       tickFunc
	width      int
	height     int
	fixedWidth bool
	showFooter bool
	allMotion  bool
	status     string
	errMsg     string
	pending    []string

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the host for bar. The item id "quit" ends the program
// unless the bus already binds it.
func NewModel(bar menu.Bar, opts Options) *Model {
	m := &Model{
		bus:        opts.Bus,
		ctx:        opts.Context,
		keys:       defaultKeyMap(),
		help:       help.New(),
		hits:       opts.hits,
		tick:       opts.tick,
		showFooter: opts.ShowFooter,
	}
	if m.bus == nil {
		m.bus = command.New()
	}
	if !m.bus.Registered("quit") {
		m.bus.Register("quit", command.Quit)
	}
	if m.ctx == nil {
		m.ctx = context.Background()
	}
	if m.hits == nil {
		m.hits = zoneHits{zone.New()}
	}
	if m.tick == nil {
		m.tick = tea.Tick
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.help.Width = opts.Width
	}
	m.bar = menubar.New(bar,
		menubar.WithOnSelect(m.queueSelection),
		menubar.WithTypeAheadTimeout(opts.TypeAheadTimeout),
	)
	m.registerHandlers()
	return m
}

// Menubar exposes the hosted engine.
func (m *Model) Menubar() *menubar.Menubar {
	return m.bar
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.syncMouse()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):          m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):        m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):   m.handleWindowSizeMsg,
		reflect.TypeOf(tea.BlurMsg{}):         m.handleBlurMsg,
		reflect.TypeOf(typeAheadExpiredMsg{}): m.handleTypeAheadExpiredMsg,
		reflect.TypeOf(command.Result{}):      m.handleCommandResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) queueSelection(id string) {
	m.pending = append(m.pending, id)
}

// FocusQuery opens the menus leading to the item matching query and
// focuses it. An exact id or entry id wins; otherwise the best fuzzy match
// that can be revealed is used.
func (m *Model) FocusQuery(query string) (string, bool) {
	id, ok := m.bar.RevealQuery(query)
	if ok {
		events.Menu.Reveal(query, id)
	}
	return id, ok
}
