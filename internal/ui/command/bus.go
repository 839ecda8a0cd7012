package command

import (
	"context"
	"fmt"

	"github.com/atomicstack/menubar/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates an action invocation for a selected menu item.
type Request struct {
	ID    string
	Label string
}

// Action turns a selection into a Bubble Tea command. A nil command means
// the action had nothing to do.
type Action func(ctx context.Context, req Request) tea.Cmd

// Result is the message produced by the default action and by actions that
// want the host to report an outcome.
type Result struct {
	ID    string
	Label string
	Info  string
	Err   error
}

// Bus coordinates the execution of menu actions.
type Bus struct {
	actions  map[string]Action
	fallback Action
}

// New initialises a command bus whose unregistered ids report a plain
// selection Result.
func New() *Bus {
	return &Bus{actions: map[string]Action{}, fallback: Selected}
}

// Register binds an action to an item id, replacing any previous one.
func (b *Bus) Register(id string, action Action) {
	b.actions[id] = action
}

// Registered reports whether id has a dedicated action.
func (b *Bus) Registered(id string) bool {
	_, ok := b.actions[id]
	return ok
}

// SetFallback replaces the action used for ids without a registration. A
// nil fallback makes such selections no-ops.
func (b *Bus) SetFallback(action Action) {
	b.fallback = action
}

// Execute wraps a menu action into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(ctx context.Context, req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	handler, ok := b.actions[req.ID]
	if !ok {
		handler = b.fallback
	}
	return func() tea.Msg {
		if handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		if err := ctx.Err(); err != nil {
			return Result{ID: req.ID, Label: req.Label, Err: fmt.Errorf("run %s: %w", req.ID, err)}
		}
		cmd := handler(ctx, req)
		if cmd == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		msg := cmd()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}

// Selected is the default action: it reports the selection back to the host.
func Selected(_ context.Context, req Request) tea.Cmd {
	return func() tea.Msg {
		return Result{ID: req.ID, Label: req.Label, Info: "selected " + req.Label}
	}
}

// Quit ends the program.
func Quit(context.Context, Request) tea.Cmd {
	return tea.Quit
}
