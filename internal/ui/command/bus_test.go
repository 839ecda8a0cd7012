package command

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestExecuteFallsBackToSelected(t *testing.T) {
	bus := New()
	msg := bus.Execute(context.Background(), Request{ID: "file:new", Label: "New"})()
	res, ok := msg.(Result)
	if !ok {
		t.Fatalf("expected Result, got %T", msg)
	}
	if res.ID != "file:new" || res.Info != "selected New" {
		t.Fatalf("unexpected result %#v", res)
	}
}

func TestExecuteRegisteredAction(t *testing.T) {
	bus := New()
	bus.Register("quit", Quit)
	if !bus.Registered("quit") {
		t.Fatalf("expected quit to be registered")
	}
	msg := bus.Execute(context.Background(), Request{ID: "quit"})()
	if _, ok := msg.(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", msg)
	}
}

func TestExecuteWithoutFallbackSkips(t *testing.T) {
	bus := New()
	bus.SetFallback(nil)
	if msg := bus.Execute(context.Background(), Request{ID: "x"})(); msg != nil {
		t.Fatalf("expected nil message, got %#v", msg)
	}
}

func TestExecuteNoOpAction(t *testing.T) {
	bus := New()
	bus.Register("x", func(context.Context, Request) tea.Cmd { return nil })
	if msg := bus.Execute(context.Background(), Request{ID: "x"})(); msg != nil {
		t.Fatalf("expected nil message, got %#v", msg)
	}
}

func TestExecuteCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	msg := New().Execute(ctx, Request{ID: "file:new"})()
	res, ok := msg.(Result)
	if !ok || !errors.Is(res.Err, context.Canceled) {
		t.Fatalf("expected cancellation error, got %#v", msg)
	}
}
