package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/atomicstack/menubar/internal/menu"
	"github.com/atomicstack/menubar/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	MenuFile   string
	Focus      string
	Width      int
	ShowFooter bool
}

// LoadBar reads the catalogue at path, or returns the demo catalogue when
// path is empty.
func LoadBar(path string) (menu.Bar, error) {
	if path == "" {
		return menu.Demo(), nil
	}
	bar, err := menu.LoadFile(path)
	if err != nil {
		return menu.Bar{}, fmt.Errorf("load menu: %w", err)
	}
	return bar, nil
}

// NewModel builds the terminal host for cfg, revealing cfg.Focus when set.
func NewModel(ctx context.Context, cfg Config) (*ui.Model, error) {
	bar, err := LoadBar(cfg.MenuFile)
	if err != nil {
		return nil, err
	}
	model := ui.NewModel(bar, ui.Options{
		Width:      cfg.Width,
		ShowFooter: cfg.ShowFooter,
		Context:    ctx,
	})
	if cfg.Focus != "" {
		if _, ok := model.FocusQuery(cfg.Focus); !ok {
			return nil, fmt.Errorf("no menu item matches %q", cfg.Focus)
		}
	}
	return model, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(ctx context.Context, cfg Config) error {
	model, err := NewModel(ctx, cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
