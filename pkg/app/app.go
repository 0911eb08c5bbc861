package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kerbaras/scriptures/pkg/app/screens"
	"github.com/kerbaras/scriptures/pkg/services"
)

type App struct {
	ctrl      *services.Controller
	startHash string
}

// NewApp builds the reader TUI. startHash is the first location shown; an
// empty hash opens the volume list.
func NewApp(ctrl *services.Controller, startHash string) *App {
	return &App{ctrl: ctrl, startHash: startHash}
}

func (a *App) Run(ctx context.Context) error {
	model := screens.NewRootScreen(ctx, a.ctrl, a.startHash)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
