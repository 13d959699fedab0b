package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/pastel/internal/app"
	"github.com/thenoetrevino/pastel/internal/config"
)

// Run starts the terminal UI and blocks until the user quits or ctx is done
func Run(ctx context.Context, a *app.App, cfg *config.Config) error {
	m := New(ctx, a, cfg)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
