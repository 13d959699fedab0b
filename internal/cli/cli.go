package cli

import (
	"context"
	"errors"

	"github.com/thenoetrevino/pastel/internal/app"
)

// ErrNoApp is returned when a command runs without an App in its context
var ErrNoApp = errors.New("application not initialized")

type contextKey string

const appKey contextKey = "app"

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with the stores
}

// WithApp returns a context carrying a for GetCLIFromContext
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns the CLI for the App stored by WithApp
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoApp
	}
	a, ok := ctx.Value(appKey).(*app.App)
	if !ok || a == nil {
		return nil, ErrNoApp
	}
	return &CLI{App: a}, nil
}

// Load fetches both collections so todos and categories can be looked up by id
func (c *CLI) Load(ctx context.Context) error {
	return c.App.Load(ctx)
}
