package app

import (
	"log/slog"
	"net/http"

	"github.com/thenoetrevino/pastel/internal/events"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	httpClient *http.Client
	bus        *events.Bus
	logger     *slog.Logger
}

// WithHTTPClient sets the HTTP client used to reach the backend.
// The configured timeout is ignored when a client is supplied.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *appConfig) {
		cfg.httpClient = client
	}
}

// WithBus sets the event bus the stores publish to.
// A supplied bus is not closed by App.Close.
func WithBus(bus *events.Bus) Option {
	return func(cfg *appConfig) {
		cfg.bus = bus
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
