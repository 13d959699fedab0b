package store

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/pastel/internal/events"
	"github.com/thenoetrevino/pastel/internal/pastel"
)

// Option is a functional option for configuring a store
type Option func(*storeConfig)

// storeConfig holds the collaborators shared by both stores
type storeConfig struct {
	publisher events.Publisher
	logger    *slog.Logger
	now       func() time.Time
	colors    func() string
}

func newStoreConfig(opts []Option) storeConfig {
	cfg := storeConfig{
		logger: slog.Default(),
		now:    time.Now,
		colors: pastel.Generate,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithPublisher sets where cache changes and errors are announced
func WithPublisher(p events.Publisher) Option {
	return func(cfg *storeConfig) {
		cfg.publisher = p
	}
}

// WithLogger sets the logger for failed requests
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *storeConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithClock sets the clock used for fallback ids
func WithClock(now func() time.Time) Option {
	return func(cfg *storeConfig) {
		cfg.now = now
	}
}

// WithColorGenerator sets the color source for new categories
func WithColorGenerator(colors func() string) Option {
	return func(cfg *storeConfig) {
		cfg.colors = colors
	}
}
