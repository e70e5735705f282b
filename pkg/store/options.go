package store

import (
	"log/slog"
	"time"
)

// Hooks observe store activity without subscribing.
type Hooks struct {
	// OnDispatch is called after a dispatch and its notifications finish.
	// depth is 1 for a top-level dispatch and greater for nested ones.
	OnDispatch func(depth int, d time.Duration)
}

type config struct {
	logger *slog.Logger
	hooks  Hooks
}

func defaultConfig() config {
	return config{
		logger: slog.Default().With("component", "store"),
	}
}

// Option configures a Store.
type Option func(*config)

// WithLogger sets the logger used for debug dispatch logs.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHooks installs activity hooks.
func WithHooks(h Hooks) Option {
	return func(c *config) {
		c.hooks = h
	}
}
