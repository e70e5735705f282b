package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Config configures the server.
type Config struct {
	// Address is the listen address (default: "localhost:3000").
	Address string

	// Title is the page title of the shell.
	Title string

	// ReadTimeout and WriteTimeout are passed to http.Server.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown (default: 10s).
	ShutdownTimeout time.Duration

	// AllowedOrigins lists origins allowed to open a live session.
	// Empty means same-origin only.
	AllowedOrigins []string

	// MetricsPath exposes Gatherer at this path. Empty disables it.
	MetricsPath string

	// Gatherer is the registry served on MetricsPath
	// (default: prometheus.DefaultGatherer).
	Gatherer prometheus.Gatherer

	// MaxMessageSize limits client frames in bytes (default: 64 KiB).
	MaxMessageSize int64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:         "localhost:3000",
		Title:           "vlite",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		MetricsPath:     "/metrics",
		Gatherer:        prometheus.DefaultGatherer,
		MaxMessageSize:  64 << 10,
	}
}

// withDefaults fills unset fields from DefaultConfig. MetricsPath is kept
// as given so it can be disabled.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Address == "" {
		c.Address = d.Address
	}
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	if c.Gatherer == nil {
		c.Gatherer = d.Gatherer
	}
	if c.MaxMessageSize == 0 {
		c.MaxMessageSize = d.MaxMessageSize
	}
	return c
}
