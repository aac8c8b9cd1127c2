package httpserver

import (
	"log/slog"
	"time"
)

// Option configures the HTTP server. Zero and negative values keep the default.
type Option func(*config)

func WithAddr(addr string) Option {
	return func(c *config) {
		if addr != "" {
			c.addr = addr
		}
	}
}

// WithTimeouts sets the read, write and idle timeouts of the underlying http.Server.
// The write timeout must cover a full POST /push/ run, which answers only
// after every subscriber has been tried.
func WithTimeouts(read, write, idle time.Duration) Option {
	return func(c *config) {
		c.readTimeout = positive(read, c.readTimeout)
		c.writeTimeout = positive(write, c.writeTimeout)
		c.idleTimeout = positive(idle, c.idleTimeout)
	}
}

func WithShutdownTimeout(d time.Duration) Option {
	return func(c *config) { c.shutdownTimeout = positive(d, c.shutdownTimeout) }
}

// WithLogger sets the logger for lifecycle events. Nil keeps the discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func positive(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
