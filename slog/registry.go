// Package slog provides logging decorators for bookbind services.
package slog

import (
	"log/slog"
	"time"

	"github.com/bookbind/bookbind"
)

// Ensure LoggingRegistry implements bookbind.StrategyRegistry.
var _ bookbind.StrategyRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a StrategyRegistry with debug logging for site
// resolution.
type LoggingRegistry struct {
	next   bookbind.StrategyRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next bookbind.StrategyRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// ForURL resolves the strategy, logs the matched site, and returns it.
func (r *LoggingRegistry) ForURL(url string) *bookbind.Strategy {
	begin := time.Now()
	strategy := r.next.ForURL(url)
	r.logger.Info("site resolution",
		"url", url,
		"site", string(strategy.Site),
		"duration", time.Since(begin),
	)
	return strategy
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []bookbind.Site {
	return r.next.List()
}
