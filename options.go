package mofassist

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	generatedPrefix string
	idSource        func() string

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithGeneratedPrefix sets the identifier prefix of generated candidates.
// Default: "GEN_".
func WithGeneratedPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.generatedPrefix = prefix
	})
}

// WithIDSource replaces the random suffix of generated candidate identifiers.
// Useful for deterministic output in tests.
func WithIDSource(src func() string) Option {
	return optionFunc(func(c *clientConfig) {
		c.idSource = src
	})
}

// WithLogger enables structured logging for client operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers client metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
