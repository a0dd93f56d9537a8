package analyzer

import "log/slog"

type Option func(*Analyzer)

// WithLogger sets the structured logger used for resolution diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithGraphExporter registers a GraphExporter to send the IRGraph after analysis.
func WithGraphExporter(exporter GraphExporter) Option {
	return func(a *Analyzer) {
		a.graphExporter = exporter
	}
}

// WithServiceName sets the contract name used to namespace exported node IDs.
func WithServiceName(name string) Option {
	return func(a *Analyzer) {
		a.serviceName = name
	}
}
