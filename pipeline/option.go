package pipeline

import (
	"log/slog"

	"github.com/viant/contractflow/analyzer"
	"github.com/viant/contractflow/inspector/graph"
	"github.com/viant/contractflow/mermaid"
)

type Option func(*Pipeline)

// WithLogger sets the structured logger shared by all stages
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithConfig sets the scan configuration
func WithConfig(config *graph.Config) Option {
	return func(p *Pipeline) {
		if config != nil {
			p.config = config
		}
	}
}

// WithDirection sets the flowchart direction
func WithDirection(direction mermaid.FlowDirection) Option {
	return func(p *Pipeline) {
		p.direction = direction
	}
}

// WithGraphExporter exports the resolved call graph after analysis
func WithGraphExporter(exporter analyzer.GraphExporter) Option {
	return func(p *Pipeline) {
		p.exporter = exporter
	}
}
