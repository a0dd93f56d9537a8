package analyzer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/viant/contractflow/analyzer/hierarchy"
	"github.com/viant/contractflow/inspector/graph"
)

// Language tags exported graph nodes
const Language = "rust"

// Analyzer resolves scanned functions into a call hierarchy
type Analyzer struct {
	logger        *slog.Logger
	graphExporter GraphExporter
	serviceName   string
}

// New creates an analyzer
func New(options ...Option) *Analyzer {
	a := &Analyzer{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Analyze builds the known-function table and the call hierarchy of a scanned project.
// When a graph exporter is registered, the hierarchy is exported as well.
func (a *Analyzer) Analyze(ctx context.Context, project *graph.Project) (*hierarchy.Node, error) {
	table := NewTable(project.Files...)
	a.logger.Debug("resolve.table", "functions", table.Len())
	root := a.BuildHierarchy(table)
	if a.graphExporter == nil {
		return root, nil
	}
	service := a.serviceName
	if service == "" {
		service = project.Name
	}
	if err := a.graphExporter.Export(ctx, BuildIRGraph(root, table, service)); err != nil {
		return nil, fmt.Errorf("failed to export graph: %w", err)
	}
	return root, nil
}
