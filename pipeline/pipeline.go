package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/viant/contractflow/analyzer"
	"github.com/viant/contractflow/analyzer/hierarchy"
	"github.com/viant/contractflow/inspector"
	"github.com/viant/contractflow/inspector/graph"
	"github.com/viant/contractflow/mermaid"
)

// Pipeline scans a crate, resolves its call hierarchy and renders the diagram
type Pipeline struct {
	config    *graph.Config
	logger    *slog.Logger
	direction mermaid.FlowDirection
	exporter  analyzer.GraphExporter
}

// Result holds the outputs of one run
type Result struct {
	Project     *graph.Project
	Root        *hierarchy.Node
	Markup      string
	Fingerprint uint64 // content hash of Markup
}

// New creates a pipeline
func New(options ...Option) *Pipeline {
	p := &Pipeline{
		config:    graph.DefaultConfig(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		direction: mermaid.TopDown,
	}
	for _, option := range options {
		option(p)
	}
	p.config.Logger = p.logger
	p.config.Init()
	return p
}

// Scan inspects every source of the crate holding location
func (p *Pipeline) Scan(ctx context.Context, location string) (*graph.Project, error) {
	project, err := inspector.NewFactory(p.config).InspectProject(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", location, err)
	}
	return project, nil
}

// Run scans location and renders its call hierarchy
func (p *Pipeline) Run(ctx context.Context, location string) (*Result, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	started := time.Now()
	p.logger.Info("pipeline.start", "path", location, "workers", p.config.Workers)
	project, err := p.Scan(ctx, location)
	if err != nil {
		return nil, err
	}
	p.logger.Info("pipeline.scanned", "crate", project.Name, "edition", project.Edition, "files", len(project.Files), "functions", len(project.Functions()))
	result, err := p.render(ctx, project)
	if err != nil {
		return nil, err
	}
	p.logger.Info("pipeline.done", "crate", project.Name, "connections", countConnections(result.Root), "elapsed", time.Since(started))
	return result, nil
}

// RunSource renders the call hierarchy of a single source file
func (p *Pipeline) RunSource(ctx context.Context, src []byte) (*Result, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	rust, err := inspector.NewFactory(p.config).GetInspector("lib.rs")
	if err != nil {
		return nil, err
	}
	scanned, err := rust.InspectSource(src)
	if err != nil {
		return nil, err
	}
	return p.render(ctx, &graph.Project{Name: "source", Files: []*graph.File{scanned}})
}

func (p *Pipeline) render(ctx context.Context, project *graph.Project) (*Result, error) {
	options := []analyzer.Option{analyzer.WithLogger(p.logger)}
	if p.exporter != nil {
		options = append(options, analyzer.WithGraphExporter(p.exporter))
	}
	root, err := analyzer.New(options...).Analyze(ctx, project)
	if err != nil {
		return nil, err
	}
	markup := mermaid.Render(root, p.direction)
	fingerprint, err := graph.Hash([]byte(markup))
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint markup: %w", err)
	}
	return &Result{
		Project:     project,
		Root:        root,
		Markup:      markup,
		Fingerprint: fingerprint,
	}, nil
}

// validate rejects options that cannot produce valid markup
func (p *Pipeline) validate() error {
	direction, err := mermaid.ParseFlowDirection(string(p.direction))
	if err != nil {
		return err
	}
	p.direction = direction
	return nil
}

func countConnections(root *hierarchy.Node) int {
	count := 0
	root.Walk(func(*hierarchy.Node, *hierarchy.Connection) {
		count++
	})
	return count
}
