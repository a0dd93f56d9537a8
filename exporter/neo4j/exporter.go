package neo4j

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/viant/contractflow/analyzer"
)

const defaultBatchSize = 500

// runner executes a single Cypher statement
type runner func(ctx context.Context, cypher string, params map[string]any) error

// Exporter loads the resolved call graph into Neo4j using batch UNWIND queries
type Exporter struct {
	driver    neo4j.DriverWithContext
	run       runner
	batchSize int
	clean     bool
	logger    *slog.Logger
}

// Option configures an Exporter
type Option func(*Exporter)

// WithClean removes previously exported functions before loading
func WithClean(clean bool) Option {
	return func(e *Exporter) {
		e.clean = clean
	}
}

// WithBatchSize sets the number of rows per UNWIND statement
func WithBatchSize(size int) Option {
	return func(e *Exporter) {
		if size > 0 {
			e.batchSize = size
		}
	}
}

// WithLogger sets the structured logger
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New connects to Neo4j and returns a ready-to-use exporter
func New(uri, user, password string, options ...Option) (*Exporter, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}
	e := newExporter(nil, options...)
	e.driver = driver
	e.run = func(ctx context.Context, cypher string, params map[string]any) error {
		_, err := neo4j.ExecuteQuery(ctx, driver, cypher, params, neo4j.EagerResultTransformer)
		return err
	}
	return e, nil
}

func newExporter(run runner, options ...Option) *Exporter {
	e := &Exporter{
		run:       run,
		batchSize: defaultBatchSize,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Verify checks the database is reachable
func (e *Exporter) Verify(ctx context.Context) error {
	if e.driver == nil {
		return nil
	}
	return e.driver.VerifyConnectivity(ctx)
}

// Close releases the underlying Neo4j driver resources
func (e *Exporter) Close(ctx context.Context) error {
	if e.driver == nil {
		return nil
	}
	return e.driver.Close(ctx)
}

// Export writes graph nodes and edges
func (e *Exporter) Export(ctx context.Context, graph *analyzer.IRGraph) error {
	if e.clean {
		if err := e.run(ctx, cleanQuery, nil); err != nil {
			return fmt.Errorf("failed to clean graph: %w", err)
		}
	}
	if err := e.run(ctx, indexQuery, nil); err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	e.logger.Info("export.nodes", "count", len(graph.Nodes))
	for _, batch := range chunk(nodeRows(graph.Nodes), e.batchSize) {
		if err := e.run(ctx, nodeQuery, map[string]any{"batch": batch}); err != nil {
			return fmt.Errorf("failed to load nodes: %w", err)
		}
	}
	e.logger.Info("export.edges", "count", len(graph.Edges))
	for _, batch := range chunk(edgeRows(graph.Edges), e.batchSize) {
		if err := e.run(ctx, edgeQuery, map[string]any{"batch": batch}); err != nil {
			return fmt.Errorf("failed to load edges: %w", err)
		}
	}
	return nil
}

func nodeRows(nodes []analyzer.IRNode) []map[string]any {
	rows := make([]map[string]any, 0, len(nodes))
	for _, node := range nodes {
		row := map[string]any{"id": node.ID, "class": node.Type}
		for k, v := range node.Properties {
			row[k] = v
		}
		rows = append(rows, row)
	}
	return rows
}

func edgeRows(edges []analyzer.IREdge) []map[string]any {
	rows := make([]map[string]any, 0, len(edges))
	for _, edge := range edges {
		rows = append(rows, map[string]any{
			"source": edge.Source,
			"target": edge.Target,
			"type":   edge.Type,
		})
	}
	return rows
}

func chunk(rows []map[string]any, size int) [][]map[string]any {
	var result [][]map[string]any
	for len(rows) > 0 {
		n := size
		if n > len(rows) {
			n = len(rows)
		}
		result = append(result, rows[:n])
		rows = rows[n:]
	}
	return result
}
