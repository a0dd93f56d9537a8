package analyzer

import (
	"log/slog"

	"github.com/viant/contractflow/inspector/graph"
)

// Resolver matches raw call names against the known-function table
type Resolver struct {
	table  *Table
	logger *slog.Logger
}

// NewResolver creates a resolver over table
func NewResolver(table *Table, logger *slog.Logger) *Resolver {
	return &Resolver{table: table, logger: logger}
}

// InnerCalls returns owned copies of the callable functions named by the raw calls of function.
// Unknown names, payable and initializer targets are dropped.
func (r *Resolver) InnerCalls(function *graph.Function) []*graph.Function {
	var result []*graph.Function
	for _, name := range r.table.Calls(function.Name) {
		callee, ok := r.table.Lookup(name)
		if !ok {
			r.logger.Debug("resolve.drop", "caller", function.Name, "callee", name)
			continue
		}
		if !callee.IsCallable() {
			r.logger.Debug("resolve.skip", "caller", function.Name, "callee", name)
			continue
		}
		result = append(result, callee.Clone())
	}
	return result
}

// Resolve returns a copy of function with its inner calls populated one level deep
func (r *Resolver) Resolve(function *graph.Function) *graph.Function {
	resolved := function.Clone()
	resolved.InnerCalls = r.InnerCalls(function)
	return resolved
}
