package analyzer

import (
	"github.com/viant/contractflow/analyzer/hierarchy"
	"github.com/viant/contractflow/inspector/graph"
)

// pending is a queued node awaiting expansion with the names on its root path
type pending struct {
	node     *hierarchy.Node
	function *graph.Function
	path     map[string]bool
}

// BuildHierarchy assembles the call tree breadth first from the contract entry points.
// A callee already on the root path is connected but not expanded.
func (a *Analyzer) BuildHierarchy(table *Table) *hierarchy.Node {
	resolver := NewResolver(table, a.logger)
	root := hierarchy.NewRoot()
	var queue []*pending
	for _, function := range table.Functions() {
		if !function.IsEntryPoint() {
			continue
		}
		queue = append(queue, &pending{
			node:     root.Connect(function),
			function: function,
			path:     map[string]bool{function.Name: true},
		})
	}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		resolved := resolver.Resolve(item.function)
		for _, callee := range resolved.InnerCalls {
			child := item.node.Connect(callee)
			if item.path[callee.Name] {
				a.logger.Debug("hierarchy.cycle", "caller", item.function.Name, "callee", callee.Name)
				continue
			}
			queue = append(queue, &pending{
				node:     child,
				function: callee,
				path:     extendPath(item.path, callee.Name),
			})
		}
	}
	return root
}

func extendPath(path map[string]bool, name string) map[string]bool {
	result := make(map[string]bool, len(path)+1)
	for k := range path {
		result[k] = true
	}
	result[name] = true
	return result
}
