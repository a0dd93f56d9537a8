package analyzer

import (
	"context"
	"fmt"

	"github.com/viant/contractflow/analyzer/hierarchy"
)

// IRNode represents a node in the intermediate representation graph.
type IRNode struct {
	ID         string                 // normalized identifier across contracts
	Type       string                 // node class, e.g. Public-Mutation
	Properties map[string]interface{} // additional properties (name, scope, action, file, etc.)
}

// IREdge represents an edge in the intermediate representation graph.
type IREdge struct {
	Source     string                 // source node ID
	Target     string                 // target node ID
	Type       string                 // edge type (Direct, CrossContract, Emission)
	Properties map[string]interface{} // additional attributes
}

// IRGraph holds the nodes and edges for the intermediate representation.
type IRGraph struct {
	Nodes []IRNode
	Edges []IREdge
}

// GraphExporter defines an interface to export an IRGraph to a storage backend (e.g., Neo4j).
type GraphExporter interface {
	Export(ctx context.Context, graph *IRGraph) error
}

// normalizeID builds a unique ID combining language, service name, and function name.
func normalizeID(service, name string) string {
	return fmt.Sprintf("%s:%s:%s", Language, service, name)
}

// BuildIRGraph flattens the hierarchy into unique nodes and edges.
// Repeated occurrences of a function collapse into one node; repeated calls into one edge.
func BuildIRGraph(root *hierarchy.Node, table *Table, service string) *IRGraph {
	result := &IRGraph{}
	nodes := make(map[string]bool)
	edges := make(map[string]bool)
	addNode := func(node *hierarchy.Node) string {
		id := normalizeID(service, node.Name)
		if nodes[id] {
			return id
		}
		nodes[id] = true
		properties := map[string]interface{}{
			"name":     node.Name,
			"scope":    string(node.Scope),
			"action":   string(node.Action),
			"language": Language,
			"service":  service,
		}
		if table != nil {
			if function, ok := table.Lookup(node.Name); ok && function.Location != nil {
				properties["file"] = function.Location.Path
				properties["line"] = function.Location.Line
			}
		}
		result.Nodes = append(result.Nodes, IRNode{ID: id, Type: node.Class(), Properties: properties})
		return id
	}
	addNode(root)
	root.Walk(func(parent *hierarchy.Node, connection *hierarchy.Connection) {
		source := addNode(parent)
		target := addNode(connection.Node)
		key := source + "|" + target + "|" + string(connection.Type)
		if edges[key] {
			return
		}
		edges[key] = true
		result.Edges = append(result.Edges, IREdge{
			Source:     source,
			Target:     target,
			Type:       string(connection.Type),
			Properties: map[string]interface{}{"service": service},
		})
	})
	return result
}
