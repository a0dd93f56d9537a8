package mermaid

import "github.com/viant/contractflow/analyzer/hierarchy"

// Traverse emits one statement per connection, breadth first from root
func Traverse(syntax Syntax, root *hierarchy.Node) {
	root.Walk(func(parent *hierarchy.Node, connection *hierarchy.Connection) {
		syntax.AddNode(syntax.NodeConfig(parent))
		syntax.AddConnection(syntax.ConnectionConfig(connection))
		syntax.AddNode(syntax.NodeConfig(connection.Node))
		syntax.AddLinebreak(1)
	})
}

// Render builds the complete flowchart markup with its style block
func Render(root *hierarchy.Node, direction FlowDirection) string {
	chart := NewFlowChart(direction)
	Traverse(chart, root)
	AddStyles(chart, root)
	return chart.Schema()
}
