package hierarchy

import "github.com/viant/contractflow/inspector/graph"

// RootName names the synthetic root node
const RootName = "Contract"

// Node represents a function occurrence in the call hierarchy
type Node struct {
	Name        string        `yaml:"name"`
	Scope       ScopeType     `yaml:"scope"`
	Action      ActionType    `yaml:"action"`
	Connections []*Connection `yaml:"connections,omitempty"`
}

// Connection represents an edge to an owned callee node
type Connection struct {
	Type ConnectionType `yaml:"type"`
	Node *Node          `yaml:"node"`
}

// NewRoot creates the synthetic contract root
func NewRoot() *Node {
	return &Node{Name: RootName, Scope: Contract, Action: None}
}

// NewNode collapses a classified function into a node
func NewNode(function *graph.Function) *Node {
	return &Node{
		Name:   function.Name,
		Scope:  ScopeOf(function),
		Action: ActionOf(function),
	}
}

// Connect appends a connection to a new node built from the callee and returns that node
func (n *Node) Connect(callee *graph.Function) *Node {
	child := NewNode(callee)
	n.Connections = append(n.Connections, &Connection{Type: ConnectionTypeOf(callee), Node: child})
	return child
}

// Class returns the style class of the node
func (n *Node) Class() string {
	return Class(n.Scope, n.Action)
}

// Walk visits every connection breadth first
func (n *Node) Walk(visit func(parent *Node, connection *Connection)) {
	queue := []*Node{n}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, connection := range node.Connections {
			visit(node, connection)
			queue = append(queue, connection.Node)
		}
	}
}

// ScopeOf derives the node scope from function facets
func ScopeOf(f *graph.Function) ScopeType {
	switch {
	case f.IsPublic && !f.IsInit && !f.IsPayable:
		return Public
	case !f.IsPublic:
		return Private
	case f.IsTraitImpl:
		return Trait
	case f.IsInit:
		return Initializer
	case f.IsPayable:
		return Payable
	}
	return Public
}

// ActionOf derives the node action from function facets
func ActionOf(f *graph.Function) ActionType {
	switch {
	case f.IsEvent:
		return Event
	case f.IsMutable:
		return Mutation
	case f.IsProcess:
		return Process
	case f.IsView:
		return View
	}
	return None
}

// ConnectionTypeOf derives how a callee is reached
func ConnectionTypeOf(callee *graph.Function) ConnectionType {
	switch {
	case callee.IsEvent:
		return Emission
	case callee.IsTraitImpl:
		return CrossContractConnection
	}
	return DirectConnection
}
