package mermaid

import "github.com/viant/contractflow/analyzer/hierarchy"

// Syntax builds diagram markup from node and connection configurations
type Syntax interface {
	// AddNode appends a node statement
	AddNode(config NodeConfig)

	// AddConnection appends a link between the previous and next node statements
	AddConnection(config ConnectionConfig)

	// AddClassDef appends a style class definition
	AddClassDef(class string, style Style)

	// AddLinebreak appends a newline followed by indents tabs; a negative count means one
	AddLinebreak(indents int)

	// Schema returns the markup built so far
	Schema() string

	// NodeConfig describes how a hierarchy node is drawn
	NodeConfig(node *hierarchy.Node) NodeConfig

	// ConnectionConfig describes how a hierarchy connection is drawn
	ConnectionConfig(connection *hierarchy.Connection) ConnectionConfig
}

// Shape holds the delimiters surrounding a node label
type Shape struct {
	Left  string
	Right string
}

var (
	Circle    = Shape{Left: "((", Right: "))"}
	Hexagon   = Shape{Left: "{{", Right: "}}"}
	Rectangle = Shape{Left: "[", Right: "]"}
	Flag      = Shape{Left: ">", Right: "]"}
)

// LineType selects the link body
type LineType int

const (
	Solid LineType = iota
	Dashed
)

// ArrowType selects the link head
type ArrowType int

const (
	Standard ArrowType = iota
	X
	O
)

// head returns the arrow head pointing in direction
func (a ArrowType) head(direction ArrowDirection) string {
	switch a {
	case X:
		return "x"
	case O:
		return "o"
	}
	if direction == Left {
		return "<"
	}
	return ">"
}

// ArrowDirection selects which ends of a link carry a head
type ArrowDirection int

const (
	Right ArrowDirection = iota
	Left
	BiDirectional
	NoArrow
)

// NodeConfig describes a node statement
type NodeConfig struct {
	ID    string
	Class string // optional style class
	Shape Shape
	Text  string
}

// ConnectionConfig describes a link statement
type ConnectionConfig struct {
	Line        LineType
	Arrow       ArrowType
	Direction   ArrowDirection
	ExtraLength int
}
