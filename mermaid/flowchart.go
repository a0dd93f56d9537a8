package mermaid

import (
	"fmt"
	"strings"

	"github.com/viant/contractflow/analyzer/hierarchy"
)

// FlowChart builds Mermaid flowchart markup
type FlowChart struct {
	data strings.Builder
}

// NewFlowChart starts a flowchart with its direction header; an unknown direction falls back to TD
func NewFlowChart(direction FlowDirection) *FlowChart {
	direction, err := ParseFlowDirection(string(direction))
	if err != nil {
		direction = TopDown
	}
	chart := &FlowChart{}
	chart.data.WriteString("flowchart ")
	chart.data.WriteString(string(direction))
	chart.AddLinebreak(1)
	return chart
}

func (f *FlowChart) AddNode(config NodeConfig) {
	f.data.WriteString(config.ID)
	f.data.WriteString(config.Shape.Left)
	f.data.WriteString(config.Text)
	f.data.WriteString(config.Shape.Right)
	if config.Class != "" {
		f.data.WriteString(":::")
		f.data.WriteString(config.Class)
	}
}

func (f *FlowChart) AddConnection(config ConnectionConfig) {
	f.data.WriteByte(' ')
	switch config.Direction {
	case BiDirectional:
		f.data.WriteString(config.Arrow.head(Left))
		f.addLine(config)
		f.data.WriteString(config.Arrow.head(Right))
	case Left:
		f.data.WriteString(config.Arrow.head(Left))
		f.addLine(config)
	case NoArrow:
		f.addLine(config)
	default:
		f.addLine(config)
		f.data.WriteString(config.Arrow.head(Right))
	}
	f.data.WriteByte(' ')
}

func (f *FlowChart) addLine(config ConnectionConfig) {
	extra := config.ExtraLength
	if extra < 0 {
		extra = 0
	}
	switch config.Line {
	case Dashed:
		f.data.WriteString("-")
		f.data.WriteString(strings.Repeat(".", 1+extra))
		f.data.WriteString("-")
	default:
		f.data.WriteString("--")
		f.data.WriteString(strings.Repeat("-", extra))
		if config.Direction == NoArrow {
			// an open link needs three dashes
			f.data.WriteString("-")
		}
	}
}

func (f *FlowChart) AddClassDef(class string, style Style) {
	fmt.Fprintf(&f.data, "classDef %s fill:%s,stroke:#333,stroke-width:%dpx", class, style.Fill, style.StrokeWidth)
	if style.Dashed {
		f.data.WriteString(",stroke-dasharray: 4 4")
	}
}

func (f *FlowChart) AddLinebreak(indents int) {
	if indents < 0 {
		indents = 1
	}
	f.data.WriteString("\n")
	f.data.WriteString(strings.Repeat("\t", indents))
}

func (f *FlowChart) Schema() string {
	return f.data.String()
}

func (f *FlowChart) NodeConfig(node *hierarchy.Node) NodeConfig {
	return NodeConfig{
		ID:    nodeID(node.Name),
		Class: node.Class(),
		Shape: ShapeOf(node.Action),
		Text:  node.Name,
	}
}

func (f *FlowChart) ConnectionConfig(connection *hierarchy.Connection) ConnectionConfig {
	switch connection.Type {
	case hierarchy.CrossContractConnection:
		return ConnectionConfig{Line: Dashed, Arrow: Standard, Direction: Right}
	case hierarchy.Emission:
		return ConnectionConfig{Line: Solid, Arrow: O, Direction: Right}
	}
	return ConnectionConfig{Line: Solid, Arrow: Standard, Direction: Right}
}

// keywords holds flowchart words that break a statement when used as a node id
var keywords = map[string]bool{
	"end":       true,
	"graph":     true,
	"flowchart": true,
	"subgraph":  true,
	"direction": true,
	"click":     true,
	"call":      true,
	"href":      true,
	"style":     true,
	"class":     true,
	"classDef":  true,
	"linkStyle": true,
}

// nodeID returns the node id of a function name; keywords get a capitalized first letter
func nodeID(name string) string {
	if !keywords[name] {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// ShapeOf maps an action onto its node shape
func ShapeOf(action hierarchy.ActionType) Shape {
	switch action {
	case hierarchy.Mutation:
		return Hexagon
	case hierarchy.View:
		return Circle
	case hierarchy.Event:
		return Flag
	}
	return Rectangle
}
