package mermaid

import "github.com/viant/contractflow/analyzer/hierarchy"

const (
	publicFill      = "#12A5F1"
	privateFill     = "#858585"
	traitFill       = "#8E7CC3"
	payableFill     = "#6AA84F"
	initializerFill = "#FFA080"
	contractFill    = "#C2D5E3"
	eventFill       = "#FFDF80"
)

// Style describes the class definition of a scope and action pair
type Style struct {
	Fill        string
	StrokeWidth int
	Dashed      bool
}

// StyleOf returns the style of every scope and action pair
func StyleOf(scope hierarchy.ScopeType, action hierarchy.ActionType) Style {
	style := Style{StrokeWidth: 2}
	if scope == hierarchy.Private && action != hierarchy.View {
		style.StrokeWidth = 1
	}
	if action == hierarchy.Event {
		style.Fill = eventFill
		style.Dashed = true
		return style
	}
	switch scope {
	case hierarchy.Public:
		style.Fill = publicFill
		if action == hierarchy.Process || action == hierarchy.None {
			style.Fill = privateFill
		}
	case hierarchy.Trait:
		style.Fill = traitFill
	case hierarchy.Payable:
		style.Fill = payableFill
	case hierarchy.Initializer:
		style.Fill = initializerFill
	case hierarchy.Contract:
		style.Fill = contractFill
	default:
		style.Fill = privateFill
	}
	return style
}

// AddStyles appends one class definition per pair occurring in the hierarchy, in enumeration order
func AddStyles(syntax Syntax, root *hierarchy.Node) {
	used := map[string]bool{root.Class(): true}
	root.Walk(func(_ *hierarchy.Node, connection *hierarchy.Connection) {
		used[connection.Node.Class()] = true
	})
	for _, scope := range hierarchy.Scopes {
		for _, action := range hierarchy.Actions {
			class := hierarchy.Class(scope, action)
			if !used[class] {
				continue
			}
			syntax.AddClassDef(class, StyleOf(scope, action))
			syntax.AddLinebreak(1)
		}
	}
}
