package rust

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// callCollector gathers call names in source order
type callCollector struct {
	source []byte
	calls  []string
}

// collectCalls returns the ordered call names found under node
func collectCalls(node *sitter.Node, source []byte) []string {
	c := &callCollector{source: source}
	c.walk(node)
	return c.calls
}

func (c *callCollector) walk(node *sitter.Node) {
	if node == nil {
		return
	}
	switch kindOf(node) {
	case kindLeaf, kindNestedItem:
	case kindComposite:
		c.walkChildren(node)
	case kindCall:
		c.walkCall(node)
	case kindField:
		c.walk(node.ChildByFieldName("value"))
	case kindGeneric:
		c.walk(node.ChildByFieldName("function"))
	case kindIf:
		c.walk(node.ChildByFieldName("condition"))
		c.walk(node.ChildByFieldName("value"))
		c.walk(node.ChildByFieldName("consequence"))
		c.walk(node.ChildByFieldName("alternative"))
	case kindLetCondition:
		c.walk(node.ChildByFieldName("value"))
	case kindMatch:
		c.walk(node.ChildByFieldName("value"))
		c.walk(node.ChildByFieldName("body"))
	case kindMatchArm:
		if pattern := node.ChildByFieldName("pattern"); pattern != nil {
			c.walk(pattern.ChildByFieldName("condition"))
		}
		c.walk(node.ChildByFieldName("value"))
	case kindClosure, kindBodyOnly:
		c.walk(node.ChildByFieldName("body"))
	case kindStruct:
		c.walk(node.ChildByFieldName("body"))
	case kindFieldInit:
		c.walk(node.ChildByFieldName("value"))
	case kindLet:
		c.walk(node.ChildByFieldName("value"))
		c.walk(node.ChildByFieldName("alternative"))
	case kindConstItem:
		c.walk(node.ChildByFieldName("value"))
	case kindWhile:
		c.walk(node.ChildByFieldName("condition"))
		c.walk(node.ChildByFieldName("value"))
		c.walk(node.ChildByFieldName("body"))
	case kindFor:
		c.walk(node.ChildByFieldName("value"))
		c.walk(node.ChildByFieldName("body"))
	}
}

func (c *callCollector) walkChildren(node *sitter.Node) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		c.walk(node.NamedChild(i))
	}
}

// walkCall visits the receiver chain, records the callee name, then visits the arguments
func (c *callCollector) walkCall(node *sitter.Node) {
	c.walkCallee(node.ChildByFieldName("function"))
	c.walk(node.ChildByFieldName("arguments"))
}

func (c *callCollector) walkCallee(fn *sitter.Node) {
	if fn == nil {
		return
	}
	switch fn.Type() {
	case "identifier":
		c.calls = append(c.calls, fn.Content(c.source))
	case "field_expression":
		c.walk(fn.ChildByFieldName("value"))
		if field := fn.ChildByFieldName("field"); field != nil && field.Type() == "field_identifier" {
			c.calls = append(c.calls, field.Content(c.source))
		}
	case "scoped_identifier":
		if name := fn.ChildByFieldName("name"); name != nil {
			c.calls = append(c.calls, name.Content(c.source))
		}
	case "generic_function":
		c.walkCallee(fn.ChildByFieldName("function"))
	default:
		c.walk(fn)
	}
}
