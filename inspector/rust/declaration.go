package rust

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/contractflow/inspector/graph"
)

// implBlock describes the impl block enclosing a method
type implBlock struct {
	typeName string
	trait    string
	exposed  bool // marked with an exposed block attribute
}

// signature holds the classification inputs read from a function_item
type signature struct {
	name        string
	isPublic    bool
	hasReceiver bool
	isRefMut    bool
	returnsUnit bool
}

// parseSignature reads name, visibility, receiver and return shape of a function_item
func parseSignature(node *sitter.Node, source []byte) signature {
	sig := signature{returnsUnit: true}
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		sig.name = nameNode.Content(source)
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "visibility_modifier" {
			sig.isPublic = child.Content(source) == "pub"
			break
		}
	}
	if params := node.ChildByFieldName("parameters"); params != nil {
		for i := 0; i < int(params.NamedChildCount()); i++ {
			param := params.NamedChild(i)
			if param.Type() != "self_parameter" {
				continue
			}
			sig.hasReceiver = true
			sig.isRefMut = isRefMutReceiver(param)
			break
		}
	}
	if returnType := node.ChildByFieldName("return_type"); returnType != nil {
		sig.returnsUnit = returnType.Type() == "unit_type"
	}
	return sig
}

// isRefMutReceiver reports whether a self_parameter has both a reference and mut
func isRefMutReceiver(param *sitter.Node) bool {
	var hasRef, hasMut bool
	for i := 0; i < int(param.ChildCount()); i++ {
		switch param.Child(i).Type() {
		case "&":
			hasRef = true
		case "mutable_specifier":
			hasMut = true
		}
	}
	return hasRef && hasMut
}

// classifyMethod builds the function record of a method declared inside an impl block
func (i *Inspector) classifyMethod(node *sitter.Node, source []byte, attrs Attributes, impl *implBlock) *graph.Function {
	sig := parseSignature(node, source)
	markers := i.config.Markers
	isEvent := impl.typeName != "" && impl.typeName == markers.EventType
	if !impl.exposed && !isEvent {
		return &graph.Function{
			Name:         sig.name,
			Receiver:     impl.typeName,
			IsOutOfScope: true,
			Location:     location(node),
		}
	}
	isTraitImpl := impl.trait != ""
	isInit := attrs.Has(markers.Init)
	return &graph.Function{
		Name:               sig.name,
		Receiver:           impl.typeName,
		Trait:              impl.trait,
		IsPublic:           sig.isPublic || (isTraitImpl && impl.exposed),
		IsTraitImpl:        isTraitImpl,
		IsInit:             isInit,
		IsPayable:          attrs.Has(markers.Payable),
		IsView:             sig.hasReceiver && !sig.isRefMut && !isInit,
		IsMutable:          sig.hasReceiver && sig.isRefMut,
		IsProcess:          sig.returnsUnit,
		IsPrivateCrossCall: attrs.Has(markers.Private),
		IsEvent:            isEvent,
		Location:           location(node),
	}
}

// classifyFunction builds the function record of a free function
func (i *Inspector) classifyFunction(node *sitter.Node, source []byte) *graph.Function {
	sig := parseSignature(node, source)
	return &graph.Function{
		Name:         sig.name,
		IsProcess:    sig.returnsUnit,
		IsOutOfScope: true,
		Location:     location(node),
	}
}

func location(node *sitter.Node) *graph.Location {
	return &graph.Location{
		Line:  int(node.StartPoint().Row) + 1,
		Start: int(node.StartByte()),
		End:   int(node.EndByte()),
	}
}

// typeName returns the base name of an impl target type
func typeName(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	switch node.Type() {
	case "generic_type":
		return typeName(node.ChildByFieldName("type"), source)
	case "scoped_type_identifier":
		return typeName(node.ChildByFieldName("name"), source)
	case "reference_type":
		return typeName(node.ChildByFieldName("type"), source)
	}
	return node.Content(source)
}
