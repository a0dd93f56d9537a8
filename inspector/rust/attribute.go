package rust

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Attribute represents an outer attribute attached to an item
type Attribute struct {
	Name string // last path segment, e.g. near_bindgen for #[near_sdk::near_bindgen]
	Text string // full attribute text without the #[ ] delimiters
}

// Attributes holds attributes preceding a single item
type Attributes []Attribute

// Has reports whether any attribute name matches one of the markers
func (a Attributes) Has(markers []string) bool {
	for _, attr := range a {
		for _, marker := range markers {
			if attr.Name == marker {
				return true
			}
		}
	}
	return false
}

// IsTestOnly reports whether the item is compiled only for tests
func (a Attributes) IsTestOnly() bool {
	for _, attr := range a {
		if attr.Name == "test" {
			return true
		}
		if attr.Name == "cfg" && strings.ReplaceAll(attr.Text, " ", "") == "cfg(test)" {
			return true
		}
	}
	return false
}

// parseAttribute extracts an attribute from an attribute_item node
func parseAttribute(node *sitter.Node, source []byte) (Attribute, bool) {
	if node.Type() != "attribute_item" {
		return Attribute{}, false
	}
	var attrNode *sitter.Node
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child.Type() == "attribute" {
			attrNode = child
			break
		}
	}
	if attrNode == nil || attrNode.NamedChildCount() == 0 {
		return Attribute{}, false
	}
	path := attrNode.NamedChild(0).Content(source)
	if idx := strings.LastIndex(path, "::"); idx != -1 {
		path = path[idx+2:]
	}
	return Attribute{
		Name: strings.TrimSpace(path),
		Text: attrNode.Content(source),
	}, true
}
