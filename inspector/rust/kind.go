package rust

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// exprKind classifies a syntax node for call extraction
type exprKind int

const (
	kindLeaf        exprKind = iota // carries no calls
	kindComposite                   // calls may appear in any named child
	kindCall                        // call_expression
	kindField                       // field access, the value may hold calls
	kindGeneric                     // generic_function outside call position
	kindIf                          // if_expression
	kindLetCondition                // let_condition
	kindMatch                       // match_expression
	kindMatchArm                    // match_arm
	kindClosure                     // closure_expression
	kindStruct                      // struct_expression
	kindFieldInit                   // field_initializer
	kindLet                         // let_declaration
	kindConstItem                   // const_item and static_item nested in a body
	kindWhile                       // while_expression
	kindFor                         // for_expression
	kindBodyOnly                    // expressions whose calls live under the body field
	kindNestedItem                  // items declared inside a body, not recorded
)

var kinds = map[string]exprKind{
	// calls and access
	"call_expression":  kindCall,
	"field_expression": kindField,
	"generic_function": kindGeneric,

	// control flow
	"if_expression":        kindIf,
	"if_let_expression":    kindIf,
	"else_clause":          kindComposite,
	"let_condition":        kindLetCondition,
	"let_chain":            kindComposite,
	"match_expression":     kindMatch,
	"match_block":          kindComposite,
	"match_arm":            kindMatchArm,
	"last_match_arm":       kindMatchArm,
	"while_expression":     kindWhile,
	"while_let_expression": kindWhile,
	"loop_expression":      kindBodyOnly,
	"for_expression":       kindFor,

	// blocks
	"block":        kindComposite,
	"unsafe_block": kindComposite,
	"async_block":  kindComposite,
	"const_block":  kindBodyOnly,
	"try_block":    kindComposite,
	"gen_block":    kindComposite,

	// statements
	"expression_statement": kindComposite,
	"let_declaration":      kindLet,
	"const_item":           kindConstItem,
	"static_item":          kindConstItem,
	"empty_statement":      kindLeaf,

	// composite expressions
	"arguments":                   kindComposite,
	"unary_expression":            kindComposite,
	"reference_expression":        kindComposite,
	"try_expression":              kindComposite,
	"binary_expression":           kindComposite,
	"assignment_expression":       kindComposite,
	"compound_assignment_expr":    kindComposite,
	"type_cast_expression":        kindComposite,
	"return_expression":           kindComposite,
	"yield_expression":            kindComposite,
	"await_expression":            kindComposite,
	"array_expression":            kindComposite,
	"tuple_expression":            kindComposite,
	"parenthesized_expression":    kindComposite,
	"index_expression":            kindComposite,
	"range_expression":            kindComposite,
	"break_expression":            kindComposite,
	"closure_expression":          kindClosure,
	"struct_expression":           kindStruct,
	"field_initializer_list":      kindComposite,
	"field_initializer":           kindFieldInit,
	"shorthand_field_initializer": kindLeaf,
	"base_field_initializer":      kindComposite,

	// leaves
	"identifier":           kindLeaf,
	"scoped_identifier":    kindLeaf,
	"field_identifier":     kindLeaf,
	"self":                 kindLeaf,
	"super":                kindLeaf,
	"crate":                kindLeaf,
	"metavariable":         kindLeaf,
	"mutable_specifier":    kindLeaf,
	"label":                kindLeaf,
	"lifetime":             kindLeaf,
	"unit_expression":      kindLeaf,
	"continue_expression":  kindLeaf,
	"macro_invocation":     kindLeaf,
	"string_literal":       kindLeaf,
	"raw_string_literal":   kindLeaf,
	"char_literal":         kindLeaf,
	"boolean_literal":      kindLeaf,
	"integer_literal":      kindLeaf,
	"float_literal":        kindLeaf,
	"negative_literal":     kindLeaf,
	"line_comment":         kindLeaf,
	"block_comment":        kindLeaf,
	"comment":              kindLeaf,
	"attribute_item":       kindLeaf,
	"inner_attribute_item": kindLeaf,

	// types
	"type_identifier":             kindLeaf,
	"primitive_type":              kindLeaf,
	"generic_type":                kindLeaf,
	"generic_type_with_turbofish": kindLeaf,
	"scoped_type_identifier":      kindLeaf,
	"reference_type":              kindLeaf,
	"pointer_type":                kindLeaf,
	"array_type":                  kindLeaf,
	"tuple_type":                  kindLeaf,
	"unit_type":                   kindLeaf,
	"function_type":               kindLeaf,
	"abstract_type":               kindLeaf,
	"dynamic_type":                kindLeaf,
	"bounded_type":                kindLeaf,
	"never_type":                  kindLeaf,
	"qualified_type":              kindLeaf,
	"type_arguments":              kindLeaf,

	// patterns
	"tuple_pattern":           kindLeaf,
	"tuple_struct_pattern":    kindLeaf,
	"struct_pattern":          kindLeaf,
	"slice_pattern":           kindLeaf,
	"ref_pattern":             kindLeaf,
	"reference_pattern":       kindLeaf,
	"captured_pattern":        kindLeaf,
	"or_pattern":              kindLeaf,
	"range_pattern":           kindLeaf,
	"mut_pattern":             kindLeaf,
	"remaining_field_pattern": kindLeaf,
	"match_pattern":           kindLeaf,
	"closure_parameters":      kindLeaf,

	// items nested in a body
	"function_item":            kindNestedItem,
	"function_signature_item":  kindNestedItem,
	"struct_item":              kindNestedItem,
	"enum_item":                kindNestedItem,
	"union_item":               kindNestedItem,
	"impl_item":                kindNestedItem,
	"trait_item":               kindNestedItem,
	"mod_item":                 kindNestedItem,
	"type_item":                kindNestedItem,
	"use_declaration":          kindNestedItem,
	"macro_definition":         kindNestedItem,
	"extern_crate_declaration": kindNestedItem,
	"foreign_mod_item":         kindNestedItem,
	"associated_type":          kindNestedItem,
}

// UnhandledKindError reports a syntax node kind missing from the call walker
type UnhandledKindError struct {
	Kind string
	Line int
}

func (e UnhandledKindError) Error() string {
	return fmt.Sprintf("unhandled syntax kind %q at line %d", e.Kind, e.Line)
}

// kindOf maps a node onto the closed kind enumeration; unknown kinds panic
func kindOf(node *sitter.Node) exprKind {
	kind, ok := kinds[node.Type()]
	if !ok {
		panic(UnhandledKindError{Kind: node.Type(), Line: int(node.StartPoint().Row) + 1})
	}
	return kind
}
