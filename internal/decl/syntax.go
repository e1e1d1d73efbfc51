// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package decl

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Syntax is the closed set of syntactic type shapes the generator understands.
// Exactly one of Primitive, Reference, Array, Function or Unknown.
type Syntax interface {
	isSyntax()
	String() string
}

// Primitive is a predefined keyword type such as string, number or any.
type Primitive struct {
	Keyword string
}

// Reference is a named type reference.
type Reference struct {
	Name string
}

// Array is T[] or Array<T>.
type Array struct {
	Elem Syntax
}

// Function is a function type with its declared parameters.
type Function struct {
	Params []Param
}

// Unknown is any other shape (unions, literals, inline objects, tuples).
// Text holds the raw source of the type.
type Unknown struct {
	Text string
}

func (Primitive) isSyntax() {}
func (Reference) isSyntax() {}
func (Array) isSyntax()     {}
func (Function) isSyntax()  {}
func (Unknown) isSyntax()   {}

func (s Primitive) String() string { return s.Keyword }
func (s Reference) String() string { return s.Name }
func (s Array) String() string     { return s.Elem.String() + "[]" }
func (s Unknown) String() string   { return s.Text }

func (s Function) String() string {
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + ") => void"
}

// Param is a function-type parameter. Type is nil when the parameter has no annotation.
type Param struct {
	Name     string
	Optional bool
	Type     Syntax
}

func (p Param) String() string {
	s := p.Name
	if p.Optional {
		s += "?"
	}
	if p.Type != nil {
		s += ": " + p.Type.String()
	}
	return s
}

// classify maps a tree-sitter type node to its Syntax shape.
// It is the single place that inspects type node kinds.
func classify(node *sitter.Node, src []byte) Syntax {
	if node == nil {
		return Unknown{}
	}

	switch node.Type() {
	case "type_annotation":
		return classify(firstNamedChild(node), src)
	case "predefined_type":
		return Primitive{Keyword: node.Content(src)}
	case "type_identifier":
		return Reference{Name: node.Content(src)}
	case "nested_type_identifier":
		if name := node.ChildByFieldName("name"); name != nil {
			return Reference{Name: name.Content(src)}
		}
		return Reference{Name: lastSegment(node.Content(src))}
	case "array_type":
		return Array{Elem: classify(firstNamedChild(node), src)}
	case "generic_type":
		return classifyGeneric(node, src)
	case "parenthesized_type", "readonly_type":
		return classify(firstNamedChild(node), src)
	case "function_type":
		return Function{Params: extractParams(node.ChildByFieldName("parameters"), src)}
	default:
		return Unknown{Text: node.Content(src)}
	}
}

// classifyGeneric treats Array<T> as an array and any other generic by its base name.
func classifyGeneric(node *sitter.Node, src []byte) Syntax {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		nameNode = firstNamedChild(node)
	}
	base := classify(nameNode, src)

	ref, ok := base.(Reference)
	if !ok {
		return Unknown{Text: node.Content(src)}
	}
	if ref.Name == "Array" || ref.Name == "ReadonlyArray" {
		args := node.ChildByFieldName("type_arguments")
		if args == nil {
			args = childOfType(node, "type_arguments")
		}
		if args != nil && args.NamedChildCount() == 1 {
			return Array{Elem: classify(args.NamedChild(0), src)}
		}
	}
	return ref
}

// extractParams reads a formal_parameters node.
func extractParams(node *sitter.Node, src []byte) []Param {
	if node == nil {
		return nil
	}

	var params []Param
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "required_parameter", "optional_parameter":
		default:
			continue
		}

		p := Param{Optional: child.Type() == "optional_parameter"}
		if pattern := child.ChildByFieldName("pattern"); pattern != nil {
			p.Name = pattern.Content(src)
		}
		if typ := child.ChildByFieldName("type"); typ != nil {
			p.Type = classify(typ, src)
		}
		params = append(params, p)
	}
	return params
}

func firstNamedChild(node *sitter.Node) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() != "comment" {
			return child
		}
	}
	return nil
}

func childOfType(node *sitter.Node, kind string) *sitter.Node {
	for i := 0; i < int(node.ChildCount()); i++ {
		if child := node.Child(i); child.Type() == kind {
			return child
		}
	}
	return nil
}

func lastSegment(s string) string {
	if i := strings.LastIndex(s, "."); i >= 0 {
		return s[i+1:]
	}
	return s
}
