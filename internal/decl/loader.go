// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package decl loads ambient TypeScript declaration files into a small
// declaration model and selects the declarations that take part in generation.
package decl

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

var (
	// ErrNamespaceNotFound indicates the declaration file has no namespace block.
	ErrNamespaceNotFound = errors.New("no namespace block found in declaration file")

	// ErrParse indicates the declaration file could not be parsed at all.
	ErrParse = errors.New("failed to parse declaration file")
)

// Namespace is the body of the first namespace block in a declaration file.
type Namespace struct {
	Name       string
	Interfaces []*Interface
	Aliases    []*TypeAlias
	// HasErrors is set when the parser recovered from syntax errors.
	HasErrors bool
}

// Interface is an interface declaration with its property members in source order.
type Interface struct {
	Name    string
	Members []Member
}

// Member is an interface property.
type Member struct {
	Name     string
	Optional bool
	Type     Syntax
}

// TypeAlias is a type alias declaration.
type TypeAlias struct {
	Name string
	Type Syntax
}

// Load parses declaration source and returns the first namespace block found
// by depth-first traversal. It returns ErrNamespaceNotFound if there is none.
func Load(ctx context.Context, src []byte) (*Namespace, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(typescript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, ErrParse
	}

	module := findNamespace(root)
	if module == nil {
		return nil, ErrNamespaceNotFound
	}

	ns := &Namespace{HasErrors: root.HasError()}
	if name := module.ChildByFieldName("name"); name != nil {
		ns.Name = name.Content(src)
	}

	body := module.ChildByFieldName("body")
	for i := 0; i < int(body.NamedChildCount()); i++ {
		ns.addStatement(body.NamedChild(i), src)
	}
	return ns, nil
}

// findNamespace walks the tree in pre-order and returns the first namespace
// or module declaration that has a block body.
func findNamespace(node *sitter.Node) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if isNamespace(child) {
			return child
		}
		if found := findNamespace(child); found != nil {
			return found
		}
	}
	return nil
}

func isNamespace(node *sitter.Node) bool {
	switch node.Type() {
	case "internal_module", "module":
		body := node.ChildByFieldName("body")
		return body != nil && body.Type() == "statement_block"
	}
	return false
}

func (ns *Namespace) addStatement(node *sitter.Node, src []byte) {
	switch node.Type() {
	case "export_statement":
		if d := node.ChildByFieldName("declaration"); d != nil {
			ns.addStatement(d, src)
		}
	case "interface_declaration":
		if iface := extractInterface(node, src); iface != nil {
			ns.Interfaces = append(ns.Interfaces, iface)
		}
	case "type_alias_declaration":
		if alias := extractTypeAlias(node, src); alias != nil {
			ns.Aliases = append(ns.Aliases, alias)
		}
	}
}

func extractInterface(node *sitter.Node, src []byte) *Interface {
	name := node.ChildByFieldName("name")
	if name == nil {
		return nil
	}
	iface := &Interface{Name: name.Content(src)}

	body := node.ChildByFieldName("body")
	if body == nil {
		body = childOfType(node, "object_type")
	}
	if body == nil {
		body = childOfType(node, "interface_body")
	}
	if body == nil {
		return iface
	}

	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		if child.Type() != "property_signature" {
			continue
		}
		if m, ok := extractMember(child, src); ok {
			iface.Members = append(iface.Members, m)
		}
	}
	return iface
}

func extractMember(node *sitter.Node, src []byte) (Member, bool) {
	var m Member
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "property_identifier", "number":
			m.Name = child.Content(src)
		case "string":
			m.Name = unquote(child.Content(src))
		case "?":
			m.Optional = true
		case "type_annotation":
			m.Type = classify(child, src)
		}
	}
	if m.Name == "" {
		return Member{}, false
	}
	if m.Type == nil {
		m.Type = Unknown{}
	}
	return m, true
}

func extractTypeAlias(node *sitter.Node, src []byte) *TypeAlias {
	name := node.ChildByFieldName("name")
	if name == nil {
		return nil
	}
	return &TypeAlias{
		Name: name.Content(src),
		Type: classify(node.ChildByFieldName("value"), src),
	}
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}
	if u, err := strconv.Unquote(s); err == nil {
		return u
	}
	return s
}
