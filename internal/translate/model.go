// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "github.com/dacolabs/mpgen/internal/policy"

// Kind is the shape of a resolved semantic type.
type Kind int

const (
	// Unresolved means no resolution layer produced a type.
	Unresolved Kind = iota
	// Scalar is a primitive keyword, a mapped marker such as IAnyObject, or a target builtin.
	Scalar
	// Named is a reference to another declared type.
	Named
	// List is a list of Elem.
	List
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Named:
		return "named"
	case List:
		return "list"
	default:
		return "unresolved"
	}
}

// SemanticType is the resolved type of a field or callback parameter.
type SemanticType struct {
	Kind Kind
	Name string        // scalar or declared name; raw syntax text when unresolved
	Elem *SemanticType // set only for List
}

// ScalarType returns a Scalar semantic type.
func ScalarType(name string) SemanticType {
	return SemanticType{Kind: Scalar, Name: name}
}

// NamedType returns a Named semantic type.
func NamedType(name string) SemanticType {
	return SemanticType{Kind: Named, Name: name}
}

// ListOf returns a List semantic type.
func ListOf(elem SemanticType) SemanticType {
	return SemanticType{Kind: List, Elem: &elem}
}

// UnresolvedType returns an Unresolved semantic type carrying the raw syntax.
func UnresolvedType(raw string) SemanticType {
	return SemanticType{Kind: Unresolved, Name: raw}
}

func (t SemanticType) String() string {
	switch t.Kind {
	case List:
		return "List<" + t.Elem.String() + ">"
	case Unresolved:
		return "?" + t.Name
	default:
		return t.Name
	}
}

// Accessor is how a response-object field is read from its backing handle.
type Accessor int

const (
	// AccessDirect is a single typed lookup of a scalar value.
	AccessDirect Accessor = iota
	// AccessList is a single typed lookup of a list of scalars.
	AccessList
	// AccessListHandle looks up a list of handles and wraps each one.
	AccessListHandle
	// AccessHandle looks up one handle and wraps it.
	AccessHandle
)

func (a Accessor) String() string {
	switch a {
	case AccessList:
		return "list"
	case AccessListHandle:
		return "list-handle"
	case AccessHandle:
		return "handle"
	default:
		return "direct"
	}
}

// LookupKeys selects which key the handle-based accessors look values up by.
type LookupKeys string

const (
	// LegacyKeys looks up handle-based fields by the sanitized name, and all
	// other fields by the raw name. Matches previously generated bindings.
	LegacyKeys LookupKeys = "legacy"
	// RawKeys looks up every field by its raw declared name.
	RawKeys LookupKeys = "raw"
)

// Unit is the complete input passed to a translator.
type Unit struct {
	Namespace string         // name of the source namespace block
	Library   string         // library the generated unit is a part of, if any
	Runtime   policy.Runtime // support-library names referenced by generated code
	Policy    *policy.Policy // policy the unit was prepared with
	Objects   []Object       // exported interfaces in source order
	Callbacks []Callback     // exported type aliases in source order
	Extra     map[string]any // translator-specific template data
}

// Object is an exported interface, classified as request or response.
type Object struct {
	Name   string
	Kind   policy.ObjectKind
	Fields []Field
}

// IsRequest reports whether the object is caller-constructed.
func (o Object) IsRequest() bool {
	return o.Kind == policy.Request
}

// Field is one member of an exported interface.
type Field struct {
	Name     string       // declared name; the serialization key
	Ident    string       // target identifier (dots replaced)
	Optional bool         // declared with ?
	Type     SemanticType // resolved type

	// request objects
	Callback        bool   // resolved type is callback-shaped
	Wrapper         string // wrapper function for callback fields
	SpecificWrapper bool   // Wrapper is registered for this callback type

	// response objects
	Accessor  Accessor
	LookupKey string
}

// Callback is an exported type alias emitted as a function type.
type Callback struct {
	Name   string
	Params []Param
}

// Param is a callback parameter with a resolved type.
type Param struct {
	Name string
	Type SemanticType
}
