// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"github.com/dacolabs/mpgen/internal/decl"
	"github.com/dacolabs/mpgen/internal/policy"
)

// UntypedValue is the scalar used for parameters declared without a usable type.
const UntypedValue = "dynamic"

// Resolver determines the semantic type of interface fields and callback parameters.
//
// Field resolution order, first match wins:
//  1. a primitive keyword present in the primitive table
//  2. an override for "Type.field"
//  3. structural inference: a reference yields its name, an array of a
//     reference yields a list of it, anything else is unresolved
type Resolver struct {
	policy *policy.Policy
}

// NewResolver returns a Resolver backed by the given policy.
func NewResolver(p *policy.Policy) *Resolver {
	return &Resolver{policy: p}
}

// Resolve returns the semantic type of declaring.field declared with syntax syn.
func (r *Resolver) Resolve(declaring, field string, syn decl.Syntax) SemanticType {
	if prim, ok := syn.(decl.Primitive); ok {
		if _, mapped := r.policy.Primitive(prim.Keyword); mapped {
			return ScalarType(prim.Keyword)
		}
	}

	if expr, ok := r.policy.Override(declaring, field); ok {
		return r.fromExpr(expr)
	}

	return r.infer(syn)
}

// ResolveParam returns the type of a callback parameter, and false when the
// parameter's type shape cannot be expressed.
func (r *Resolver) ResolveParam(p decl.Param) (SemanticType, bool) {
	switch s := p.Type.(type) {
	case nil:
		return ScalarType(UntypedValue), true
	case decl.Primitive:
		if _, mapped := r.policy.Primitive(s.Keyword); mapped {
			return ScalarType(s.Keyword), true
		}
		if s.Keyword == "any" || s.Keyword == "unknown" {
			return ScalarType(UntypedValue), true
		}
		return SemanticType{}, false
	case decl.Reference:
		return r.byName(s.Name), true
	default:
		return SemanticType{}, false
	}
}

func (r *Resolver) infer(syn decl.Syntax) SemanticType {
	switch s := syn.(type) {
	case nil:
		return UnresolvedType("")
	case decl.Reference:
		return r.byName(s.Name)
	case decl.Array:
		if ref, ok := s.Elem.(decl.Reference); ok {
			return ListOf(r.byName(ref.Name))
		}
	}
	return UnresolvedType(syn.String())
}

func (r *Resolver) fromExpr(expr policy.TypeExpr) SemanticType {
	if expr.IsList() {
		return ListOf(r.fromExpr(*expr.Elem))
	}
	return r.byName(expr.Name)
}

func (r *Resolver) byName(name string) SemanticType {
	if r.policy.IsScalar(name) {
		return ScalarType(name)
	}
	return NamedType(name)
}
