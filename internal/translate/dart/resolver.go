// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package dart emits Dart request, response and callback declarations.
package dart

import (
	"strings"

	"github.com/dacolabs/mpgen/internal/policy"
	"github.com/dacolabs/mpgen/internal/translate"
)

// untyped is the Dart spelling of an unresolved type.
const untyped = "dynamic"

type resolver struct {
	policy *policy.Policy
}

// typeOf spells a semantic type in Dart.
func (r *resolver) typeOf(t translate.SemanticType) string {
	switch t.Kind {
	case translate.Scalar, translate.Named:
		if mapped, ok := r.policy.Primitive(t.Name); ok {
			return mapped
		}
		return t.Name
	case translate.List:
		return "List<" + r.typeOf(*t.Elem) + ">"
	default:
		return untyped
	}
}

// fieldType spells a request field declaration type, nullable when optional.
func (r *resolver) fieldType(f translate.Field) string {
	typ := r.typeOf(f.Type)
	if f.Optional && typ != untyped {
		typ += "?"
	}
	return typ
}

// jsonValue is the serialized value expression of a request field.
func (r *resolver) jsonValue(f translate.Field) string {
	if f.Callback {
		return f.Wrapper + "(" + f.Ident + ")"
	}
	return f.Ident
}

func (r *resolver) params(params []translate.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = r.typeOf(p.Type) + " " + translate.Sanitize(p.Name)
	}
	return strings.Join(parts, ", ")
}

// quote renders s as a single-quoted Dart string literal.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	s = strings.ReplaceAll(s, `$`, `\$`)
	return "'" + s + "'"
}
