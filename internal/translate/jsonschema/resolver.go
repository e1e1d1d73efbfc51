// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jsonschema

import (
	"strings"

	"github.com/dacolabs/mpgen/internal/policy"
	"github.com/dacolabs/mpgen/internal/translate"
	"github.com/google/jsonschema-go/jsonschema"
)

const defsPrefix = "#/$defs/"

// jsonTypes maps target scalar spellings to JSON types.
var jsonTypes = map[string]string{
	"String": "string",
	"num":    "number",
	"double": "number",
	"int":    "integer",
	"bool":   "boolean",
	"Map":    "object",
}

type resolver struct {
	policy  *policy.Policy
	objects map[string]struct{}
}

func newResolver(unit *translate.Unit) *resolver {
	r := &resolver{
		policy:  unit.Policy,
		objects: make(map[string]struct{}, len(unit.Objects)),
	}
	for _, obj := range unit.Objects {
		r.objects[obj.Name] = struct{}{}
	}
	return r
}

func (r *resolver) schemaOf(t translate.SemanticType) *jsonschema.Schema {
	switch t.Kind {
	case translate.Scalar:
		if typ, ok := jsonTypes[r.spelling(t.Name)]; ok {
			return &jsonschema.Schema{Type: typ}
		}
		return &jsonschema.Schema{Description: "untyped value"}
	case translate.Named:
		return r.named(t.Name)
	case translate.List:
		return &jsonschema.Schema{Type: "array", Items: r.schemaOf(*t.Elem)}
	default:
		if t.Name == "" {
			return &jsonschema.Schema{Description: "unresolved type"}
		}
		return &jsonschema.Schema{Description: "unresolved type: " + strings.Join(strings.Fields(t.Name), " ")}
	}
}

func (r *resolver) named(name string) *jsonschema.Schema {
	if _, ok := r.objects[name]; ok {
		return &jsonschema.Schema{Ref: defsPrefix + name}
	}
	if r.policy != nil && r.policy.IsCallback(name) {
		return &jsonschema.Schema{Description: "callback " + name}
	}
	return &jsonschema.Schema{Description: "undeclared type " + name}
}

// spelling returns the target spelling of a scalar name.
func (r *resolver) spelling(name string) string {
	if r.policy != nil {
		if mapped, ok := r.policy.Primitive(name); ok {
			return mapped
		}
	}
	return name
}
