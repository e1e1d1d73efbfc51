// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jsonschema exports the selected declarations as a JSON Schema document.
package jsonschema

import (
	"encoding/json"
	"fmt"

	"github.com/dacolabs/mpgen/internal/translate"
	"github.com/google/jsonschema-go/jsonschema"
)

// Draft is the JSON Schema dialect of generated documents.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Translator renders one $defs entry per exported interface.
type Translator struct{}

// FileExtension returns the file extension for JSON Schema files.
func (t *Translator) FileExtension() string {
	return ".schema.json"
}

// Translate converts the unit to an indented JSON Schema document.
func (t *Translator) Translate(unit *translate.Unit) ([]byte, error) {
	r := newResolver(unit)

	root := &jsonschema.Schema{
		Schema: Draft,
		Title:  unit.Namespace,
		Defs:   make(map[string]*jsonschema.Schema, len(unit.Objects)),
	}
	for _, obj := range unit.Objects {
		root.Defs[obj.Name] = r.object(obj)
	}

	if refs := danglingRefs(root); len(refs) > 0 {
		return nil, fmt.Errorf("unresolved $ref: %v", refs)
	}

	out, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return append(out, '\n'), nil
}

func (r *resolver) object(obj translate.Object) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:        "object",
		Title:       obj.Name,
		Description: obj.Kind.String() + " object",
		Properties:  make(map[string]*jsonschema.Schema, len(obj.Fields)),
	}
	for _, f := range obj.Fields {
		s.Properties[f.Name] = r.schemaOf(f.Type)
		if !f.Optional {
			s.Required = append(s.Required, f.Name)
		}
	}
	return s
}
