// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package markdown renders an API reference of the selected declarations.
package markdown

import (
	"strings"

	"github.com/dacolabs/mpgen/internal/translate"
)

type resolver struct {
	objects map[string]struct{}
}

func newResolver(unit *translate.Unit) *resolver {
	r := &resolver{objects: make(map[string]struct{}, len(unit.Objects))}
	for _, obj := range unit.Objects {
		r.objects[obj.Name] = struct{}{}
	}
	return r
}

func (r *resolver) typeOf(t translate.SemanticType) string {
	switch t.Kind {
	case translate.Scalar:
		return t.Name
	case translate.Named:
		return r.refType(t.Name)
	case translate.List:
		return "array(" + r.typeOf(*t.Elem) + ")"
	default:
		if t.Name == "" {
			return "unresolved"
		}
		return "unresolved (`" + escapeCell(t.Name) + "`)"
	}
}

// refType links names of objects in the same document.
func (r *resolver) refType(name string) string {
	if _, ok := r.objects[name]; ok {
		return "[" + name + "](#" + name + ")"
	}
	return name
}

func (r *resolver) params(params []translate.Param) string {
	if len(params) == 0 {
		return "none"
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = "`" + p.Name + "`: " + r.typeOf(p.Type)
	}
	return strings.Join(parts, ", ")
}

// escapeCell keeps union bars from splitting a table cell.
func escapeCell(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
