// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package dart

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"text/template"

	"github.com/dacolabs/mpgen/internal/policy"
	"github.com/dacolabs/mpgen/internal/translate"
)

//go:embed dart.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "dart.go.tmpl"))

// Translator emits a Dart part file: one class per exported interface and one
// typedef per exported callback alias.
type Translator struct{}

// FileExtension returns the file extension for Dart source files.
func (t *Translator) FileExtension() string {
	return ".dart"
}

// Translate renders the unit as Dart source.
func (t *Translator) Translate(unit *translate.Unit) ([]byte, error) {
	if unit.Policy == nil {
		return nil, errors.New("unit has no policy")
	}
	r := &resolver{policy: unit.Policy}

	data := &unitView{
		Library: unit.Library,
		Runtime: unit.Runtime,
	}
	for _, obj := range unit.Objects {
		data.Objects = append(data.Objects, r.object(obj))
	}
	for _, cb := range unit.Callbacks {
		data.Callbacks = append(data.Callbacks, callbackView{
			Name:   cb.Name,
			Params: r.params(cb.Params),
		})
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "dart.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// unitView is the template data: the unit with every Dart spelling resolved.
type unitView struct {
	Library   string
	Runtime   policy.Runtime
	Objects   []objectView
	Callbacks []callbackView
}

type objectView struct {
	Name    string
	Request bool
	Fields  []fieldView
}

type fieldView struct {
	translate.Field
	DartType string // declared or accessor type
	ElemType string // list-of-handle element wrapper type
	Key      string // quoted serialization or lookup key
	Value    string // serialized value expression
}

// ListHandle reports whether the accessor wraps each element of a handle list.
func (f fieldView) ListHandle() bool {
	return f.Accessor == translate.AccessListHandle
}

// Handle reports whether the accessor wraps a single handle.
func (f fieldView) Handle() bool {
	return f.Accessor == translate.AccessHandle
}

type callbackView struct {
	Name   string
	Params string
}

func (r *resolver) object(obj translate.Object) objectView {
	view := objectView{Name: obj.Name, Request: obj.IsRequest()}
	for _, f := range obj.Fields {
		fv := fieldView{Field: f}
		if view.Request {
			fv.DartType = r.fieldType(f)
			fv.Key = quote(f.Name)
			fv.Value = r.jsonValue(f)
		} else {
			fv.DartType = r.typeOf(f.Type)
			fv.Key = quote(f.LookupKey)
			if f.Type.Kind == translate.List {
				fv.ElemType = r.typeOf(*f.Type.Elem)
			}
		}
		view.Fields = append(view.Fields, fv)
	}
	return view
}
