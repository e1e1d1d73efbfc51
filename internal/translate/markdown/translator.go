// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package markdown

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/dacolabs/mpgen/internal/translate"
)

//go:embed markdown.go.tmpl
var tmplFS embed.FS

var funcMap = template.FuncMap{
	"yesNo": yesNo,
}

var tmpl = template.Must(template.New("markdown.go.tmpl").Funcs(funcMap).ParseFS(tmplFS, "markdown.go.tmpl"))

// Translator renders the declaration set as markdown documentation.
type Translator struct{}

// FileExtension returns the file extension for markdown files.
func (t *Translator) FileExtension() string {
	return ".md"
}

// Translate renders one section per object and a table of callbacks.
func (t *Translator) Translate(unit *translate.Unit) ([]byte, error) {
	r := newResolver(unit)

	data := &document{Title: unit.Namespace}
	if data.Title == "" {
		data.Title = "API"
	}
	for _, obj := range unit.Objects {
		sec := section{Name: obj.Name, Request: obj.IsRequest()}
		for _, f := range obj.Fields {
			entry := row{Field: f, Type: r.typeOf(f.Type)}
			switch {
			case sec.Request && f.Callback:
				entry.Note = "`" + f.Wrapper + "(" + f.Ident + ")`"
			case !sec.Request:
				entry.Note = fmt.Sprintf("%s `%s`", f.Accessor, f.LookupKey)
			}
			sec.Rows = append(sec.Rows, entry)
		}
		data.Sections = append(data.Sections, sec)
	}
	for _, cb := range unit.Callbacks {
		data.Callbacks = append(data.Callbacks, callback{Name: cb.Name, Params: r.params(cb.Params)})
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "markdown.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}

type document struct {
	Title     string
	Sections  []section
	Callbacks []callback
}

type section struct {
	Name    string
	Request bool
	Rows    []row
}

type row struct {
	translate.Field
	Type string
	Note string
}

type callback struct {
	Name   string
	Params string
}

func yesNo(optional bool) string {
	if optional {
		return "No"
	}
	return "Yes"
}
