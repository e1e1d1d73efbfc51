// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"testing"

	"github.com/dacolabs/mpgen/internal/decl"
	"github.com/dacolabs/mpgen/internal/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy(t *testing.T) *policy.Policy {
	t.Helper()
	p, err := policy.New(&policy.Document{
		Version:        1,
		RequestSuffix:  "Option",
		CallbackSuffix: "Callback",
		GenericWrapper: "wrapGeneralCallbackResult",
		Primitives: map[string]string{
			"string":     "String",
			"boolean":    "bool",
			"number":     "num",
			"IAnyObject": "dynamic",
		},
		Builtins:         []string{"double", "Map"},
		RequestObjects:   []string{"MediaSource"},
		Interfaces:       []string{"ShowToastOption", "ChooseImageSuccessCallbackResult", "ImageFile", "LaunchOptionsApp"},
		TypeAliases:      []string{"ShowToastSuccessCallback", "UntypedCallback", "Orientation"},
		CallbackWrappers: []string{"wrapShowToastSuccessCallback"},
		Overrides: map[string]string{
			"ShowToastOption.title":                          "dynamic",
			"ShowToastOption.icon":                           "string",
			"ChooseImageSuccessCallbackResult.tempFilePaths": "List<String>",
			"LaunchOptionsApp.forwardMaterials":              "Map",
			"LaunchOptionsApp.scores":                        "double[]",
		},
	})
	require.NoError(t, err)
	return p
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(testPolicy(t))

	tests := []struct {
		name      string
		declaring string
		field     string
		syntax    decl.Syntax
		want      SemanticType
	}{
		{
			name:      "mapped primitive wins over override",
			declaring: "ShowToastOption",
			field:     "title",
			syntax:    decl.Primitive{Keyword: "string"},
			want:      ScalarType("string"),
		},
		{
			name:      "override applies to unions",
			declaring: "ShowToastOption",
			field:     "icon",
			syntax:    decl.Unknown{Text: "'success' | 'error'"},
			want:      ScalarType("string"),
		},
		{
			name:      "override list of target builtin",
			declaring: "ChooseImageSuccessCallbackResult",
			field:     "tempFilePaths",
			syntax:    decl.Array{Elem: decl.Primitive{Keyword: "string"}},
			want:      ListOf(ScalarType("String")),
		},
		{
			name:      "override to builtin",
			declaring: "LaunchOptionsApp",
			field:     "forwardMaterials",
			syntax:    decl.Reference{Name: "Record"},
			want:      ScalarType("Map"),
		},
		{
			name:      "override list written with brackets",
			declaring: "LaunchOptionsApp",
			field:     "scores",
			syntax:    decl.Unknown{},
			want:      ListOf(ScalarType("double")),
		},
		{
			name:      "reference to declared type",
			declaring: "LaunchOptionsApp",
			field:     "host",
			syntax:    decl.Reference{Name: "Host"},
			want:      NamedType("Host"),
		},
		{
			name:      "reference to mapped marker",
			declaring: "LaunchOptionsApp",
			field:     "query",
			syntax:    decl.Reference{Name: "IAnyObject"},
			want:      ScalarType("IAnyObject"),
		},
		{
			name:      "array of reference",
			declaring: "ChooseImageSuccessCallbackResult",
			field:     "tempFiles",
			syntax:    decl.Array{Elem: decl.Reference{Name: "ImageFile"}},
			want:      ListOf(NamedType("ImageFile")),
		},
		{
			name:      "unmapped keyword is unresolved",
			declaring: "LaunchOptionsApp",
			field:     "extra",
			syntax:    decl.Primitive{Keyword: "any"},
			want:      UnresolvedType("any"),
		},
		{
			name:      "array of keyword without override is unresolved",
			declaring: "ImageFile",
			field:     "paths",
			syntax:    decl.Array{Elem: decl.Primitive{Keyword: "string"}},
			want:      UnresolvedType("string[]"),
		},
		{
			name:      "missing annotation is unresolved",
			declaring: "ImageFile",
			field:     "size",
			syntax:    nil,
			want:      UnresolvedType(""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.declaring, tt.field, tt.syntax)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_ResolveParam(t *testing.T) {
	r := NewResolver(testPolicy(t))

	tests := []struct {
		name   string
		param  decl.Param
		want   SemanticType
		wantOK bool
	}{
		{"no annotation", decl.Param{Name: "res"}, ScalarType(UntypedValue), true},
		{"any", decl.Param{Name: "res", Type: decl.Primitive{Keyword: "any"}}, ScalarType(UntypedValue), true},
		{"unknown", decl.Param{Name: "res", Type: decl.Primitive{Keyword: "unknown"}}, ScalarType(UntypedValue), true},
		{"mapped keyword", decl.Param{Name: "code", Type: decl.Primitive{Keyword: "number"}}, ScalarType("number"), true},
		{"named reference", decl.Param{Name: "res", Type: decl.Reference{Name: "GeneralCallbackResult"}}, NamedType("GeneralCallbackResult"), true},
		{"mapped marker", decl.Param{Name: "res", Type: decl.Reference{Name: "IAnyObject"}}, ScalarType("IAnyObject"), true},
		{"unmapped keyword", decl.Param{Name: "v", Type: decl.Primitive{Keyword: "void"}}, SemanticType{}, false},
		{"union", decl.Param{Name: "v", Type: decl.Unknown{Text: "string | number"}}, SemanticType{}, false},
		{"array", decl.Param{Name: "v", Type: decl.Array{Elem: decl.Reference{Name: "A"}}}, SemanticType{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.ResolveParam(tt.param)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSemanticType_String(t *testing.T) {
	assert.Equal(t, "String", ScalarType("String").String())
	assert.Equal(t, "List<ImageFile>", ListOf(NamedType("ImageFile")).String())
	assert.Equal(t, "?a | b", UnresolvedType("a | b").String())
	assert.Equal(t, "list-handle", AccessListHandle.String())
	assert.Equal(t, "unresolved", Unresolved.String())
}
