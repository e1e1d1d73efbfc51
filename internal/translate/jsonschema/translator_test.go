// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jsonschema

import (
	"encoding/json"
	"testing"

	"github.com/dacolabs/mpgen/internal/decl"
	"github.com/dacolabs/mpgen/internal/policy"
	"github.com/dacolabs/mpgen/internal/translate"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func translateSet(t *testing.T, set *decl.Set) *jsonschema.Schema {
	t.Helper()
	pol, err := policy.Default()
	require.NoError(t, err)

	unit := translate.Prepare(set, pol, translate.PrepareOptions{})
	unit.Namespace = "WechatMiniprogram"

	output, err := (&Translator{}).Translate(unit)
	require.NoError(t, err)

	var schema jsonschema.Schema
	require.NoError(t, json.Unmarshal(output, &schema))
	return &schema
}

func sampleSet() *decl.Set {
	return &decl.Set{Interfaces: []*decl.Interface{
		{
			Name: "ShowToastOption",
			Members: []decl.Member{
				{Name: "title", Type: decl.Primitive{Keyword: "string"}},
				{Name: "duration", Optional: true, Type: decl.Primitive{Keyword: "number"}},
				{Name: "mask", Optional: true, Type: decl.Primitive{Keyword: "boolean"}},
				{Name: "success", Optional: true, Type: decl.Reference{Name: "ShowToastSuccessCallback"}},
			},
		},
		{
			Name: "ChooseImageSuccessCallbackResult",
			Members: []decl.Member{
				{Name: "tempFiles", Type: decl.Array{Elem: decl.Reference{Name: "ImageFile"}}},
				{Name: "tempFilePaths", Type: decl.Array{Elem: decl.Primitive{Keyword: "string"}}},
				{Name: "host", Type: decl.Reference{Name: "Host"}},
				{Name: "query", Type: decl.Reference{Name: "IAnyObject"}},
				{Name: "extra", Type: decl.Primitive{Keyword: "any"}},
			},
		},
		{
			Name:    "ImageFile",
			Members: []decl.Member{{Name: "path", Type: decl.Primitive{Keyword: "string"}}},
		},
	}}
}

func TestTranslate_Root(t *testing.T) {
	schema := translateSet(t, sampleSet())

	assert.Equal(t, Draft, schema.Schema)
	assert.Equal(t, "WechatMiniprogram", schema.Title)
	assert.Len(t, schema.Defs, 3)
}

func TestTranslate_RequestObject(t *testing.T) {
	def := translateSet(t, sampleSet()).Defs["ShowToastOption"]
	require.NotNil(t, def)

	assert.Equal(t, "object", def.Type)
	assert.Equal(t, "request object", def.Description)
	assert.Equal(t, []string{"title"}, def.Required)
	assert.Equal(t, "string", def.Properties["title"].Type)
	assert.Equal(t, "number", def.Properties["duration"].Type)
	assert.Equal(t, "boolean", def.Properties["mask"].Type)
	assert.Equal(t, "callback ShowToastSuccessCallback", def.Properties["success"].Description)
}

func TestTranslate_ResponseObject(t *testing.T) {
	def := translateSet(t, sampleSet()).Defs["ChooseImageSuccessCallbackResult"]
	require.NotNil(t, def)

	assert.Equal(t, "response object", def.Description)
	assert.Equal(t, []string{"tempFiles", "tempFilePaths", "host", "query", "extra"}, def.Required)

	tempFiles := def.Properties["tempFiles"]
	assert.Equal(t, "array", tempFiles.Type)
	assert.Equal(t, "#/$defs/ImageFile", tempFiles.Items.Ref)

	paths := def.Properties["tempFilePaths"]
	assert.Equal(t, "array", paths.Type)
	assert.Equal(t, "string", paths.Items.Type)

	assert.Equal(t, "undeclared type Host", def.Properties["host"].Description)
	assert.Equal(t, "untyped value", def.Properties["query"].Description)
	assert.Equal(t, "unresolved type: any", def.Properties["extra"].Description)
}

func TestDanglingRefs(t *testing.T) {
	root := &jsonschema.Schema{
		Defs: map[string]*jsonschema.Schema{
			"A": {Properties: map[string]*jsonschema.Schema{
				"b":    {Ref: "#/$defs/B"},
				"self": {Ref: "#/$defs/A"},
				"list": {Type: "array", Items: &jsonschema.Schema{Ref: "#/$defs/C"}},
			}},
		},
	}

	assert.Equal(t, []string{"#/$defs/B", "#/$defs/C"}, danglingRefs(root))
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, ".schema.json", (&Translator{}).FileExtension())
}
