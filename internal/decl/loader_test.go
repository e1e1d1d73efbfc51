// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package decl

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T, name string) (*Namespace, error) {
	t.Helper()
	src, err := os.ReadFile("testdata/" + name) //nolint:gosec // test file path
	require.NoError(t, err)
	return Load(context.Background(), src)
}

func findInterface(t *testing.T, ns *Namespace, name string) *Interface {
	t.Helper()
	for _, iface := range ns.Interfaces {
		if iface.Name == name {
			return iface
		}
	}
	t.Fatalf("interface %s not found", name)
	return nil
}

func findMember(t *testing.T, iface *Interface, name string) Member {
	t.Helper()
	for _, m := range iface.Members {
		if m.Name == name {
			return m
		}
	}
	t.Fatalf("member %s.%s not found", iface.Name, name)
	return Member{}
}

func TestLoad_FirstNamespace(t *testing.T) {
	ns, err := loadFixture(t, "sample.d.ts")
	require.NoError(t, err)

	assert.Equal(t, "WechatMiniprogram", ns.Name)
	assert.False(t, ns.HasErrors)

	names := make([]string, len(ns.Interfaces))
	for i, iface := range ns.Interfaces {
		names[i] = iface.Name
	}
	assert.Equal(t, []string{
		"GeneralCallbackResult",
		"ShowToastOption",
		"ChooseImageSuccessCallbackResult",
		"ImageFile",
		"LaunchOptionsApp",
		"NotExported",
	}, names)
	assert.NotContains(t, names, "Ignored")
	assert.Len(t, ns.Aliases, 5)
}

func TestLoad_NoNamespace(t *testing.T) {
	_, err := loadFixture(t, "no_namespace.d.ts")
	assert.ErrorIs(t, err, ErrNamespaceNotFound)
}

func TestLoad_EmptySource(t *testing.T) {
	_, err := Load(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNamespaceNotFound)
}

func TestLoad_MemberOptionality(t *testing.T) {
	ns, err := loadFixture(t, "sample.d.ts")
	require.NoError(t, err)

	opt := findInterface(t, ns, "ShowToastOption")
	require.Len(t, opt.Members, 6)
	assert.False(t, findMember(t, opt, "title").Optional)
	assert.True(t, findMember(t, opt, "duration").Optional)
	assert.True(t, findMember(t, opt, "success").Optional)
}

func TestLoad_MemberSyntax(t *testing.T) {
	ns, err := loadFixture(t, "sample.d.ts")
	require.NoError(t, err)

	opt := findInterface(t, ns, "ShowToastOption")
	assert.Equal(t, Primitive{Keyword: "string"}, findMember(t, opt, "title").Type)
	assert.Equal(t, Primitive{Keyword: "number"}, findMember(t, opt, "duration").Type)
	assert.Equal(t, Primitive{Keyword: "boolean"}, findMember(t, opt, "mask").Type)
	assert.Equal(t, Reference{Name: "ShowToastSuccessCallback"}, findMember(t, opt, "success").Type)
	assert.IsType(t, Unknown{}, findMember(t, opt, "icon").Type)

	res := findInterface(t, ns, "ChooseImageSuccessCallbackResult")
	assert.Equal(t, Array{Elem: Primitive{Keyword: "string"}}, findMember(t, res, "tempFilePaths").Type)
	assert.Equal(t, Array{Elem: Reference{Name: "ImageFile"}}, findMember(t, res, "tempFiles").Type)
}

func TestLoad_ReferenceShapes(t *testing.T) {
	ns, err := loadFixture(t, "sample.d.ts")
	require.NoError(t, err)

	app := findInterface(t, ns, "LaunchOptionsApp")
	assert.Equal(t, Reference{Name: "Record"}, findMember(t, app, "forwardMaterials").Type)
	assert.Equal(t, Reference{Name: "IAnyObject"}, findMember(t, app, "query").Type)
	assert.Equal(t, Primitive{Keyword: "any"}, findMember(t, app, "extra").Type)
	assert.Equal(t, Reference{Name: "Host"}, findMember(t, app, "host").Type)
	assert.Equal(t, Array{Elem: Reference{Name: "MapPostion"}}, findMember(t, app, "points").Type)
}

func TestLoad_StringPropertyName(t *testing.T) {
	ns, err := loadFixture(t, "sample.d.ts")
	require.NoError(t, err)

	app := findInterface(t, ns, "LaunchOptionsApp")
	m := findMember(t, app, "referrerInfo.appId")
	assert.Equal(t, Primitive{Keyword: "string"}, m.Type)
}

func TestLoad_FunctionAliases(t *testing.T) {
	ns, err := loadFixture(t, "sample.d.ts")
	require.NoError(t, err)

	aliases := make(map[string]Syntax)
	for _, a := range ns.Aliases {
		aliases[a.Name] = a.Type
	}

	success, ok := aliases["ShowToastSuccessCallback"].(Function)
	require.True(t, ok)
	require.Len(t, success.Params, 1)
	assert.Equal(t, "res", success.Params[0].Name)
	assert.Equal(t, Reference{Name: "GeneralCallbackResult"}, success.Params[0].Type)

	complete, ok := aliases["ShowToastCompleteCallback"].(Function)
	require.True(t, ok)
	require.Len(t, complete.Params, 1)
	assert.Nil(t, complete.Params[0].Type)

	untyped, ok := aliases["UntypedCallback"].(Function)
	require.True(t, ok)
	require.Len(t, untyped.Params, 3)
	assert.Equal(t, Primitive{Keyword: "any"}, untyped.Params[0].Type)
	assert.Equal(t, Primitive{Keyword: "number"}, untyped.Params[1].Type)
	assert.True(t, untyped.Params[2].Optional)
	assert.IsType(t, Unknown{}, untyped.Params[2].Type)

	assert.IsType(t, Unknown{}, aliases["Orientation"])
}

func TestLoad_Idempotent(t *testing.T) {
	a, err := loadFixture(t, "sample.d.ts")
	require.NoError(t, err)
	b, err := loadFixture(t, "sample.d.ts")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
