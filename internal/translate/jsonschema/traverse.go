// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jsonschema

import (
	"iter"
	"sort"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// traverse returns an iterator over all schemas in the tree.
// It handles cycles by tracking visited schemas.
func traverse(schema *jsonschema.Schema) iter.Seq[*jsonschema.Schema] {
	return func(yield func(*jsonschema.Schema) bool) {
		visited := make(map[*jsonschema.Schema]struct{})
		traverseWithVisited(schema, yield, visited)
	}
}

func traverseWithVisited(schema *jsonschema.Schema, yield func(*jsonschema.Schema) bool, visited map[*jsonschema.Schema]struct{}) bool {
	if schema == nil {
		return true
	}
	if _, ok := visited[schema]; ok {
		return true
	}
	visited[schema] = struct{}{}

	if !yield(schema) {
		return false
	}

	for _, s := range schema.Properties {
		if !traverseWithVisited(s, yield, visited) {
			return false
		}
	}
	if !traverseWithVisited(schema.Items, yield, visited) {
		return false
	}
	for _, s := range schema.Defs {
		if !traverseWithVisited(s, yield, visited) {
			return false
		}
	}
	return true
}

// danglingRefs returns the sorted local $refs that name no $defs entry.
func danglingRefs(root *jsonschema.Schema) []string {
	seen := make(map[string]struct{})
	for s := range traverse(root) {
		if s.Ref == "" {
			continue
		}
		name, ok := strings.CutPrefix(s.Ref, defsPrefix)
		if ok {
			if _, found := root.Defs[name]; found {
				continue
			}
		}
		seen[s.Ref] = struct{}{}
	}

	refs := make([]string, 0, len(seen))
	for ref := range seen {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}
