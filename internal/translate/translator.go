// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate turns a selected declaration set into emitted source for
// one of the registered output targets.
package translate

import (
	"fmt"
	"sort"
)

// Translator defines the interface all output targets must implement.
type Translator interface {
	// Translate renders a prepared unit in the target format.
	Translate(unit *Unit) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".dart", ".md").
	FileExtension() string
}

// Register maps target names to their translators.
type Register map[string]Translator

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", name)
	}
	return t, nil
}

// Available returns all registered target names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
