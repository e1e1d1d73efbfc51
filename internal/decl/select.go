// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package decl

// Exporter decides which declarations take part in generation.
type Exporter interface {
	ExportsInterface(name string) bool
	ExportsTypeAlias(name string) bool
}

// Set is the selected declarations, in source order. It is not modified after Select.
type Set struct {
	Interfaces []*Interface
	Aliases    []*TypeAlias
}

// Select keeps the namespace declarations named by the exporter's allow-lists.
// Everything else is dropped without a diagnostic.
func Select(ns *Namespace, exp Exporter) *Set {
	set := &Set{}
	for _, iface := range ns.Interfaces {
		if exp.ExportsInterface(iface.Name) {
			set.Interfaces = append(set.Interfaces, iface)
		}
	}
	for _, alias := range ns.Aliases {
		if exp.ExportsTypeAlias(alias.Name) {
			set.Aliases = append(set.Aliases, alias)
		}
	}
	return set
}

// Dropped returns the names of namespace declarations that Select discards.
func Dropped(ns *Namespace, exp Exporter) []string {
	var names []string
	for _, iface := range ns.Interfaces {
		if !exp.ExportsInterface(iface.Name) {
			names = append(names, iface.Name)
		}
	}
	for _, alias := range ns.Aliases {
		if !exp.ExportsTypeAlias(alias.Name) {
			names = append(names, alias.Name)
		}
	}
	return names
}
