// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"strings"

	"github.com/dacolabs/mpgen/internal/decl"
	"github.com/dacolabs/mpgen/internal/policy"
)

// PrepareOptions controls how a declaration set is turned into a Unit.
type PrepareOptions struct {
	Library    string
	LookupKeys LookupKeys
}

// prepareContext holds the state shared while preparing one unit.
type prepareContext struct {
	policy   *policy.Policy
	resolver *Resolver
	keys     LookupKeys
}

// Prepare classifies every selected declaration, resolves field and parameter
// types, and returns the Unit ready for a translator.
func Prepare(set *decl.Set, pol *policy.Policy, opts PrepareOptions) *Unit {
	ctx := &prepareContext{
		policy:   pol,
		resolver: NewResolver(pol),
		keys:     opts.LookupKeys,
	}
	if ctx.keys == "" {
		ctx.keys = LegacyKeys
	}

	unit := &Unit{
		Library: opts.Library,
		Runtime: pol.Runtime(),
		Policy:  pol,
		Extra:   make(map[string]any),
	}

	for _, iface := range set.Interfaces {
		unit.Objects = append(unit.Objects, ctx.prepareObject(iface))
	}
	for _, alias := range set.Aliases {
		unit.Callbacks = append(unit.Callbacks, ctx.prepareCallback(alias))
	}
	return unit
}

func (c *prepareContext) prepareObject(iface *decl.Interface) Object {
	obj := Object{
		Name:   iface.Name,
		Kind:   c.policy.Classify(iface.Name),
		Fields: make([]Field, 0, len(iface.Members)),
	}

	for _, m := range iface.Members {
		f := Field{
			Name:     m.Name,
			Ident:    Sanitize(m.Name),
			Optional: m.Optional,
			Type:     c.resolver.Resolve(iface.Name, m.Name, m.Type),
		}
		if obj.IsRequest() {
			c.enrichRequestField(&f)
		} else {
			c.enrichResponseField(&f)
		}
		obj.Fields = append(obj.Fields, f)
	}
	return obj
}

func (c *prepareContext) enrichRequestField(f *Field) {
	if f.Type.Kind != Named || !c.policy.IsCallback(f.Type.Name) {
		return
	}
	f.Callback = true
	f.Wrapper, f.SpecificWrapper = c.policy.Wrapper(f.Type.Name)
}

func (c *prepareContext) enrichResponseField(f *Field) {
	f.Accessor = accessorFor(f.Type)

	switch f.Accessor {
	case AccessHandle, AccessListHandle:
		if c.keys == LegacyKeys {
			f.LookupKey = f.Ident
			return
		}
	}
	f.LookupKey = f.Name
}

// accessorFor picks the response accessor for a resolved type.
// Unresolved types are read directly as untyped values.
func accessorFor(t SemanticType) Accessor {
	switch t.Kind {
	case List:
		if t.Elem.Kind == Named {
			return AccessListHandle
		}
		return AccessList
	case Named:
		return AccessHandle
	default:
		return AccessDirect
	}
}

func (c *prepareContext) prepareCallback(alias *decl.TypeAlias) Callback {
	cb := Callback{Name: alias.Name}

	fn, ok := alias.Type.(decl.Function)
	if !ok {
		return cb
	}
	for _, p := range fn.Params {
		t, ok := c.resolver.ResolveParam(p)
		if !ok {
			continue
		}
		cb.Params = append(cb.Params, Param{Name: p.Name, Type: t})
	}
	return cb
}

// Sanitize turns a declared field name into an identifier by replacing dots.
func Sanitize(name string) string {
	return strings.ReplaceAll(name, ".", "_")
}
