// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"context"
	"fmt"

	"github.com/dacolabs/mpgen/internal/decl"
	"github.com/dacolabs/mpgen/internal/policy"
	"go.uber.org/zap"
)

// GenerateOptions configures a single generation run.
type GenerateOptions struct {
	PrepareOptions
	Logger *zap.SugaredLogger
}

// Generate runs the whole pipeline over declaration source: load the first
// namespace, select exported declarations, prepare the unit and translate it.
// It returns no output when the namespace block is missing.
func Generate(ctx context.Context, src []byte, pol *policy.Policy, t Translator, opts GenerateOptions) ([]byte, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	ns, err := decl.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	if ns.HasErrors {
		log.Warnw("declaration file contains syntax errors, continuing with recovered tree",
			"namespace", ns.Name)
	}

	set := decl.Select(ns, pol)
	log.Infow("selected declarations",
		"namespace", ns.Name,
		"interfaces", len(set.Interfaces),
		"type_aliases", len(set.Aliases),
		"dropped", len(ns.Interfaces)+len(ns.Aliases)-len(set.Interfaces)-len(set.Aliases))

	unit := Prepare(set, pol, opts.PrepareOptions)
	unit.Namespace = ns.Name
	logUnit(log, unit)

	out, err := t.Translate(unit)
	if err != nil {
		return nil, fmt.Errorf("failed to translate: %w", err)
	}
	return out, nil
}

func logUnit(log *zap.SugaredLogger, unit *Unit) {
	for _, obj := range unit.Objects {
		log.Debugw("prepared object", "name", obj.Name, "kind", obj.Kind.String(), "fields", len(obj.Fields))
		for _, f := range obj.Fields {
			if f.Type.Kind == Unresolved {
				log.Debugw("unresolved field type", "object", obj.Name, "field", f.Name, "syntax", f.Type.Name)
			}
		}
	}
}
