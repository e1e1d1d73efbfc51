// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/dacolabs/mpgen/internal/commands"
	"github.com/dacolabs/mpgen/internal/translate"
	"github.com/dacolabs/mpgen/internal/translate/dart"
	"github.com/dacolabs/mpgen/internal/translate/jsonschema"
	"github.com/dacolabs/mpgen/internal/translate/markdown"
)

// Translators returns the registered output formats.
func Translators() translate.Register {
	translators := make(translate.Register)
	translators["dart"] = &dart.Translator{}
	translators["markdown"] = &markdown.Translator{}
	translators["jsonschema"] = &jsonschema.Translator{}
	return translators
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	rootCmd := commands.NewRootCmd(getenv, Translators())
	return rootCmd.ExecuteContext(ctx)
}
