// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// FormatSelect returns a select field for choosing the output format.
func FormatSelect(value *string, formats []string) *huh.Select[string] {
	options := make([]huh.Option[string], len(formats))
	for i, f := range formats {
		options[i] = huh.NewOption(f, f)
	}
	return huh.NewSelect[string]().
		Title("Output format").
		Options(options...).
		Value(value)
}

// LookupKeysSelect returns a select field for the response lookup-key policy.
func LookupKeysSelect(value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title("Response lookup keys").
		Options(
			huh.NewOption("Legacy (sanitized keys for object accessors)", "legacy"),
			huh.NewOption("Raw (declared field names everywhere)", "raw"),
		).
		Value(value)
}
