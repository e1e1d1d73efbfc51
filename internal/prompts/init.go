// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/dacolabs/mpgen/internal/config"
)

// RunInitForm runs the interactive form for the init command.
// It fills cfg and policyOut with user input.
func RunInitForm(cfg *config.Config, formats []string, policyOut *string) error {
	customPolicy := false
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Declaration file").
				Placeholder(config.DefaultInput).
				Validate(requiredValidator("declaration file")).
				Value(&cfg.Input),
			FormatSelect(&cfg.Format, formats),
			huh.NewInput().
				Title("Output file").
				Placeholder(config.DefaultOutput).
				Validate(requiredValidator("output file")).
				Value(&cfg.Output),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Library the output is a part of").
				Placeholder(config.DefaultPartOf).
				Value(&cfg.PartOf),
			LookupKeysSelect(&cfg.LookupKeys),
		).WithHideFunc(func() bool { return cfg.Format != config.DefaultFormat }),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Write an editable copy of the default policy?").
				Value(&customPolicy),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Policy file").
				Placeholder("mpgen.policy.yaml").
				Validate(requiredValidator("policy file")).
				Value(policyOut),
		).WithHideFunc(func() bool { return !customPolicy }),
	).WithTheme(Theme()).Run()
}
