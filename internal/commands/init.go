// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dacolabs/mpgen/internal/config"
	"github.com/dacolabs/mpgen/internal/policy"
	"github.com/dacolabs/mpgen/internal/prompts"
	"github.com/dacolabs/mpgen/internal/translate"
	"github.com/spf13/cobra"
)

type initOptions struct {
	input          string
	output         string
	format         string
	policyOut      string
	nonInteractive bool
}

func newInitCmd(translators translate.Register) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new mpgen project",
		Long: `Initialize a new mpgen project with an mpgen.yaml configuration file.
Optionally writes an editable copy of the embedded generation policy.`,
		Example: `  # Interactive mode
  mpgen init

  # Non-interactive
  mpgen init --non-interactive
  mpgen init --input typing/lib.wx.api.d.ts --policy-out mpgen.policy.yaml --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, translators, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", config.DefaultInput, "Declaration file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", config.DefaultOutput, "Output file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.DefaultFormat, fmt.Sprintf("Output format (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().StringVar(&opts.policyOut, "policy-out", "", "Write the default policy to this file and reference it from mpgen.yaml")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(cmd *cobra.Command, translators translate.Register, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	cfgPath := filepath.Join(cwd, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return errors.New("mpgen.yaml already exists; project already initialized")
	}

	cfg := config.Default()
	cfg.Input = opts.input
	cfg.Output = opts.output
	cfg.Format = opts.format

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(cfg, translators.Available(), &opts.policyOut); err != nil {
			return err
		}
	}

	if _, err := translators.Get(cfg.Format); err != nil {
		return err
	}

	if opts.policyOut != "" {
		policyPath := opts.policyOut
		if !filepath.IsAbs(policyPath) {
			policyPath = filepath.Join(cwd, policyPath)
		}
		if _, err := os.Stat(policyPath); err == nil {
			return fmt.Errorf("policy file already exists: %s", opts.policyOut)
		}
		if err := os.WriteFile(policyPath, policy.DefaultBytes(), 0o600); err != nil {
			return fmt.Errorf("failed to write policy file: %w", err)
		}
		cfg.Policy = opts.policyOut
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	fields := []prompts.ResultField{
		{Label: "Config", Value: config.FileName},
		{Label: "Input", Value: cfg.Input},
		{Label: "Format", Value: cfg.Format},
		{Label: "Output", Value: cfg.Output},
	}
	if cfg.Policy != "" {
		fields = append(fields, prompts.ResultField{Label: "Policy", Value: cfg.Policy})
	}
	prompts.PrintResult(cmd.OutOrStdout(), fields, "Initialization completed")

	return nil
}
