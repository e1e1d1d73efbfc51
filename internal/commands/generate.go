// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dacolabs/mpgen/internal/config"
	"github.com/dacolabs/mpgen/internal/policy"
	"github.com/dacolabs/mpgen/internal/prompts"
	"github.com/dacolabs/mpgen/internal/session"
	"github.com/dacolabs/mpgen/internal/translate"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	input      string
	output     string
	format     string
	policy     string
	partOf     string
	lookupKeys string
	stdout     bool
}

func newGenerateCmd(translators translate.Register, load func(*cobra.Command, []string) error) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate bindings from a declaration file",
		Long: fmt.Sprintf(`Generate bindings for the exported declarations of a TypeScript
declaration file. Flags override values from mpgen.yaml.

Available formats: %s`, strings.Join(translators.Available(), ", ")),
		Example: `  # Use mpgen.yaml
  mpgen generate

  # Explicit input and output
  mpgen generate --input typing/lib.wx.api.d.ts --output lib/api.dart

  # API reference instead of Dart
  mpgen generate --format markdown --output docs/api.md

  # Print to stdout
  mpgen generate --stdout`,
		PreRunE: load,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runGenerate(cmd, s, translators, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Declaration file (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default from config)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().StringVar(&opts.policy, "policy", "", "Policy file (default from config, or the embedded policy)")
	cmd.Flags().StringVar(&opts.partOf, "part-of", "", "Library the generated Dart file is a part of")
	cmd.Flags().StringVar(&opts.lookupKeys, "lookup-keys", "", "Response lookup keys (legacy or raw)")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "Write to stdout instead of the output file")

	return cmd
}

// resolve merges flag values over the session config.
func (o *generateOptions) resolve(cmd *cobra.Command, s *session.Context) {
	cfg := s.Config
	if !cmd.Flags().Changed("input") {
		o.input = s.Resolve(cfg.Input)
	}
	if !cmd.Flags().Changed("format") {
		o.format = cfg.Format
	}
	if !cmd.Flags().Changed("output") {
		o.output = s.Resolve(cfg.Output)
	}
	if !cmd.Flags().Changed("part-of") {
		o.partOf = cfg.PartOf
	}
	if !cmd.Flags().Changed("lookup-keys") {
		o.lookupKeys = cfg.LookupKeys
	}
}

func runGenerate(cmd *cobra.Command, s *session.Context, translators translate.Register, opts *generateOptions) error {
	opts.resolve(cmd, s)
	log := s.Logger

	translator, err := translators.Get(opts.format)
	if err != nil {
		return fmt.Errorf("unsupported format %q. Available formats: %s",
			opts.format, strings.Join(translators.Available(), ", "))
	}

	keys := translate.LookupKeys(opts.lookupKeys)
	if keys != translate.LegacyKeys && keys != translate.RawKeys {
		return fmt.Errorf("invalid --lookup-keys %q: must be legacy or raw", opts.lookupKeys)
	}

	pol := s.Policy
	if opts.policy != "" {
		if pol, err = policy.Load(opts.policy); err != nil {
			return fmt.Errorf("failed to load policy %s: %w", opts.policy, err)
		}
	}

	src, err := os.ReadFile(opts.input)
	if err != nil {
		return fmt.Errorf("failed to read declaration file: %w", err)
	}

	out, err := translate.Generate(cmd.Context(), src, pol, translator, translate.GenerateOptions{
		PrepareOptions: translate.PrepareOptions{
			Library:    opts.partOf,
			LookupKeys: keys,
		},
		Logger: log,
	})
	if err != nil {
		return err
	}

	if opts.stdout {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}

	output := outputPath(opts.output, opts.format, s.Config.Output, translator.FileExtension(), cmd.Flags().Changed("output"))
	if err := writeAtomic(output, out); err != nil {
		return err
	}
	log.Infow("wrote output", "path", output, "bytes", len(out))

	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Input", Value: opts.input},
		{Label: "Format", Value: opts.format},
		{Label: "Output", Value: output},
	}, "Generation completed")
	return nil
}

// outputPath swaps the extension of the default Dart output when another
// format is selected without an explicit output.
func outputPath(output, format, configured, ext string, explicit bool) string {
	if explicit || format == config.DefaultFormat || configured != config.DefaultOutput {
		return output
	}
	return strings.TrimSuffix(output, filepath.Ext(output)) + ext
}
