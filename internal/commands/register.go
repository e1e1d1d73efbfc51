// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/dacolabs/mpgen/internal/session"
	"github.com/dacolabs/mpgen/internal/translate"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(getenv func(string) string, translators translate.Register) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mpgen",
		Short: "Generate Dart bindings from mini-program API typings",
		Long: `mpgen reads an ambient TypeScript declaration file describing a
mini-program host API and generates Dart request objects, response objects
and callback typedefs for the exported declarations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(session.FlagConfig, "", "Config file (default ./mpgen.yaml, or $"+session.EnvConfig+")")
	rootCmd.PersistentFlags().CountP(session.FlagVerbose, "v", "Increase log verbosity (-v info, -vv debug)")

	load := session.PreRunLoad(getenv)

	rootCmd.AddCommand(newGenerateCmd(translators, load))
	rootCmd.AddCommand(newDeclarationsCmd(load))
	rootCmd.AddCommand(newInitCmd(translators))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
