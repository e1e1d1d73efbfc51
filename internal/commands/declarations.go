// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/dacolabs/mpgen/internal/decl"
	"github.com/dacolabs/mpgen/internal/session"
	"github.com/dacolabs/mpgen/internal/translate"
	"github.com/spf13/cobra"
)

type declarationsOptions struct {
	input string
	all   bool
}

func newDeclarationsCmd(load func(*cobra.Command, []string) error) *cobra.Command {
	opts := &declarationsOptions{}

	cmd := &cobra.Command{
		Use:   "declarations",
		Short: "List the declarations selected for generation",
		Long: `List the exported declarations of the declaration file with their
classification and the number of fields whose type could not be resolved.`,
		Example: `  # List selected declarations
  mpgen declarations

  # Also list declarations dropped by the allow-lists
  mpgen declarations --all`,
		PreRunE: load,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("input") {
				opts.input = s.Resolve(s.Config.Input)
			}
			return runDeclarations(cmd, s, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Declaration file (default from config)")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "Also list dropped declarations")

	return cmd
}

func runDeclarations(cmd *cobra.Command, s *session.Context, opts *declarationsOptions) error {
	src, err := os.ReadFile(opts.input)
	if err != nil {
		return fmt.Errorf("failed to read declaration file: %w", err)
	}

	ns, err := decl.Load(cmd.Context(), src)
	if err != nil {
		return err
	}

	set := decl.Select(ns, s.Policy)
	unit := translate.Prepare(set, s.Policy, translate.PrepareOptions{})

	out := cmd.OutOrStdout()
	if err := writeDeclarations(out, unit); err != nil {
		return err
	}

	if !opts.all {
		return nil
	}
	dropped := decl.Dropped(ns, s.Policy)
	_, _ = fmt.Fprintf(out, "\nDropped (%d):\n", len(dropped))
	for _, name := range dropped {
		_, _ = fmt.Fprintf(out, "  %s\n", name)
	}
	return nil
}

func writeDeclarations(out io.Writer, unit *translate.Unit) error {
	if len(unit.Objects) == 0 && len(unit.Callbacks) == 0 {
		_, _ = fmt.Fprintln(out, "No declarations selected.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tKIND\tFIELDS\tUNRESOLVED")

	for _, obj := range unit.Objects {
		unresolved := 0
		for _, f := range obj.Fields {
			if f.Type.Kind == translate.Unresolved {
				unresolved++
			}
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", obj.Name, obj.Kind, len(obj.Fields), unresolved)
	}
	for _, cb := range unit.Callbacks {
		_, _ = fmt.Fprintf(w, "%s\tcallback\t%d\t-\n", cb.Name, len(cb.Params))
	}

	return w.Flush()
}
